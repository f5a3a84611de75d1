// Package advisor builds the outbound financial profile and talks to the
// external advisor service. The advisor is a remote collaborator: the ledger
// core only knows the request and response shapes, and every failure path
// degrades to a canned local response.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/arthaguide/sms-ledger/internal/models"
)

var (
	errAdvisorUnconfigured = errors.New("advisor service not configured")
	errAdvisorStatus       = errors.New("unexpected advisor status code")
)

// Profile is the contextual payload sent alongside every advisor question.
type Profile struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlySavings  float64 `json:"monthlySavings"`
	HealthScore     int     `json:"healthScore"`
}

// BuildProfile flattens a summary into the advisor payload. The health score
// travels as an integer-rounded percentage.
func BuildProfile(summary models.FinancialSummary, healthScore float64) Profile {
	return Profile{
		MonthlyIncome:   summary.TotalIncome,
		MonthlyExpenses: summary.TotalExpenses,
		MonthlySavings:  summary.Balance,
		HealthScore:     int(math.Round(healthScore)),
	}
}

// Reply is the advisor response shape the surrounding UI expects.
type Reply struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources,omitempty"`
}

type askRequest struct {
	Message  string  `json:"message"`
	Language string  `json:"language"`
	Profile  Profile `json:"profile"`
}

// fallbackResponses is served when the advisor is unreachable, slow or
// misbehaving. Keyed by language, defaulting to English.
var fallbackResponses = map[string]string{
	"en": "I'm here to help with your financial questions. Based on typical guidelines, maintain a debt-to-income ratio below 40% and ensure you have 3-6 months of emergency savings.",
	"hi": "मैं आपके वित्तीय प्रश्नों में मदद के लिए यहां हूं। सामान्य दिशानिर्देशों के अनुसार, 40% से कम ऋण-से-आय अनुपात बनाए रखें।",
	"kn": "ನಾನು ನಿಮ್ಮ ಹಣಕಾಸು ಪ್ರಶ್ನೆಗಳಲ್ಲಿ ಸಹಾಯ ಮಾಡಲು ಇಲ್ಲಿದ್ದೇನೆ. 40% ಕ್ಕಿಂತ ಕಡಿಮೆ ಸಾಲ-ಆದಾಯ ಅನುಪಾತವನ್ನು ನಿರ್ವಹಿಸಿ.",
}

// Fallback returns the canned response for a language.
func Fallback(language string) Reply {
	msg, ok := fallbackResponses[language]
	if !ok {
		msg = fallbackResponses["en"]
	}
	return Reply{Response: msg}
}

// Client posts questions to the advisor service.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// NewClient builds a client for the given base URL. An empty base URL yields
// a client whose Ask always falls back; the request timeout belongs to the
// injected http.Client.
func NewClient(httpClient *http.Client, baseURL string) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURL == "" {
		return &Client{httpClient: httpClient}, nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid advisor base URL %q: %w", baseURL, err)
	}
	return &Client{httpClient: httpClient, baseURL: u}, nil
}

// Ask sends the question with the profile context and returns the advisor's
// reply. On any failure it returns the language-appropriate fallback along
// with the underlying error, so callers can log the cause but still answer.
func (c *Client) Ask(ctx context.Context, message, language string, profile Profile) (Reply, error) {
	if c.baseURL == nil {
		return Fallback(language), errAdvisorUnconfigured
	}

	body, err := json.Marshal(askRequest{Message: message, Language: language, Profile: profile})
	if err != nil {
		return Fallback(language), fmt.Errorf("encode advisor request: %w", err)
	}

	endpoint := c.baseURL.JoinPath("/api/advisor")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return Fallback(language), fmt.Errorf("build advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Fallback(language), fmt.Errorf("advisor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Fallback(language), fmt.Errorf("%w: %d", errAdvisorStatus, resp.StatusCode)
	}

	var reply Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return Fallback(language), fmt.Errorf("decode advisor response: %w", err)
	}
	if reply.Response == "" {
		return Fallback(language), errors.New("empty advisor response")
	}
	return reply, nil
}
