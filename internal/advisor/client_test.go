package advisor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arthaguide/sms-ledger/internal/models"
)

func TestBuildProfile(t *testing.T) {
	summary := models.FinancialSummary{
		TotalIncome:   45000,
		TotalExpenses: 25200,
		Balance:       19800,
	}

	p := BuildProfile(summary, 44.0)

	assert.Equal(t, 45000.0, p.MonthlyIncome)
	assert.Equal(t, 25200.0, p.MonthlyExpenses)
	assert.Equal(t, 19800.0, p.MonthlySavings)
	assert.Equal(t, 44, p.HealthScore)

	// Rounded, not truncated.
	assert.Equal(t, 29, BuildProfile(summary, 28.9).HealthScore)
}

func TestAskSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/advisor", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"Keep your EMI under 40% of income.","sources":["rbi-guidelines"]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL)
	assert.NoError(t, err)

	reply, err := client.Ask(context.Background(), "Can I afford a loan?", "en", Profile{})
	assert.NoError(t, err)
	assert.Equal(t, "Keep your EMI under 40% of income.", reply.Response)
	assert.Equal(t, []string{"rbi-guidelines"}, reply.Sources)
}

func TestAskFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, _ := NewClient(srv.Client(), srv.URL)

	reply, err := client.Ask(context.Background(), "hello", "hi", Profile{})
	assert.Error(t, err)
	assert.Equal(t, Fallback("hi"), reply)
}

func TestAskFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client, _ := NewClient(&http.Client{Timeout: 20 * time.Millisecond}, srv.URL)

	reply, err := client.Ask(context.Background(), "hello", "kn", Profile{})
	assert.Error(t, err)
	assert.Equal(t, Fallback("kn"), reply)
}

func TestAskUnconfigured(t *testing.T) {
	client, err := NewClient(nil, "")
	assert.NoError(t, err)

	reply, err := client.Ask(context.Background(), "hello", "fr", Profile{})
	assert.Error(t, err)
	// Unknown languages fall back to English.
	assert.Equal(t, Fallback("en"), reply)
}
