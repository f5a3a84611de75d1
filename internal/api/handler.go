// Package api exposes the ledger, parser and scoring engines over HTTP.
package api

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/arthaguide/sms-ledger/internal/advisor"
	"github.com/arthaguide/sms-ledger/internal/finance"
	"github.com/arthaguide/sms-ledger/internal/ledger"
	"github.com/arthaguide/sms-ledger/internal/models"
	"github.com/arthaguide/sms-ledger/internal/sms"
	"github.com/arthaguide/sms-ledger/internal/writer"
)

const version = "1.0.0"

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Store   *ledger.Store
	Parser  *sms.Parser
	Advisor *advisor.Client
	Log     zerolog.Logger
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/sms/parse", h.handleParseSMS)
	app.Get("/api/transactions", h.handleListTransactions)
	app.Post("/api/transactions", h.handleAddTransaction)
	app.Put("/api/transactions", h.handleReplaceTransactions)
	app.Delete("/api/transactions/:index", h.handleRemoveTransaction)
	app.Get("/api/transactions/export", h.handleExportCSV)
	app.Get("/api/summary", h.handleSummary)
	app.Get("/api/profile", h.handleProfile)
	app.Get("/api/loan/offers", h.handleLoanOffers)
	app.Post("/api/advisor", h.handleAdvisor)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
	})
}

type parseRequest struct {
	Text string `json:"text"`
	Save bool   `json:"save"`
}

func (h *Handler) handleParseSMS(c *fiber.Ctx) error {
	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return writeError(c, fiber.StatusBadRequest, "field 'text' is required")
	}

	report := h.Parser.Parse(req.Text)

	if req.Save {
		// One batch prepend: the parsed lines land at the head in source
		// order, and either the whole batch persists or none of it does.
		if err := h.Store.AddBatch(c.Context(), report.Transactions); err != nil {
			h.Log.Error().Err(err).Msg("failed to persist parsed transactions")
			return writeError(c, fiber.StatusInternalServerError, "failed to save transactions")
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"transactions":   report.Transactions,
		"count":          len(report.Transactions),
		"linesSubmitted": report.LinesSubmitted,
		"linesSkipped":   report.LinesSkipped,
		"datesDefaulted": report.DatesDefaulted,
	})
}

func (h *Handler) handleListTransactions(c *fiber.Ctx) error {
	txs := h.Store.All()
	return c.JSON(fiber.Map{
		"transactions": txs,
		"count":        len(txs),
	})
}

type addTransactionRequest struct {
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

func (h *Handler) handleAddTransaction(c *fiber.Ctx) error {
	var req addTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	// Boundary validation: no partial records.
	if req.Amount <= 0 {
		return writeError(c, fiber.StatusBadRequest, "amount must be positive")
	}
	if strings.TrimSpace(req.Merchant) == "" {
		return writeError(c, fiber.StatusBadRequest, "merchant is required")
	}
	dir := models.Direction(req.Type)
	if dir != models.Credit && dir != models.Debit {
		return writeError(c, fiber.StatusBadRequest, "type must be 'credit' or 'debit'")
	}
	category := models.Category(req.Category)
	if req.Category == "" {
		category = models.CategoryOthers
	} else if !models.ValidCategory(category) {
		return writeError(c, fiber.StatusBadRequest, "unknown category")
	}
	date := req.Date
	if date == "" {
		date = h.Parser.Now().Format("2006-01-02")
	}

	tx := models.Transaction{
		Amount:    req.Amount,
		Direction: dir,
		Merchant:  strings.TrimSpace(req.Merchant),
		Category:  category,
		Date:      date,
	}
	if err := h.Store.Add(c.Context(), tx); err != nil {
		h.Log.Error().Err(err).Msg("failed to persist transaction")
		return writeError(c, fiber.StatusInternalServerError, "failed to save transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"transaction": tx,
		"count":       h.Store.Len(),
	})
}

type replaceRequest struct {
	Transactions []models.Transaction `json:"transactions"`
}

func (h *Handler) handleReplaceTransactions(c *fiber.Ctx) error {
	var req replaceRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := h.Store.ReplaceAll(c.Context(), req.Transactions); err != nil {
		h.Log.Error().Err(err).Msg("failed to persist replaced ledger")
		return writeError(c, fiber.StatusInternalServerError, "failed to save transactions")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   h.Store.Len(),
	})
}

func (h *Handler) handleRemoveTransaction(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "index must be an integer")
	}
	if err := h.Store.RemoveAt(c.Context(), index); err != nil {
		if errors.Is(err, ledger.ErrIndexOutOfRange) {
			return writeError(c, fiber.StatusNotFound, err.Error())
		}
		h.Log.Error().Err(err).Msg("failed to persist after remove")
		return writeError(c, fiber.StatusInternalServerError, "failed to remove transaction")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   h.Store.Len(),
	})
}

func (h *Handler) handleExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := &writer.CSVWriter{IncludeSummary: c.Query("summary") == "true"}
	if err := w.Write(&buf, h.Store.All()); err != nil {
		h.Log.Error().Err(err).Msg("CSV export failed")
		return writeError(c, fiber.StatusInternalServerError, "CSV generation failed")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Send(buf.Bytes())
}

func (h *Handler) handleSummary(c *fiber.Ctx) error {
	summary := finance.Summarize(h.Store.All())
	return c.JSON(fiber.Map{
		"summary":     summary,
		"healthScore": finance.HealthScore(summary),
	})
}

func (h *Handler) handleProfile(c *fiber.Ctx) error {
	summary := finance.Summarize(h.Store.All())
	return c.JSON(advisor.BuildProfile(summary, finance.HealthScore(summary)))
}

func (h *Handler) handleLoanOffers(c *fiber.Ctx) error {
	principal := 50000.0
	if raw := c.Query("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return writeError(c, fiber.StatusBadRequest, "amount must be a positive number")
		}
		principal = parsed
	}

	summary := finance.Summarize(h.Store.All())
	score := finance.EligibilityScore(finance.Profile{
		MonthlyIncome:   summary.TotalIncome,
		MonthlyExpenses: summary.TotalExpenses,
		Balance:         summary.Balance,
		CreditHistory:   "Good",
	})

	return c.JSON(fiber.Map{
		"eligibilityScore": score,
		"amount":           principal,
		"offers":           finance.Quote(principal, score),
	})
}

type advisorRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (h *Handler) handleAdvisor(c *fiber.Ctx) error {
	var req advisorRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return writeError(c, fiber.StatusBadRequest, "field 'message' is required")
	}

	summary := finance.Summarize(h.Store.All())
	profile := advisor.BuildProfile(summary, finance.HealthScore(summary))

	reply, err := h.Advisor.Ask(c.Context(), req.Message, req.Language, profile)
	if err != nil {
		// The fallback reply still goes out with a 200; the cause only
		// matters for operators.
		h.Log.Warn().Err(err).Msg("advisor unavailable, serving fallback")
	}
	return c.JSON(reply)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
