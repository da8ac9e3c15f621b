package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/api/models"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/broker"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/pipeline"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/recorder"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const estimatedChargesNote = "Charges are estimated from standard rate formulas and are approximate, not taken from contract notes."

// AnalyzeHandler runs the analysis pipeline for uploaded tradebooks.
type AnalyzeHandler struct {
	engine *pipeline.Engine
	store  *session.Store
	rec    recorder.Recorder
	log    *zap.Logger
}

func NewAnalyzeHandler(engine *pipeline.Engine, store *session.Store, rec recorder.Recorder, log *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{engine: engine, store: store, rec: rec, log: log}
}

// Analyze handles POST /api/v1/analyze: multipart "file" plus optional broker
// and trade_type overrides for when auto-detection fails.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	raw, fileName, ok := readUpload(c)
	if !ok {
		return
	}

	var form models.AnalyzeForm
	_ = c.ShouldBind(&form)

	b, cat, err := parseBrokerParam(form.Broker, form.TradeType)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_BROKER", Message: err.Error()},
		})
		return
	}

	result, err := h.engine.Run(raw, b, cat)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	a := h.store.Put(fileName, result)
	h.recordRun(a)

	h.log.Info("analysis completed",
		zap.String("id", a.ID),
		zap.String("broker", string(result.Broker)),
		zap.Int("trades", len(result.Trades)),
	)

	c.JSON(http.StatusOK, buildAnalyzeResponse(a, result.Trades))
}

// Detect handles POST /api/v1/detect: identify the broker without analyzing.
func (h *AnalyzeHandler) Detect(c *gin.Context) {
	raw, _, ok := readUpload(c)
	if !ok {
		return
	}

	b, cat, found := broker.Detect(raw)
	if !found {
		c.JSON(http.StatusOK, models.DetectResponse{Detected: false})
		return
	}
	c.JSON(http.StatusOK, models.DetectResponse{
		Detected:      true,
		Broker:        string(b),
		BrokerName:    b.DisplayName(),
		TradeCategory: string(cat),
	})
}

// GetAnalysis handles GET /api/v1/analyses/:id with optional trade filters.
func (h *AnalyzeHandler) GetAnalysis(c *gin.Context) {
	a, ok := h.lookup(c)
	if !ok {
		return
	}

	var filter models.TradeFilter
	_ = c.ShouldBindQuery(&filter)

	trades := applyFilter(a.Result.Trades, filter)
	c.JSON(http.StatusOK, buildAnalyzeResponse(a, trades))
}

func (h *AnalyzeHandler) lookup(c *gin.Context) (*session.Analysis, bool) {
	a, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "no analysis with that id"},
		})
		return nil, false
	}
	return a, true
}

func (h *AnalyzeHandler) recordRun(a *session.Analysis) {
	r := a.Result
	rec := &recorder.RunRecord{
		AnalyzedAt:       time.Now(),
		Broker:           r.Broker,
		TradeCategory:    r.TradeCategory,
		FileName:         a.FileName,
		ChargesEstimated: r.ChargesEstimated,
	}
	if r.Stats != nil {
		rec.TotalTrades = r.Stats.TotalTrades
		rec.WinningTrades = r.Stats.WinningTrades
		rec.WinRate = r.Stats.WinRate
		rec.NetPnL = r.Stats.NetPnL
		rec.TotalCharges = r.Stats.TotalCharges
		rec.AvgDiscipline = r.Stats.AvgDisciplineScore
	}
	if err := h.rec.RecordRun(rec); err != nil {
		h.log.Warn("record run failed", zap.Error(err))
	}
}

// readUpload pulls the uploaded CSV out of the multipart form.
func readUpload(c *gin.Context) ([]byte, string, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "MISSING_FILE", Message: "multipart field \"file\" is required"},
		})
		return nil, "", false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNREADABLE_FILE", Message: err.Error()},
		})
		return nil, "", false
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNREADABLE_FILE", Message: err.Error()},
		})
		return nil, "", false
	}
	return raw, fh.Filename, true
}

// writeAnalysisError maps pipeline errors onto the error envelope. Nothing the
// pipeline returns is treated as a server fault except truly unknown errors.
func writeAnalysisError(c *gin.Context, err error) {
	var formatErr *broker.FormatError
	switch {
	case errors.As(err, &formatErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_FORMAT", Message: formatErr.Error()},
		})
	case errors.Is(err, pipeline.ErrUnknownFormat):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNKNOWN_FORMAT", Message: err.Error()},
		})
	case errors.Is(err, broker.ErrNoCompleteTrades):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NO_COMPLETE_TRADES", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "ANALYSIS_ERROR", Message: err.Error()},
		})
	}
}

func buildAnalyzeResponse(a *session.Analysis, trades []model.ClosedTrade) models.AnalyzeResponse {
	r := a.Result
	resp := models.AnalyzeResponse{
		ID:               a.ID,
		Status:           "completed",
		Broker:           string(r.Broker),
		BrokerName:       r.Broker.DisplayName(),
		TradeCategory:    string(r.TradeCategory),
		ChargesEstimated: r.ChargesEstimated,
		Stats:            r.Stats,
		Patterns:         r.Patterns,
		Recommendations:  r.Recommendations,
	}
	if r.ChargesEstimated {
		resp.ChargesNote = estimatedChargesNote
	}
	resp.Trades = make([]models.TradeRow, len(trades))
	for i, t := range trades {
		resp.Trades[i] = models.FromTrade(t)
	}
	return resp
}

func parseBrokerParam(b, tradeType string) (model.Broker, model.TradeCategory, error) {
	switch b {
	case "":
		return "", "", nil
	case "zerodha":
		return model.BrokerZerodha, model.CategoryEquity, nil
	case "kotak", "kotak_equity":
		cat := model.CategoryEquity
		if tradeType == string(model.CategoryDerivatives) {
			cat = model.CategoryDerivatives
		}
		return model.BrokerKotak, cat, nil
	case "kotak_derivatives":
		return model.BrokerKotak, model.CategoryDerivatives, nil
	case "icici":
		return model.BrokerICICI, model.CategoryEquity, nil
	default:
		return "", "", fmt.Errorf("unsupported broker: %q", b)
	}
}
