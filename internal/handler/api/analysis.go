// Package api exposes the analysis endpoints over HTTP. Handlers bind
// and validate requests, call the analyzer, and shape domain results
// into JSON. Zero-filling of undefined indicator heads happens here and
// nowhere else.
package api

import (
	"errors"

	"StockLens/internal/domain/models"
	"StockLens/internal/domain/repository"
	"StockLens/internal/usecase"
	xhttp "StockLens/pkg/http"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/util"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler serves the /api analysis routes.
type AnalysisHandler struct {
	logger   *applogger.Logger
	analyzer *usecase.Analyzer
}

// NewAnalysisHandler creates the handler.
func NewAnalysisHandler(l *applogger.Logger, analyzer *usecase.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{logger: l.With("api"), analyzer: analyzer}
}

// RegisterRoutes registers all routes on the Echo instance.
func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/analysis/:symbol", h.Analysis)
	g.GET("/indicators/:symbol", h.Indicators)
	g.GET("/levels/:symbol", h.Levels)
	g.GET("/outliers/:symbol", h.Outliers)
	g.GET("/resample/:symbol", h.Resample)
}

// Health reports liveness.
func (h *AnalysisHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// Analysis returns the per-day price, return, and indicator series plus
// summary statistics for a symbol.
func (h *AnalysisHandler) Analysis(c echo.Context) error {
	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	r, err := buildRange(req.RangeParams)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	analysis, err := h.analyzer.Analysis(c.Request().Context(), req.Symbol, r)
	if err != nil {
		return h.fail(c, "analysis", req.Symbol, err)
	}

	return xhttp.SuccessResponse(c, newAnalysisView(req.Symbol, analysis))
}

// Indicators returns the classified RSI, death-cross, and MACD signals.
func (h *AnalysisHandler) Indicators(c echo.Context) error {
	req := &models.IndicatorsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	r, err := buildRange(req.RangeParams)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	signals, err := h.analyzer.Signals(c.Request().Context(), req.Symbol, r)
	if err != nil {
		return h.fail(c, "indicators", req.Symbol, err)
	}

	return xhttp.SuccessResponse(c, signalsView{
		Symbol:  req.Symbol,
		Signals: signals,
	})
}

// Levels returns support and resistance levels for a symbol.
func (h *AnalysisHandler) Levels(c echo.Context) error {
	req := &models.LevelsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	r, err := buildRange(req.RangeParams)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	levels, err := h.analyzer.Levels(c.Request().Context(), req.Symbol, r, req.Window)
	if err != nil {
		return h.fail(c, "levels", req.Symbol, err)
	}

	return xhttp.SuccessResponse(c, levelsView{
		Symbol: req.Symbol,
		Window: req.Window,
		Levels: levels,
	})
}

// Outliers returns dates whose column value is a z-score outlier.
func (h *AnalysisHandler) Outliers(c echo.Context) error {
	req := &models.OutliersRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	r, err := buildRange(req.RangeParams)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	dates, err := h.analyzer.Outliers(c.Request().Context(), req.Symbol, r, req.Column, req.Threshold)
	if err != nil {
		return h.fail(c, "outliers", req.Symbol, err)
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = util.FormatDate(d)
	}
	return xhttp.SuccessResponse(c, outliersView{
		Symbol:    req.Symbol,
		Column:    req.Column,
		Threshold: req.Threshold,
		Dates:     formatted,
	})
}

// Resample returns the series aggregated to weekly or monthly bars.
func (h *AnalysisHandler) Resample(c echo.Context) error {
	req := &models.ResampleRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	r, err := buildRange(req.RangeParams)
	if err != nil {
		return xhttp.BadRequestResponse(c, err.Error())
	}

	resampled, rets, err := h.analyzer.Resample(c.Request().Context(), req.Symbol, r, req.Freq)
	if err != nil {
		return h.fail(c, "resample", req.Symbol, err)
	}

	return xhttp.SuccessResponse(c, newResampleView(req.Symbol, req.Freq, resampled, rets))
}

// fail maps domain errors onto HTTP statuses.
func (h *AnalysisHandler) fail(c echo.Context, op, symbol string, err error) error {
	var insufficient *models.InsufficientHistoryError
	var invalidColumn *models.InvalidColumnError
	var degenerate *models.DegenerateStatisticsError

	switch {
	case errors.Is(err, models.ErrNoData), errors.Is(err, models.ErrEmptySeries):
		return xhttp.AppErrorResponse(c,
			xhttp.NotFoundErrorf("no price history for %s", symbol))
	case errors.As(err, &insufficient):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(insufficient.Error()).
			WithParam("indicator", insufficient.Indicator).
			WithParam("required", insufficient.Required).
			WithParam("have", insufficient.Have))
	case errors.As(err, &degenerate):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(degenerate.Error()))
	case errors.As(err, &invalidColumn):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(invalidColumn.Error()))
	default:
		h.logger.Error("handler error",
			applogger.String("op", op),
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		return xhttp.AppErrorResponse(c,
			xhttp.BadGatewayError("upstream data source unavailable").WithError(err))
	}
}

// buildRange resolves the period/start/end parameters. Explicit dates
// win over the period shorthand; end is inclusive of the named day.
func buildRange(p models.RangeParams) (models.Range, error) {
	if p.Start != "" && p.End != "" {
		start, ok := util.ParseDate(p.Start)
		if !ok {
			return models.Range{}, errors.New("start must be a YYYY-MM-DD date")
		}
		end, ok := util.ParseDate(p.End)
		if !ok {
			return models.Range{}, errors.New("end must be a YYYY-MM-DD date")
		}
		if end.Before(start) {
			return models.Range{}, errors.New("end must not be before start")
		}
		return models.Range{Start: start, End: end.AddDate(0, 0, 1)}, nil
	}
	return models.Range{Period: repository.NormalizePeriod(p.Period)}, nil
}
