package handler

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
)

// Handler serves the calculators over HTTP. It holds no per-request state,
// so one Handler serves concurrent requests.
type Handler struct {
	engine *calculation.CalculationEngine
	logger *zap.Logger
}

// New creates a Handler. A nil logger disables request logging.
func New(engine *calculation.CalculationEngine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, logger: logger.Named("http")}
}

// HandleRequest routes a request to the matching calculator.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	if path == "/healthz" {
		if !ctx.IsGet() {
			h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		return
	}

	route, ok := h.routes()[path]
	if !ok {
		h.writeError(ctx, fasthttp.StatusNotFound, "Unknown route "+path)
		return
	}
	if !ctx.IsPost() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	resp, err := route(ctx.PostBody())
	if err != nil {
		status := statusFor(err)
		h.logger.Warn("request failed", zap.String("path", path), zap.Int("status", status), zap.Error(err))
		h.writeError(ctx, status, err.Error())
		return
	}
	h.logger.Debug("request served", zap.String("path", path))
	h.writeJSON(ctx, fasthttp.StatusOK, resp)
}

type route func(body []byte) (interface{}, error)

func (h *Handler) routes() map[string]route {
	return map[string]route{
		"/v1/portfolios":      h.portfolios,
		"/v1/social-security": h.socialSecurity,
		"/v1/contribution":    h.contribution,
		"/v1/delay":           h.delay,
		"/v1/tax":             h.tax,
		"/v1/projection":      h.projection,
	}
}

// errBadRequest marks malformed bodies and enum values.
var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, domain.ErrValidation):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrDomain):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func decode(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encode response", zap.Error(err))
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
