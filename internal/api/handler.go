// Package api serves the calculators over JSON HTTP and websockets.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/engine"
	"github.com/Veraticus/signal-companion/internal/locale"
	"github.com/Veraticus/signal-companion/internal/playback"
)

// Services that expose a health endpoint under /api/v1/<service>/health.
var services = []string{"properties", "laplace", "convolution", "lti"}

// Handler serves the calculator endpoints.
type Handler struct {
	calc     engine.Calculator
	upgrader websocket.Upgrader
	interval time.Duration
}

// NewHandler creates a handler over calc. interval paces websocket playback
// and origins lists the browser origins allowed to open a stream.
func NewHandler(calc engine.Calculator, interval time.Duration, origins []string) *Handler {
	if interval <= 0 {
		interval = playback.DefaultInterval
	}
	return &Handler{
		calc:     calc,
		upgrader: newUpgrader(origins),
		interval: interval,
	}
}

// RegisterRoutes registers every route on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.MethodNotAllowedHandler = router.MethodNotAllowedHandler
	api.HandleFunc("/properties/analyze", h.AnalyzeProperties).Methods(http.MethodPost)
	api.HandleFunc("/laplace/transform", h.LaplaceTransform).Methods(http.MethodPost)
	api.HandleFunc("/laplace/inverse", h.InverseLaplace).Methods(http.MethodPost)
	api.HandleFunc("/convolution/calculate", h.Convolve).Methods(http.MethodPost)
	api.HandleFunc("/convolution/stream", h.ConvolutionStream).Methods(http.MethodGet)
	api.HandleFunc("/lti/analyze", h.AnalyzeLTI).Methods(http.MethodPost)
	api.HandleFunc("/signals", h.Signals).Methods(http.MethodGet)
	api.HandleFunc("/schemas", h.ListSchemas).Methods(http.MethodGet)
	api.HandleFunc("/schemas/{name}", h.GetSchema).Methods(http.MethodGet)

	for _, svc := range services {
		api.HandleFunc("/"+svc+"/health", serviceHealth(svc)).Methods(http.MethodGet)
	}
}

// Root reports that the API is running.
// GET /
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Signal Companion API is running"})
}

// Health reports overall health.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func serviceHealth(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": svc})
	}
}

// AnalyzeProperties evaluates system properties.
// POST /api/v1/properties/analyze
func (h *Handler) AnalyzeProperties(w http.ResponseWriter, r *http.Request) {
	var req PropertyAnalysisRequest
	if !decode(w, r, &req) {
		return
	}

	report, err := h.calc.AnalyzeProperties(r.Context(), req.EquationStr)
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	lang := locale.Match(r.Header.Get("Accept-Language"))
	w.Header().Set("Content-Language", lang.Tag().String())
	respondJSON(w, http.StatusOK, newPropertyResponse(report, lang))
}

// LaplaceTransform computes a forward transform.
// POST /api/v1/laplace/transform
func (h *Handler) LaplaceTransform(w http.ResponseWriter, r *http.Request) {
	var req LaplaceTransformRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.calc.ForwardTransform(r.Context(), req.ExpressionT)
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newLaplaceResponse(result))
}

// InverseLaplace computes an inverse transform.
// POST /api/v1/laplace/inverse
func (h *Handler) InverseLaplace(w http.ResponseWriter, r *http.Request) {
	var req InverseLaplaceRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.calc.InverseTransform(r.Context(), req.ExpressionS, req.Causal())
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newInverseResponse(result))
}

// Convolve computes a convolution.
// POST /api/v1/convolution/calculate
func (h *Handler) Convolve(w http.ResponseWriter, r *http.Request) {
	var req ConvolutionRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.calc.Convolve(r.Context(), req.SignalX, req.SignalH)
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newConvolutionResponse(result))
}

// AnalyzeLTI analyzes a transfer function.
// POST /api/v1/lti/analyze
func (h *Handler) AnalyzeLTI(w http.ResponseWriter, r *http.Request) {
	var req LTIAnalysisRequest
	if !decode(w, r, &req) {
		return
	}

	analysis, err := h.calc.AnalyzeLTI(r.Context(), req.TransferFunction)
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newLTIResponse(analysis))
}

// Signals returns the signal library.
// GET /api/v1/signals
func (h *Handler) Signals(w http.ResponseWriter, r *http.Request) {
	library, err := h.calc.SignalLibrary(r.Context())
	if err != nil {
		respondCalcError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newSignalResponses(library))
}

// ListSchemas lists the published payload schemas.
// GET /api/v1/schemas
func (h *Handler) ListSchemas(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"schemas": SchemaNames()})
}

// GetSchema returns one payload schema.
// GET /api/v1/schemas/{name}
func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := Schema(mux.Vars(r)["name"])
	if err != nil {
		respondError(w, http.StatusNotFound, "schema not found", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, schema)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

func respondCalcError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrInvalidExpression) {
		respondError(w, http.StatusBadRequest, common.UserMessage(err), err.Error())
		return
	}

	common.Logger(r.Context()).Error("calculation failed", "error", err, "path", r.URL.Path)
	respondError(w, http.StatusInternalServerError, "internal server error", "")
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		common.LogError(err, "failed to encode JSON response", nil)
	}
}

func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, ErrorResponse{Error: message, Detail: detail})
}
