package link

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/dipole-link/pkg/adapters"
	"github.com/de-tools/dipole-link/pkg/metrics"
	"github.com/de-tools/dipole-link/pkg/models/api"
	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/de-tools/dipole-link/pkg/services/config"
	"github.com/de-tools/dipole-link/pkg/services/link"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	calculator link.Calculator
	profiles   config.ProfileRegistry
	metrics    *metrics.Registry
}

// NewHandler creates the link budget handler. profiles may be nil when no
// profile file is configured.
func NewHandler(calculator link.Calculator, profiles config.ProfileRegistry, m *metrics.Registry) *Handler {
	return &Handler{
		calculator: calculator,
		profiles:   profiles,
		metrics:    m,
	}
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to decode link request")
		h.metrics.CalculationErrorsTotal.WithLabelValues("malformed").Inc()
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	h.respond(w, r, adapters.MapAPILinkRequestToDomainInputs(req))
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.profiles == nil {
		writeError(w, http.StatusNotFound, "no link profiles configured")
		return
	}

	names, err := h.profiles.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}

	response := make([]api.Profile, 0, len(names))
	for _, name := range names {
		response = append(response, api.Profile{Name: name})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CalculateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "profile")

	if h.profiles == nil {
		writeError(w, http.StatusNotFound, "no link profiles configured")
		return
	}

	in, err := h.profiles.GetInputs(ctx, name)
	if err != nil {
		logger.Warn().Err(err).Str("profile", name).Msg("failed to load profile")
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respond(w, r, in)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, in domain.LinkInputs) {
	logger := zerolog.Ctx(r.Context())

	result, err := h.calculator.Calculate(r.Context(), in)
	switch {
	case errors.Is(err, link.ErrUnsupportedAntennas):
		h.metrics.CalculationErrorsTotal.WithLabelValues("unsupported").Inc()
		writeError(w, http.StatusUnprocessableEntity, link.UnsupportedDiagnostic)
		return
	case errors.Is(err, link.ErrNonFiniteResult):
		logger.Warn().Err(err).Msg("link budget out of range")
		h.metrics.CalculationErrorsTotal.WithLabelValues("overflow").Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, link.ErrInvalidInput):
		h.metrics.CalculationErrorsTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error().Err(err).Msg("failed to calculate link budget")
		h.metrics.CalculationErrorsTotal.WithLabelValues("internal").Inc()
		writeError(w, http.StatusInternalServerError, "failed to calculate link budget")
		return
	}

	h.metrics.CalculationsTotal.WithLabelValues(result.Case.String()).Inc()
	h.metrics.ReceivedPowerDBm.Observe(result.Summary.ReceivedPowerDBm)
	writeJSON(w, http.StatusOK, adapters.MapDomainLinkResultToAPI(*result))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
