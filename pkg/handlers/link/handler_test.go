package link

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/dipole-link/pkg/metrics"
	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/de-tools/dipole-link/pkg/services/link"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) Calculate(ctx context.Context, in domain.LinkInputs) (*domain.LinkResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkResult), args.Error(1)
}

type mockProfiles struct {
	mock.Mock
}

func (m *mockProfiles) GetProfiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockProfiles) GetInputs(ctx context.Context, profile string) (domain.LinkInputs, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(domain.LinkInputs), args.Error(1)
}

func setupRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/link-budget", h.Calculate)
	router.Get("/profiles", h.ListProfiles)
	router.Get("/profiles/{profile}/link-budget", h.CalculateProfile)
	return router
}

func TestCalculate(t *testing.T) {
	request := `{"current":1,"frequency":3e8,"distance":1000,"tx_radius":0.001,"tx_length":0.01,"rx_radius":0.001,"rx_length":0.01}`
	inputs := domain.LinkInputs{
		Current: 1, Frequency: 3e8, Distance: 1000,
		TxRadius: 0.001, TxLength: 0.01, RxRadius: 0.001, RxLength: 0.01,
	}

	tests := []struct {
		name           string
		setupMock      func(*mockCalculator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful response",
			setupMock: func(m *mockCalculator) {
				m.On("Calculate", mock.Anything, inputs).Return(&domain.LinkResult{
					Case:          domain.CaseHertzianHertzian,
					Pattern:       domain.AntennaHertzian.PowerPattern(),
					ReceivedPower: 5e-10,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"case":"hertzian/hertzian"`,
		},
		{
			name: "unsupported antennas",
			setupMock: func(m *mockCalculator) {
				m.On("Calculate", mock.Anything, inputs).Return(nil, link.ErrUnsupportedAntennas)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Please check the length of antennas",
		},
		{
			name: "internal error",
			setupMock: func(m *mockCalculator) {
				m.On("Calculate", mock.Anything, inputs).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to calculate link budget",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc := new(mockCalculator)
			tc.setupMock(calc)
			router := setupRouter(NewHandler(calc, nil, metrics.NewRegistry()))

			req := httptest.NewRequest(http.MethodPost, "/link-budget", strings.NewReader(request))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectedBody)
			calc.AssertExpectations(t)
		})
	}
}

func TestCalculate_OverflowingCurrent(t *testing.T) {
	calc, err := link.NewCalculator(domain.DefaultConstants())
	require.NoError(t, err)
	m := metrics.NewRegistry()
	router := setupRouter(NewHandler(calc, nil, m))

	request := `{"current":1e200,"frequency":3e8,"distance":1000,"tx_radius":0.001,"tx_length":0.01,"rx_radius":0.001,"rx_length":0.01}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/link-budget", strings.NewReader(request)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "non-finite result")
	assert.Contains(t, rec.Body.String(), "ReceivedPower")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationErrorsTotal.WithLabelValues("overflow")))
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"value": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to encode response"}`, rec.Body.String())
}

func TestProfilesWithoutRegistry(t *testing.T) {
	router := setupRouter(NewHandler(new(mockCalculator), nil, metrics.NewRegistry()))

	for _, path := range []string{"/profiles", "/profiles/any/link-budget"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestCalculateProfile_UnknownProfile(t *testing.T) {
	profiles := new(mockProfiles)
	profiles.On("GetInputs", mock.Anything, "missing").
		Return(domain.LinkInputs{}, errors.New("profile missing not found"))
	router := setupRouter(NewHandler(new(mockCalculator), profiles, metrics.NewRegistry()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/missing/link-budget", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile missing not found")
	profiles.AssertExpectations(t)
}
