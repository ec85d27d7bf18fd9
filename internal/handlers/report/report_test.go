package report

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	reportservice "github.com/desbrava-tech/clubhub/internal/service/reportservice"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, func(report *reportservice.FinancialReport) ([]byte, error) {
		return []byte("workbook"), nil
	})
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestDemographicsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		clubID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Returns the report",
			clubID: "1",
			prepareMock: func() {
				report := &reportservice.DemographicsReport{ClubID: 1, TotalMembers: 28}
				service.EXPECT().Demographics(gomock.Any(), 1).Return(report, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Club not found",
			clubID: "99",
			prepareMock: func() {
				service.EXPECT().Demographics(gomock.Any(), 99).Return(nil, reportservice.ErrClubNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid club id",
			clubID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/"+tt.clubID+"/demographics", nil)
			r = withURLParam(r, "clubID", tt.clubID)
			w := httptest.NewRecorder()

			handler.Demographics(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestFinancialHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		clubID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Returns the report",
			clubID: "1",
			prepareMock: func() {
				report := &reportservice.FinancialReport{ClubID: 1, ClubName: "Clube A", TotalIncome: 200.0, Balance: 120.0}
				service.EXPECT().Financial(gomock.Any(), 1).Return(report, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Service failure",
			clubID: "1",
			prepareMock: func() {
				service.EXPECT().Financial(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/"+tt.clubID+"/financial", nil)
			r = withURLParam(r, "clubID", tt.clubID)
			w := httptest.NewRecorder()

			handler.Financial(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestExportFinancialHandler(t *testing.T) {
	t.Run("Streams the workbook", func(t *testing.T) {
		handler, service := NewMock(t)
		report := &reportservice.FinancialReport{ClubID: 1, ClubName: "Clube A"}
		service.EXPECT().Financial(gomock.Any(), 1).Return(report, nil)

		r := httptest.NewRequest(http.MethodGet, "/1/financial/export", nil)
		r = withURLParam(r, "clubID", "1")
		w := httptest.NewRecorder()

		handler.ExportFinancial(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "workbook", w.Body.String())
	})

	t.Run("Exporter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewMockService(ctrl)
		handler := New(service, func(report *reportservice.FinancialReport) ([]byte, error) {
			return nil, errors.New("render error")
		})
		defer ctrl.Finish()

		report := &reportservice.FinancialReport{ClubID: 1}
		service.EXPECT().Financial(gomock.Any(), 1).Return(report, nil)

		r := httptest.NewRequest(http.MethodGet, "/1/financial/export", nil)
		r = withURLParam(r, "clubID", "1")
		w := httptest.NewRecorder()

		handler.ExportFinancial(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPointsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Points(gomock.Any(), 1).Return(&reportservice.PointsReport{ClubID: 1, TotalPoints: 85}, nil)

	r := httptest.NewRequest(http.MethodGet, "/1/points", nil)
	r = withURLParam(r, "clubID", "1")
	w := httptest.NewRecorder()

	handler.Points(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "85")
}
