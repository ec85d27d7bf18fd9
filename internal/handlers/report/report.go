package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	reportservice "github.com/desbrava-tech/clubhub/internal/service/reportservice"
	"github.com/desbrava-tech/clubhub/pkg/utils"
)

type Service interface {
	Demographics(ctx context.Context, clubID int) (*reportservice.DemographicsReport, error)
	Financial(ctx context.Context, clubID int) (*reportservice.FinancialReport, error)
	Points(ctx context.Context, clubID int) (*reportservice.PointsReport, error)
}

// Exporter renders a financial report as a downloadable workbook.
type Exporter func(report *reportservice.FinancialReport) ([]byte, error)

type ReportHandler struct {
	reportService Service
	exporter      Exporter
}

func New(reportService Service, exporter Exporter) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exporter:      exporter,
	}
}

// Demographics godoc
//
//	@Summary		Demographic rollup of a club's active members
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{object}	reportservice.DemographicsReport
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		404		{object}	utils.Response	"Club not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{clubID}/demographics [get]
func (h *ReportHandler) Demographics(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.Demographics(r.Context(), clubID)
	if err != nil {
		respondReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Financial godoc
//
//	@Summary		Financial summary of a club's treasury
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{object}	reportservice.FinancialReport
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		404		{object}	utils.Response	"Club not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{clubID}/financial [get]
func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.Financial(r.Context(), clubID)
	if err != nil {
		respondReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ExportFinancial godoc
//
//	@Summary		Download the financial summary as an XLSX workbook
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			clubID	path	int	true	"Club ID"
//	@Success		200		{file}	binary
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		404		{object}	utils.Response	"Club not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{clubID}/financial/export [get]
func (h *ReportHandler) ExportFinancial(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.Financial(r.Context(), clubID)
	if err != nil {
		respondReportError(w, err)
		return
	}

	data, err := h.exporter(report)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=financial-report-%d.xlsx", clubID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Points godoc
//
//	@Summary		Point totals by age bracket
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{object}	reportservice.PointsReport
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		404		{object}	utils.Response	"Club not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{clubID}/points [get]
func (h *ReportHandler) Points(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.reportService.Points(r.Context(), clubID)
	if err != nil {
		respondReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

func clubIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid club id")
		return 0, false
	}
	return clubID, true
}

func respondReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, reportservice.ErrClubNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
