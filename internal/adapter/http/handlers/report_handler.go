package handlers

import (
	"errors"
	"net/http"

	response "horecamart/internal/adapter/http/dto/response"
	"horecamart/internal/usecase"
	"horecamart/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the back-office reporting views: the client activity
// dashboard, product rankings, conversion summaries, and order stats.

type ReportHandler struct {
	activity usecase.IClientActivityUseCase
	reports  usecase.IBusinessReportUseCase
}

func NewReportHandler(activity usecase.IClientActivityUseCase, reports usecase.IBusinessReportUseCase) *ReportHandler {
	return &ReportHandler{activity: activity, reports: reports}
}

func (h *ReportHandler) ClientActivity(c *gin.Context) {
	report, err := h.activity.AggregateClientActivity(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientActivityReport(report))
}

// TopProducts ranks products by total quantity across quotation or order
// lines, selected by the source query parameter (default: quotations).
func (h *ReportHandler) TopProducts(c *gin.Context) {
	source := usecase.ProductRankingSource(c.DefaultQuery("source", string(usecase.RankingSourceQuotations)))

	rankings, err := h.reports.TopProducts(c.Request.Context(), source)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductRankings(rankings))
}

func (h *ReportHandler) ClientSummaries(c *gin.Context) {
	summaries, err := h.reports.ClientSummaries(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientReports(summaries))
}

func (h *ReportHandler) OrderStats(c *gin.Context) {
	stats, err := h.reports.OrderStats(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderStats(stats))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRankingSource):
		return pkg.NewDomainErrorSimple("INVALID_RANKING_SOURCE", "Ranking source must be quotations or orders", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
