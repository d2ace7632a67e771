// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farm-manager/backend/internal/application/usecase/report"
	domainerror "github.com/farm-manager/backend/internal/domain/error"
	"github.com/farm-manager/backend/internal/integration/entrypoint/dto"
)

// ReportGenerator builds farm reports.
type ReportGenerator interface {
	Execute(ctx context.Context, input report.GetReportInput) (*report.Report, error)
}

// ReportController handles report endpoints.
type ReportController struct {
	getReportUseCase ReportGenerator
}

// NewReportController creates a new report controller instance.
func NewReportController(getReportUseCase ReportGenerator) *ReportController {
	return &ReportController{
		getReportUseCase: getReportUseCase,
	}
}

// GetReport handles GET /reports requests.
// Unknown period values are served as month.
func (c *ReportController) GetReport(ctx *gin.Context) {
	var query dto.GetReportQuery
	// Binding only fails on malformed query strings; fall back to the default period.
	_ = ctx.ShouldBindQuery(&query)

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), report.GetReportInput{
		Period: report.Period(query.Period),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// handleReportError logs the failure and answers with a generic message.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	code := domainerror.ErrCodeReportAggregationFailed
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		code = reportErr.Code
	}

	slog.ErrorContext(ctx.Request.Context(), "Failed to generate report",
		"period", ctx.Query("period"),
		"code", code,
		"error", err,
	)

	ctx.JSON(http.StatusInternalServerError, dto.FailureResponse{
		Success: false,
		Error:   "Failed to generate report",
	})
}
