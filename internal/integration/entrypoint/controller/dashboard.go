// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financas-app/backend/internal/application/usecase/dashboard"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/integration/entrypoint/dto"
	"github.com/financas-app/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetMonthSummaryUseCase
	tracker        *dashboard.RequestTracker
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetMonthSummaryUseCase,
	tracker *dashboard.RequestTracker,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		tracker:        tracker,
	}
}

// Summary handles GET /dashboard/summary requests. Month and year are
// required query parameters. When the viewer steps periods faster than the
// aggregation completes, the response for a superseded request is discarded.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	period, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	token := c.tracker.Begin(userID)

	input := dashboard.GetMonthSummaryInput{
		OwnerID: userID,
		Period:  period,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if !c.tracker.StillCurrent(userID, token) {
		// A newer request for this viewer superseded this one.
		ctx.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output.Summary))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		status := http.StatusInternalServerError
		if dshErr.Code == domainerror.ErrCodeInvalidPeriod {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
