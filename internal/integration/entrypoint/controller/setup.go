// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financas-app/backend/internal/application/usecase/setup"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/integration/entrypoint/dto"
	"github.com/financas-app/backend/internal/integration/entrypoint/middleware"
)

// SetupController handles setup wizard endpoints.
type SetupController struct {
	completeUseCase *setup.CompleteSetupUseCase
}

// NewSetupController creates a new setup controller instance.
func NewSetupController(completeUseCase *setup.CompleteSetupUseCase) *SetupController {
	return &SetupController{
		completeUseCase: completeUseCase,
	}
}

// Steps handles GET /setup/steps requests. The step table is fixed; the
// client renders it screen by screen.
func (c *SetupController) Steps(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToSetupStepsResponse(setup.Steps))
}

// Complete handles POST /setup/complete requests. It flips the user's
// initial-setup flag and seeds one record per populated wizard field.
func (c *SetupController) Complete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CompleteSetupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := setup.CompleteSetupInput{
		OwnerID: userID,
		Values:  req.Values,
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var txnErr *domainerror.TransactionError
		if errors.As(err, &txnErr) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: txnErr.Message,
				Code:  string(txnErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to complete setup",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CompleteSetupResponse{
		SeededCount: output.SeededCount,
	})
}
