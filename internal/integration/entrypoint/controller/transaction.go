// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/financas-app/backend/internal/application/usecase/transaction"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/integration/entrypoint/dto"
	"github.com/financas-app/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeTransactionInvalid),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		OwnerID: userID,
		Draft:   req.ToDraft(),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Kind, month and year are required
// query parameters; the response is one kind's records for the period.
func (c *TransactionController) List(ctx *gin.Context) {
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

	input := transaction.ListTransactionsInput{
		OwnerID: userID,
		Kind:    entity.TransactionKind(ctx.Query("kind")),
		Period:  period,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var valErr *transaction.ValidationError
	if errors.As(err, &valErr) {
		fields := make(map[string]string, len(valErr.Fields))
		for field, msg := range valErr.Fields {
			fields[string(field)] = msg
		}
		ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Error:  valErr.Form,
			Code:   string(domainerror.ErrCodeTransactionInvalid),
			Fields: fields,
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		if txnErr.Code == domainerror.ErrCodeMissingOwner {
			status = http.StatusUnauthorized
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parsePeriodQuery reads the month and year query parameters, writing the
// error response itself when they are malformed.
func parsePeriodQuery(ctx *gin.Context) (entity.Period, bool) {
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return entity.Period{}, false
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return entity.Period{}, false
	}
	return entity.Period{Month: month, Year: year}, true
}
