// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles ledger endpoints.
type LedgerController struct {
	createUseCase *ledger.CreateLedgerUseCase
	listUseCase   *ledger.ListLedgersUseCase
	getUseCase    *ledger.GetLedgerUseCase
	updateUseCase *ledger.UpdateLedgerUseCase
	deleteUseCase *ledger.DeleteLedgerUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	createUseCase *ledger.CreateLedgerUseCase,
	listUseCase *ledger.ListLedgersUseCase,
	getUseCase *ledger.GetLedgerUseCase,
	updateUseCase *ledger.UpdateLedgerUseCase,
	deleteUseCase *ledger.DeleteLedgerUseCase,
) *LedgerController {
	return &LedgerController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /ledgers requests.
func (c *LedgerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateLedgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeLedgerNameRequired),
		})
		return
	}

	input := ledger.CreateLedgerInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Currency,
	}

	if req.GroupID != nil && *req.GroupID != "" {
		groupID, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid group ID format",
				Code:  string(domainerror.ErrCodeInvalidGroupID),
			})
			return
		}
		input.GroupID = &groupID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLedgerResponse(output.Ledger))
}

// List handles GET /ledgers requests.
func (c *LedgerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListLedgersInput{UserID: userID})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerListResponse(output.Ledgers))
}

// Get handles GET /ledgers/:id requests.
func (c *LedgerController) Get(ctx *gin.Context) {
	userID, ledgerID, ok := c.requireUserAndLedgerID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetLedgerInput{
		UserID:   userID,
		LedgerID: ledgerID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output.Ledger))
}

// Update handles PATCH /ledgers/:id requests.
func (c *LedgerController) Update(ctx *gin.Context) {
	userID, ledgerID, ok := c.requireUserAndLedgerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateLedgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := ledger.UpdateLedgerInput{
		UserID:      userID,
		LedgerID:    ledgerID,
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Currency,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output.Ledger))
}

// Delete handles DELETE /ledgers/:id requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	userID, ledgerID, ok := c.requireUserAndLedgerID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteLedgerInput{
		UserID:   userID,
		LedgerID: ledgerID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// requireUserAndLedgerID extracts the authenticated user and the :id path
// parameter, writing the error response itself when either is missing.
func (c *LedgerController) requireUserAndLedgerID(ctx *gin.Context) (userID, ledgerID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return userID, ledgerID, false
	}

	ledgerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ledger ID format",
			Code:  string(domainerror.ErrCodeInvalidLedgerID),
		})
		return userID, ledgerID, false
	}

	return userID, ledgerID, true
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := http.StatusInternalServerError
		switch ledgerErr.Code {
		case domainerror.ErrCodeInvalidLedgerID, domainerror.ErrCodeLedgerNameRequired:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeLedgerNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeLedgerAccessDenied:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	// Group ledgers surface membership errors
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		statusCode := http.StatusForbidden
		if groupErr.Code == domainerror.ErrCodeGroupNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
