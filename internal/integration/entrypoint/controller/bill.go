// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/bill"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// BillController handles bill endpoints.
type BillController struct {
	createUseCase *bill.CreateBillUseCase
	listUseCase   *bill.ListBillsUseCase
	getUseCase    *bill.GetBillUseCase
	updateUseCase *bill.UpdateBillUseCase
	deleteUseCase *bill.DeleteBillUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	createUseCase *bill.CreateBillUseCase,
	listUseCase *bill.ListBillsUseCase,
	getUseCase *bill.GetBillUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
) *BillController {
	return &BillController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBillType),
		})
		return
	}

	ledgerID, err := uuid.Parse(req.LedgerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ledger ID format",
			Code:  string(domainerror.ErrCodeInvalidLedgerID),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
			Code:  string(domainerror.ErrCodeInvalidCategoryID),
		})
		return
	}

	input := bill.CreateBillInput{
		UserID:     userID,
		LedgerID:   ledgerID,
		CategoryID: categoryID,
		Type:       req.Type,
		Amount:     req.Amount,
		Note:       req.Note,
		BillDate:   req.BillDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// List handles GET /ledgers/:id/bills requests.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	ledgerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ledger ID format",
			Code:  string(domainerror.ErrCodeInvalidLedgerID),
		})
		return
	}

	input := bill.ListBillsInput{
		UserID:    userID,
		LedgerID:  ledgerID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		input.Type = &typeStr
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
				Code:  string(domainerror.ErrCodeInvalidCategoryID),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if creatorIDStr := ctx.Query("creator_id"); creatorIDStr != "" {
		creatorID, err := uuid.Parse(creatorIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid creator ID format",
			})
			return
		}
		input.CreatorID = &creatorID
	}

	input.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	input.PageSize, _ = strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	bills := make([]dto.BillResponse, 0, len(output.Bills))
	for _, b := range output.Bills {
		bills = append(bills, dto.ToBillResponse(b))
	}

	ctx.JSON(http.StatusOK, dto.BillListResponse{
		Bills: bills,
		Pagination: dto.BillPaginationResponse{
			Page:       output.Page,
			PageSize:   output.PageSize,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	})
}

// Get handles GET /bills/:id requests.
func (c *BillController) Get(ctx *gin.Context) {
	userID, billID, ok := c.requireUserAndBillID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), bill.GetBillInput{
		UserID: userID,
		BillID: billID,
	})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Update handles PATCH /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, billID, ok := c.requireUserAndBillID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := bill.UpdateBillInput{
		UserID:   userID,
		BillID:   billID,
		Type:     req.Type,
		Amount:   req.Amount,
		Note:     req.Note,
		BillDate: req.BillDate,
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
				Code:  string(domainerror.ErrCodeInvalidCategoryID),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	userID, billID, ok := c.requireUserAndBillID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), bill.DeleteBillInput{
		UserID: userID,
		BillID: billID,
	})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

func (c *BillController) requireUserAndBillID(ctx *gin.Context) (userID, billID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return userID, billID, false
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
			Code:  string(domainerror.ErrCodeInvalidBillID),
		})
		return userID, billID, false
	}

	return userID, billID, true
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		statusCode := http.StatusInternalServerError
		switch billErr.Code {
		case domainerror.ErrCodeInvalidBillID,
			domainerror.ErrCodeInvalidBillType,
			domainerror.ErrCodeInvalidBillAmount,
			domainerror.ErrCodeInvalidBillDate,
			domainerror.ErrCodeBillCategoryNotFound,
			domainerror.ErrCodeBillCategoryTypeMismatch:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeBillNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotBillCreator:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := http.StatusForbidden
		if ledgerErr.Code == domainerror.ErrCodeLedgerNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
