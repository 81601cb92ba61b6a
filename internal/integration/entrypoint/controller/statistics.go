// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/statistics"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// StatisticsController handles statistics endpoints.
type StatisticsController struct {
	getUseCase      *statistics.GetStatisticsUseCase
	categoryUseCase *statistics.GetCategoryStatisticsUseCase
	trendUseCase    *statistics.GetTrendStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(
	getUseCase *statistics.GetStatisticsUseCase,
	categoryUseCase *statistics.GetCategoryStatisticsUseCase,
	trendUseCase *statistics.GetTrendStatisticsUseCase,
) *StatisticsController {
	return &StatisticsController{
		getUseCase:      getUseCase,
		categoryUseCase: categoryUseCase,
		trendUseCase:    trendUseCase,
	}
}

// Get handles GET /ledgers/:id/statistics requests. It returns the summary,
// category breakdown, daily series and trend series over one resolved range.
func (c *StatisticsController) Get(ctx *gin.Context) {
	userID, ledgerID, ok := c.requireUserAndLedgerID(ctx)
	if !ok {
		return
	}

	input := statistics.GetStatisticsInput{
		UserID:    userID,
		LedgerID:  ledgerID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Period:    statistics.ParsePeriod(ctx.Query("period")),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		input.BillType = &typeStr
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatisticsResponse(output))
}

// GetByCategory handles GET /ledgers/:id/statistics/category requests.
func (c *StatisticsController) GetByCategory(ctx *gin.Context) {
	userID, ledgerID, ok := c.requireUserAndLedgerID(ctx)
	if !ok {
		return
	}

	input := statistics.GetCategoryStatisticsInput{
		UserID:    userID,
		LedgerID:  ledgerID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		input.BillType = &typeStr
	}

	output, err := c.categoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryStatisticsResponse(output))
}

// GetTrend handles GET /ledgers/:id/statistics/trend requests. Both dates are
// required here; group_by selects the bucket granularity.
func (c *StatisticsController) GetTrend(ctx *gin.Context) {
	userID, ledgerID, ok := c.requireUserAndLedgerID(ctx)
	if !ok {
		return
	}

	input := statistics.GetTrendStatisticsInput{
		UserID:    userID,
		LedgerID:  ledgerID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		GroupBy:   statistics.ParseGranularity(ctx.Query("group_by")),
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendStatisticsResponse(output))
}

func (c *StatisticsController) requireUserAndLedgerID(ctx *gin.Context) (userID, ledgerID uuid.UUID, ok bool) {
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

// handleStatisticsError handles statistics errors and returns appropriate HTTP responses.
func (c *StatisticsController) handleStatisticsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatisticsError
	if errors.As(err, &statsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
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
