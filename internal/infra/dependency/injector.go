// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/config"
	"github.com/ledgerbook/backend/internal/application/usecase/auth"
	"github.com/ledgerbook/backend/internal/application/usecase/bill"
	"github.com/ledgerbook/backend/internal/application/usecase/category"
	"github.com/ledgerbook/backend/internal/application/usecase/group"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/application/usecase/statistics"
	"github.com/ledgerbook/backend/internal/application/usecase/user"
	"github.com/ledgerbook/backend/internal/infra/server/router"
	"github.com/ledgerbook/backend/internal/integration/adapters"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, healthController *controller.HealthController) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	billRepo := persistence.NewBillRepository(db)
	groupRepo := persistence.NewGroupRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	clock := adapters.NewSystemClock()

	// Shared ledger access check, used by every ledger-scoped use case
	accessChecker := ledger.NewAccessChecker(ledgerRepo, groupRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, ledgerRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService)

	// Create ledger use cases
	createLedgerUseCase := ledger.NewCreateLedgerUseCase(ledgerRepo, groupRepo)
	listLedgersUseCase := ledger.NewListLedgersUseCase(ledgerRepo, groupRepo)
	getLedgerUseCase := ledger.NewGetLedgerUseCase(accessChecker)
	updateLedgerUseCase := ledger.NewUpdateLedgerUseCase(ledgerRepo, accessChecker)
	deleteLedgerUseCase := ledger.NewDeleteLedgerUseCase(ledgerRepo, groupRepo, accessChecker)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, accessChecker)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, accessChecker)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, accessChecker)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, accessChecker)

	// Create bill use cases
	createBillUseCase := bill.NewCreateBillUseCase(billRepo, categoryRepo, accessChecker)
	listBillsUseCase := bill.NewListBillsUseCase(billRepo, accessChecker)
	getBillUseCase := bill.NewGetBillUseCase(billRepo, accessChecker)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo, categoryRepo, accessChecker)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo, accessChecker)

	// Create statistics use cases
	dateRangeResolver := statistics.NewDateRangeResolver(clock)
	getStatisticsUseCase := statistics.NewGetStatisticsUseCase(billRepo, categoryRepo, accessChecker, dateRangeResolver)
	getCategoryStatisticsUseCase := statistics.NewGetCategoryStatisticsUseCase(billRepo, categoryRepo, accessChecker)
	getTrendStatisticsUseCase := statistics.NewGetTrendStatisticsUseCase(billRepo, accessChecker)

	// Create group use cases
	createGroupUseCase := group.NewCreateGroupUseCase(groupRepo, ledgerRepo)
	listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
	getGroupUseCase := group.NewGetGroupUseCase(groupRepo, ledgerRepo)
	updateGroupUseCase := group.NewUpdateGroupUseCase(groupRepo)
	deleteGroupUseCase := group.NewDeleteGroupUseCase(groupRepo)
	joinGroupUseCase := group.NewJoinGroupUseCase(groupRepo)
	leaveGroupUseCase := group.NewLeaveGroupUseCase(groupRepo)
	removeMemberUseCase := group.NewRemoveMemberUseCase(groupRepo)
	changeMemberRoleUseCase := group.NewChangeMemberRoleUseCase(groupRepo)
	transferOwnershipUseCase := group.NewTransferOwnershipUseCase(groupRepo)
	resetInviteCodeUseCase := group.NewResetInviteCodeUseCase(groupRepo)

	// Create controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
	)

	ledgerController := controller.NewLedgerController(
		createLedgerUseCase,
		listLedgersUseCase,
		getLedgerUseCase,
		updateLedgerUseCase,
		deleteLedgerUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	billController := controller.NewBillController(
		createBillUseCase,
		listBillsUseCase,
		getBillUseCase,
		updateBillUseCase,
		deleteBillUseCase,
	)

	statisticsController := controller.NewStatisticsController(
		getStatisticsUseCase,
		getCategoryStatisticsUseCase,
		getTrendStatisticsUseCase,
	)

	groupController := controller.NewGroupController(
		createGroupUseCase,
		listGroupsUseCase,
		getGroupUseCase,
		updateGroupUseCase,
		deleteGroupUseCase,
		joinGroupUseCase,
		leaveGroupUseCase,
		removeMemberUseCase,
		changeMemberRoleUseCase,
		transferOwnershipUseCase,
		resetInviteCodeUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		ledgerController,
		categoryController,
		billController,
		statisticsController,
		groupController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
