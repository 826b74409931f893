package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/controllers"
	"equipment-system/internal/listeners"
	"equipment-system/internal/repositories"
	"equipment-system/internal/services"
	"equipment-system/pkg/eventbus"
	"equipment-system/pkg/middleware"
	"equipment-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	logger *zap.Logger,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	// --- РЕПОЗИТОРИИ ---
	organizationRepo := repositories.NewOrganizationRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	equipmentTypeRepo := repositories.NewEquipmentTypeRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	assignmentRepo := repositories.NewAssignmentRepository(dbConn)
	orderRepo := repositories.NewMaintenanceOrderRepository(dbConn)
	operatorRepo := repositories.NewOperatorRepository(dbConn)
	postRepo := repositories.NewPostRepository(dbConn)
	contractRepo := repositories.NewContractRepository(dbConn)
	alertRepo := repositories.NewAlertRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЛУШАТЕЛИ СОБЫТИЙ ---
	listeners.NewAlertListener(alertRepo, logger).Register(bus)

	// --- СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	organizationService := services.NewOrganizationService(organizationRepo, logger)
	userService := services.NewUserService(userRepo, logger)
	equipmentTypeService := services.NewEquipmentTypeService(equipmentTypeRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, equipmentTypeRepo, logger)
	assignmentService := services.NewAssignmentService(txManager, assignmentRepo, equipmentRepo, bus, logger)
	orderService := services.NewMaintenanceOrderService(txManager, orderRepo, equipmentRepo, bus, logger)
	operatorService := services.NewOperatorService(operatorRepo, logger)
	postService := services.NewPostService(postRepo, logger)
	contractService := services.NewContractService(contractRepo, logger)
	alertService := services.NewAlertService(alertRepo, logger)
	reportService := services.NewReportService(equipmentRepo, equipmentTypeRepo, logger)

	// --- КОНТРОЛЛЕРЫ ---
	authController := controllers.NewAuthController(authService, logger)
	organizationController := controllers.NewOrganizationController(organizationService, logger)
	userController := controllers.NewUserController(userService, logger)
	equipmentTypeController := controllers.NewEquipmentTypeController(equipmentTypeService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	assignmentController := controllers.NewAssignmentController(assignmentService, logger)
	orderController := controllers.NewMaintenanceOrderController(orderService, logger)
	operatorController := controllers.NewOperatorController(operatorService, logger)
	postController := controllers.NewPostController(postService, logger)
	contractController := controllers.NewContractController(contractService, logger)
	alertController := controllers.NewAlertController(alertService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	// --- РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runOrganizationRouter(secureGroup, organizationController, authMW)
	runUserRouter(secureGroup, userController, authMW)
	runEquipmentTypeRouter(secureGroup, equipmentTypeController, authMW)
	runEquipmentRouter(secureGroup, equipmentController, authMW)
	runAssignmentRouter(secureGroup, assignmentController, authMW)
	runMaintenanceOrderRouter(secureGroup, orderController, authMW)
	runOperatorRouter(secureGroup, operatorController, authMW)
	runPostRouter(secureGroup, postController, authMW)
	runContractRouter(secureGroup, contractController, authMW)
	runAlertRouter(secureGroup, alertController)
	runReportRouter(secureGroup, reportController)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
