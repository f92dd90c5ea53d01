package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ecohero-plus/ecohero-api/docs"
	v1 "github.com/ecohero-plus/ecohero-api/internal/api/handler/v1"
	"github.com/ecohero-plus/ecohero-api/internal/api/middleware"
	"github.com/ecohero-plus/ecohero-api/internal/config"
	"github.com/ecohero-plus/ecohero-api/internal/repository"
	"github.com/ecohero-plus/ecohero-api/internal/repository/dao"
	"github.com/ecohero-plus/ecohero-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the handlers. A nil db is allowed: the server still starts,
// the health endpoint reports the degraded store, and data routes return 503.
func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	healthHandler := v1.NewHealthHandler(db)
	var userHandler *v1.UserHandler
	var challengeHandler *v1.ChallengeHandler
	var walletHandler *v1.WalletHandler
	if db != nil {
		userHandler = s.initUserHandler(db)
		challengeHandler = s.initChallengeHandler(db)
		walletHandler = s.initWalletHandler(db)
	}
	s.MountHandlers(db != nil, healthHandler, userHandler, challengeHandler, walletHandler)

	return s
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initChallengeHandler(db *gorm.DB) *v1.ChallengeHandler {
	challengeDAO := dao.NewChallengeDAO(db)
	repo := repository.NewChallengeRepository(challengeDAO)
	svc := service.NewChallengeService(repo)
	handler := v1.NewChallengeHandler(svc)

	return handler
}

func (s *Server) initWalletHandler(db *gorm.DB) *v1.WalletHandler {
	walletRepo := repository.NewWalletRepository(dao.NewWalletDAO(db), dao.NewSubmissionDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	challengeRepo := repository.NewChallengeRepository(dao.NewChallengeDAO(db))
	svc := service.NewWalletService(walletRepo, userRepo, challengeRepo)
	handler := v1.NewWalletHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.NewRateLimiter(s.Config.API.RateLimitPerSecond, s.Config.API.RateLimitBurst).Limit())
}

func (s *Server) MountHandlers(storeConfigured bool, healthHandler *v1.HealthHandler, userHandler *v1.UserHandler, challengeHandler *v1.ChallengeHandler, walletHandler *v1.WalletHandler) {
	s.Router.GET("/", healthHandler.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.Router.Group("", middleware.RequireStore(storeConfigured))
	if storeConfigured {
		api.GET("/challenges", challengeHandler.HandleListChallenges)
		api.POST("/seed", challengeHandler.HandleSeed)
		api.POST("/users", userHandler.HandleCreateUser)
		api.POST("/submit", walletHandler.HandleSubmit)
		api.GET("/wallet/:userID", walletHandler.HandleGetWallet)
		api.POST("/redeem", walletHandler.HandleRedeem)
	} else {
		// Routes still answer (with 503) when the store is missing, instead
		// of 404ing.
		for _, route := range [][2]string{
			{"GET", "/challenges"},
			{"POST", "/seed"},
			{"POST", "/users"},
			{"POST", "/submit"},
			{"GET", "/wallet/:userID"},
			{"POST", "/redeem"},
		} {
			api.Handle(route[0], route[1], func(*gin.Context) {})
		}
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "EcoHero+ API"
	docs.SwaggerInfo.Description = "Eco-challenge rewards backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
