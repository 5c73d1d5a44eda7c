package routes

import (
	"fmt"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/api/handlers"
	"cortex-backend/internal/api/middleware"
	"cortex-backend/internal/auth"
	"cortex-backend/internal/cache"
	"cortex-backend/internal/config"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/metrics"
	"cortex-backend/internal/repository"
	"cortex-backend/internal/sandbox"
	"cortex-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server holds the router and the background components main has to start and stop
type Server struct {
	Router      *gin.Engine
	Sweeper     *cache.Sweeper
	RateLimiter *middleware.RateLimiter
}

// SetupRoutes wires repositories, services and handlers and configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*Server, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validator := service.NewValidator()

	// Repositories
	orgRepo := repository.NewOrgRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	objectRepo := repository.NewObjectRepository(db)
	instanceRepo := repository.NewInstanceRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	cacheRepo := repository.NewCacheRepository(db)
	deploymentRepo := repository.NewDeploymentRepository(db)

	store, err := cache.Open(cfg, cacheRepo)
	if err != nil {
		return nil, err
	}
	sweeper, err := cache.NewSweeper(store, cfg.CacheSweepSchedule)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	runner := sandbox.NewRunner(sandbox.Config{
		Timeout:        cfg.SandboxTimeout(),
		MaxScriptBytes: cfg.SandboxMaxScriptBytes,
	})
	passwords := service.NewPasswordHasher(0)

	// Services
	orgService := service.NewOrgService(orgRepo, passwords, validator)
	accountService := service.NewAccountService(accountRepo, orgRepo, tokens, passwords, validator)
	objectService := service.NewObjectService(objectRepo, instanceRepo, runner, validator)
	instanceService := service.NewInstanceService(objectService, instanceRepo, connectionRepo, counterRepo, runner, service.RetryPolicy{
		MaxRetries:      uint64(cfg.SequenceMaxRetries),
		InitialInterval: cfg.SequenceRetryInitial(),
		MaxInterval:     cfg.SequenceRetryMax(),
	})
	connectionService := service.NewConnectionService(connectionRepo, accountRepo, instanceService, validator)
	counterService := service.NewCounterService(counterRepo)
	cacheService := service.NewCacheService(store)
	deploymentService := service.NewDeploymentService(objectService, objectRepo, deploymentRepo, orgRepo)

	authMiddleware := auth.NewAuthMiddleware(tokens, orgService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.CacheDriver)
	orgHandler := handlers.NewOrgHandler(orgService, accountService, cfg.ProvisioningKey)
	accountHandler := handlers.NewAccountHandler(accountService)
	objectHandler := handlers.NewObjectHandler(objectService)
	instanceHandler := handlers.NewInstanceHandler(instanceService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	counterHandler := handlers.NewCounterHandler(counterService)
	cacheHandler := handlers.NewCacheHandler(cacheService)
	deploymentHandler := handlers.NewDeploymentHandler(deploymentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Requests are limited per account once authenticated, per client IP before that
	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limit = limiter.Handler()
	}

	v1 := router.Group("/api/v1")
	{
		provisioning := v1.Group("/orgs", limit, orgHandler.RequireProvisioningKey())
		{
			provisioning.POST("", orgHandler.Provision)
			provisioning.GET("", orgHandler.ListOrgs)
			provisioning.DELETE("/:org", orgHandler.DeleteOrg)
		}

		v1.GET("/orgs/:org", limit, orgHandler.GetOrg)

		public := v1.Group("/orgs/:org", limit, authMiddleware.RequireOrg())
		{
			public.POST("/login", orgHandler.Login)
		}

		org := v1.Group("/orgs/:org", authMiddleware.RequireOrg(), authMiddleware.RequireAuth(), limit)
		{
			org.PUT("", orgHandler.UpdateOrg)

			accounts := org.Group("/accounts")
			{
				accounts.GET("", accountHandler.ListAccounts)
				accounts.POST("", accountHandler.CreateAccount)
				accounts.GET("/me", accountHandler.Me)
				accounts.GET("/:id", accountHandler.GetAccount)
				accounts.PUT("/:id", accountHandler.UpdateAccount)
				accounts.DELETE("/:id", accountHandler.DeleteAccount)
			}

			objects := org.Group("/objects")
			{
				objects.GET("", objectHandler.ListObjects)
				objects.POST("", objectHandler.CreateObject)
				objects.GET("/:object", objectHandler.GetObject)
				objects.PUT("/:object", objectHandler.UpdateObject)
				objects.DELETE("/:object", objectHandler.DeleteObject)

				instances := objects.Group("/:object/instances")
				{
					instances.GET("", instanceHandler.ListInstances)
					instances.POST("", instanceHandler.CreateInstance)
					instances.GET("/:id", instanceHandler.GetInstance)
					instances.PATCH("/:id", instanceHandler.UpdateInstance)
					instances.DELETE("/:id", instanceHandler.DeleteInstance)
					instances.GET("/:id/connections", connectionHandler.ListInstanceConnections)
					instances.POST("/:id/connections", connectionHandler.CreateConnection)
				}
			}

			connections := org.Group("/connections")
			{
				connections.GET("", connectionHandler.ListMyConnections)
				connections.POST("/:id/accept", connectionHandler.AcceptConnection)
				connections.POST("/:id/reject", connectionHandler.RejectConnection)
				connections.DELETE("/:id", connectionHandler.DeleteConnection)
			}

			counters := org.Group("/counters", auth.RequireRole(acl.RoleAdministrator))
			{
				counters.GET("", counterHandler.ListCounters)
				counters.GET("/:name", counterHandler.GetCounter)
				counters.POST("/:name/next", counterHandler.NextCounter)
				counters.DELETE("/:name", counterHandler.ResetCounter)
			}

			cacheGroup := org.Group("/cache", auth.RequireRole(acl.RoleAdministrator))
			{
				cacheGroup.GET("", cacheHandler.ListCache)
				cacheGroup.HEAD("", cacheHandler.CountCache)
				cacheGroup.DELETE("", cacheHandler.ClearCache)
				cacheGroup.GET("/:key", cacheHandler.GetCacheKey)
				cacheGroup.HEAD("/:key", cacheHandler.HasCacheKey)
				cacheGroup.PUT("/:key", cacheHandler.SetCacheKey)
				cacheGroup.DELETE("/:key", cacheHandler.DeleteCacheKey)
			}

			deployments := org.Group("/deployments", auth.RequireRole(acl.RoleDeveloper))
			{
				deployments.GET("", deploymentHandler.ListDeployments)
				deployments.GET("/export", deploymentHandler.ExportBundle)
				deployments.POST("/import", deploymentHandler.ImportBundle)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		fault := apperrors.ErrRouteNotFound.WithResource(c.Request.Method + " " + c.Request.URL.Path)
		c.JSON(fault.Status, fault)
	})

	return &Server{Router: router, Sweeper: sweeper, RateLimiter: limiter}, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, cfg.CacheDriver)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

// cleanupInterval is how often idle rate limiters are dropped
const cleanupInterval = time.Minute

// StartBackground starts the cache sweeper and the rate limiter cleanup until stop is closed
func (s *Server) StartBackground(stop <-chan struct{}) {
	s.Sweeper.Start()
	if s.RateLimiter != nil {
		s.RateLimiter.StartCleanup(cleanupInterval, stop)
	}
}
