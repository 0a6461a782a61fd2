package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/gustavoesucri/back-end-ifd/internal/config"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/auth"
	authHandler "github.com/gustavoesucri/back-end-ifd/internal/domains/auth/handler"
	authRepo "github.com/gustavoesucri/back-end-ifd/internal/domains/auth/repository"
	authService "github.com/gustavoesucri/back-end-ifd/internal/domains/auth/service"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/campaign"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/contact"
	contactHandler "github.com/gustavoesucri/back-end-ifd/internal/domains/contact/handler"
	contactRepo "github.com/gustavoesucri/back-end-ifd/internal/domains/contact/repository"
	contactService "github.com/gustavoesucri/back-end-ifd/internal/domains/contact/service"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	contentHandler "github.com/gustavoesucri/back-end-ifd/internal/domains/content/handler"
	contentRepo "github.com/gustavoesucri/back-end-ifd/internal/domains/content/repository"
	contentService "github.com/gustavoesucri/back-end-ifd/internal/domains/content/service"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/home"
	homeHandler "github.com/gustavoesucri/back-end-ifd/internal/domains/home/handler"
	homeRepo "github.com/gustavoesucri/back-end-ifd/internal/domains/home/repository"
	homeService "github.com/gustavoesucri/back-end-ifd/internal/domains/home/service"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/news"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/partner"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/project"
	infraCache "github.com/gustavoesucri/back-end-ifd/internal/infrastructure/cache"
	"github.com/gustavoesucri/back-end-ifd/internal/infrastructure/database"
	"github.com/gustavoesucri/back-end-ifd/internal/infrastructure/email"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/middleware"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
	"github.com/gustavoesucri/back-end-ifd/pkg/cache"
	"github.com/gustavoesucri/back-end-ifd/pkg/jwt"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

// Container is the root of the dependency graph. Build order matters:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisCache // nil when Redis is unreachable
	Cache      cache.Cache            // nil disables the content cache
	JWTManager *jwt.Manager
	Mailer     email.Mailer
	Registry   *prometheus.Registry
	Metrics    *middleware.HTTPMetrics

	// Repositories
	CampaignRepo content.Repository[campaign.Campaign]
	NewsRepo     content.Repository[news.News]
	PartnerRepo  content.Repository[partner.Partner]
	ProjectRepo  content.Repository[project.Project]
	HomeRepo     home.Repository
	ContactRepo  contact.Repository
	AuthRepo     auth.Repository

	// Services
	CampaignService contentService.Service[campaign.Campaign]
	NewsService     contentService.Service[news.News]
	PartnerService  contentService.Service[partner.Partner]
	ProjectService  contentService.Service[project.Project]
	HomeService     homeService.ServiceInterface
	ContactService  contactService.ServiceInterface
	AuthService     authService.ServiceInterface

	// Handlers
	CampaignHandler *contentHandler.Handler[campaign.Campaign]
	NewsHandler     *contentHandler.Handler[news.News]
	PartnerHandler  *contentHandler.Handler[partner.Partner]
	ProjectHandler  *contentHandler.Handler[project.Project]
	HomeHandler     *homeHandler.HomeHandler
	ContactHandler  *contactHandler.ContactHandler
	AuthHandler     *authHandler.AuthHandler
}

// NewContainer connects the infrastructure and wires every domain.
// A Redis outage is not fatal: the content cache is simply disabled.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.Info("Initializing container", map[string]interface{}{"env": cfg.App.Environment})

	c := &Container{Config: cfg}

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("Redis unavailable, content cache disabled", map[string]interface{}{"error": err.Error()})
		_ = redisCache.Close()
	} else {
		c.Redis = redisCache
		c.Cache = redisCache
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	c.Mailer = email.NewSMTPEmailService(email.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Secure:    cfg.Mail.Secure,
		User:      cfg.Mail.User,
		Password:  cfg.Mail.Password,
		FromName:  cfg.Mail.FromName,
		FromEmail: cfg.Mail.FromEmail,
	})

	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = middleware.NewHTTPMetrics(c.Registry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Redis.CacheTTL

	c.CampaignRepo = cachedContent(pool, c.Cache, campaign.Schema, ttl)
	c.NewsRepo = cachedContent(pool, c.Cache, news.Schema, ttl)
	c.PartnerRepo = cachedContent(pool, c.Cache, partner.Schema, ttl)
	c.ProjectRepo = cachedContent(pool, c.Cache, project.Schema, ttl)

	c.HomeRepo = homeRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.AuthRepo = authRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.CampaignService = contentService.NewLifecycle(campaign.Schema, c.CampaignRepo, utils.GenerateSlug)
	c.NewsService = contentService.NewLifecycle(news.Schema, c.NewsRepo, utils.GenerateSlug)
	c.PartnerService = contentService.NewLifecycle(partner.Schema, c.PartnerRepo, utils.GenerateSlug)
	c.ProjectService = contentService.NewLifecycle(project.Schema, c.ProjectRepo, utils.GenerateSlug)

	c.HomeService = homeService.NewHomeService(c.HomeRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Mailer, c.Config.Mail.To)
	c.AuthService = authService.NewAuthService(c.AuthRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.CampaignHandler = contentHandler.NewHandler(c.CampaignService,
		func() contentHandler.CreateRequest[campaign.Campaign] { return &campaign.CreateCampaignRequest{} },
		func() contentHandler.UpdateRequest[campaign.Campaign] { return &campaign.UpdateCampaignRequest{} },
	)
	c.NewsHandler = contentHandler.NewHandler(c.NewsService,
		func() contentHandler.CreateRequest[news.News] { return &news.CreateNewsRequest{} },
		func() contentHandler.UpdateRequest[news.News] { return &news.UpdateNewsRequest{} },
	)
	c.PartnerHandler = contentHandler.NewHandler(c.PartnerService,
		func() contentHandler.CreateRequest[partner.Partner] { return &partner.CreatePartnerRequest{} },
		func() contentHandler.UpdateRequest[partner.Partner] { return &partner.UpdatePartnerRequest{} },
	)
	c.ProjectHandler = contentHandler.NewHandler(c.ProjectService,
		func() contentHandler.CreateRequest[project.Project] { return &project.CreateProjectRequest{} },
		func() contentHandler.UpdateRequest[project.Project] { return &project.UpdateProjectRequest{} },
	)

	c.HomeHandler = homeHandler.NewHomeHandler(c.HomeService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

func cachedContent[E any](pool *pgxpool.Pool, c cache.Cache, schema content.Schema[E], ttl time.Duration) content.Repository[E] {
	return contentRepo.NewCachedRepository(contentRepo.NewPostgresRepository(pool, schema), c, schema, ttl)
}

// Cleanup releases the database pool and the Redis client.
func (c *Container) Cleanup() {
	logger.Info("Cleaning up container resources", nil)

	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
}
