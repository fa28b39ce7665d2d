package app

import (
	"context"
	"fmt"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/database"
	"career-guide/internal/database/migration"
	dbpostgres "career-guide/internal/database/postgres"
	"career-guide/internal/database/seeder"
	"career-guide/internal/domain/chat"
	"career-guide/internal/domain/recommend"
	"career-guide/internal/domain/resume"
	"career-guide/internal/infrastructure/cache"
	"career-guide/internal/logger"
	"career-guide/internal/pkg/randsrc"
	"career-guide/internal/repository"
	"career-guide/internal/usecase"
	"career-guide/internal/ws"
)

// Container holds the wired dependencies shared by the HTTP and websocket layers.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Random randsrc.Source

	Accounts        usecase.AccountUsecase
	Profiles        usecase.ProfileUsecase
	Recommendations usecase.RecommendationUsecase
	Resumes         usecase.ResumeUsecase
	Applications    usecase.ApplicationUsecase
	Catalog         usecase.CatalogUsecase
	Chat            usecase.ChatUsecase
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := Wire(cfg, db, cache.NewRedis(cfg.Redis, logger.Component("cache")))
	return c, nil
}

// Wire builds the usecases on top of an open database and cache.
func Wire(cfg config.Config, db database.DB, rc *cache.Redis) *Container {
	rnd := randsrc.Default()
	hub := ws.NewHub(logger.Component("ws"))

	accounts := repository.NewPostgresAccountRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	resumes := repository.NewPostgresResumeRepository(db)
	jobs := repository.NewPostgresJobCatalogRepository(db)
	apps := repository.NewPostgresJobApplicationRepository(db)

	profileUC := usecase.NewProfileUsecase(accounts, profiles, logger.Component("profile"))
	recUC := usecase.NewRecommendationUsecase(recommend.NewEngine(), profileUC, resumes, jobs)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  rc,
		Hub:    hub,
		Random: rnd,

		Accounts:        usecase.NewAccountUsecase(accounts, profiles),
		Profiles:        profileUC,
		Recommendations: recUC,
		Resumes:         usecase.NewResumeUsecase(accounts, resumes, resume.NewAnalyzer(rnd), recUC),
		Applications:    usecase.NewApplicationUsecase(accounts, apps, hub, logger.Component("applications")),
		Catalog:         usecase.NewCatalogUsecase(jobs, rc, logger.Component("catalog")),
		Chat:            usecase.NewChatUsecase(chat.NewResponder(rnd)),
	}
}

func (c *Container) Migrate(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return fmt.Errorf("migrate: nil db")
	}
	_, err := migration.NewRunner().Run(ctx, c.DB.SQLDB())
	return err
}

// Seed loads the job catalog and drops any cached catalog reads.
func (c *Container) Seed(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return fmt.Errorf("seed: nil db")
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, c.DB); err != nil {
		return err
	}
	if c.Catalog != nil {
		if err := c.Catalog.InvalidateCache(ctx); err != nil {
			log := logger.Component("seeder")
			log.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
