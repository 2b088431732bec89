package app

import (
	"context"
	"time"

	"jobmatcher/internal/config"
	"jobmatcher/internal/database"
	dbpostgres "jobmatcher/internal/database/postgres"
	"jobmatcher/internal/domain/matching"
	"jobmatcher/internal/embedding"
	"jobmatcher/internal/infrastructure/cache"
	"jobmatcher/internal/parser"
	"jobmatcher/internal/repository"
	"jobmatcher/internal/usecase"

	"go.uber.org/zap"
)

// Container holds every long-lived dependency of the server process.
type Container struct {
	Config config.Config
	Log    *zap.Logger
	DB     database.DB
	Redis  *cache.Redis

	Source    *embedding.Source
	Evaluator *matching.Evaluator

	Jobs            usecase.JobUsecase
	Candidates      usecase.CandidateUsecase
	Matching        usecase.MatchingUsecase
	Recommendations usecase.RecommendationUsecase
	Parse           usecase.ParseUsecase
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, log)

	provider, err := embedding.NewOpenAIProvider(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.EmbeddingModel,
		cfg.OpenAI.EmbeddingDimensions,
	)
	if err != nil {
		_ = db.Close()
		_ = redisCache.Close()
		return nil, err
	}

	embedCache := embedding.NewCache(cfg.Matching.CacheSize, cfg.Matching.CacheTTL)
	source := embedding.NewSource(provider, embedCache, log)

	evaluator := matching.NewEvaluator(
		source,
		cfg.Matching.SemanticWeight,
		cfg.Matching.RuleWeight,
		log,
	)

	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)

	// Gemini parsing is optional; without a key the parse endpoints answer 503.
	var llm usecase.ResumeJobParser
	if cfg.Gemini.APIKey != "" {
		client, err := parser.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
		if err != nil {
			log.Warn("gemini client unavailable, parse endpoints disabled", zap.Error(err))
		} else {
			llm = client
		}
	}

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisCache,

		Source:    source,
		Evaluator: evaluator,

		Jobs:            usecase.NewJobUsecase(jobRepo, redisCache, log),
		Candidates:      usecase.NewCandidateUsecase(candidateRepo, redisCache, log),
		Matching:        usecase.NewMatchingUsecase(jobRepo, candidateRepo, evaluator, source, cfg.Matching, log),
		Recommendations: usecase.NewRecommendationUsecase(jobRepo, candidateRepo, log),
		Parse:           usecase.NewParseUsecase(llm, candidateRepo, cfg.Upload, log),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
