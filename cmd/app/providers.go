package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/internal/domain/chat"
	"github.com/yanqian/culture-compass/internal/domain/itinerary"
	"github.com/yanqian/culture-compass/internal/domain/recommendation"
	"github.com/yanqian/culture-compass/internal/domain/user"
	"github.com/yanqian/culture-compass/internal/infra/catalogdata"
	"github.com/yanqian/culture-compass/internal/infra/chatrepo"
	"github.com/yanqian/culture-compass/internal/infra/config"
	"github.com/yanqian/culture-compass/internal/infra/itineraryrepo"
	"github.com/yanqian/culture-compass/internal/infra/llm/gemini"
	"github.com/yanqian/culture-compass/internal/infra/llm/openai"
	"github.com/yanqian/culture-compass/internal/infra/pdf"
	"github.com/yanqian/culture-compass/internal/infra/trendstore"
	"github.com/yanqian/culture-compass/internal/infra/userrepo"
)

func provideAdvisorConfig(cfg *config.Config) advisor.Config {
	return advisor.Config{
		CallTimeout:   cfg.AI.CallTimeout,
		RecoveryAfter: cfg.AI.RecoveryAfter,
	}
}

func provideRecommendationConfig(cfg *config.Config) recommendation.Config {
	return recommendation.Config{
		DefaultLimit: cfg.Recommendations.DefaultLimit,
		TrendingSize: cfg.Recommendations.TrendingSize,
	}
}

func provideOpenAIProvider(cfg *config.Config, logger *slog.Logger) *openai.Provider {
	c := cfg.AI.OpenAI
	if strings.TrimSpace(c.APIKey) == "" {
		logger.Warn("openai api key not set, provider disabled")
		return nil
	}
	return openai.New(openai.Config{
		APIKey:               c.APIKey,
		BaseURL:              c.BaseURL,
		Model:                c.Model,
		Temperature:          c.Temperature,
		AdviceMaxTokens:      c.AdviceMaxTokens,
		InsightsMaxTokens:    c.InsightsMaxTokens,
		DescriptionMaxTokens: c.DescriptionMaxTokens,
	}, logger)
}

func provideGeminiProvider(cfg *config.Config, logger *slog.Logger) (*gemini.Provider, func()) {
	c := cfg.AI.Gemini
	if strings.TrimSpace(c.APIKey) == "" {
		logger.Warn("gemini api key not set, provider disabled")
		return nil, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	provider, err := gemini.New(ctx, gemini.Config{
		APIKey:          c.APIKey,
		Model:           c.Model,
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize gemini client, provider disabled", "error", err)
		return nil, func() {}
	}
	return provider, func() {
		if err := provider.Close(); err != nil {
			logger.Warn("gemini client close failed", "error", err)
		}
	}
}

// provideRegistrations orders the fallback chain. A nil adapter keeps its
// slot so status still reports it as unavailable.
func provideRegistrations(primary *openai.Provider, secondary *gemini.Provider) []advisor.Registration {
	regs := []advisor.Registration{
		{Name: openai.Name, Policy: advisor.DowngradeOnThrottle},
		{Name: gemini.Name, Policy: advisor.DowngradeOnAnyError},
	}
	if primary != nil {
		regs[0].Provider = primary
	}
	if secondary != nil {
		regs[1].Provider = secondary
	}
	return regs
}

func provideCatalog(cfg *config.Config, logger *slog.Logger) (*catalogdata.MemoryCatalog, error) {
	cat, err := catalogdata.Load(cfg.Catalog.SeedPath)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.SeedPath != "" {
		logger.Info("catalog loaded from file", "path", cfg.Catalog.SeedPath)
	}
	return cat, nil
}

func provideRenderer() itinerary.Renderer {
	return pdf.NewRenderer("")
}

// providePostgresPool returns nil when no usable database is configured.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func()) {
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil, noop
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil, noop
	}
	logger.Info("postgres repositories enabled")
	return pool, pool.Close
}

func provideChatRepository(pool *pgxpool.Pool) chat.Repository {
	if pool == nil {
		return chatrepo.NewMemoryRepository()
	}
	return chatrepo.NewPostgresRepository(pool)
}

func provideItineraryRepository(pool *pgxpool.Pool) itinerary.Repository {
	if pool == nil {
		return itineraryrepo.NewMemoryRepository()
	}
	return itineraryrepo.NewPostgresRepository(pool)
}

func provideUserRepository(pool *pgxpool.Pool) user.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

// provideValkeyClient returns nil when valkey is disabled or unreachable.
func provideValkeyClient(cfg *config.Config, logger *slog.Logger) (valkey.Client, func()) {
	noop := func() {}
	if !cfg.Storage.Valkey.Enabled {
		return nil, noop
	}
	opt, err := buildValkeyOptions(cfg.Storage.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return nil, noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return nil, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return nil, noop
	}
	logger.Info("valkey trend store enabled", "addr", cfg.Storage.Valkey.Addr)
	return client, client.Close
}

func provideTrendStore(cfg *config.Config, client valkey.Client) recommendation.TrendStore {
	if client == nil {
		return trendstore.NewMemoryStore()
	}
	return trendstore.NewValkeyStore(client, cfg.Storage.Valkey.KeyPrefix)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
