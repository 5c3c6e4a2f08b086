//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/culture-compass/internal/bootstrap"
	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/internal/domain/catalog"
	"github.com/yanqian/culture-compass/internal/domain/chat"
	"github.com/yanqian/culture-compass/internal/domain/itinerary"
	"github.com/yanqian/culture-compass/internal/domain/recommendation"
	"github.com/yanqian/culture-compass/internal/domain/user"
	"github.com/yanqian/culture-compass/internal/infra/catalogdata"
	"github.com/yanqian/culture-compass/internal/infra/config"
	httpiface "github.com/yanqian/culture-compass/internal/interface/http"
	"github.com/yanqian/culture-compass/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAdvisorConfig,
		provideRecommendationConfig,
		provideOpenAIProvider,
		provideGeminiProvider,
		provideRegistrations,
		provideCatalog,
		provideRenderer,
		providePostgresPool,
		provideChatRepository,
		provideItineraryRepository,
		provideUserRepository,
		provideValkeyClient,
		provideTrendStore,
		advisor.NewService,
		recommendation.NewService,
		chat.NewService,
		itinerary.NewService,
		user.NewService,
		wire.Bind(new(catalog.Catalog), new(*catalogdata.MemoryCatalog)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
