package main

import (
	"context"
	"log/slog"
	"os"

	"shelf/config"
	"shelf/internal/delivery"
	"shelf/internal/delivery/api"
	"shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router/handler"
	"shelf/internal/infra/auth"
	"shelf/internal/infra/catalog/googlebooks"
	logs "shelf/internal/infra/log"
	"shelf/internal/infra/persistence/postgres"
	"shelf/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBookRepository,
			postgres.NewCategoryRepository,
			postgres.NewTagRepository,
			postgres.NewQuoteRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
			postgres.NewHealthChecker,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			googlebooks.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBookService,
			impl.NewCategoryService,
			impl.NewTagService,
			impl.NewQuoteService,
			impl.NewStatsService,
			impl.NewSearchService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBookHandler,
			handler.NewCategoryHandler,
			handler.NewTagHandler,
			handler.NewQuoteHandler,
			handler.NewStatsHandler,
			handler.NewSearchHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
