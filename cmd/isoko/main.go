package main

import (
	"context"
	"log/slog"
	"os"

	"isoko/config"
	"isoko/internal/delivery"
	"isoko/internal/delivery/http"
	"isoko/internal/delivery/http/middleware"
	"isoko/internal/delivery/http/router/handler"
	deliverymiddleware "isoko/internal/delivery/middleware"
	"isoko/internal/domain/service"
	logs "isoko/internal/infra/log"
	"isoko/internal/infra/persistence/postgres"
	"isoko/internal/infra/pubsub"
	"isoko/internal/infra/qrcode"
	"isoko/internal/usecase/impl"

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
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
			postgres.NewPaymentRepository,
			postgres.NewAdminNoteRepository,
			postgres.NewChatRepository,
			postgres.NewStoreFollowerRepository,
			postgres.NewAffiliateRepository,
			postgres.NewAffiliateEarningRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://isoko.io/?promo=")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdminService,
			impl.NewStorefrontService,
			impl.NewAffiliateService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewStoreHandler,
			handler.NewAffiliateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
