package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"campustrace/config"
	"campustrace/internal/delivery"
	"campustrace/internal/delivery/http"
	"campustrace/internal/delivery/http/middleware"
	"campustrace/internal/delivery/http/router/handler"
	"campustrace/internal/domain/service"
	"campustrace/internal/infra/auth"
	"campustrace/internal/infra/captcha"
	logs "campustrace/internal/infra/log"
	"campustrace/internal/infra/mail"
	"campustrace/internal/infra/notification"
	"campustrace/internal/infra/persistence/postgres"
	"campustrace/internal/infra/pubsub"
	"campustrace/internal/infra/qrcode"
	"campustrace/internal/infra/storage"
	"campustrace/internal/usecase"
	"campustrace/internal/usecase/impl"

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
			closeBootstrapperOnStop,
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
			postgres.NewTransactionManager,
			postgres.NewProfileRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewItemRepository,
			postgres.NewClaimRepository,
			postgres.NewNotificationRepository,
			postgres.NewUniversityRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSessionClient,
			captcha.NewCaptchaService,
			mail.NewGomailSender,
			pubsub.NewEventPublisher,
			storage.NewBlobStore,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBootstrapService,
			impl.NewItemService,
			impl.NewClaimService,
			impl.NewProfileService,
			impl.NewAdminService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewItemHandler,
			handler.NewClaimHandler,
			handler.NewNotificationHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
			handler.NewPageHandler,
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

// closeBootstrapperOnStop stops the auth event consumer with the app.
func closeBootstrapperOnStop(lc fx.Lifecycle, bootstrap usecase.BootstrapUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			bootstrap.Close()
			return nil
		},
	})
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
