package main

import (
	"context"
	"log/slog"
	"os"

	"forno/config"
	"forno/internal/delivery"
	"forno/internal/delivery/http"
	"forno/internal/delivery/http/middleware"
	"forno/internal/delivery/http/router/handler"
	"forno/internal/infra/auth"
	"forno/internal/infra/firebase"
	logs "forno/internal/infra/log"
	"forno/internal/infra/notification"
	"forno/internal/infra/persistence/firestore"
	"forno/internal/usecase/impl"

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
		firebase.NewApp,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewOrderRepository,
			firestore.NewProductRepository,
			firestore.NewCustomerRepository,
			firestore.NewStaffRepository,
			firestore.NewNotificationRepository,
			firestore.NewCounterRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenVerifier,
			notification.NewPushSender,
			newNotificationsConfig,
		),
	)
}

// newNotificationsConfig exposes the notification section to the fan-out
// engine. config.New guarantees it is non-nil.
func newNotificationsConfig(cfg *config.Config) *config.NotificationsConfig {
	return cfg.Notifications
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEventFanout,
			impl.NewOrderService,
			impl.NewProductService,
			impl.NewCustomerService,
			impl.NewStaffService,
			impl.NewNotificationService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewCustomerHandler,
			handler.NewUserHandler,
			handler.NewNotificationHandler,
			handler.NewReportHandler,
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
