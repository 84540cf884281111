//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"swiftdrop/internal/gateway/charge"
	"swiftdrop/internal/handlers/rest/parcel_assign_patch"
	"swiftdrop/internal/handlers/rest/parcel_cashout_patch"
	"swiftdrop/internal/handlers/rest/parcel_delete"
	"swiftdrop/internal/handlers/rest/parcel_get"
	"swiftdrop/internal/handlers/rest/parcel_post"
	"swiftdrop/internal/handlers/rest/parcel_status_patch"
	"swiftdrop/internal/handlers/rest/parcels_get"
	"swiftdrop/internal/handlers/rest/parcels_status_count_get"
	"swiftdrop/internal/handlers/rest/payment_intent_post"
	"swiftdrop/internal/handlers/rest/payment_post"
	"swiftdrop/internal/handlers/rest/payments_get"
	"swiftdrop/internal/handlers/rest/rider_completed_get"
	"swiftdrop/internal/handlers/rest/rider_parcels_get"
	"swiftdrop/internal/handlers/rest/rider_post"
	"swiftdrop/internal/handlers/rest/rider_status_patch"
	"swiftdrop/internal/handlers/rest/riders_active_get"
	"swiftdrop/internal/handlers/rest/riders_available_get"
	"swiftdrop/internal/handlers/rest/riders_pending_get"
	"swiftdrop/internal/handlers/rest/stats_admin_get"
	"swiftdrop/internal/handlers/rest/stats_rider_get"
	"swiftdrop/internal/handlers/rest/stats_user_get"
	"swiftdrop/internal/handlers/rest/tracking_get"
	"swiftdrop/internal/handlers/rest/tracking_post"
	"swiftdrop/internal/handlers/rest/user_post"
	"swiftdrop/internal/handlers/rest/user_role_get"
	"swiftdrop/internal/handlers/rest/user_role_patch"
	"swiftdrop/internal/handlers/rest/users_search_get"
	"swiftdrop/internal/handlers/tasks/rider_sync"
	"swiftdrop/internal/pkg/config"
	"swiftdrop/internal/pkg/factory/earnings"
	"swiftdrop/internal/pkg/factory/tracking_number"

	parcelRepo "swiftdrop/internal/repository/parcel"
	paymentRepo "swiftdrop/internal/repository/payment"
	riderRepo "swiftdrop/internal/repository/rider"
	statsRepo "swiftdrop/internal/repository/stats"
	trackingRepo "swiftdrop/internal/repository/tracking"
	userRepo "swiftdrop/internal/repository/user"
	parcelService "swiftdrop/internal/service/parcel"
	riderService "swiftdrop/internal/service/rider"
	statsService "swiftdrop/internal/service/stats"
	userService "swiftdrop/internal/service/user"

	"swiftdrop/pkg/background"
	"swiftdrop/pkg/logger"
	"swiftdrop/pkg/querier"
	"swiftdrop/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RiderSyncInterval time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceRider      ServiceRider
	ServiceStats      ServiceStats
	ServiceUser       ServiceUser
	ChargeGateway     payment_intent_post.Gateway
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcel_get.Service
	parcel_delete.Service
	parcel_status_patch.Service
	parcel_cashout_patch.Service
	parcels_status_count_get.Service
	payment_post.Service
	payments_get.Service
	tracking_get.Service
	tracking_post.Service
}

type ServiceRider interface {
	rider_post.Service
	riders_pending_get.Service
	riders_active_get.Service
	riders_available_get.Service
	rider_status_patch.Service
	rider_parcels_get.Service
	rider_completed_get.Service
	parcel_assign_patch.Service
}

type ServiceStats interface {
	stats_user_get.Service
	stats_admin_get.Service
	stats_rider_get.Service
}

type ServiceUser interface {
	user_post.Service
	user_role_get.Service
	user_role_patch.Service
	users_search_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRiderSyncInterval,

		provideParcelRepository,
		providePaymentRepository,
		provideRiderRepository,
		provideStatsRepository,
		provideTrackingRepository,
		provideUserRepository,

		tracking_number.New,
		earnings.New,

		provideServiceParcel,
		provideServiceRider,
		provideServiceStats,
		provideServiceUser,

		provideChargeGateway,

		provideRiderSyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),
		wire.Bind(new(ServiceUser), new(*userService.User)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.PaymentRepository), new(*paymentRepo.Repository)),
		wire.Bind(new(parcelService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(parcelService.TrackingNumberFactory), new(*tracking_number.Factory)),

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(riderService.UserService), new(*userService.User)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(statsService.EarningsFactory), new(*earnings.Factory)),

		wire.Bind(new(payment_intent_post.Gateway), new(*charge.ChargeGateway)),

		wire.Bind(new(rider_sync.Service), new(*riderService.Rider)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ParcelService *parcelService.Parcel
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-completed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideParcelRepository,
		providePaymentRepository,
		provideTrackingRepository,

		tracking_number.New,

		provideServiceParcel,

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.PaymentRepository), new(*paymentRepo.Repository)),
		wire.Bind(new(parcelService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(parcelService.TrackingNumberFactory), new(*tracking_number.Factory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceParcel(
	repository parcelService.Repository,
	payments parcelService.PaymentRepository,
	tracking parcelService.TrackingRepository,
	trackingNumbers parcelService.TrackingNumberFactory,
) *parcelService.Parcel {
	return parcelService.New(repository, payments, tracking, trackingNumbers)
}

func provideServiceRider(
	repository riderService.Repository,
	parcels riderService.ParcelRepository,
	users riderService.UserService,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, parcels, users, txManager)
}

func provideServiceStats(
	repository statsService.Repository,
	earningsFactory statsService.EarningsFactory,
) *statsService.Stats {
	return statsService.New(repository, earningsFactory)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideChargeGateway(httpClient *http.Client, cfg *config.Config) *charge.ChargeGateway {
	return charge.New(httpClient, cfg.ChargeAuthority.BaseURL, cfg.ChargeAuthority.SecretKey)
}

func provideRiderSyncInterval(cfg *config.Config) RiderSyncInterval {
	return RiderSyncInterval(cfg.Tasks.RiderSyncInterval)
}

func provideRiderSyncTask(
	log logger.Logger,
	riderService rider_sync.Service,
	interval RiderSyncInterval,
) *rider_sync.RiderSync {
	return rider_sync.NewRiderSync(log, riderService, time.Duration(interval))
}

func provideTaskList(
	riderSyncTask *rider_sync.RiderSync,
) []background.Task {
	return []background.Task{
		riderSyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
