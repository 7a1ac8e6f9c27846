package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/product-table/internal/cfg"
	v1Grpc "github.com/DRSN-tech/product-table/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/product-table/internal/delivery/v1/http"
	"github.com/DRSN-tech/product-table/internal/infrastructure"
	"github.com/DRSN-tech/product-table/internal/infrastructure/janitor"
	"github.com/DRSN-tech/product-table/internal/infrastructure/kafka"
	"github.com/DRSN-tech/product-table/internal/observability"
	"github.com/DRSN-tech/product-table/internal/repository/fixture"
	"github.com/DRSN-tech/product-table/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/product-table/internal/repository/minio"
	"github.com/DRSN-tech/product-table/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/product-table/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/product-table/internal/repository/redis"
	"github.com/DRSN-tech/product-table/internal/usecase"
	"github.com/DRSN-tech/product-table/pkg/clients"
	"github.com/DRSN-tech/product-table/pkg/closer"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/DRSN-tech/product-table/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"go.opentelemetry.io/otel"
)

const (
	initTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	kafkaTopicWait  = 10 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	janitor *janitor.SessionJanitor
}

// NewApp поднимает зависимости, загружает каталог и собирает серверы.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, logger logger.Logger) (app *App, err error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(0),
	}

	defer func() {
		if err != nil {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if cerr := a.closer.Close(ctx); cerr != nil {
				logger.Warnf("cleanup after failed init: %v", cerr)
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	source, err := a.initCatalogSource(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cache, err := a.initCatalogCache(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	retry := usecase.NewRetryPolicy(cfg.Catalog.LoadRetries, cfg.Catalog.RetryBase, cfg.Catalog.RetryMax)
	catalog, err := usecase.NewCatalogLoader(source, cache, retry, logger).Load(ctx)
	if err != nil {
		logger.Errorf(err, "failed to load catalog")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	publisher, err := a.initPublisher()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	telemetry, err := observability.NewTelemetry(cfg.Otel, os.Stdout)
	if err != nil {
		logger.Errorf(err, "failed to initialize telemetry")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	telemetry.Register()
	a.closer.Add("telemetry", telemetry.Shutdown)

	metrics := observability.NewTableMetrics(otel.GetMeterProvider(), otel.GetTracerProvider())

	tableUC := usecase.NewTableUC(
		catalog,
		cfg.Catalog.Locale,
		memory.NewSessionRepo(),
		publisher,
		metrics,
		logger,
	)

	a.janitor = janitor.NewSessionJanitor(tableUC, cfg.Session.TTL, logger)

	r := chi.NewRouter()
	v1Http.NewRouter(r, logger).Init(tableUC)
	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, logger)
	a.grpcSrv.SetServing()

	return a, nil
}

// Run запускает серверы и блокируется до сигнала или фатальной ошибки.
func (a *App) Run() error {
	jctx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	a.janitor.Start(jctx)

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// серверы регистрируются последними и закрываются первыми
	a.closer.Add("session janitor", a.janitor.Stop)
	a.closer.Add("gRPC server", a.grpcSrv.Stop)
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		appErr = errors.Join(appErr, err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) initCatalogSource(ctx context.Context) (usecase.CatalogSource, error) {
	switch a.cfg.Catalog.Source {
	case config.SourcePostgres:
		db, err := initPGDB(ctx, a.logger, a.cfg)
		if err != nil {
			return nil, err
		}
		a.closer.AddFunc("postgres", db.Close)

		return pgdb.NewCatalogSource(
			db.Pool,
			pgdb.NewUserRepo(pgdbConv.NewUserConverterImpl()),
			pgdb.NewCategoryRepo(pgdbConv.NewCategoryConverterImpl()),
			pgdb.NewProductRepo(pgdbConv.NewProductConverterImpl()),
		), nil

	case config.SourceMinio:
		minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
		if err != nil {
			a.logger.Errorf(err, "failed to initialize minio client")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
			a.logger.Errorf(err, "failed to initialize MinIO bucket")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		repo := s3Repo.NewCatalogRepo(minioClient, a.cfg.Minio, a.logger)

		// пустой бакет засеивается встроенным каталогом
		seed, err := fixture.NewCatalogSource().Load(ctx)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if err := repo.EnsureObject(ctx, seed); err != nil {
			a.logger.Errorf(err, "failed to seed catalog object")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return repo, nil

	case config.SourceFixture:
		return fixture.NewCatalogSource(), nil

	default:
		return nil, e.Wrap(a.cfg.Catalog.Source, e.ErrUnknownCatalogSource)
	}
}

// initCatalogCache возвращает nil, если Redis не настроен.
func (a *App) initCatalogCache(ctx context.Context) (usecase.CatalogCache, error) {
	if a.cfg.Redis == nil {
		return nil, nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", redisClient.Close)

	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return redis.NewCacheRepo(redisClient, a.cfg.Redis, a.logger), nil
}

func (a *App) initPublisher() (usecase.EventPublisher, error) {
	if a.cfg.Kafka == nil {
		a.logger.Infof("KAFKA_BROKERS is not set, query change events are not published")
		return infrastructure.NopPublisher{}, nil
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", producer.Close)

	if err := producer.EnsureTopic(kafkaTopicWait); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return producer, nil
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
