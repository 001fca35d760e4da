package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jimlawless/whereami"
	config "github.com/rexonmold/shop-backend/internal/cfg"
	v1Http "github.com/rexonmold/shop-backend/internal/delivery/v1/http"
	authInfra "github.com/rexonmold/shop-backend/internal/infrastructure/auth"
	"github.com/rexonmold/shop-backend/internal/infrastructure/kafka"
	minioInfra "github.com/rexonmold/shop-backend/internal/infrastructure/minio"
	s3Repo "github.com/rexonmold/shop-backend/internal/repository/minio"
	"github.com/rexonmold/shop-backend/internal/repository/pgdb"
	pgdbConv "github.com/rexonmold/shop-backend/internal/repository/pgdb/converter/generated"
	"github.com/rexonmold/shop-backend/internal/repository/redis"
	redisConv "github.com/rexonmold/shop-backend/internal/repository/redis/converter"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/clients"
	"github.com/rexonmold/shop-backend/pkg/closer"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
	"github.com/rexonmold/shop-backend/pkg/postgres"
)

// App связывает зависимости сервиса и управляет его жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker

	workerCtx    context.Context
	workerCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("Postgres pool closed")
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cartConv := redisConv.NewCartConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	reviewRepo := pgdb.NewReviewRepo(db.Pool)
	userRepo := pgdb.NewUserRepo(db.Pool)
	profileRepo := pgdb.NewProfileRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cartRepo := redis.NewCartRepo(redisClient, cartConv, cfg.Redis, log)

	// Контекст фоновых задач живет до остановки приложения
	workerCtx, workerCancel := context.WithCancel(context.Background())

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, workerCtx)
	cl.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		workerCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		workerCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		workerCancel()
		outboxWorker.Stop()
		log.Infof("Outbox worker stopped")
		return nil
	})

	hasher := authInfra.NewBcryptHasher(cfg.Auth)
	tokens := authInfra.NewJWTManager(cfg.Auth)

	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, reviewRepo, log)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, log)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, productRepo, orderRepo, profileRepo, userRepo, outboxRepo, db.Pool, log)
	reviewUC := usecase.NewReviewUC(reviewRepo, productRepo, log)
	authUC := usecase.NewAuthUC(userRepo, hasher, tokens, db.Pool, log)
	adminUC := usecase.NewAdminUC(productRepo, categoryRepo, db.Pool, imagesInfra, log)

	validate := validator.New()
	mw := v1Http.NewMiddleware(cfg.Session, tokens, log)
	authHandler := v1Http.NewAuthHandler(authUC, cfg.Auth, validate, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Http.Usecases{
		Catalog:  catalogUC,
		Cart:     cartUC,
		Checkout: checkoutUC,
		Review:   reviewUC,
		Auth:     authUC,
		Admin:    adminUC,
	}, mw, authHandler, validate)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       log,
		closer:       cl,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		workerCtx:    workerCtx,
		workerCancel: workerCancel,
	}, nil
}

// Run запускает фоновые задачи и HTTP-сервер и блокируется
// до сигнала остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	a.outboxWorker.Start(a.workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
