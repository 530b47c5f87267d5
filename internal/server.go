package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gzclptracker/internal/auth"
	"github.com/2beens/gzclptracker/internal/config"
	"github.com/2beens/gzclptracker/internal/db"
	"github.com/2beens/gzclptracker/internal/exercises"
	"github.com/2beens/gzclptracker/internal/hevy"
	"github.com/2beens/gzclptracker/internal/middleware"
	"github.com/2beens/gzclptracker/internal/pending"
	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/progression"
	"github.com/2beens/gzclptracker/internal/reconcile"
	"github.com/2beens/gzclptracker/internal/telemetry/metrics"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool
	hevyClient *hevy.Client

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	admin        *auth.Admin

	progressionRepo *progression.Repo
	exercisesRepo   *exercises.Repo
	pendingQueue    *pending.Queue
	reconciler      *reconcile.Reconciler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	HevyApiKey              string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gzclp", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gzclp-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	hevyBaseURL := params.Config.HevyBaseURL
	if hevyBaseURL == "" {
		hevyBaseURL = hevy.DefaultBaseURL
	}
	hevyClient := hevy.NewClient(
		hevyBaseURL,
		params.HevyApiKey,
		tracedHttpClient,
		time.Duration(params.Config.HevyCacheTTLSeconds)*time.Second,
	)

	progressionRepo := progression.NewRepo(dbPool)
	exercisesRepo := exercises.NewRepo(dbPool)
	pendingRepo := pending.NewRepo(dbPool)
	pendingQueue := pending.NewQueue(pendingRepo, progressionRepo, metricsManager)

	reconciler := reconcile.NewReconciler(reconcile.NewReconcilerParams{
		Workouts: hevyClient,
		Config:   exercisesRepo,
		Ledger:   progressionRepo,
		Stager:   pendingQueue,
		Redis:    rdb,
		Metrics:  metricsManager,
		Increments: program.Increments{
			UpperBodyKg:    params.Config.UpperBodyIncrementKg,
			LowerBodyKg:    params.Config.LowerBodyIncrementKg,
			MinBarWeightKg: params.Config.MinBarWeightKg,
		},
	})

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		hevyClient:  hevyClient,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},

		progressionRepo: progressionRepo,
		exercisesRepo:   exercisesRepo,
		pendingQueue:    pendingQueue,
		reconciler:      reconciler,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	authHandler := auth.NewHandler(s.authService, s.admin, s.versionInfo)
	authHandler.SetupRoutes(
		r,
		middleware.RateLimit(reqRateLimiter, "login", s.config.LoginRateLimitAllowedPerMin, s.metricsManager),
		middleware.Cors(),
	)

	progressionHandler := progression.NewHandler(s.progressionRepo)
	progressionHandler.SetupRoutes(r)

	exercisesService := exercises.NewService(s.dbPool, s.exercisesRepo)
	exercisesHandler := exercises.NewHandler(s.exercisesRepo, exercisesService)
	exercisesHandler.SetupRoutes(r)

	pendingHandler := pending.NewHandler(s.pendingQueue)
	pendingHandler.SetupRoutes(r)

	reconcileHandler := reconcile.NewHandler(s.reconciler, s.progressionRepo)
	syncSubrouter := r.PathPrefix("").Subrouter()
	reconcileHandler.SetupRoutes(syncSubrouter)
	syncSubrouter.Use(middleware.RateLimit(reqRateLimiter, "sync", s.config.SyncRateLimitAllowedPerMin, s.metricsManager))

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	log.Warnln("server shut down")

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
	}
	log.Warnln("metrics server shut down")
}
