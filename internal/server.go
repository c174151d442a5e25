package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/trainsight/backend/internal/auth"
	"github.com/trainsight/backend/internal/config"
	"github.com/trainsight/backend/internal/db"
	"github.com/trainsight/backend/internal/events"
	"github.com/trainsight/backend/internal/finisher"
	"github.com/trainsight/backend/internal/middleware"
	"github.com/trainsight/backend/internal/prs"
	"github.com/trainsight/backend/internal/readiness"
	"github.com/trainsight/backend/internal/telemetry/metrics"
	"github.com/trainsight/backend/internal/workload"
	"github.com/trainsight/backend/pkg"

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
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // pre-shared secret of the mobile app
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config          *config.Config
	MobileAppSecret string
	RedisPassword   string
	VersionInfo     string
	TracingEnabled  bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "trainsight_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("trainsight", "backend", promRegistry)
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

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		redisClient:  rdb,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("trainsight-router"))

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	publisher := events.NewRedisPublisher(s.redisClient, s.metricsManager)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	readinessHandler := readiness.NewHandler(readiness.NewRepo(s.dbPool), s.metricsManager)
	r.HandleFunc("/readiness/soreness", readinessHandler.HandleLogSoreness).Methods("POST", "OPTIONS").Name("log-soreness")
	r.HandleFunc("/readiness/jump", readinessHandler.HandleLogJumpTest).Methods("POST", "OPTIONS").Name("log-jump")
	r.HandleFunc("/readiness/{userID}", readinessHandler.HandleGetReadiness).Methods("GET", "OPTIONS").Name("get-readiness")

	workloadHandler := workload.NewHandler(workload.NewRepo(s.dbPool))
	r.HandleFunc("/workload/load", workloadHandler.HandleAddLoad).Methods("POST", "OPTIONS").Name("add-daily-load")
	r.HandleFunc("/workload/{userID}/windows", workloadHandler.HandleGetWindows).Methods("GET", "OPTIONS").Name("get-load-windows")
	r.HandleFunc("/workload/{userID}/chart", workloadHandler.HandleGetChart).Methods("GET", "OPTIONS").Name("get-load-chart")

	prsHandler := prs.NewHandler(prs.NewService(prs.NewRepo(s.dbPool), publisher, s.metricsManager))
	observationLimiter := middleware.RateLimit(
		reqRateLimiter,
		"new-observation",
		s.config.ObservationRateLimitAllowedPerMin,
		s.metricsManager,
	)
	r.Handle(
		"/prs/observation",
		observationLimiter(http.HandlerFunc(prsHandler.HandleObservation)),
	).Methods("POST", "OPTIONS").Name("new-observation")
	r.HandleFunc("/prs/{userID}/{exercise}", prsHandler.HandleGetBest).Methods("GET", "OPTIONS").Name("get-prs")

	finisherRepo := finisher.NewRepo(s.dbPool)
	finisherHandler := finisher.NewHandler(finisher.NewService(
		finisherRepo,
		finisher.NewCatalog(finisherRepo),
		publisher,
		s.metricsManager,
	))
	r.HandleFunc("/finisher/protocols", finisherHandler.HandleListProtocols).Methods("GET", "OPTIONS").Name("list-protocols")
	r.HandleFunc("/finisher/session/{sessionID}/auto", finisherHandler.HandleAutoAssign).Methods("POST", "OPTIONS").Name("auto-assign-finisher")
	r.HandleFunc("/finisher/session/{sessionID}", finisherHandler.HandleAssign).Methods("POST", "OPTIONS").Name("assign-finisher")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

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
		ConnState:    s.connStateMetrics,
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

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
