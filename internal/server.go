package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/swimcoach/internal/analytics"
	"github.com/2beens/swimcoach/internal/athletes"
	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/config"
	"github.com/2beens/swimcoach/internal/dashboard"
	"github.com/2beens/swimcoach/internal/db"
	"github.com/2beens/swimcoach/internal/factors"
	"github.com/2beens/swimcoach/internal/middleware"
	"github.com/2beens/swimcoach/internal/telemetry/metrics"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/internal/trainings"
	"github.com/2beens/swimcoach/pkg"
)

// 32 MB for cached token checks
const tokenCacheSize = 32 * 1024 * 1024

type Server struct {
	httpServer  *http.Server
	versionInfo string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	rateLimiter  middleware.RequestRateLimiter
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "swimcoach-backend")
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		DBName:         cfg.PostgresDB,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		otelShutdown()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	promRegistry.MustRegister(pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDB},
	))
	metricsManager := metrics.NewManager("swimcoach", "backend", promRegistry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL.Duration)
	tokenCache := freecache.NewCache(tokenCacheSize)

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		authService:  auth.NewService(auth.NewCoachesRepo(dbPool), tokens, rdb, tokenCache),
		loginChecker: auth.NewLoginChecker(tokens, rdb, tokenCache, cfg.TokenCacheTTL.Duration),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// AuthService is exposed for the session cleanup job.
func (s *Server) AuthService() *auth.Service {
	return s.authService
}

func (s *Server) MetricsManager() *metrics.Manager {
	return s.metricsManager
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("swimcoach-router"))

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET").Name("healthz")
	r.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{})).Methods("GET").Name("metrics")

	api := r.PathPrefix("/api").Subrouter()

	authRouter := api.PathPrefix("/auth").Subrouter()
	authRouter.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, "auth", s.config.LoginRateLimitPerMinute))
	authHandler := auth.NewHandler(s.authService, s.metricsManager)
	authRouter.HandleFunc("/register", authHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/me", authHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	domain := api.NewRoute().Subrouter()
	domain.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, "api", s.config.RateLimitPerMinute))

	athletesRepo := athletes.NewRepo(s.dbPool)
	factorsRepo := factors.NewRepo(s.dbPool)

	athletesHandler := athletes.NewHandler(athletesRepo)
	domain.HandleFunc("/athletes", athletesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-athletes")
	domain.HandleFunc("/athletes", athletesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-athlete")
	domain.HandleFunc("/athletes/recent", athletesHandler.HandleRecent).Methods("GET", "OPTIONS").Name("recent-athletes")
	domain.HandleFunc("/athletes/{id:[0-9]+}", athletesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-athlete")
	domain.HandleFunc("/athletes/{id:[0-9]+}", athletesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-athlete")
	domain.HandleFunc("/athletes/{id:[0-9]+}", athletesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-athlete")

	factorsHandler := factors.NewHandler(factors.NewService(factorsRepo))
	domain.HandleFunc("/external-factors", factorsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-factors")
	domain.HandleFunc("/external-factors", factorsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-factor")
	domain.HandleFunc("/external-factors/{id:[0-9]+}", factorsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-factor")
	domain.HandleFunc("/external-factors/{id:[0-9]+}", factorsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-factor")
	domain.HandleFunc("/external-factors/{id:[0-9]+}", factorsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-factor")
	domain.HandleFunc("/athletes/{athleteId:[0-9]+}/external-factors", factorsHandler.HandleListByAthlete).Methods("GET", "OPTIONS").Name("athlete-factors")
	domain.HandleFunc("/athletes/{athleteId:[0-9]+}/external-factors", factorsHandler.HandleCreateForAthlete).Methods("POST", "OPTIONS").Name("new-athlete-factor")
	domain.HandleFunc("/trainings/{trainingId:[0-9]+}/external-factors", factorsHandler.HandleListByTraining).Methods("GET", "OPTIONS").Name("training-factors")
	domain.HandleFunc("/trainings/{trainingId:[0-9]+}/external-factors", factorsHandler.HandleCreateForTraining).Methods("POST", "OPTIONS").Name("new-training-factor")

	trainingsHandler := trainings.NewHandler(
		trainings.NewService(trainings.NewRepo(s.dbPool, factorsRepo), s.metricsManager),
	)
	domain.HandleFunc("/trainings", trainingsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-trainings")
	domain.HandleFunc("/trainings", trainingsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-training")
	domain.HandleFunc("/trainings/upcoming", trainingsHandler.HandleUpcoming).Methods("GET", "OPTIONS").Name("upcoming-trainings")
	domain.HandleFunc("/trainings/{id:[0-9]+}", trainingsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-training")
	domain.HandleFunc("/trainings/{id:[0-9]+}", trainingsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-training")
	domain.HandleFunc("/trainings/{id:[0-9]+}/status", trainingsHandler.HandleUpdateStatus).Methods("PATCH", "OPTIONS").Name("training-status")
	domain.HandleFunc("/trainings/{id:[0-9]+}", trainingsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-training")

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewRepo(s.dbPool)))
	domain.HandleFunc("/dashboard/stats", dashboardHandler.HandleStats).Methods("GET", "OPTIONS").Name("dashboard-stats")
	domain.HandleFunc("/dashboard/metrics", dashboardHandler.HandleMetrics).Methods("GET", "OPTIONS").Name("dashboard-metrics")

	analyticsHandler := analytics.NewHandler(
		analytics.NewService(analytics.NewRepo(s.dbPool), athletesRepo, s.metricsManager),
	)
	reports := domain.PathPrefix("/analytics/athlete/{athleteId:[0-9]+}").Subrouter()
	reports.HandleFunc("/time-evolution", analyticsHandler.HandleTimeEvolution).Methods("GET", "OPTIONS").Name("time-evolution")
	reports.HandleFunc("/performance-alerts", analyticsHandler.HandlePerformanceAlerts).Methods("GET", "OPTIONS").Name("performance-alerts")
	reports.HandleFunc("/time-series-metrics", analyticsHandler.HandleTimeSeriesMetrics).Methods("GET", "OPTIONS").Name("time-series-metrics")
	reports.HandleFunc("/consistency", analyticsHandler.HandleConsistency).Methods("GET", "OPTIONS").Name("consistency")
	reports.HandleFunc("/total-load", analyticsHandler.HandleTotalLoad).Methods("GET", "OPTIONS").Name("total-load")
	reports.HandleFunc("/efficiency", analyticsHandler.HandleEfficiency).Methods("GET", "OPTIONS").Name("efficiency")
	reports.HandleFunc("/general-consistency", analyticsHandler.HandleGeneralConsistency).Methods("GET", "OPTIONS").Name("general-consistency")
	reports.HandleFunc("/variability", analyticsHandler.HandleVariability).Methods("GET", "OPTIONS").Name("variability")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteErrorMessage(w, http.StatusNotFound, "route not found")
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteData(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.versionInfo,
	})
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(s.routerSetup(), "swimcoach-server"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()
}

// GracefulShutdown stops the listener first, then releases redis, the pool and telemetry.
func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

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

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
