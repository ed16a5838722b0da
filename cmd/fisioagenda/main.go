package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fisioagenda/fisioagenda/internal/handlers"
	"github.com/fisioagenda/fisioagenda/internal/observability/metrics"
	"github.com/fisioagenda/fisioagenda/internal/outbox"
	"github.com/fisioagenda/fisioagenda/internal/storage"
	"github.com/fisioagenda/fisioagenda/libs/config"
	"github.com/fisioagenda/fisioagenda/libs/db"
	"github.com/fisioagenda/fisioagenda/libs/httpx"
	"github.com/fisioagenda/fisioagenda/libs/kafkax"
	otelx "github.com/fisioagenda/fisioagenda/libs/otel"
	"github.com/fisioagenda/fisioagenda/libs/runtime"
)

func main() {
	service := config.String("SERVICE_NAME", "fisioagenda")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	loc, err := time.LoadLocation(config.String("CLINIC_TIMEZONE", "Europe/Rome"))
	if err != nil {
		logger.Error("invalid clinic timezone", "err", err)
		panic(err)
	}

	engineMetrics := metrics.NewEngineMetrics(prometheus.DefaultRegisterer)

	outboxRepo := outbox.NewRepository(pool)
	apptRepo := storage.NewAppointmentRepository(pool, outboxRepo)
	templateRepo := storage.NewTemplateRepository(pool)
	patientRepo := storage.NewPatientRepository(pool)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	slots := handlers.SlotConfig{
		Granularity:  time.Duration(intEnv("SLOT_GRANULARITY_MINUTES", 30)) * time.Minute,
		DayStartHour: intEnv("DAY_START_HOUR", 8),
		DayEndHour:   intEnv("DAY_END_HOUR", 20),
	}
	apptHandler := handlers.NewAppointmentHandler(apptRepo, logger, loc, slots, engineMetrics)
	reminderHandler := handlers.NewReminderHandler(apptRepo, patientRepo, templateRepo, logger, loc, engineMetrics)

	readyChecks := []runtime.ReadyCheck{
		{Name: "db", Check: db.ReadyCheck(pool)},
	}
	if brokers := strings.TrimSpace(config.String("KAFKA_BROKERS", "")); brokers != "" {
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)})
	}
	mux := runtime.NewBaseMuxWithReady(readyChecks...)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/v1/appointments", apptHandler.List)
	mux.HandleFunc("/api/v1/appointments/create", apptHandler.Create)
	mux.HandleFunc("/api/v1/appointments/update", apptHandler.Update)
	mux.HandleFunc("/api/v1/appointments/reschedule", apptHandler.Reschedule)
	mux.HandleFunc("/api/v1/appointments/duplicate", apptHandler.Duplicate)
	mux.HandleFunc("/api/v1/appointments/toggle-done", apptHandler.ToggleDone)
	mux.HandleFunc("/api/v1/appointments/delete", apptHandler.Delete)
	mux.HandleFunc("/api/v1/slots", apptHandler.Slots)
	mux.HandleFunc("/api/v1/templates", reminderHandler.Templates)
	mux.HandleFunc("/api/v1/reminders/compose", reminderHandler.Compose)

	bodyLimit := int64(intEnv("REQUEST_BODY_LIMIT_BYTES", 1<<20))
	requestTimeout := time.Duration(intEnv("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second
	limitPerMinute := intEnv("RATE_LIMIT_PER_MINUTE", 120)

	var rateLimitMW httpx.Middleware
	if addr := strings.TrimSpace(config.String("REDIS_ADDR", "")); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       intEnv("REDIS_DB", 0),
		})
		defer func() { _ = rdb.Close() }()

		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, isTruthy(config.String("RATE_LIMIT_FAIL_OPEN", "true")))
		logger.Info("rate limiting enabled (redis)", "per_minute", limitPerMinute, "redis_addr", addr)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", limitPerMinute)
	}

	handler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   parseList(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods:   parseList(config.String("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
			AllowedHeaders:   parseList(config.String("CORS_ALLOWED_HEADERS", "Content-Type,X-Request-Id")),
			AllowCredentials: isTruthy(config.String("CORS_ALLOW_CREDENTIALS", "false")),
			MaxAge:           time.Duration(intEnv("CORS_MAX_AGE_SECONDS", 600)) * time.Second,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(bodyLimit),
		httpx.WithTimeout(requestTimeout),
		rateLimitMW,
	)
	handler = otelhttp.NewHandler(handler, "fisioagenda")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

func intEnv(key string, fallback int) int {
	if v, err := strconv.Atoi(config.String(key, "")); err == nil && v > 0 {
		return v
	}
	return fallback
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
