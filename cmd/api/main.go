package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/unkotrip/api/docs"
	"github.com/unkotrip/api/internal/activity"
	"github.com/unkotrip/api/internal/auth"
	"github.com/unkotrip/api/internal/config"
	"github.com/unkotrip/api/internal/currency"
	"github.com/unkotrip/api/internal/database"
	"github.com/unkotrip/api/internal/expense"
	"github.com/unkotrip/api/internal/hotel"
	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/internal/payment"
	"github.com/unkotrip/api/internal/settlement"
	"github.com/unkotrip/api/internal/trip"
	"github.com/unkotrip/api/internal/user"
	"github.com/unkotrip/api/pkg/logging"
	mw "github.com/unkotrip/api/pkg/middleware"
)

// @title           Unko Trip API
// @version         1.0
// @description     Group trip planning with shared expense settlement
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to database")

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)

	// Settlement cache: Redis when configured, recompute-every-time otherwise
	var settlementCache settlement.Cache
	if cfg.RedisAddr != "" {
		settlementCache = settlement.NewRedisCache(cfg.RedisAddr)
		slog.Info("settlement cache enabled", "addr", cfg.RedisAddr)
	} else {
		settlementCache = settlement.NewNoopCache()
	}

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, jwtManager)
	userHandler := user.NewHandler(userService, jwtManager)

	// Participant feature
	participantRepo := participant.NewRepository(db)
	participantService := participant.NewService(participantRepo, userRepo)
	participantHandler := participant.NewHandler(participantService)

	// Trip feature
	tripRepo := trip.NewRepository(db)
	tripService := trip.NewService(tripRepo, participantRepo, userRepo)
	tripHandler := trip.NewHandler(tripService)

	// Activity feature
	activityRepo := activity.NewRepository(db)
	activityService := activity.NewService(activityRepo, participantService)
	activityHandler := activity.NewHandler(activityService)

	// Hotel feature
	hotelRepo := hotel.NewRepository(db)
	hotelService := hotel.NewService(hotelRepo, tripRepo, participantService)
	hotelHandler := hotel.NewHandler(hotelService)

	// Expense feature (with split factory inside)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, tripRepo, participantService, settlementCache)
	expenseHandler := expense.NewHandler(expenseService)

	// Payment feature
	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, tripRepo, participantService, settlementCache)
	paymentHandler := payment.NewHandler(paymentService)

	// Settlement feature
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, participantService, settlementCache)
	settlementHandler := settlement.NewHandler(settlementService)

	currencyHandler := currency.NewHandler()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Registration and login stay public; the user router guards /me itself
		r.Mount("/auth", userHandler.Routes())

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(jwtManager))

			r.Mount("/trips", tripHandler.Routes())
			r.Mount("/participants", participantHandler.Routes())
			r.Mount("/activities", activityHandler.Routes())
			r.Mount("/hotels", hotelHandler.Routes())
			r.Mount("/expenses", expenseHandler.Routes())
			r.Mount("/payments", paymentHandler.Routes())
			r.Mount("/settlements", settlementHandler.Routes())
			r.Mount("/currencies", currencyHandler.Routes())
		})
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// requestLogger logs each request with its route pattern and status
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
