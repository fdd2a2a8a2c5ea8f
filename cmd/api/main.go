package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/akaul/fairsplit/docs"
	"github.com/akaul/fairsplit/internal/assist"
	"github.com/akaul/fairsplit/internal/config"
	"github.com/akaul/fairsplit/internal/database"
	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/internal/member"
	"github.com/akaul/fairsplit/internal/settlement"
	"github.com/akaul/fairsplit/internal/split"
	"github.com/akaul/fairsplit/internal/user"
	mw "github.com/akaul/fairsplit/pkg/middleware"
)

// @title        FairSplit API
// @version      1.0
// @description  Group expense splitting with day-weighted shares, custom splits, and settlement plans.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	logrus.Info("Connected to database successfully")

	// Assist collaborators: Gemini when a key is configured, offline
	// fallbacks otherwise.
	var (
		extractor member.AmountExtractor
		drafter   settlement.Drafter
	)
	if cfg.GeminiAPIKey != "" {
		gemini := assist.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
		extractor, drafter = gemini, gemini
		logrus.Info("Assist features using Gemini")
	} else {
		extractor = assist.NewRegexExtractor()
		drafter = assist.NewTemplateDrafter()
		logrus.Info("Assist features using offline fallbacks")
	}

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Group feature (records visits on the user profile)
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo, userService)
	groupHandler := group.NewHandler(groupService)

	// Member feature (rewrites splits on guest merges)
	memberRepo := member.NewRepository(db)
	splitRepo := split.NewRepository(db)
	memberService := member.NewService(memberRepo, groupRepo, splitRepo, extractor)
	memberHandler := member.NewHandler(memberService)

	// Split feature
	splitService := split.NewService(splitRepo, groupRepo, memberRepo)
	splitHandler := split.NewHandler(splitService)

	// Settlement feature
	settlementService := settlement.NewService(groupRepo, memberRepo, splitRepo, drafter)
	settlementHandler := settlement.NewHandler(settlementService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.Identity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.With(mw.RequireUser).Mount("/users", userHandler.Routes())

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", groupHandler.Create)
			r.Get("/", groupHandler.ListMine)

			r.Route("/{code}", func(r chi.Router) {
				r.Get("/", groupHandler.GetByCode)
				r.Put("/", groupHandler.Update)
				r.Delete("/", groupHandler.Delete)

				r.Mount("/members", memberHandler.Routes())
				r.Mount("/splits", splitHandler.Routes())
				r.Mount("/settlement", settlementHandler.Routes())
			})
		})
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}
}
