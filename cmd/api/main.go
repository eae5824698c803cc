package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloomafter40/platform/internal/infra/database"
	"github.com/bloomafter40/platform/internal/infra/http/handlers"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
	"github.com/bloomafter40/platform/internal/infra/integration/stripe"
	"github.com/bloomafter40/platform/internal/infra/mail"
	"github.com/bloomafter40/platform/internal/infra/queue"
	"github.com/bloomafter40/platform/internal/infra/worker"
	"github.com/bloomafter40/platform/internal/registry"
	"github.com/bloomafter40/platform/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	eventRepo := database.NewConversionEventRepository(db)
	scheduledRepo := database.NewScheduledEmailRepository(db)
	sendRepo := database.NewEmailSendRepository(db)
	userRepo := database.NewUserRepository(db)
	sessionRepo := database.NewSessionRepository(db)
	journalRepo := database.NewJournalRepository(db)
	goalRepo := database.NewGoalRepository(db)
	habitRepo := database.NewHabitRepository(db)
	moodRepo := database.NewMoodRepository(db)
	assessmentRepo := database.NewAssessmentRepository(db)
	progressRepo := database.NewProgressRepository(db)

	// 2. Gateways and adapters
	gateway := stripe.NewClient(os.Getenv("STRIPE_API_KEY"), os.Getenv("STRIPE_URL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)
	exerciseRegistry := registry.New()

	// 3. UseCases
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, eventRepo, scheduledRepo, nil)
	trackConversionUC := usecase.NewTrackConversionUseCase(eventRepo, leadRepo, nil)
	sendDripUC := usecase.NewSendDripEmailUseCase(leadRepo, sendRepo, scheduledRepo, mailSender, nil)
	completeExerciseUC := usecase.NewCompleteExerciseUseCase(exerciseRegistry, progressRepo, nil)
	createIntentUC := usecase.NewCreatePaymentIntentUseCase(gateway, eventRepo, nil)
	authUC := usecase.NewAuthUseCase(userRepo, sessionRepo)

	// 4. Workers: the scheduler scans for due drip rows, the queue worker
	// delivers what the scheduler enqueues.
	dripScheduler := worker.NewDripScheduler(scheduledRepo, producer, nil)
	go dripScheduler.Start(context.Background())

	dripWorker := queue.NewWorker(rabbitMQ.Ch, sendDripUC)
	go dripWorker.Start(queue.QueueName)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	conversionHandler := handlers.NewConversionHandler(trackConversionUC)
	componentHandler := handlers.NewComponentHandler(exerciseRegistry, progressRepo, completeExerciseUC)
	authHandler := handlers.NewAuthHandler(authUC, userRepo)
	journalHandler := handlers.NewJournalHandler(journalRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo)
	habitHandler := handlers.NewHabitHandler(habitRepo)
	moodHandler := handlers.NewMoodHandler(moodRepo)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentRepo)
	paymentHandler := handlers.NewPaymentHandler(createIntentUC)
	webhookHandler := handlers.NewWebhookHandler(trackConversionUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://bloomafter40.com", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Public funnel surface
	r.Post("/api/leads", leadHandler.CaptureLead)
	r.Post("/api/conversions", conversionHandler.Track)
	r.Post("/api/payments/intent", paymentHandler.CreateIntent)
	r.Post("/api/webhooks/stripe", webhookHandler.Handle)

	// Auth
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)

	// Member area
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessionRepo))

		r.Get("/api/auth/me", authHandler.Me)

		r.Get("/api/modules/{moduleID}/components", componentHandler.ListModule)
		r.Get("/api/modules/{moduleID}/components/{componentID}", componentHandler.GetComponent)
		r.Post("/api/modules/{moduleID}/components/{componentID}/complete", componentHandler.Complete)
		r.Get("/api/progress", componentHandler.ListProgress)

		r.Post("/api/journal", journalHandler.Create)
		r.Get("/api/journal", journalHandler.List)
		r.Put("/api/journal/{id}", journalHandler.Update)
		r.Delete("/api/journal/{id}", journalHandler.Delete)

		r.Post("/api/goals", goalHandler.Create)
		r.Get("/api/goals", goalHandler.List)
		r.Put("/api/goals/{id}", goalHandler.Update)
		r.Delete("/api/goals/{id}", goalHandler.Delete)

		r.Post("/api/habits", habitHandler.Create)
		r.Get("/api/habits", habitHandler.List)
		r.Post("/api/habits/{id}/checkin", habitHandler.CheckIn)
		r.Delete("/api/habits/{id}", habitHandler.Delete)

		r.Post("/api/moods", moodHandler.Create)
		r.Get("/api/moods", moodHandler.List)

		r.Post("/api/assessments", assessmentHandler.Create)
		r.Get("/api/assessments", assessmentHandler.List)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🌸 BloomAfter40 API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
