package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chatman-insurance/funnel-api/internal/infra/database"
	"github.com/chatman-insurance/funnel-api/internal/infra/http/handlers"
	funnelmw "github.com/chatman-insurance/funnel-api/internal/infra/http/middleware"
	"github.com/chatman-insurance/funnel-api/internal/infra/integration/retell"
	"github.com/chatman-insurance/funnel-api/internal/infra/kv"
	"github.com/chatman-insurance/funnel-api/internal/infra/mail"
	"github.com/chatman-insurance/funnel-api/internal/infra/queue"
	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	store := kv.NewRedisStore(envOr("REDIS_ADDR", "localhost:6379"))

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	quoteRepo := database.NewQuoteRepository(db)
	quizRepo := database.NewQuizResultRepository(db)
	claimRepo := database.NewClaimRepository(db)
	referralRepo := database.NewReferralRepository(db)

	// 2. Gateways and adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("SITE_URL", "https://chatmaninsurance.com")+"/#quote",
	)
	retellClient := retell.NewClient(
		os.Getenv("RETELL_API_KEY"),
		os.Getenv("RETELL_AGENT_ID"),
		os.Getenv("RETELL_URL"),
	)

	// 3. Worker (consumes the follow-up queue and sends email)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	pricing := usecase.NewPricingService()
	engine := usecase.NewRecommendationEngine()
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, producer)
	submitQuizUC := usecase.NewSubmitQuizUseCase(engine, submitLeadUC, quizRepo)
	chatUC := usecase.NewChatUseCase(retellClient, store)
	gateUC := usecase.NewLeadGateUseCase(store)
	referralUC := usecase.NewReferralUseCase(referralRepo, envOr("SITE_URL", "https://chatmaninsurance.com"))

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	quoteHandler := handlers.NewQuoteHandler(pricing, quoteRepo)
	quizHandler := handlers.NewQuizHandler(submitQuizUC)
	chatHandler := handlers.NewChatHandler(chatUC, retellClient)
	claimHandler := handlers.NewClaimHandler(claimRepo)
	referralHandler := handlers.NewReferralHandler(referralUC)
	gateHandler := handlers.NewGateHandler(gateUC)
	plansHandler := handlers.NewPlansHandler()
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, store)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(funnelmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/api/leads", leadHandler.Handle)
	r.Post("/api/quote", quoteHandler.Handle)
	r.Post("/api/quiz", quizHandler.Handle)
	r.Post("/api/chat", chatHandler.HandleChat)
	r.Post("/api/voice/session", chatHandler.HandleVoiceSession)
	r.Get("/api/claims/{claimNumber}", claimHandler.HandleGetStatus)
	r.Get("/api/referral/{code}", referralHandler.HandleGetToolkit)
	r.Get("/api/gate/{visitorID}", gateHandler.HandleGetStatus)
	r.Post("/api/gate/{visitorID}", gateHandler.HandleMarkSubmitted)
	r.Get("/api/plans", plansHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Chatman funnel API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
