// Command server is the application entry point. It wires the
// connection pool, repositories, services and handlers together and
// runs the HTTP server until interrupted.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/event-ticket-booking/internal/config"
	"github.com/iliyamo/event-ticket-booking/internal/database"
	"github.com/iliyamo/event-ticket-booking/internal/handler"
	"github.com/iliyamo/event-ticket-booking/internal/middleware"
	"github.com/iliyamo/event-ticket-booking/internal/queue"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
	"github.com/iliyamo/event-ticket-booking/internal/router"
	"github.com/iliyamo/event-ticket-booking/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment
	// directly and the file is optional.
	_ = godotenv.Load()
	cfg := config.Load()

	// Connect to MySQL and make sure the booking tables exist. The
	// pool is owned here and passed down explicitly; no component
	// keeps its own global connection.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	// Entity store.
	eventRepo := repository.NewEventRepo(db)
	userRepo := repository.NewUserRepo(db)
	ticketRepo := repository.NewTicketRepo(db)

	// Services: the ledger owns the per-event admission locks, the
	// reservation engine drives attempts through it, queries serve the
	// read side.
	ledger := service.NewCapacityLedger(eventRepo, ticketRepo)
	reservations := service.NewReservationService(userRepo, eventRepo, ledger, queue.PublishTicketIssued)
	queries := service.NewQueryService(eventRepo, userRepo, ticketRepo)

	// Background consumer that turns ticket.issued messages into log
	// lines. Runs its own reconnect loop for the life of the process.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	// Redis-backed rate limiting and GET response caching. Both turn
	// into no-ops when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e,
		handler.NewEventHandler(eventRepo, queries),
		handler.NewUserHandler(userRepo, cfg.BcryptCost),
		handler.NewTicketHandler(reservations, queries),
	)

	// Start the server and block until SIGINT/SIGTERM, then drain.
	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}
