package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/nookscout/campus-seat-reservation/internal/config"
	"github.com/nookscout/campus-seat-reservation/internal/database"
	"github.com/nookscout/campus-seat-reservation/internal/engine"
	"github.com/nookscout/campus-seat-reservation/internal/handler"
	"github.com/nookscout/campus-seat-reservation/internal/queue"
	"github.com/nookscout/campus-seat-reservation/internal/router"
	queue_publisher "github.com/nookscout/campus-seat-reservation/internal/service"
	"github.com/nookscout/campus-seat-reservation/internal/store"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Redis serves the rate limiter and, optionally, storage.  A nil
	// client disables rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	kv := openBackend(cfg, rdb)
	gateway := store.NewGateway(kv)
	eng := engine.New(gateway, queue_publisher.FlagPublisher{})

	// Staff-review consumer tails the seat.flagged queue in the
	// background; it reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartFlagConsumer(); err != nil {
			log.Printf("flag consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, router.Handlers{
		Auth:      handler.NewAuthHandler(cfg.JWTSecret, cfg.PasscodeHash, cfg.AccessTTLMin),
		Seats:     handler.NewSeatHandler(eng, gateway),
		Holds:     handler.NewHoldHandler(eng, cfg.VerifyDelay),
		Sessions:  handler.NewSessionHandler(eng),
		Rooms:     handler.GroupRoomHandler{},
		JWTSecret: cfg.JWTSecret,
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openBackend selects the persistence backend named by STORE_BACKEND.
// Misconfiguration is fatal: silently falling back to the in-memory
// store would discard reservations on restart.
func openBackend(cfg config.Config, rdb *redis.Client) store.KV {
	switch cfg.StoreBackend {
	case "memory":
		log.Printf("using in-memory store; reservations do not survive restarts")
		return store.NewMemoryKV()
	case "redis":
		if rdb == nil {
			log.Fatal("STORE_BACKEND=redis but redis is unreachable")
		}
		return store.NewRedisKV(rdb)
	case "mysql":
		if cfg.DBUser == "" || cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
			log.Fatal("STORE_BACKEND=mysql requires DB_USER, DB_HOST, DB_PORT and DB_NAME")
		}
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql connect: %v", err)
		}
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("mysql schema: %v", err)
		}
		return store.NewMySQLKV(db)
	default:
		log.Fatalf("unknown STORE_BACKEND %q (want memory, redis or mysql)", cfg.StoreBackend)
		return nil
	}
}
