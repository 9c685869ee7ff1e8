package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/memory"
	pgstore "trivia-quiz-service/internal/infra/postgres"
	rediscache "trivia-quiz-service/internal/infra/redis"
	"trivia-quiz-service/internal/infra/sqlite"
	transport "trivia-quiz-service/internal/transport/http"
	"trivia-quiz-service/internal/transport/telegram"
)

// persistentStore is what the durable tier must provide: score rows for the
// quiz and account lookups for auth.
type persistentStore interface {
	app.ScoreStore
	auth.UserStore
}

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	// Durable tier: postgres when configured, sqlite when a path is given,
	// otherwise everything stays in process.
	var store persistentStore
	switch {
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		store = pgstore.NewStore(pool)
	case cfg.SQLite.Path != "":
		sqliteStore, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer sqliteStore.Close()
		store = sqliteStore
	default:
		store = memory.NewScoreStore()
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)
	leaderboardTTL := config.TTLDuration(cfg.Quiz.LeaderboardTTL, time.Minute)

	// The leaderboard cache fronts the durable store on the read path.
	var scores app.ScoreStore
	if redisClient != nil {
		scores = rediscache.NewLeaderboardCache(redisClient, store, leaderboardTTL)
	} else {
		scores = memory.NewLeaderboardCache(store, leaderboardTTL)
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = rediscache.NewSessionStore(redisClient, redisTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	questions := memory.NewDefaultQuestionSource()
	service := app.NewQuizService(sessions, questions, scores, auth.ContextIdentity{}, cfg.Quiz.QuestionSeconds)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	accounts := auth.NewService(store, tokens)
	accounts.SetTokenTTL(config.TTLDuration(cfg.Auth.TokenTTL, 0))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", transport.NewWSHandler(service, tokens).ServeWS)
	transport.NewAPIHandler(service, accounts).Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.WithAuth(tokens, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	botCtx, stopBot := context.WithCancel(ctx)
	defer stopBot()
	if cfg.Telegram.Token != "" {
		bot, err := telegram.NewBot(cfg.Telegram.Token, service)
		if err != nil {
			return err
		}
		go bot.Run(botCtx)
	}

	go func() {
		log.Printf("starting trivia quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}
	stopBot()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
