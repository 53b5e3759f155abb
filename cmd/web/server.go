package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	mw "github.com/bookhaven/bookhaven/internal/api/middlewares"
	"github.com/bookhaven/bookhaven/internal/api/router"
	"github.com/bookhaven/bookhaven/internal/auth"
	"github.com/bookhaven/bookhaven/internal/config"
	jwtutil "github.com/bookhaven/bookhaven/internal/security/jwt"
	"github.com/bookhaven/bookhaven/internal/seed"
	"github.com/bookhaven/bookhaven/internal/stockclient"
	"github.com/bookhaven/bookhaven/internal/store/migrate"
	"github.com/bookhaven/bookhaven/internal/store/sqlconnect"
	"github.com/bookhaven/bookhaven/internal/web"
	"github.com/bookhaven/bookhaven/pkg/utils"
	"github.com/redis/go-redis/v9"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	db, err := sqlconnect.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrate.Apply(ctx, db); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}
	if err := seed.Run(ctx, db, log); err != nil {
		log.Error("seeding failed", "err", err)
		os.Exit(1)
	}

	render, err := web.NewRenderer(log)
	if err != nil {
		log.Error("templates failed to parse", "err", err)
		os.Exit(1)
	}

	signer := jwtutil.NewSigner(cfg.JWTSecret, 30*time.Second)
	stock := stockclient.New(cfg.StockAPIURL, log)

	authH := &auth.Handler{
		Store:  auth.NewSQLStore(db),
		Signer: signer,
		TTL:    cfg.SessionTTL,
		Render: render,
		Log:    log,
	}

	mux := router.Router(router.Deps{
		DB:     db,
		Stock:  stock,
		Render: render,
		Signer: signer,
		Auth:   authH,
		Log:    log,
	})

	middlewares := []utils.Middleware{
		mw.RequestID,
		mw.Recovery(log),
		mw.SecurityHeaders,
	}

	// The rate limiter is opt-in: without Redis the site runs unthrottled.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Username:     cfg.RedisUser,
			Password:     cfg.RedisPass,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, rate limiting disabled", "err", err)
		} else {
			tb := mw.NewRedisTokenBucket(rdb, log, 5, 20, mw.PerIPKey("tb"))
			middlewares = append(middlewares, tb.Middleware)
		}
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      utils.ApplyMiddleware(mux, middlewares...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Info("web server listening", "addr", cfg.Addr, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
