package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bookhaven/bookhaven/internal/api/handlers/stockapi"
	mw "github.com/bookhaven/bookhaven/internal/api/middlewares"
	"github.com/bookhaven/bookhaven/internal/config"
	"github.com/bookhaven/bookhaven/pkg/utils"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.LoadStockAPI()

	handler := utils.ApplyMiddleware(
		stockapi.Router(),
		mw.RequestID,
		mw.Recovery(log),
		mw.SecurityHeaders,
		mw.Cors,
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("stock api listening", "addr", cfg.Addr, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
