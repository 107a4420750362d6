package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tecaikids/website/internal/backend"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/logging"
	"github.com/tecaikids/website/internal/server"
	"github.com/tecaikids/website/internal/store"
	"github.com/tecaikids/website/internal/view"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatal("load content", zap.Error(err))
	}
	rnd, err := view.NewRenderer()
	if err != nil {
		log.Fatal("load templates", zap.Error(err))
	}
	st, err := store.NewSessionStore(cfg)
	if err != nil {
		log.Fatal("open session store", zap.Error(err))
	}

	pruneCtx, stopPrune := context.WithCancel(context.Background())
	defer stopPrune()
	go pruneSessions(pruneCtx, st, log)

	srv := server.NewServer(cfg, st, backend.NewClient(cfg), c, rnd, log).NewHTTPServer()

	go func() {
		log.Info("listening", zap.String("addr", cfg.BindAddr), zap.String("backend", cfg.APIBase()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.BackendTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}

// pruneSessions deletes expired session files once an hour.
func pruneSessions(ctx context.Context, st *store.Store, log *zap.Logger) {
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := st.Prune(now)
			if err != nil {
				log.Warn("prune sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("pruned sessions", zap.Int("removed", n))
			}
		}
	}
}
