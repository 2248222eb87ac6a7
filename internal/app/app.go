package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/config"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/activity"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/board"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/changelog"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/dashboard"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/idea"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/project"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/review"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/roadmap"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/transport/middleware"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// configured backend and serves HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("backend", cfg.Store.Backend),
		slog.String("log_level", cfg.Log.Level),
	)

	repos, err := OpenRepos(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Store.Backend, err)
	}
	defer repos.Close()

	boards := board.NewRegistry(logger, repos.Ideas, repos.Activities, cfg.Board.SessionTTL)

	var limiter *middleware.RateLimiter
	if cfg.Server.WritesPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.WritesPerMinute)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, repos, boards, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		boards.Run(gctx, cfg.Board.SweepInterval)
		return nil
	})

	if limiter != nil {
		g.Go(func() error {
			limiter.Run(gctx, cfg.Board.SweepInterval)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHandler assembles services, handlers and middleware over repos.
func NewHandler(cfg *config.Config, repos *Repos, boards *board.Registry, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	var writeLimit middleware.Middleware
	if limiter != nil {
		writeLimit = limiter.Limit()
	}

	global := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Session(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(repos, repos.Backend, Version),
		Board:      rest.NewBoardHandler(boards, logger),
		Ideas:      rest.NewIdeaHandler(idea.NewService(logger, repos.Ideas), logger),
		Reviews:    rest.NewReviewHandler(review.NewService(logger, repos.Reviews), logger),
		Changelog:  rest.NewChangelogHandler(changelog.NewService(logger, repos.Changelog, repos.Activities), logger),
		Activities: rest.NewActivityHandler(activity.NewService(logger, repos.Activities), logger),
		Projects:   rest.NewProjectHandler(project.NewService(logger, repos.Projects), logger),
		Overview: rest.NewOverviewHandler(
			roadmap.NewService(logger, repos.Ideas, repos.Activities),
			dashboard.NewService(logger, repos.Ideas, repos.Activities),
			logger,
		),
	}, global, writeLimit)
}
