package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/clearclause/contract-rag/internal/adapter/utils"
	"github.com/clearclause/contract-rag/internal/config"
	"github.com/clearclause/contract-rag/internal/middleware"
	"github.com/clearclause/contract-rag/internal/session"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	Janitor          *session.Janitor
	CloseServices    context.CancelFunc
}

// CreateServer registers the API routes under the configured prefix and
// blocks serving until shutdown.
func CreateServer(listenAddr, apiPrefix string) {
	_logger = logger_i.NewLogger("server")

	r := utils.GetRouter()

	r.Router.Route(apiPrefix, func(api chi.Router) {
		api.Post("/upload", middleware.UploadHandler)
		api.Post("/query", middleware.QueryHandler)
		api.Post("/summarize", middleware.SummarizeHandler)
		api.Post("/compare", middleware.CompareHandler)
		api.Post("/analyze", middleware.AnalyzeHandler)
		api.Post("/extract-clauses", middleware.ExtractClausesHandler)
		api.Get("/news/{topic}", middleware.NewsHandler)
		api.Get("/health", middleware.HealthHandler)
		api.Get("/health/detailed", middleware.DetailedHealthHandler)
	})

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr, "prefix", apiPrefix)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully", "error", err)
		}

		// stop the sweeper last, it drops every remaining session
		shutdownParams.Janitor.Stop()
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Graceful shutdown complete")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
