package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/clearclause/contract-rag/internal/config"
	"github.com/clearclause/contract-rag/internal/handlers"
	"github.com/clearclause/contract-rag/internal/news"
	"github.com/clearclause/contract-rag/internal/rag"
	"github.com/clearclause/contract-rag/internal/rag/embedding"
	"github.com/clearclause/contract-rag/internal/rag/embedding/googleEmbedding"
	"github.com/clearclause/contract-rag/internal/rag/embedding/hashEmbedding"
	"github.com/clearclause/contract-rag/internal/rag/llm"
	"github.com/clearclause/contract-rag/internal/rag/llm/gemini"
	"github.com/clearclause/contract-rag/internal/server"
	"github.com/clearclause/contract-rag/internal/session"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

var listenAddr string

func main() {
	settings := config.Get()

	logger_i.Init(settings.LogLevel, settings.LogFile, settings.Debug)
	var logger = logger_i.NewLogger("main")

	if err := settings.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	flag.StringVar(&listenAddr, "listen-addr", settings.ListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	var embedder embedding.Embedder
	var llmProvider llm.Provider

	if settings.GeminiAPIKey == "" {
		// LLM endpoints will fail, retrieval still works off local embeddings
		logger.Warn("GEMINI_API_KEY environment variable not set - LLM queries will fail")
		embedder = hashEmbedding.New()
		llmProvider = llm.Unconfigured{}
	} else {
		googleClient, err := googleEmbedding.New(serviceContext, settings.EmbeddingModel, settings.GeminiAPIKey)
		if err != nil {
			logger.Error("embedding client failed to initialize", "error", err)
			os.Exit(1)
		}
		embedder = googleClient

		geminiClient, err := gemini.New(serviceContext, settings.GeminiAPIKey, settings.LLMModel)
		if err != nil {
			logger.Error("LLM client failed to initialize", "error", err)
			os.Exit(1)
		}
		llmProvider = geminiClient
	}

	ragService := rag.NewService(llmProvider, embedder)
	sessionManager := session.NewManager(settings.SessionMaxAge)
	newsFetcher := news.NewFetcher()

	janitor := session.NewJanitor(sessionManager, settings.CleanupInterval)
	if err := janitor.Start(); err != nil {
		logger.Error("could not start session janitor", "error", err)
		os.Exit(1)
	}
	logger.Info("Session cleanup task started", "interval", settings.CleanupInterval.String())

	handlers.Init(sessionManager, ragService, newsFetcher, settings)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		Janitor:          janitor,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr, settings.APIPrefix)

	<-stopExecution
	logger.Info("Server stopped")
}
