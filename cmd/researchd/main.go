package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/joseph-ayodele/research-agent/gen/proto/research/v1"

	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/engine"
	"github.com/joseph-ayodele/research-agent/internal/executor"
	"github.com/joseph-ayodele/research-agent/internal/export"
	"github.com/joseph-ayodele/research-agent/internal/llm/openai"
	"github.com/joseph-ayodele/research-agent/internal/registry"
	repo "github.com/joseph-ayodele/research-agent/internal/repository"
	"github.com/joseph-ayodele/research-agent/internal/search"
	svc "github.com/joseph-ayodele/research-agent/internal/server"
	"github.com/joseph-ayodele/research-agent/internal/stages"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Checkpoints default to process memory; a CHECKPOINT_DSN switches to
	// the database-backed store so suspended jobs survive a restart.
	var store engine.CheckpointStore = engine.NewMemoryStore()
	var archive executor.Archiver
	if cfg.Database.DSN != "" {
		db, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close(logger)

		if err := db.HealthCheck(ctx, cfg.Database.DialTimeout, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		if err := db.Migrate(ctx); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
		store = repo.NewEntCheckpointStore(db.Client, logger)
		archive = repo.NewJobArchive(db.Client, logger)
		logger.Info("durable checkpoints enabled")
	} else {
		logger.Warn("using in-memory checkpoints, suspended jobs will not survive a restart")
	}

	generator := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	searcher := search.NewTavily(search.TavilyConfig{
		APIKey:     cfg.Search.APIKey,
		BaseURL:    cfg.Search.BaseURL,
		MaxResults: cfg.Search.MaxResults,
		Timeout:    cfg.Search.Timeout,
	}, logger)
	exporter := export.NewService(cfg.Export.OutputDir, cfg.Export.SourceWorkbook, logger)

	stageSet := stages.DefaultSet(generator, searcher, exporter, cfg.Search.MaxResults, logger)
	eng := engine.New(stageSet, store, cfg.Engine.StageTimeout, logger)
	reg := registry.New(logger)
	bc := registry.NewBroadcaster(logger)
	exec := executor.New(ctx, eng, reg, bc, logger)
	if archive != nil {
		exec.WithArchive(archive)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	research := svc.NewResearchService(exec, reg, eng, bc, logger)
	v1.RegisterResearchServiceServer(grpcServer, research)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("researchd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	exec.Shutdown(context.Background())
}
