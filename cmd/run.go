package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/grimoire/internal/app"
	"github.com/abhisek/grimoire/internal/config"
	"github.com/abhisek/grimoire/internal/curator"
	"github.com/abhisek/grimoire/internal/llm"
	"github.com/abhisek/grimoire/internal/logging"
	"github.com/abhisek/grimoire/internal/store"
	"github.com/abhisek/grimoire/internal/tutorial"
)

// runApp opens the request log, builds the provider and services, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))

	deps := app.Deps{
		Logger:         logger,
		Topics:         cfg.MachineTopics(),
		RitualDelay:    cfg.RitualDelay,
		RewardLifetime: cfg.RewardLifetime,
		RequestTimeout: cfg.RequestTimeout,
		SessionID:      sessionID,
		Splash:         true,
	}

	provider, err := buildProvider(ctx, cfg, st.EventRepo(), logger)
	if err != nil {
		// The tome still opens; every request degrades to its placeholder.
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutorials and the Curator will stay silent. Use --provider mock for an offline demo.")
		logger.Warn("llm provider unavailable", zap.Error(err))
	} else {
		deps.Tutorials = tutorial.NewService(provider, tutorial.DefaultConfig())
		deps.Curator = curator.NewClient(provider, curator.DefaultConfig())
		logger.Info("llm provider ready", zap.String("model", provider.ModelID()))
	}

	return app.Run(ctx, deps)
}

// buildProvider resolves the LLM configuration into a provider. The mock
// provider serves canned demo content so the app runs without a key.
func buildProvider(ctx context.Context, cfg config.Config, repo store.EventRepo, logger *zap.Logger) (llm.Provider, error) {
	lc := cfg.LLM()
	if lc.Provider == "mock" {
		return demoProvider(repo, logger), nil
	}
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, lc, repo, logger)
}

func demoProvider(repo store.EventRepo, logger *zap.Logger) llm.Provider {
	mock := llm.NewMockProvider()
	mock.SetFallback(tutorial.SchemaName, llm.MockResponse{
		Content: tutorial.SampleJSON(),
		Usage:   llm.Usage{InputTokens: 120, OutputTokens: 180, TotalTokens: 300},
	})
	mock.SetFallback("", llm.MockResponse{
		Content: []byte(curator.SampleReply),
		Usage:   llm.Usage{InputTokens: 40, OutputTokens: 20, TotalTokens: 60},
	})
	return llm.WithLogging(mock, "mock", repo, logger)
}
