package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dspiliot/agora/internal/diagnostics"
	"github.com/dspiliot/agora/internal/llm"
	"github.com/dspiliot/agora/internal/logger"
	"github.com/dspiliot/agora/internal/server"
	"github.com/dspiliot/agora/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the diagnostics HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	mode, _ := cmd.Flags().GetString("log")
	log, err := logger.New(mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	// API keys are checked per request, not here: the server starts fine
	// with no keys configured and reports missing ones on use.
	registry := llm.NewRegistry(llm.ConfigFromEnv(), s.EventRepo())
	svc := diagnostics.NewService(registry, s.AnswerRepo(), log)

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		if env := os.Getenv("AGORA_ADDR"); env != "" {
			addr = env
		} else {
			addr = ":8080"
		}
	}

	var origins []string
	if env := os.Getenv("AGORA_CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	router := server.NewRouter(server.RouterConfig{
		Diagnostics:  server.NewDiagnosticsHandler(svc, log),
		Models:       server.NewModelsHandler(registry),
		Logger:       log,
		AllowOrigins: origins,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(addr, router, log).Run(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides AGORA_ADDR, default :8080)")
}
