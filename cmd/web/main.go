package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/risk-digest/risk-digest/pkg/server"
	assessmentsvc "github.com/risk-digest/risk-digest/pkg/services/assessment"
	"github.com/risk-digest/risk-digest/pkg/services/config"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	"github.com/risk-digest/risk-digest/pkg/services/threatfeed"
	toolssvc "github.com/risk-digest/risk-digest/pkg/services/tools"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
	toolstore "github.com/risk-digest/risk-digest/pkg/store/tools"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Risk Digest web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (optional, defaults apply without one)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if key := os.Getenv("NVD_API_KEY"); key != "" {
		cfg.NVD.APIKey = key
	}

	digests, err := digeststore.NewStore(cfg.DigestsDir)
	if err != nil {
		return fmt.Errorf("failed to open digest store: %w", err)
	}

	feed := threatfeed.NewService(threatfeed.Config{
		BaseURL:  cfg.NVD.BaseURL,
		APIKey:   cfg.NVD.APIKey,
		CacheTTL: cfg.NVD.CacheTTL,
	})

	api, err := server.NewWebAPI(server.Config{
		Addr: cfg.Addr,
		Dependencies: server.Dependencies{
			Digests:    digestsvc.NewService(digests),
			Assessment: assessmentsvc.NewCalculator(),
			Threats:    feed,
			Tools:      toolssvc.NewDirectory(toolstore.NewStore(cfg.ToolsFile)),
			Logger:     logger,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to configure server: %w", err)
	}

	return api.Start()
}
