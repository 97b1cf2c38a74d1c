package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"citylaw/internal/app"
)

var (
	configPath string
	dataDir    string
	outDir     string
	baseURL    string
	logLevel   string

	wire *app.Wire
)

// Execute runs the CLI until it finishes or the process is signalled.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "citylaw",
		Short:         "Validated static site generator for city legal guides",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Data.Dir = dataDir
			}
			if flags.Changed("out") {
				cfg.Build.OutDir = outDir
			}
			if flags.Changed("base-url") {
				cfg.Site.BaseURL = baseURL
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			wire, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigFile, "config file")
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data pack directory (default from config)")
	root.PersistentFlags().StringVar(&outDir, "out", "", "build output directory (default from config)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "absolute site URL used in canonical links and the sitemap")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(buildCmd(), validateCmd(), routesCmd(), sitemapCmd(), serveCmd())
	return root.ExecuteContext(ctx)
}
