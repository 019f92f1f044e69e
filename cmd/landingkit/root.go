package main

import (
	"context"
	"os"

	"github.com/eduardo/landingkit/internal/config"
	"github.com/eduardo/landingkit/internal/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile  string
	logLevel string
	logJSON  bool

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "landingkit",
		Short: "Build static campaign landing pages from drafts",
		Long: `landingkit turns a campaign draft into a self-contained Next.js site
and packages it as a zip archive.

Quick Start:
  landingkit build summer.md --out summer.zip   # Build a local draft file
  landingkit build --draft-id abc123 --upload   # Build a stored draft and upload it
  landingkit drafts list                        # List stored drafts
  landingkit interactive                        # Guided mode`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	cmd.AddCommand(
		newBuildCmd(opts),
		newDraftsCmd(opts),
		newPresetsCmd(opts),
		newInteractiveCmd(opts),
	)
	return cmd
}

// setup loads the configuration and attaches the logger to the command context
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = o.logJSON
	}
	o.cfg = cfg

	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(cfg.Log.Level)
	lc.JSON = cfg.Log.JSON
	lc.Output = os.Stderr
	o.log = logger.NewLogger(lc)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.ContextWithLogger(ctx, o.log))
	return nil
}
