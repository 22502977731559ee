package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slatedb/byterange-go/byterange"
	"github.com/slatedb/byterange-go/internal/logger"
)

type globals struct {
	configPath string
	verbose    bool
	config     Config
}

func NewRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "byterange",
		Short: "Evaluate HTTP Range headers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(g.verbose); err != nil {
				return err
			}
			if g.configPath == "" {
				return nil
			}
			cfg, err := loadConfigFromFile(g.configPath)
			if err != nil {
				return err
			}
			g.config = *cfg
			logger.Debug("loaded configuration", zap.String("path", g.configPath))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "read settings from a TOML file")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log dropped range specs")

	cmd.AddCommand(
		newParseCmd(g),
		newReadCmd(g),
	)

	return cmd
}

func (g *globals) newParser() (*byterange.Parser, error) {
	opts := g.config.parserOptions()
	if g.verbose {
		opts.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return byterange.NewParser(opts)
}
