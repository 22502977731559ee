package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slatedb/byterange-go/byterange"
	"github.com/slatedb/byterange-go/internal/logger"
)

func newParseCmd(g *globals) *cobra.Command {
	var size uint64

	cmd := &cobra.Command{
		Use:   "parse HEADER",
		Short: "Print the byte ranges a Range header selects from a resource of the given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			parser, err := g.newParser()
			if err != nil {
				return err
			}
			defer parser.Close()

			report := parser.Inspect(args[0], size)
			if err := report.Err(); err != nil {
				logger.Warn("range header partially ignored", zap.Error(err))
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&size, "size", "s", 0, "total size of the resource in bytes")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func printReport(cmd *cobra.Command, report byterange.Report) {
	out := cmd.OutOrStdout()
	switch {
	case report.Unsatisfiable():
		_, _ = fmt.Fprintf(out, "unsatisfiable %s\n", byterange.UnsatisfiedRange(report.TotalSize))
	case len(report.Ranges) == 0:
		_, _ = fmt.Fprintln(out, "ignored")
	default:
		for _, r := range report.Ranges {
			_, _ = fmt.Fprintf(out, "%d %d %s\n", r.Offset, r.Length, r.ContentRange(report.TotalSize))
		}
	}
}
