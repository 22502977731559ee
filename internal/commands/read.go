package commands

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/thanos-io/objstore/providers/filesystem"
	"go.uber.org/zap"

	"github.com/slatedb/byterange-go/byterange/store"
	"github.com/slatedb/byterange-go/internal/logger"
)

func newReadCmd(g *globals) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "read OBJECT HEADER",
		Short: "Write the byte ranges a Range header selects from a file to stdout",
		Long: "Write the byte ranges a Range header selects from a file to stdout, in header order.\n" +
			"The whole file is written when the header selects nothing.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name, header := args[0], args[1]

			if dir == "" {
				dir = g.config.Dir
			}
			if dir == "" {
				dir = "."
			}
			bucket, err := filesystem.NewBucket(dir)
			if err != nil {
				return errors.Wrapf(err, "while opening directory %q", dir)
			}
			defer func() { _ = bucket.Close() }()

			parser, err := g.newParser()
			if err != nil {
				return err
			}
			defer parser.Close()

			reader, err := store.NewReader(bucket, store.Config{Parser: parser})
			if err != nil {
				return err
			}
			defer reader.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			res, err := reader.CopyRanges(ctx, out, name, header)
			if err != nil {
				return err
			}
			if res.Partial() {
				for _, rng := range res.Report.Ranges {
					logger.Debug("served range", zap.String("object", name), zap.Stringer("range", rng))
				}
				return nil
			}

			logger.Debug("serving whole object", zap.String("object", name), zap.String("header", header))
			rc, err := bucket.Get(ctx, name)
			if err != nil {
				return errors.Wrapf(err, "during bucket get of %q", name)
			}
			defer func() { _ = rc.Close() }()
			_, err = io.Copy(out, rc)
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory holding the objects (default from config, then \".\")")

	return cmd
}
