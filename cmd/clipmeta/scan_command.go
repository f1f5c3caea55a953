package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"clipmeta/internal/clip"
	"clipmeta/internal/logging"
	"clipmeta/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Discover capture files under a directory and parse their names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}
			batch, err := scanAndParse(cmd, ctx, logger, args, extensions)
			if err != nil {
				return err
			}
			return renderBatch(cmd, format, batch)
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "File extensions to include (overrides scan.extensions)")
	return cmd
}

// scanAndParse walks the selected directory and parses every discovered
// base name as one batch.
func scanAndParse(cmd *cobra.Command, ctx *commandContext, logger *slog.Logger, args, extensions []string) (clip.Batch, error) {
	root, err := ctx.sourceDir(args)
	if err != nil {
		return clip.Batch{}, err
	}
	if len(extensions) == 0 {
		extensions = ctx.configValue().Scan.Extensions
	}

	scanLogger := logging.NewComponentLogger(logger, "scan")
	files, err := scan.Videos(root, extensions, scanLogger)
	if err != nil {
		return clip.Batch{}, fmt.Errorf("scan %s: %w", root, err)
	}
	scanLogger.Info("discovered capture files",
		logging.String(logging.FieldPath, root),
		logging.Int(logging.FieldCount, len(files)),
	)

	batch := ctx.newParser().ParseBatch(cmd.Context(), scan.Names(files))
	logBatch(logging.NewComponentLogger(logger, "parse"), batch)
	return batch, nil
}
