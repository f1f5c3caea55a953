package main

import (
	"github.com/spf13/cobra"

	"clipmeta/internal/summary"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:   "summary [dir]",
		Short: "Group discovered clips by source title",
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
			return renderSummary(cmd, format, summary.Summarize(batch.Records), batch.Failures)
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "File extensions to include (overrides scan.extensions)")
	return cmd
}
