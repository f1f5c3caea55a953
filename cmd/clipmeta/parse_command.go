package main

import (
	"strings"

	"github.com/spf13/cobra"

	"clipmeta/internal/logging"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <filename>...",
		Short: "Parse capture filenames given on the command line",
		Long: "Parse one or more capture filenames. Paths are reduced to their base name;\n" +
			"the files themselves are never opened.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(args))
			for _, arg := range args {
				names = append(names, baseName(arg))
			}

			batch := ctx.newParser().ParseBatch(cmd.Context(), names)
			logBatch(logging.NewComponentLogger(logger, "parse"), batch)
			return renderBatch(cmd, format, batch)
		},
	}
}

// baseName strips directory components from path arguments. Either slash
// counts as a separator so copied Windows paths work too. Plain names pass
// through untouched.
func baseName(arg string) string {
	trimmed := strings.TrimRight(arg, `/\`)
	idx := strings.LastIndexAny(trimmed, `/\`)
	if idx < 0 {
		return arg
	}
	return trimmed[idx+1:]
}
