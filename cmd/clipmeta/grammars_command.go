package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type grammarView struct {
	Precedence int    `json:"precedence" yaml:"precedence"`
	Name       string `json:"name" yaml:"name"`
	Marker     string `json:"marker" yaml:"marker"`
	Pattern    string `json:"pattern" yaml:"pattern"`
	DateFormat string `json:"date_format" yaml:"date_format"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

func newGrammarsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List known filename grammars in detection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}

			grammars := ctx.newParser().Registry().Grammars()
			views := make([]grammarView, 0, len(grammars))
			for i, g := range grammars {
				views = append(views, grammarView{
					Precedence: i + 1,
					Name:       g.Name,
					Marker:     g.Marker,
					Pattern:    g.Pattern.String(),
					DateFormat: g.DateFormat.String(),
					TimeFormat: g.TimeFormat.String(),
				})
			}

			switch format {
			case outputJSON:
				return writeJSON(cmd, views)
			case outputYAML:
				return writeYAML(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{strconv.Itoa(v.Precedence), v.Name, v.Marker, v.DateFormat, v.TimeFormat, v.Pattern})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Name", "Marker", "Date", "Time", "Pattern"},
				rows,
				[]columnAlignment{alignRight},
			))
			return err
		},
	}
}
