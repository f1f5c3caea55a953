package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"clipmeta/internal/clip"
	"clipmeta/internal/logging"
	"clipmeta/internal/summary"
)

// errFailuresReported marks a run whose failures were already printed.
var errFailuresReported = errors.New("one or more filenames could not be parsed")

type recordView struct {
	Filename   string `json:"filename" yaml:"filename"`
	SourceName string `json:"source_name" yaml:"source_name"`
	Date       string `json:"date" yaml:"date"`
	Time       string `json:"time" yaml:"time"`
	Grammar    string `json:"grammar" yaml:"grammar"`
}

type failureView struct {
	Filename string `json:"filename" yaml:"filename"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Error    string `json:"error" yaml:"error"`
}

type batchView struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Total    int           `json:"total" yaml:"total"`
	Records  []recordView  `json:"records" yaml:"records"`
	Failures []failureView `json:"failures" yaml:"failures"`
}

type sourceView struct {
	Name     string   `json:"name" yaml:"name"`
	Clips    int      `json:"clips" yaml:"clips"`
	First    string   `json:"first" yaml:"first"`
	Last     string   `json:"last" yaml:"last"`
	Grammars []string `json:"grammars" yaml:"grammars"`
}

type summaryView struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Sources  []sourceView  `json:"sources" yaml:"sources"`
	Failures []failureView `json:"failures" yaml:"failures"`
}

func formatDate(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func formatClock(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func formatDateTime(dt civil.DateTime) string {
	return formatDate(dt.Date) + " " + formatClock(dt.Time)
}

func toRecordViews(records []clip.Record) []recordView {
	views := make([]recordView, 0, len(records))
	for _, r := range records {
		views = append(views, recordView{
			Filename:   r.Filename,
			SourceName: r.SourceName,
			Date:       formatDate(r.Date),
			Time:       formatClock(r.Time),
			Grammar:    r.Grammar,
		})
	}
	return views
}

func toFailureViews(failures []clip.Failure) []failureView {
	views := make([]failureView, 0, len(failures))
	for _, f := range failures {
		views = append(views, failureView{
			Filename: f.Filename,
			Kind:     clip.Kind(f.Err),
			Error:    f.Err.Error(),
		})
	}
	return views
}

func toSourceViews(sources []summary.Source) []sourceView {
	views := make([]sourceView, 0, len(sources))
	for _, s := range sources {
		views = append(views, sourceView{
			Name:     s.Name,
			Clips:    s.Clips,
			First:    formatDateTime(s.First),
			Last:     formatDateTime(s.Last),
			Grammars: append([]string(nil), s.Grammars...),
		})
	}
	return views
}

// logBatch records per-failure detail at debug and a one-line total at info.
func logBatch(logger *slog.Logger, batch clip.Batch) {
	for _, f := range batch.Failures {
		logger.Debug("filename not parsed",
			logging.String(logging.FieldFilename, f.Filename),
			logging.String(logging.FieldErrorKind, clip.Kind(f.Err)),
			logging.Error(f.Err),
		)
	}
	attrs := []logging.Attr{
		logging.Int(logging.FieldCount, batch.Total()),
		logging.Int("parsed", len(batch.Records)),
		logging.Int("failures", len(batch.Failures)),
	}
	if len(batch.Failures) > 0 {
		logging.WarnWithContext(logger, "batch completed with failures", "batch_failures",
			append(attrs, logging.String(logging.FieldErrorHint, "rename the files or add a grammar for their capture program"))...)
		return
	}
	logger.Info("batch completed", logging.Args(attrs...)...)
}

func renderBatch(cmd *cobra.Command, format string, batch clip.Batch) error {
	view := batchView{
		RunID:    runIDOf(cmd),
		Total:    batch.Total(),
		Records:  toRecordViews(batch.Records),
		Failures: toFailureViews(batch.Failures),
	}
	var err error
	switch format {
	case outputJSON:
		err = writeJSON(cmd, view)
	case outputYAML:
		err = writeYAML(cmd, view)
	default:
		err = writeBatchTable(cmd.OutOrStdout(), view)
	}
	if err != nil {
		return err
	}
	if len(batch.Failures) > 0 {
		return errFailuresReported
	}
	return nil
}

func writeBatchTable(out io.Writer, view batchView) error {
	if len(view.Records) > 0 {
		rows := make([][]string, 0, len(view.Records))
		for _, r := range view.Records {
			rows = append(rows, []string{r.SourceName, r.Date, r.Time, r.Grammar, r.Filename})
		}
		if _, err := fmt.Fprintln(out, renderTable(
			[]string{"Source", "Date", "Time", "Grammar", "File"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
		)); err != nil {
			return err
		}
	}
	if err := writeFailureLines(out, view.Failures); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d parsed, %d failed\n", len(view.Records), len(view.Failures))
	return err
}

func writeFailureLines(out io.Writer, failures []failureView) error {
	if len(failures) == 0 {
		return nil
	}
	colorize := shouldColorize(out)
	lines := renderSectionHeader("Failures", colorize)
	for _, f := range failures {
		label := f.Kind
		if label == "" {
			label = "skipped"
		}
		lines = append(lines, renderStatusLine(label, statusError, f.Error, colorize))
	}
	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}

func renderSummary(cmd *cobra.Command, format string, sources []summary.Source, failures []clip.Failure) error {
	view := summaryView{
		RunID:    runIDOf(cmd),
		Sources:  toSourceViews(sources),
		Failures: toFailureViews(failures),
	}
	var err error
	switch format {
	case outputJSON:
		err = writeJSON(cmd, view)
	case outputYAML:
		err = writeYAML(cmd, view)
	default:
		err = writeSummaryTable(cmd.OutOrStdout(), view)
	}
	if err != nil {
		return err
	}
	if len(failures) > 0 {
		return errFailuresReported
	}
	return nil
}

func writeSummaryTable(out io.Writer, view summaryView) error {
	if len(view.Sources) > 0 {
		rows := make([][]string, 0, len(view.Sources))
		for _, s := range view.Sources {
			rows = append(rows, []string{s.Name, strconv.Itoa(s.Clips), s.First, s.Last, strings.Join(s.Grammars, ", ")})
		}
		if _, err := fmt.Fprintln(out, renderTable(
			[]string{"Source", "Clips", "First", "Last", "Grammars"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
		)); err != nil {
			return err
		}
	}
	if err := writeFailureLines(out, view.Failures); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d sources, %d failed\n", len(view.Sources), len(view.Failures))
	return err
}

func runIDOf(cmd *cobra.Command) string {
	id, _ := logging.RunIDFromContext(cmd.Context())
	return id
}
