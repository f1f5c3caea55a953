package clip

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parser runs the parsing pipeline against a registry.
type Parser struct {
	registry *Registry
	workers  int
}

// Option configures a Parser.
type Option func(*Parser)

// WithWorkers bounds the number of filenames ParseBatch parses at once.
// Values below one select the default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		p.workers = n
	}
}

// NewParser returns a parser bound to registry. A nil registry selects
// DefaultRegistry.
func NewParser(registry *Registry, opts ...Option) *Parser {
	if registry == nil {
		registry = DefaultRegistry()
	}
	p := &Parser{registry: registry}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the grammars the parser detects.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse turns one base filename into a Record. The first failing stage ends
// the parse and its error is returned.
func (p *Parser) Parse(filename string) (Record, error) {
	grammar, err := p.registry.Detect(filename)
	if err != nil {
		return Record{}, err
	}
	tokens, err := grammar.Match(filename)
	if err != nil {
		return Record{}, err
	}
	fields := grammar.ParseFields(filename, tokens)
	if err := fields.Err(); err != nil {
		return Record{}, err
	}
	return Record{
		SourceName: tokens.Title,
		Date:       fields.Date,
		Time:       fields.Time,
		Grammar:    grammar.Name,
		Filename:   filename,
	}, nil
}

// Parse parses filename with the default registry.
func Parse(filename string) (Record, error) {
	return NewParser(nil).Parse(filename)
}

// Failure pairs a filename with the error that stopped its parse.
type Failure struct {
	Filename string
	Err      error
}

func (f Failure) Error() string {
	return f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Batch holds the outcome of ParseBatch. Records and Failures are each in
// input order.
type Batch struct {
	Records  []Record
	Failures []Failure
}

// Total is the number of filenames the batch covered.
func (b Batch) Total() int {
	return len(b.Records) + len(b.Failures)
}

type outcome struct {
	record Record
	err    error
}

// ParseBatch parses every filename independently. A failure never stops the
// remaining filenames. Cancelling ctx stops scheduling new parses; filenames
// that were never parsed are reported as failures wrapping ctx.Err().
func (p *Parser) ParseBatch(ctx context.Context, filenames []string) Batch {
	outcomes := make([]outcome, len(filenames))

	var g errgroup.Group
	g.SetLimit(p.workerLimit())
	for i, name := range filenames {
		if err := ctx.Err(); err != nil {
			outcomes[i] = outcome{err: fmt.Errorf("parse %s skipped: %w", name, err)}
			continue
		}
		g.Go(func() error {
			rec, err := p.Parse(name)
			outcomes[i] = outcome{record: rec, err: err}
			return nil
		})
	}
	_ = g.Wait()

	batch := Batch{
		Records: make([]Record, 0, len(filenames)),
	}
	for i, out := range outcomes {
		if out.err != nil {
			batch.Failures = append(batch.Failures, Failure{Filename: filenames[i], Err: out.err})
			continue
		}
		batch.Records = append(batch.Records, out.record)
	}
	return batch
}

func (p *Parser) workerLimit() int {
	if p.workers > 0 {
		return p.workers
	}
	return runtime.GOMAXPROCS(0)
}
