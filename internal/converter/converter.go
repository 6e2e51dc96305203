// =============================================================================
// Transaction Report Converter - Conversion Pipeline
// =============================================================================
//
// This module orchestrates one conversion invocation end to end:
//
//   parse -> remap -> filter (optional) -> serialize
//
// Every stage is a pure function over the previous stage's output; the
// Converter only threads data through and records where a failure happened.
// Results carry the failed stage as a tag, so callers report (and tests
// assert on) the stage rather than a caught exception type. Nothing is
// retried and no failure outlives the invocation.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawneshshakya/transaction-report-converter/internal/config"
	"github.com/pawneshshakya/transaction-report-converter/internal/csvparser"
	"github.com/pawneshshakya/transaction-report-converter/internal/types"
	"github.com/pawneshshakya/transaction-report-converter/internal/xlsxparser"
	"github.com/pawneshshakya/transaction-report-converter/internal/xlsxwriter"
)

// Stage identifies where in the pipeline a failure occurred.
type Stage string

const (
	StageParse     Stage = "parse"
	StageRemap     Stage = "remap"
	StageFilter    Stage = "filter"
	StageSerialize Stage = "serialize"
)

// Options configures one conversion invocation.
type Options struct {
	// InputPath is the file to read; "-" reads delimited text from stdin.
	InputPath string

	// OutputPath is the artifact to write. Must already be resolved; the
	// flow's fixed default name is applied by the caller.
	OutputPath string

	// OutputFormat overrides the flow's output format when non-empty
	// (config.FormatCSV or config.FormatXLSX).
	OutputFormat string

	// Filter, when non-nil, applies the date/status filter between remapping
	// and serialization. Empty DateField/StatusField are filled in from the
	// flow configuration.
	Filter *FilterCriteria
}

// Result is the outcome of one conversion invocation.
type Result struct {
	// RunID uniquely identifies this invocation in logs.
	RunID string

	FlowName   string
	InputFile  string
	OutputFile string

	// RowsIn is the number of data rows parsed from the input.
	RowsIn int

	// RowsOut is the number of rows written to the artifact.
	RowsOut int

	Elapsed time.Duration

	Success bool

	// FailedStage tags the pipeline stage that failed, when Success is false.
	FailedStage Stage

	Err error
}

// Converter runs a single flow against a single input.
type Converter struct {
	flow *config.FlowConfig
	opts Options
	log  *slog.Logger
}

// New creates a converter for one invocation. A nil logger discards output.
func New(flow *config.FlowConfig, opts Options, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Converter{flow: flow, opts: opts, log: log}
}

// Run executes the pipeline and never panics; all failures come back tagged
// in the Result.
func (c *Converter) Run() Result {
	start := time.Now()
	result := Result{
		RunID:      uuid.NewString(),
		FlowName:   c.flow.FlowName,
		InputFile:  c.opts.InputPath,
		OutputFile: c.opts.OutputPath,
	}
	log := c.log.With("run_id", result.RunID, "flow", c.flow.FlowName)

	// ------------------------------------------------------------------ parse
	headers, rows, err := c.parse()
	if err != nil {
		return c.fail(result, StageParse, err, start)
	}
	result.RowsIn = len(rows)
	log.Debug("parsed input", "rows", len(rows), "columns", len(headers))

	// ------------------------------------------------------------------ remap
	var (
		canonical []types.CanonicalRow
		columns   []string
	)
	if c.flow.Passthrough() {
		canonical = PassthroughRows(headers, rows)
		columns = headers
	} else {
		canonical = RemapAll(c.flow.Fields, rows)
		columns = c.flow.Columns()
	}

	// ----------------------------------------------------------------- filter
	if c.opts.Filter != nil {
		criteria := *c.opts.Filter
		if criteria.DateField == "" {
			criteria.DateField = c.flow.DateField
		}
		if criteria.StatusField == "" {
			criteria.StatusField = c.flow.StatusField
		}
		if criteria.DateField == "" {
			return c.fail(result, StageFilter,
				fmt.Errorf("flow %q does not define a date field to filter on", c.flow.FlowName), start)
		}
		canonical = Filter(canonical, criteria)
		log.Debug("filtered rows", "date", criteria.Date, "status", criteria.Status, "kept", len(canonical))
	}
	result.RowsOut = len(canonical)

	// -------------------------------------------------------------- serialize
	format := c.flow.Output
	if c.opts.OutputFormat != "" {
		format = c.opts.OutputFormat
	}

	switch format {
	case config.FormatXLSX:
		err = xlsxwriter.WriteXLSX(c.opts.OutputPath, c.flow.SheetName, columns, canonical)
	case config.FormatCSV:
		err = xlsxwriter.WriteCSV(c.opts.OutputPath, columns, canonical)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return c.fail(result, StageSerialize, err, start)
	}

	result.Success = true
	result.Elapsed = time.Since(start)
	log.Info("conversion complete",
		"output", result.OutputFile, "rows_in", result.RowsIn, "rows_out", result.RowsOut,
		"elapsed", result.Elapsed)
	return result
}

// parse reads the input in the flow's input format.
func (c *Converter) parse() ([]string, []types.Row, error) {
	switch c.flow.Input {
	case config.FormatCSV:
		data, err := csvparser.ParseFile(c.opts.InputPath)
		if err != nil {
			return nil, nil, err
		}
		return data.Headers, data.Rows, nil
	case config.FormatXLSX:
		data, err := xlsxparser.Parse(c.opts.InputPath)
		if err != nil {
			return nil, nil, err
		}
		return data.Headers, data.Rows, nil
	default:
		return nil, nil, fmt.Errorf("unknown input format %q", c.flow.Input)
	}
}

func (c *Converter) fail(result Result, stage Stage, err error, start time.Time) Result {
	result.FailedStage = stage
	result.Err = err
	result.Elapsed = time.Since(start)
	c.log.Error("conversion failed",
		"run_id", result.RunID, "flow", result.FlowName, "stage", string(stage), "error", err)
	return result
}
