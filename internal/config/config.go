// =============================================================================
// Transaction Report Converter - Flow Configuration
// =============================================================================
//
// This module defines the declarative mapping specs that drive every
// conversion flow. A flow names its input and output formats, the sheet and
// file the artifact is written to, and a mapping table deriving each output
// field from the raw input. The three partner schemas ship built in; dropping
// a YAML file into the configs directory adds or overrides a flow without a
// code change.
//
// FIELD RULE KINDS:
//   copy    - copy a named input field (missing field -> empty string)
//   const   - a hard-coded literal
//   concat  - two named input fields joined with a separator
//   date    - a named input field decoded from a spreadsheet serial (or
//             passed through unchanged when it is not numeric) and formatted
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pawneshshakya/transaction-report-converter/internal/validation"
)

// Source expression kinds for a FieldRule.
const (
	KindCopy   = "copy"
	KindConst  = "const"
	KindConcat = "concat"
	KindDate   = "date"
)

// Format identifiers for flow input/output.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// FieldRule derives one output field of a canonical row.
type FieldRule struct {
	// Output is the canonical field name. Rule order in the flow config is
	// the column order of the serialized artifact.
	Output string `yaml:"output" validate:"required"`

	// Kind is the source expression kind: copy, const, concat or date.
	Kind string `yaml:"kind" validate:"required,oneof=copy const concat date"`

	// Source is the input header to read (copy, concat, date).
	Source string `yaml:"source,omitempty"`

	// Second is the second input header for concat.
	Second string `yaml:"second,omitempty"`

	// Separator joins Source and Second for concat. May be empty.
	Separator string `yaml:"separator,omitempty"`

	// Value is the literal for const.
	Value string `yaml:"value,omitempty"`

	// Format is the Go time layout used by date rules.
	// Defaults to "1/2/2006, 3:04:05 PM" (the partner-report locale shape).
	Format string `yaml:"format,omitempty"`
}

// FlowConfig describes one conversion flow end to end.
type FlowConfig struct {
	// FlowName identifies the flow on the command line.
	FlowName string `yaml:"flow_name" validate:"required"`

	// Description is shown by `txnconv flows`.
	Description string `yaml:"description,omitempty"`

	// Input is the input format: csv (delimited text) or xlsx.
	Input string `yaml:"input" validate:"required,oneof=csv xlsx"`

	// Output is the output format: csv or xlsx.
	Output string `yaml:"output" validate:"required,oneof=csv xlsx"`

	// SheetName names the single sheet of an xlsx artifact.
	SheetName string `yaml:"sheet_name,omitempty"`

	// OutputFile is the default artifact file name.
	OutputFile string `yaml:"output_file,omitempty"`

	// Fields is the mapping table, in output column order.
	// An empty table means passthrough: the input's own headers and values
	// are carried to the artifact unchanged.
	Fields []FieldRule `yaml:"fields,omitempty" validate:"omitempty,dive"`

	// DateField is the canonical field holding the formatted date-time that
	// row filtering matches against. Only set on filterable flows.
	DateField string `yaml:"date_field,omitempty"`

	// StatusField is the canonical field holding the transaction status.
	// Only set on filterable flows.
	StatusField string `yaml:"status_field,omitempty"`
}

// Passthrough reports whether the flow copies input columns unchanged.
func (f *FlowConfig) Passthrough() bool {
	return len(f.Fields) == 0
}

// Columns returns the canonical output column names in declared order.
// For passthrough flows the columns come from the input, not the config.
func (f *FlowConfig) Columns() []string {
	cols := make([]string, len(f.Fields))
	for i, rule := range f.Fields {
		cols[i] = rule.Output
	}
	return cols
}

// =============================================================================
// BUILT-IN FLOWS
// =============================================================================

// BuiltinFlows returns the partner schemas that ship with the tool, keyed by
// flow name. Callers receive fresh copies and may mutate them freely.
func BuiltinFlows() map[string]*FlowConfig {
	flows := []*FlowConfig{
		{
			FlowName:    "passthrough",
			Description: "Delimited gateway text to a spreadsheet, columns unchanged",
			Input:       FormatCSV,
			Output:      FormatXLSX,
			SheetName:   "Transactions",
			OutputFile:  "Transaction_Report.xlsx",
		},
		{
			FlowName:    "mmtc",
			Description: "Gateway transaction export remapped to the MMTC-PAMP schema",
			Input:       FormatCSV,
			Output:      FormatXLSX,
			SheetName:   "Transactions",
			OutputFile:  "MMTC_Transaction_Report.xlsx",
			Fields: []FieldRule{
				{Output: "CustomerRefNo", Kind: KindCopy, Source: "CustomerRefNo"},
				{Output: "Name", Kind: KindCopy, Source: "Name"},
				{Output: "TotalAmount", Kind: KindCopy, Source: "TotalAmount"},
				{Output: "TransactionID", Kind: KindCopy, Source: "TransactionID"},
				{Output: "partner_name", Kind: KindConst, Value: ""},
				{Output: "TransactionDateTime", Kind: KindConcat, Source: "TransactionDate", Second: "TransactionTime", Separator: ","},
				{Output: "RRN", Kind: KindCopy, Source: "RRN"},
				{Output: "PampOrderId", Kind: KindCopy, Source: "PampOrderId"},
				{Output: "refinery", Kind: KindConst, Value: "MMTC"},
			},
		},
		{
			FlowName:    "augmont",
			Description: "Augmont bullion settlement report remapped to the downstream schema",
			Input:       FormatXLSX,
			Output:      FormatXLSX,
			SheetName:   "FilteredData",
			OutputFile:  "Augmont_Filtered_Data.xlsx",
			Fields: []FieldRule{
				{Output: "customerRefNo", Kind: KindConst, Value: ""},
				{Output: "customer_name", Kind: KindCopy, Source: "Account Name"},
				{Output: "amount", Kind: KindCopy, Source: "Total Amount"},
				{Output: "merchantTransactionId", Kind: KindCopy, Source: "Merchant Transaction Id"},
				{Output: "partner_name", Kind: KindConst, Value: ""},
				{Output: "date", Kind: KindDate, Source: "Buy Date"},
				{Output: "payment_id", Kind: KindConst, Value: ""},
				{Output: "order_id", Kind: KindConst, Value: ""},
			},
		},
		{
			FlowName:    "cashfree",
			Description: "Gateway settlement report canonicalized for date/status filtering",
			Input:       FormatXLSX,
			Output:      FormatCSV,
			SheetName:   "Filtered",
			OutputFile:  "filtered-transactions.csv",
			DateField:   "Transaction Time",
			StatusField: "Transaction Status",
			Fields: []FieldRule{
				{Output: "Customer Reference ID", Kind: KindCopy, Source: "Customer Reference ID"},
				{Output: "customer_name", Kind: KindCopy, Source: "customer_name"},
				{Output: "Transaction Amount", Kind: KindCopy, Source: "Transaction Amount"},
				{Output: "merchantTransactionId", Kind: KindCopy, Source: "merchantTransactionId"},
				{Output: "partner_name", Kind: KindCopy, Source: "partner_name"},
				{Output: "Transaction Time", Kind: KindDate, Source: "Transaction Time", Format: "2006-01-02 15:04"},
				{Output: "Reference Id", Kind: KindCopy, Source: "Reference Id"},
				{Output: "Order Id", Kind: KindCopy, Source: "Order Id"},
				{Output: "Transaction Status", Kind: KindCopy, Source: "Transaction Status"},
			},
		},
	}

	out := make(map[string]*FlowConfig, len(flows))
	for _, f := range flows {
		out[f.FlowName] = f
	}
	return out
}

// =============================================================================
// LOADING
// =============================================================================

// LoadFlows returns the built-in flows overlaid with any YAML flow files
// found in configsDir. A missing directory is not an error; the builtins are
// returned as-is so the tool works out of the box.
func LoadFlows(configsDir string) (map[string]*FlowConfig, error) {
	flows := BuiltinFlows()

	if configsDir == "" {
		return flows, nil
	}
	if _, err := os.Stat(configsDir); os.IsNotExist(err) {
		return flows, nil
	}

	files, err := filepath.Glob(filepath.Join(configsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	ymlFiles, err := filepath.Glob(filepath.Join(configsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		flow, err := loadFlowFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		flows[flow.FlowName] = flow
	}

	return flows, nil
}

// loadFlowFile loads and validates a single flow configuration file.
func loadFlowFile(path string) (*FlowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var flow FlowConfig
	if err := yaml.Unmarshal(data, &flow); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	applyFlowDefaults(&flow)

	if errs := ValidateFlow(&flow); len(errs) > 0 {
		return nil, fmt.Errorf("invalid flow configuration: %s", validation.FormatErrors(errs))
	}

	return &flow, nil
}

// applyFlowDefaults sets defaults for any unset flow options.
func applyFlowDefaults(flow *FlowConfig) {
	if flow.Input == "" {
		flow.Input = FormatCSV
	}
	if flow.Output == "" {
		flow.Output = FormatXLSX
	}
	if flow.SheetName == "" {
		flow.SheetName = "Transactions"
	}
	if flow.OutputFile == "" {
		ext := ".xlsx"
		if flow.Output == FormatCSV {
			ext = ".csv"
		}
		flow.OutputFile = flow.FlowName + "_report" + ext
	}
}
