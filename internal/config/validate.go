package config

import (
	"fmt"

	"github.com/pawneshshakya/transaction-report-converter/internal/validation"
)

// ValidateFlow checks a flow configuration: struct tags first, then the
// cross-field rules the tags cannot express. A nil result means the flow is
// usable.
func ValidateFlow(flow *FlowConfig) []*validation.ValidationError {
	errs := validation.Struct(flow)

	seen := make(map[string]bool, len(flow.Fields))
	for i, rule := range flow.Fields {
		ns := fmt.Sprintf("FlowConfig.Fields[%d]", i)

		if rule.Output != "" && seen[rule.Output] {
			errs = append(errs, validation.NewError(ns+".Output", "duplicate output field", rule.Output))
		}
		seen[rule.Output] = true

		switch rule.Kind {
		case KindCopy, KindDate:
			if rule.Source == "" {
				errs = append(errs, validation.NewError(ns+".Source", "is required for kind "+rule.Kind, ""))
			}
		case KindConcat:
			if rule.Source == "" || rule.Second == "" {
				errs = append(errs, validation.NewError(ns, "concat needs both source and second", ""))
			}
		case KindConst:
			// Value may legitimately be empty; nothing to check.
		}
	}

	// Filter fields have to name declared outputs, or filtering would drop
	// every row silently.
	if flow.DateField != "" && !flow.Passthrough() && !seen[flow.DateField] {
		errs = append(errs, validation.NewError("FlowConfig.DateField", "does not match any output field", flow.DateField))
	}
	if flow.StatusField != "" && !flow.Passthrough() && !seen[flow.StatusField] {
		errs = append(errs, validation.NewError("FlowConfig.StatusField", "does not match any output field", flow.StatusField))
	}

	return errs
}
