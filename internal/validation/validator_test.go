package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRule struct {
	Output string `validate:"required"`
	Kind   string `validate:"required,oneof=copy const concat date"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(sampleRule{Output: "amount", Kind: "copy"})
	assert.Nil(t, errs)
}

func TestStructRequired(t *testing.T) {
	errs := Struct(sampleRule{Kind: "copy"})
	require.Len(t, errs, 1)
	assert.Equal(t, "sampleRule.Output", errs[0].Field)
	assert.Contains(t, errs[0].Message, "required")
}

func TestStructOneof(t *testing.T) {
	errs := Struct(sampleRule{Output: "amount", Kind: "lookup"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "must be one of")
	assert.Equal(t, "lookup", errs[0].Value)
}

func TestErrorRendering(t *testing.T) {
	e := NewError("FlowConfig.DateField", "must name a declared output field", "Settled At")
	assert.Equal(t, `FlowConfig.DateField: must name a declared output field (got "Settled At")`, e.Error())

	noValue := NewError("FlowConfig.FlowName", "is required", "")
	assert.Equal(t, "FlowConfig.FlowName: is required", noValue.Error())
}

func TestFormatErrors(t *testing.T) {
	got := FormatErrors([]*ValidationError{
		NewError("A", "is required", ""),
		NewError("B", "is required", ""),
	})
	assert.Equal(t, "A: is required; B: is required", got)
}
