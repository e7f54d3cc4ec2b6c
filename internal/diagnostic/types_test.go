package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("target_overflow", "extra parts ignored", "runProgram[0]", "targetApp")
	d.AddInfo("rules_deduped", "1 duplicate removed", "", "")
	assert.True(t, d.IsValid(), "warnings do not invalidate")

	d.AddError("duplicate_rule", "rule repeats runProgram[0]", "runProgram[1]", "")
	d.AddError("missing_target_app", "no program", "runProgram[2]", "targetApp")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.Len(t, d.ByCode("duplicate_rule"), 1)
	assert.Empty(t, d.ByCode("nope"))

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"runProgram[1]: [duplicate_rule] rule repeats runProgram[0]; runProgram[2] targetApp: [missing_target_app] no program",
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] m", Diagnostic{Code: "c", Message: "m"}.String())
	assert.Equal(t, "r: m", Diagnostic{Rule: "r", Message: "m"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
