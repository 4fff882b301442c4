package condition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleSet_ExtraRuleAppendsKind(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{
		"atmosphere": `Contains("inert")`,
	})
	require.NoError(t, err)

	out := rs.Classify("inert atmosphere", nil)
	require.Equal(t, "inert atmosphere", out["atmosphere"])
}

func TestRuleSet_NilIsBuiltinsOnly(t *testing.T) {
	var rs *RuleSet
	out := rs.Classify("2h", nil)
	require.Equal(t, "2 hr", out["reaction_time"])
}

func TestRuleSet_CannotOverrideBuiltin(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{
		"temperature": `true`,
	})
	require.NoError(t, err)

	out := rs.Classify("2h", nil)
	// the built-in result for "temperature" would be absent here (2h is
	// not a temperature reading); the extra rule still adds its own key,
	// it cannot suppress or replace a field the built-ins already set.
	require.Equal(t, "2h", out["temperature"])
	require.Equal(t, "2 hr", out["reaction_time"])
}

func TestCompileRule_InvalidExpression(t *testing.T) {
	_, err := CompileRule("bad", `Contains(`)
	require.Error(t, err)
}
