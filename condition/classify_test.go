package condition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsConditionText(t *testing.T) {
	cases := map[string]bool{
		"rt":          true,
		"25°C":        true,
		"2h":          true,
		"overnight":   true,
		"500rpm":      true,
		"1.5atm":      true,
		"N2":          true,
		"ethyl ether": false,
	}
	for text, want := range cases {
		require.Equal(t, want, IsConditionText(text), "text=%q", text)
	}
}

func TestIsTemperatureText(t *testing.T) {
	require.True(t, IsTemperatureText("rt"))
	require.True(t, IsTemperatureText("stirred at RT overnight"))
	require.True(t, IsTemperatureText("25°C"))
	require.False(t, IsTemperatureText("25 degrees"))
}

func TestIsTimeText(t *testing.T) {
	require.True(t, IsTimeText("overnight"))
	require.True(t, IsTimeText("30min"))
	require.True(t, IsTimeText("2h"))
	require.False(t, IsTimeText("h2o"))
}

func TestNormalize_MinutesToHours(t *testing.T) {
	require.Equal(t, "0.5 hr", Normalize("30min"))
}

func TestNormalize_HoursPassthroughFactor(t *testing.T) {
	require.Equal(t, "2 hr", Normalize("2h"))
}

func TestNormalize_AmbiguousUnitUnchanged(t *testing.T) {
	// stripping the leading "100" still leaves a digit in the remainder,
	// so the reading is ambiguous and passed through unchanged.
	require.Equal(t, "100-200mL", Normalize("100-200mL"))
}

func TestNormalize_NoLeadingNumberUnchanged(t *testing.T) {
	require.Equal(t, "overnight", Normalize("overnight"))
}

func TestClassify_OnlyMatchingFields(t *testing.T) {
	out := Classify("2h")
	require.Equal(t, "2 hr", out["reaction_time"])
	_, hasTemp := out["temperature"]
	require.False(t, hasTemp)
}

func TestClassify_Gas(t *testing.T) {
	out := Classify("N2 atmosphere")
	require.Equal(t, "N2 atmosphere", out["gas"])
}
