package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Empty(t, cfg.ConditionRules)
}

func TestLoadConfig_ReadsConditionRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdxmlctl.yaml")
	content := "condition_rules:\n  under_argon: \"Contains('Ar')\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Contains('Ar')", cfg.ConditionRules["under_argon"])
}

func TestConditionRuleSet_NilWhenNoRules(t *testing.T) {
	rs, err := conditionRuleSet(&Config{})
	require.NoError(t, err)
	require.Nil(t, rs)
}

func TestConditionRuleSet_CompilesRules(t *testing.T) {
	rs, err := conditionRuleSet(&Config{ConditionRules: map[string]string{
		"under_argon": "Contains('Ar')",
	}})
	require.NoError(t, err)
	require.NotNil(t, rs)
	require.Len(t, rs.Extra, 1)
}

func TestConditionRuleSet_InvalidExpressionErrors(t *testing.T) {
	_, err := conditionRuleSet(&Config{ConditionRules: map[string]string{
		"broken": "this is not valid expr syntax (((",
	}})
	require.Error(t, err)
}
