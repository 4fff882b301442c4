package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunziqwq/cdxml-tools/condition"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cdxmlctl",
		Short:         "Infer reaction semantics from CDXML reaction schemes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (default: ./cdxmlctl.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug-level logging")

	cmd.AddCommand(newParseCommand(opts), newWatchCommand(opts))

	return cmd
}

func newZapLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func conditionRuleSet(cfg *Config) (*condition.RuleSet, error) {
	if len(cfg.ConditionRules) == 0 {
		return nil, nil
	}
	rs, err := condition.NewRuleSet(cfg.ConditionRules)
	if err != nil {
		return nil, fmt.Errorf("compile condition rules: %w", err)
	}
	return rs, nil
}
