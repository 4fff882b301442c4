package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunziqwq/cdxml-tools/builder"
	"github.com/lunziqwq/cdxml-tools/parser"
)

type parseOptions struct {
	out      string
	rebuild  bool
	position bool
}

func newParseCommand(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <file.cdxml>",
		Short: "Parse a CDXML reaction scheme and print the inferred roles as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(root, opts, args[0])
		},
	}

	pf := cmd.Flags()
	pf.StringVarP(&opts.out, "out", "o", "", "write output to this file instead of stdout")
	pf.BoolVar(&opts.rebuild, "rebuild", false, "rebuild CDXML markup from the parsed result instead of printing JSON")
	pf.BoolVar(&opts.position, "position", true, "include bounding-box positions in the output")

	return cmd
}

func runParse(root *rootOptions, opts *parseOptions, path string) error {
	zl, err := newZapLogger(root.verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer zl.Sync()

	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return err
	}
	rules, err := conditionRuleSet(cfg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	zl.Info("parsing scheme", zap.String("file", path))

	out, err := parser.Parse(string(raw), parser.Options{
		WithPosition:   opts.position,
		ConditionRules: rules,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	zl.Info("parsed scheme",
		zap.Int("reactions", len(out.Reaction)),
		zap.Int("compounds", len(out.Compound)),
	)

	var result []byte
	if opts.rebuild {
		doc, err := builder.Build(out)
		if err != nil {
			return fmt.Errorf("rebuild %s: %w", path, err)
		}
		result = []byte(doc)
	} else {
		result, err = json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
	}

	if opts.out == "" {
		fmt.Println(string(result))
		return nil
	}
	return os.WriteFile(opts.out, result, 0o644)
}
