package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunziqwq/cdxml-tools/internal/devserver"
	"github.com/lunziqwq/cdxml-tools/parser"
)

type watchOptions struct {
	addr string
}

func newWatchCommand(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file.cdxml>",
		Short: "Re-parse a CDXML file on every change and serve a live HTML preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "address the preview server listens on")

	return cmd
}

func runWatch(root *rootOptions, opts *watchOptions, path string) error {
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	h := &devserver.Handler{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	reparse := func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			zl.Warn("read watched file", zap.String("file", path), zap.Error(err))
			return
		}
		out, err := parser.Parse(string(raw), parser.Options{
			WithPosition:   true,
			ConditionRules: rules,
		})
		if err != nil {
			zl.Warn("parse watched file", zap.String("file", path), zap.Error(err))
			return
		}
		zl.Info("re-parsed scheme", zap.String("file", path), zap.Int("reactions", len(out.Reaction)))
		h.Update(out)
	}

	reparse()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					reparse()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				zl.Warn("file watcher error", zap.Error(err))
			}
		}
	}()

	zl.Info("serving live preview", zap.String("addr", opts.addr))
	return http.ListenAndServe(opts.addr, h)
}
