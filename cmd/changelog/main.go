// Package main provides the changelog binary entry point.
// Changelog renders plain-text changelogs from RDF release histories
// and drives the external RDF/XML conversion step.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/changelog"
	"github.com/c360studio/changelog/changeset"
	"github.com/c360studio/changelog/config"
	"github.com/c360studio/changelog/convert"
	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/render"
	"github.com/c360studio/changelog/watch"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "changelog"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Render changelogs from RDF release histories",
		Long: `Changelog turns an RDF description of a project's releases into a
plain-text changelog.

It reads Turtle or JSON-LD documents in either the legacy Changefile
vocabulary or the current DOAP Change Sets vocabulary, detecting which
one automatically, and writes a deterministic text rendering. It can
also shell out to an external converter for an RDF/XML copy of the
source, and re-render whenever the input changes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(renderCmd(&configPath))
	cmd.AddCommand(convertCmd(&configPath))
	cmd.AddCommand(watchCmd(&configPath))
	cmd.AddCommand(initCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig resolves the effective configuration. An explicit --config
// path bypasses the layered user/project lookup.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

// applyInputFlags overlays input flags the user actually set onto cfg.
// Flags win over config files.
func applyInputFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path, _ = flags.GetString("input")
	}
	if flags.Changed("format") {
		cfg.Input.Format, _ = flags.GetString("format")
	}
	if flags.Changed("vocab") {
		cfg.Input.Vocabulary, _ = flags.GetString("vocab")
	}
	if flags.Changed("project-name") {
		cfg.Input.ProjectName, _ = flags.GetString("project-name")
	}
	if flags.Changed("all") {
		all, _ := flags.GetBool("all")
		cfg.Input.Scoped = !all
	}
}

func renderCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the changelog text",
		Long: `Render reads the input document and writes the formatted changelog.

Projects are discovered via the input document's explicit links by
default; --all lifts that restriction and renders every project the
graph describes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyInputFlags(cmd, cfg)
			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.Render.Output, _ = flags.GetString("output")
			}
			if flags.Changed("sort") {
				cfg.Render.Sort, _ = flags.GetString("sort")
			}
			if flags.Changed("width") {
				cfg.Render.Width, _ = flags.GetInt("width")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return runRender(cfg, cmd.OutOrStdout())
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Output path (- for stdout)")
	cmd.Flags().String("sort", "", "Release ordering (semver, lexical)")
	cmd.Flags().Int("width", 0, "Output width in columns")

	return cmd
}

func convertCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the input document to RDF/XML",
		Long: `Convert pipes the input document through an external RDF converter
(rapper by default) to produce an RDF/XML copy. A failing converter is
logged, not fatal; the output file may then be empty or partial.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyInputFlags(cmd, cfg)
			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.Convert.Output, _ = flags.GetString("output")
			}
			if flags.Changed("tool") {
				cfg.Convert.Tool, _ = flags.GetString("tool")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			format, err := graph.ParseFormat(cfg.Input.Format)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			conv := convert.New(slog.Default())
			conv.Tool = cfg.Convert.Tool
			return conv.ToXML(ctx, cfg.Input.Path, cfg.Convert.Output, format)
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "RDF/XML output path")
	cmd.Flags().String("tool", "", "Converter binary")

	return cmd
}

func watchCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the input changes",
		Long: `Watch renders the changelog once, then keeps re-rendering whenever
the input document is written. Rendering failures are logged and
watching continues. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyInputFlags(cmd, cfg)
			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.Render.Output, _ = flags.GetString("output")
			}
			if flags.Changed("sort") {
				cfg.Render.Sort, _ = flags.GetString("sort")
			}
			if flags.Changed("width") {
				cfg.Render.Width, _ = flags.GetInt("width")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if cfg.Render.Output == "-" {
				return fmt.Errorf("watch mode needs a file output, not stdout")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			// Initial render before watching. A broken input at startup
			// is fatal here; once watching, failures only log.
			if err := runRender(cfg, cmd.OutOrStdout()); err != nil {
				return err
			}

			watcher, err := watch.New(watch.Config{
				Path:     cfg.Input.Path,
				Debounce: cfg.Watch.Debounce,
				Logger:   slog.Default(),
			}, func(ctx context.Context) error {
				return runRender(cfg, cmd.OutOrStdout())
			})
			if err != nil {
				return err
			}
			defer watcher.Close()

			return watcher.Run(ctx)
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Output path")
	cmd.Flags().String("sort", "", "Release ordering (semver, lexical)")
	cmd.Flags().Int("width", 0, "Output width in columns")

	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default changelog.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ProjectConfigFile); err == nil {
				return fmt.Errorf("%s already exists", config.ProjectConfigFile)
			}
			if err := config.DefaultConfig().SaveToFile(config.ProjectConfigFile); err != nil {
				return err
			}
			slog.Info("Created project config", "path", config.ProjectConfigFile)
			return nil
		},
	}
}

// addInputFlags registers the input flags shared by render, convert
// and watch.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input document (path or http(s) URL)")
	cmd.Flags().String("format", "", "Input format (turtle, jsonld)")
	cmd.Flags().String("vocab", "", "Vocabulary (auto, legacy, current)")
	cmd.Flags().String("project-name", "", "Fallback name for unnamed projects")
	cmd.Flags().Bool("all", false, "Render every project, not just the document's own")
}

// runRender loads, extracts and renders per cfg, writing to the render
// output path or stdout.
func runRender(cfg *config.Config, stdout io.Writer) error {
	format, err := graph.ParseFormat(cfg.Input.Format)
	if err != nil {
		return err
	}
	vocab, err := changeset.ParseVocabulary(cfg.Input.Vocabulary)
	if err != nil {
		return err
	}
	sort, err := render.ParseSortMode(cfg.Render.Sort)
	if err != nil {
		return err
	}

	scope := changeset.Unscoped
	if cfg.Input.Scoped {
		scope = changeset.ScopedToDocument
	}

	cs, err := changelog.Open(cfg.Input.Path,
		changelog.WithFormat(format),
		changelog.WithVocabulary(vocab),
		changelog.WithScope(scope),
		changelog.WithDefaultName(cfg.Input.ProjectName),
		changelog.WithSort(sort),
		changelog.WithWidth(cfg.Render.Width),
	)
	if err != nil {
		return err
	}

	if cfg.Render.Output == "-" {
		_, err := stdout.Write([]byte(cs.Render()))
		return err
	}
	if err := cs.WriteFile(cfg.Render.Output); err != nil {
		return err
	}
	slog.Info("Rendered changelog",
		"input", cfg.Input.Path,
		"output", cfg.Render.Output,
		"vocabulary", string(cs.Vocabulary()))
	return nil
}
