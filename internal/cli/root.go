// Package cli implements the beans command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/junioryono/beans"
	"github.com/junioryono/beans/internal/presentation"
	"github.com/junioryono/beans/internal/tracing"
	"github.com/junioryono/beans/internal/vehicles"
)

// Config holds the settings shared by every command. Values come from flags
// or BEANS_* environment variables.
type Config struct {
	Lifetime string `mapstructure:"lifetime"`
	Eager    bool   `mapstructure:"eager"`
	Output   string `mapstructure:"output"`
	Trace    bool   `mapstructure:"trace"`
	Verbose  bool   `mapstructure:"verbose"`
}

// NewRootCommand returns the beans command tree.
func NewRootCommand(version string) *cobra.Command {
	v := viper.New()
	a := &app{viper: v}

	rootCmd := &cobra.Command{
		Use:   "beans",
		Short: "Resolve components from a named, typed registry",
		Long: `Build the demo vehicle registry and resolve components from it.

Without a subcommand, resolves vehicle1, FerrariVehicle and BMWVehicle by name
and type, then resolves the Vehicle type alone, which selects the primary
definition (BMWVehicle).

Every flag can also be set through the environment, e.g. BEANS_LIFETIME=transient.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, a.runDemo)
		},
	}

	defaults := DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("lifetime", defaults.Lifetime, "instance caching policy (singleton or transient)")
	flags.Bool("eager", defaults.Eager, "create every singleton when the registry is built")
	flags.StringP("output", "o", defaults.Output, "output format (text, json or yaml)")
	flags.Bool("trace", defaults.Trace, "write OpenTelemetry spans for each lookup to stderr")
	flags.BoolP("verbose", "v", defaults.Verbose, "enable debug logging")

	// Bind flags to viper
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("BEANS")
	v.AutomaticEnv()

	rootCmd.AddCommand(newListCommand(a), newGetCommand(a))

	return rootCmd
}

// DefaultConfig returns the settings used when neither flags nor environment
// override them.
func DefaultConfig() Config {
	return Config{
		Lifetime: beans.Singleton.String(),
		Output:   string(presentation.FormatText),
	}
}

// Execute runs the command tree with the given version.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// app holds the per-invocation state built from Config.
type app struct {
	viper *viper.Viper

	registry  beans.Registry
	formatter *presentation.Formatter
	tracer    *tracing.Provider
	logger    *slog.Logger
}

// run builds the registry and tracer, calls fn and flushes spans.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, cmd *cobra.Command) error) error {
	var cfg Config
	if err := a.viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	if err := a.setup(cmd, cfg); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err := fn(ctx, cmd)

	if shutdownErr := a.tracer.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil && err == nil {
		err = fmt.Errorf("flushing traces: %w", shutdownErr)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, cfg Config) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	format, err := presentation.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	a.formatter = presentation.NewFormatter(cmd.OutOrStdout(), format)

	var lifetime beans.Lifetime
	if err := lifetime.UnmarshalText([]byte(cfg.Lifetime)); err != nil {
		return err
	}

	collection := beans.NewCollection()
	if err := collection.AddModules(vehicles.ProjectModule); err != nil {
		return fmt.Errorf("registering components: %w", err)
	}

	a.registry, err = collection.BuildWithOptions(&beans.Options{
		Lifetime: lifetime,
		Eager:    cfg.Eager,
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}

	traceCfg := tracing.DefaultConfig()
	traceCfg.Enabled = cfg.Trace
	traceCfg.Writer = cmd.ErrOrStderr()
	a.tracer, err = tracing.NewProvider(traceCfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	return nil
}
