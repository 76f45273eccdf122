package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sentinela/gateway/internal/ai"
	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/config"
	"github.com/sentinela/gateway/internal/geocode"
	"github.com/sentinela/gateway/internal/service"
	"github.com/sentinela/gateway/internal/session"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// app is the per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	format string
	quiet  bool
}

// NewRootCmd builds the sentinela command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "sentinela",
		Short: "SENTINELA terminal client",
		Long: `sentinela queries the SENTINELA backend for one subject (PIN) and shows
the call-monitoring dashboard in the terminal: daily and hourly call
counts, most dialed numbers, alerts and the relationship network with
per-contact drill-down.

Configuration comes from .env, the environment (BACKEND_URL, DEFAULT_PIN,
API_TOKEN, ...) and the flags below, flags taking precedence.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("backend", "", "backend base URL (BACKEND_URL)")
	flags.String("pin", "", "subject PIN (DEFAULT_PIN)")
	flags.String("token", "", "bearer token (API_TOKEN)")
	flags.String("log-level", "", "log level (LOG_LEVEL)")
	flags.StringVar(&a.format, "format", "json", "output format: json or yaml")
	_ = a.v.BindPFlag("BACKEND_URL", flags.Lookup("backend"))
	_ = a.v.BindPFlag("DEFAULT_PIN", flags.Lookup("pin"))
	_ = a.v.BindPFlag("API_TOKEN", flags.Lookup("token"))
	_ = a.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	root.AddCommand(
		newDashCmd(a),
		newLadaCmd(a),
		newSummaryCmd(a),
		newGraphCmd(a),
		newContactCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command, cancelling in-flight requests on
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) config() (config.Config, error) {
	a.v.SetConfigFile(".env")
	a.v.SetConfigType("env")
	a.v.AutomaticEnv()
	_ = a.v.ReadInConfig()
	return config.FromViper(a.v)
}

func (a *app) logger(cfg config.Config) zerolog.Logger {
	if a.quiet {
		return zerolog.Nop()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("service", "sentinela-cli").Logger()
}

// dashboard wires the backend client and the dashboard service from the
// resolved configuration.
func (a *app) dashboard() (*service.Dashboard, session.Session, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, session.Session{}, err
	}
	if err := checkFormat(a.format); err != nil {
		return nil, session.Session{}, err
	}
	logger := a.logger(cfg)
	client := backend.New(cfg.BackendURL, cfg.RequestTimeout, cfg.UpstreamRPS)

	var enricher ai.Enricher = ai.BackendEnricher{Backend: client}
	if cfg.MockAnalysis() {
		enricher = ai.MockEnricher{}
	}
	d := &service.Dashboard{
		Backend:          client,
		Enricher:         enricher,
		Locator:          geocode.TableLocator{},
		Logger:           logger,
		MergeKm:          cfg.MarkerMergeKm,
		Parallelism:      cfg.DrillDownParallelism,
		PlaceholderPhoto: cfg.PlaceholderPhoto,
	}
	return d, session.New("cli", cfg.DefaultPIN, cfg.APIToken), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sentinela %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}
