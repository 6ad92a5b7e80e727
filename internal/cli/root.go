// Package cli implements the optguard command line.
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/optguard/pkg/config"
	"github.com/dmitrymomot/optguard/pkg/environment"
	"github.com/dmitrymomot/optguard/pkg/logger"
	"github.com/dmitrymomot/optguard/pkg/rbac"
	"github.com/dmitrymomot/optguard/svc/settings"
)

var ErrInvalidPrincipal = errors.New("invalid principal id")

type flags struct {
	store       string
	rulesFile   string
	strict      bool
	role        string
	principalID string
	verbose     bool
}

// NewRootCmd builds the optguard command tree. opts are passed to
// settings.New for every command that opens the service.
func NewRootCmd(opts ...settings.Option) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "optguard",
		Short: "Sanitize and store option values",
		Long: `optguard stores option values after passing them through the sanitizer
rules associated with each option. Associations are read from the rules file
(OPTIONS_RULES_FILE or --rules); the store is selected by OPTIONS_STORE.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.store, "store", "", "option store driver (memory, redis, postgres, mongo)")
	pf.StringVar(&f.rulesFile, "rules", "", "YAML file with rule associations")
	pf.BoolVar(&f.strict, "strict", false, "fail when associations name unknown rules")
	pf.StringVar(&f.role, "role", "", "role of the acting principal")
	pf.StringVar(&f.principalID, "principal-id", "", "ID of the acting principal (random when empty)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")

	open := func(cmd *cobra.Command) (*settings.Service, context.Context, error) {
		return openService(cmd, &f, opts)
	}

	root.AddCommand(
		newRulesCmd(open),
		newOptionsCmd(open),
		newValidateCmd(open),
		newGetCmd(open),
		newSetCmd(open),
		newDeleteCmd(open),
	)

	return root
}

type opener func(cmd *cobra.Command) (*settings.Service, context.Context, error)

func openService(cmd *cobra.Command, f *flags, opts []settings.Option) (*settings.Service, context.Context, error) {
	var cfg settings.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}
	if f.store != "" {
		cfg.Store = f.store
	}
	if f.rulesFile != "" {
		cfg.RulesFile = f.rulesFile
	}
	if f.strict {
		cfg.StrictRules = true
	}

	level := "warn"
	if f.verbose {
		level = "debug"
	}
	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
		logger.WithLevelName(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(rbac.LoggerExtractor()),
	)
	logger.SetAsDefault(log)
	log.DebugContext(cmd.Context(), "command started", slog.String("command", cmd.Name()))

	ctx, err := principalContext(cmd.Context(), f)
	if err != nil {
		return nil, nil, err
	}

	svc, err := settings.New(ctx, cfg, append([]settings.Option{settings.WithLogger(log)}, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return svc, ctx, nil
}

func principalContext(ctx context.Context, f *flags) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.role == "" {
		return ctx, nil
	}

	id := uuid.New()
	if f.principalID != "" {
		parsed, err := uuid.Parse(f.principalID)
		if err != nil {
			return nil, errors.Join(ErrInvalidPrincipal, err)
		}
		id = parsed
	}
	return rbac.WithPrincipal(ctx, rbac.Principal{ID: id, Role: f.role}), nil
}
