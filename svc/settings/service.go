package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/optguard/pkg/config"
	"github.com/dmitrymomot/optguard/pkg/environment"
	"github.com/dmitrymomot/optguard/pkg/hooks"
	"github.com/dmitrymomot/optguard/pkg/logger"
	"github.com/dmitrymomot/optguard/pkg/options"
	"github.com/dmitrymomot/optguard/pkg/optionstore"
	"github.com/dmitrymomot/optguard/pkg/rbac"
	"github.com/dmitrymomot/optguard/pkg/registry"
	"github.com/dmitrymomot/optguard/pkg/rules"
)

// Service is the composition root of the option sanitization layer.
type Service struct {
	cfg      Config
	log      *slog.Logger
	backend  backend
	auth     rbac.Authorizer
	catalog  *rules.Catalog
	registry *registry.Registry
	manager  *options.Manager
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	log            *slog.Logger
	store          optionstore.Store
	roles          rbac.RoleSource
	checker        rules.CapabilityChecker
	catalogOptions []rules.Option
}

// WithLogger replaces the logger built from the config.
func WithLogger(log *slog.Logger) Option {
	return func(o *serviceOptions) {
		o.log = log
	}
}

// WithStore uses store instead of opening the configured driver.
// The service does not close a store supplied this way.
func WithStore(store optionstore.Store) Option {
	return func(o *serviceOptions) {
		o.store = store
	}
}

// WithRoles replaces rbac.DefaultRoles as the source of role definitions.
func WithRoles(source rbac.RoleSource) Option {
	return func(o *serviceOptions) {
		o.roles = source
	}
}

// WithCapabilityChecker bypasses the role authorizer for capability-gated
// rules.
func WithCapabilityChecker(checker rules.CapabilityChecker) Option {
	return func(o *serviceOptions) {
		o.checker = checker
	}
}

// WithCatalogOptions passes options through to rules.NewCatalog.
func WithCatalogOptions(opts ...rules.Option) Option {
	return func(o *serviceOptions) {
		o.catalogOptions = append(o.catalogOptions, opts...)
	}
}

// NewFromEnv loads Config from the environment and builds a Service.
func NewFromEnv(ctx context.Context, opts ...Option) (*Service, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

// New builds a Service from cfg. When cfg.RulesFile is set the associations
// it declares are registered. Unknown rule names in the file are logged, or
// returned as ErrInvalidRules when cfg.StrictRules is set.
func New(ctx context.Context, cfg Config, opts ...Option) (*Service, error) {
	o := &serviceOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.store == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log := o.log
	if log == nil {
		log = logger.New(
			logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
			logger.WithLevelName(cfg.LogLevel),
			logger.WithContextExtractors(rbac.LoggerExtractor()),
		)
	}

	s := &Service{cfg: cfg, log: log}

	if o.store != nil {
		s.backend = backend{store: o.store}
	} else {
		b, err := openBackend(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		s.backend = b.withCache(cfg.CacheSize)
	}

	checker := o.checker
	if checker == nil {
		roles := o.roles
		if roles == nil {
			roles = rbac.NewInMemRoleSource(rbac.DefaultRoles())
		}
		auth, err := rbac.NewAuthorizer(ctx, roles)
		if err != nil {
			return nil, errors.Join(ErrAuthorizerInit, err, s.Close(ctx))
		}
		s.auth = auth
		checker = rbac.NewCapabilityChecker(auth,
			rbac.WithCheckerLogger(log.With(logger.Component("rbac"))),
		)
	}

	h := hooks.New[any]()
	s.catalog = rules.NewCatalog(checker, o.catalogOptions...)
	s.registry = registry.New(s.catalog, s.backend.store,
		registry.WithHooks(h),
		registry.WithLogger(log.With(logger.Component("registry"))),
	)
	s.manager = options.NewManager(s.backend.store, h,
		options.WithLogger(log.With(logger.Component("options"))),
	)

	if cfg.RulesFile != "" {
		if err := s.registry.LoadFile(cfg.RulesFile); err != nil {
			return nil, errors.Join(ErrLoadingRules, err, s.Close(ctx))
		}
		if err := s.registry.Validate(ctx); err != nil {
			if cfg.StrictRules {
				return nil, errors.Join(ErrInvalidRules, err, s.Close(ctx))
			}
			log.WarnContext(ctx, "rule associations reference unknown rules", logger.Error(err))
		}
		log.InfoContext(ctx, "rule associations loaded",
			slog.String("file", cfg.RulesFile),
			slog.Int("options", len(s.registry.Options())),
		)
	}

	return s, nil
}

// Register associates rule with option, or with the named fields of option.
func (s *Service) Register(option, rule string, subOptions ...string) bool {
	return s.registry.Register(option, rule, subOptions...)
}

// Extend adds a rule catalog extension.
func (s *Service) Extend(fn rules.Extension, priority int) {
	s.catalog.Extend(fn, priority)
}

// Update sanitizes value with the rules associated with name and stores the
// result. It reports whether the stored value changed.
func (s *Service) Update(ctx context.Context, name string, value any) (bool, error) {
	return s.manager.Update(ctx, name, value)
}

func (s *Service) Get(ctx context.Context, name string) (any, error) {
	return s.manager.Get(ctx, name)
}

func (s *Service) GetOr(ctx context.Context, name string, fallback any) any {
	return s.manager.GetOr(ctx, name, fallback)
}

func (s *Service) Delete(ctx context.Context, name string) error {
	return s.manager.Delete(ctx, name)
}

// Validate reports associations that name rules missing from the catalog.
func (s *Service) Validate(ctx context.Context) error {
	return s.registry.Validate(ctx)
}

func (s *Service) Registry() *registry.Registry { return s.registry }

func (s *Service) Manager() *options.Manager { return s.manager }

func (s *Service) Catalog() *rules.Catalog { return s.catalog }

// Authorizer returns the role authorizer, or nil when a capability checker
// was supplied with WithCapabilityChecker.
func (s *Service) Authorizer() rbac.Authorizer { return s.auth }

// Healthcheck pings the store connection. The memory store is always healthy.
func (s *Service) Healthcheck(ctx context.Context) error {
	if s.backend.health == nil {
		return nil
	}
	if err := s.backend.health(ctx); err != nil {
		return errors.Join(ErrHealthcheck, err)
	}
	return nil
}

// Close releases the store connection. It is safe to call more than once.
func (s *Service) Close(ctx context.Context) error {
	closeFn := s.backend.close
	s.backend.close = nil
	if closeFn == nil {
		return nil
	}
	if err := closeFn(ctx); err != nil {
		return errors.Join(ErrCloseFailed, err)
	}
	return nil
}
