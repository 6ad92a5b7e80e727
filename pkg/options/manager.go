package options

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/optguard/pkg/hooks"
	"github.com/dmitrymomot/optguard/pkg/logger"
	"github.com/dmitrymomot/optguard/pkg/optionstore"
)

// Manager is the read/write entry point for options.
type Manager struct {
	store optionstore.Store
	hooks *hooks.Registry[any]
	log   *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a manager over store. Persist filters are looked up in
// h; a nil h means values are stored as given.
func NewManager(store optionstore.Store, h *hooks.Registry[any], opts ...ManagerOption) *Manager {
	if h == nil {
		h = hooks.New[any]()
	}
	m := &Manager{
		store: store,
		hooks: h,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the stored value of name, or optionstore.ErrNotFound.
func (m *Manager) Get(ctx context.Context, name string) (any, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return m.store.Get(ctx, name)
}

// GetOr returns the stored value of name, or fallback when it is absent or
// cannot be read.
func (m *Manager) GetOr(ctx context.Context, name string, fallback any) any {
	value, err := m.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, optionstore.ErrNotFound) {
			m.log.ErrorContext(ctx, "failed to read option, using fallback",
				logger.OptionName(name), logger.Error(err))
		}
		return fallback
	}
	return value
}

// Update filters value through the persist chain of name and stores the
// result. It returns false when the filtered value equals the stored one.
func (m *Manager) Update(ctx context.Context, name string, value any) (bool, error) {
	if name == "" {
		return false, ErrEmptyName
	}

	filtered := m.hooks.Apply(ctx, hooks.PersistHook(name), value)

	old, err := m.store.Get(ctx, name)
	switch {
	case err == nil:
		if sameValue(old, filtered) {
			m.log.DebugContext(ctx, "option unchanged, write skipped", logger.OptionName(name))
			return false, nil
		}
	case !errors.Is(err, optionstore.ErrNotFound):
		return false, errors.Join(ErrUpdateFailed, err)
	}

	if err := m.store.Set(ctx, name, filtered); err != nil {
		return false, errors.Join(ErrUpdateFailed, err)
	}

	m.log.DebugContext(ctx, "option updated", logger.OptionName(name))
	return true, nil
}

// Delete removes name from the store.
func (m *Manager) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := m.store.Delete(ctx, name); err != nil {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}

// sameValue compares by JSON encoding, which is how stores persist values.
// Unencodable values never compare equal so Set reports the encode error.
func sameValue(a, b any) bool {
	ea, err := json.Marshal(a)
	if err != nil {
		return false
	}
	eb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ea, eb)
}
