// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/promptforge/promptforge/internal/assistant"
	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/history"
	"github.com/promptforge/promptforge/internal/home"
	"github.com/promptforge/promptforge/internal/providers"
	"github.com/promptforge/promptforge/internal/store"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Assistant *assistant.Service
	Registry  *providers.Registry
	History   *history.Log
	Store     *store.Store
	ConfigMgr *config.Manager
	Logger    *slog.Logger
	Home      *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// AssistantFrom extracts the assistant service from context.
func AssistantFrom(ctx context.Context) *assistant.Service {
	if s := ServicesFrom(ctx); s != nil {
		return s.Assistant
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// HistoryFrom extracts the history log from context.
func HistoryFrom(ctx context.Context) *history.Log {
	if s := ServicesFrom(ctx); s != nil {
		return s.History
	}
	return nil
}

// StoreFrom extracts the persistence store from context.
func StoreFrom(ctx context.Context) *store.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Store
	}
	return nil
}

// ConfigManagerFrom extracts the config manager from context.
func ConfigManagerFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigMgr
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
