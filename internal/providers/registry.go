package providers

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// RegistryConfig is the provider subset of application configuration,
// declared here so config can depend on providers without a cycle.
type RegistryConfig struct {
	// Default names the client used when a request does not pick one.
	Default string

	Gemini *GeminiConfig
	OpenAI *OpenAIConfig
}

// Registry holds the configured model clients. It supports config-driven
// instantiation, hot reload, and thread-safe access.
type Registry struct {
	mu          sync.RWMutex
	clients     map[string]Client
	defaultName string
	logger      *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register adds a client by name.
func (r *Registry) Register(name string, client Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = client
	if r.logger != nil {
		r.logger.Info("registered model client", "name", name)
	}
}

// SetDefault names the client returned by Default.
func (r *Registry) SetDefault(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultName = name
}

// Get returns a client by name.
func (r *Registry) Get(name string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("model client not found: %s", name)
	}
	return client, nil
}

// Default returns the configured default client.
func (r *Registry) Default() (Client, error) {
	r.mu.RLock()
	name := r.defaultName
	r.mu.RUnlock()
	if name == "" {
		return nil, fmt.Errorf("no default model client configured")
	}
	return r.Get(name)
}

// List returns all registered client names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reload replaces the registered clients from configuration. Existing
// clients not present in the new config are dropped.
func (r *Registry) Reload(cfg RegistryConfig) {
	clients := make(map[string]Client)

	if cfg.Gemini != nil && cfg.Gemini.APIKey != "" {
		clients[GeminiName] = NewGeminiClient(*cfg.Gemini)
	}
	if cfg.OpenAI != nil && cfg.OpenAI.APIKey != "" {
		clients[OpenAIName] = NewOpenAIClient(*cfg.OpenAI)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = clients
	r.defaultName = cfg.Default
	if r.logger != nil {
		names := make([]string, 0, len(clients))
		for name := range clients {
			names = append(names, name)
		}
		sort.Strings(names)
		r.logger.Info("model clients reloaded", "clients", names, "default", cfg.Default)
	}
}
