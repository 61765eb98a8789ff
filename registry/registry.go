// Package registry pools named HTTP clients. Each logical name maps to one
// lazily created *httpclient.Client that is reused across calls; callers
// never close a handle. All methods are safe for concurrent use.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
)

// Registry resolves logical client names to pooled HTTP clients.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]httpclient.Config
	clients map[string]*httpclient.Client
	log     *logger.Logger
}

// New creates an empty registry. A nil logger falls back to the global one.
func New(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.GetGlobalLogger().WithComponent("registry")
	}
	return &Registry{
		configs: make(map[string]httpclient.Config),
		clients: make(map[string]*httpclient.Client),
		log:     log,
	}
}

// Register adds a named client configuration. The client itself is created
// on first resolve. Registering a name twice is an error.
func (r *Registry) Register(name string, cfg httpclient.Config) error {
	if name == "" {
		return fmt.Errorf("registry: client name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[name]; exists {
		return fmt.Errorf("registry: client %q already registered", name)
	}
	r.configs[name] = cfg

	r.log.Debug("client registered", logger.Fields(logger.FieldClient, name))
	return nil
}

// Client returns the pooled client for the given name, creating it from its
// registered configuration on first use. Unknown names are an error.
func (r *Registry) Client(name string) (*httpclient.Client, error) {
	r.mu.RLock()
	if c, ok := r.clients[name]; ok {
		r.mu.RUnlock()
		return c, nil
	}
	cfg, registered := r.configs[name]
	r.mu.RUnlock()

	if !registered {
		return nil, fmt.Errorf("registry: client not registered: %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have created it while we waited for the lock.
	if c, ok := r.clients[name]; ok {
		return c, nil
	}

	if cfg.Name == "" {
		cfg.Name = name
	}
	if cfg.Logger == nil {
		cfg.Logger = r.log.WithComponent("httpclient")
	}

	c, err := httpclient.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create client %q: %w", name, err)
	}
	r.clients[name] = c

	r.log.Info("client created", logger.Fields(
		logger.FieldClient, name,
		logger.FieldURL, cfg.BaseURL,
	))
	return c, nil
}

// MustClient is like Client but panics on error. Intended for startup paths
// where a missing client is a programming mistake.
func (r *Registry) MustClient(name string) *httpclient.Client {
	c, err := r.Client(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the registered client names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
