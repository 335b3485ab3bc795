package htmltag

import (
	"log/slog"
	"sync"
)

// Registry resolves tag names to composers. The first Resolve of a name
// creates a composer with default configuration and caches it for the
// lifetime of the registry; later calls return the same instance, so
// configuration changes persist across resolutions. Entries are never
// evicted.
//
// Resolve is safe for concurrent use. Reconfiguring a resolved composer is
// not; see Tag.
type Registry struct {
	mu     sync.Mutex
	tags   map[string]*Tag
	logger *slog.Logger
}

// NewRegistry returns an empty registry. Tests and applications that need
// independently configured tag sets should each hold their own.
func NewRegistry() *Registry {
	return &Registry{tags: make(map[string]*Tag)}
}

// WithLogger sets the logger handed to composers the registry creates.
// Call it before the first Resolve.
func (self *Registry) WithLogger(logger *slog.Logger) *Registry {
	self.logger = logger
	return self
}

// Resolve returns the composer registered under name, creating and caching
// one with default configuration on first use.
func (self *Registry) Resolve(name string) *Tag {
	self.mu.Lock()
	defer self.mu.Unlock()

	if t, ok := self.tags[name]; ok {
		return t
	}
	t := NewTag(name)
	if self.logger != nil {
		t.WithLogger(self.logger)
	}
	self.tags[name] = t
	return t
}

// defaultRegistry backs the package-level Resolve, giving the process one
// shared tag namespace.
var defaultRegistry = NewRegistry()

// Resolve returns the composer for name from the process-wide registry.
//
//	htmltag.Resolve("strong").Wrap("SO STRONG!")
func Resolve(name string) *Tag { return defaultRegistry.Resolve(name) }
