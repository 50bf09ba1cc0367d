package filemagic

import (
	"fmt"
	"io"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultMatcher *Matcher
	defaultOnce    sync.Once
	defaultErr     error
	defaultMu      sync.RWMutex

	builtinOnce    sync.Once
	builtinMatcher *Matcher
)

// Builder creates Matchers from environment config under a custom prefix
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified env prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Matcher using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Matcher using the builder's prefix
func (b *Builder) New() (*Matcher, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global Matcher. Without arguments the config is
// loaded from the environment. Only the first call has any effect.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		m, err := New(cfg)
		if err != nil {
			defaultErr = err
			return
		}
		defaultMu.Lock()
		defaultMatcher = m
		defaultMu.Unlock()
	})

	return defaultErr
}

// InitFromEnv initializes the global Matcher from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Reset clears the global Matcher (for testing)
func Reset() {
	defaultMu.Lock()
	defaultMatcher = nil
	defaultMu.Unlock()
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// New creates a Matcher from config
func New(cfg *Config) (*Matcher, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	opts := []Option{}
	if mimes := splitList(cfg.MIMETypes); len(mimes) > 0 {
		opts = append(opts, WithMIMEFilter(mimes...))
	}
	if exts := splitList(cfg.Extensions); len(exts) > 0 {
		opts = append(opts, WithExtensionFilter(exts...))
	}
	if cfg.CacheEnabled {
		opts = append(opts, WithCache(NewMemoryCache(cfg.CacheSize)))
	}

	m, err := NewMatcher(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create matcher: %w", err)
	}
	return m, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.CacheEnabled && cfg.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive when the cache is enabled (got %d)", cfg.CacheSize)
	}
	return nil
}

// Default returns the global Matcher. Until Init succeeds it is a matcher
// over the full built-in table with no cache.
func Default() *Matcher {
	defaultMu.RLock()
	m := defaultMatcher
	defaultMu.RUnlock()
	if m != nil {
		return m
	}

	builtinOnce.Do(func() {
		builtinMatcher = &Matcher{sigs: All(), logger: discardLogger()}
	})
	return builtinMatcher
}

// Identify identifies src with the default Matcher.
func Identify(src ByteSource) (Signature, bool) {
	return Default().Identify(src)
}

// IdentifyBytes identifies an in-memory buffer with the default Matcher.
func IdentifyBytes(data []byte) (Signature, bool) {
	return Default().IdentifyBytes(data)
}

// IdentifyReader identifies the leading bytes of r with the default Matcher.
func IdentifyReader(r io.Reader) (Signature, bool, error) {
	return Default().IdentifyReader(r)
}

// Is reports whether src is identified as ext by the default Matcher.
func Is(src ByteSource, ext string) bool {
	return Default().Is(src, ext)
}
