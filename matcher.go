package filemagic

import (
	"io"
	"log/slog"
)

// Matcher identifies content against an ordered signature table. A Matcher
// is safe for concurrent use; its table never changes after construction.
type Matcher struct {
	sigs   []Signature
	cache  Cache
	logger *slog.Logger
}

// Option configures a Matcher
type Option func(*matcherOptions)

type matcherOptions struct {
	sigs    []Signature
	filter  Filter
	cache   Cache
	logger  *slog.Logger
	custom  bool
	filters bool
}

// WithSignatures replaces the built-in table. Order is preserved and
// remains significant.
func WithSignatures(sigs []Signature) Option {
	return func(o *matcherOptions) {
		o.sigs = append([]Signature(nil), sigs...)
		o.custom = true
	}
}

// WithMIMEFilter keeps only signatures whose MIME type matches one of the
// glob patterns.
func WithMIMEFilter(patterns ...string) Option {
	return func(o *matcherOptions) {
		o.filter.MIMETypes = append(o.filter.MIMETypes, patterns...)
		o.filters = true
	}
}

// WithExtensionFilter keeps only signatures whose extension matches one of
// the glob patterns.
func WithExtensionFilter(patterns ...string) Option {
	return func(o *matcherOptions) {
		o.filter.Extensions = append(o.filter.Extensions, patterns...)
		o.filters = true
	}
}

// WithCache memoises results in c. Results depend on the table, so a
// cache must not be shared between matchers with different tables.
func WithCache(c Cache) Option {
	return func(o *matcherOptions) {
		o.cache = c
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *matcherOptions) {
		o.logger = l
	}
}

// NewMatcher creates a Matcher. Without options it uses the full built-in
// table and no cache.
func NewMatcher(opts ...Option) (*Matcher, error) {
	o := &matcherOptions{}
	for _, opt := range opts {
		opt(o)
	}

	sigs := o.sigs
	if !o.custom {
		sigs = All()
	}
	if o.filters {
		var err error
		if sigs, err = o.filter.Apply(sigs); err != nil {
			return nil, err
		}
	}
	if len(sigs) == 0 {
		return nil, ErrNoSignatures
	}

	logger := o.logger
	if logger == nil {
		logger = discardLogger()
	}

	return &Matcher{sigs: sigs, cache: o.cache, logger: logger}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Signatures returns the matcher's table in match order.
func (m *Matcher) Signatures() []Signature {
	out := make([]Signature, len(m.sigs))
	copy(out, m.sigs)
	return out
}

// Identify returns the first signature matching src. The boolean is false
// when nothing matches; that is an ordinary outcome, not an error.
func (m *Matcher) Identify(src ByteSource) (Signature, bool) {
	if src == nil {
		return Signature{}, false
	}
	if m.cache != nil {
		return m.identifyCached(src)
	}
	return m.identify(src.ReadPrefix(PrefixSize), src)
}

// IdentifyBytes identifies an in-memory buffer.
func (m *Matcher) IdentifyBytes(data []byte) (Signature, bool) {
	return m.Identify(BytesSource(data))
}

// IdentifyReader reads up to MaxReadSize bytes from r and identifies them.
// Only read failures produce an error; unrecognised content does not.
func (m *Matcher) IdentifyReader(r io.Reader) (Signature, bool, error) {
	buf, err := readUpTo(r, MaxReadSize)
	if err != nil {
		return Signature{}, false, &SourceError{Op: "read", Err: err}
	}
	sig, ok := m.IdentifyBytes(buf)
	return sig, ok, nil
}

// Is reports whether src is identified as the format with extension ext.
func (m *Matcher) Is(src ByteSource, ext string) bool {
	sig, ok := m.Identify(src)
	return ok && sig.Is(ext)
}

func (m *Matcher) identify(prefix []byte, src ByteSource) (Signature, bool) {
	if len(prefix) > PrefixSize {
		prefix = prefix[:PrefixSize]
	}
	for _, sig := range m.sigs {
		if sig.Matches(prefix, src) {
			m.logger.Debug("signature matched",
				"extension", sig.Extension,
				"mime", sig.MIME,
				"prefix_len", len(prefix))
			return sig, true
		}
	}
	m.logger.Debug("no signature matched", "prefix_len", len(prefix))
	return Signature{}, false
}

// identifyCached reads the source once, up to the largest window any
// signature inspects, and matches against that buffer.
func (m *Matcher) identifyCached(src ByteSource) (Signature, bool) {
	data := src.ReadPrefix(MaxReadSize)
	key := cacheKey(data)

	if r, ok := m.cache.Get(key); ok {
		return r.Signature, r.Found
	}

	buf := BytesSource(data)
	sig, ok := m.identify(buf.ReadPrefix(PrefixSize), buf)
	m.cache.Set(key, Result{Signature: sig, Found: ok})
	return sig, ok
}
