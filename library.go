package specials

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fitlab/specials/catalog"
	"github.com/fitlab/specials/dist"
	"github.com/fitlab/specials/internal/config"
	"github.com/fitlab/specials/internal/logging"
	"github.com/fitlab/specials/value"
)

// ErrMissingCDF reports that the statistics collaborator (the standard
// normal CDF behind erf and erfc) was withheld at construction time. This
// is a load-time condition: an embedder must treat it as fatal rather than
// bind a catalogue whose error functions cannot evaluate.
var ErrMissingCDF = errors.New("specials: normal CDF dependency missing")

// Library is the assembled special-function catalogue. It is immutable
// after New: concurrent Call and Bind need no locking.
type Library struct {
	cdf dist.CDF
	cat *catalog.Catalogue
	log *logging.Logger
}

// Option configures New.
type Option func(*Library)

// WithCDF injects the standard normal CDF used by erf and erfc, replacing
// the default gonum-backed Φ. Passing nil makes New fail with
// ErrMissingCDF.
func WithCDF(cdf dist.CDF) Option {
	return func(l *Library) {
		l.cdf = cdf
	}
}

// WithLogger replaces the logger built from SPECIALS_LOG_* environment
// configuration.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Library) {
		l.log = &logging.Logger{Logger: logger}
	}
}

// New builds the function catalogue once. The catalogue is static for the
// process lifetime; no entry is ever added or removed after New returns.
func New(opts ...Option) (*Library, error) {
	l := &Library{cdf: dist.UnitNormalCDF}
	for _, opt := range opts {
		opt(l)
	}
	if l.cdf == nil {
		return nil, ErrMissingCDF
	}
	if l.log == nil {
		cfg := config.LoadOrDefault()
		l.log = logging.NewDefault(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
	}

	entries := trigEntries()
	entries = append(entries, gammaEntries()...)
	entries = append(entries, stepEntries()...)
	entries = append(entries, l.erfEntries()...)

	cat, err := catalog.New(entries)
	if err != nil {
		return nil, fmt.Errorf("specials: building catalogue: %w", err)
	}
	l.cat = cat

	l.log.Debug("special-function catalogue initialized",
		zap.Int("entries", cat.Len()))

	return l, nil
}

// Catalogue exposes the read-only catalogue for host introspection.
func (l *Library) Catalogue() *catalog.Catalogue {
	return l.cat
}

// Bind registers every catalogue entry into the host evaluator's function
// namespace exactly once. A Define error aborts the bind.
func (l *Library) Bind(ns catalog.Namespace) error {
	for _, e := range l.cat.Entries() {
		if err := ns.Define(e); err != nil {
			return fmt.Errorf("specials: binding %q: %w", e.Name, err)
		}
		l.log.Debug("bound function", zap.String("name", e.Name), zap.String("group", e.Group))
	}

	stats := l.cat.Stats()
	l.log.Info("special functions bound",
		zap.Int("total", stats.Total),
		zap.Any("groups", stats.Groups))

	return nil
}

// Call evaluates the named function on x. Unknown names are a host
// programming error, not a math condition.
func (l *Library) Call(name string, x value.Value) (value.Value, error) {
	e, ok := l.cat.Lookup(name)
	if !ok {
		return value.Value{}, fmt.Errorf("specials: unknown function %q", name)
	}
	return e.Fn(x), nil
}
