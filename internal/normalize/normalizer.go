package normalize

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// Normalizer converts one source's native CSV export into canonical
// transactions. The reference time is injected so year inference and other
// "today"-relative logic stays deterministic under test.
type Normalizer interface {
	Source() model.Source
	Normalize(r io.Reader, asOf time.Time) ([]model.Transaction, error)
}

// Registry holds normalizers keyed by source tag.
type Registry struct {
	normalizers map[model.Source]Normalizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{normalizers: make(map[model.Source]Normalizer)}
}

// Register adds a normalizer. Panics on duplicate source.
func (r *Registry) Register(n Normalizer) {
	src := n.Source()
	if _, ok := r.normalizers[src]; ok {
		panic("duplicate normalizer source: " + string(src))
	}
	r.normalizers[src] = n
}

// Get returns the normalizer for a source, or nil.
func (r *Registry) Get(src model.Source) Normalizer {
	return r.normalizers[src]
}

// DefaultRegistry returns a registry with all built-in normalizers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&AppleCardNormalizer{})
	r.Register(&VenmoNormalizer{})
	r.Register(&RobinhoodNormalizer{})
	r.Register(&TDBankNormalizer{})
	return r
}

// parseAmount parses a currency-formatted amount string, stripping a leading
// currency symbol and thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
