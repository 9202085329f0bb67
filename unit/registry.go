package unit

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
)

// Registry interns units by canonical symbol. The seed catalog is loaded
// once at construction; composition and parsing add interned entries under
// the write lock, and all lookups after that are read-only.
type Registry struct {
	mu       sync.RWMutex
	bySymbol map[string]*Unit
	byName   map[string]*Unit
	tokens   map[string]*entry
	dims     map[string]dimension.Dimensionality
}

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

// DefaultRegistry returns the process-wide registry, building it on first
// use. The build is guarded so concurrent first callers observe a single
// fully seeded table.
func DefaultRegistry() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry builds a registry seeded with the full unit catalog.
func NewRegistry() *Registry {
	r := &Registry{
		bySymbol: make(map[string]*Unit),
		byName:   make(map[string]*Unit),
		tokens:   make(map[string]*entry),
		dims:     make(map[string]dimension.Dimensionality),
	}
	for i := range catalog {
		e := &catalog[i]
		r.tokens[e.symbol] = e
		r.dims[e.symbol] = mustQuantity(e.quantity)
	}
	// Intern the dimensionless unit and every catalog unit eagerly so
	// FindBySymbol works before any expression has been parsed.
	r.intern(nil, dimension.Dimensionless(), 1, "dimensionless", "dimensionless")
	for i := range catalog {
		e := &catalog[i]
		r.intern([]component{{token: e.symbol, exp: dimension.Int(1)}},
			r.dims[e.symbol], e.multiplier, e.name, e.plural)
	}
	return r
}

// Dimensionless returns the underived scale-1 unit with the zero
// dimensionality.
func (r *Registry) Dimensionless() *Unit {
	u, _ := r.lookupSymbol("1")
	return u
}

// intern returns the unit for the given canonical component vector,
// creating and registering it on first use.
func (r *Registry) intern(comps []component, d dimension.Dimensionality, mult float64, name, plural string) *Unit {
	symbol := canonicalSymbol(comps)

	r.mu.RLock()
	u, ok := r.bySymbol[symbol]
	r.mu.RUnlock()
	if ok {
		return u
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.bySymbol[symbol]; ok {
		return u
	}
	u = &Unit{
		symbol:     symbol,
		name:       name,
		plural:     plural,
		dim:        d,
		multiplier: mult,
		components: comps,
		reg:        r,
	}
	r.bySymbol[symbol] = u
	if name != "" {
		r.byName[name] = u
	}
	if plural != "" && plural != name {
		r.byName[plural] = u
	}
	return u
}

func (r *Registry) lookupSymbol(symbol string) (*Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.bySymbol[symbol]
	return u, ok
}

// FindBySymbol returns the interned unit with the exact canonical symbol.
func (r *Registry) FindBySymbol(symbol string) (*Unit, error) {
	if u, ok := r.lookupSymbol(symbol); ok {
		return u, nil
	}
	return nil, siquant.NewUnknownIdentifier("unit symbol", symbol)
}

// FindByName returns the interned unit with the exact display name or
// plural name.
func (r *Registry) FindByName(name string) (*Unit, error) {
	r.mu.RLock()
	u, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return u, nil
	}
	return nil, siquant.NewUnknownIdentifier("unit name", name)
}

// Symbols returns every interned canonical symbol, sorted.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syms := make([]string, 0, len(r.bySymbol))
	for s := range r.bySymbol {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// resolveToken resolves a possibly prefixed catalog symbol. Exact catalog
// matches win over prefix splits, so "min" is the minute and "Pa" the
// pascal. Prefixes apply only to prefixable entries and never stack.
func (r *Registry) resolveToken(sym string) (*Unit, error) {
	e, d, factor, prefixName, ok := r.splitToken(sym)
	if !ok {
		return nil, siquant.NewUnknownIdentifier("unit symbol", sym)
	}
	return r.intern([]component{{token: sym, exp: dimension.Int(1)}},
		d, factor*e.multiplier, prefixName+e.name, prefixName+e.plural), nil
}

// splitToken finds the catalog entry for a possibly prefixed symbol.
func (r *Registry) splitToken(sym string) (*entry, dimension.Dimensionality, float64, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.tokens[sym]; ok {
		return e, r.dims[sym], 1, "", true
	}
	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(sym, p.symbol)
		if !ok || rest == "" {
			continue
		}
		e, ok := r.tokens[rest]
		if !ok || !e.prefixable {
			continue
		}
		return e, r.dims[rest], p.factor, p.name, true
	}
	return nil, dimension.Dimensionality{}, 0, "", false
}

// IsKnownSymbol reports whether sym resolves to a catalog unit, with or
// without an SI prefix. It does not consult previously interned composed
// symbols.
func (r *Registry) IsKnownSymbol(sym string) bool {
	_, _, _, _, ok := r.splitToken(sym)
	return ok
}

// Define registers a custom derived unit. The definition is a scale factor
// followed by a unit expression, for example "201.168 m" for the furlong.
// The symbol must lex as a single symbol token and must not collide with a
// catalog token or an interned composed symbol. Re-registering a symbol
// with an identical definition returns the existing interned unit.
func (r *Registry) Define(symbol, name, plural, definition string) (*Unit, error) {
	if symbol == "" {
		return nil, siquant.NewValidationError("unit symbol must not be empty")
	}
	for _, c := range symbol {
		if !isSymbolRune(c) {
			return nil, siquant.NewValidationError("unit symbol %q must be a single symbol token", symbol)
		}
	}
	fields := strings.SplitN(strings.TrimSpace(definition), " ", 2)
	scale, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, siquant.NewParseError(definition, 0, fields[0], "invalid scale factor")
	}
	if scale <= 0 {
		return nil, siquant.NewValidationError("unit scale factor must be positive, got %v", scale)
	}
	base := r.Dimensionless()
	mult := 1.0
	if len(fields) == 2 && strings.TrimSpace(fields[1]) != "" {
		base, mult, err = r.Parse(fields[1])
		if err != nil {
			return nil, err
		}
	}
	e := &entry{
		symbol:     symbol,
		name:       name,
		plural:     plural,
		multiplier: scale * mult,
	}
	r.mu.Lock()
	if prev, ok := r.tokens[symbol]; ok {
		identical := prev.multiplier == e.multiplier && prev.name == name &&
			prev.plural == plural && r.dims[symbol].Equal(base.Dimensionality())
		r.mu.Unlock()
		if !identical {
			return nil, siquant.NewValidationError("unit symbol %q is already defined", symbol)
		}
		u, _ := r.lookupSymbol(symbol)
		return u, nil
	}
	if _, ok := r.bySymbol[symbol]; ok {
		r.mu.Unlock()
		return nil, siquant.NewValidationError("unit symbol %q is already defined", symbol)
	}
	r.tokens[symbol] = e
	r.dims[symbol] = base.Dimensionality()
	r.mu.Unlock()
	return r.intern([]component{{token: symbol, exp: dimension.Int(1)}},
		base.Dimensionality(), e.multiplier, name, plural), nil
}

// Package-level entry points backed by the default registry.

// Parse parses a unit expression against the default registry.
func Parse(text string) (*Unit, float64, error) {
	return DefaultRegistry().Parse(text)
}

// FindBySymbol looks up an interned unit in the default registry.
func FindBySymbol(symbol string) (*Unit, error) {
	return DefaultRegistry().FindBySymbol(symbol)
}

// FindByName looks up an interned unit by name in the default registry.
func FindByName(name string) (*Unit, error) {
	return DefaultRegistry().FindByName(name)
}

// Dimensionless returns the default registry's dimensionless unit.
func Dimensionless() *Unit {
	return DefaultRegistry().Dimensionless()
}
