// Package kinetics implements the Arrhenius chemical-kinetics shelf-life model.
// Each supported product carries a kinetic profile; the registry is populated
// once at startup and never mutated afterwards.
package kinetics

import (
	"sort"
	"strings"
	"sync"

	"freshchain/internal/errors"
)

// Profile holds the per-product Arrhenius constants
type Profile struct {
	// Product is the normalized product name
	Product string `json:"product"`

	// ActivationEnergy in J/mol
	ActivationEnergy float64 `json:"activation_energy"`

	// RateConstant is the pre-exponential factor A
	RateConstant float64 `json:"rate_constant"`

	// RefLifeDays is the shelf life at the reference temperature
	RefLifeDays float64 `json:"ref_life_days"`
}

// Validate checks that the profile constants are physically plausible
func (p Profile) Validate() error {
	if p.Product == "" {
		return errors.New(errors.TypeConfig, "kinetic profile missing product name")
	}
	if p.ActivationEnergy <= 0 {
		return errors.Newf(errors.TypeConfig, "kinetic profile %s: activation energy must be positive", p.Product)
	}
	if p.RateConstant <= 0 {
		return errors.Newf(errors.TypeConfig, "kinetic profile %s: rate constant must be positive", p.Product)
	}
	if p.RefLifeDays <= 0 {
		return errors.Newf(errors.TypeConfig, "kinetic profile %s: reference shelf life must be positive", p.Product)
	}
	return nil
}

// Registry is an immutable lookup table of kinetic profiles.
// Lookups for unknown products fail with a typed error, never a zero value.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry creates a registry from a set of profiles
func NewRegistry(profiles []Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := Normalize(p.Product)
		p.Product = key
		r.profiles[key] = p
	}
	return r, nil
}

// DefaultRegistry returns a registry with the built-in product table
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinProfiles)
	if err != nil {
		// The built-in table is validated by tests; a failure here is a bug.
		panic(err)
	}
	return r
}

// Lookup returns the profile for a product, matching case-insensitively
func (r *Registry) Lookup(product string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[Normalize(product)]
	if !ok {
		return Profile{}, errors.UnsupportedProduct(product)
	}
	return p, nil
}

// Products returns the sorted set of supported product names
func (r *Registry) Products() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize lower-cases and trims a product name for lookup
func Normalize(product string) string {
	return strings.ToLower(strings.TrimSpace(product))
}

// builtinProfiles is the default kinetic table for supported perishables
var builtinProfiles = []Profile{
	{Product: "apple", ActivationEnergy: 70000.0, RateConstant: 2.0e11, RefLifeDays: 60},
	{Product: "banana", ActivationEnergy: 62000.0, RateConstant: 9.0e9, RefLifeDays: 14},
	{Product: "tomato", ActivationEnergy: 36000.0, RateConstant: 1.5e5, RefLifeDays: 14},
	{Product: "mango", ActivationEnergy: 46000.0, RateConstant: 2.5e7, RefLifeDays: 12},
	{Product: "potato", ActivationEnergy: 60000.0, RateConstant: 4.0e10, RefLifeDays: 90},
}
