package provider

import (
	"strings"

	"talent-services/internal/domain/resource"
	"talent-services/internal/pkg/errs"
)

// Registry is the provider lookup table, built once at startup from the
// full set of registered providers. Construction fails the process boot on
// a duplicate key or an incomplete registration.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) (*Registry, error) {
	table := make(map[string]Provider, len(providers))
	for _, p := range providers {
		key := normalizeKey(p.Key)
		if key == "" {
			return nil, errs.New("provider key cannot be empty")
		}
		if _, exists := table[key]; exists {
			return nil, errs.Mark(
				errs.Newf("provider %q registered twice", key),
				errs.ErrDuplicatePolicy)
		}
		if p.Allocator == nil || p.Importer == nil || p.Policy == nil {
			return nil, errs.Newf("provider %q must register allocator, importer and policy", key)
		}
		if len(p.ServiceCodes) == 0 {
			return nil, errs.Newf("provider %q registers no service codes", key)
		}
		p.Key = key
		table[key] = p
	}
	return &Registry{providers: table}, nil
}

func (r *Registry) ForProvider(key string) (Provider, error) {
	p, ok := r.providers[normalizeKey(key)]
	if !ok {
		return Provider{}, errs.Mark(
			errs.Newf("no service registered for provider %q", key),
			errs.ErrUnknownProvider)
	}
	return p, nil
}

// ForService resolves the provider and checks it supports the offering.
func (r *Registry) ForService(key string, code resource.ServiceCode) (Provider, error) {
	p, err := r.ForProvider(key)
	if err != nil {
		return Provider{}, err
	}
	if !p.Supports(code) {
		return Provider{}, errs.Mark(
			errs.Newf("provider %q does not offer service code %q", p.Key, code),
			errs.ErrUnknownServiceCode)
	}
	return p, nil
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
