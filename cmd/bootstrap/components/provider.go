package components

import (
	"talent-services/internal/provider"
	"talent-services/internal/provider/duolingo"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewRegistry,
	),
)

// NewRegistry lists every provider integration shipped with the binary.
// Adding a provider means adding one entry here.
func NewRegistry() (*provider.Registry, error) {
	return provider.NewRegistry(
		duolingo.New(),
	)
}
