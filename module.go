package config

import (
	"fmt"

	"go.uber.org/fx"
)

// Loader runs one load against a store during module construction, e.g. a
// LoadFile call or an environment merge.
type Loader func(*Store) error

// Module creates an Fx module that builds a named *Store and runs the given
// loaders against it, in order, before the store enters the DI graph. The
// name is used as both the module name and the DI named tag.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name string, opts []Option, loaders ...Loader) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyModuleName)
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			func() (*Store, error) {
				store := New(opts...)

				for _, load := range loaders {
					err := load(store)
					if err != nil {
						return nil, fmt.Errorf("loading configuration for %q: %w", name, err)
					}
				}

				return store, nil
			},
			fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
		),
	))
}
