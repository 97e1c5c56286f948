// Package registry provides the static lookup tables that seed all name
// generation and configuration resolution: environments, applications,
// deployment regions, and well-known purpose codes.
//
// Registries are plain dependency-injected objects, built once during
// bootstrap and frozen before first use. They are append-only: registering
// an existing key fails instead of overwriting, because a silent overwrite
// would retroactively change the meaning of every name already issued from
// that key.
//
// # Usage
//
//	reg := registry.NewRegistries()
//	if err := registry.BootstrapDefaults(reg); err != nil {
//	    return err
//	}
//	reg.Freeze()
//	env, err := reg.Environments.Lookup("Development")
package registry
