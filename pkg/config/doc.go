// Package config handles configuration management for fprime-bootstrap.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: --config, or the first of config.toml,
//     config.yaml and config.yml under $XDG_CONFIG_HOME/fprime-bootstrap
//  3. environment variables: FPRIME_BOOTSTRAP_SECTION__KEY, for instance
//     FPRIME_BOOTSTRAP_TEMPLATE__DEFAULT or FPRIME_BOOTSTRAP_VERIFY__ENABLED
//  4. command-line overrides, as a flat key map
package config
