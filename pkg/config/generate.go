package config

import (
	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// TOML renders the effective configuration as a config file
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
