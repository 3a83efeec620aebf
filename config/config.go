/*
File    : rainbow/config/config.go
*/

// Package config loads the optional `.rainbowrc.yaml` that overrides the
// lexer's size limits and the CLI's console-output preferences. Absence
// of the file is not an error — every field falls back to the defaults
// spec.md names.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/rainbow/lexer"
)

// Config is the shape of `.rainbowrc.yaml`.
type Config struct {
	Limites struct {
		Identificador int `yaml:"identificador"`
		Numero        int `yaml:"numero"`
		Texto         int `yaml:"texto"`
	} `yaml:"limites"`
	Cores bool `yaml:"cores"`
}

// Padrao returns the built-in defaults, matching lexer.DefaultLimits and
// colorized console output enabled.
func Padrao() Config {
	c := Config{Cores: true}
	c.Limites.Identificador = lexer.DefaultLimits.MaxIdentifier
	c.Limites.Numero = lexer.DefaultLimits.MaxNumber
	c.Limites.Texto = lexer.DefaultLimits.MaxString
	return c
}

// Carregar reads path (typically `.rainbowrc.yaml`); a missing file
// yields Padrao() with no error. A present-but-malformed file yields its
// parse error.
func Carregar(path string) (Config, error) {
	cfg := Padrao()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Padrao(), err
	}
	return cfg, nil
}

// Limits converts Config's size limits into a lexer.Limits for NewWithLimits.
func (c Config) Limits() lexer.Limits {
	return lexer.Limits{
		MaxIdentifier: c.Limites.Identificador,
		MaxNumber:     c.Limites.Numero,
		MaxString:     c.Limites.Texto,
	}
}
