/*
File    : rainbow/config/config_test.go
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarregar_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Carregar(filepath.Join(t.TempDir(), "nao-existe.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Padrao(), cfg)
}

func TestCarregar_OverridesLimits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".rainbowrc.yaml")
	content := "limites:\n  identificador: 80\n  numero: 30\n  texto: 2000\ncores: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Carregar(path)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Limites.Identificador)
	assert.Equal(t, 30, cfg.Limites.Numero)
	assert.Equal(t, 2000, cfg.Limites.Texto)
	assert.False(t, cfg.Cores)
}

func TestCarregar_MalformedFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".rainbowrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limites: [this, is, not, a, map]"), 0o644))

	_, err := Carregar(path)
	assert.Error(t, err)
}
