package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	DSN  string `mapstructure:"dsn"`
	Seed bool   `mapstructure:"seed"`
	TTL  int    `mapstructure:"ttl"`
}

func TestConfigToStruct(t *testing.T) {
	s, err := ConfigToStruct[settings](map[string]any{
		"dsn":  "file.db",
		"seed": "true",
		"ttl":  "30",
	})
	require.NoError(t, err)
	assert.Equal(t, settings{DSN: "file.db", Seed: true, TTL: 30}, *s)
}

func TestConfigToStructNil(t *testing.T) {
	s, err := ConfigToStruct[settings](nil)
	require.NoError(t, err)
	assert.Equal(t, settings{}, *s)
}

func TestConfigToStructBadValue(t *testing.T) {
	_, err := ConfigToStruct[settings](map[string]any{"ttl": "soon"})
	assert.Error(t, err)
}
