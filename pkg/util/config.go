package util

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ConfigToStruct populates a T from a backend's free-form settings map.
// Values are weakly typed so "true" and 1 both decode into a bool, which
// matters for settings overridden from the environment.
func ConfigToStruct[T any](rawConfig map[string]any) (*T, error) {
	config := new(T)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return config, nil
}
