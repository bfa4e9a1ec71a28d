package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML keys that map onto Config sections.
const (
	keyTable    = "table"
	keyDefaults = "defaults"
	keyOutput   = "output"
	keyLogging  = "logging"
)

// MergeYAML loads a YAML overlay and merges it onto target section by section.
// Fields set in the overlay win; everything else, including unknown top-level
// keys, leaves target unchanged. Lists such as table.paths are replaced, not
// appended to.
func MergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalSection decodes one section onto a copy of the current values and
// stores it only when decoding succeeds, so a bad overlay never half-applies.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyTable:
		v := target.Table
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Table = v
	case keyDefaults:
		v := target.Defaults
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Defaults = v
	case keyOutput:
		v := target.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
