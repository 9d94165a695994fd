// Package config loads the optional nyutils YAML config file and exposes
// dotted-key lookups over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "NYUTILS_CONFIG"

// DefaultFile is the config file name looked up in the home directory.
const DefaultFile = ".nyutils.yaml"

// ErrNoKey is returned when a dotted key is not present.
var ErrNoKey = errors.New("config: key not found")

// Type is a loaded config document.
type Type struct {
	Source string
	Data   map[string]any
}

// Path returns the config path: $NYUTILS_CONFIG, else ~/.nyutils.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, DefaultFile), nil
}

// Load reads the config at path, or at Path() when path is empty. A missing
// file is not an error: the result has its Source set and no data, so flag
// defaults still apply.
func Load(path string) (Type, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Type{}, err
		}
		path = p
	}

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Debug("config: no config file")
		return Type{Source: path}, nil
	}
	if err != nil {
		return Type{}, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("config: %s: %w", path, err)
	}
	log.WithField("path", path).Debug("config: loaded")

	return Type{Source: path, Data: data}, nil
}

// get traverses the map using a dotted key path.
func (cfg Type) get(key string) (any, error) {
	var current any = cfg.Data
	for _, k := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoKey, key)
		}
		if current, ok = m[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoKey, key)
		}
	}

	return current, nil
}

// GetString returns the string at key, or defaultValue[0] when the key is
// missing and a default is given.
func (cfg Type) GetString(key string, defaultValue ...string) (string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("config: value at %s is not a string", key)
	}

	return s, nil
}

// GetInt returns the integer at key, or defaultValue[0] when the key is
// missing and a default is given.
func (cfg Type) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}
	i, ok := val.(int)
	if !ok {
		return 0, fmt.Errorf("config: value at %s is not an int", key)
	}

	return i, nil
}
