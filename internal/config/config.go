// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Namespace: optional keyspace, normally the running scenario's name, used
//     to prefer namespaced lookups (e.g. "s3-basics.region").
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// init attempts to load configuration at process start. Errors are ignored so
// scenarios can still run without a config file.
func init() {
	_, _ = Load()
}

// GetBool returns the boolean value for the given dotted key path. The single
// defaultValue is returned when the key is missing, and also, with the error,
// when the value is not a bool.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := lookup(key)
	if err != nil {
		return missing(err, defaultValue)
	}

	b, ok := val.(bool)
	if !ok {
		return invalid(key, errors.New("value is not a bool"), defaultValue)
	}
	return b, nil
}

// GetDuration reads an integer number of milliseconds at key and returns it as
// a time.Duration. Defaults behave as in GetBool.
func GetDuration(key string, defaultValue ...time.Duration) (time.Duration, error) {
	val, err := lookup(key)
	if err != nil {
		return missing(err, defaultValue)
	}

	ms, err := toInt(val)
	if err != nil {
		return invalid(key, err, defaultValue)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// GetInt returns the integer value for the given dotted key path. Defaults
// behave as in GetBool.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		return missing(err, defaultValue)
	}

	i, err := toInt(val)
	if err != nil {
		return invalid(key, err, defaultValue)
	}
	return i, nil
}

// GetString returns the string value for the given dotted key path. Defaults
// behave as in GetBool.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		return missing(err, defaultValue)
	}

	s, ok := val.(string)
	if !ok {
		return invalid(key, errors.New("value is not a string"), defaultValue)
	}

	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
// Defaults behave as in GetBool.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		return missing(err, defaultValue)
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return invalid(key, errors.New("slice element is not a string"), defaultValue)
			}
			result[i] = s
		}
		return result, nil
	default:
		return invalid(key, errors.New("value is not a slice"), defaultValue)
	}
}

// missing handles an absent key: the default if one was given, else err.
func missing[T any](err error, defaultValue []T) (T, error) {
	if len(defaultValue) == 1 {
		return defaultValue[0], nil
	}
	var zero T
	return zero, err
}

// invalid handles a value of the wrong type. A given default is returned
// alongside the error so callers that only want a usable value still get one.
func invalid[T any](key string, err error, defaultValue []T) (T, error) {
	err = fmt.Errorf("config key %s: %w", key, err)
	if len(defaultValue) == 1 {
		log.Warnf("%v, using default %v", err, defaultValue[0])
		return defaultValue[0], err
	}
	var zero T
	return zero, err
}

// Load reads the YAML configuration file and populates the global Config,
// preserving the current Namespace.
func Load() (Type, error) {
	path, err := File()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, err
	}

	Config = Type{
		Source:    path,
		Namespace: Config.Namespace,
		Data:      data,
	}

	return Config, nil
}

// File returns the absolute path to the YAML config file. If the
// SCENARIOS_CFG_FILE environment variable is set, it is treated as the full
// path to the config file. Otherwise, "scenarios.yaml" in os.UserConfigDir is
// used. The file must exist and not be a directory.
func File() (string, error) {
	if cfgPath := os.Getenv("SCENARIOS_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from SCENARIOS_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("SCENARIOS_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at SCENARIOS_CFG_FILE path: %s", cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "scenarios.yaml")
	if fileInfo, err := os.Stat(file); err == nil {
		if !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}

	return "", fmt.Errorf("no config file found in standard locations")
}

func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}
	return Config.get(key)
}

// get traverses the configuration tree using a dotted key path (e.g.
// "pacing.char_delay_ms"). If Namespace is set, the namespaced key is tried
// first, then the bare key.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = cfg.Data

		success := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[part]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// YAML numbers may be unmarshaled as int/float64 depending on content.
func toInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}
