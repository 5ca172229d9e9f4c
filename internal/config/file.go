package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// secretKeys may only be supplied through the environment
var secretKeys = map[string]struct{}{
	EnvAPIKey:     {},
	EnvJWTSecret:  {},
	EnvDBPassword: {},
}

// fileValues holds non-secret defaults read from a TOML or YAML file. Keys are
// the environment variable names, so `expiration_duration = "720h"` in the
// file maps to EXPIRATION_DURATION.
type fileValues map[string]string

func loadFile(path string) (fileValues, error) {
	if path == "" {
		return fileValues{}, nil
	}

	raw, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadConfigFile, path, err)
	}

	values := make(fileValues, len(raw))
	for k, v := range raw {
		key := strings.ToUpper(k)
		if _, secret := secretKeys[key]; secret {
			return nil, fmt.Errorf("%s: %s", ErrMsgSecretInConfigFile, key)
		}

		switch val := v.(type) {
		case string:
			values[key] = val
		case int64:
			values[key] = strconv.FormatInt(val, 10)
		case int:
			values[key] = strconv.Itoa(val)
		case bool:
			values[key] = strconv.FormatBool(val)
		case []interface{}:
			parts := make([]string, 0, len(val))
			for _, p := range val {
				parts = append(parts, fmt.Sprint(p))
			}
			values[key] = strings.Join(parts, ",")
		default:
			return nil, fmt.Errorf("%s: %s", ErrMsgUnsupportedFileValue, key)
		}
	}

	if err := validateFile(raw); err != nil {
		return nil, err
	}
	return values, nil
}

// decodeFile picks the decoder from the extension; anything that is not YAML is read as TOML
func decodeFile(path string) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func (f fileValues) str(key, defaultValue string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return defaultValue
}

func (f fileValues) integer(key string, defaultValue int) int {
	if v, err := strconv.Atoi(f[key]); err == nil {
		return v
	}
	return defaultValue
}

func (f fileValues) duration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(f[key]); err == nil {
		return v
	}
	return defaultValue
}
