// File: config.go
// Title: mLang Configuration Management Implementation
// Description: Implements the Config type and core functionality for loading,
//              parsing, and accessing mLang tool configuration from TOML and
//              YAML files with environment variable support.
// Author: msto63
// Version: v0.1.1
// Created: 2026-08-14
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-08-21 v0.1.1: Rework lookup helpers and loader structure

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is the environment variable prefix used when none is
// configured. build.optimization becomes MLANG_BUILD_OPTIMIZATION.
const DefaultEnvPrefix = "MLANG"

// Format selects how a configuration document is parsed.
type Format int

const (
	// FormatTOML is the default document format
	FormatTOML Format = iota

	// FormatYAML selects YAML parsing
	FormatYAML

	// FormatAuto picks the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds parsed configuration data. Reads and writes are safe for
// concurrent use; the environment is consulted on every read, so an
// override set between calls takes effect immediately.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // Document format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: MLANG)
	Defaults  map[string]interface{} // Values for keys the file does not provide
}

// Load reads the configuration file at filePath, detecting the format
// from its extension.
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions reads a configuration file with an explicit format,
// environment prefix, and load-time defaults.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("config file path is empty")
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filePath, err)
	}
	data, err := decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filePath, err)
	}
	if options.Defaults != nil {
		data = overlayDefaults(data, options.Defaults)
	}

	prefix := options.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: prefix,
	}, nil
}

// LoadFromString parses configuration from an in-memory document. Empty
// content yields an empty, fully usable configuration, so environment
// variables alone can drive a run.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := decode([]byte(content), format)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &Config{
		data:      data,
		format:    format,
		envPrefix: DefaultEnvPrefix,
	}, nil
}

// detectFormat maps a file extension to its configuration format.
// Unknown extensions read as TOML.
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode unmarshals one configuration document in the given format.
func decode(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	// Empty or null documents decode to a nil map; Set needs a real one.
	if data == nil {
		data = make(map[string]interface{})
	}

	return data, nil
}

// overlayDefaults merges file data over the load-time defaults, file
// values winning on top-level keys.
func overlayDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}
	return merged
}

// firstOr returns the first optional fallback, or zero when none was
// given.
func firstOr[T any](fallback []T, zero T) T {
	if len(fallback) > 0 {
		return fallback[0]
	}
	return zero
}

// GetString reads the string value for key. An environment override wins
// over the file; the fallback applies when the key is absent.
func (c *Config) GetString(key string, fallback ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if raw, ok := c.envLookup(key); ok {
		return raw
	}

	switch v := c.valueAt(key).(type) {
	case nil:
		return firstOr(fallback, "")
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt reads an integer value for key. Environment overrides and
// string values are converted with strconv.Atoi; the fallback applies
// when the key is absent or not convertible.
func (c *Config) GetInt(key string, fallback ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if raw, ok := c.envLookup(key); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}

	switch v := c.valueAt(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return firstOr(fallback, 0)
}

// GetBool reads a boolean value for key, accepting strconv.ParseBool
// spellings from the environment and from string values.
func (c *Config) GetBool(key string, fallback ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if raw, ok := c.envLookup(key); ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}

	switch v := c.valueAt(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return firstOr(fallback, false)
}

// GetFloat reads a float64 value for key, converting integer and string
// values where possible.
func (c *Config) GetFloat(key string, fallback ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if raw, ok := c.envLookup(key); ok {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}

	switch v := c.valueAt(key).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}

	return firstOr(fallback, 0.0)
}

// GetStringSlice reads a list of strings for key. A scalar string value
// becomes a one-element slice. The environment is not consulted for
// list values.
func (c *Config) GetStringSlice(key string, fallback ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch v := c.valueAt(key).(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	case string:
		return []string{v}
	}

	return firstOr(fallback, nil)
}

// valueAt resolves a dot-separated key against the nested data maps.
func (c *Config) valueAt(key string) interface{} {
	path := strings.Split(key, ".")
	node := c.data

	for _, segment := range path[:len(path)-1] {
		next, ok := node[segment].(map[string]interface{})
		if !ok {
			return nil
		}
		node = next
	}

	return node[path[len(path)-1]]
}

// envLookup returns the environment override for key, if one is set.
func (c *Config) envLookup(key string) (string, bool) {
	value := os.Getenv(c.envKey(key))
	return value, value != ""
}

// envKey converts build.optimization into MLANG_BUILD_OPTIMIZATION.
func (c *Config) envKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return strings.ToUpper(c.envPrefix) + "_" + name
}

// Has reports whether key resolves to a value in the loaded data.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valueAt(key) != nil
}

// Set stores value under the dot-separated key, creating intermediate
// sections as needed. Changes live in memory only and are never written
// back to the file.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := strings.Split(key, ".")
	node := c.data

	for _, segment := range path[:len(path)-1] {
		next, ok := node[segment].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			node[segment] = next
		}
		node = next
	}

	node[path[len(path)-1]] = value
}

// GetAll returns a deep copy of the configuration data; mutating the
// copy does not affect the Config.
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneTree(c.data)
}

// cloneTree deep-copies nested configuration maps. Slices are copied one
// level deep, which covers what the decoders produce.
func cloneTree(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = cloneTree(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable summary of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Config{format: %s", c.format)
	if c.filePath != "" {
		fmt.Fprintf(&b, ", path: %s", c.filePath)
	}
	if c.envPrefix != "" {
		fmt.Fprintf(&b, ", envPrefix: %s", c.envPrefix)
	}
	fmt.Fprintf(&b, ", keys: %d}", len(c.data))
	return b.String()
}
