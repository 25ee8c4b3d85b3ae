// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/accessdash/internal/rbac"
)

// ErrUnknownKey is returned by Get for keys that do not name a setting.
var ErrUnknownKey = errors.New("unknown config key")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete accessdash configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	UI   UIConfig   `toml:"ui" json:"ui"`
	Log  LogConfig  `toml:"log" json:"log"`
	Seed SeedConfig `toml:"seed" json:"seed"`
}

// UIConfig contains dashboard presentation settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light". "auto" asks the terminal.
	Theme string `toml:"theme" json:"theme"`
	// Compact drops the blank lines between table rows and sections.
	Compact bool `toml:"compact" json:"compact"`
	// ShowHelp shows the key help footer.
	ShowHelp bool `toml:"show_help" json:"show_help"`
	// StartTab is "users" or "roles".
	StartTab string `toml:"start_tab" json:"start_tab"`
}

// LogConfig controls the TUI log file.
type LogConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path is the log file (empty = ~/.accessdash/accessdash.log)
	Path string `toml:"path" json:"path"`
}

// SeedConfig lists the records the dashboard starts with.
type SeedConfig struct {
	Users []UserSeed `toml:"users" json:"users"`
	Roles []RoleSeed `toml:"roles" json:"roles"`
}

// UserSeed is a user as written in the config file. ID 0 means "assign one".
type UserSeed struct {
	ID     int    `toml:"id" json:"id"`
	Name   string `toml:"name" json:"name"`
	Email  string `toml:"email" json:"email"`
	Role   string `toml:"role" json:"role"`
	Status string `toml:"status" json:"status"`
}

// RoleSeed is a role as written in the config file. ID 0 means "assign one".
type RoleSeed struct {
	ID          int      `toml:"id" json:"id"`
	Name        string   `toml:"name" json:"name"`
	Permissions []string `toml:"permissions" json:"permissions"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		UI: UIConfig{
			Theme:    "auto",
			Compact:  false,
			ShowHelp: true,
			StartTab: "users",
		},
		Log: LogConfig{
			Enabled: true,
			Path:    "", // resolved by LogPath
		},
		Seed: DefaultSeed(),
	}
}

// DefaultSeed returns the built-in users and roles.
func DefaultSeed() SeedConfig {
	return SeedConfig{
		Users: []UserSeed{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "admin", Status: "active"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "editor", Status: "active"},
		},
		Roles: []RoleSeed{
			{ID: 1, Name: "admin", Permissions: []string{"users.view", "users.create", "users.edit", "users.delete", "roles.manage"}},
			{ID: 2, Name: "editor", Permissions: []string{"users.view", "users.edit"}},
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the accessdash configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".accessdash"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Resolve returns the config file that Load would read, or "" when none
// exists and defaults apply.
func Resolve() string {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LogPath returns the configured log file or the default location.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "accessdash.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file, trying TOML first
// and then JSON. Without either file the defaults are used.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path := Resolve(); path != "" {
		return LoadFromPath(path)
	}
	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file with full validation.
// Files ending in .json are read as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := baseForDecode()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg and fills missing values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON decodes a JSON file into cfg and fills missing values.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// baseForDecode is the struct a file is decoded over: defaults for scalar
// settings so absent booleans keep their default, but no seeds, so a file
// that lists only users does not inherit the built-in ones.
func baseForDecode() *Config {
	cfg := Default()
	cfg.Seed = SeedConfig{}
	return cfg
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.StartTab == "" {
		cfg.UI.StartTab = defaults.UI.StartTab
	}
	// A file without a [seed] section starts from the built-in records.
	if cfg.Seed.Users == nil && cfg.Seed.Roles == nil {
		cfg.Seed = defaults.Seed
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes cfg to path. The file is readable by the owner only.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# accessdash configuration file\n")
	buf.WriteString("# Seeds are read at start-up only; edits made in the dashboard are not saved.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := writeConfigFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch strings.ToLower(c.UI.Theme) {
	case "auto", "dark", "light":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	switch strings.ToLower(c.UI.StartTab) {
	case "users", "roles":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.start_tab",
			Message: fmt.Sprintf("invalid tab '%s', must be one of: users, roles", c.UI.StartTab),
		})
	}

	errs = append(errs, c.Seed.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s SeedConfig) validate() ValidateErrors {
	var errs ValidateErrors

	userIDs := map[int]bool{}
	for i, u := range s.Users {
		field := fmt.Sprintf("seed.users[%d]", i)
		if u.ID < 0 {
			errs = append(errs, ValidationError{Field: field + ".id", Message: "must not be negative"})
		} else if u.ID > 0 && userIDs[u.ID] {
			errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate id %d", u.ID)})
		}
		userIDs[u.ID] = true
		if _, err := rbac.ParseStatus(u.Status); err != nil {
			errs = append(errs, ValidationError{Field: field + ".status", Message: err.Error()})
		}
	}

	roleIDs := map[int]bool{}
	for i, r := range s.Roles {
		field := fmt.Sprintf("seed.roles[%d]", i)
		if r.ID < 0 {
			errs = append(errs, ValidationError{Field: field + ".id", Message: "must not be negative"})
		} else if r.ID > 0 && roleIDs[r.ID] {
			errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate id %d", r.ID)})
		}
		roleIDs[r.ID] = true
		if _, err := rbac.ParsePermissionSet(r.Permissions); err != nil {
			errs = append(errs, ValidationError{Field: field + ".permissions", Message: err.Error()})
		}
	}

	return errs
}

// Build converts the seeds to domain records. Records with id 0 get ids
// after the largest explicit one, in file order.
func (s SeedConfig) Build() ([]rbac.User, []rbac.Role, error) {
	if errs := s.validate(); len(errs) > 0 {
		return nil, nil, errs
	}

	userIDs := make([]rbac.ID, 0, len(s.Users))
	for _, u := range s.Users {
		userIDs = append(userIDs, rbac.ID(u.ID))
	}
	nextUser := rbac.NewIDAllocator(userIDs...)

	users := make([]rbac.User, 0, len(s.Users))
	for _, u := range s.Users {
		status, _ := rbac.ParseStatus(u.Status)
		id := rbac.ID(u.ID)
		if id == 0 {
			id, nextUser = nextUser.Next()
		}
		users = append(users, rbac.User{ID: id, Name: u.Name, Email: u.Email, Role: u.Role, Status: status})
	}

	roleIDs := make([]rbac.ID, 0, len(s.Roles))
	for _, r := range s.Roles {
		roleIDs = append(roleIDs, rbac.ID(r.ID))
	}
	nextRole := rbac.NewIDAllocator(roleIDs...)

	roles := make([]rbac.Role, 0, len(s.Roles))
	for _, r := range s.Roles {
		perms, _ := rbac.ParsePermissionSet(r.Permissions)
		id := rbac.ID(r.ID)
		if id == 0 {
			id, nextRole = nextRole.Next()
		}
		roles = append(roles, rbac.Role{ID: id, Name: r.Name, Permissions: perms})
	}

	return users, roles, nil
}

// =============================================================================
// ENVIRONMENT VARIABLE OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - ACCESSDASH_THEME: overrides ui.theme
//   - ACCESSDASH_START_TAB: overrides ui.start_tab
//   - ACCESSDASH_COMPACT: "1" or "true" enables ui.compact
//   - ACCESSDASH_LOG_PATH: overrides log.path
//   - ACCESSDASH_NO_LOG: "1" or "true" disables the log file
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("ACCESSDASH_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if tab := os.Getenv("ACCESSDASH_START_TAB"); tab != "" {
		c.UI.StartTab = tab
	}
	if compact := os.Getenv("ACCESSDASH_COMPACT"); compact != "" {
		c.UI.Compact = isTruthy(compact)
	}
	if path := os.Getenv("ACCESSDASH_LOG_PATH"); path != "" {
		c.Log.Path = path
	}
	if noLog := os.Getenv("ACCESSDASH_NO_LOG"); noLog != "" && isTruthy(noLog) {
		c.Log.Enabled = false
	}
}

func isTruthy(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes"
}

// =============================================================================
// GET HELPER (DOT NOTATION)
// =============================================================================

// Get retrieves a scalar setting using its file key in dot notation
// (e.g., "ui.start_tab").
func (c *Config) Get(key string) (interface{}, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrUnknownKey)
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		field, ok := fieldByTag(v, part)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct || field.Kind() == reflect.Slice {
				return nil, fmt.Errorf("%w: %s is a section", ErrUnknownKey, key)
			}
			return field.Interface(), nil
		}
		if field.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %s is not a section", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// fieldByTag finds the struct field whose toml tag is name.
func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.EqualFold(tomlName(t.Field(i)), name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// ChangedKeys lists the dot-notation keys whose values differ between prev
// and next, in file order. Seed lists are reported as "seed.users" and
// "seed.roles".
func ChangedKeys(prev, next *Config) []string {
	var keys []string
	pv, nv := reflect.ValueOf(prev).Elem(), reflect.ValueOf(next).Elem()
	t := pv.Type()
	for i := 0; i < t.NumField(); i++ {
		section := tomlName(t.Field(i))
		ps, ns := pv.Field(i), nv.Field(i)
		if ps.Kind() != reflect.Struct {
			if !reflect.DeepEqual(ps.Interface(), ns.Interface()) {
				keys = append(keys, section)
			}
			continue
		}
		st := ps.Type()
		for j := 0; j < st.NumField(); j++ {
			if !reflect.DeepEqual(ps.Field(j).Interface(), ns.Field(j).Interface()) {
				keys = append(keys, section+"."+tomlName(st.Field(j)))
			}
		}
	}
	return keys
}

func tomlName(f reflect.StructField) string {
	return strings.Split(f.Tag.Get("toml"), ",")[0]
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
