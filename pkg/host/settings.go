package host

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"foldermd/pkg/combine"

	"gopkg.in/yaml.v3"
)

// SettingsNamespace prefixes every key this tool reads from the host settings.
const SettingsNamespace = "copyFolderAsMarkdown"

// Environment variables that override the settings file. List values are separated
// by the OS path list separator, since globs may contain commas.
const (
	EnvIncludes      = "FOLDERMD_INCLUDES"
	EnvExcludes      = "FOLDERMD_EXCLUDES"
	EnvMaxFileSizeKB = "FOLDERMD_MAX_FILE_SIZE_KB"
)

// Settings holds the values read from the host settings store.
type Settings struct {
	Includes      []string
	Excludes      []string
	MaxFileSizeKB int
}

// settingsSection mirrors the namespaced keys. Pointers tell absent keys from empty ones.
type settingsSection struct {
	Includes      *[]string `yaml:"includes"`
	Excludes      *[]string `yaml:"excludes"`
	MaxFileSizeKB *int      `yaml:"maxFileSizeKB"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Includes:      []string{combine.DefaultIncludeGlob},
		Excludes:      []string{},
		MaxFileSizeKB: combine.DefaultMaxFileSizeKB,
	}
}

// DefaultSettingsPath returns the settings document location under the user config dir.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "foldermd", "settings.yaml"), nil
}

// LoadSettings reads the settings document at path.
// If the file doesn't exist, returns default settings without error.
// If the file exists but is malformed, returns an ErrConfiguration error.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("%w: failed to read settings file: %w", combine.ErrConfiguration, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes a settings document. Keys may be written either dotted
// ("copyFolderAsMarkdown.includes") or nested under the namespace; dotted keys win.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Settings{}, fmt.Errorf("%w: failed to parse settings: %w", combine.ErrConfiguration, err)
	}

	if node, ok := doc[SettingsNamespace]; ok {
		var nested settingsSection
		if err := node.Decode(&nested); err != nil {
			return Settings{}, fmt.Errorf("%w: invalid %s section: %w", combine.ErrConfiguration, SettingsNamespace, err)
		}
		s.apply(nested)
	}

	var dotted settingsSection
	for key, node := range doc {
		name, ok := strings.CutPrefix(key, SettingsNamespace+".")
		if !ok {
			continue
		}
		var err error
		switch name {
		case "includes":
			err = node.Decode(&dotted.Includes)
		case "excludes":
			err = node.Decode(&dotted.Excludes)
		case "maxFileSizeKB":
			err = node.Decode(&dotted.MaxFileSizeKB)
		}
		if err != nil {
			return Settings{}, fmt.Errorf("%w: invalid setting %s: %w", combine.ErrConfiguration, key, err)
		}
	}
	s.apply(dotted)
	return s, nil
}

func (s *Settings) apply(sec settingsSection) {
	if sec.Includes != nil {
		s.Includes = *sec.Includes
	}
	if sec.Excludes != nil {
		s.Excludes = *sec.Excludes
	}
	if sec.MaxFileSizeKB != nil {
		s.MaxFileSizeKB = *sec.MaxFileSizeKB
	}
}

// WithEnv returns a copy of s with values from the environment applied on top.
func (s Settings) WithEnv(lookup func(string) (string, bool)) (Settings, error) {
	if v, ok := lookup(EnvIncludes); ok && strings.TrimSpace(v) != "" {
		s.Includes = splitPatterns(v)
	}
	if v, ok := lookup(EnvExcludes); ok && strings.TrimSpace(v) != "" {
		s.Excludes = splitPatterns(v)
	}
	if v, ok := lookup(EnvMaxFileSizeKB); ok && strings.TrimSpace(v) != "" {
		kb, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %w", combine.ErrConfiguration, EnvMaxFileSizeKB, err)
		}
		s.MaxFileSizeKB = kb
	}
	return s, nil
}

func splitPatterns(v string) []string {
	var patterns []string
	for _, p := range filepath.SplitList(v) {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// SelectionConfig converts the settings into the combine package's configuration.
func (s Settings) SelectionConfig() combine.SelectionConfig {
	return combine.SelectionConfig{
		IncludeGlobs:     append([]string(nil), s.Includes...),
		ExcludeGlobs:     append([]string{}, s.Excludes...),
		MaxFileSizeBytes: combine.KBToBytes(s.MaxFileSizeKB),
	}
}
