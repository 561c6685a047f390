package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"github.com/webrtc-build/deplink/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeySourceTree = "source_tree"
	KeySentinel   = "sentinel"
	KeyManifest   = "manifest"
)

// Defaults for the standard layout: Chromium checked out inside WebRTC's src.
const (
	DefaultSourceTree = "chromium/src"
	DefaultSentinel   = ".get-chromium-deps-ran"
)

// Keys lists every recognized setting key.
var Keys = []string{KeySourceTree, KeySentinel, KeyManifest}

// Settings is the resolved view of the configuration.
type Settings struct {
	SourceTree string // secondary tree, relative to the working directory
	Sentinel   string // marker file, relative to the working directory
	Manifest   string // link manifest path; empty selects the built-in one
}

// Dir returns the path to the config directory (~/.deplink/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.deplink/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeySourceTree, DefaultSourceTree)
	viper.SetDefault(KeySentinel, DefaultSentinel)
	viper.SetDefault(KeyManifest, "")

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings resolved from defaults, file, and environment.
// Load must have been called.
func Current() Settings {
	return Settings{
		SourceTree: viper.GetString(KeySourceTree),
		Sentinel:   viper.GetString(KeySentinel),
		Manifest:   viper.GetString(KeyManifest),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
