package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from path, which may be a file or a directory
// holding ConfigurationName. Fields missing from the file keep their
// default values.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	if isDir, err := afero.IsDir(fs, path); err == nil && isDir {
		path = filepath.Join(path, ConfigurationName)
	}

	configContents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Find loads the configuration named by flagPath, falling back to the path
// in the EnvConfig environment variable and then the built-in defaults. It
// returns where the configuration came from, empty for the defaults.
func Find(fs afero.Fs, flagPath string, getenv func(string) string) (*Configuration, string, error) {
	path := flagPath
	if path == "" && getenv != nil {
		path = getenv(EnvConfig)
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(fs, path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
