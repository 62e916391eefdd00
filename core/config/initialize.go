package config

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir. An existing
// configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, ConfigurationName)
	fd, err := fsys.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%s: %w", path, fs.ErrExist)
		}
		return nil, err
	}
	defer fd.Close()

	logger.Printf("Writing default configuration to %s\n", path)
	if _, err := fd.Write(defaultConfigData); err != nil {
		return nil, err
	}

	return Default(), nil
}
