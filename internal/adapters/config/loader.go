// Package config loads the optional xcbatch.yaml run configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/xcbatch/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration at path and layers it over domain.DefaultConfig.
// An empty path means domain.ConfigFileName. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return resolve(file, filepath.Dir(path))
}

func decode(data []byte) (*Configfile, error) {
	var file Configfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}
	return &file, nil
}

// resolve layers file over the defaults. Relative paths in file are taken from baseDir.
func resolve(file *Configfile, baseDir string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Mode != "" {
		mode, err := domain.ParseBuildMode(file.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if file.LogDir != "" {
		cfg.LogDir = file.LogDir
	}
	if file.Tool != "" {
		cfg.Toolchain.BuildTool = file.Tool
	}
	if file.SuccessMarker != "" {
		cfg.Toolchain.SuccessMarker = file.SuccessMarker
	}
	if len(file.Formatter) > 0 {
		cfg.Toolchain.Formatter = file.Formatter
	}

	env, err := loadEnvironment(file, baseDir)
	if err != nil {
		return nil, err
	}
	if len(env) > 0 {
		cfg.Toolchain.Environment = env
	}

	return cfg, nil
}

// loadEnvironment reads the optional dotenv file and lays the inline environment over it.
func loadEnvironment(file *Configfile, baseDir string) (map[string]string, error) {
	env := make(map[string]string)

	if file.EnvFile != "" {
		path := file.EnvFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		fromFile, err := godotenv.Read(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "envFile", path)
		}
		maps.Copy(env, fromFile)
	}

	maps.Copy(env, file.Environment)
	return env, nil
}
