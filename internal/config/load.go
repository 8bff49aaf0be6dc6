package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// newViperInstance creates a new Viper instance with standard prpflow
// configuration: defaults, PRPFLOW_ environment prefix, and a key replacer
// so PRPFLOW_BACKEND_COMMAND maps to backend.command.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PRPFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are not fatal; defaults apply.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption returns the decoder options used when unmarshaling
// configuration. The string-to-slice hook lets allowed_tools be written as
// a comma-separated string in environment variables.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
}

// unmarshalAndValidate unmarshals viper config into a Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration for the given project root, layering the global
// config file under the project config file. The project root itself is an
// explicit input, never discovered here, so callers (and tests) control it.
func Load(logger zerolog.Logger, projectRoot string) (*Config, error) {
	v := newViperInstance()

	// Global config: ~/.prpflow/config.yaml (optional)
	if globalPath, err := globalConfigPath(); err == nil {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			if !isConfigNotFoundError(err) && !os.IsNotExist(err) {
				return nil, errors.Wrap(err, "failed to read global config")
			}
			logger.Debug().Str("path", globalPath).Msg("no global config file")
		} else {
			logger.Debug().Str("path", globalPath).Msg("loaded global config")
		}
	}

	// Project config: <root>/.prpflow.yaml (optional, overrides global)
	projectPath := filepath.Join(projectRoot, constants.ProjectConfigName)
	v.SetConfigFile(projectPath)
	if err := v.MergeInConfig(); err != nil {
		if !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read project config")
		}
		logger.Debug().Str("path", projectPath).Msg("no project config file")
	} else {
		logger.Debug().Str("path", projectPath).Msg("loaded project config")
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}
	cfg.Paths.ProjectRoot = projectRoot
	return cfg, nil
}

// globalConfigPath returns the path of the global config file.
// PRPFLOW_HOME overrides the default ~/.prpflow location.
func globalConfigPath() (string, error) {
	home, err := AppHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.GlobalConfigName), nil
}

// AppHome returns the prpflow home directory path. If the PRPFLOW_HOME
// environment variable is set, it is used as-is. Otherwise the default
// is ~/.prpflow.
func AppHome() (string, error) {
	if appHome := os.Getenv("PRPFLOW_HOME"); appHome != "" {
		return appHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}
