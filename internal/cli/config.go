package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/lcrownover/cli-playground/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ANIMALS"

	cfgKeyRoot     = "root"
	cfgKeyLogLevel = "log_level"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// directory or file is not an error; defaults apply. log_level may also be
// set through ANIMALS_LOG_LEVEL.
func loadConfig(fsys afero.Fs, configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyLogLevel); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
