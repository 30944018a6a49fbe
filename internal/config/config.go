// Package config loads the flatbind-gen configuration file.
package config

import (
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config of flatbind-gen.
type Config struct {
	// Layouts are layout files processed when none is given on the command line.
	Layouts   []string     `mapstructure:"layouts"`
	Generator GeneratorCfg `mapstructure:"generator"`
	Logger    LoggerCfg    `mapstructure:"logger"`
}

// GeneratorCfg controls the generated files.
type GeneratorCfg struct {
	PackageName string `mapstructure:"package_name" valid:"required"`
	// PackagePath is the import path of the generated package, if it is known.
	PackagePath string `mapstructure:"package_path"`
	OutputDir   string `mapstructure:"output_dir" valid:"required"`
	Comments    bool   `mapstructure:"comments"`
	// Dir is the directory entity packages are resolved from.
	Dir string `mapstructure:"dir"`
}

// LoggerCfg of the logrus logger.
type LoggerCfg struct {
	Caller        bool   `mapstructure:"caller"`
	Level         string `mapstructure:"level" valid:"in(panic|fatal|error|warn|warning|info|debug|trace)"`
	HumanReadable bool   `mapstructure:"human_readable"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.package_name", "bindings")
	v.SetDefault("generator.output_dir", "./generated")
	v.SetDefault("generator.comments", true)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.human_readable", true)
}

// LoadConfig reads the YAML file at path. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode into config struct")
	}

	return &cfg, nil
}

// Validate config data.
func (c Config) Validate() error {
	_, err := govalidator.ValidateStruct(c)
	return err
}
