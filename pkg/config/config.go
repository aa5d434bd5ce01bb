// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds optional defaults read from a config file. Values explicitly
// set on the command line always win over it. Environment variables are not
// consulted.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	return &Config{v: viper.New()}
}

// Load reads [path]; the format is taken from the file extension
// (json, yaml, toml...). An empty path leaves the config empty.
func (c *Config) Load(log *zap.Logger, path string) error {
	if path == "" {
		return nil
	}
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed reading config file %s: %w", path, err)
	}
	log.Info("Using config file", zap.String("config-file", path))
	return nil
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) GetConfigBoolValue(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetConfigIntValue(key string) int {
	return c.v.GetInt(key)
}
