package main

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/xdg"
	"github.com/f5kit/ucsconv/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var configFile string
var configPaths = xdg.Paths{}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file to read at startup (default is $XDG_CONFIG_FILE/ucsconv.conf)")
}

const configFileName = "ucsconv.conf"

var cfg config.Config

// initConfig locates the configuration file.
func initConfig() {
	var err error
	if configFile == "" {
		configFile, err = configPaths.ConfigFile(configFileName)
		if err != nil {
			V("%v\n", err)
			return
		}
	}

	V("config file is %q\n", configFile)
}

// parseConfig loads the configuration file and applies its values to the
// bound flags.
func parseConfig(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		return nil
	}

	V("load config file %q\n", configFile)

	c, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("parse config file %v failed: %v", configFile, err)
	}

	cfg = c

	if cfg.OutputDir != "" {
		if f, ok := configBinds["output_dir"]; ok {
			f.Value.Set(cfg.OutputDir)
		}
	}

	if cfg.Indent != 0 {
		if f, ok := configBinds["indent"]; ok {
			f.Value.Set(strconv.Itoa(cfg.Indent))
		}
	}

	return nil
}

var configBinds map[string]*pflag.Flag

func bindConfigValue(name string, flag *pflag.Flag) {
	if configBinds == nil {
		configBinds = make(map[string]*pflag.Flag)
	}

	configBinds[name] = flag
}
