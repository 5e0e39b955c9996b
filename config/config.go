package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/natelwhite/coursemap/internal/conf"
	"github.com/natelwhite/coursemap/logger"
)

// Parameters - Advising tool configuration, decoded from a toml file
type Parameters struct {
	// InputPath is the course file the tool validates and loads
	InputPath string `toml:"input-path"`

	// TableSize overrides the bucket count, 0 (zero) sizes the table from the validated row count
	TableSize int `toml:"table-size"`

	// Log is the logging configuration
	Log logger.LogConfig `toml:"log"`
}

// SetDefaultValues - Fills in defaults for everything left unset
func (P *Parameters) SetDefaultValues() {
	if P.InputPath == "" {
		P.InputPath = conf.DefaultInputPath
	}
	if P.Log.Level == "" {
		P.Log.Level = "info"
	}
	if P.Log.Format == "" {
		P.Log.Format = "console"
	}
}

// Load - Decodes parameters from a toml file and applies defaults. An empty configFile skips
// decoding and returns pure defaults.
//   - configFile is the path to a toml configuration file, or empty
func Load(configFile string) (params *Parameters, err error) {
	params = &Parameters{}
	if configFile != "" {
		if _, err = toml.DecodeFile(configFile, params); err != nil {
			params = nil
			err = fmt.Errorf("error while decoding configuration file %s: %s", configFile, err)
			return
		}
	}
	params.SetDefaultValues()

	return
}
