/*
File   : golox/cliconfig/cliconfig.go
Package: cliconfig

Package cliconfig holds the handful of REPL presentation settings
go-mix bakes in as package-level vars in main/main.go (BANNER, VERSION,
AUTHOR, LICENCE, PROMPT, LINE) and instead loads them from an optional
YAML file via gopkg.in/yaml.v3, so the same binary can be reskinned
without a recompile. Defaults match go-mix's values in spirit (a
banner, a version string, a prompt) so a user who never creates a
config file still gets a reasonable REPL experience.
*/
package cliconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds REPL presentation and behavior settings.
type Config struct {
	Banner      string `yaml:"banner"`
	Version     string `yaml:"version"`
	Prompt      string `yaml:"prompt"`
	Line        string `yaml:"line"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

// Default returns golox's built-in REPL presentation, used when no
// config file is present or one fails to load.
func Default() Config {
	return Config{
		Banner:      "golox - a tree-walking interpreter",
		Version:     "v1.0.0",
		Prompt:      "golox> ",
		Line:        "----------------------------------------------------------------",
		HistoryFile: ".golox_history",
		Color:       true,
	}
}

// Load reads a YAML config file at path, overlaying it onto Default().
// A missing file is not an error: Load silently returns the defaults,
// since the config file is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
