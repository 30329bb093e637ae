package main

import (
	"os"

	"blackjack-server/internal/config"

	"gopkg.in/yaml.v2"
)

// prints the effective configuration, with defaults and environment
// overrides applied, as YAML
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.Instance()); err != nil {
		panic(err)
	}
}
