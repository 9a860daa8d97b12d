package model

import "strings"

// Config is an ON/OFF switch as written in yaml files and on the command line.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON":   On,
	"1":    On,
	"TRUE": On,

	"OFF":   Off,
	"0":     Off,
	"FALSE": Off,
}

// NewConfig reads s in any case; anything unrecognised is Off.
func NewConfig(s string) Config {
	return configName[strings.ToUpper(strings.TrimSpace(s))]
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
