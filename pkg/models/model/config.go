package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Config is an on/off switch read from a flag or config file.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,
	"yes":  On,

	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
}

func NewConfig(s string) (Config, error) {
	if c, ok := configName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return Off, errors.Errorf("unknown switch value %q", s)
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
