package main

import (
	"strconv"
	"strings"

	"mnemonic.dev/bip39"
)

// config holds the defaults taken from the environment. Flags override
// them.
type config struct {
	// Lang is the default mnemonic language.
	Lang     bip39.Language
	LogLevel string
	LogJSON  bool
}

const (
	envLang     = "BIP39_LANG"
	envLogLevel = "BIP39_LOG_LEVEL"
	envLogJSON  = "BIP39_LOG_JSON"
)

// loadConfig reads the environment through getenv. Malformed values
// fall back to the defaults.
func loadConfig(getenv func(string) string) config {
	c := config{
		Lang:     bip39.English,
		LogLevel: "warn",
	}
	if v := getenv(envLang); v != "" {
		if l, err := bip39.ParseLanguage(v); err == nil {
			c.Lang = l
		}
	}
	if v := strings.TrimSpace(getenv(envLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v, err := strconv.ParseBool(getenv(envLogJSON)); err == nil {
		c.LogJSON = v
	}
	return c
}
