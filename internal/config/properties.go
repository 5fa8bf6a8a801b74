package config

import (
	"os"
	"strings"
	"unicode"
)

// Properties is a read-only key/value store queried by exact key, like the
// process-wide system properties that deployment tooling sets at startup.
type Properties interface {
	// Lookup returns the value for key and whether it is set. A key set to
	// the empty string is still set.
	Lookup(key string) (string, bool)
}

// MapProperties is a fixed in-memory property set
type MapProperties map[string]string

// Lookup implements Properties
func (m MapProperties) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvProperties reads properties from the process environment.
//
// The exact key is tried first. If it is not set, the key is converted to
// environment variable form (upper case, every run of non-alphanumeric
// characters collapsed to a single underscore, leading and trailing
// underscores dropped) and prefixed with Prefix:
//
//	archaius.deployment.environment -> ARCHAIUS_DEPLOYMENT_ENVIRONMENT
//	@appId                          -> APPID
type EnvProperties struct {
	Prefix string
}

// Lookup implements Properties
func (e EnvProperties) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	name := EnvVarName(key)
	if name == "" {
		return "", false
	}
	return os.LookupEnv(e.Prefix + name)
}

// EnvVarName converts a dotted property key to its environment variable form
func EnvVarName(key string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// chain consults each source in order
type chain []Properties

// Chain returns Properties that consult sources in order and return the
// first value found. Nil sources are skipped.
func Chain(sources ...Properties) Properties {
	c := make(chain, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

// Lookup implements Properties
func (c chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
