package vos

import (
	"sort"
	"strings"
)

// VEnv is the environment a process was started with.
type VEnv interface {
	// LookupEnv gets the value of key and whether it was set.
	LookupEnv(key string) (string, bool)

	// Getenv gets the value of key, empty if unset.
	Getenv(key string) string

	// Environ lists the environment as sorted "key=value" pairs.
	Environ() []string
}

// MapEnv is a fixed environment. Processes can't change their environment
// so no locking is needed.
type MapEnv map[string]string

var _ VEnv = MapEnv(nil)

// NewMapEnvFromEnvList parses "key=value" pairs. A pair without "=" is set
// to the empty string and later pairs win.
func NewMapEnvFromEnvList(environ []string) MapEnv {
	env := make(MapEnv, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		env[key] = value
	}
	return env
}

func (m MapEnv) LookupEnv(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

func (m MapEnv) Getenv(key string) string {
	return m[key]
}

func (m MapEnv) Environ() []string {
	out := make([]string, 0, len(m))
	for key, value := range m {
		out = append(out, key+"="+value)
	}
	sort.Strings(out)
	return out
}
