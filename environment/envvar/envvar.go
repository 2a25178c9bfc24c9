// Package envvar provides typed lookups of environment variables, each returning whether a valid value was found.
package envvar

import (
	"os"
	"strconv"
	"time"
)

// GetString returns the value of the given variable; unset and empty variables are reported as not found.
func GetString(varName string) (string, bool) {
	return lookup(varName, func(val string) (string, error) { return val, nil })
}

// GetInt returns the value of the given variable parsed as a base 10 int.
func GetInt(varName string) (int, bool) {
	return lookup(varName, strconv.Atoi)
}

// GetUint64 returns the value of the given variable parsed as a base 10 uint64.
func GetUint64(varName string) (uint64, bool) {
	return lookup(varName, func(val string) (uint64, error) { return strconv.ParseUint(val, 10, 64) })
}

// GetBool returns the value of the given variable parsed using 'strconv.ParseBool'.
func GetBool(varName string) (bool, bool) {
	return lookup(varName, strconv.ParseBool)
}

// GetDuration returns the value of the given variable parsed using 'time.ParseDuration' e.g. "30s".
func GetDuration(varName string) (time.Duration, bool) {
	return lookup(varName, time.ParseDuration)
}

// lookup reads and parses the given variable, the zero value and false are returned if it's unset, empty or invalid.
func lookup[T any](varName string, parse func(string) (T, error)) (T, bool) {
	var zero T

	val, ok := os.LookupEnv(varName)
	if !ok || val == "" {
		return zero, false
	}

	parsed, err := parse(val)
	if err != nil {
		return zero, false
	}

	return parsed, true
}
