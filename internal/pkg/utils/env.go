package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns defaultValue when key is unset or fails to parse.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := parse(raw)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) {
		return raw, nil
	})
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvStringSlice splits a comma separated value, trimming blanks and
// dropping empty entries. An empty result falls back to defaultValue.
func GetEnvStringSlice(key string, defaultValue []string) []string {
	values := lookupEnv(key, []string(nil), func(raw string) ([]string, error) {
		var parts []string
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				parts = append(parts, part)
			}
		}
		return parts, nil
	})
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
