// Package config exposes the process environment as a plain map with
// typed accessors. godotenv in main loads .env before New is called, so
// file-based and real environment configuration look the same here.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the current environment. Keys read through GetString
// and GetInt: PORT, DB_PATH, SEED_USER_NAME, SEED_USER_EMAIL,
// ACCEPTED_ORIGINS, and the server timeout settings.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
