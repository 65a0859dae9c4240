package cmd

import (
	"os"
	"strconv"
	"strings"
)

// envPrefix namespaces every environment variable read by flag defaults.
const envPrefix = "EXPECTGEN_"

func lookupEnv(name string) (string, bool) {
	val, ok := os.LookupEnv(envPrefix + name)
	val = strings.TrimSpace(val)
	return val, ok && val != ""
}

func getEnvString(name, fallback string) string {
	if val, ok := lookupEnv(name); ok {
		return val
	}
	return fallback
}

// getEnvBool accepts strconv.ParseBool forms plus "yes" and "no".
func getEnvBool(name string, fallback bool) bool {
	val, ok := lookupEnv(name)
	if !ok {
		return fallback
	}
	switch strings.ToLower(val) {
	case "yes":
		return true
	case "no":
		return false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(name string, fallback int) int {
	val, ok := lookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
