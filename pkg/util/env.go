package util

import (
	"net/url"
	"os"
	"strings"
)

// GetEnv returns the value of the environment variable named by key or
// def when unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DatabaseFromURI extracts the database name from a MongoDB connection
// string, or def when the URI carries none.
func DatabaseFromURI(uri, def string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return def
	}
	if db := strings.TrimPrefix(u.Path, "/"); db != "" {
		return db
	}
	return def
}
