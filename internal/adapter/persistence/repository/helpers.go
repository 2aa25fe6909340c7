package repository

import "os"

// getenvDefault resolves table names: every repository in this package takes
// its table from an *_TABLE env var and falls back to the shop's defaults.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
