package config

import (
	"os"
)

// Port returns the HTTP listen port, defaulting to 8080.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// PexelsAPIKey returns the photo provider credential. May be empty; image
// searches then degrade to empty result sets.
func PexelsAPIKey() string {
	return os.Getenv("PEXELS_API_KEY")
}
