// Package agmarknet provides a client for the data.gov.in daily mandi price
// resource (AGMARKNET).
package agmarknet

import (
	"os"
	"time"
)

// Config holds configuration for the data.gov.in API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the resource (e.g., "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads AGMARKNET configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:  os.Getenv("DATA_GOV_API_KEY"),
		BaseURL: os.Getenv("DATA_GOV_BASE_URL"),
		Timeout: 15 * time.Second,
	}
}
