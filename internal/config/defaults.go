package config

// DefaultAPIBaseURL is the production account service.
const DefaultAPIBaseURL = "https://api.jobflow.app"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
		},
	}
}
