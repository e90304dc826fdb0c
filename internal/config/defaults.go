package config

const (
	defaultLanguage       = "en"
	defaultTimeoutSeconds = 30
	defaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	defaultBaseURL        = "https://www.youtube.com"
	defaultAcceptLanguage = "en-US,en;q=0.9"
	defaultCachePath      = "~/.cache/ytfetch/transcripts.db"
	defaultLogFormat      = "text"
	defaultLogLevel       = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Fetch: Fetch{
			DefaultLanguage: defaultLanguage,
			TimeoutSeconds:  defaultTimeoutSeconds,
			UserAgent:       defaultUserAgent,
			BaseURL:         defaultBaseURL,
			AcceptLanguage:  defaultAcceptLanguage,
		},
		Cache: Cache{
			Enabled: false,
			Path:    defaultCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
