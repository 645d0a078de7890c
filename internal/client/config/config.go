package config

import "time"

// S3Config holds the object-storage settings used for profile images.
type S3Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// Config holds runtime settings for the Ecom CLI.
//
// Fields:
//   - IdentityEndpoint: base URL of the identity provider REST API.
//   - IdentityAPIKey: project API key appended to identity requests.
//   - RequestTimeout: per-request timeout for identity calls.
//   - LocalDBPath: path of the local SQLite database holding the session token.
//   - ProfilesDSN: Postgres DSN of the profile store; empty disables profiles.
//   - RedisAddr: address of the analytics Redis; empty falls back to log-only.
//   - S3: object-storage settings; empty bucket disables image upload.
type Config struct {
	IdentityEndpoint string
	IdentityAPIKey   string
	RequestTimeout   time.Duration
	LocalDBPath      string
	ProfilesDSN      string
	RedisAddr        string
	S3               S3Config
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.IdentityEndpoint = "https://identitytoolkit.googleapis.com"
	c.IdentityAPIKey = ""
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "ecom.db"
	c.ProfilesDSN = ""
	c.RedisAddr = ""
	c.S3 = S3Config{Region: "us-east-1"}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
