package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mmisoft/ecom/internal/flagx"
	"github.com/mmisoft/ecom/internal/timex"
)

// JsonS3Config mirrors S3Config for JSON unmarshalling.
type JsonS3Config struct {
	AccessKey    string `json:"access_key"`
	SecretKey    string `json:"secret_key"`
	Bucket       string `json:"bucket"`
	Region       string `json:"region"`
	BaseEndpoint string `json:"base_endpoint"`
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the request timeout either
// as a string like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	IdentityEndpoint string         `json:"identity_endpoint"`
	IdentityAPIKey   string         `json:"identity_api_key"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	LocalDBPath      string         `json:"local_db_path"`
	ProfilesDSN      string         `json:"profiles_dsn"`
	RedisAddr        string         `json:"redis_addr"`
	S3               JsonS3Config   `json:"s3"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.IdentityEndpoint = jc.IdentityEndpoint
	cfg.IdentityAPIKey = jc.IdentityAPIKey
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.LocalDBPath = jc.LocalDBPath
	cfg.ProfilesDSN = jc.ProfilesDSN
	cfg.RedisAddr = jc.RedisAddr
	cfg.S3 = S3Config{
		AccessKey:    jc.S3.AccessKey,
		SecretKey:    jc.S3.SecretKey,
		Bucket:       jc.S3.Bucket,
		Region:       jc.S3.Region,
		BaseEndpoint: jc.S3.BaseEndpoint,
	}
}
