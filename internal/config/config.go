// Package config loads service configuration from environment variables.
// Each service has its own configuration struct; both are explicit objects
// handed to the composition root, never read from globals at request time.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// UserConfig is the full configuration of the user service.
type UserConfig struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs and verifies every access token. Both services'
	// trust chain hangs off this value; there is no default on purpose.
	JWTSecret       string `env:"JWT_SECRET_KEY"`
	JWTAlgorithm    string `env:"JWT_ALGORITHM, default=HS256"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`

	// PostServiceURL is the base URL the user service calls to aggregate
	// a user's posts into the detail view.
	PostServiceURL       string `env:"POST_SERVICE_URL, default=http://localhost:8001"`
	ClientTimeoutSeconds int    `env:"CLIENT_TIMEOUT_SECONDS, default=3"`

	// AuditWorkers sizes the background pool that persists auth events.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
}

// PostConfig is the full configuration of the post service.
type PostConfig struct {
	Port     string `env:"PORT,      default=8001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// UserServiceURL is the base URL of the user service; every protected
	// request redeems its bearer token there.
	UserServiceURL         string `env:"USER_SERVICE_URL, default=http://localhost:8000"`
	ValidateTimeoutSeconds int    `env:"VALIDATE_TIMEOUT_SECONDS, default=3"`

	// TokenCacheTTLSeconds bounds how long a validated token is served
	// from Redis without re-validation. Zero disables caching.
	TokenCacheTTLSeconds int `env:"TOKEN_CACHE_TTL_SECONDS, default=30"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bloghub"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LoadUser reads the user service configuration from environment variables.
func LoadUser() *UserConfig {
	var cfg UserConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadPost reads the post service configuration from environment variables.
func LoadPost() *PostConfig {
	var cfg PostConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
