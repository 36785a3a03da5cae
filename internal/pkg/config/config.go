package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StoreDriver selects the snapshot backend: memory, redis or mongo.
	StoreDriver string `env:"STORE_DRIVER, default=memory"`

	// DemoSeed populates empty collections with demo accounts and fixtures
	// at startup.
	DemoSeed bool `env:"DEMO_SEED, default=true"`

	// AutoReply enables simulated lawyer replies to client messages.
	AutoReply      bool          `env:"AUTO_REPLY,       default=true"`
	AutoReplyDelay time.Duration `env:"AUTO_REPLY_DELAY, default=2s"`

	Mongo MongoConfig
	Redis RedisConfig
	Docs  DocsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=legalconnect"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DocsConfig configures the S3-compatible bucket that stores document bytes.
// An empty bucket name keeps documents in process memory.
type DocsConfig struct {
	Bucket    string `env:"DOCS_BUCKET"`
	Region    string `env:"DOCS_REGION,   default=us-east-1"`
	Endpoint  string `env:"DOCS_ENDPOINT"`
	AccessKey string `env:"DOCS_ACCESS_KEY"`
	SecretKey string `env:"DOCS_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
