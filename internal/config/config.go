// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Cache   CacheConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type CacheConfig struct {
	Enabled           bool
	RedisURL          string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	MetricsTTLSeconds int
}

// StorageConfig points at the S3-compatible bucket report archives go to.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	Prefix    string
}

type LogConfig struct {
	Level string
}

var (
	once     sync.Once
	instance *Config
)

// Load reads .env and the environment once and returns the shared config.
func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		v := viper.GetViper()
		SetDefaults(v)
		v.AutomaticEnv()

		instance = Read(v)
	})

	return instance
}

// SetDefaults registers the default value of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_METRICS_TTL_SECONDS", 300)
	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_ACCESS_KEY", "")
	v.SetDefault("STORAGE_SECRET_KEY", "")
	v.SetDefault("STORAGE_BUCKET", "dss-reports")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_USE_SSL", true)
	v.SetDefault("STORAGE_PREFIX", "reports")
	v.SetDefault("LOG_LEVEL", "info")
}

// Read builds a Config from the values currently held by v.
func Read(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Mode:           v.GetString("SERVER_MODE"),
			ReadTimeout:    v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetInt("SERVER_WRITE_TIMEOUT"),
			AllowedOrigins: v.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
		},
		Cache: CacheConfig{
			Enabled:           v.GetBool("CACHE_ENABLED"),
			RedisURL:          v.GetString("REDIS_URL"),
			RedisHost:         v.GetString("REDIS_HOST"),
			RedisPort:         v.GetString("REDIS_PORT"),
			RedisPassword:     v.GetString("REDIS_PASSWORD"),
			RedisDB:           v.GetInt("REDIS_DB"),
			MetricsTTLSeconds: v.GetInt("CACHE_METRICS_TTL_SECONDS"),
		},
		Storage: StorageConfig{
			Endpoint:  v.GetString("STORAGE_ENDPOINT"),
			AccessKey: v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STORAGE_SECRET_KEY"),
			Bucket:    v.GetString("STORAGE_BUCKET"),
			Region:    v.GetString("STORAGE_REGION"),
			UseSSL:    v.GetBool("STORAGE_USE_SSL"),
			Prefix:    v.GetString("STORAGE_PREFIX"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
