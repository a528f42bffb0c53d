package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithHTTPAddr(host, port string) Option {
	return func(c *Config) {
		c.Server.Host = host
		c.Server.Port = port
	}
}

func WithTimeouts(read, write time.Duration) Option {
	return func(c *Config) {
		c.Server.ReadTimeout = read
		c.Server.WriteTimeout = write
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.Redis.TTL = ttl
	}
}
