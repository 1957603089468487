package driver

import (
	"fmt"
	"time"
)

// KeyValueDB define a key-value storage interface
type KeyValueDB interface {
	SetEX(key string, value string, expiration time.Duration) error
	Get(key string) (string, error)
	Exists(key string) (bool, error)
	Ping() error
}

// KVConfig kv backend options
type KVConfig struct {
	Driver   string // backend name
	Host     string // redis host
	Port     int    // redis port
	Password string // redis password
}

// GetKVStore create a KeyValueDB from given config
func GetKVStore(cfg *KVConfig) (KeyValueDB, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedisClient(cfg.Host, cfg.Port, cfg.Password), nil
	case "memory":
		return NewMemoryKV(), nil
	}
	return nil, fmt.Errorf("Unsupported kv driver: %s", cfg.Driver)
}
