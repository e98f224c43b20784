package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/rozanashayari/daily-poetry-backend/store"
)

// Store is the process-wide key-value store, set by InitStore.
var Store store.KVStore

// InitStore opens the KV store selected by STORAGE_DRIVER
// (redis | postgres | memory). Redis is the default.
func InitStore() {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "redis"
	}

	var err error
	switch driver {
	case "redis":
		Store, err = store.NewRedisStore(redisConfigFromEnv())
	case "postgres":
		Store, err = store.NewPostgresStore(postgresDSNFromEnv())
	case "memory":
		Store = store.NewMemoryStore()
	default:
		log.Fatalf("unknown STORAGE_DRIVER: %s", driver)
	}
	if err != nil {
		log.Fatalf("failed to init %s store: %v", driver, err)
	}
	log.Printf("%s store connected", driver)
}

func redisConfigFromEnv() store.RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if n, err := strconv.Atoi(d); err == nil {
			db = n
		}
	}
	return store.RedisConfig{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

func postgresDSNFromEnv() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
}
