package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For delay settings

	"github.com/joho/godotenv" // For loading .env files
)

// Storage backends understood by STORE_BACKEND
const (
	BackendMemory = "memory" // In-process map, lost on restart
	BackendRedis  = "redis"  // Redis keys per browser scope
	BackendMySQL  = "mysql"  // store_entries table through GORM
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	IsProd         bool          // Is production environment
	StoreBackend   string        // memory, redis or mysql
	RedisAddr      string        // Redis server address
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	StoreTTL       time.Duration // Expiry for Redis scope keys, 0 disables
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	ScopeSecret    string        // HMAC secret signing the scope cookie
	RedirectDelay  time.Duration // Delay before navigating home after signup/login
	NoticeDuration time.Duration // How long the add-to-cart notification stays visible
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getenv("APP_PORT", "8080"),                      // Application port
		IsProd:         os.Getenv("IS_PROD") == "true",                  // Is production environment
		StoreBackend:   getenv("STORE_BACKEND", BackendMemory),          // Storage backend
		RedisAddr:      os.Getenv("REDIS_ADDR"),                         // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                         // Redis password
		RedisDB:        redisDB,                                         // Redis database number
		StoreTTL:       getduration("STORE_TTL", 0),                     // Redis key expiry
		DBUser:         os.Getenv("DB_USER"),                            // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                        // Database password
		DBHost:         os.Getenv("DB_HOST"),                            // Database host
		DBPort:         os.Getenv("DB_PORT"),                            // Database port
		DBName:         os.Getenv("DB_NAME"),                            // Database name
		ScopeSecret:    getenv("SCOPE_SECRET", "storefront-dev-secret"), // Scope cookie secret
		RedirectDelay:  getduration("REDIRECT_DELAY", 2*time.Second),    // Post-login redirect delay
		NoticeDuration: getduration("NOTICE_DURATION", 3*time.Second),   // Notification lifetime
	}
}

// DSN builds the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getenv returns the variable or def when it is unset or empty
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getduration parses a Go duration ("2s", "1500ms"), falling back to def
func getduration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d < 0 {
		return def
	}
	return d
}
