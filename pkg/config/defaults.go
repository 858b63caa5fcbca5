// Package config provides centralized default values for PageForge
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found -- config defaults will be used")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database Configuration
	SQLitePath    string
	LibSQLURL     string
	LibSQLToken   string
	LibSQLEnabled bool

	// Database Pool
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int
	DBConnMaxIdleMinutes     int

	// Output Directories
	GeneratedPagesDir string
	MediaDir          string
	LogDirectory      string

	// Render Cache
	RenderCacheTTL       time.Duration
	CacheCleanupInterval time.Duration

	// Auth
	JWTSecret         string
	EditorPassword    string
	TokenLifetime     time.Duration
	AllowedOrigins    []string
	MaxUploadSizeKB   int
	MaxDocumentSizeKB int

	// Email
	ResendAPIKey   string
	EmailFrom      string
	EmailFromName  string
	PublicBaseURL  string
	SharingEnabled bool
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database Configuration
	SQLitePath = getEnvString("SQLITE_PATH", "db/pageforge.db")
	LibSQLURL = getEnvString("LIBSQL_DATABASE_URL", "")
	LibSQLToken = getEnvString("LIBSQL_AUTH_TOKEN", "")
	LibSQLEnabled = getEnvBool("LIBSQL_ENABLED", false)

	// Database Pool
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	DBConnMaxIdleMinutes = getEnvInt("DB_CONN_MAX_IDLE_MINUTES", 3)

	// Output Directories
	GeneratedPagesDir = getEnvString("GENERATED_PAGES_DIR", "generated_pages")
	MediaDir = getEnvString("MEDIA_DIR", "media")
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")

	// Render Cache
	RenderCacheTTL = time.Duration(getEnvInt("RENDER_CACHE_TTL_HOURS", 1)) * time.Hour
	CacheCleanupInterval = time.Duration(getEnvInt("CACHE_CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	EditorPassword = getEnvString("EDITOR_PASSWORD", "")
	TokenLifetime = getEnvDuration("TOKEN_LIFETIME", 24*time.Hour)
	AllowedOrigins = strings.Split(getEnvString("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",")
	MaxUploadSizeKB = getEnvInt("MAX_UPLOAD_SIZE_KB", 4096)
	MaxDocumentSizeKB = getEnvInt("MAX_DOCUMENT_SIZE_KB", 512)

	// Email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@pageforge.dev")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "PageForge")
	PublicBaseURL = getEnvString("PUBLIC_BASE_URL", "http://localhost:8080")
	SharingEnabled = getEnvBool("SHARING_ENABLED", false)
}
