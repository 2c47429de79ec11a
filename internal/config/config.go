package config

import (
	"crypto/rand"
	"os"
	"strconv"
	"time"

	"file-converter/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort    string
	DatabasePath  string
	UploadPath    string
	ResultPath    string
	MaxFileSize   int64
	LogLevel      string
	SessionSecret []byte
	SessionTTL    time.Duration
	ArtifactTTL   time.Duration
	SweepInterval time.Duration

	secretGenerated bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	secret, generated := sessionSecret()
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:    getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		DatabasePath:  getEnvOrDefault("DATABASE_PATH", "./db.sqlite3"),
		UploadPath:    getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		ResultPath:    getEnvOrDefault("RESULT_PATH", "./results"),
		MaxFileSize:   getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		SessionSecret: secret,
		SessionTTL:    getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		ArtifactTTL:   getEnvDurationOrDefault("ARTIFACT_TTL", 24*time.Hour),
		SweepInterval: getEnvDurationOrDefault("SWEEP_INTERVAL", time.Hour),

		secretGenerated: generated,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetDatabasePath returns the SQLite database file path
func (c *AppConfig) GetDatabasePath() string {
	return c.DatabasePath
}

// GetUploadPath returns the staging directory for uploaded inputs
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetResultPath returns the directory for produced outputs
func (c *AppConfig) GetResultPath() string {
	return c.ResultPath
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSessionSecret returns the session cookie signing key
func (c *AppConfig) GetSessionSecret() []byte {
	return c.SessionSecret
}

// SessionSecretGenerated reports whether the signing key was generated
// because SESSION_SECRET was unset
func (c *AppConfig) SessionSecretGenerated() bool {
	return c.secretGenerated
}

// GetSessionTTL returns the session lifetime
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetArtifactTTL returns how long staged files are retained; 0 disables sweeping
func (c *AppConfig) GetArtifactTTL() time.Duration {
	return c.ArtifactTTL
}

// GetSweepInterval returns how often the retention sweep runs
func (c *AppConfig) GetSweepInterval() time.Duration {
	return c.SweepInterval
}

// sessionSecret loads SESSION_SECRET or, when unset, generates a random
// one. A generated secret invalidates all sessions on restart.
func sessionSecret() ([]byte, bool) {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		return []byte(v), false
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("failed to generate session secret: " + err.Error())
	}
	return secret, true
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
