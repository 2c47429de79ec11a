package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetDatabasePath() string
	GetUploadPath() string
	GetResultPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetSessionSecret() []byte
	SessionSecretGenerated() bool
	GetSessionTTL() time.Duration
	GetArtifactTTL() time.Duration
	GetSweepInterval() time.Duration
}
