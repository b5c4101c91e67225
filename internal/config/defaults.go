package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultUploadDir      = "wwwroot/uploads"
	defaultPublicPath     = "/uploads"
	defaultMaxOpenConns   = 10
	defaultLogLevel       = "debug"

	// DefaultMaxUploadSize is the receipt size limit: 5 MiB.
	DefaultMaxUploadSize int64 = 5 * 1024 * 1024
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
			},
			Files: Files{
				UploadDir:  defaultUploadDir,
				PublicPath: defaultPublicPath,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
		},
	}
}
