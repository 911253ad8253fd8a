// Package config manages application configuration for the Level Up API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Fields are bound to variables with env struct tags and parsed by
// github.com/caarlos0/env:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: store driver plus SurrealDB or SQLite settings
//   - TelemetryConfig: OpenTelemetry trace export
//
// # Environment Variables
//
//	SERVER_PORT                  - HTTP server port (default: 8080)
//	SERVER_ENV                   - development, production or test
//	SERVER_READ_TIMEOUT          - e.g. 15s
//	SERVER_WRITE_TIMEOUT         - e.g. 15s
//	CORS_ALLOWED_ORIGINS         - comma separated origins
//	DB_DRIVER                    - surrealdb (default) or sqlite
//	DB_PATH                      - SQLite database file
//	DB_HOST, DB_PORT             - SurrealDB address
//	DB_NAMESPACE, DB_DATABASE    - SurrealDB namespace and database
//	DB_USER, DB_PASSWORD         - SurrealDB root credentials
//	OTEL_ENABLED                 - export traces over OTLP/HTTP
//	OTEL_EXPORTER_OTLP_ENDPOINT  - collector host:port
//	OTEL_SERVICE_NAME            - service.name resource attribute
package config
