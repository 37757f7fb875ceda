// Package config loads runtime configuration for the bookstore CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present.
//  3. Environment variables prefixed with BOOKSTORE_.
//  4. Optional JSON file selected via flags: -c or -config.
//  5. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the storefront API, e.g. http://localhost:5000/api
//	-t int      request timeout (seconds)
//	-d string   path of the local database file
//	-l string   log level (debug, info, warn, error)
//
// # Environment
//
//	BOOKSTORE_API_URL, BOOKSTORE_REQUEST_TIMEOUT, BOOKSTORE_DB_PATH,
//	BOOKSTORE_PAGE_SIZE, BOOKSTORE_LOG_LEVEL, BOOKSTORE_LATEST_ONLY
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds are both
// accepted:
//
//	{
//	  "api_url": "http://localhost:5000/api",
//	  "request_timeout": "10s",
//	  "db_path": "bookstore.db",
//	  "page_size": 8,
//	  "log_level": "info",
//	  "latest_only": false
//	}
package config
