// Package config loads runtime configuration for the customer client.
//
// Sources & precedence
//
//  1. Built-in defaults (see Defaults).
//  2. Optional YAML file given with --config. JSON files work too, JSON
//     being a subset of YAML. Values may reference environment variables
//     as ${NAME}.
//  3. Environment: API_URL, CLIENTDESK_API_URL, CLIENTDESK_REQUEST_TIMEOUT,
//     CLIENTDESK_TOAST_DURATION, CLIENTDESK_TIMEZONE, CLIENTDESK_LOG_LEVEL.
//  4. Command-line flags collected by the cobra root command (see Flags).
//
// # File schema
//
//	api_url: http://localhost:3000
//	request_timeout: 10s
//	toast_duration: 5s
//	display_timezone: America/Sao_Paulo
//	log_level: info
package config
