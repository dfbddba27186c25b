package config

import "os"

// Addr returns the listen address for the HTTP server.
func Addr() string {
	if addr := os.Getenv("APP_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

// LogFile returns the path of the rotating log file, or "" when file
// logging is disabled.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}
