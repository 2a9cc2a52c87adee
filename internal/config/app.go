package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile returns the path for the rotating core debug log, empty
// when file logging is disabled.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}
