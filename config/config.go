package config

import "os"

// Config holds everything the server reads from the environment.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	NinjaAPIKey  string
	RapidAPIKey  string
	RapidAPIHost string
	CORSOrigin   string
}

// GetEnv returns the value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment with local-dev defaults.
func Load() *Config {
	return &Config{
		Port:         GetEnv("PORT", "5000"),
		MongoURI:     GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      GetEnv("MONGO_DB", "fittrack"),
		JWTSecret:    GetEnv("JWT_SECRET", "dev-secret-change-me"),
		NinjaAPIKey:  GetEnv("NINJA_API_KEY", ""),
		RapidAPIKey:  GetEnv("RAPID_API_KEY", ""),
		RapidAPIHost: GetEnv("RAPID_API_HOST", "exercisedb.p.rapidapi.com"),
		CORSOrigin:   GetEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
}
