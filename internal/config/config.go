package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally preloaded from a .env file.
type Config struct {
	Port        string
	GinMode     string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins []string

	// Object storage. Backend is "oss" or "filesystem".
	StorageBackend string
	OSSEndpoint    string
	OSSAccessKey   string
	OSSSecretKey   string
	OSSBucket      string
	PublicBaseURL  string
	LocalStoreDir  string
	LocalBaseURL   string

	CanvasBaseURL string
	CanvasToken   string

	CoursesCSV string

	LogPath       string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		GinMode:     getenv("GIN_MODE", "release"),
		DatabaseURL: getenv("DATABASE_URL", "syllabushub.db"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  duration("TOKEN_TTL", 24*time.Hour),

		AllowedOrigins: split(os.Getenv("ALLOWED_ORIGINS")),

		StorageBackend: getenv("STORAGE_BACKEND", "filesystem"),
		OSSEndpoint:    os.Getenv("OSS_ENDPOINT"),
		OSSAccessKey:   os.Getenv("OSS_ACCESS_KEY_ID"),
		OSSSecretKey:   os.Getenv("OSS_ACCESS_KEY_SECRET"),
		OSSBucket:      os.Getenv("OSS_BUCKET"),
		PublicBaseURL:  os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		LocalStoreDir:  getenv("STORAGE_LOCAL_DIR", "./uploads"),
		LocalBaseURL:   getenv("STORAGE_LOCAL_BASE_URL", "/static/uploads"),

		CanvasBaseURL: getenv("CANVAS_BASE_URL", "https://gatech.instructure.com"),
		CanvasToken:   os.Getenv("CANVAS_API_TOKEN"),

		CoursesCSV: getenv("COURSES_CSV", "data/gatech_courses.csv"),

		LogPath:       getenv("LOG_PATH", "logs/syllabushub.log"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogMaxSizeMB:  intenv("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: intenv("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: intenv("LOG_MAX_AGE_DAYS", 7),
		LogCompress:   os.Getenv("LOG_COMPRESS") == "true",
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intenv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func split(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
