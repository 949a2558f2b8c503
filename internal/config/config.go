package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	CORSOrigin      string
	MongoURI        string
	MongoDatabase   string
	RedisURL        string
	JWTSecret       string
	JWTIssuer       string
	VerificationURL string
	RequestTimeout  time.Duration
	LockTTL         time.Duration
	JSONLogs        bool
	Debug           bool

	// Matching engine knobs. Defaults live in engine.DefaultConfig; these
	// override them so deployments can tune the model without a rebuild.
	AcademicWeight           float64
	CertificateWeight        float64
	ExtraCertificateBonus    float64
	ExtraCertificateBonusCap float64
	ExperienceWeight         float64
	ExperienceCapYears       float64
	InstitutionLimit         int

	FanoutPageSize int
	JobSweepSpec   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "career_guidance"),
		RedisURL:        getEnv("REDIS_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTIssuer:       getEnv("JWT_ISSUER", "career-guidance"),
		VerificationURL: getEnv("VERIFICATION_BASE_URL", "https://localhost/verify"),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 10*time.Second),
		LockTTL:         getDuration("APPLY_LOCK_TTL", 5*time.Second),
		JSONLogs:        getBool("LOG_JSON", true),
		Debug:           getBool("DEBUG", false),

		AcademicWeight:           getFloat("SCORE_ACADEMIC_WEIGHT", 10),
		CertificateWeight:        getFloat("SCORE_CERT_WEIGHT", 5),
		ExtraCertificateBonus:    getFloat("SCORE_EXTRA_CERT_BONUS", 1),
		ExtraCertificateBonusCap: getFloat("SCORE_EXTRA_CERT_BONUS_CAP", 3),
		ExperienceWeight:         getFloat("SCORE_EXPERIENCE_WEIGHT", 2),
		ExperienceCapYears:       getFloat("SCORE_EXPERIENCE_CAP_YEARS", 10),
		InstitutionLimit:         getInt("INSTITUTION_APPLICATION_LIMIT", 2),

		FanoutPageSize: getInt("FANOUT_PAGE_SIZE", 200),
		JobSweepSpec:   getEnv("JOB_SWEEP_SPEC", "@every 1h"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
