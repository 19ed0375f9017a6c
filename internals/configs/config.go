package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	// AI extraction service (document verification)
	VerifierBaseURL string
	VerifierAPIKey  string
	// Supabase storage (uploaded documents)
	StorageProjectURL string
	StorageAPIKey     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	VerifierBaseURL = GetEnv("VERIFIER_BASE_URL")
	VerifierAPIKey = GetEnv("VERIFIER_API_KEY")
	StorageProjectURL = GetEnv("SUPABASE_PROJECT_URL")
	StorageAPIKey = GetEnv("SUPABASE_API_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}
	if VerifierBaseURL == "" {
		log.Println("⚠️ VERIFIER_BASE_URL is not set — document verification will fail until configured")
	}
	if StorageProjectURL == "" {
		log.Println("⚠️ SUPABASE_PROJECT_URL is not set — document uploads will fail until configured")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
