// internals/configs/config.go
package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
)

/* =======================
   ENV LOADER
======================= */

func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, falling back to system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

/* =======================
   App settings
   Built once in main and passed down; nothing here is configured at
   import time (the old dashboard wired its image-hosting SDK as a
   module-load global, which made testing impossible).
======================= */

type OSSSettings struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	PublicBase string // optional CDN/base URL override for returned links
}

type MidtransSettings struct {
	ServerKey  string
	Production bool
}

type Settings struct {
	Port      string
	RedisAddr string // empty disables the board cache
	OSS       OSSSettings
	Midtrans  MidtransSettings
}

func LoadSettings() Settings {
	return Settings{
		Port:      GetEnv("PORT", "3000"),
		RedisAddr: GetEnv("REDIS_ADDR"),
		OSS: OSSSettings{
			Endpoint:   GetEnv("OSS_ENDPOINT"),
			AccessKey:  GetEnv("OSS_ACCESS_KEY"),
			SecretKey:  GetEnv("OSS_SECRET_KEY"),
			Bucket:     GetEnv("OSS_BUCKET"),
			PublicBase: GetEnv("OSS_PUBLIC_BASE"),
		},
		Midtrans: MidtransSettings{
			ServerKey:  GetEnv("MIDTRANS_SERVER_KEY"),
			Production: GetEnv("MIDTRANS_ENV") == "production",
		},
	}
}
