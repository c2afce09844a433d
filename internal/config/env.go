package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port          string
	DatabaseDSN   string
	CORSOrigin    string
	CookieDomain  string
	OpenAIKey     string
	OpenAIBaseURL string
	GoogleKey     string
	GeminiBaseURL string
	SearchBaseURL string
	Ledger        LedgerSettings
	Storage       StorageSettings
}

type LedgerSettings struct {
	CSVPath  string
	XLSXPath string
}

type StorageSettings struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

func (s StorageSettings) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

func loadDotEnv() {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		Logger.WithError(err).Warnf("Failed to load %s", file)
	}
}

func Load() Settings {
	return Settings{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		CORSOrigin:    getEnv("CORS_ALLOWED_ORIGIN", "*"),
		CookieDomain:  os.Getenv("COOKIE_DOMAIN"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GoogleKey:     os.Getenv("GOOGLE_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		SearchBaseURL: os.Getenv("SEARCH_BASE_URL"),
		Ledger: LedgerSettings{
			CSVPath:  os.Getenv("LEDGER_CSV_PATH"),
			XLSXPath: os.Getenv("LEDGER_XLSX_PATH"),
		},
		Storage: StorageSettings{
			Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    os.Getenv("STORAGE_BUCKET"),
			Region:    getEnv("STORAGE_REGION", "us-east-1"),
			UseSSL:    getBool("STORAGE_USE_SSL", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}
