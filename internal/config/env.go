package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	// Generation service (OpenAI-compatible chat completions).
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModels  []string
	GenTimeout    time.Duration

	// Session cookie signing + admin login untuk arsip.
	SessionSecret     string
	AdminPasswordHash string

	// Optional: arsip itinerary. Kosong berarti memory-only.
	DBDSN string

	// Kosong berarti pakai daftar origin dev lokal.
	CORSAllowedOrigins []string
}

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultGenTimeout = 60 * time.Second
)

var defaultModels = []string{"gpt-5", "gpt-4o", "gpt-4-turbo"}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	models := SplitList(os.Getenv("OPENAI_MODELS"))
	if len(models) == 0 {
		models = append([]string{}, defaultModels...)
	}

	genTimeout := defaultGenTimeout
	if raw := strings.TrimSpace(os.Getenv("GEN_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			genTimeout = d
		}
	}

	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = "dev-session-secret-change-me"
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:      baseURL,
		OpenAIModels:       models,
		GenTimeout:         genTimeout,
		SessionSecret:      secret,
		AdminPasswordHash:  strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		DBDSN:              strings.TrimSpace(os.Getenv("DB_DSN")),
		CORSAllowedOrigins: SplitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// SplitList parses comma separated env values into cleaned slices.
func SplitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
