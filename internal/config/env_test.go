package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "OPENAI_BASE_URL", "OPENAI_MODELS", "GEN_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	env := LoadEnv()

	if env.AppAddr != ":8080" {
		t.Fatalf("default addr %q", env.AppAddr)
	}
	if env.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Fatalf("default base url %q", env.OpenAIBaseURL)
	}
	if !reflect.DeepEqual(env.OpenAIModels, []string{"gpt-5", "gpt-4o", "gpt-4-turbo"}) {
		t.Fatalf("default model chain %v", env.OpenAIModels)
	}
	if env.GenTimeout != 60*time.Second {
		t.Fatalf("default gen timeout %v", env.GenTimeout)
	}
	if len(env.CORSAllowedOrigins) != 0 {
		t.Fatalf("origins should be empty without env, got %v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvParsesCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.example.com, https://staging.example.com ,, ")

	env := LoadEnv()

	want := []string{"https://app.example.com", "https://staging.example.com"}
	if !reflect.DeepEqual(env.CORSAllowedOrigins, want) {
		t.Fatalf("parsed origins %v, want %v", env.CORSAllowedOrigins, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "https://llm.internal/v1/")
	t.Setenv("OPENAI_MODELS", "gpt-4o, gpt-4-turbo")
	t.Setenv("GEN_TIMEOUT", "90s")

	env := LoadEnv()

	if env.OpenAIBaseURL != "https://llm.internal/v1" {
		t.Fatalf("base url not trimmed: %q", env.OpenAIBaseURL)
	}
	if !reflect.DeepEqual(env.OpenAIModels, []string{"gpt-4o", "gpt-4-turbo"}) {
		t.Fatalf("model chain %v", env.OpenAIModels)
	}
	if env.GenTimeout != 90*time.Second {
		t.Fatalf("gen timeout %v", env.GenTimeout)
	}
}
