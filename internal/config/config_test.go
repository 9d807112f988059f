package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != 8090 {
		t.Errorf("Port = %d, want 8090", cfg.Port)
	}
	if cfg.LobbyURL == "" {
		t.Error("LobbyURL default missing")
	}
	if cfg.Frame != 33*time.Millisecond {
		t.Errorf("Frame = %v, want 33ms", cfg.Frame)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("AllowedOrigins default missing")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("LOBBY_URL", "ws://lobby:8080/ws")
	t.Setenv("SEED", "12345")
	t.Setenv("FRAME", "16ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	if cfg.Port != 9000 || cfg.Env != "production" {
		t.Errorf("server config = %d/%s", cfg.Port, cfg.Env)
	}
	if cfg.LobbyURL != "ws://lobby:8080/ws" {
		t.Errorf("LobbyURL = %s", cfg.LobbyURL)
	}
	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Frame != 16*time.Millisecond {
		t.Errorf("Frame = %v", cfg.Frame)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("FRAME", "soon")
	cfg := Load()
	if cfg.Port != 8090 || cfg.Frame != 33*time.Millisecond {
		t.Errorf("malformed values did not fall back: %d/%v", cfg.Port, cfg.Frame)
	}
}
