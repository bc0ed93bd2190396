package config

import "testing"

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("TUYA_BASE_URL", "")
	t.Setenv("TUYA_CLIENT_ID", "")
	t.Setenv("TUYA_CLIENT_SECRET", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("DEVICE_MAP_PATH", "")

	cfg := LoadFromEnv()

	if cfg.Tuya.BaseURL != "https://openapi.tuyaus.com" {
		t.Errorf("unexpected base url %q", cfg.Tuya.BaseURL)
	}
	if cfg.Server.Address() != "0.0.0.0:8787" {
		t.Errorf("unexpected address %q", cfg.Server.Address())
	}
	if cfg.Store.Path != "device-map.json" {
		t.Errorf("unexpected store path %q", cfg.Store.Path)
	}
	if cfg.Store.SQLite() {
		t.Error("default store must not be sqlite")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("TUYA_BASE_URL", "https://openapi.tuyaeu.com")
	t.Setenv("TUYA_CLIENT_ID", "cid")
	t.Setenv("TUYA_CLIENT_SECRET", "csecret")
	t.Setenv("PORT", "9090")
	t.Setenv("DEVICE_MAP_PATH", "/var/lib/bridge/aliases.db")

	cfg := LoadFromEnv()

	if cfg.Tuya.BaseURL != "https://openapi.tuyaeu.com" {
		t.Errorf("unexpected base url %q", cfg.Tuya.BaseURL)
	}
	if cfg.Tuya.ClientID != "cid" || cfg.Tuya.ClientSecret != "csecret" {
		t.Error("credentials not loaded")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("unexpected port %d", cfg.Server.Port)
	}
	if !cfg.Store.SQLite() {
		t.Error("expected .db path to select the sqlite store")
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := LoadFromEnv()
	if cfg.Server.Port != 8787 {
		t.Errorf("expected default port on bad value, got %d", cfg.Server.Port)
	}
}
