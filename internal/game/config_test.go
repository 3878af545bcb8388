package game

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, " 42 ")
	t.Setenv(EnvPlain, "true")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvDataset, "")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg.Seed != 42 || !cfg.PlainConsole || !cfg.Telemetry || cfg.APIKey != "secret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Dataset != "dungeondelve" {
		t.Errorf("Dataset = %q, want default", cfg.Dataset)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvPlain, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDataset, "custom")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg.Seed != 0 || cfg.PlainConsole || cfg.Telemetry || cfg.Dataset != "custom" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "abc"},
		{EnvPlain, "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(EnvSeed, "")
			t.Setenv(EnvPlain, "")
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("ConfigFromEnv() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}
