package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_PROJECT_YEARS", "DEFAULT_DISCOUNT_RATE", "DATABASE_URL", "STORAGE_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.MaxProjectYears != 60 {
		t.Errorf("MaxProjectYears = %d, want 60", cfg.MaxProjectYears)
	}
	if cfg.StorageDir != ".feasibility" || cfg.DatabaseURL != "" {
		t.Errorf("storage = %q / %q", cfg.StorageDir, cfg.DatabaseURL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_DISCOUNT_RATE", "8.5")
	t.Setenv("EQUITY_HURDLE_RATE", "12")
	t.Setenv("MAX_PROJECT_YEARS", "not-a-number")

	cfg, _ := LoadConfig()
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.MaxProjectYears != 60 {
		t.Errorf("MaxProjectYears = %d, want fallback 60", cfg.MaxProjectYears)
	}

	opts := cfg.EngineOptions()
	if opts.DefaultDiscountRate != 8.5 || opts.EquityHurdleRate != 12 {
		t.Errorf("EngineOptions() = %+v", opts)
	}
	if opts.Admin == nil {
		t.Error("EngineOptions() lost admin provider")
	}
}
