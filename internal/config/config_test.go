package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HINTO_HOTKEY", "HINTO_ALPHABET", "HINTO_AUTO_CLICK",
		"HINTO_SCAN_TIMING", "HINTO_LABEL_THEME", "HINTO_LABEL_SIZE",
		"HINTO_LOG_LEVEL", EnvFileVar,
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Hotkey != DefaultHotkey {
		t.Errorf("hotkey default: got %q", cfg.Hotkey)
	}
	if cfg.AutoClick || cfg.ScanTiming {
		t.Error("boolean options must default to off")
	}
	if cfg.LabelSize != DefaultLabelSize {
		t.Errorf("label size default: got %d", cfg.LabelSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level default: got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HINTO_HOTKEY", "cmd+shift+space")
	t.Setenv("HINTO_ALPHABET", "qwerty")
	t.Setenv("HINTO_AUTO_CLICK", "true")
	t.Setenv("HINTO_SCAN_TIMING", "1")
	t.Setenv("HINTO_LABEL_SIZE", "18")
	t.Setenv("HINTO_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Hotkey != "cmd+shift+space" {
		t.Errorf("hotkey: got %q", cfg.Hotkey)
	}
	if cfg.Alphabet != "qwerty" {
		t.Errorf("alphabet: got %q", cfg.Alphabet)
	}
	if !cfg.AutoClick || !cfg.ScanTiming {
		t.Error("boolean overrides not applied")
	}
	if cfg.LabelSize != 18 {
		t.Errorf("label size: got %d", cfg.LabelSize)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("HINTO_LABEL_SIZE", "zero")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LabelSize != DefaultLabelSize {
		t.Errorf("invalid size must fall back, got %d", cfg.LabelSize)
	}
	t.Setenv("HINTO_LABEL_SIZE", "-3")
	cfg, _ = Load()
	if cfg.LabelSize != DefaultLabelSize {
		t.Errorf("non-positive size must fall back, got %d", cfg.LabelSize)
	}
}

func TestEnvBool(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "on"} {
		t.Setenv("HINTO_AUTO_CLICK", v)
		if !envBool("HINTO_AUTO_CLICK") {
			t.Errorf("%q should enable", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off", "maybe"} {
		t.Setenv("HINTO_AUTO_CLICK", v)
		if envBool("HINTO_AUTO_CLICK") {
			t.Errorf("%q should disable", v)
		}
	}
}
