package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Fatalf("unexpected backend url: %s", cfg.BackendURL)
	}
	if cfg.SessionIdleTimeout != 10*time.Minute {
		t.Fatalf("unexpected idle timeout: %s", cfg.SessionIdleTimeout)
	}
	if cfg.DrillDownParallelism != 4 {
		t.Fatalf("unexpected parallelism: %d", cfg.DrillDownParallelism)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev env by default")
	}
	if cfg.DefaultPIN != "" {
		t.Fatalf("expected no default pin, got %q", cfg.DefaultPIN)
	}
}

func TestFromViperOverridesAndTrims(t *testing.T) {
	v := viper.New()
	v.Set("BACKEND_URL", "https://sentinela.example/")
	v.Set("ENV", "prod")
	v.Set("REQUEST_TIMEOUT", "5s")
	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "https://sentinela.example" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.BackendURL)
	}
	if cfg.IsDev() {
		t.Fatalf("expected prod env")
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.RequestTimeout)
	}
}

func TestMockAnalysis(t *testing.T) {
	for mode, want := range map[string]bool{"mock": true, "Mock": true, " MOCK ": true, "backend": false, "": false} {
		if got := (Config{AnalysisMode: mode}).MockAnalysis(); got != want {
			t.Fatalf("MockAnalysis(%q) = %v, want %v", mode, got, want)
		}
	}
	v := viper.New()
	v.Set("ANALYSIS_MODE", "Mock")
	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.MockAnalysis() {
		t.Fatalf("expected mock analysis from mixed-case setting")
	}
}

func TestPrefixes(t *testing.T) {
	cfg := Config{ProxyPrefixes: " /inmates/, llamadas,,photos "}
	got := cfg.Prefixes()
	want := []string{"inmates", "llamadas", "photos"}
	if len(got) != len(want) {
		t.Fatalf("unexpected prefixes: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("prefix %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
