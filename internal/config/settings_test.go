package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RPC.URL != "https://api.mainnet-beta.solana.com" {
		t.Fatalf("default RPC URL = %s, want mainnet-beta endpoint", cfg.RPC.URL)
	}
	if cfg.RPC.TimeoutSeconds != 20 {
		t.Fatalf("default RPC timeout = %d, want 20", cfg.RPC.TimeoutSeconds)
	}
	if cfg.Geo.BatchURL != "http://ip-api.com/batch" {
		t.Fatalf("default geo batch URL = %s, want ip-api batch endpoint", cfg.Geo.BatchURL)
	}
	if cfg.Geo.BatchSize != 100 {
		t.Fatalf("default geo batch size = %d, want 100", cfg.Geo.BatchSize)
	}
	if cfg.Scanner.SampleSize != 150 {
		t.Fatalf("default sample size = %d, want 150", cfg.Scanner.SampleSize)
	}
	if len(cfg.Sanctions.CountryCodes) != 8 {
		t.Fatalf("default sanctioned set has %d codes, want 8", len(cfg.Sanctions.CountryCodes))
	}
	if cfg.Output.ScanLogPath != "daily_node_scan.csv" {
		t.Fatalf("default scan log path = %s, want daily_node_scan.csv", cfg.Output.ScanLogPath)
	}
	if cfg.Output.SummaryPath != "daily_summary.txt" {
		t.Fatalf("default summary path = %s, want daily_summary.txt", cfg.Output.SummaryPath)
	}
}

func TestReadSettings(t *testing.T) {
	orig := GetConfig()
	t.Cleanup(func() { SetConfig(orig) })

	t.Run("missing file keeps defaults", func(t *testing.T) {
		ReadSettings(filepath.Join(t.TempDir(), "absent.json"))
		if got := GetConfig().Scanner.SampleSize; got != 150 {
			t.Fatalf("sample size = %d, want default 150", got)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		body := `{"scanner": {"sample_size": 25}, "rpc": {"url": "http://localhost:8899"}}`
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("writing settings file: %v", err)
		}

		ReadSettings(path)
		cfg := GetConfig()
		if cfg.Scanner.SampleSize != 25 {
			t.Fatalf("sample size = %d, want 25", cfg.Scanner.SampleSize)
		}
		if cfg.RPC.URL != "http://localhost:8899" {
			t.Fatalf("RPC URL = %s, want http://localhost:8899", cfg.RPC.URL)
		}
		// Keys absent from the file stay at their defaults.
		if cfg.Geo.BatchSize != 100 {
			t.Fatalf("geo batch size = %d, want default 100", cfg.Geo.BatchSize)
		}
	})

	t.Run("malformed file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("writing settings file: %v", err)
		}

		ReadSettings(path)
		if got := GetConfig().Scanner.SampleSize; got != 150 {
			t.Fatalf("sample size = %d, want default 150", got)
		}
	})

	t.Run("environment overrides file and defaults", func(t *testing.T) {
		t.Setenv("GOSSIPSCAN_RPC_URL", "http://127.0.0.1:8899")
		t.Setenv("GOSSIPSCAN_SAMPLE_SIZE", "10")

		ReadSettings(filepath.Join(t.TempDir(), "absent.json"))
		cfg := GetConfig()
		if cfg.RPC.URL != "http://127.0.0.1:8899" {
			t.Fatalf("RPC URL = %s, want env override", cfg.RPC.URL)
		}
		if cfg.Scanner.SampleSize != 10 {
			t.Fatalf("sample size = %d, want env override 10", cfg.Scanner.SampleSize)
		}
	})
}

func TestRequestTimeouts(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.RPCTimeout().Seconds(); got != 20 {
		t.Fatalf("RPCTimeout returned %.0fs, want 20s", got)
	}
	if got := cfg.GeoTimeout().Seconds(); got != 20 {
		t.Fatalf("GeoTimeout returned %.0fs, want 20s", got)
	}
}
