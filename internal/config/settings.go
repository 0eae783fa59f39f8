package config

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"gossipscan/internal/support"
)

// Config is the full scanner configuration. The embedded defaults reproduce
// the built-in constants; a settings file and environment overrides layer on
// top of them.
type Config struct {
	RPC struct {
		URL            string `json:"url"`
		TimeoutSeconds uint32 `json:"timeout_seconds"`
	} `json:"rpc"`

	Geo struct {
		BatchURL       string `json:"batch_url"`
		BatchSize      int    `json:"batch_size"`
		TimeoutSeconds uint32 `json:"timeout_seconds"`
		GeoLitePath    string `json:"geolite_path,omitempty"`
	} `json:"geo"`

	Scanner struct {
		SampleSize int   `json:"sample_size"`
		ScanTimer  Timer `json:"scan_timer"`
	} `json:"scanner"`

	Sanctions struct {
		CountryCodes []string `json:"country_codes"`
	} `json:"sanctions"`

	Output struct {
		ScanLogPath string `json:"scan_log_path"`
		SummaryPath string `json:"summary_path"`
	} `json:"output"`
}

// DefaultSettingsPath is where ReadSettings looks when no -settings flag is
// given. The file is optional; nothing is created when it is missing.
const DefaultSettingsPath = "data/settings.json"

var (
	//go:embed default_settings.json
	defaultSettings []byte

	configValue atomic.Value
)

func init() {
	configValue.Store(DefaultConfig())
}

// DefaultConfig returns the built-in configuration parsed from the embedded
// defaults file.
func DefaultConfig() Config {
	var cfg Config
	if err := json.Unmarshal(defaultSettings, &cfg); err != nil {
		panic("config: embedded default settings are invalid: " + err.Error())
	}
	return cfg
}

// ReadSettings loads the settings file at path over the built-in defaults,
// applies environment overrides, and stores the result. A missing file is not
// an error; a malformed one is logged and leaves the defaults in place.
func ReadSettings(path string) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			log.Error("Error unmarshalling settings file", "path", path, "error", err)
			cfg = DefaultConfig()
		} else {
			log.Debug("Settings file loaded successfully", "path", path)
		}
	case os.IsNotExist(err):
		log.Debug("Settings file not found, using built-in defaults", "path", path)
	default:
		log.Error("Error reading settings file", "path", path, "error", err)
	}

	applyEnvOverrides(&cfg)
	configValue.Store(cfg)
}

// GetConfig returns the current configuration atomically.
func GetConfig() Config {
	return configValue.Load().(Config)
}

// SetConfig replaces the current configuration. Used by tests to substitute
// endpoints and limits without touching global state on disk.
func SetConfig(cfg Config) {
	configValue.Store(cfg)
}

func applyEnvOverrides(cfg *Config) {
	cfg.RPC.URL = support.GetEnv("GOSSIPSCAN_RPC_URL", cfg.RPC.URL)
	cfg.Geo.BatchURL = support.GetEnv("GOSSIPSCAN_GEO_URL", cfg.Geo.BatchURL)
	cfg.Geo.GeoLitePath = support.GetEnv("GOSSIPSCAN_GEOLITE_PATH", cfg.Geo.GeoLitePath)
	cfg.Scanner.SampleSize = support.GetEnvInt("GOSSIPSCAN_SAMPLE_SIZE", cfg.Scanner.SampleSize)
	cfg.Output.ScanLogPath = support.GetEnv("GOSSIPSCAN_SCAN_LOG", cfg.Output.ScanLogPath)
	cfg.Output.SummaryPath = support.GetEnv("GOSSIPSCAN_SUMMARY", cfg.Output.SummaryPath)
}

// RPCTimeout is the request timeout for the node directory call.
func (c Config) RPCTimeout() time.Duration {
	return time.Duration(c.RPC.TimeoutSeconds) * time.Second
}

// GeoTimeout is the request timeout for one geolocation batch call.
func (c Config) GeoTimeout() time.Duration {
	return time.Duration(c.Geo.TimeoutSeconds) * time.Second
}
