package config

import "time"

const defaultScanInterval = 24 * time.Hour

// Timer expresses a rerun interval in settings-file units.
type Timer struct {
	Days    uint32 `json:"days"`
	Hours   uint32 `json:"hours"`
	Minutes uint32 `json:"minutes"`
	Seconds uint32 `json:"seconds"`
}

func (t Timer) IsZero() bool {
	return t.Days == 0 && t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// Duration converts the timer into a time.Duration.
func (t Timer) Duration() time.Duration {
	return time.Duration(t.Days)*24*time.Hour +
		time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
}

// ScanInterval returns the delay between watch-mode runs: the configured scan
// timer, or 24h when the timer is zero.
func ScanInterval(cfg Config) time.Duration {
	timer := cfg.Scanner.ScanTimer
	if timer.IsZero() {
		return defaultScanInterval
	}
	return timer.Duration()
}
