package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the two policy bits external to the register itself.
//
// ChkRange mirrors chk_range: when set, a non-Unicode extended code point
// (nonuni) contributes to Error() and the property classifier suppresses
// bits that only apply to in-range Unicode characters once R>=0x110000.
//
// BigEndian mirrors cbe: the byte order used by the UTF-32 and UTF-16
// ingress/egress paths.
type Config struct {
	ChkRange  bool `json:"chk_range"`
	BigEndian bool `json:"cbe"`
}

// DefaultConfig returns the conservative default: range checking on,
// big-endian byte order.
func DefaultConfig() *Config {
	return &Config{
		ChkRange:  true,
		BigEndian: true,
	}
}

// LoadConfig reads a JSON-encoded Config from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
