package whisper

import (
	"fmt"
	"time"
)

const (
	defaultModel           = "whisper-1"
	defaultPrompt          = "Transcribe exactly as spoken. Do not correct words or grammar."
	defaultTimeout         = 120 * time.Second
	defaultDefaultLanguage = "ko"
)

// Config holds the upstream STT endpoint settings. It is loaded from the
// "gms" config section, so GMS_STT_URL and GMS_API_KEY map onto STTURL and
// APIKey.
type Config struct {
	STTURL          string        `yaml:"stt_url" mapstructure:"stt_url"`
	APIKey          string        `yaml:"api_key" mapstructure:"api_key"`
	Model           string        `yaml:"model" mapstructure:"model"`
	Prompt          string        `yaml:"prompt" mapstructure:"prompt"`
	Timeout         time.Duration `yaml:"timeout" mapstructure:"timeout"`
	DefaultLanguage string        `yaml:"default_language" mapstructure:"default_language"`
}

// ApplyDefaults fills in zero-value fields. STTURL and APIKey have no
// defaults; calls fail until they are set.
func (c *Config) ApplyDefaults() {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Prompt == "" {
		c.Prompt = defaultPrompt
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = defaultDefaultLanguage
	}
}

// Validate checks settings that would make every call fail the same way.
// A missing key or URL is reported per call instead.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("gms: timeout must be positive")
	}
	if c.Model == "" {
		return fmt.Errorf("gms: model is required")
	}
	return nil
}
