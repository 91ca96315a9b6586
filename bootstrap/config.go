package bootstrap

import (
	"github.com/kbukum/sttproxy/config"
)

// Config is satisfied by any struct that embeds config.ServiceConfig and
// overrides ApplyDefaults/Validate for its own sections.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
