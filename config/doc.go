// Package config loads service configuration from YAML files, .env files and
// the process environment.
//
// Every environment variable is bound to the nested key variants it could
// represent, so GMS_STT_URL populates gms.stt_url and SERVER_PORT populates
// server.port without per-key registration.
//
// # Usage
//
//	var cfg AppConfig
//	if err := config.LoadConfig("sttproxy", &cfg); err != nil {
//	    return err
//	}
package config
