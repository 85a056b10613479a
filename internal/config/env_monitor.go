package config

import (
	"github.com/ipreg/superglue/internal/monitor"
	"github.com/ipreg/superglue/internal/pp"
)

// ReadAndAppendHealthchecksURL reads the URL of a check of Healthchecks.
func ReadAndAppendHealthchecksURL(ppfmt pp.PP, key string, field *[]monitor.Monitor) bool {
	val := Getenv(key)

	if val == "" {
		return true
	}

	h, ok := monitor.NewHealthchecks(ppfmt, val)
	if !ok {
		return false
	}

	*field = append(*field, h)
	return true
}

// ReadAndAppendUptimeKumaURL reads the URL of a Push Monitor of an Uptime Kuma server.
func ReadAndAppendUptimeKumaURL(ppfmt pp.PP, key string, field *[]monitor.Monitor) bool {
	val := Getenv(key)

	if val == "" {
		return true
	}

	h, ok := monitor.NewUptimeKuma(ppfmt, val)
	if !ok {
		return false
	}

	*field = append(*field, h)
	return true
}
