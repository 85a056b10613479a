// Package config reads and parses configurations.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ipreg/superglue/internal/creds"
	"github.com/ipreg/superglue/internal/monitor"
	"github.com/ipreg/superglue/internal/notifier"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registry"
	"github.com/ipreg/superglue/internal/registry/janet"
	"github.com/ipreg/superglue/internal/registry/statefile"
	"github.com/ipreg/superglue/internal/schedule"
	"github.com/ipreg/superglue/internal/zonetext"
)

// Config holds the settings read from the environment.
type Config struct {
	RegistryURL     string
	RegistryTimeout time.Duration
	LeadTime        time.Duration
	MaxPending      int
	ReverseDS       zonetext.ReverseDSPolicy
	SlotSchedule    *schedule.CronSlots
	Monitors        []monitor.Monitor
	Notifiers       []notifier.Notifier
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		RegistryURL:     janet.DefaultURL,
		RegistryTimeout: time.Minute,
		LeadTime:        5 * time.Minute, //nolint:mnd
		MaxPending:      10,              //nolint:mnd
		ReverseDS:       zonetext.ReverseDSDrop,
		SlotSchedule:    schedule.MustNewCronSlots("0 0,8,14,20 * * *"),
		Monitors:        nil,
		Notifiers:       nil,
	}
}

// ReadEnv calls the relevant readers to read all relevant environment variables
// except the output-related ones (QUIET and EMOJI).
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadString(ppfmt, "REGISTRY_URL", &c.RegistryURL) ||
		!ReadPositiveDuration(ppfmt, "REGISTRY_TIMEOUT", &c.RegistryTimeout) ||
		!ReadNonnegDuration(ppfmt, "LEAD_TIME", &c.LeadTime) ||
		!ReadNonnegInt(ppfmt, "MAX_PENDING_MODIFICATIONS", &c.MaxPending) ||
		!ReadReverseDSPolicy(ppfmt, "REVERSE_DS_POLICY", &c.ReverseDS) ||
		!ReadCronSlots(ppfmt, "SLOT_SCHEDULE", &c.SlotSchedule) ||
		!ReadAndAppendHealthchecksURL(ppfmt, "HEALTHCHECKS", &c.Monitors) ||
		!ReadAndAppendUptimeKumaURL(ppfmt, "UPTIMEKUMA", &c.Monitors) ||
		!ReadAndAppendShoutrrrURL(ppfmt, "SHOUTRRR", &c.Notifiers) {
		return false
	}

	return true
}

// usesStateFile checks whether the registry URL names a local state file.
func (c *Config) usesStateFile() (string, bool) {
	u, err := url.Parse(c.RegistryURL)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	return u.Path, true
}

// NewGateway opens the registry named by [Config.RegistryURL]. A file:// URL
// selects a state file instead of the web site of the registry.
func (c *Config) NewGateway(ppfmt pp.PP, cr creds.Credentials, now func() time.Time) (registry.Gateway, bool) {
	if path, ok := c.usesStateFile(); ok {
		if path == "" {
			ppfmt.Noticef(pp.EmojiUserError, "The state file URL %q has no path", c.RegistryURL)
			return nil, false
		}
		ppfmt.Infof(pp.EmojiRegistry, "Using the state file %s in place of the registry", path)
		return statefile.New(path, c.SlotSchedule, now), true
	}

	g, err := janet.New(ppfmt, c.RegistryURL, c.RegistryTimeout, cr)
	if err != nil {
		return nil, false
	}
	return g, true
}

const itemTitleWidth = 28

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Registry:")
	if path, ok := c.usesStateFile(); ok {
		item("State file:", "%s", path)
		item("Modification times:", "%s", c.SlotSchedule)
	} else {
		u, err := url.Parse(c.RegistryURL)
		if err == nil {
			item("URL:", "%s", u.Redacted())
		}
		item("Timeout of each step:", "%v", c.RegistryTimeout)
	}
	if c.MaxPending == 0 {
		item("Max pending modifications:", "unlimited")
	} else {
		item("Max pending modifications:", "%d", c.MaxPending)
	}

	section("Scheduling:")
	item("Lead time:", "%v", c.LeadTime)

	section("Delegation input:")
	item("DS of reverse zones:", "%s", c.ReverseDS)

	if len(c.Monitors) > 0 {
		section("Monitors:")
		monitor.DescribeAll(func(service, params string) {
			item(service+":", "%s", params)
		}, c.Monitors)
	}

	if len(c.Notifiers) > 0 {
		section("Notification services (via shoutrrr):")
		notifier.DescribeAll(func(service, params string) {
			item(service+":", "%s", params)
		}, c.Notifiers)
	}
}
