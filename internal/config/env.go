package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/schedule"
	"github.com/ipreg/superglue/internal/zonetext"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Getenvs reads an environment variable, split it by '\n', and trim the space.
func Getenvs(key string) []string {
	rawVals := strings.Split(os.Getenv(key), "\n")
	vals := make([]string, 0, len(rawVals))
	for _, v := range rawVals {
		v = strings.TrimSpace(v)
		if len(v) > 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

// ReadString reads an environment variable as a plain string.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	*field = val
	return true
}

// ReadBool reads an environment variable as a boolean value.
func ReadBool(ppfmt pp.PP, key string, field *bool) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%t", key, *field)
		return true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = b
	return true
}

// ReadNonnegInt reads an environment variable as a non-negative integer.
func ReadNonnegInt(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case i < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is negative", key, i)
		return false

	default:
		*field = i
		return true
	}
}

// ReadNonnegDuration reads an environment variable and parses it as a time duration.
func ReadNonnegDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%v", key, *field)
		return true
	}

	t, err := time.ParseDuration(val)

	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, val, err)
		return false
	case t < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%v) is negative", key, t)
		return false
	}

	*field = t
	return true
}

// ReadPositiveDuration is like [ReadNonnegDuration] but also rejects zero.
func ReadPositiveDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	t := *field
	if !ReadNonnegDuration(ppfmt, key, &t) {
		return false
	}
	if t == 0 {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%v) is not positive", key, t)
		return false
	}

	*field = t
	return true
}

// ReadReverseDSPolicy reads what to do with DS records of reverse zones.
func ReadReverseDSPolicy(ppfmt pp.PP, key string, field *zonetext.ReverseDSPolicy) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	p, err := zonetext.ParseReverseDSPolicy(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s: %v", key, err)
		return false
	}

	*field = p
	return true
}

// ReadCronSlots reads an environment variable and parses it as a cron expression.
func ReadCronSlots(ppfmt pp.PP, key string, field **schedule.CronSlots) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	s, err := schedule.NewCronSlots(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a cron expression: %v", key, val, err)
		return false
	}

	*field = s
	return true
}
