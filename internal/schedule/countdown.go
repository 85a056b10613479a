package schedule

import (
	"time"

	"github.com/ipreg/superglue/internal/pp"
)

const (
	intervalUnit     time.Duration = time.Minute
	intervalLargeGap time.Duration = time.Minute * 5
	intervalHugeGap  time.Duration = time.Hour * 12
)

// DescribeIntuitively gives the shortest clear description of target as seen at now.
func DescribeIntuitively(now, target time.Time) string {
	now = now.In(time.Local)
	target = target.In(time.Local)

	switch {
	case now.Year() != target.Year():
		return target.Format("02 Jan 15:04 2006")
	case now.YearDay() != target.YearDay():
		return target.Format("02 Jan 15:04")
	default:
		return target.Format("15:04")
	}
}

// PrintCountdown tells how long it is until target.
func PrintCountdown(ppfmt pp.PP, activity string, now, target time.Time) {
	interval := target.Sub(now)

	switch {
	case interval < intervalUnit:
		ppfmt.Infof(pp.EmojiNow, "%s now", activity)
	case interval < intervalLargeGap:
		ppfmt.Infof(pp.EmojiAlarm, "%s in less than %v", activity, intervalLargeGap)
	case interval < intervalHugeGap:
		ppfmt.Infof(pp.EmojiAlarm, "%s in about %v (%s)",
			activity, interval.Round(intervalUnit), DescribeIntuitively(now, target))
	default:
		ppfmt.Infof(pp.EmojiAlarm, "%s in about %v (%s)",
			activity, interval.Round(time.Hour), DescribeIntuitively(now, target))
	}
}
