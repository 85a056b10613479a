package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ipreg/superglue/internal/schedule"
)

func TestCronSlotsOn(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.October, 17, 15, 4, 5, 0, time.Local)

	for _, tc := range [...]struct {
		spec     string
		expected []string
	}{
		{"0 0,8,14,20 * * *", []string{"00:00", "08:00", "14:00", "20:00"}},
		{"30 9 * * *", []string{"09:30"}},
		{"0 */6 * * *", []string{"00:00", "06:00", "12:00", "18:00"}},
	} {
		t.Run(tc.spec, func(t *testing.T) {
			t.Parallel()

			s := schedule.MustNewCronSlots(tc.spec)
			require.Equal(t, tc.spec, s.String())
			require.Equal(t, tc.expected, s.On(day))
		})
	}
}

func TestCronSlotsEveryMinute(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)
	got := schedule.MustNewCronSlots("* 23 * * *").On(day)
	require.Len(t, got, 60)
	require.Equal(t, "23:00", got[0])
	require.Equal(t, "23:59", got[59])
	require.NoError(t, schedule.CheckSlots(got))
}

func TestCronSlotsWeekday(t *testing.T) {
	t.Parallel()

	// 17 October 2026 is a Saturday.
	saturday := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.Local)
	monday := saturday.AddDate(0, 0, 2)
	s := schedule.MustNewCronSlots("0 12 * * MON")
	require.Empty(t, s.On(saturday))
	require.Equal(t, []string{"12:00"}, s.On(monday))
}

func TestNewCronSlotsError(t *testing.T) {
	t.Parallel()

	for _, spec := range [...]string{"*/4 * * * * *", "@every 5ss", "@cool"} {
		_, err := schedule.NewCronSlots(spec)
		require.Error(t, err)
		require.Panics(t, func() { schedule.MustNewCronSlots(spec) })
	}
}
