package workforce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaselineDemand(t *testing.T) {
	// The weekend override applies only to HR; everyone else keeps their
	// department baseline regardless of weekday.
	cases := []struct {
		name    string
		dept    string
		weekday time.Weekday
		want    int
	}{
		{"nursing weekday", DeptNursing, time.Monday, 55},
		{"nursing saturday", DeptNursing, time.Saturday, 55},
		{"evs weekday", DeptEVS, time.Wednesday, 22},
		{"other weekday", "Security", time.Friday, 10},
		{"hr weekday", DeptHR, time.Friday, 10},
		{"hr saturday", DeptHR, time.Saturday, 3},
		{"hr sunday", DeptHR, time.Sunday, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, baselineDemand(tc.dept, tc.weekday))
		})
	}
}

func TestDrawDemand_ClampsNegativeDraws(t *testing.T) {
	// HR weekend baseline is 3 with sd 3, so negative draws happen; they
	// must clamp to zero before any downstream rounding.
	g := &ScheduleGenerator{streams: NewStreams(99)}
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, g.drawDemand(DeptHR, time.Saturday), 0)
	}
}

func TestBucketForStartHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := BucketNight
		switch {
		case hour >= 6 && hour < 14:
			want = BucketDay
		case hour >= 14 && hour < 22:
			want = BucketEvening
		}
		assert.Equal(t, want, BucketForStartHour(hour), "hour %d", hour)
	}
}

func TestShiftDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, shiftDuration(DeptNursing))
	assert.Equal(t, 8*time.Hour, shiftDuration(DeptEVS))
	assert.Equal(t, 8*time.Hour, shiftDuration("Security"))
}

func TestSampleIndices(t *testing.T) {
	streams := NewStreams(5)
	idx := sampleIndices(streams.General, 10, 4)
	assert.Len(t, idx, 4)

	seen := make(map[int]bool)
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 10)
		assert.False(t, seen[i], "index %d sampled twice", i)
		seen[i] = true
	}
}
