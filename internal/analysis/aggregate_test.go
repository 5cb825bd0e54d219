package analysis

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/dailylog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 5, 20, 0, 0, 0, 0, time.Local)

func rec(name, process string, hour, minute int, duration string) domain.Record {
	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return domain.Record{
		Name:     name,
		Start:    start,
		End:      start.Add(time.Duration(domain.ParseDuration(duration)) * time.Second),
		Duration: duration,
		Process:  process,
	}
}

func sampleRecords() []domain.Record {
	return []domain.Record{
		rec("main.go - Cursor", "Cursor", 9, 0, "0:30:00"),
		rec("X - Vivaldi", "Vivaldi", 9, 30, "0:10:00"),
		rec("main.go - Cursor", "Cursor", 10, 0, "1:00:00"),
		rec("Docs - Vivaldi", "Vivaldi", 10, 5, "0:10:00"),
		rec("Spotify", "Spotify", 23, 50, "0:20:00"),
		rec("broken", "Cursor", 11, 0, "garbage"),
	}
}

func TestAggregate_Totals(t *testing.T) {
	s := Aggregate(sampleRecords())

	assert.Equal(t, 5400, s.ByName["main.go - Cursor"])
	assert.Equal(t, 600, s.ByName["X - Vivaldi"])
	assert.Equal(t, 0, s.ByName["broken"])
	assert.Equal(t, 5400, s.ByProcess["Cursor"])
	assert.Equal(t, 1200, s.ByProcess["Vivaldi"])
	assert.Equal(t, 1200, s.ByProcess["Spotify"])
	assert.Equal(t, 7800, s.TotalSeconds)
}

func TestAggregate_HourBucketsUseStartHour(t *testing.T) {
	s := Aggregate(sampleRecords())

	assert.Equal(t, []int{9, 10, 11, 23}, s.Hours())
	require.Len(t, s.ByHour[9], 2)
	assert.Equal(t, "main.go - Cursor", s.ByHour[9][0].Name)
	assert.Equal(t, "X - Vivaldi", s.ByHour[9][1].Name)

	// 23:50 + 20min crosses midnight but stays in hour 23.
	require.Len(t, s.ByHour[23], 1)
	_, spilled := s.ByHour[0]
	assert.False(t, spilled)
}

func TestAggregate_OrderIndependentTotals(t *testing.T) {
	records := sampleRecords()
	want := Aggregate(records)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.Record(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled)
		assert.Equal(t, want.ByName, got.ByName)
		assert.Equal(t, want.ByProcess, got.ByProcess)
		assert.Equal(t, want.TotalSeconds, got.TotalSeconds)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := append([]domain.Record(nil), records...)
	Aggregate(records)
	assert.Equal(t, before, records)
}

func TestTopActivities_DescendingWithStableTies(t *testing.T) {
	s := Aggregate(sampleRecords())

	top := s.TopActivities(5)
	require.Len(t, top, 5)
	assert.Equal(t, Entry{Label: "main.go - Cursor", Seconds: 5400}, top[0])
	assert.Equal(t, Entry{Label: "Spotify", Seconds: 1200}, top[1])
	// Equal durations keep encounter order.
	assert.Equal(t, "X - Vivaldi", top[2].Label)
	assert.Equal(t, "Docs - Vivaldi", top[3].Label)
	assert.Equal(t, "broken", top[4].Label)
}

func TestTopActivities_Limit(t *testing.T) {
	s := Aggregate(sampleRecords())
	assert.Len(t, s.TopActivities(2), 2)
	assert.Len(t, s.TopActivities(0), 5)
	assert.Len(t, s.TopActivities(100), 5)
}

func TestTopProcesses(t *testing.T) {
	s := Aggregate(sampleRecords())
	top := s.TopProcesses(0)
	require.Len(t, top, 3)
	assert.Equal(t, "Cursor", top[0].Label)
	assert.Equal(t, "Vivaldi", top[1].Label)
	assert.Equal(t, "Spotify", top[2].Label)
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)
	assert.Empty(t, s.ByName)
	assert.Empty(t, s.TopActivities(5))
	assert.Empty(t, s.Hours())
	assert.Equal(t, 0, s.TotalSeconds)
}
