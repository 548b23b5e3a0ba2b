package liturgy

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmcarver/missal/internal/model"
	"github.com/jmcarver/missal/internal/store"
)

// mockSource implements Source with call counters for asserting how
// many network requests a resolve path issued.
type mockSource struct {
	day      model.LiturgicalDay
	readings model.DailyReadings
	prayers  []model.Prayer
	err      error
	delay    time.Duration

	calendarCalls atomic.Int32
	readingsCalls atomic.Int32
	categoryCalls atomic.Int32
	seasonalCalls atomic.Int32
}

func (m *mockSource) wait(ctx context.Context) error {
	if m.delay == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
		return nil
	}
}

func (m *mockSource) CalendarFor(ctx context.Context, date string) (model.LiturgicalDay, error) {
	m.calendarCalls.Add(1)
	if err := m.wait(ctx); err != nil {
		return model.LiturgicalDay{}, err
	}
	if m.err != nil {
		return model.LiturgicalDay{}, m.err
	}
	d := m.day
	d.Date = date
	return d, nil
}

func (m *mockSource) ReadingsFor(ctx context.Context, date string) (model.DailyReadings, error) {
	m.readingsCalls.Add(1)
	if err := m.wait(ctx); err != nil {
		return model.DailyReadings{}, err
	}
	if m.err != nil {
		return model.DailyReadings{}, m.err
	}
	r := m.readings
	r.Date = date
	return r, nil
}

func (m *mockSource) PrayersByCategory(ctx context.Context, category string) ([]model.Prayer, error) {
	m.categoryCalls.Add(1)
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.prayers, m.err
}

func (m *mockSource) SeasonalPrayers(ctx context.Context, season string) ([]model.Prayer, error) {
	m.seasonalCalls.Add(1)
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.prayers, m.err
}

func testReadings() model.DailyReadings {
	return model.DailyReadings{
		Gospel:      &model.Reading{Reference: "John 6:51-58", Citation: "Jn 6:51-58", Source: "USCCB"},
		Source:      "USCCB",
		LastUpdated: "2025-08-29T05:00:00Z",
	}
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSecondResolveServesFromMemory(t *testing.T) {
	src := &mockSource{readings: testReadings()}
	r := NewResolver(testStore(t), src)
	ctx := context.Background()

	first, err := r.Readings(ctx, "2025-08-29")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	second, err := r.Readings(ctx, "2025-08-29")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if first.Date != second.Date || first.Source != second.Source {
		t.Errorf("resolves disagree: %+v vs %+v", first, second)
	}
	if n := src.readingsCalls.Load(); n != 1 {
		t.Errorf("network calls = %d, want 1 (second resolve must be memory-only)", n)
	}
}

func TestResolveServesFromStoreWithoutNetwork(t *testing.T) {
	st := testStore(t)
	cached := testReadings()
	cached.Date = "2025-08-29"
	if err := st.PutReadings(cached); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	src := &mockSource{readings: testReadings()}
	r := NewResolver(st, src)

	got, err := r.Readings(context.Background(), "2025-08-29")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got.Date != "2025-08-29" {
		t.Errorf("date = %q", got.Date)
	}
	if n := src.readingsCalls.Load(); n != 0 {
		t.Errorf("network calls = %d, want 0 (store hit)", n)
	}

	// The store hit should now be indexed in memory too.
	if _, err := r.Readings(context.Background(), "2025-08-29"); err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if n := src.readingsCalls.Load(); n != 0 {
		t.Errorf("network calls = %d after memory-indexed resolve, want 0", n)
	}
}

func TestResolveWritesThroughToStore(t *testing.T) {
	st := testStore(t)
	src := &mockSource{readings: testReadings()}
	r := NewResolver(st, src)

	if _, err := r.Readings(context.Background(), "2025-08-29"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	got, ok, err := st.GetReadings("2025-08-29")
	if err != nil {
		t.Fatalf("store read failed: %v", err)
	}
	if !ok {
		t.Fatal("fetched readings were not written through to the store")
	}
	if got.Gospel == nil || got.Gospel.Reference != "John 6:51-58" {
		t.Errorf("stored record incomplete: %+v", got)
	}
}

func TestConcurrentResolveCollapsesToOneFetch(t *testing.T) {
	src := &mockSource{readings: testReadings(), delay: 50 * time.Millisecond}
	r := NewResolver(testStore(t), src)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Readings(context.Background(), "2025-08-29")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("caller %d failed: %v", i, err)
		}
	}
	if n := src.readingsCalls.Load(); n != 1 {
		t.Errorf("network calls = %d, want exactly 1 for concurrent same-date resolves", n)
	}
}

func TestDifferentDatesFetchIndependently(t *testing.T) {
	src := &mockSource{readings: testReadings()}
	r := NewResolver(testStore(t), src)
	ctx := context.Background()

	if _, err := r.Readings(ctx, "2025-08-29"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if _, err := r.Readings(ctx, "2025-08-30"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if n := src.readingsCalls.Load(); n != 2 {
		t.Errorf("network calls = %d, want 2 for two distinct dates", n)
	}
}

func TestDepartingCallerDoesNotCancelSharedFetch(t *testing.T) {
	src := &mockSource{readings: testReadings(), delay: 80 * time.Millisecond}
	r := NewResolver(testStore(t), src)

	cancelCtx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	var stayErr error
	var stayed model.DailyReadings
	wg.Add(1)
	go func() {
		defer wg.Done()
		stayed, stayErr = r.Readings(context.Background(), "2025-08-29")
	}()

	// Give both callers time to join the same flight, then abandon one.
	wg.Add(1)
	var leftErr error
	go func() {
		defer wg.Done()
		_, leftErr = r.Readings(cancelCtx, "2025-08-29")
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	wg.Wait()

	if leftErr == nil {
		t.Error("cancelled caller should observe its context error")
	}
	if stayErr != nil {
		t.Fatalf("remaining caller failed: %v", stayErr)
	}
	if stayed.Date != "2025-08-29" {
		t.Errorf("remaining caller got %+v", stayed)
	}
	if n := src.readingsCalls.Load(); n != 1 {
		t.Errorf("network calls = %d, want 1 shared fetch", n)
	}
}

func TestDayResolve(t *testing.T) {
	src := &mockSource{day: model.LiturgicalDay{
		Season:  model.SeasonOrdinaryTime,
		Weekday: "Friday",
		Celebrations: []model.Celebration{
			{Name: "The Passion of Saint John the Baptist", Rank: model.RankMemorial, Color: model.ColorRed},
		},
		Color:       model.ColorRed,
		Source:      "Universalis",
		LastUpdated: "2025-08-29T00:00:00Z",
	}}
	st := testStore(t)
	r := NewResolver(st, src)

	day, err := r.Day(context.Background(), "2025-08-29")
	if err != nil {
		t.Fatalf("Day failed: %v", err)
	}
	if day.Date != "2025-08-29" || len(day.Celebrations) != 1 {
		t.Errorf("day = %+v", day)
	}

	if _, ok, _ := st.GetDay("2025-08-29"); !ok {
		t.Error("day was not written through to the store")
	}

	if _, err := r.Day(context.Background(), "2025-08-29"); err != nil {
		t.Fatalf("second Day failed: %v", err)
	}
	if n := src.calendarCalls.Load(); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
}

func TestPrayersRouting(t *testing.T) {
	src := &mockSource{prayers: []model.Prayer{
		{Name: "Our Father", Category: "common", Text: "t", Source: "x", Language: "en"},
	}}
	r := NewResolver(testStore(t), src)
	ctx := context.Background()

	if _, err := r.Prayers(ctx, "common"); err != nil {
		t.Fatalf("Prayers(common) failed: %v", err)
	}
	if _, err := r.Prayers(ctx, "advent"); err != nil {
		t.Fatalf("Prayers(advent) failed: %v", err)
	}

	if n := src.categoryCalls.Load(); n != 1 {
		t.Errorf("category endpoint calls = %d, want 1", n)
	}
	if n := src.seasonalCalls.Load(); n != 1 {
		t.Errorf("seasonal endpoint calls = %d, want 1", n)
	}

	// Both categories are now session-indexed.
	if _, err := r.Prayers(ctx, "common"); err != nil {
		t.Fatalf("Prayers(common) failed: %v", err)
	}
	if n := src.categoryCalls.Load(); n != 1 {
		t.Errorf("category endpoint calls = %d after memory hit, want 1", n)
	}
}

func TestNilStoreResolves(t *testing.T) {
	src := &mockSource{readings: testReadings()}
	r := NewResolver(nil, src)

	if _, err := r.Readings(context.Background(), "2025-08-29"); err != nil {
		t.Fatalf("resolve without a store failed: %v", err)
	}
	if _, err := r.Readings(context.Background(), "2025-08-29"); err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if n := src.readingsCalls.Load(); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
}
