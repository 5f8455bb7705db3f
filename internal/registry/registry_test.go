package registry_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkseear/tinylink/internal/models"
	"github.com/darkseear/tinylink/internal/registry"
	"github.com/darkseear/tinylink/internal/storage"
)

type mockClock struct {
	mu      sync.Mutex
	current time.Time
}

func newMockClock() *mockClock {
	return &mockClock{current: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// sequenceGenerator выдаёт коды по порядку, повторяя последний.
type sequenceGenerator struct {
	codes []string
	calls int
}

func (g *sequenceGenerator) Generate() string {
	i := g.calls
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	g.calls++
	return g.codes[i]
}

func newRegistry(t *testing.T, store storage.Storage, opts registry.Options) *registry.Registry {
	t.Helper()
	r, err := registry.New(store, opts)
	require.NoError(t, err)
	return r
}

func TestCreate_GeneratedCode(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	for i := 0; i < 50; i++ {
		link, err := r.Create("https://example.com", "")
		require.NoError(t, err)
		assert.Len(t, link.Code, registry.DefaultCodeLength)
		assert.True(t, registry.ValidCode(link.Code))

		got, ok := r.Get(link.Code)
		require.True(t, ok)
		assert.Equal(t, "https://example.com", got.URL)
		assert.Equal(t, int64(0), got.Clicks)
		assert.Nil(t, got.LastClicked)
	}
}

func TestCreate_ExplicitCode(t *testing.T) {
	clock := newMockClock()
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Clock: clock})

	link, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.LinkView{Code: "abc123", URL: "https://a.com", CreatedAt: clock.Now()}, link)
}

func TestCreate_InvalidURL(t *testing.T) {
	store := storage.NewMemoryStorage()
	r := newRegistry(t, store, registry.Options{})

	for _, raw := range []string{
		"",
		"example.com",
		"/relative/path",
		"ftp://example.com",
		"mailto:someone@example.com",
		"javascript:alert(1)",
		"http://",
		"https://exa mple.com",
		"://missing-scheme",
		"http:example.com",
		"https://example.com:99999",
		"https://example.com:65536",
		"https://:8080",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := r.Create(raw, "")
			assert.ErrorIs(t, err, registry.ErrInvalidURL)
		})
	}
	assert.Equal(t, 0, store.Saves())
}

func TestCreate_ValidURL(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	for _, raw := range []string{
		"http://example.com",
		"https://example.com/path?q=1#frag",
		"https://example.com:0",
		"https://example.com:8080/x",
		"https://example.com:65535",
		"https://example.com:",
		"HTTPS://EXAMPLE.COM",
		"http://127.0.0.1",
		"http://[::1]:3000/",
	} {
		t.Run(raw, func(t *testing.T) {
			link, err := r.Create(raw, "")
			require.NoError(t, err)
			assert.Equal(t, raw, link.URL)
		})
	}
}

func TestCreate_InvalidCodeFormat(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	for _, code := range []string{"abc12", "abc123456", "abc-12", "abc_123", "abcdé1", "abc 123"} {
		t.Run(code, func(t *testing.T) {
			_, err := r.Create("https://example.com", code)
			assert.ErrorIs(t, err, registry.ErrInvalidCodeFormat)
		})
	}
}

func TestCreate_InvalidURLCheckedFirst(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	_, err := r.Create("not a url", "bad")
	assert.ErrorIs(t, err, registry.ErrInvalidURL)
}

func TestCreate_CodeExistsAndReuseAfterDelete(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	_, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	_, err = r.Create("https://b.com", "abc123")
	assert.ErrorIs(t, err, registry.ErrCodeExists)

	deleted, err := r.Delete("abc123")
	require.NoError(t, err)
	require.True(t, deleted)

	link, err := r.Create("https://b.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://b.com", link.URL)

	got, ok := r.Get("abc123")
	require.True(t, ok)
	assert.Equal(t, "https://b.com", got.URL)
}

func TestCreate_GenerationRetriesOnCollision(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"taken01", "taken01", "free001"}}
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Generator: gen})

	_, err := r.Create("https://a.com", "taken01")
	require.NoError(t, err)

	link, err := r.Create("https://b.com", "")
	require.NoError(t, err)
	assert.Equal(t, "free001", link.Code)
	assert.Equal(t, 3, gen.calls)
}

func TestCreate_GenerationExhausted(t *testing.T) {
	store := storage.NewMemoryStorage()
	gen := &sequenceGenerator{codes: []string{"taken01"}}
	r := newRegistry(t, store, registry.Options{Generator: gen})

	_, err := r.Create("https://a.com", "taken01")
	require.NoError(t, err)

	_, err = r.Create("https://b.com", "")
	assert.ErrorIs(t, err, registry.ErrGenerationExhausted)
	assert.Equal(t, registry.DefaultMaxAttempts, gen.calls)
	assert.Equal(t, 1, store.Saves())
	assert.Equal(t, int64(1), r.Snapshot().LastID)
}

func TestCreate_ConfiguredAttempts(t *testing.T) {
	gen := &sequenceGenerator{codes: []string{"taken01"}}
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Generator: gen, MaxAttempts: 3})

	_, err := r.Create("https://a.com", "taken01")
	require.NoError(t, err)

	_, err = r.Create("https://b.com", "")
	assert.ErrorIs(t, err, registry.ErrGenerationExhausted)
	assert.Equal(t, 3, gen.calls)
}

func TestCreate_IDsIncrease(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	for i := 0; i < 5; i++ {
		_, err := r.Create("https://example.com", "")
		require.NoError(t, err)
	}
	_, err := r.Delete(r.List()[0].Code)
	require.NoError(t, err)
	_, err = r.Create("https://example.com", "")
	require.NoError(t, err)

	state := r.Snapshot()
	assert.Equal(t, int64(6), state.LastID)
	for i, l := range state.Links {
		assert.Equal(t, int64(i+1), l.ID)
	}
}

func TestCreate_SaveFailureRollsBack(t *testing.T) {
	store := storage.NewMemoryStorage()
	r := newRegistry(t, store, registry.Options{})

	errDisk := errors.New("disk full")
	store.FailSaves(errDisk)

	_, err := r.Create("https://a.com", "abc123")
	assert.ErrorIs(t, err, errDisk)

	_, ok := r.Get("abc123")
	assert.False(t, ok)
	assert.Equal(t, int64(0), r.Snapshot().LastID)

	store.FailSaves(nil)
	_, err = r.Create("https://a.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Snapshot().LastID)
}

func TestList_SortedAndWithoutDeleted(t *testing.T) {
	clock := newMockClock()
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Clock: clock})

	for _, code := range []string{"first1", "second", "third3", "fourth"} {
		_, err := r.Create("https://example.com/"+code, code)
		require.NoError(t, err)
		clock.Advance(time.Second)
	}
	_, err := r.Delete("second")
	require.NoError(t, err)

	links := r.List()
	codes := make([]string, 0, len(links))
	for _, l := range links {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"fourth", "third3", "first1"}, codes)
}

func TestList_SameInstantNewestFirst(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Clock: newMockClock()})

	for _, code := range []string{"aaaaaa", "bbbbbb", "cccccc"} {
		_, err := r.Create("https://example.com", code)
		require.NoError(t, err)
	}

	links := r.List()
	require.Len(t, links, 3)
	assert.Equal(t, "cccccc", links[0].Code)
	assert.Equal(t, "aaaaaa", links[2].Code)
}

func TestList_Empty(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	links := r.List()
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestGet_MalformedCodeIsNotFound(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	for _, code := range []string{"", "abc", "abc-123", "abcdefghi", "../etc"} {
		_, ok := r.Get(code)
		assert.False(t, ok, code)
	}
}

func TestDelete(t *testing.T) {
	store := storage.NewMemoryStorage()
	r := newRegistry(t, store, registry.Options{})

	deleted, err := r.Delete("nothere")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 0, store.Saves())

	_, err = r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	deleted, err = r.Delete("abc123")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 2, store.Saves())

	_, ok := r.Get("abc123")
	assert.False(t, ok)

	deleted, err = r.Delete("abc123")
	require.NoError(t, err)
	assert.False(t, deleted)

	state := r.Snapshot()
	require.Len(t, state.Links, 1)
	assert.True(t, bool(state.Links[0].Deleted))
}

func TestDelete_NoFormatCheck(t *testing.T) {
	store := storage.NewMemoryStorage()
	created := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(&models.State{
		LastID: 1,
		Links:  []*models.Link{{ID: 1, Code: "legacy-code", URL: "https://a.com", CreatedAt: created}},
	}))
	r := newRegistry(t, store, registry.Options{})

	_, ok := r.Get("legacy-code")
	assert.False(t, ok)

	deleted, err := r.Delete("legacy-code")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDelete_SaveFailureKeepsLink(t *testing.T) {
	store := storage.NewMemoryStorage()
	r := newRegistry(t, store, registry.Options{})

	_, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	store.FailSaves(errors.New("read-only file system"))
	deleted, err := r.Delete("abc123")
	assert.Error(t, err)
	assert.False(t, deleted)

	_, ok := r.Get("abc123")
	assert.True(t, ok)
}

func TestIncrementClick(t *testing.T) {
	clock := newMockClock()
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Clock: clock})

	link, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	const n = 10
	for i := 0; i < n; i++ {
		clock.Advance(time.Minute)
		r.IncrementClick("abc123")

		got, ok := r.Get("abc123")
		require.True(t, ok)
		assert.Equal(t, int64(i+1), got.Clicks)
		require.NotNil(t, got.LastClicked)
		assert.Equal(t, clock.Now(), *got.LastClicked)
		assert.False(t, got.LastClicked.Before(link.CreatedAt))
	}
}

func TestIncrementClick_ClockBehindCreation(t *testing.T) {
	clock := newMockClock()
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{Clock: clock})

	link, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	clock.Advance(-time.Hour)
	r.IncrementClick("abc123")

	got, _ := r.Get("abc123")
	require.NotNil(t, got.LastClicked)
	assert.Equal(t, link.CreatedAt, *got.LastClicked)
}

func TestIncrementClick_UnknownAndDeleted(t *testing.T) {
	store := storage.NewMemoryStorage()
	r := newRegistry(t, store, registry.Options{})

	r.IncrementClick("nothere")
	assert.Equal(t, 0, store.Saves())

	_, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)
	_, err = r.Delete("abc123")
	require.NoError(t, err)

	r.IncrementClick("abc123")
	assert.Equal(t, 2, store.Saves())
	assert.Equal(t, int64(0), r.Snapshot().Links[0].Clicks)
}

func TestIncrementClick_SaveFailureIsSilent(t *testing.T) {
	store := storage.NewMemoryStorage()
	r := newRegistry(t, store, registry.Options{})

	_, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	store.FailSaves(errors.New("disk full"))
	assert.NotPanics(t, func() { r.IncrementClick("abc123") })

	got, _ := r.Get("abc123")
	assert.Equal(t, int64(0), got.Clicks)
	assert.Nil(t, got.LastClicked)
}

func TestIncrementClick_Concurrent(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	_, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	const workers, perWorker = 20, 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				r.IncrementClick("abc123")
			}
		}()
	}
	wg.Wait()

	got, _ := r.Get("abc123")
	assert.Equal(t, int64(workers*perWorker), got.Clicks)
}

func TestPersistence_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data", "tinylink.json")
	clock := newMockClock()

	first := newRegistry(t, storage.NewFileStorage(file), registry.Options{Clock: clock})
	for i := 0; i < 4; i++ {
		clock.Advance(time.Second)
		_, err := first.Create(fmt.Sprintf("https://example.com/%d", i), fmt.Sprintf("code%02d", i))
		require.NoError(t, err)
	}
	clock.Advance(time.Second)
	first.IncrementClick("code01")
	_, err := first.Delete("code02")
	require.NoError(t, err)

	second := newRegistry(t, storage.NewFileStorage(file), registry.Options{Clock: clock})
	assert.Equal(t, first.Snapshot(), second.Snapshot())
	assert.Equal(t, first.List(), second.List())

	link, err := second.Create("https://example.com/next", "")
	require.NoError(t, err)
	assert.Len(t, link.Code, registry.DefaultCodeLength)
	assert.Equal(t, int64(5), second.Snapshot().LastID)
}

func TestNew_CorruptFileStartsEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tinylink.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o644))

	r := newRegistry(t, storage.NewFileStorage(file), registry.Options{})
	assert.Empty(t, r.List())
	assert.Equal(t, int64(0), r.Snapshot().LastID)

	_, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)

	reloaded := newRegistry(t, storage.NewFileStorage(file), registry.Options{})
	_, ok := reloaded.Get("abc123")
	assert.True(t, ok)
}

func TestNew_LoadError(t *testing.T) {
	store := storage.NewMemoryStorage()
	store.FailLoads(errors.New("permission denied"))

	_, err := registry.New(store, registry.Options{})
	assert.Error(t, err)
}

func TestNew_InvalidOptions(t *testing.T) {
	for name, opts := range map[string]registry.Options{
		"short codes":       {CodeLength: 5},
		"long codes":        {CodeLength: 9},
		"negative attempts": {MaxAttempts: -1},
		"symbols":           {Alphabet: "abc-_"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := registry.New(storage.NewMemoryStorage(), opts)
			assert.Error(t, err)
		})
	}
}

func TestScenario(t *testing.T) {
	r := newRegistry(t, storage.NewMemoryStorage(), registry.Options{})

	generated, err := r.Create("https://example.com", "")
	require.NoError(t, err)
	assert.Len(t, generated.Code, 7)
	assert.Equal(t, int64(0), generated.Clicks)

	explicit, err := r.Create("https://a.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", explicit.Code)

	_, err = r.Create("https://b.com", "abc123")
	assert.ErrorIs(t, err, registry.ErrCodeExists)

	_, ok := r.Get(generated.Code)
	require.True(t, ok)
	r.IncrementClick(generated.Code)
	got, _ := r.Get(generated.Code)
	assert.Equal(t, int64(1), got.Clicks)

	deleted, err := r.Delete(generated.Code)
	require.NoError(t, err)
	assert.True(t, deleted)
	_, ok = r.Get(generated.Code)
	assert.False(t, ok)
}
