package catalog_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mealdeck/internal/catalog"
	"mealdeck/internal/domain"
	"mealdeck/internal/eventbus"
	"mealdeck/internal/mealdb"
	"mealdeck/internal/mealdb/mealdbtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

func names(meals []domain.Meal) []string {
	out := make([]string, len(meals))
	for i, m := range meals {
		out[i] = m.Name
	}
	return out
}

// newFixture serves letters a (two meals), b (one meal) and c (two meals)
func newFixture(t *testing.T) *mealdbtest.Server {
	t.Helper()
	srv := mealdbtest.NewServer()
	t.Cleanup(srv.Close)
	srv.SetLetter("a", mealdbtest.Record("1", "Apam balik", "Malaysian"), mealdbtest.Record("2", "Aloo Gobi", "Indian"))
	srv.SetLetter("b", mealdbtest.Record("3", "Butter Chicken", "Indian"))
	srv.SetLetter("c", mealdbtest.Record("4", "Carbonara", "Italian"), mealdbtest.Record("5", "Chicken Handi", "Indian"))
	return srv
}

func newStore(srv *mealdbtest.Server, opts ...catalog.Option) *catalog.Store {
	base := []catalog.Option{
		catalog.WithRatings(catalog.FixedRating(3)),
		catalog.WithLetters([]string{"a", "b"}, []string{"a", "b", "c", "d"}),
	}
	return catalog.New(mealdb.NewHTTPClient(srv.URL), append(base, opts...)...)
}

func TestLoadInitialReplacesCatalog(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	ctx := context.Background()

	assert.False(t, store.InitialLoaded())
	require.NoError(t, store.LoadInitial(ctx))

	assert.True(t, store.InitialLoaded())
	assert.Equal(t, []string{"Apam balik", "Aloo Gobi", "Butter Chicken"}, names(store.Catalog()))
	assert.Equal(t, store.Catalog(), store.View())
	for _, m := range store.Catalog() {
		assert.Equal(t, 3, m.Rating)
	}
	assert.Equal(t, []string{"f=a", "f=b"}, srv.Requests())

	// A second call overwrites rather than appends
	require.NoError(t, store.LoadInitial(ctx))
	assert.Len(t, store.Catalog(), 3)
}

func TestLoadInitialFailureLeavesStateUnchanged(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))
	before := store.Catalog()

	srv.Fail("f=b", http.StatusBadGateway)
	err := store.LoadInitial(ctx)
	require.Error(t, err)
	assert.True(t, mealdb.IsNetwork(err))
	assert.Equal(t, before, store.Catalog())
	assert.Equal(t, before, store.View())
	assert.ErrorIs(t, store.LastError(catalog.OpLoadInitial), err)
}

func TestLoadRemainingAppendsAndResetsView(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))

	store.SetAreaFilter("Indian")
	require.Len(t, store.View(), 2)

	report, err := store.LoadRemaining(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, report.Letters)
	assert.Equal(t, 2, report.Added)
	assert.Empty(t, report.Failed)

	want := []string{"Apam balik", "Aloo Gobi", "Butter Chicken", "Carbonara", "Chicken Handi"}
	assert.Equal(t, want, names(store.Catalog()))
	// The append path mirrors the full catalog and does not reapply the area
	assert.Equal(t, want, names(store.View()))
	assert.Equal(t, "Indian", store.SelectedArea())
}

func TestLoadRemainingContinuesOnError(t *testing.T) {
	srv := newFixture(t)
	srv.SetLetter("d", mealdbtest.Record("6", "Dal fry", "Indian"))
	srv.Fail("f=c", http.StatusInternalServerError)

	store := newStore(srv)
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))

	report, err := store.LoadRemaining(ctx)
	require.Error(t, err)
	assert.Contains(t, report.Failed, "c")
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, []string{"Apam balik", "Aloo Gobi", "Butter Chicken", "Dal fry"}, names(store.Catalog()))
	assert.Error(t, store.LastError(catalog.OpLoadRemaining))
	assert.Equal(t, []string{"f=a", "f=b", "f=c", "f=d"}, srv.Requests())
}

func TestLoadRemainingConcurrentMatchesSequential(t *testing.T) {
	srv := newFixture(t)
	alphabet := []string{"a", "b", "c", "d", "e", "f", "g"}
	srv.SetLetter("e", mealdbtest.Record("7", "Eton Mess", "British"))
	srv.SetLetter("g", mealdbtest.Record("8", "Garides Saganaki", "Greek"), mealdbtest.Record("9", "Gumbo", "American"))
	srv.Fail("f=f", http.StatusServiceUnavailable)
	ctx := context.Background()

	load := func(concurrency int) (*catalog.Store, catalog.LoadReport) {
		store := newStore(srv,
			catalog.WithLetters([]string{"a", "b"}, alphabet),
			catalog.WithRatings(catalog.Sequence(1, 2, 3, 4, 5)),
			catalog.WithConcurrency(concurrency))
		require.NoError(t, store.LoadInitial(ctx))
		report, err := store.LoadRemaining(ctx)
		require.Error(t, err)
		return store, report
	}

	seq, seqReport := load(1)
	par, parReport := load(4)

	assert.Equal(t, seq.Catalog(), par.Catalog())
	assert.Equal(t, seq.View(), par.View())
	assert.Equal(t, seqReport.Added, parReport.Added)
	assert.Equal(t, []string{"f"}, keys(parReport.Failed))
}

func keys(m map[string]error) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestLoadRemainingStopsOnCancel(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	require.NoError(t, store.LoadInitial(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.LoadRemaining(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, store.Catalog(), 3)
}

func TestSearchByName(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))
	_, err := store.LoadRemaining(ctx)
	require.NoError(t, err)

	store.SetAreaFilter("Italian")
	store.SearchByName("chicken")
	// Search bypasses the selected area
	assert.Equal(t, []string{"Butter Chicken", "Chicken Handi"}, names(store.View()))

	store.SearchByName("")
	assert.Equal(t, store.Catalog(), store.View())
}

func TestComposedSearchNarrowsFilteredView(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv, catalog.WithComposedSearch(true))
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))
	_, err := store.LoadRemaining(ctx)
	require.NoError(t, err)

	store.SetAreaFilter("Indian")
	store.SetSortOption(domain.SortAlphaDesc)
	store.SearchByName("chicken")
	assert.Equal(t, []string{"Chicken Handi", "Butter Chicken"}, names(store.View()))

	// Filters keep the query applied
	store.SetSortOption(domain.SortAlphaAsc)
	assert.Equal(t, []string{"Butter Chicken", "Chicken Handi"}, names(store.View()))

	store.SearchByName("")
	assert.Equal(t, []string{"Aloo Gobi", "Butter Chicken", "Chicken Handi"}, names(store.View()))
}

func TestAreaThenSortAlphaAsc(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))
	_, err := store.LoadRemaining(ctx)
	require.NoError(t, err)

	store.SetAreaFilter("Indian")
	store.SetSortOption(domain.SortAlphaAsc)

	view := store.View()
	assert.Equal(t, []string{"Aloo Gobi", "Butter Chicken", "Chicken Handi"}, names(view))
	for _, m := range view {
		assert.Equal(t, "Indian", m.Area)
	}
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv, catalog.WithRatings(catalog.Sequence(5, 1, 3, 3, 2)))
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))
	_, err := store.LoadRemaining(ctx)
	require.NoError(t, err)

	for _, option := range domain.SortOptions {
		store.SetSortOption(option)
		first := store.View()
		store.ApplyFilters()
		assert.Equal(t, first, store.View(), option)
	}
}

func TestRatingDescStability(t *testing.T) {
	srv := mealdbtest.NewServer()
	t.Cleanup(srv.Close)
	srv.SetLetter("a", mealdbtest.Record("1", "B", "X"), mealdbtest.Record("2", "A", "X"), mealdbtest.Record("3", "C", "X"))

	store := newStore(srv, catalog.WithRatings(catalog.Sequence(2, 5, 2)))
	require.NoError(t, store.LoadInitial(context.Background()))

	store.SetSortOption(domain.SortRatingDesc)
	view := store.View()
	assert.Equal(t, []string{"A", "B", "C"}, names(view))
	assert.Equal(t, []int{5, 2, 2}, []int{view[0].Rating, view[1].Rating, view[2].Rating})
}

func TestLoadAreasKeepsDuplicates(t *testing.T) {
	srv := mealdbtest.NewServer()
	t.Cleanup(srv.Close)
	srv.SetAreas("Indian", "Indian", "Italian")
	store := newStore(srv)

	require.NoError(t, store.LoadAreas(context.Background()))
	assert.Equal(t, []string{"Indian", "Indian", "Italian"}, store.Areas())

	srv.Fail("a=list", http.StatusInternalServerError)
	require.Error(t, store.LoadAreas(context.Background()))
	assert.Equal(t, []string{"Indian", "Indian", "Italian"}, store.Areas())
	assert.Error(t, store.LastError(catalog.OpLoadAreas))
}

func TestDetailStateMachine(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv, catalog.WithRatings(catalog.Sequence(4, 1, 1, 2)))
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))

	// Closed initially
	assert.False(t, store.IsDetailOpen())
	_, ok := store.SelectedDetail()
	assert.False(t, ok)

	// Invalid id: stays closed
	err := store.LoadMealDetail(ctx, "999")
	assert.ErrorIs(t, err, mealdb.ErrEmptyResult)
	assert.False(t, store.IsDetailOpen())
	assert.Error(t, store.LastError(catalog.OpLoadMealDetail))

	// Valid id: opens, keeping the catalog rating
	require.NoError(t, store.LoadMealDetail(ctx, "1"))
	assert.True(t, store.IsDetailOpen())
	detail, ok := store.SelectedDetail()
	require.True(t, ok)
	assert.Equal(t, "Apam balik", detail.Name)
	assert.Equal(t, 4, detail.Rating)
	assert.NoError(t, store.LastError(catalog.OpLoadMealDetail))

	// Failure while open leaves the open detail untouched
	srv.Fail("i=2", http.StatusInternalServerError)
	require.Error(t, store.LoadMealDetail(ctx, "2"))
	detail, _ = store.SelectedDetail()
	assert.Equal(t, "1", detail.ID)

	// Close, then close again
	store.CloseDetail()
	assert.False(t, store.IsDetailOpen())
	_, ok = store.SelectedDetail()
	assert.False(t, ok)
	store.CloseDetail()
	assert.False(t, store.IsDetailOpen())
}

func TestStorePublishesEvents(t *testing.T) {
	srv := newFixture(t)
	bus := eventbus.New(nil)
	defer bus.Close()

	got := make(chan domain.DomainEvent, 16)
	for _, et := range []domain.EventType{domain.EventCatalogReplaced, domain.EventDetailOpened, domain.EventLoadFailed} {
		bus.Subscribe(et, func(e domain.DomainEvent) { got <- e })
	}

	store := newStore(srv, catalog.WithBus(bus))
	ctx := context.Background()
	require.NoError(t, store.LoadInitial(ctx))
	require.NoError(t, store.LoadMealDetail(ctx, "3"))
	require.Error(t, store.LoadMealDetail(ctx, "nope"))

	seen := map[domain.EventType]bool{}
	timeout := time.After(2 * time.Second)
	for len(seen) < 3 {
		select {
		case e := <-got:
			seen[e.Type()] = true
		case <-timeout:
			t.Fatalf("missing events, saw %v", seen)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	srv := newFixture(t)
	store := newStore(srv)
	require.NoError(t, store.LoadInitial(context.Background()))

	view := store.View()
	view[0].Name = "changed"
	assert.NotEqual(t, "changed", store.View()[0].Name)
}
