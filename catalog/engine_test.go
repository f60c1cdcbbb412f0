package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malikdesigner/mobile-sale-store/models"
)

func snapshot() []models.Product {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: "a", Brand: "Apple", Model: "iPhone 13", Price: 900, Rating: 4.8, Featured: true, InStock: true, CreatedAt: base},
		{ID: "b", Brand: "Samsung", Model: "Galaxy S22", Price: 100, Rating: 3.5, InStock: true, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Brand: "Google", Model: "Pixel 7", Price: 500, Rating: 4.2, InStock: false, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestRecomputeDefaultIsNewestFirst(t *testing.T) {
	got := Recompute(snapshot(), "", DefaultFilters(), SortNewest)
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))

	// An unknown key falls back to newest.
	got = Recompute(snapshot(), "", DefaultFilters(), SortKey("bogus"))
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))
}

func TestRecomputeSortOrders(t *testing.T) {
	got := Recompute(snapshot(), "", DefaultFilters(), SortPriceLow)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))

	got = Recompute(snapshot(), "", DefaultFilters(), SortPriceHigh)
	assert.Equal(t, []string{"a", "c", "b"}, ids(got))

	got = Recompute(snapshot(), "", DefaultFilters(), SortRating)
	assert.Equal(t, []string{"a", "c", "b"}, ids(got))

	got = Recompute(snapshot(), "", DefaultFilters(), SortFeatured)
	assert.Equal(t, "a", got[0].ID)
}

func TestRecomputeFiltersBeforeSorting(t *testing.T) {
	filters := DefaultFilters()
	filters.InStock = true

	got := Recompute(snapshot(), "", filters, SortPriceLow)
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestRecomputeSearch(t *testing.T) {
	got := Recompute(snapshot(), "pixel", DefaultFilters(), SortNewest)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestUniqueValuesSortedAndDeduped(t *testing.T) {
	products := snapshot()
	products = append(products, models.Product{ID: "d", Brand: "Apple", Model: "iPhone 13"})

	facets := UniqueValues(products)
	assert.Equal(t, []string{"Apple", "Google", "Samsung"}, facets.Brands)
	assert.Equal(t, []string{"Galaxy S22", "Pixel 7", "iPhone 13"}, facets.Models)

	// Empty fields never become choices.
	assert.Empty(t, facets.Colors)
}

func TestEngineFollowsFeed(t *testing.T) {
	feed := &stubFeed{}
	e := NewEngine().Bind(feed)
	defer e.Close()

	assert.Empty(t, e.Query("", DefaultFilters(), SortNewest))

	feed.publish(snapshot())
	assert.Len(t, e.Query("", DefaultFilters(), SortNewest), 3)

	// A new emission replaces the snapshot wholesale.
	feed.publish(snapshot()[:1])
	assert.Len(t, e.Query("", DefaultFilters(), SortNewest), 1)
	assert.Equal(t, []string{"Apple"}, e.Facets().Brands)
}

func TestEngineCloseDetaches(t *testing.T) {
	feed := &stubFeed{}
	e := NewEngine().Bind(feed)

	feed.publish(snapshot())
	e.Close()
	feed.publish(nil)

	// Nothing listening, so the old snapshot is retained.
	assert.Len(t, e.Snapshot(), 3)
}

type stubFeed struct {
	subs []func([]models.Product)
}

func (f *stubFeed) Subscribe(fn func([]models.Product)) func() {
	f.subs = append(f.subs, fn)
	idx := len(f.subs) - 1
	return func() { f.subs[idx] = nil }
}

func (f *stubFeed) publish(products []models.Product) {
	for _, fn := range f.subs {
		if fn != nil {
			fn(products)
		}
	}
}
