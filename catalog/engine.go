package catalog

import (
	"sort"
	"sync"

	"github.com/malikdesigner/mobile-sale-store/models"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceHigh SortKey = "priceHigh"
	SortPriceLow  SortKey = "priceLow"
	SortRating    SortKey = "rating"
	SortFeatured  SortKey = "featured"
)

// Recompute derives the visible, ordered product list from one snapshot
// plus the transient inputs. Pure and total: no I/O, no partial failure.
func Recompute(products []models.Product, search string, filters FilterState, key SortKey) []models.Product {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filters.Matches(p, search) {
			visible = append(visible, p)
		}
	}

	switch key {
	case SortPriceHigh:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Price > visible[j].Price })
	case SortPriceLow:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Price < visible[j].Price })
	case SortRating:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Rating > visible[j].Rating })
	case SortFeatured:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Featured && !visible[j].Featured })
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].CreatedAt.After(visible[j].CreatedAt) })
	}
	return visible
}

// Facets holds the distinct non-empty values present in the current
// snapshot for every filterable dimension, sorted ascending. Always
// derived fresh — never carries values from a prior snapshot.
type Facets struct {
	Brands            []string `json:"brands"`
	Models            []string `json:"models"`
	Conditions        []string `json:"conditions"`
	Categories        []string `json:"categories"`
	Colors            []string `json:"colors"`
	Storages          []string `json:"storages"`
	RAMs              []string `json:"rams"`
	OperatingSystems  []string `json:"operatingSystems"`
	ScreenSizes       []string `json:"screenSizes"`
	BatteryCapacities []string `json:"batteryCapacities"`
	CameraMegapixels  []string `json:"cameraMegapixels"`
}

// UniqueValues collects the facet choices offered to the filter UI.
func UniqueValues(products []models.Product) Facets {
	return Facets{
		Brands:            distinct(products, func(p models.Product) string { return p.Brand }),
		Models:            distinct(products, func(p models.Product) string { return p.Model }),
		Conditions:        distinct(products, func(p models.Product) string { return p.Condition }),
		Categories:        distinct(products, func(p models.Product) string { return p.Category }),
		Colors:            distinct(products, func(p models.Product) string { return p.Color }),
		Storages:          distinct(products, func(p models.Product) string { return p.Storage }),
		RAMs:              distinct(products, func(p models.Product) string { return p.RAM }),
		OperatingSystems:  distinct(products, func(p models.Product) string { return p.OperatingSystem }),
		ScreenSizes:       distinct(products, func(p models.Product) string { return p.ScreenSize }),
		BatteryCapacities: distinct(products, func(p models.Product) string { return p.BatteryCapacity }),
		CameraMegapixels:  distinct(products, func(p models.Product) string { return p.CameraMegapixel }),
	}
}

func distinct(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Feed is the live product stream the engine consumes: register a
// snapshot handler, get back a disposer.
type Feed interface {
	Subscribe(fn func([]models.Product)) (unsubscribe func())
}

// Engine holds the latest product snapshot and answers queries against
// it. One engine per service; every query is a full synchronous
// recompute, which is fine at marketplace scale.
type Engine struct {
	mu       sync.RWMutex
	snapshot []models.Product
	unsub    func()
}

func NewEngine() *Engine {
	return &Engine{}
}

// Bind subscribes the engine to a product feed and returns the engine.
// The current snapshot is replaced wholesale on every emission.
func (e *Engine) Bind(feed Feed) *Engine {
	e.unsub = feed.Subscribe(e.SetSnapshot)
	return e
}

// Close detaches the engine from its feed.
func (e *Engine) Close() {
	if e.unsub != nil {
		e.unsub()
		e.unsub = nil
	}
}

func (e *Engine) SetSnapshot(products []models.Product) {
	e.mu.Lock()
	e.snapshot = products
	e.mu.Unlock()
}

// Snapshot returns the products currently held by the engine.
func (e *Engine) Snapshot() []models.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot
}

// Query recomputes the visible list for the given inputs.
func (e *Engine) Query(search string, filters FilterState, key SortKey) []models.Product {
	return Recompute(e.Snapshot(), search, filters, key)
}

// Facets derives the filter choices from the current snapshot.
func (e *Engine) Facets() Facets {
	return UniqueValues(e.Snapshot())
}
