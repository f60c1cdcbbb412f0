package catalog

import (
	"strings"

	"github.com/malikdesigner/mobile-sale-store/models"
)

// PriceCeiling is the "no upper bound" sentinel: a range whose Max sits
// at the ceiling is treated as open-ended.
const PriceCeiling = 2000

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState is the active filter configuration. Every set-typed field
// defaults empty, which means unconstrained — an empty set never excludes
// anything. Model and color match by substring; every other set matches
// exactly.
type FilterState struct {
	Brands            []string   `json:"brands"`
	PriceRange        PriceRange `json:"priceRange"`
	Models            []string   `json:"models"`
	Conditions        []string   `json:"conditions"`
	Categories        []string   `json:"categories"`
	Colors            []string   `json:"colors"`
	Storages          []string   `json:"storages"`
	RAMs              []string   `json:"rams"`
	OperatingSystems  []string   `json:"operatingSystems"`
	ScreenSizes       []string   `json:"screenSizes"`
	BatteryCapacities []string   `json:"batteryCapacities"`
	CameraMegapixels  []string   `json:"cameraMegapixels"`
	Rating            float64    `json:"rating"`
	Featured          bool       `json:"featured"`
	InStock           bool       `json:"inStock"`
}

// DefaultFilters is the no-op configuration: everything unconstrained.
func DefaultFilters() FilterState {
	return FilterState{PriceRange: PriceRange{Min: 0, Max: PriceCeiling}}
}

// ActiveCount is the filter badge count: one per selected set member,
// plus one each for a rating floor, featured, in-stock, and a narrowed
// price range.
func (f FilterState) ActiveCount() int {
	count := len(f.Brands) + len(f.Models) + len(f.Conditions) +
		len(f.Categories) + len(f.Colors) + len(f.Storages) +
		len(f.RAMs) + len(f.OperatingSystems) + len(f.ScreenSizes) +
		len(f.BatteryCapacities) + len(f.CameraMegapixels)
	if f.Rating > 0 {
		count++
	}
	if f.Featured {
		count++
	}
	if f.InStock {
		count++
	}
	if f.PriceRange.Min > 0 || f.PriceRange.Max < PriceCeiling {
		count++
	}
	return count
}

// Matches applies every clause AND-ed against one product.
func (f FilterState) Matches(p models.Product, search string) bool {
	if !matchesSearch(p, search) {
		return false
	}
	if !matchExact(f.Brands, p.Brand) {
		return false
	}
	if p.Price < f.PriceRange.Min {
		return false
	}
	if f.PriceRange.Max != PriceCeiling && p.Price > f.PriceRange.Max {
		return false
	}
	if !matchSubstring(f.Models, p.Model) {
		return false
	}
	if !matchExact(f.Conditions, p.Condition) {
		return false
	}
	if !matchExact(f.Categories, p.Category) {
		return false
	}
	if !matchSubstring(f.Colors, p.Color) {
		return false
	}
	if !matchExact(f.Storages, p.Storage) {
		return false
	}
	if !matchExact(f.RAMs, p.RAM) {
		return false
	}
	if !matchExact(f.OperatingSystems, p.OperatingSystem) {
		return false
	}
	if !matchExact(f.ScreenSizes, p.ScreenSize) {
		return false
	}
	if !matchExact(f.BatteryCapacities, p.BatteryCapacity) {
		return false
	}
	if !matchExact(f.CameraMegapixels, p.CameraMegapixel) {
		return false
	}
	if f.Rating > 0 && p.Rating < f.Rating {
		return false
	}
	if f.Featured && !p.Featured {
		return false
	}
	if f.InStock && !p.InStock {
		return false
	}
	return true
}

func matchesSearch(p models.Product, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{p.Name, p.Brand, p.Description, p.Model, p.Category, p.OperatingSystem} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchExact(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// matchSubstring is the fuzzy variant used for model and color: the
// product field only has to contain one of the selected values.
func matchSubstring(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	lowered := strings.ToLower(value)
	for _, s := range set {
		if strings.Contains(lowered, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
