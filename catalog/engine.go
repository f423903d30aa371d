// Package catalog implements the storefront's query engine: pure
// filtering, sorting and facet derivation over the full product list.
package catalog

import (
	"math"
	"sort"
	"strings"

	"faithshop/models"
)

// FacetAll is the reserved filter value meaning "no constraint".
const FacetAll = "All"

// Sort keys accepted by FilterAndSort. Anything else falls back to SortByName.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
)

// Spec is a filter/sort specification, passed by value into the engine.
type Spec struct {
	Search      string
	Category    string
	Brand       string
	PriceMin    float64
	PriceMax    float64
	InStockOnly bool
	Sort        string
}

// DefaultSpec returns the identity specification: every product passes
// and results come back name-sorted.
func DefaultSpec() Spec {
	return Spec{
		Category: FacetAll,
		Brand:    FacetAll,
		PriceMax: math.Inf(1),
		Sort:     SortByName,
	}
}

// FilterAndSort returns the subset of products matching every predicate
// of the spec, stably sorted by the spec's sort key. The input slice is
// never modified. Inverted price bounds simply yield an empty result.
func FilterAndSort(products []models.Product, spec Spec) []models.Product {
	out := make([]models.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if spec.Category != FacetAll && spec.Category != "" && p.Category != spec.Category {
			continue
		}
		if spec.Brand != FacetAll && spec.Brand != "" && p.Brand != spec.Brand {
			continue
		}
		if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
			continue
		}
		if spec.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	// Ties keep input order so re-filtering after a mutation does not
	// visibly reorder unrelated items.
	switch spec.Sort {
	case SortByPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return lessName(out[i].Name, out[j].Name) })
	}

	return out
}

func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// DistinctCategories returns "All" followed by every distinct category
// in first-occurrence order. Category is a required field, so unlike
// brands no emptiness filter is applied.
func DistinctCategories(products []models.Product) []string {
	return distinct(products, false, func(p models.Product) string { return p.Category })
}

// DistinctBrands returns "All" followed by every distinct non-empty
// brand in first-occurrence order.
func DistinctBrands(products []models.Product) []string {
	return distinct(products, true, func(p models.Product) string { return p.Brand })
}

func distinct(products []models.Product, skipEmpty bool, key func(models.Product) string) []string {
	out := []string{FacetAll}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		v := key(p)
		if skipEmpty && v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
