package catalog

import (
	"sort"
	"strings"

	"github.com/clothify/catalog-admin/models"
)

// DefaultPageSize is the number of products shown per page in the list view.
const DefaultPageSize = 5

// maxVisiblePages is the threshold above which the page window collapses
// ranges into ellipsis markers.
const maxVisiblePages = 5

// UnknownCategory is the display name used when a product references a
// category id that does not resolve. A dangling reference is not an error.
const UnknownCategory = "Unknown"

// Query describes one evaluation of the list view: the active filters and
// the requested page. A zero CategoryID means no category filter.
type Query struct {
	Name       string
	CategoryID int
	Page       int
	PageSize   int
}

// PageEntry is one element of the page-number window. Ellipsis entries are
// placeholders and never a valid page target.
type PageEntry struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Result is a fully computed page of the catalog.
type Result struct {
	Items      []models.Product
	Total      int
	Page       int
	TotalPages int
	Window     []PageEntry
}

// Search filters the product list by the query's name keyword and category,
// sorts the survivors ascending by quantity, and slices out the requested
// page. It never mutates its inputs and an empty result is valid output.
func Search(products []models.Product, q Query) Result {
	filtered := make([]models.Product, 0, len(products))
	keyword := strings.ToLower(q.Name)
	for _, p := range products {
		if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
			continue
		}
		if q.CategoryID != 0 && p.CategoryID != q.CategoryID {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Quantity < filtered[j].Quantity
	})

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Window:     PageWindow(page, totalPages),
	}
}

// PageWindow computes the bounded list of page buttons for navigation.
// With five pages or fewer every page number is emitted; beyond that the
// window keeps the edges reachable and collapses the rest into ellipses.
func PageWindow(current, total int) []PageEntry {
	if total < 1 {
		return nil
	}

	var window []PageEntry
	page := func(n int) { window = append(window, PageEntry{Page: n}) }
	ellipsis := func() { window = append(window, PageEntry{Ellipsis: true}) }

	switch {
	case total <= maxVisiblePages:
		for i := 1; i <= total; i++ {
			page(i)
		}
	case current <= 3:
		for i := 1; i <= 4; i++ {
			page(i)
		}
		ellipsis()
		page(total)
	case current >= total-2:
		page(1)
		ellipsis()
		for i := total - 3; i <= total; i++ {
			page(i)
		}
	default:
		page(1)
		ellipsis()
		for i := current - 1; i <= current+1; i++ {
			page(i)
		}
		ellipsis()
		page(total)
	}

	return window
}

// CategoryName resolves a category id to its display name. Unresolved ids
// map to the UnknownCategory sentinel.
func CategoryName(categories []models.Category, id int) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategory
}
