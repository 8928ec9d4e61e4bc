package catalog

import (
	"context"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/clothify/catalog-admin/app/api"
	"github.com/clothify/catalog-admin/models"
	"github.com/clothify/catalog-admin/notify"
)

type Response struct {
	Products   []Product   `json:"products"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	Pages      []PageEntry `json:"pages"`
}

type Product struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	ImportDate string `json:"importDate"`
	Quantity   int    `json:"quantity"`
	Category   string `json:"category"`
}

// Provider is the slice of the data store the list view needs.
type Provider interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type CatalogHandler struct {
	store    Provider
	notifier notify.Notifier
	pageSize int
}

func NewCatalogHandler(store Provider, notifier notify.Notifier, pageSize int) *CatalogHandler {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &CatalogHandler{
		store:    store,
		notifier: notifier,
		pageSize: pageSize,
	}
}

// HandleGet serves the list view: it loads the full product and category
// lists from the store, runs the query engine over them, and responds with
// the visible page plus pagination metadata.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Filters first, page last: a filter change resets the page, a page
	// param only navigates within unchanged filters.
	state := NewState()
	state.SetNameFilter(r.URL.Query().Get("name"))

	if cStr := r.URL.Query().Get("category"); cStr != "" {
		if c, err := strconv.Atoi(cStr); err == nil && c > 0 {
			state.SetCategoryFilter(c)
		}
	}

	if pStr := r.URL.Query().Get("page"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil {
			state.SetPage(p)
		}
	}

	var (
		products   []models.Product
		categories []models.Category
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		products, err = h.store.GetAllProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.store.GetAllCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.notifier.Error("Could not load the product list. Please try again.")
		api.Error(w, http.StatusBadGateway, "failed to load products")
		return
	}

	res := Search(products, state.Query(h.pageSize))

	rows := make([]Product, len(res.Items))
	for i, p := range res.Items {
		rows[i] = Product{
			ID:         p.ID,
			Code:       p.Code,
			Name:       p.Name,
			ImportDate: p.ImportDate.Display(),
			Quantity:   p.Quantity,
			Category:   CategoryName(categories, p.CategoryID),
		}
	}

	api.JSON(w, http.StatusOK, Response{
		Products:   rows,
		Total:      res.Total,
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Pages:      res.Window,
	})
}
