package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/clothify/catalog-admin/app/api"
	"github.com/clothify/catalog-admin/app/catalog"
	"github.com/clothify/catalog-admin/models"
	"github.com/clothify/catalog-admin/notify"
	"github.com/clothify/catalog-admin/store"
)

// DetailResponse is the product detail view.
type DetailResponse struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	ImportDate  string  `json:"importDate"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// Provider is the slice of the data store the product views need.
type Provider interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, p models.Product) (*models.Product, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type ProductHandler struct {
	store    Provider
	notifier notify.Notifier
}

func NewProductHandler(store Provider, notifier notify.Notifier) *ProductHandler {
	return &ProductHandler{
		store:    store,
		notifier: notifier,
	}
}

// HandleGetProduct serves the detail view for a single product. A missing
// record answers 404 so the caller can navigate back to the list.
func (h *ProductHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.Error(w, http.StatusNotFound, "product not found")
		return
	}

	var (
		product    *models.Product
		categories []models.Category
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		product, err = h.store.GetProduct(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.store.GetAllCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notifier.Error("Product not found.")
			api.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.notifier.Error("Could not load the product. Please try again.")
		api.Error(w, http.StatusBadGateway, "failed to load product")
		return
	}

	resp := DetailResponse{
		ID:          product.ID,
		Code:        product.Code,
		Name:        product.Name,
		ImportDate:  product.ImportDate.Display(),
		Quantity:    product.Quantity,
		Category:    catalog.CategoryName(categories, product.CategoryID),
		Price:       product.Price.InexactFloat64(),
		Description: product.Description,
	}
	if !product.CreatedAt.IsZero() {
		resp.CreatedAt = product.CreatedAt.Format("02/01/2006")
	}

	api.JSON(w, http.StatusOK, resp)
}

// HandleCreate validates a submitted draft and creates the product. The
// store assigns the id.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	product, ok := h.validate(w, r, draft, 0)
	if !ok {
		return
	}

	created, err := h.store.CreateProduct(r.Context(), product)
	if err != nil {
		h.notifier.Error("Failed to create the product. Please try again.")
		api.Error(w, http.StatusBadGateway, "failed to create product")
		return
	}

	h.notifier.Success("Product created.")
	api.JSON(w, http.StatusCreated, created)
}

// HandleUpdate validates a submitted draft and updates the product in
// place. The id is immutable and the product's own code is exempt from the
// uniqueness check.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.Error(w, http.StatusNotFound, "product not found")
		return
	}

	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := h.store.GetProduct(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notifier.Error("Product not found.")
			api.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.notifier.Error("Could not load the product. Please try again.")
		api.Error(w, http.StatusBadGateway, "failed to load product")
		return
	}

	product, ok := h.validate(w, r, draft, id)
	if !ok {
		return
	}
	product.ID = id

	updated, err := h.store.UpdateProduct(r.Context(), id, product)
	if err != nil {
		h.notifier.Error("Failed to update the product. Please try again.")
		api.Error(w, http.StatusBadGateway, "failed to update product")
		return
	}

	h.notifier.Success("Product updated.")
	api.JSON(w, http.StatusOK, updated)
}

// validate runs the two validation phases against the draft and, on
// success, returns the normalized product. It writes the error response
// itself when validation fails.
func (h *ProductHandler) validate(w http.ResponseWriter, r *http.Request, draft Draft, editingID int) (models.Product, bool) {
	// Phase 1: the required-fields gate blocks submission with a generic
	// notice before field-level validation runs.
	if !draft.Complete() {
		h.notifier.Warning("Please fill in all fields.")
		api.Error(w, http.StatusBadRequest, "please fill in all fields")
		return models.Product{}, false
	}

	existing, err := h.store.GetAllProducts(r.Context())
	if err != nil {
		h.notifier.Error("Could not load the product list. Please try again.")
		api.Error(w, http.StatusBadGateway, "failed to load products")
		return models.Product{}, false
	}

	// Phase 2: field-level rules, all collected.
	if errs := Validate(draft, existing, editingID); len(errs) > 0 {
		h.notifier.Error("Please review the submitted fields.")
		api.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": errs,
		})
		return models.Product{}, false
	}

	product, err := Normalize(draft)
	if err != nil {
		api.Error(w, http.StatusBadRequest, err.Error())
		return models.Product{}, false
	}
	return product, true
}
