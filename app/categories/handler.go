package categories

import (
	"context"
	"net/http"

	"github.com/clothify/catalog-admin/app/api"
	"github.com/clothify/catalog-admin/models"
)

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryProvider is the read-only category surface of the data store.
// Categories have no create, update or delete surface in the admin.
type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	store CategoryProvider
}

func NewCategoryHandler(store CategoryProvider) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.GetAllCategories(r.Context())
	if err != nil {
		api.Error(w, http.StatusBadGateway, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:   c.ID,
			Name: c.Name,
		}
	}

	api.JSON(w, http.StatusOK, response)
}
