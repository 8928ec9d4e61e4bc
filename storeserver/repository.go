package storeserver

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clothify/catalog-admin/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *Repository) GetProduct(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *Repository) CreateProduct(p *models.Product) error {
	p.ID = 0 // the store assigns ids
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces the mutable fields of an existing product. The id
// is immutable.
func (r *Repository) UpdateProduct(id int, p *models.Product) error {
	existing, err := r.GetProduct(id)
	if err != nil {
		return err
	}

	existing.Code = p.Code
	existing.Name = p.Name
	existing.ImportDate = p.ImportDate
	existing.Quantity = p.Quantity
	existing.CategoryID = p.CategoryID
	existing.Price = p.Price
	existing.Description = p.Description

	if err := r.db.Save(existing).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	*p = *existing
	return nil
}

func (r *Repository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
