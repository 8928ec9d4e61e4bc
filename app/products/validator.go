package products

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/clothify/catalog-admin/models"
)

const maxNameLength = 100

// Draft is the untyped, string-valued form representation of a product.
// It is what the form submits; the validator is the only boundary that
// converts it into a domain Product.
type Draft struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ImportDate  string `json:"importDate"`
	Quantity    string `json:"quantity"`
	CategoryID  string `json:"categoryId"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Complete reports whether all required fields are present. This is the
// precondition gate: an incomplete draft blocks submission with a single
// generic notice before any field-level validation runs.
func (d Draft) Complete() bool {
	return d.Code != "" && d.Name != "" && d.ImportDate != "" &&
		d.Quantity != "" && d.CategoryID != ""
}

// FieldErrors maps a field name to its validation message. An empty map
// means the draft is valid.
type FieldErrors map[string]string

// Validate checks every field rule independently and collects all errors.
// The uniqueness check exempts the product identified by editingID (0 when
// creating). Validate never fails for expected conditions; it returns a
// structured result.
func Validate(d Draft, existing []models.Product, editingID int) FieldErrors {
	errs := FieldErrors{}

	for _, p := range existing {
		if strings.EqualFold(p.Code, d.Code) && p.ID != editingID {
			errs["code"] = "A product with this code already exists. Please choose another."
			break
		}
	}

	if utf8.RuneCountInString(d.Name) > maxNameLength {
		errs["name"] = fmt.Sprintf("Name must be at most %d characters.", maxNameLength)
	}

	if date, err := models.ParseDate(d.ImportDate); err != nil {
		errs["importDate"] = "Import date must be a valid date (yyyy-mm-dd)."
	} else if date.After(models.Today()) {
		errs["importDate"] = "Import date cannot be in the future."
	}

	// Non-integer strings such as "3.5" are rejected outright rather than
	// truncated.
	if qty, err := strconv.Atoi(d.Quantity); err != nil || qty <= 0 {
		errs["quantity"] = "Quantity must be a positive integer."
	}

	if d.Price != "" {
		if price, err := decimal.NewFromString(d.Price); err != nil || price.IsNegative() {
			errs["price"] = "Price must be a non-negative number."
		}
	}

	return errs
}

// Normalize converts a validated draft into a domain Product, coercing the
// string-typed fields to their domain types. The id is left unset; the
// store assigns it on create.
func Normalize(d Draft) (models.Product, error) {
	quantity, err := strconv.Atoi(d.Quantity)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid quantity %q: %w", d.Quantity, err)
	}

	categoryID, err := strconv.Atoi(d.CategoryID)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid category id %q: %w", d.CategoryID, err)
	}

	importDate, err := models.ParseDate(d.ImportDate)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid import date %q: %w", d.ImportDate, err)
	}

	price := decimal.Zero
	if d.Price != "" {
		price, err = decimal.NewFromString(d.Price)
		if err != nil {
			return models.Product{}, fmt.Errorf("invalid price %q: %w", d.Price, err)
		}
	}

	return models.Product{
		Code:        d.Code,
		Name:        d.Name,
		ImportDate:  importDate,
		Quantity:    quantity,
		CategoryID:  categoryID,
		Price:       price,
		Description: d.Description,
	}, nil
}
