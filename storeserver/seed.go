package storeserver

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/clothify/catalog-admin/models"
)

// Seed populates an empty store with a starting set of categories and
// products. Existing data is left alone.
func Seed(db *gorm.DB) {
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		log.Println("Seeding categories...")
		categories := []models.Category{
			{Name: "Shirts"},
			{Name: "Trousers"},
			{Name: "Jackets"},
			{Name: "Dresses"},
			{Name: "Accessories"},
		}
		for i := range categories {
			if err := db.Create(&categories[i]).Error; err != nil {
				log.Printf("Failed to seed category %s: %v", categories[i].Name, err)
			}
		}
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount == 0 {
		log.Println("Seeding products...")
		products := []models.Product{
			{Code: "SP001", Name: "Linen Shirt", ImportDate: models.NewDate(2024, time.March, 12), Quantity: 40, CategoryID: 1, Price: decimal.NewFromFloat(24.90)},
			{Code: "SP002", Name: "Oxford Shirt", ImportDate: models.NewDate(2024, time.April, 2), Quantity: 25, CategoryID: 1, Price: decimal.NewFromFloat(29.50)},
			{Code: "SP003", Name: "Chino Trousers", ImportDate: models.NewDate(2024, time.April, 18), Quantity: 60, CategoryID: 2, Price: decimal.NewFromFloat(39.00)},
			{Code: "SP004", Name: "Denim Jacket", ImportDate: models.NewDate(2024, time.May, 5), Quantity: 12, CategoryID: 3, Price: decimal.NewFromFloat(59.90), Description: "Classic fit denim jacket"},
			{Code: "SP005", Name: "Summer Dress", ImportDate: models.NewDate(2024, time.May, 21), Quantity: 33, CategoryID: 4, Price: decimal.NewFromFloat(44.00)},
			{Code: "SP006", Name: "Leather Belt", ImportDate: models.NewDate(2024, time.June, 9), Quantity: 80, CategoryID: 5, Price: decimal.NewFromFloat(15.00)},
		}
		for i := range products {
			if err := db.Create(&products[i]).Error; err != nil {
				log.Printf("Failed to seed product %s: %v", products[i].Code, err)
			}
		}
	}
}
