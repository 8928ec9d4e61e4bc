package models

// Category is a named product classification. Categories are read-only
// from the admin's perspective.
type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (c *Category) TableName() string {
	return "categories"
}
