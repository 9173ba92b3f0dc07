package models

import "strings"

// Product is a row of the inventory listing.
type Product struct {
	ProductID          int64   `json:"productId,omitempty"`
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription"`
	ProductCategory    string  `json:"productCategory"`
	CurrentStock       int     `json:"currentStock"`
	MinimumStock       int     `json:"minimunStock"`
	UnitPrice          float64 `json:"unitPrice"`
	LotID              *int64  `json:"lotId,omitempty"`
}

// LowStock reports whether the current stock is at or under the minimum.
func (p Product) LowStock() bool {
	return p.MinimumStock > 0 && p.CurrentStock <= p.MinimumStock
}

type CreateProductRequest struct {
	ProductName        string  `json:"productName" validate:"required,max=40"`
	ProductDescription string  `json:"productDescription,omitempty" validate:"max=200"`
	UnitPrice          float64 `json:"unitPrice" validate:"required,gte=0.01"`
	CategoryID         int64   `json:"categoryId" validate:"required,gte=1"`
	MeasurementID      int64   `json:"measurementId" validate:"required,gte=1"`
	ActualStock        int     `json:"actualStock" validate:"gte=0"`
	MinimumStock       *int    `json:"minimumStock,omitempty" validate:"omitempty,gte=0"`
	LotID              *int64  `json:"lotId,omitempty" validate:"omitempty,gte=1"`
}

// ProductResponse is returned after a product is created or updated.
type ProductResponse struct {
	ProductID          int64   `json:"productId"`
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription"`
	UnitPrice          float64 `json:"unitPrice"`
	CategoryID         int64   `json:"categoryId"`
	MeasurementID      int64   `json:"measurementId"`
	ActualStock        int     `json:"actualStock"`
	MinimumStock       *int    `json:"minimumStock,omitempty"`
	LotID              *int64  `json:"lotId,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

type UpdateProductRequest struct {
	ProductName        string  `json:"productName" validate:"required,max=40"`
	ProductDescription string  `json:"productDescription" validate:"max=200"`
	UnitPrice          float64 `json:"unitPrice" validate:"required,gte=0.01"`
	CategoryID         int64   `json:"categoryId" validate:"required,gte=1"`
}

// Normalize trims the free-text fields the way the edit form does before
// submitting.
func (r *UpdateProductRequest) Normalize() {
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.ProductDescription = strings.TrimSpace(r.ProductDescription)
}

type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type MeasurementType struct {
	MeasurementID   int64  `json:"measurementId"`
	MeasurementName string `json:"measurementName"`
}

// FilterCategories returns the categories whose name contains search,
// case-insensitively. An empty search returns all of them.
func FilterCategories(categories []Category, search string) []Category {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return categories
	}
	var out []Category
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.CategoryName), search) {
			out = append(out, c)
		}
	}
	return out
}
