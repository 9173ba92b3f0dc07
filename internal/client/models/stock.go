package models

type MovementType string

const (
	MovementIn  MovementType = "ENTRADA"
	MovementOut MovementType = "SALIDA"
)

// StockUpdateRequest registers an inbound or outbound stock movement.
type StockUpdateRequest struct {
	ProductID   int64        `json:"productId" validate:"required"`
	LotID       *int64       `json:"lotId"`
	Quantity    int          `json:"quantity" validate:"required,gte=1"`
	ProductCode string       `json:"productCode" validate:"required"`
	UserID      int64        `json:"userId" validate:"required"`
	Type        MovementType `json:"type" validate:"required,oneof=ENTRADA SALIDA"`
}

// NewStockUpdate builds the request from the product found in the lookup step.
func NewStockUpdate(p *Product, quantity int, typ MovementType, userID int64) StockUpdateRequest {
	return StockUpdateRequest{
		ProductID:   p.ProductID,
		LotID:       p.LotID,
		Quantity:    quantity,
		ProductCode: p.ProductCode,
		UserID:      userID,
		Type:        typ,
	}
}
