package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/common"
)

// InventoryService covers the dashboard, the product catalogue and stock
// movements. Every call requires a signed-in user; a 401 ends the session.
type InventoryService interface {
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	List(ctx context.Context, q models.ListQuery) (*models.Page[models.Product], error)
	ProductByCode(ctx context.Context, code string) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.ProductResponse, error)
	Categories(ctx context.Context, search string) ([]models.Category, error)
	MeasurementTypes(ctx context.Context) ([]models.MeasurementType, error)
	UpdateStock(ctx context.Context, p *models.Product, quantity int, typ models.MovementType) error
}

type inventoryService struct {
	client    client.Client
	session   SessionStore
	validator Validator
	pageSize  int
}

func NewInventoryService(c client.Client, s SessionStore, v Validator, pageSize int) InventoryService {
	return &inventoryService{client: c, session: s, validator: v, pageSize: pageSize}
}

func (i *inventoryService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	sum, err := i.client.DashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", endOnUnauthorized(ctx, i.session, err))
	}
	return sum, nil
}

func (i *inventoryService) List(ctx context.Context, q models.ListQuery) (*models.Page[models.Product], error) {
	page, err := i.client.Inventory(ctx, q.Normalize(i.pageSize))
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", endOnUnauthorized(ctx, i.session, err))
	}
	return page, nil
}

func (i *inventoryService) ProductByCode(ctx context.Context, code string) (*models.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("product code: %w", common.ErrorNotFound)
	}
	p, err := i.client.ProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", code, endOnUnauthorized(ctx, i.session, err))
	}
	return p, nil
}

func (i *inventoryService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.ProductDescription = strings.TrimSpace(req.ProductDescription)
	if err := i.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := i.client.CreateProduct(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", endOnUnauthorized(ctx, i.session, err))
	}
	return resp, nil
}

func (i *inventoryService) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	req.Normalize()
	if err := i.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := i.client.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, endOnUnauthorized(ctx, i.session, err))
	}
	return resp, nil
}

// Categories returns the categories whose name contains search.
func (i *inventoryService) Categories(ctx context.Context, search string) ([]models.Category, error) {
	cats, err := i.client.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", endOnUnauthorized(ctx, i.session, err))
	}
	return models.FilterCategories(cats, search), nil
}

func (i *inventoryService) MeasurementTypes(ctx context.Context) ([]models.MeasurementType, error) {
	mts, err := i.client.MeasurementTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("measurement types: %w", endOnUnauthorized(ctx, i.session, err))
	}
	return mts, nil
}

// UpdateStock records a movement for p on behalf of the signed-in user.
func (i *inventoryService) UpdateStock(ctx context.Context, p *models.Product, quantity int, typ models.MovementType) error {
	userID, ok := i.session.UserID()
	if !ok {
		return common.ErrMissingUserID
	}

	req := models.NewStockUpdate(p, quantity, typ, userID)
	if err := i.validator.Validate(req); err != nil {
		return err
	}

	if err := i.client.UpdateStock(ctx, req); err != nil {
		return fmt.Errorf("update stock: %w", endOnUnauthorized(ctx, i.session, err))
	}
	return nil
}
