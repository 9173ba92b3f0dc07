package client

import (
	"context"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.MessageResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error)

	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
	Inventory(ctx context.Context, q models.ListQuery) (*models.Page[models.Product], error)
	ProductByCode(ctx context.Context, code string) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.ProductResponse, error)
	Categories(ctx context.Context) ([]models.Category, error)
	MeasurementTypes(ctx context.Context) ([]models.MeasurementType, error)
	UpdateStock(ctx context.Context, req models.StockUpdateRequest) error

	// List fetches one page of resource and decodes it into out, which must
	// point to a models.Page of the matching row type.
	List(ctx context.Context, resource models.Resource, q models.ListQuery, out any) error
}

// ListPage is the typed form of Client.List.
func ListPage[T any](ctx context.Context, c Client, resource models.Resource, q models.ListQuery) (*models.Page[T], error) {
	var page models.Page[T]
	if err := c.List(ctx, resource, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
