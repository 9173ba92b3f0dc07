package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Each call is
// counted by name and answers with the configured result.
type fakeClient struct {
	calls map[string]int

	AuthResp *models.AuthResponse
	AuthErr  error

	MessageResp *models.MessageResponse
	MessageErr  error

	Summary *models.DashboardSummary
	Page    *models.Page[models.Product]
	Product *models.Product
	Created *models.ProductResponse
	Cats    []models.Category
	Mts     []models.MeasurementType

	// ListBody is decoded into the out argument of List.
	ListBody string

	Err error

	LastLogin    models.LoginRequest
	LastRegister models.RegisterRequest
	LastChange   models.ChangePasswordRequest
	LastQuery    models.ListQuery
	LastResource models.Resource
	LastStock    models.StockUpdateRequest
	LastUpdateID int64
	LastUpdate   models.UpdateProductRequest
	LastCreate   models.CreateProductRequest
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}}
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.calls["Login"]++
	f.LastLogin = req
	return f.AuthResp, f.AuthErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.calls["Register"]++
	f.LastRegister = req
	return f.AuthResp, f.AuthErr
}

func (f *fakeClient) ForgotPassword(context.Context, models.ForgotPasswordRequest) (*models.MessageResponse, error) {
	f.calls["ForgotPassword"]++
	return f.MessageResp, f.MessageErr
}

func (f *fakeClient) ResetPassword(context.Context, models.ResetPasswordRequest) (*models.MessageResponse, error) {
	f.calls["ResetPassword"]++
	return f.MessageResp, f.MessageErr
}

func (f *fakeClient) ChangePassword(_ context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error) {
	f.calls["ChangePassword"]++
	f.LastChange = req
	return f.MessageResp, f.MessageErr
}

func (f *fakeClient) DashboardSummary(context.Context) (*models.DashboardSummary, error) {
	f.calls["DashboardSummary"]++
	return f.Summary, f.Err
}

func (f *fakeClient) Inventory(_ context.Context, q models.ListQuery) (*models.Page[models.Product], error) {
	f.calls["Inventory"]++
	f.LastQuery = q
	return f.Page, f.Err
}

func (f *fakeClient) ProductByCode(context.Context, string) (*models.Product, error) {
	f.calls["ProductByCode"]++
	return f.Product, f.Err
}

func (f *fakeClient) CreateProduct(_ context.Context, req models.CreateProductRequest) (*models.ProductResponse, error) {
	f.calls["CreateProduct"]++
	f.LastCreate = req
	return f.Created, f.Err
}

func (f *fakeClient) UpdateProduct(_ context.Context, id int64, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	f.calls["UpdateProduct"]++
	f.LastUpdateID, f.LastUpdate = id, req
	return f.Created, f.Err
}

func (f *fakeClient) Categories(context.Context) ([]models.Category, error) {
	f.calls["Categories"]++
	return f.Cats, f.Err
}

func (f *fakeClient) MeasurementTypes(context.Context) ([]models.MeasurementType, error) {
	f.calls["MeasurementTypes"]++
	return f.Mts, f.Err
}

func (f *fakeClient) UpdateStock(_ context.Context, req models.StockUpdateRequest) error {
	f.calls["UpdateStock"]++
	f.LastStock = req
	return f.Err
}

func (f *fakeClient) List(_ context.Context, r models.Resource, q models.ListQuery, out any) error {
	f.calls["List"]++
	f.LastResource, f.LastQuery = r, q
	if f.Err != nil {
		return f.Err
	}
	return json.Unmarshal([]byte(f.ListBody), out)
}

// fakeSession records the transitions requested by the services.
type fakeSession struct {
	valid     bool
	userID    int64
	installed []string
	logouts   int
	setErr    error
}

func (s *fakeSession) SetAuthenticatedUser(_ context.Context, tok string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.installed = append(s.installed, tok)
	s.valid = true
	return nil
}

func (s *fakeSession) Logout(context.Context) {
	s.logouts++
	s.valid = false
}

func (s *fakeSession) IsTokenValid(context.Context) bool { return s.valid }

func (s *fakeSession) UserID() (int64, bool) { return s.userID, s.userID != 0 }
