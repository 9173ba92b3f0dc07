package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/common"
	"github.com/dmitrijs2005/stockdesk/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventory(c *fakeClient, s *fakeSession) InventoryService {
	return NewInventoryService(c, s, validation.New(), 20)
}

func TestInventoryList_NormalizesQuery(t *testing.T) {
	fc := newFakeClient()
	fc.Page = &models.Page[models.Product]{Data: []models.Product{{ProductCode: "P-1"}}}

	page, err := newInventory(fc, &fakeSession{valid: true}).List(context.Background(), models.ListQuery{Search: " papel "})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, models.ListQuery{Page: 1, Limit: 20, Search: "papel"}, fc.LastQuery)
}

func TestInventory_UnauthorizedEndsSession(t *testing.T) {
	fc := newFakeClient()
	fc.Err = &client.APIError{StatusCode: 401}
	fs := &fakeSession{valid: true}
	svc := newInventory(fc, fs)
	ctx := context.Background()

	_, err := svc.Dashboard(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	_, err = svc.List(ctx, models.ListQuery{})
	require.ErrorIs(t, err, client.ErrUnauthorized)
	_, err = svc.Categories(ctx, "")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	assert.Equal(t, 3, fs.logouts)
}

func TestInventory_OtherErrorsKeepSession(t *testing.T) {
	fc := newFakeClient()
	fc.Err = &client.APIError{StatusCode: 404, Message: "Producto no encontrado"}
	fs := &fakeSession{valid: true}

	_, err := newInventory(fc, fs).ProductByCode(context.Background(), "P-404")
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Zero(t, fs.logouts)
}

func TestProductByCode_EmptyCode(t *testing.T) {
	fc := newFakeClient()

	_, err := newInventory(fc, &fakeSession{}).ProductByCode(context.Background(), "  ")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Zero(t, fc.calls["ProductByCode"])
}

func TestCreateProduct(t *testing.T) {
	fc := newFakeClient()
	fc.Created = &models.ProductResponse{ProductID: 11, ProductCode: "P-011"}
	svc := newInventory(fc, &fakeSession{valid: true})
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, models.CreateProductRequest{ProductName: "", UnitPrice: 0})
	require.Error(t, err)
	assert.Zero(t, fc.calls["CreateProduct"])

	resp, err := svc.CreateProduct(ctx, models.CreateProductRequest{
		ProductName: " Tóner HP 12A ", UnitPrice: 89.9, CategoryID: 3, MeasurementID: 1, ActualStock: 18,
	})
	require.NoError(t, err)
	assert.Equal(t, "P-011", resp.ProductCode)
	assert.Equal(t, "Tóner HP 12A", fc.LastCreate.ProductName)
}

func TestUpdateProduct_TrimsAndValidates(t *testing.T) {
	fc := newFakeClient()
	fc.Created = &models.ProductResponse{ProductID: 5}
	svc := newInventory(fc, &fakeSession{valid: true})

	_, err := svc.UpdateProduct(context.Background(), 5, models.UpdateProductRequest{
		ProductName: "  Clips  ", ProductDescription: " caja x100 ", UnitPrice: 2.5, CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), fc.LastUpdateID)
	assert.Equal(t, "Clips", fc.LastUpdate.ProductName)
	assert.Equal(t, "caja x100", fc.LastUpdate.ProductDescription)

	_, err = svc.UpdateProduct(context.Background(), 5, models.UpdateProductRequest{ProductName: "Clips", UnitPrice: 0.001, CategoryID: 1})
	require.Error(t, err)
	assert.Equal(t, 1, fc.calls["UpdateProduct"])
}

func TestCategories_Filter(t *testing.T) {
	fc := newFakeClient()
	fc.Cats = []models.Category{{CategoryID: 1, CategoryName: "Papelería"}, {CategoryID: 2, CategoryName: "Limpieza"}}

	cats, err := newInventory(fc, &fakeSession{valid: true}).Categories(context.Background(), "limp")
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{CategoryID: 2, CategoryName: "Limpieza"}}, cats)
}

func TestMeasurementTypes(t *testing.T) {
	fc := newFakeClient()
	fc.Mts = []models.MeasurementType{{MeasurementID: 1, MeasurementName: "Unidad"}}

	mts, err := newInventory(fc, &fakeSession{valid: true}).MeasurementTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fc.Mts, mts)
}

func TestUpdateStock(t *testing.T) {
	lot := int64(4)
	product := &models.Product{ProductID: 9, ProductCode: "P-9", LotID: &lot}

	t.Run("requires user id", func(t *testing.T) {
		fc := newFakeClient()
		err := newInventory(fc, &fakeSession{valid: true}).UpdateStock(context.Background(), product, 3, models.MovementIn)
		require.ErrorIs(t, err, common.ErrMissingUserID)
		assert.Zero(t, fc.calls["UpdateStock"])
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		fc := newFakeClient()
		err := newInventory(fc, &fakeSession{valid: true, userID: 7}).UpdateStock(context.Background(), product, 0, models.MovementIn)
		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Zero(t, fc.calls["UpdateStock"])
	})

	t.Run("sends movement", func(t *testing.T) {
		fc := newFakeClient()
		err := newInventory(fc, &fakeSession{valid: true, userID: 7}).UpdateStock(context.Background(), product, 3, models.MovementOut)
		require.NoError(t, err)
		assert.Equal(t, models.StockUpdateRequest{
			ProductID: 9, LotID: &lot, Quantity: 3, ProductCode: "P-9", UserID: 7, Type: models.MovementOut,
		}, fc.LastStock)
	})
}
