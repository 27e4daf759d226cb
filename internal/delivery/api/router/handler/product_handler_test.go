package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	mockUsecase "inventory/internal/mocks/usecase"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho(principal)
	e.GET("/products", h.ListProducts)
	e.GET("/products/mine", h.MyProducts)
	e.GET("/products/:id", h.GetProduct)
	e.POST("/products", h.CreateProduct)
	e.PUT("/products/:id", h.UpdateProduct)
	e.DELETE("/products/:id", h.DeleteProduct)

	return e, productUC
}

func testSeller() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}
}

func TestProductHandler_ListProducts(t *testing.T) {
	e, productUC := createTestProductHandler(t, entity.Principal{})
	product := &entity.Product{
		ID:            uuid.New(),
		Title:         "Kettle",
		Category:      "Kitchen",
		Price:         decimal.RequireFromString("19.90"),
		Stock:         4,
		OwnerID:       uuid.New(),
		OwnerUsername: "shop",
		IsActive:      true,
	}
	productUC.EXPECT().ListPublic(mock.Anything).Return([]*entity.Product{product}, nil)

	rec := doRequest(e, http.MethodGet, "/products", "")

	assertStatus(t, rec, http.StatusOK)

	var resp []ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Kettle", resp[0].Title)
	assert.Equal(t, "shop", resp[0].OwnerUsername)
	assert.True(t, product.Price.Equal(resp[0].Price))
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		e, productUC := createTestProductHandler(t, entity.Principal{})
		id := uuid.New()
		productUC.EXPECT().GetPublic(mock.Anything, id).Return(nil, domainerrors.ErrCatalogProductNotFound)

		rec := doRequest(e, http.MethodGet, "/products/"+id.String(), "")

		assertStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, domainerrors.ErrCatalogProductNotFound.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := createTestProductHandler(t, entity.Principal{})

		rec := doRequest(e, http.MethodGet, "/products/abc", "")

		assertStatus(t, rec, http.StatusNotFound)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	seller := testSeller()
	e, productUC := createTestProductHandler(t, seller)
	created := &entity.Product{ID: uuid.New(), Title: "Lamp", Category: "Home", Price: decimal.RequireFromString("12.5"), OwnerID: seller.UserID, IsActive: true}

	productUC.EXPECT().
		Create(mock.Anything, seller, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Title == "Lamp" && in.Price.Equal(decimal.RequireFromString("12.5")) && in.Stock == 3
		})).
		Return(created, nil)

	rec := doRequest(e, http.MethodPost, "/products", `{"title":"Lamp","category":"Home","price":12.5,"stock":3}`)

	assertStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "/products/"+created.ID.String(), rec.Header().Get(echo.HeaderLocation))
}

func TestProductHandler_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"category":"Home","price":1,"stock":1}`},
		{"negative price", `{"title":"x","category":"Home","price":-1,"stock":1}`},
		{"negative stock", `{"title":"x","category":"Home","price":1,"stock":-2}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestProductHandler(t, testSeller())

			rec := doRequest(e, http.MethodPost, "/products", tt.body)

			assertStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
		})
	}
}

func TestProductHandler_UpdateProduct_Forbidden(t *testing.T) {
	seller := testSeller()
	e, productUC := createTestProductHandler(t, seller)
	id := uuid.New()
	productUC.EXPECT().Update(mock.Anything, seller, id, mock.Anything).Return(nil, domainerrors.ErrForbidden)

	rec := doRequest(e, http.MethodPut, "/products/"+id.String(), `{"title":"x","category":"y","price":1,"stock":1}`)

	assertStatus(t, rec, http.StatusForbidden)
	body := decodeError(t, rec)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Empty(t, body.Details)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	seller := testSeller()
	e, productUC := createTestProductHandler(t, seller)
	id := uuid.New()
	productUC.EXPECT().Delete(mock.Anything, seller, id).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/products/"+id.String(), "")

	assertStatus(t, rec, http.StatusNoContent)
	assert.Empty(t, rec.Body.String())
}

func TestProductHandler_MyProducts(t *testing.T) {
	seller := testSeller()
	e, productUC := createTestProductHandler(t, seller)
	productUC.EXPECT().Mine(mock.Anything, seller).Return([]*entity.Product{}, nil)

	rec := doRequest(e, http.MethodGet, "/products/mine", "")

	assertStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
