package handler

import (
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Requests ---

// CartLineRequest is one cart entry. Quantities are checked by the order rules, not here.
type CartLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CreateOrderRequest accepts the cart under either lineItems or cartItems.
type CreateOrderRequest struct {
	LineItems []CartLineRequest `json:"lineItems"`
	CartItems []CartLineRequest `json:"cartItems"`
}

// PayOrderRequest carries the checkout details.
type PayOrderRequest struct {
	CustomerName     string `json:"customerName" validate:"required,max=200"`
	AddressLine1     string `json:"addressLine1" validate:"required,max=300"`
	City             string `json:"city" validate:"required,max=100"`
	Country          string `json:"country" validate:"required,max=100"`
	Phone            string `json:"phone" validate:"required,max=50"`
	PaymentReference string `json:"paymentReference" validate:"omitempty,max=100"`
}

// ProductRequest is the body of product create and update.
type ProductRequest struct {
	Title        string          `json:"title" validate:"required,max=200"`
	Category     string          `json:"category" validate:"required,max=100"`
	Brand        string          `json:"brand" validate:"omitempty,max=100"`
	Price        decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Stock        int             `json:"stock" validate:"gte=0"`
	ProductImage string          `json:"productImage" validate:"omitempty,max=500"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=Customer Seller"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

// OrderLineResponse is one priced order line.
type OrderLineResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	OwnerUserID      uuid.UUID           `json:"ownerUserId"`
	CreatedAt        time.Time           `json:"createdAt"`
	Status           string              `json:"status"`
	TotalAmount      decimal.Decimal     `json:"totalAmount"`
	LineItems        []OrderLineResponse `json:"lineItems"`
	PaidAt           *time.Time          `json:"paidAt"`
	PaymentReference *string             `json:"paymentReference"`
	CustomerName     *string             `json:"customerName"`
	AddressLine1     *string             `json:"addressLine1"`
	City             *string             `json:"city"`
	Country          *string             `json:"country"`
	Phone            *string             `json:"phone"`
}

// PaymentResponse is returned by POST /orders/{id}/pay.
type PaymentResponse struct {
	ID               uuid.UUID  `json:"id"`
	Status           string     `json:"status"`
	PaidAt           *time.Time `json:"paidAt"`
	PaymentReference *string    `json:"paymentReference"`
}

// StatusResponse is returned by DELETE /orders/{id}.
type StatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// ProductResponse is the public product representation.
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	ProductImage  string          `json:"productImage"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	OwnerUsername string          `json:"ownerUsername"`
	IsActive      bool            `json:"isActive"`
}

// UserResponse is the account representation. The password hash is never exposed.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token string    `json:"token"`
	Role  string    `json:"role"`
	ID    uuid.UUID `json:"id"`
}

// LevelResponse is returned by promote and demote.
type LevelResponse struct {
	ID    uuid.UUID `json:"id"`
	Level int       `json:"level"`
}

// SellerMetricResponse is one row of GET /admin/metrics.
type SellerMetricResponse struct {
	SellerID       uuid.UUID       `json:"sellerId"`
	TotalOrders    int64           `json:"totalOrders"`
	PaidOrders     int64           `json:"paidOrders"`
	PendingOrders  int64           `json:"pendingOrders"`
	CanceledOrders int64           `json:"canceledOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`
	LastPaidAt     *time.Time      `json:"lastPaidAt"`
}

// --- Mappers ---

func toCartLines(lines []CartLineRequest) []entity.CartLine {
	if len(lines) == 0 {
		return nil
	}

	cart := make([]entity.CartLine, len(lines))
	for i, line := range lines {
		cart[i] = entity.CartLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	return cart
}

func toProductInput(req *ProductRequest) *usecase.ProductInput {
	return &usecase.ProductInput{
		Title:        req.Title,
		Category:     req.Category,
		Brand:        req.Brand,
		Price:        req.Price,
		Stock:        req.Stock,
		ProductImage: req.ProductImage,
	}
}

func newOrderResponse(order *entity.Order) *OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
		}
	}

	resp := &OrderResponse{
		ID:               order.ID,
		OwnerUserID:      order.OwnerID,
		CreatedAt:        order.CreatedAt,
		Status:           order.Status.String(),
		TotalAmount:      order.TotalAmount,
		LineItems:        lines,
		PaidAt:           order.PaidAt,
		PaymentReference: order.PaymentReference,
	}

	if order.Checkout != nil {
		resp.CustomerName = &order.Checkout.CustomerName
		resp.AddressLine1 = &order.Checkout.AddressLine1
		resp.City = &order.Checkout.City
		resp.Country = &order.Checkout.Country
		resp.Phone = &order.Checkout.Phone
	}

	return resp
}

func newOrderResponses(orders []*entity.Order) []*OrderResponse {
	resp := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = newOrderResponse(order)
	}

	return resp
}

func newProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:            product.ID,
		Title:         product.Title,
		Category:      product.Category,
		Brand:         product.Brand,
		Price:         product.Price,
		Stock:         product.Stock,
		ProductImage:  product.ProductImage,
		OwnerID:       product.OwnerID,
		OwnerUsername: product.OwnerUsername,
		IsActive:      product.IsActive,
	}
}

func newProductResponses(products []*entity.Product) []*ProductResponse {
	resp := make([]*ProductResponse, len(products))
	for i, product := range products {
		resp[i] = newProductResponse(product)
	}

	return resp
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		Level:     user.Level,
		CreatedAt: user.CreatedAt,
	}
}

func newSellerMetricResponses(metrics []*entity.SellerMetric) []*SellerMetricResponse {
	resp := make([]*SellerMetricResponse, len(metrics))
	for i, m := range metrics {
		resp[i] = &SellerMetricResponse{
			SellerID:       m.SellerID,
			TotalOrders:    m.TotalOrders,
			PaidOrders:     m.PaidOrders,
			PendingOrders:  m.PendingOrders,
			CanceledOrders: m.CanceledOrders,
			TotalRevenue:   m.TotalRevenue,
			PendingRevenue: m.PendingRevenue,
			LastPaidAt:     m.LastPaidAt,
		}
	}

	return resp
}
