package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
	"github.com/sweetcrumb/bakehouse/internal/server/http/query"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Create handles POST /api/orders. The authenticated account becomes the
// order owner; the contact block is still taken from the payload.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	deliveryDate, ok := req.ParseDeliveryDate()
	if !ok {
		badRequest(c, "invalid delivery date")
		return
	}

	input := usecase.CreateOrderInput{
		Customer: model.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		Total:                req.Total,
		DeliveryMethod:       model.DeliveryMethod(req.DeliveryMethod),
		DeliveryDate:         deliveryDate,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryInstructions: req.DeliveryInstructions,
	}
	if user := CurrentUser(c); user != nil {
		input.Customer.UserID = &user.ID
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, model.OrderItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			Price:          item.Price,
			Customizations: item.Customizations,
		})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToOrderResponse(*order)))
}

// MyOrders handles GET /api/orders/my-orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	user := CurrentUser(c)
	orders, err := h.facade.MyOrders(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToOrderResponses(orders), len(orders)))
}

// Get handles GET /api/orders/:id. Owner or admin only.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id, CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOrderResponse(*order)))
}

// List handles GET /api/orders for the admin panel, with the owning user
// expanded on each order.
func (h *OrderHandler) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query())
	orders, total, err := h.facade.Orders(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	data := dto.Project(dto.ToOrderResponses(orders), q.Select)
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(orders), total, q))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOrderResponse(*order)))
}

// UpdateNotes handles PUT /api/orders/:id/notes.
func (h *OrderHandler) UpdateNotes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	order, err := h.facade.UpdateOrderNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOrderResponse(*order)))
}

// UpdatePayment handles PUT /api/orders/:id/payment.
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	order, err := h.facade.UpdateOrderPayment(c.Request.Context(), id, model.PaymentStatus(req.PaymentStatus), req.PaymentDetails)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOrderResponse(*order)))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("order deleted"))
}
