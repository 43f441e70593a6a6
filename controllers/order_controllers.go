package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/cafe-kiosk/middlewares"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/services"
	"github.com/yeremiapane/cafe-kiosk/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type createOrderRequest struct {
	Items        []services.OrderLineInput `json:"items" binding:"required"`
	DineType     string                    `json:"dineType"`
	UsedPoints   int64                     `json:"usedPoints"`
	IsGuestOrder bool                      `json:"isGuestOrder"`
}

type createOrderResponse struct {
	OrderNumber  string          `json:"orderNumber"`
	Total        decimal.Decimal `json:"total"`
	EarnedPoints int64           `json:"earnedPoints"`
}

type previewResponse struct {
	services.PricingResult
	Display map[string]string `json:"display"`
}

func actorFrom(c *gin.Context) services.Actor {
	userID, _ := middlewares.CurrentUserID(c)
	return services.Actor{UserID: userID, IsOperator: c.GetBool(middlewares.ContextIsOperator)}
}

func customerRef(c *gin.Context) *uint {
	if id, ok := middlewares.CurrentUserID(c); ok {
		return &id
	}
	return nil
}

// PreviewOrder -> harga keranjang untuk layar checkout, tanpa menyimpan apa pun
func (oc *OrderController) PreviewOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pricing, err := oc.Orders.PreviewOrder(c.Request.Context(), req.Items, req.UsedPoints, customerRef(c), req.IsGuestOrder)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rounded := pricing.Rounded()
	utils.RespondJSON(c, http.StatusOK, "Order preview", previewResponse{
		PricingResult: rounded,
		Display: map[string]string{
			"subtotal":   utils.FormatCurrency(rounded.Subtotal),
			"tax":        utils.FormatCurrency(rounded.TaxAmount),
			"usedPoints": utils.FormatCurrency(decimal.NewFromInt(rounded.PointsRedeemed)),
			"total":      utils.FormatCurrency(rounded.Total),
		},
	})
}

// CreateOrder -> checkout kiosk, guest atau member
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		Items:        req.Items,
		DineType:     req.DineType,
		UsedPoints:   req.UsedPoints,
		IsGuestOrder: req.IsGuestOrder,
		UserID:       customerRef(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created (guest=%t, total=%s)", order.OrderNumber, order.IsGuestOrder, utils.FormatCurrency(order.Total))
	utils.RespondJSON(c, http.StatusCreated, "Order created", createOrderResponse{
		OrderNumber:  order.OrderNumber,
		Total:        order.Total.Round(2),
		EarnedPoints: order.EarnedPoints,
	})
}

// GetMyOrders -> riwayat order user yang login, terbaru dulu
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrNoPermission)
		return
	}

	orders, err := oc.Orders.ListOrdersFor(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My orders", orders)
}

// GetAllOrders -> panel admin, opsional ?status=
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListAllOrders(c.Request.Context(), actorFrom(c), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 order (pemilik atau admin)
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Orders.GetOrder(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> admin memindahkan status order
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.SetStatus(c.Request.Context(), actorFrom(c), id, body.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if order.Status == models.OrderStatusCompleted && order.IsGuestOrder {
		utils.InfoLogger.Printf("Guest order %s completed, queued for purge", order.OrderNumber)
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
