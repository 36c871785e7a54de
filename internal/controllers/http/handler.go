package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	menu      *services.MenuService
	orders    *services.OrderService
	analytics *services.AnalyticsService
	qr        services.QRGenerator
}

func NewHandler(menu *services.MenuService, orders *services.OrderService, analytics *services.AnalyticsService, qr services.QRGenerator) *Handler {
	return &Handler{
		menu:      menu,
		orders:    orders,
		analytics: analytics,
		qr:        qr,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Welcome)

	menu := r.Group("/api/menu")
	menu.GET("", h.ListMenuItems)
	menu.GET("/search", h.SearchMenuItems)
	menu.GET("/:id", h.GetMenuItem)
	menu.GET("/:id/qr", h.MenuItemQR)
	menu.POST("", h.CreateMenuItem)
	menu.PUT("/:id", h.UpdateMenuItem)
	menu.DELETE("/:id", h.DeleteMenuItem)
	menu.PATCH("/:id/availability", h.ToggleAvailability)

	orders := r.Group("/api/orders")
	orders.GET("", h.ListOrders)
	orders.GET("/:id", h.GetOrder)
	orders.POST("", h.CreateOrder)
	orders.PATCH("/:id/status", h.UpdateOrderStatus)

	r.GET("/api/analytics/top-sellers", h.TopSellers)
}

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Restaurant Admin API"})
}

func (h *Handler) ListMenuItems(c *gin.Context) {
	filter := repository.MenuFilter{
		Category: domain.MenuCategory(c.Query("category")),
	}
	if v, ok := c.GetQuery("availability"); ok {
		available := v == "true"
		filter.Availability = &available
	}
	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}

	items, err := h.menu.ListMenuItems(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

func (h *Handler) SearchMenuItems(c *gin.Context) {
	items, err := h.menu.SearchMenuItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.menu.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *Handler) MenuItemQR(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.menu.GetMenuItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	png, err := h.qr.Generate(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	candidate, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.menu.CreateMenuItem(c.Request.Context(), candidate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	candidate, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.menu.UpdateMenuItem(c.Request.Context(), id, candidate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.menu.DeleteMenuItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted successfully"})
}

func (h *Handler) ToggleAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.menu.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *Handler) ListOrders(c *gin.Context) {
	filter := repository.OrderFilter{
		Status: domain.OrderStatus(c.Query("status")),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.orders.ListOrders(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Orders == nil {
		result.Orders = []domain.Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(result.Orders),
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
		"data":    result.Orders,
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	candidate, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), candidate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *Handler) TopSellers(c *gin.Context) {
	sellers, err := h.analytics.TopSellers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sellers})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto the response envelope: validation
// failures surface their rule message, unknown ids map to 404, everything
// else stays a generic 500 so storage internals never leak.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
	case errors.Is(err, services.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menu item not found"})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong!"})
	}
}
