package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// OrderHandler manages order submission and listing endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/submit-form.
func (h *OrderHandler) Submit(c *gin.Context) {
	accountID := CurrentAccountID(c)

	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All required fields must be filled"})
		return
	}

	submission := model.OrderSubmission{
		Description: req.TextField,
		Category:    req.SelectValue,
		Consent:     req.CheckboxValue,
		Phone:       req.PhoneNumber,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), accountID, submission)
	if err != nil {
		if domainErrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitOrderResponse{
		Success: true,
		OrderID: order.ID,
		Message: "Form submitted successfully",
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	accountID := CurrentAccountID(c)

	orders, err := h.facade.Orders(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Database error"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          order.ID,
		Description: order.Description,
		Category:    order.Category,
		Consent:     order.Consent,
		Phone:       order.Phone,
		CreatedAt:   order.CreatedAt,
	}
	if order.Location != nil {
		lat, lon := order.Location.Latitude, order.Location.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
	}
	return resp
}
