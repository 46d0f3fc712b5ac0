package controllers

import (
	"errors"

	"github.com/kasiam87/eCommerceApp/pkg/resp"
	"github.com/kasiam87/eCommerceApp/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /api/order/submit/:username
func (h *OrderController) Submit(c *gin.Context) {
	order, err := h.Svc.Submit(c.Param("username"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, order)
}

// GET /api/order/history/:username
func (h *OrderController) History(c *gin.Context) {
	orders, err := h.Svc.History(c.Param("username"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, orders)
}
