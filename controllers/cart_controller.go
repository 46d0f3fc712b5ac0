package controllers

import (
	"errors"

	"github.com/kasiam87/eCommerceApp/pkg/resp"
	"github.com/kasiam87/eCommerceApp/services"

	"github.com/gin-gonic/gin"
)

type ModifyCartRequest struct {
	Username string `json:"username" binding:"required"`
	ItemID   uint   `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
}

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /api/cart/addToCart
func (h *CartController) AddToCart(c *gin.Context) {
	var req ModifyCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c)
		return
	}

	cart, err := h.Svc.Add(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		h.reply(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/removeFromCart
func (h *CartController) RemoveFromCart(c *gin.Context) {
	var req ModifyCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c)
		return
	}

	cart, err := h.Svc.Remove(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		h.reply(c, err)
		return
	}
	resp.OK(c, cart)
}

func (h *CartController) reply(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrItemNotFound) {
		resp.NotFound(c)
		return
	}
	resp.ServerError(c)
}
