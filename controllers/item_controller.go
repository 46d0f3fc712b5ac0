package controllers

import (
	"errors"
	"strconv"

	"github.com/kasiam87/eCommerceApp/pkg/resp"
	"github.com/kasiam87/eCommerceApp/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ Svc *services.ItemService }

func NewItemController(s *services.ItemService) *ItemController { return &ItemController{Svc: s} }

// GET /api/item
func (h *ItemController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// GET /api/item/:id
func (h *ItemController) FindByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c)
		return
	}

	item, err := h.Svc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, item)
}

// GET /api/item/name/:name
func (h *ItemController) FindByName(c *gin.Context) {
	items, err := h.Svc.GetByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrNoMatchingItems) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}
