package controllers

import (
	"errors"
	"strconv"

	"github.com/kasiam87/eCommerceApp/pkg/resp"
	"github.com/kasiam87/eCommerceApp/services"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// POST /api/user/create
func (h *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c)
		return
	}

	user, err := h.Svc.Create(req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, services.ErrPasswordTooShort) || errors.Is(err, services.ErrPasswordMismatch) {
			resp.BadRequest(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, user)
}

// GET /api/user/id/:id
func (h *UserController) FindByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c)
		return
	}

	user, err := h.Svc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, user)
}

// GET /api/user/:username
func (h *UserController) FindByUsername(c *gin.Context) {
	user, err := h.Svc.GetByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, user)
}
