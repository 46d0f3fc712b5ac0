package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error replies carry no body, only the status code.

func BadRequest(c *gin.Context) {
	c.Status(http.StatusBadRequest)
}
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}
func Unauthorized(c *gin.Context) {
	c.Status(http.StatusUnauthorized)
}
func ServerError(c *gin.Context) {
	c.Status(http.StatusInternalServerError)
}
