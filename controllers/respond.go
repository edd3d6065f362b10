// Package controllers holds the helpers shared by the HTTP handlers.
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/apperror"
)

// Fail writes err as {"error": msg} with the status of its kind.
func Fail(c *gin.Context, err error) {
	FailWith(c, apperror.HTTPStatus(err), err)
}

// FailWith writes err with an explicit status.
func FailWith(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	body := gin.H{"error": apperror.Message(err)}
	if field := apperror.FieldOf(err); field != "" {
		body["field"] = field
	}
	c.AbortWithStatusJSON(status, body)
}

// ParamID reads a positive integer path parameter. On failure it has
// already written a 400.
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
