package handlers

import (
	"strconv"

	"newsroom/helper"
	"newsroom/models"

	"github.com/gin-gonic/gin"
)

var httpHelper = &helper.HTTPHelper{}

// sendError maps the error's domain kind to the HTTP status and keeps
// the kind in the body so clients can branch on it.
func sendError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if kind := models.KindOf(err); kind != "" {
		body["kind"] = kind
	}
	c.JSON(httpHelper.GetStatusCode(err), body)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func actorID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	id, _ := userID.(uint)
	return id
}
