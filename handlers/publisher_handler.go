package handlers

import (
	"net/http"

	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService services.PublisherService
}

func NewPublisherHandler(publisherService services.PublisherService) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService}
}

func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req models.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publisher, err := h.publisherService.CreatePublisher(req, actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publisher)
}

func (h *PublisherHandler) UpdatePublisher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publisher, err := h.publisherService.UpdatePublisher(id, req, actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, publisher)
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.publisherService.GetPublishers()
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"publishers": publishers})
}

func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	publisher, err := h.publisherService.GetPublisher(id)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, publisher)
}

func (h *PublisherHandler) AddTeamMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, added, err := h.publisherService.AddTeamMember(id, req, actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	if !added {
		c.JSON(http.StatusOK, gin.H{
			"message": "Already a member",
			"user":    user,
		})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *PublisherHandler) GetDashboard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.publisherService.GetDashboard(id, actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
