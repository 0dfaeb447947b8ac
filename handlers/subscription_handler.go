package handlers

import (
	"net/http"

	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscription, created, err := h.subscriptionService.Subscribe(req, actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message":      "Already subscribed",
			"subscription": subscription,
		})
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	subscriptions, err := h.subscriptionService.GetSubscriptions(actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.subscriptionService.Unsubscribe(id, actorID(c)); err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed successfully"})
}
