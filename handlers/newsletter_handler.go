package handlers

import (
	"net/http"

	"newsroom/models"
	"newsroom/render"
	"newsroom/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService   services.NewsletterService
	subscriptionService services.SubscriptionService
}

func NewNewsletterHandler(
	newsletterService services.NewsletterService,
	subscriptionService services.SubscriptionService,
) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService:   newsletterService,
		subscriptionService: subscriptionService,
	}
}

func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter, err := h.newsletterService.CreateNewsletter(req, actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newsletter)
}

func (h *NewsletterHandler) GetOwnNewsletters(c *gin.Context) {
	newsletters, err := h.newsletterService.GetOwnNewsletters(actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"newsletters": newsletters})
}

// GetFeed returns the newsletters from the caller's subscriptions,
// newest first.
func (h *NewsletterHandler) GetFeed(c *gin.Context) {
	newsletters, err := h.subscriptionService.ResolveVisibleNewsletters(actorID(c))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"newsletters": newsletters})
}

func (h *NewsletterHandler) GetPublicNewsletters(c *gin.Context) {
	newsletters, err := h.newsletterService.GetRecentNewsletters()
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"newsletters": newsletters})
}

func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	newsletter, err := h.newsletterService.GetNewsletter(id)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"newsletter":   newsletter,
		"content_html": render.Markdown(newsletter.Content),
	})
}
