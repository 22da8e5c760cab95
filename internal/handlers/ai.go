package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/megdcosta/frijio/internal/service"
)

// The AI routes keep the camelCase field names of the original wire
// contract; everything else in the API is snake_case.
type ScanReceiptRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

type RecommendRecipesRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1"`
}

type AIHandler struct {
	ai        *service.AIService
	validator *validator.Validate
}

func NewAIHandler(ai *service.AIService) *AIHandler {
	return &AIHandler{ai: ai, validator: validator.New()}
}

func (h *AIHandler) ScanReceipt(c *gin.Context) {
	var req ScanReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, items, err := h.ai.ScanReceipt(c.Request.Context(), req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text, "items": items})
}

func (h *AIHandler) RecommendRecipes(c *gin.Context) {
	var req RecommendRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := h.ai.RecommendRecipes(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recipes})
}
