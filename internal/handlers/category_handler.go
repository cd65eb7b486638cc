package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financaspro/internal/models"
)

// CategoryHandler serves the closed category set. Categories are fixed at
// build time; there is nothing to create, update, or delete.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	Name  models.Category `json:"name"`
	Color string          `json:"color"`
}

// GetCategories handles the category list request
// @Summary     List categories
// @Description The closed nine-label category set with chart colors
// @Tags        categories
// @Produce     json
// @Success     200 {array} CategoryResponse "List of categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories := make([]CategoryResponse, 0, len(models.Categories))
	for _, category := range models.Categories {
		categories = append(categories, CategoryResponse{
			Name:  category,
			Color: models.CategoryColors[category],
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
