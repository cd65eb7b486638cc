package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"financaspro/internal/models"
)

func TestCategoryHandler_GetCategories(t *testing.T) {
	r := gin.New()
	r.GET("/categories", NewCategoryHandler().GetCategories)

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	categories := result["categories"].([]interface{})
	if len(categories) != len(models.Categories) {
		t.Fatalf("expected %d categories, got %d", len(models.Categories), len(categories))
	}
	first := categories[0].(map[string]interface{})
	if first["name"] != string(models.Categories[0]) {
		t.Errorf("expected %s first, got %v", models.Categories[0], first["name"])
	}
	if first["color"] == "" {
		t.Error("expected a chart color")
	}
}
