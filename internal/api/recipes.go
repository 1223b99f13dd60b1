package api

import (
	"errors"
	"net/http"
	"strconv"

	"pantrychef/internal/models"
	"pantrychef/internal/store"

	"github.com/gin-gonic/gin"
)

// Recipe catalog handlers

// ListRecipes returns every recipe in the catalog, newest first
func (s *Server) ListRecipes(c *gin.Context) {
	recipes, err := s.store.FindAllRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching recipes",
			"error":   err.Error(),
		})
		return
	}

	s.collector.SetCatalogSize(len(recipes))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(recipes),
		"data":    recipes,
	})
}

// GetRecipe returns one recipe by id
func (s *Server) GetRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	recipe, err := s.store.FindRecipeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": recipe})
}

// CreateRecipe adds a recipe to the catalog
func (s *Server) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating recipe", "error": err.Error()})
		return
	}

	if err := s.store.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating recipe", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// UpdateRecipe replaces a recipe by id
func (s *Server) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating recipe", "error": err.Error()})
		return
	}

	if err := s.store.UpdateRecipe(c.Request.Context(), id, &recipe); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating recipe", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

// DeleteRecipe removes a recipe by id
func (s *Server) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.store.DeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe deleted successfully"})
}

// parseID reads the :id path parameter, answering 400 itself on garbage
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid recipe id"})
		return 0, false
	}
	return uint(id), true
}
