package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pantrychef/internal/models"
	"pantrychef/internal/optimizer"
	"pantrychef/internal/store"

	"github.com/gin-gonic/gin"
)

// DefaultMinMatchPercentage is the match-ingredients cutoff when the request
// leaves it unset
const DefaultMinMatchPercentage = 50

// MatchIngredientsRequest asks for recipes coverable from a pantry list.
// MinMatchPercentage is a pointer so an explicit 0 survives binding.
type MatchIngredientsRequest struct {
	AvailableIngredients []string `json:"availableIngredients"`
	MinMatchPercentage   *int     `json:"minMatchPercentage"`
}

// SubstitutionsRequest asks for substitutes for one named ingredient
type SubstitutionsRequest struct {
	IngredientName      string      `json:"ingredientName"`
	Amount              float64     `json:"amount"`
	Unit                models.Unit `json:"unit"`
	DietaryRestrictions []string    `json:"dietaryRestrictions"`
}

// RecipeSubstitutionsRequest asks for substitution suggestions for one recipe
type RecipeSubstitutionsRequest struct {
	RecipeID             uint     `json:"recipeId"`
	AvailableIngredients []string `json:"availableIngredients"`
	DietaryRestrictions  []string `json:"dietaryRestrictions"`
}

// Optimization handlers

// OptimizeRecipes scores the whole catalog against the request criteria and
// returns the top results
func (s *Server) OptimizeRecipes(c *gin.Context) {
	var criteria models.OptimizationCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error optimizing recipes", "error": err.Error()})
		return
	}

	start := time.Now()
	results, err := s.optimizer.ScoreAll(c.Request.Context(), &criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error optimizing recipes",
			"error":   err.Error(),
		})
		return
	}

	s.collector.RecordOptimization("optimize", time.Since(start), len(results))
	if len(results) > 0 {
		s.collector.RecordScore(results[0].OptimizationScore)
	}
	s.monitor.RecordOptimizationRequest("optimize", len(results))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipes optimized successfully",
		"count":   len(results),
		"optimizationCriteria": gin.H{
			"availableIngredients": len(criteria.AvailableIngredients),
			"dietaryRestrictions":  criteria.DietaryRestrictions,
			"nutritionalGoals":     criteria.NutritionalGoals,
			"budgetConstraints":    criteria.BudgetConstraints,
		},
		"data": results,
	})
}

// MatchIngredients filters and ranks recipes by ingredient match percentage
func (s *Server) MatchIngredients(c *gin.Context) {
	var req MatchIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error matching ingredients", "error": err.Error()})
		return
	}

	if len(req.AvailableIngredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Available ingredients are required",
		})
		return
	}

	minMatch := DefaultMinMatchPercentage
	if req.MinMatchPercentage != nil {
		minMatch = *req.MinMatchPercentage
	}

	start := time.Now()
	results, err := s.optimizer.MatchByIngredients(c.Request.Context(), req.AvailableIngredients, minMatch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error matching ingredients",
			"error":   err.Error(),
		})
		return
	}

	s.collector.RecordOptimization("match", time.Since(start), len(results))
	s.monitor.RecordOptimizationRequest("match", len(results))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Ingredient matching completed",
		"count":   len(results),
		"criteria": gin.H{
			"availableIngredients": req.AvailableIngredients,
			"minMatchPercentage":   minMatch,
		},
		"data": results,
	})
}

// FindSubstitutions returns substitutes for one ingredient, scaled to the
// requested amount
func (s *Server) FindSubstitutions(c *gin.Context) {
	var req SubstitutionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error finding substitutions", "error": err.Error()})
		return
	}

	if req.IngredientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Ingredient name is required",
		})
		return
	}

	substitutes := s.optimizer.LookupSubstitutions(c.Request.Context(), req.IngredientName, req.Amount, req.Unit, req.DietaryRestrictions)
	s.monitor.RecordOptimizationRequest("substitutions", len(substitutes))

	if len(substitutes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("No substitutions found for %s", req.IngredientName),
			"data":    []optimizer.SubstituteResult{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Substitutions found successfully",
		"originalIngredient": gin.H{
			"name":   req.IngredientName,
			"amount": req.Amount,
			"unit":   req.Unit,
		},
		"count": len(substitutes),
		"data":  substitutes,
	})
}

// AddSubstitution registers a substitution entry
func (s *Server) AddSubstitution(c *gin.Context) {
	var entry models.SubstitutionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error adding substitution", "error": err.Error()})
		return
	}

	if err := s.store.CreateSubstitution(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error adding substitution", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Substitution added successfully",
		"data":    entry,
	})
}

// RecipeWithSubstitutions computes substitution suggestions for one recipe's
// missing ingredients
func (s *Server) RecipeWithSubstitutions(c *gin.Context) {
	var req RecipeSubstitutionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error calculating recipe substitutions", "error": err.Error()})
		return
	}

	recipe, suggestions, err := s.optimizer.RecipeWithSubstitutions(c.Request.Context(), req.RecipeID, req.AvailableIngredients, req.DietaryRestrictions)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error calculating recipe substitutions",
			"error":   err.Error(),
		})
		return
	}

	s.monitor.RecordOptimizationRequest("recipe_substitutions", len(suggestions))

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"message":                 "Recipe with substitutions calculated",
		"recipe":                  recipe,
		"substitutionSuggestions": suggestions,
		"availableIngredients":    req.AvailableIngredients,
		"dietaryRestrictions":     req.DietaryRestrictions,
	})
}
