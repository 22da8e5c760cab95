// Package ai holds the adapters for the two external AI collaborators: an
// OCR service for receipt text extraction and an LLM for food
// classification and recipe suggestions.
package ai

import "context"

// Recipe is one structured recipe suggestion.
type Recipe struct {
	Recipe       string   `json:"recipe"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Time         string   `json:"time"`
}

// TextExtractor pulls raw text from an image by URL.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageURL string) (string, error)
}

// Classifier decides whether one receipt line names a food item.
type Classifier interface {
	IsFoodItem(ctx context.Context, line string) (bool, error)
}

// RecipeGenerator produces the model's raw response for a set of
// ingredients; parsing into Recipe values happens in ParseRecipeResponse.
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, ingredients []string) (string, error)
}
