package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/megdcosta/frijio/internal/ai"
	"github.com/megdcosta/frijio/internal/apperr"
)

// MaxRecipeIngredients caps how many ingredient names one recommendation
// request forwards to the model.
const MaxRecipeIngredients = 10

// AIService fronts the two external AI collaborators.
type AIService struct {
	ocr        ai.TextExtractor
	classifier ai.Classifier
	generator  ai.RecipeGenerator
	logger     *slog.Logger
}

func NewAIService(ocr ai.TextExtractor, classifier ai.Classifier, generator ai.RecipeGenerator, logger *slog.Logger) *AIService {
	return &AIService{ocr: ocr, classifier: classifier, generator: generator, logger: logger}
}

// ScanReceipt OCRs the image and keeps the lines the classifier marks as
// food. A classification failure for one line does not abort the request:
// the line is treated as not food and scanning continues.
func (s *AIService) ScanReceipt(ctx context.Context, imageURL string) (string, []string, error) {
	text, err := s.ocr.ExtractText(ctx, imageURL)
	if err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(text) == "" {
		return "", nil, apperr.Validation("No text detected")
	}

	items := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		isFood, err := s.classifier.IsFoodItem(ctx, line)
		if err != nil {
			s.logger.Warn("classification failed, treating line as non-food", "line", line, "error", err)
			continue
		}
		if isFood {
			items = append(items, line)
		}
	}

	s.logger.Info("receipt scanned", "lines_kept", len(items))
	return text, items, nil
}

// RecommendRecipes forwards at most MaxRecipeIngredients ingredient names
// to the model and parses the structured response. An unparseable response
// fails the whole request; there is no partial recovery.
func (s *AIService) RecommendRecipes(ctx context.Context, ingredients []string) ([]ai.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, apperr.Validation("Please provide at least one ingredient.")
	}
	if len(ingredients) > MaxRecipeIngredients {
		ingredients = ingredients[:MaxRecipeIngredients]
	}

	raw, err := s.generator.GenerateRecipes(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	recipes, err := ai.ParseRecipeResponse(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Info("recipes recommended", "ingredients", len(ingredients), "recipes", len(recipes))
	return recipes, nil
}
