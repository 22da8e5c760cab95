package ai

import (
	"encoding/json"
	"strings"

	"github.com/megdcosta/frijio/internal/apperr"
)

type recipeResponse struct {
	Recommendations []Recipe `json:"recommendations"`
}

// ParseRecipeResponse parses the model output into recipes. Models
// sometimes fence the JSON in markdown or prepend prose, so parsing starts
// at the first brace. A response that does not contain the expected
// structure fails the whole request.
func ParseRecipeResponse(raw string) ([]Recipe, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, apperr.New(apperr.KindParse, "Failed to parse AI response")
	}

	var parsed recipeResponse
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "Failed to parse AI response", err)
	}
	if len(parsed.Recommendations) == 0 {
		return nil, apperr.New(apperr.KindParse, "Failed to parse AI response")
	}
	return parsed.Recommendations, nil
}
