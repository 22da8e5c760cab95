package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/megdcosta/frijio/internal/apperr"
)

const classifierSystemPrompt = "You are a food item classifier for grocery receipts."

const recipeSystemPrompt = "You are a professional chef providing recipe suggestions."

// AnthropicClient implements Classifier and RecipeGenerator against the
// Anthropic Messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

// IsFoodItem asks the model to classify one receipt line. Anything other
// than a clear YES counts as not food.
func (c *AnthropicClient) IsFoodItem(ctx context.Context, line string) (bool, error) {
	prompt := fmt.Sprintf(`You are a food identification assistant. Analyze the following text from a receipt and determine if it represents a food item. Consider variations and abbreviations. Respond ONLY with "YES" or "NO".

Text: %q`, line)

	temperature := float32(0.1)
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       c.model,
		System:      classifierSystemPrompt,
		MaxTokens:   8,
		Temperature: &temperature,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return false, apperr.Wrap(apperr.KindUpstream, "food classification failed", err)
	}

	answer := strings.ToUpper(strings.TrimSpace(firstText(resp)))
	return answer == "YES", nil
}

// GenerateRecipes requests three recipe suggestions as JSON and returns the
// raw model output.
func (c *AnthropicClient) GenerateRecipes(ctx context.Context, ingredients []string) (string, error) {
	prompt := fmt.Sprintf(`Act as a professional chef. Suggest 3 creative recipes using these ingredients: %s.
For each recipe, include:
1. Recipe name
2. Required ingredients (mark which are optional)
3. Step-by-step instructions
4. Estimated preparation time

Format response as valid JSON:
{
  "recommendations": [{
    "recipe": string,
    "ingredients": string[],
    "instructions": string[],
    "time": string
  }]
}`, strings.Join(ingredients, ", "))

	temperature := float32(0.7)
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       c.model,
		System:      recipeSystemPrompt,
		MaxTokens:   2048,
		Temperature: &temperature,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "recipe generation failed", err)
	}

	return firstText(resp), nil
}

func firstText(resp anthropic.MessagesResponse) string {
	for _, content := range resp.Content {
		if text := content.GetText(); text != "" {
			return text
		}
	}
	return ""
}
