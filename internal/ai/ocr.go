package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/megdcosta/frijio/internal/apperr"
)

// OCRClient extracts receipt text through an OCR.space-compatible endpoint.
type OCRClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOCRClient(apiKey, baseURL string) *OCRClient {
	return &OCRClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type ocrResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`
}

// ExtractText runs OCR over the image at imageURL and returns the detected
// text with lines separated by newlines.
func (c *OCRClient) ExtractText(ctx context.Context, imageURL string) (string, error) {
	form := url.Values{}
	form.Set("url", imageURL)
	form.Set("OCREngine", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build OCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", apperr.Wrap(apperr.KindTimeout, "OCR request timed out", err)
		}
		return "", apperr.Wrap(apperr.KindNetwork, "OCR request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.New(apperr.KindUpstream, fmt.Sprintf("OCR service returned status %d", resp.StatusCode))
	}

	var parsed ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "OCR response was not valid JSON", err)
	}
	if parsed.IsErroredOnProcessing || len(parsed.ParsedResults) == 0 {
		return "", apperr.New(apperr.KindUpstream, "OCR service failed to process the image")
	}

	return parsed.ParsedResults[0].ParsedText, nil
}
