package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/threadcount/threadcount/internal/model"
)

const classifySystemPrompt = "You are a garment classifier for a wardrobe app. You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with { and end with }."

// classifyPrompt builds the user prompt for a garment photo.
func classifyPrompt(notes string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the garment in this photo and respond with JSON in this exact shape:\n")
	sb.WriteString(`{"category": "top|bottom|shoes|dress|outerwear|accessory", "description": "one sentence describing the garment type, fit and fabric", "color": "dominant color", "styleTags": ["casual"], "confidence": 0.9}`)
	sb.WriteString("\n\nUse lowercase for category and color. Style tags come from: casual, professional, athletic, formal.")
	if notes != "" {
		sb.WriteString("\nOwner's note about the item: ")
		sb.WriteString(notes)
	}
	return sb.String()
}

// cleanMarkdownWrapper strips a markdown code fence if the model wrapped its
// JSON in one despite instructions.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parseClassification extracts the structured classification from the model's
// response text.
func parseClassification(content string) (Classification, error) {
	var jsonResp struct {
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Color       string   `json:"color"`
		StyleTags   []string `json:"styleTags"`
		Confidence  float64  `json:"confidence"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return Classification{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Category == "" {
		return Classification{}, fmt.Errorf("no category found in response")
	}
	if _, err := model.ParseCategory(jsonResp.Category); err != nil {
		return Classification{}, fmt.Errorf("vision model returned %w", err)
	}

	return Classification{
		Category:    jsonResp.Category,
		Description: jsonResp.Description,
		Color:       strings.ToLower(jsonResp.Color),
		StyleTags:   jsonResp.StyleTags,
		Confidence:  jsonResp.Confidence,
	}, nil
}
