package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/utils"
)

// WebSearchService asks a chat-style inference endpoint for nutrition facts
// and extracts a single JSON object from the free-text reply. Any failure
// (transport, non-200, missing JSON, non-numeric fields) surfaces as
// (nil, err) and is treated as "no data" by the resolver. Confidence gating
// also lives in the resolver so the threshold can vary by caller.
type WebSearchService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewWebSearchService() *WebSearchService {
	base := os.Getenv("OLLAMA_BASE_URL")
	if base == "" {
		base = "https://ollama.com"
	}
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = "gpt-oss:120b"
	}
	return &WebSearchService{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: base,
		apiKey:  os.Getenv("OLLAMA_API_KEY"),
		model:   model,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Lookup fetches nutrition for a label. Fast-food items get a per-serving
// prompt (menu items publish whole-item facts); everything else is asked for
// per-100g densities which are then scaled to weightGrams.
func (s *WebSearchService) Lookup(label string, weightGrams float64) (*NutritionRecord, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("OLLAMA_API_KEY not set")
	}

	if utils.IsFastFoodItem(label) {
		return s.lookupServing(label, weightGrams)
	}
	return s.lookupPer100g(label, weightGrams)
}

func (s *WebSearchService) lookupServing(label string, weightGrams float64) (*NutritionRecord, error) {
	prompt := fmt.Sprintf(`You are a nutrition expert with access to current fast food nutrition information.

I need the exact nutritional information for: %s

Respond ONLY with valid JSON in this exact format:
{
    "food_name": "Official menu item name",
    "brand": "Restaurant/brand name",
    "calories": 570,
    "protein": 25.0,
    "carbs": 45.0,
    "fat": 33.0,
    "fiber": 3.0,
    "sugar": 9.0,
    "sodium": 1010,
    "serving_weight_grams": 222,
    "serving_description": "1 sandwich",
    "confidence": 0.95,
    "source": "Official website/nutrition database"
}

If you cannot find exact data, respond with:
{"error": "Could not find reliable nutrition data"}

Search for: %s nutrition facts calories`, label, label)

	fields, err := s.ask(prompt)
	if err != nil {
		return nil, err
	}
	if !hasNum(fields, "calories") {
		return nil, fmt.Errorf("response missing numeric calories field")
	}

	servingWeight := numField(fields, "serving_weight_grams", weightGrams)
	if servingWeight <= 0 {
		servingWeight = weightGrams
	}

	rec := &NutritionRecord{
		FoodName:           strField(fields, "food_name", label),
		WeightGrams:        servingWeight,
		Calories:           numField(fields, "calories", 0),
		Protein:            numField(fields, "protein", 0),
		Carbs:              numField(fields, "carbs", 0),
		Fat:                numField(fields, "fat", 0),
		Fiber:              numField(fields, "fiber", 0),
		Sugar:              numField(fields, "sugar", 0),
		Sodium:             numField(fields, "sodium", 0) / 1000, // mg → g
		DataSource:         SourceWebSearch,
		Confidence:         numField(fields, "confidence", 0),
		Brand:              strField(fields, "brand", ""),
		ServingDescription: strField(fields, "serving_description", ""),
		Source:             strField(fields, "source", "web_search"),
	}

	// Scale serving facts to the requested weight when they differ.
	if weightGrams > 0 && servingWeight > 0 && weightGrams != servingWeight {
		f := weightGrams / servingWeight
		rec.Calories *= f
		rec.Protein *= f
		rec.Carbs *= f
		rec.Fat *= f
		rec.Fiber *= f
		rec.Sugar *= f
		rec.Sodium *= f
		rec.WeightGrams = weightGrams
		rec.ServingDescription = fmt.Sprintf("%.0fg portion", weightGrams)
	}
	return rec, nil
}

func (s *WebSearchService) lookupPer100g(label string, weightGrams float64) (*NutritionRecord, error) {
	prompt := fmt.Sprintf(`You are a nutrition expert. Search for accurate nutritional information for: %s

Find data from reliable sources like USDA nutrition database, nutrition labels, or reputable nutrition websites.

Respond with JSON in this format:
{
    "food_name": "%s",
    "calories_per_100g": 250,
    "protein_per_100g": 12.0,
    "carbs_per_100g": 30.0,
    "fat_per_100g": 10.0,
    "fiber_per_100g": 2.0,
    "sugar_per_100g": 5.0,
    "sodium_per_100g": 500,
    "confidence": 0.8,
    "source": "USDA/nutrition database"
}

If no reliable data found, respond: {"error": "No reliable data found"}

Search for: %s nutrition facts per 100g USDA database`, label, label, label)

	fields, err := s.ask(prompt)
	if err != nil {
		return nil, err
	}
	if !hasNum(fields, "calories_per_100g") {
		return nil, fmt.Errorf("response missing numeric calories_per_100g field")
	}

	if weightGrams <= 0 {
		weightGrams = 100
	}
	scale := weightGrams / 100.0

	return &NutritionRecord{
		FoodName:    strField(fields, "food_name", label),
		WeightGrams: weightGrams,
		Calories:    numField(fields, "calories_per_100g", 0) * scale,
		Protein:     numField(fields, "protein_per_100g", 0) * scale,
		Carbs:       numField(fields, "carbs_per_100g", 0) * scale,
		Fat:         numField(fields, "fat_per_100g", 0) * scale,
		Fiber:       numField(fields, "fiber_per_100g", 0) * scale,
		Sugar:       numField(fields, "sugar_per_100g", 0) * scale,
		Sodium:      numField(fields, "sodium_per_100g", 0) * scale / 1000, // mg → g
		DataSource:  SourceWebSearch,
		Confidence:  numField(fields, "confidence", 0.7),
		Source:      strField(fields, "source", "web_search"),
	}, nil
}

// ask sends one chat request and returns the parsed JSON object from the
// completion.
func (s *WebSearchService) ask(prompt string) (map[string]any, error) {
	payload := chatRequest{
		Model:    s.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/api/chat", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat api error (%d): %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("decode chat response error: %w", err)
	}

	fields, err := extractJSONObject(cr.Message.Content)
	if err != nil {
		return nil, err
	}
	if e, ok := fields["error"]; ok {
		return nil, fmt.Errorf("no reliable nutrition data: %v", e)
	}
	return fields, nil
}

// extractJSONObject pulls the first balanced {...} span out of a completion
// and unmarshals it. Models wrap their JSON in prose often enough that a plain
// Unmarshal of the whole reply is useless.
func extractJSONObject(content string) (map[string]any, error) {
	start := strings.Index(content, "{")
	if start == -1 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				var fields map[string]any
				if err := json.Unmarshal([]byte(content[start:i+1]), &fields); err != nil {
					return nil, fmt.Errorf("invalid JSON in response: %w", err)
				}
				return fields, nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced JSON object in response")
}

func hasNum(fields map[string]any, key string) bool {
	switch fields[key].(type) {
	case float64, json.Number:
		return true
	}
	return false
}

func numField(fields map[string]any, key string, fallback float64) float64 {
	v, ok := fields[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return fallback
		}
		return f
	default:
		return fallback
	}
}

func strField(fields map[string]any, key, fallback string) string {
	if v, ok := fields[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
