package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// USDAService queries the USDA FoodData Central API. A failed call is a
// cascade signal for the resolver, never a fatal error: Lookup returns
// (nil, err) and the caller moves to the next source.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService() *USDAService {
	return &USDAService{
		apiKey:  os.Getenv("USDA_API_KEY"),
		baseURL: "https://api.nal.usda.gov/fdc/v1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type usdaSearchResponse struct {
	Foods []usdaSearchFood `json:"foods"`
}

type usdaSearchFood struct {
	FdcID       int    `json:"fdcId"`
	Description string `json:"description"`
}

type usdaFoodDetail struct {
	FoodNutrients []struct {
		Nutrient struct {
			Name     string `json:"name"`
			UnitName string `json:"unitName"`
		} `json:"nutrient"`
		Amount *float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// Words that usually mean a processed or composite preparation; penalized so
// the plain ingredient wins the match.
var usdaProcessingWords = []string{
	"cooked", "prepared", "with", "frosted", "sweetened",
	"canned", "frozen", "sauce", "souffle", "leaves", "flour",
}

// scoreCandidate ranks a search hit against the queried label. Higher is
// better; ties keep the upstream relevance order.
func scoreCandidate(label, description string) int {
	desc := strings.ToLower(description)
	score := 0

	if strings.Contains(desc, label) {
		score += 50
	}
	if strings.Contains(desc, "raw") {
		score += 30
	} else if strings.Contains(desc, "fresh") || strings.Contains(desc, "whole") {
		score += 20
	}
	for _, w := range usdaProcessingWords {
		if strings.Contains(desc, w) {
			score -= 20
			break
		}
	}
	if strings.HasPrefix(desc, label) {
		score += 40
	}
	return score
}

// Lookup searches FDC for the label, picks the best candidate, fetches its
// nutrient breakdown and returns a record scaled to weightGrams. Upstream
// values are per 100g; sodium arrives in mg and is converted to grams.
func (s *USDAService) Lookup(label string, weightGrams float64) (*NutritionRecord, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("USDA_API_KEY not set")
	}

	q := url.Values{}
	q.Set("query", label)
	q.Add("dataType", "Foundation")
	q.Add("dataType", "SR Legacy")
	q.Set("pageSize", "5")
	q.Set("api_key", s.apiKey)

	body, err := s.get(fmt.Sprintf("%s/foods/search?%s", s.baseURL, q.Encode()))
	if err != nil {
		return nil, err
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA search JSON: %w", err)
	}
	if len(sr.Foods) == 0 {
		return nil, fmt.Errorf("no food found in USDA database for %q", label)
	}

	labelLower := strings.ToLower(label)
	best := sr.Foods[0]
	bestScore := scoreCandidate(labelLower, best.Description)
	for _, f := range sr.Foods[1:] {
		if sc := scoreCandidate(labelLower, f.Description); sc > bestScore {
			best, bestScore = f, sc
		}
	}

	detailBody, err := s.get(fmt.Sprintf("%s/food/%d?api_key=%s", s.baseURL, best.FdcID, url.QueryEscape(s.apiKey)))
	if err != nil {
		return nil, err
	}

	var detail usdaFoodDetail
	if err := json.Unmarshal(detailBody, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse USDA detail JSON: %w", err)
	}

	nutrients := make(map[string]float64, len(detail.FoodNutrients))
	for _, n := range detail.FoodNutrients {
		if n.Amount == nil {
			continue
		}
		key := n.Nutrient.Name
		if key == "Energy" {
			// keep the unit so kcal and kJ rows stay distinguishable
			key = fmt.Sprintf("Energy (%s)", n.Nutrient.UnitName)
		}
		nutrients[key] = *n.Amount
	}

	// Prefer kcal; convert kJ when that is all the record carries.
	calories := 0.0
	if v, ok := nutrients["Energy (kcal)"]; ok {
		calories = v
	} else if v, ok := nutrients["Energy (kJ)"]; ok {
		calories = v / 4.184
	}

	scale := weightGrams / 100.0
	rec := &NutritionRecord{
		FoodName:    label,
		WeightGrams: weightGrams,
		Calories:    calories * scale,
		Protein:     nutrients["Protein"] * scale,
		Carbs:       nutrients["Carbohydrate, by difference"] * scale,
		Fat:         nutrients["Total lipid (fat)"] * scale,
		Fiber:       nutrients["Fiber, total dietary"] * scale,
		Sugar:       nutrients["Sugars, total including NLEA"] * scale,
		Sodium:      nutrients["Sodium, Na"] * scale / 1000, // mg → g
		DataSource:  SourceUSDA,
		Confidence:  0.85,
		Source:      best.Description,
	}
	return rec, nil
}

func (s *USDAService) get(u string) ([]byte, error) {
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
