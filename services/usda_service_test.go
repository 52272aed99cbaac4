package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCandidate(t *testing.T) {
	cases := []struct {
		label       string
		description string
		want        int
	}{
		{"apple", "Apple, raw", 120},       // contains +50, raw +30, prefix +40
		{"apple", "Apple sauce, canned", 70}, // contains +50, processing -20, prefix +40
		{"apple", "Fresh fruit medley", 20},  // fresh +20 only
		{"banana", "Plantains, cooked", -20}, // processing penalty only
		{"rice", "Rice, white, long-grain, raw", 120},
	}
	for _, tc := range cases {
		got := scoreCandidate(tc.label, strings.ToLower(tc.description))
		assert.Equal(t, tc.want, got, "%q vs %q", tc.label, tc.description)
	}
}

func newUSDATestServer(t *testing.T, searchJSON, detailJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/foods/search"):
			fmt.Fprint(w, searchJSON)
		case strings.HasPrefix(r.URL.Path, "/food/"):
			fmt.Fprint(w, detailJSON)
		default:
			http.NotFound(w, r)
		}
	}))
}

func testUSDAService(url string) *USDAService {
	return &USDAService{
		apiKey:  "test-key",
		baseURL: url,
		client:  &http.Client{Timeout: time.Second},
	}
}

func TestUSDALookupScalesAndConverts(t *testing.T) {
	search := `{"foods":[
		{"fdcId":7,"description":"Apple, raw"},
		{"fdcId":8,"description":"Apple sauce, canned"}
	]}`
	// energy only in kJ: 418.4 kJ / 4.184 = 100 kcal per 100g
	detail := `{"foodNutrients":[
		{"nutrient":{"name":"Energy","unitName":"kJ"},"amount":418.4},
		{"nutrient":{"name":"Protein","unitName":"g"},"amount":10},
		{"nutrient":{"name":"Carbohydrate, by difference","unitName":"g"},"amount":25},
		{"nutrient":{"name":"Total lipid (fat)","unitName":"g"},"amount":1},
		{"nutrient":{"name":"Sodium, Na","unitName":"mg"},"amount":500}
	]}`
	srv := newUSDATestServer(t, search, detail)
	defer srv.Close()

	rec, err := testUSDAService(srv.URL).Lookup("apple", 200)
	require.NoError(t, err)

	assert.Equal(t, "apple", rec.FoodName)
	assert.Equal(t, 200.0, rec.WeightGrams)
	assert.InDelta(t, 200.0, rec.Calories, 0.001)
	assert.InDelta(t, 20.0, rec.Protein, 0.001)
	assert.InDelta(t, 50.0, rec.Carbs, 0.001)
	assert.InDelta(t, 1.0, rec.Sodium, 0.001) // 500mg x2, converted to grams
	assert.Equal(t, SourceUSDA, rec.DataSource)
	assert.Equal(t, 0.85, rec.Confidence)
	assert.Equal(t, "Apple, raw", rec.Source)
}

func TestUSDALookupPrefersKcal(t *testing.T) {
	search := `{"foods":[{"fdcId":1,"description":"Rice, raw"}]}`
	detail := `{"foodNutrients":[
		{"nutrient":{"name":"Energy","unitName":"kJ"},"amount":2000},
		{"nutrient":{"name":"Energy","unitName":"kcal"},"amount":130}
	]}`
	srv := newUSDATestServer(t, search, detail)
	defer srv.Close()

	rec, err := testUSDAService(srv.URL).Lookup("rice", 100)
	require.NoError(t, err)
	assert.InDelta(t, 130.0, rec.Calories, 0.001)
}

func TestUSDALookupPicksBestCandidate(t *testing.T) {
	// second hit scores higher (raw beats canned)
	search := `{"foods":[
		{"fdcId":1,"description":"Apple sauce, canned"},
		{"fdcId":2,"description":"Apple, raw"}
	]}`
	detail := `{"foodNutrients":[{"nutrient":{"name":"Energy","unitName":"kcal"},"amount":52}]}`

	var detailPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/food/") {
			detailPath = r.URL.Path
			fmt.Fprint(w, detail)
			return
		}
		fmt.Fprint(w, search)
	}))
	defer srv.Close()

	rec, err := testUSDAService(srv.URL).Lookup("apple", 100)
	require.NoError(t, err)
	assert.Equal(t, "/food/2", detailPath)
	assert.Equal(t, "Apple, raw", rec.Source)
}

func TestUSDALookupNoResults(t *testing.T) {
	srv := newUSDATestServer(t, `{"foods":[]}`, `{}`)
	defer srv.Close()

	_, err := testUSDAService(srv.URL).Lookup("unobtainium", 100)
	assert.Error(t, err)
}

func TestUSDALookupMissingKey(t *testing.T) {
	svc := &USDAService{client: &http.Client{}}
	_, err := svc.Lookup("apple", 100)
	assert.Error(t, err)
}

func TestUSDALookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testUSDAService(srv.URL).Lookup("apple", 100)
	assert.Error(t, err)
}
