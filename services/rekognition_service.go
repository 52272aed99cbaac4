package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Labels Rekognition emits that describe the scene rather than the food.
var nonFoodLabels = map[string]bool{
	"food":    true,
	"meal":    true,
	"dish":    true,
	"plate":   true,
	"cuisine": true,
	"lunch":   true,
	"dinner":  true,
	"brunch":  true,
	"snack":   true,
	"produce": true,
}

type typicalPortion struct {
	keyword     string
	weightGrams float64
}

// Ordered so more specific keywords win before generic ones.
var typicalPortions = []typicalPortion{
	{"pizza", 150},
	{"burger", 200},
	{"sandwich", 150},
	{"salad", 100},
	{"pasta", 200},
	{"rice", 150},
	{"chicken", 120},
	{"beef", 120},
	{"fish", 100},
	{"apple", 150},
	{"banana", 120},
	{"fruit", 80},
	{"bread", 30},
	{"cheese", 50},
	{"egg", 60},
	{"soup", 250},
	{"vegetable", 100},
}

const defaultPortionWeight = 100.0

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// AnalyzeFoodPhoto detects food labels in a base64 data-URI image and
// estimates a portion weight for the most confident food label.
func (r *RekognitionService) AnalyzeFoodPhoto(ctx context.Context, base64Img string) (*RecognitionResult, error) {
	data, err := decodeImageDataURI(base64Img)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(15),
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return nil, err
	}

	type scoredLabel struct {
		name       string
		confidence float64
	}
	var foods []scoredLabel
	for _, l := range out.Labels {
		if l.Name == nil || l.Confidence == nil {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(*l.Name))
		if name == "" || nonFoodLabels[name] {
			continue
		}
		foods = append(foods, scoredLabel{name: name, confidence: float64(*l.Confidence) / 100.0})
	}
	if len(foods) == 0 {
		return nil, errors.New("no food detected in image")
	}

	sort.SliceStable(foods, func(i, j int) bool { return foods[i].confidence > foods[j].confidence })

	primary := foods[0]
	all := make([]string, 0, len(foods))
	for _, f := range foods {
		all = append(all, f.name)
	}

	weight := EstimateTypicalWeight(primary.name)
	return &RecognitionResult{
		PrimaryFood:     primary.name,
		AllFoods:        all,
		EstimatedWeight: weight,
		Confidence:      round3(primary.confidence),
		PortionSize:     describePortion(weight),
		Description:     strings.Join(all, ", "),
	}, nil
}

// EstimateTypicalWeight maps a food name to a typical single-portion
// weight in grams. Unknown foods get a 100g default.
func EstimateTypicalWeight(foodName string) float64 {
	name := strings.ToLower(foodName)
	for _, p := range typicalPortions {
		if strings.Contains(name, p.keyword) {
			return p.weightGrams
		}
	}
	return defaultPortionWeight
}

func describePortion(weightGrams float64) string {
	switch {
	case weightGrams <= 50:
		return "small"
	case weightGrams <= 150:
		return "medium"
	case weightGrams <= 250:
		return "large"
	default:
		return "extra large"
	}
}

func decodeImageDataURI(uri string) ([]byte, error) {
	payload := uri
	if strings.HasPrefix(uri, "data:image") {
		idx := strings.Index(uri, "base64,")
		if idx < 0 {
			return nil, errors.New("invalid image data URI")
		}
		payload = uri[idx+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.New("invalid base64 image data")
	}
	return data, nil
}
