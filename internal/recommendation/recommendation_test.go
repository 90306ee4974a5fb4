package recommendation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"ulascansenturk/weather-wear/internal/recommendation"
)

var (
	freezingItems = []recommendation.Recommendation{
		{Category: recommendation.Coat, Text: "Heavy winter coat"},
		{Category: recommendation.Accessories, Text: "Warm gloves and scarf"},
		{Category: recommendation.Underwear, Text: "Thermal underwear"},
		{Category: recommendation.Boots, Text: "Winter boots"},
	}
	coldItems = []recommendation.Recommendation{
		{Category: recommendation.Coat, Text: "Warm jacket or coat"},
		{Category: recommendation.Accessories, Text: "Gloves"},
		{Category: recommendation.Shirt, Text: "Long-sleeved shirt"},
		{Category: recommendation.Pants, Text: "Warm pants"},
	}
	coolItems = []recommendation.Recommendation{
		{Category: recommendation.Sweater, Text: "Light jacket or sweater"},
		{Category: recommendation.Shirt, Text: "Long-sleeved shirt"},
		{Category: recommendation.Pants, Text: "Jeans or casual pants"},
	}
	mildItems = []recommendation.Recommendation{
		{Category: recommendation.Shirt, Text: "Light shirt or t-shirt"},
		{Category: recommendation.Shorts, Text: "Light pants or shorts"},
		{Category: recommendation.Coat, Text: "Light jacket (optional)"},
	}
	hotItems = []recommendation.Recommendation{
		{Category: recommendation.Shirt, Text: "Light, breathable clothing"},
		{Category: recommendation.Shorts, Text: "Shorts or light pants"},
		{Category: recommendation.Accessories, Text: "Sun protection (hat, sunscreen)"},
	}
	rainItems = []recommendation.Recommendation{
		{Category: recommendation.Umbrella, Text: "Raincoat or umbrella"},
		{Category: recommendation.Boots, Text: "Waterproof shoes or boots"},
	}
	snowItems = []recommendation.Recommendation{
		{Category: recommendation.Boots, Text: "Snow boots"},
		{Category: recommendation.Accessories, Text: "Waterproof gloves"},
	}
	sunItems = []recommendation.Recommendation{
		{Category: recommendation.Accessories, Text: "Sunglasses"},
		{Category: recommendation.Hat, Text: "Sun hat or cap"},
	}
)

func concat(groups ...[]recommendation.Recommendation) []recommendation.Recommendation {
	var out []recommendation.Recommendation
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

type RecommendTestSuite struct {
	suite.Suite
}

func (s *RecommendTestSuite) TestTemperatureTiers() {
	tests := []struct {
		name  string
		temp  float64
		tier  string
		items []recommendation.Recommendation
	}{
		{"far below freezing", -40, "freezing", freezingItems},
		{"just below freezing", 31.9, "freezing", freezingItems},
		{"freezing boundary", 32, "cold", coldItems},
		{"just below cool", 49.9, "cold", coldItems},
		{"cool boundary", 50, "cool", coolItems},
		{"just below mild", 64.9, "cool", coolItems},
		{"mild boundary", 65, "mild", mildItems},
		{"just below hot", 74.9, "mild", mildItems},
		{"hot boundary", 75, "hot", hotItems},
		{"very hot", 120, "hot", hotItems},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.items, recommendation.Recommend(tt.temp, "overcast clouds"))
			s.Equal(tt.tier, recommendation.Tier(tt.temp))
		})
	}
}

func (s *RecommendTestSuite) TestBoundaryWithClearSky() {
	below := recommendation.Recommend(31.9, "clear")
	s.Equal(concat(freezingItems, sunItems), below)

	at := recommendation.Recommend(32.0, "clear")
	s.Equal(concat(coldItems, sunItems), at)
	for _, item := range freezingItems {
		s.NotContains(at, item)
	}
}

func (s *RecommendTestSuite) TestConditionTriggers() {
	tests := []struct {
		name      string
		condition string
		want      []recommendation.Recommendation
	}{
		{"no keyword", "overcast clouds", mildItems},
		{"empty condition", "", mildItems},
		{"rain", "light rain", concat(mildItems, rainItems)},
		{"snow", "heavy snow", concat(mildItems, snowItems)},
		{"sun", "sunny", concat(mildItems, sunItems)},
		{"clear", "clear sky", concat(mildItems, sunItems)},
		{"sun and clear fire once", "clear and sunny", concat(mildItems, sunItems)},
		{"case insensitive", "Light RAIN", concat(mildItems, rainItems)},
		{"rain and snow", "rain and snow", concat(mildItems, rainItems, snowItems)},
		{"fixed order regardless of text order", "sun then snow then rain", concat(mildItems, rainItems, snowItems, sunItems)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, recommendation.Recommend(70, tt.condition))
		})
	}
}

func (s *RecommendTestSuite) TestTriggersCompose() {
	got := recommendation.Recommend(20, "light snow and sun")

	s.Equal(concat(freezingItems, snowItems, sunItems), got)
}

func (s *RecommendTestSuite) TestDuplicateCategoriesAllowed() {
	got := recommendation.Recommend(40, "freezing rain")

	s.Equal(concat(coldItems, rainItems), got)
	s.Equal(recommendation.Coat, got[0].Category)
	s.Equal(recommendation.Umbrella, got[4].Category)
}

func (s *RecommendTestSuite) TestDeterministic() {
	first := recommendation.Recommend(55.5, "light rain and clear")
	for i := 0; i < 10; i++ {
		s.Equal(first, recommendation.Recommend(55.5, "light rain and clear"))
	}
}

func (s *RecommendTestSuite) TestReturnsFreshSlice() {
	first := recommendation.Recommend(10, "snow")
	first[0].Text = "mutated"

	second := recommendation.Recommend(10, "snow")
	s.Equal("Heavy winter coat", second[0].Text)
}

func TestRecommendSuite(t *testing.T) {
	suite.Run(t, new(RecommendTestSuite))
}

func TestTier_NaNFallsIntoLastTier(t *testing.T) {
	assert.Equal(t, "hot", recommendation.Tier(math.NaN()))
}
