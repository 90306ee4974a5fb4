package recommendation

import (
	"math"
	"strings"
)

type Category string

const (
	Coat        Category = "coat"
	Accessories Category = "accessories"
	Underwear   Category = "underwear"
	Boots       Category = "boots"
	Shirt       Category = "shirt"
	Pants       Category = "pants"
	Shorts      Category = "shorts"
	Sweater     Category = "sweater"
	Hat         Category = "hat"
	Umbrella    Category = "umbrella"
)

type Recommendation struct {
	Category Category `json:"type"`
	Text     string   `json:"text"`
}

type tier struct {
	name  string
	below float64
	items []Recommendation
}

type trigger struct {
	keywords []string
	items    []Recommendation
}

// tiers are checked in order against an exclusive upper bound, so a
// boundary temperature lands in the warmer tier.
var tiers = []tier{
	{
		name:  "freezing",
		below: 32,
		items: []Recommendation{
			{Coat, "Heavy winter coat"},
			{Accessories, "Warm gloves and scarf"},
			{Underwear, "Thermal underwear"},
			{Boots, "Winter boots"},
		},
	},
	{
		name:  "cold",
		below: 50,
		items: []Recommendation{
			{Coat, "Warm jacket or coat"},
			{Accessories, "Gloves"},
			{Shirt, "Long-sleeved shirt"},
			{Pants, "Warm pants"},
		},
	},
	{
		name:  "cool",
		below: 65,
		items: []Recommendation{
			{Sweater, "Light jacket or sweater"},
			{Shirt, "Long-sleeved shirt"},
			{Pants, "Jeans or casual pants"},
		},
	},
	{
		name:  "mild",
		below: 75,
		items: []Recommendation{
			{Shirt, "Light shirt or t-shirt"},
			{Shorts, "Light pants or shorts"},
			{Coat, "Light jacket (optional)"},
		},
	},
	{
		name:  "hot",
		below: math.Inf(1),
		items: []Recommendation{
			{Shirt, "Light, breathable clothing"},
			{Shorts, "Shorts or light pants"},
			{Accessories, "Sun protection (hat, sunscreen)"},
		},
	},
}

var triggers = []trigger{
	{
		keywords: []string{"rain"},
		items: []Recommendation{
			{Umbrella, "Raincoat or umbrella"},
			{Boots, "Waterproof shoes or boots"},
		},
	},
	{
		keywords: []string{"snow"},
		items: []Recommendation{
			{Boots, "Snow boots"},
			{Accessories, "Waterproof gloves"},
		},
	},
	{
		keywords: []string{"sun", "clear"},
		items: []Recommendation{
			{Accessories, "Sunglasses"},
			{Hat, "Sun hat or cap"},
		},
	},
}

// Recommend returns the temperature tier items followed by the items of every
// condition keyword found in condition. The result is a fresh slice.
func Recommend(temperatureF float64, condition string) []Recommendation {
	t := tierFor(temperatureF)
	recommendations := make([]Recommendation, 0, len(t.items)+4)
	recommendations = append(recommendations, t.items...)

	condition = strings.ToLower(condition)
	for _, tr := range triggers {
		if tr.matches(condition) {
			recommendations = append(recommendations, tr.items...)
		}
	}

	return recommendations
}

// Tier names the temperature tier that fires for temperatureF.
func Tier(temperatureF float64) string {
	return tierFor(temperatureF).name
}

func tierFor(temperatureF float64) tier {
	for _, t := range tiers {
		if temperatureF < t.below {
			return t
		}
	}
	// NaN compares false against every bound
	return tiers[len(tiers)-1]
}

func (tr trigger) matches(condition string) bool {
	for _, keyword := range tr.keywords {
		if strings.Contains(condition, keyword) {
			return true
		}
	}
	return false
}
