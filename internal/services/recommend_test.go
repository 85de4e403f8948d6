package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/utils"
)

func newRecommendationServiceForTest(now time.Time) *RecommendationService {
	svc := NewRecommendationService()
	svc.now = func() time.Time { return now }
	return svc
}

func findGroup(recs []models.Recommendation, recType models.RecommendationType) *models.Recommendation {
	for i := range recs {
		if recs[i].Type == recType {
			return &recs[i]
		}
	}
	return nil
}

func cardNamed(name string, date time.Time) models.ProductCard {
	return models.ProductCard{
		ID:     name,
		Name:   name,
		Date:   utils.NewRFC3339Date(date),
		Price:  "2000000",
		Status: models.StatusDone,
	}
}

func TestGenerateFirstTimeCustomer(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	recs := svc.Generate(nil, nil)

	require.Len(t, recs, 2)
	assert.Equal(t, models.RecSeasonal, recs[0].Type)

	starter := findGroup(recs, models.RecFirstTime)
	require.NotNil(t, starter)
	require.Len(t, starter.Items, 3)
	assert.Equal(t, "Áo dài cưới", starter.Items[0].Name)
	assert.Equal(t, "Vest công sở", starter.Items[1].Name)
	assert.Equal(t, "Đầm dạ hội", starter.Items[2].Name)
}

func TestGenerateSeasonalTitles(t *testing.T) {
	testCases := []struct {
		month    time.Month
		expected string
	}{
		{time.January, "❄️ Xu hướng mùa đông 2025"},
		{time.February, "❄️ Xu hướng mùa đông 2025"},
		{time.March, "🌸 Xu hướng mùa xuân 2025"},
		{time.May, "🌸 Xu hướng mùa xuân 2025"},
		{time.June, "☀️ Xu hướng mùa hè 2025"},
		{time.October, "☀️ Xu hướng mùa hè 2025"},
		{time.November, "❄️ Xu hướng mùa đông 2025"},
		{time.December, "❄️ Xu hướng mùa đông 2025"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected+" in "+tc.month.String(), func(t *testing.T) {
			svc := newRecommendationServiceForTest(time.Date(2025, tc.month, 15, 0, 0, 0, 0, time.UTC))

			seasonal := findGroup(svc.Generate(nil, nil), models.RecSeasonal)
			require.NotNil(t, seasonal)
			assert.Equal(t, tc.expected, seasonal.Title)
			assert.Len(t, seasonal.Items, 2)
		})
	}
}

func TestGenerateAoDaiComplement(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	recs := svc.Generate([]models.ProductCard{
		cardNamed("Áo dài cưới đỏ", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)

	complement := findGroup(recs, models.RecComplement)
	require.NotNil(t, complement)
	assert.Equal(t, "✨ Phối hợp hoàn hảo với áo dài", complement.Title)
	require.Len(t, complement.Items, 2)
	assert.Equal(t, "Quần ống rộng may đo", complement.Items[0].Name)

	// No starter group once a purchase exists.
	assert.Nil(t, findGroup(recs, models.RecFirstTime))
}

func TestGenerateOfficeSimilar(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	recs := svc.Generate([]models.ProductCard{
		cardNamed("Vest công sở xám", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)

	similar := findGroup(recs, models.RecSimilar)
	require.NotNil(t, similar)
	assert.Equal(t, "💼 Hoàn thiện tủ đồ công sở", similar.Title)
}

func TestGenerateOccasionGroupsAreExclusive(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	// Wedding signal only.
	recs := svc.Generate([]models.ProductCard{cardNamed("Áo dài cưới", date)}, nil)
	occasion := findGroup(recs, models.RecOccasion)
	require.NotNil(t, occasion)
	assert.Equal(t, "💒 Mở rộng tủ đồ cho dịp đặc biệt", occasion.Title)

	// Office signal only.
	recs = svc.Generate([]models.ProductCard{cardNamed("Vest xám", date)}, nil)
	occasion = findGroup(recs, models.RecOccasion)
	require.NotNil(t, occasion)
	assert.Equal(t, "💼 Bổ sung cho tủ đồ công sở", occasion.Title)

	// Both signals cancel each other out.
	recs = svc.Generate([]models.ProductCard{
		cardNamed("Áo dài cưới", date),
		cardNamed("Vest xám", date),
	}, nil)
	assert.Nil(t, findGroup(recs, models.RecOccasion))
}

func TestGenerateBodyFit(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	cards := []models.ProductCard{cardNamed("Đầm dạ hội", date)}

	broad := &models.Measurement{Values: map[string]string{"chest": "100", "waist": "80", "hip": "90"}}
	recs := svc.Generate(cards, broad)
	group := findGroup(recs, models.RecBodyFit)
	require.NotNil(t, group)
	assert.Equal(t, "Áo dài form suông", group.Items[0].Name)

	narrow := &models.Measurement{Values: map[string]string{"chest": "80", "waist": "90", "hip": "105"}}
	recs = svc.Generate(cards, narrow)
	group = findGroup(recs, models.RecBodyFit)
	require.NotNil(t, group)
	assert.Equal(t, "Áo dài eo cao", group.Items[0].Name)

	// The hip/waist classification overrides the chest/waist one.
	pear := &models.Measurement{Values: map[string]string{"chest": "100", "waist": "70", "hip": "95"}}
	recs = svc.Generate(cards, pear)
	assert.Nil(t, findGroup(recs, models.RecBodyFit))
}

func TestGeneratePremiumPriceTier(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	card := cardNamed("Đầm dạ hội", date)
	card.Price = "4000000"

	recs := svc.Generate([]models.ProductCard{card}, nil)
	premium := findGroup(recs, models.RecPriceBased)
	require.NotNil(t, premium)
	assert.Equal(t, "💎 Sản phẩm cao cấp phù hợp", premium.Title)
}

func TestGenerateLoyaltyGroupForFrequentBuyers(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	recs := svc.Generate([]models.ProductCard{
		cardNamed("Đầm dạ hội", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		cardNamed("Đầm suông", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
	}, nil)

	loyalty := findGroup(recs, models.RecLoyalty)
	require.NotNil(t, loyalty)
	require.Len(t, loyalty.Items, 1)
	assert.Equal(t, "Giảm 10%", loyalty.Items[0].Price)

	// Purchases seven months apart are not frequent.
	recs = svc.Generate([]models.ProductCard{
		cardNamed("Đầm dạ hội", time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)),
		cardNamed("Đầm suông", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
	}, nil)
	assert.Nil(t, findGroup(recs, models.RecLoyalty))
}

func TestGenerateIsDeterministic(t *testing.T) {
	svc := newRecommendationServiceForTest(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	cards := []models.ProductCard{
		cardNamed("Áo dài lụa", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		cardNamed("Đầm dạ hội", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
	}
	latest := &models.Measurement{Values: map[string]string{"chest": "100", "waist": "80", "hip": "90"}}

	first := svc.Generate(cards, latest)
	second := svc.Generate(cards, latest)

	assert.Equal(t, first, second)
}

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"Áo dài cưới đỏ", tagAoDai},
		{"ao dai truyền thống", tagAoDai},
		{"Vest công sở", tagVest},
		{"Đầm dạ hội", tagDress},
		{"Quần âu", tagTrousers},
		{"Sơ mi trắng", tagShirt},
		{"", tagOther},
		{"Khăn lụa", tagOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, categoryOf(tc.name))
		})
	}
}
