package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myhien-tailor/engagement/internal/models"
)

// Category tags derived from product names. Tags are Vietnamese because the
// catalog is; "khác" collects everything unmatched.
const (
	tagAoDai   = "áo dài"
	tagVest    = "vest"
	tagDress   = "đầm"
	tagTrousers = "quần"
	tagShirt   = "sơ mi"
	tagWedding = "cưới"
	tagOffice  = "công sở"
	tagEvening = "dạ hội"
	tagOther   = "khác"
)

// Body-type classifications from measurement ratios.
const (
	bodyBroadShoulder = "vai rộng"
	bodyNarrowWaist   = "eo nhỏ"
	bodyPear          = "quả lê"
	bodyStraight      = "thẳng"
)

// Price tiers from the average order value.
const (
	pricePremium  = "cao cấp"
	priceMid      = "trung bình"
	priceStandard = "phổ thông"
)

// Purchase frequency from the gap between the two most recent purchases.
const (
	freqFrequent   = "thường xuyên"
	freqPeriodic   = "định kỳ"
	freqOccasional = "thỉnh thoảng"
)

var (
	priceThresholdPremium = decimal.NewFromInt(3_000_000)
	priceThresholdMid     = decimal.NewFromInt(1_500_000)
)

// categoryOf maps a product name to its category tag by case-insensitive
// substring matching, diacritic-stripped spellings included. Match order is
// fixed; the first hit wins.
func categoryOf(name string) string {
	if name == "" {
		return tagOther
	}
	lowered := strings.ToLower(name)

	contains := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("áo dài", "ao dai", "aodai"):
		return tagAoDai
	case contains("vest", "áo vest"):
		return tagVest
	case contains("đầm", "dam", "váy"):
		return tagDress
	case contains("quần", "quan"):
		return tagTrousers
	case contains("sơ mi", "so mi"):
		return tagShirt
	case contains("cưới", "cuoi"):
		return tagWedding
	case contains("công sở", "cong so"):
		return tagOffice
	case contains("dạ hội", "da hoi"):
		return tagEvening
	}
	return tagOther
}

// classifyBody derives a body-type tag from the latest measurement. When both
// the chest/waist and hip/waist ratios classify, the hip/waist result wins
// because it is computed last; there is no combination logic.
func classifyBody(m *models.Measurement) string {
	if m == nil {
		return ""
	}

	chest := m.Value("chest")
	waist := m.Value("waist")
	hip := m.Value("hip", "hips")

	bodyType := ""
	if chest > 0 && waist > 0 {
		ratio := chest / waist
		if ratio > 1.15 {
			bodyType = bodyBroadShoulder
		} else if ratio < 0.95 {
			bodyType = bodyNarrowWaist
		}
	}

	if hip > 0 && waist > 0 {
		ratio := hip / waist
		if ratio > 1.3 {
			bodyType = bodyPear
		} else if ratio < 1.1 {
			bodyType = bodyStraight
		}
	}

	return bodyType
}

func priceTierOf(cards []models.ProductCard) string {
	if len(cards) == 0 {
		return priceStandard
	}

	total := decimal.Zero
	for _, card := range cards {
		total = total.Add(parseAmount(card.Price))
	}
	avg := total.Div(decimal.NewFromInt(int64(len(cards))))

	switch {
	case avg.GreaterThan(priceThresholdPremium):
		return pricePremium
	case avg.GreaterThan(priceThresholdMid):
		return priceMid
	}
	return priceStandard
}

func frequencyOf(cards []models.ProductCard) string {
	if len(cards) < 2 {
		return freqOccasional
	}

	dates := make([]time.Time, len(cards))
	for i, card := range cards {
		dates[i] = card.Date.Time
	}
	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })

	daysBetween := dates[0].Sub(dates[1]).Hours() / 24
	switch {
	case daysBetween < 90:
		return freqFrequent
	case daysBetween < 180:
		return freqPeriodic
	}
	return freqOccasional
}

// RecommendationService derives merchandising suggestion groups from the
// purchase history and body measurements. The output is deterministic given
// the inputs and the clock; there is no randomness.
type RecommendationService struct {
	now func() time.Time
}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{now: time.Now}
}

// Generate builds the suggestion groups. History-dependent groups only fire
// when there is at least one qualifying purchase; the seasonal group always
// appears; a customer without purchases gets the fixed starter group instead.
func (r *RecommendationService) Generate(cards []models.ProductCard, latest *models.Measurement) []models.Recommendation {
	recs := []models.Recommendation{}

	counts := make(map[string]int)
	for _, card := range cards {
		counts[categoryOf(card.Name)]++
	}

	bodyType := classifyBody(latest)
	priceTier := priceTierOf(cards)
	frequency := frequencyOf(cards)

	weddingOccasion := counts[tagWedding] > 0 || counts[tagAoDai] > 0
	officeOccasion := counts[tagVest] > 0 || counts[tagOffice] > 0 || counts[tagShirt] > 0

	if len(cards) > 0 {
		if counts[tagAoDai] > 0 {
			recs = append(recs, models.Recommendation{
				Type:  models.RecComplement,
				Title: "✨ Phối hợp hoàn hảo với áo dài",
				Items: []models.SuggestedItem{
					{Name: "Quần ống rộng may đo", Reason: "Tạo bộ áo dài truyền thống hoàn chỉnh", Price: "Từ 800.000₫"},
					{Name: "Áo khoác ngoài", Reason: "Giữ ấm trong dịp lễ Tết, tiệc tối", Price: "Từ 1.200.000₫"},
				},
			})
		}

		if counts[tagVest] > 0 || counts[tagOffice] > 0 {
			recs = append(recs, models.Recommendation{
				Type:  models.RecSimilar,
				Title: "💼 Hoàn thiện tủ đồ công sở",
				Items: []models.SuggestedItem{
					{Name: "Sơ mi may đo", Reason: "Phối với vest tạo bộ đồ công sở chuyên nghiệp", Price: "Từ 1.000.000₫"},
					{Name: "Quần âu may đo", Reason: "Tạo bộ đồ công sở hoàn chỉnh, lịch sự", Price: "Từ 1.200.000₫"},
				},
			})
		}

		if counts[tagDress] > 0 || counts[tagEvening] > 0 {
			recs = append(recs, models.Recommendation{
				Type:  models.RecComplement,
				Title: "👗 Phụ kiện cho đầm dạ hội",
				Items: []models.SuggestedItem{
					{Name: "Áo khoác nhẹ", Reason: "Che vai, tạo điểm nhấn cho đầm dạ hội", Price: "Từ 1.500.000₫"},
					{Name: "Đầm dự tiệc khác", Reason: "Đa dạng tủ đồ cho các sự kiện", Price: "Từ 2.500.000₫"},
				},
			})
		}

		switch bodyType {
		case bodyBroadShoulder:
			recs = append(recs, models.Recommendation{
				Type:  models.RecBodyFit,
				Title: "📐 Gợi ý phù hợp dáng người",
				Items: []models.SuggestedItem{
					{Name: "Áo dài form suông", Reason: "Tôn dáng, che vai rộng hiệu quả", Price: "Từ 2.500.000₫"},
					{Name: "Đầm cổ chữ V", Reason: "Tạo cảm giác vai nhỏ hơn", Price: "Từ 2.800.000₫"},
				},
			})
		case bodyNarrowWaist:
			recs = append(recs, models.Recommendation{
				Type:  models.RecBodyFit,
				Title: "📐 Gợi ý phù hợp dáng người",
				Items: []models.SuggestedItem{
					{Name: "Áo dài eo cao", Reason: "Tôn vòng eo nhỏ của bạn", Price: "Từ 2.500.000₫"},
					{Name: "Đầm ôm eo", Reason: "Làm nổi bật vòng eo", Price: "Từ 2.200.000₫"},
				},
			})
		}

		if priceTier == pricePremium {
			recs = append(recs, models.Recommendation{
				Type:  models.RecPriceBased,
				Title: "💎 Sản phẩm cao cấp phù hợp",
				Items: []models.SuggestedItem{
					{Name: "Áo dài lụa cao cấp", Reason: "Phù hợp với phong cách của bạn", Price: "Từ 3.500.000₫"},
					{Name: "Vest dạ nhập khẩu", Reason: "Chất liệu cao cấp, bền đẹp", Price: "Từ 4.000.000₫"},
				},
			})
		}

		// XOR on wedding/office keeps the two occasion groups from
		// contradicting each other.
		if weddingOccasion && !officeOccasion {
			recs = append(recs, models.Recommendation{
				Type:  models.RecOccasion,
				Title: "💒 Mở rộng tủ đồ cho dịp đặc biệt",
				Items: []models.SuggestedItem{
					{Name: "Áo dài cưới khác màu", Reason: "Đa dạng cho các dịp lễ", Price: "Từ 2.500.000₫"},
					{Name: "Đầm dự tiệc", Reason: "Cho các sự kiện khác", Price: "Từ 2.800.000₫"},
				},
			})
		}

		if officeOccasion && !weddingOccasion {
			recs = append(recs, models.Recommendation{
				Type:  models.RecOccasion,
				Title: "💼 Bổ sung cho tủ đồ công sở",
				Items: []models.SuggestedItem{
					{Name: "Áo dài công sở", Reason: "Thay đổi phong cách, vẫn lịch sự", Price: "Từ 2.200.000₫"},
					{Name: "Vest màu khác", Reason: "Đa dạng màu sắc cho công sở", Price: "Từ 1.800.000₫"},
				},
			})
		}

		if frequency == freqFrequent {
			recs = append(recs, models.Recommendation{
				Type:  models.RecLoyalty,
				Title: "🎁 Ưu đãi cho khách hàng thân thiết",
				Items: []models.SuggestedItem{
					{Name: "Bất kỳ sản phẩm nào", Reason: "Bạn được giảm 10% cho đơn hàng tiếp theo", Price: "Giảm 10%"},
				},
			})
		}
	}

	recs = append(recs, r.seasonalGroup())

	if len(cards) == 0 {
		recs = append(recs, models.Recommendation{
			Type:  models.RecFirstTime,
			Title: "🎯 Bắt đầu với những món cơ bản",
			Items: []models.SuggestedItem{
				{Name: "Áo dài cưới", Reason: "Phù hợp nhiều dịp quan trọng: cưới hỏi, lễ Tết", Price: "Từ 2.500.000₫"},
				{Name: "Vest công sở", Reason: "Sử dụng hàng ngày, lịch sự, chuyên nghiệp", Price: "Từ 1.800.000₫"},
				{Name: "Đầm dạ hội", Reason: "Cho các sự kiện đặc biệt, tiệc tối", Price: "Từ 3.200.000₫"},
			},
		})
	}

	return recs
}

// seasonalGroup picks exactly one group by calendar month: Nov–Feb winter,
// Mar–May spring, otherwise summer.
func (r *RecommendationService) seasonalGroup() models.Recommendation {
	now := r.now()
	month := int(now.Month())
	year := now.Year()

	switch {
	case month >= 11 || month <= 2:
		return models.Recommendation{
			Type:  models.RecSeasonal,
			Title: fmt.Sprintf("❄️ Xu hướng mùa đông %d", year),
			Items: []models.SuggestedItem{
				{Name: "Áo khoác len may đo", Reason: "Giữ ấm, thanh lịch, vừa vặn", Price: "Từ 2.500.000₫"},
				{Name: "Vest dạ", Reason: "Phù hợp thời tiết lạnh, sang trọng", Price: "Từ 3.200.000₫"},
			},
		}
	case month >= 3 && month <= 5:
		return models.Recommendation{
			Type:  models.RecSeasonal,
			Title: fmt.Sprintf("🌸 Xu hướng mùa xuân %d", year),
			Items: []models.SuggestedItem{
				{Name: "Áo dài lụa mỏng", Reason: "Thoáng mát, nhẹ nhàng, màu sắc tươi", Price: "Từ 2.500.000₫"},
				{Name: "Đầm suông", Reason: "Dễ mặc, dễ phối, phù hợp thời tiết", Price: "Từ 2.200.000₫"},
			},
		}
	}
	return models.Recommendation{
		Type:  models.RecSeasonal,
		Title: fmt.Sprintf("☀️ Xu hướng mùa hè %d", year),
		Items: []models.SuggestedItem{
			{Name: "Áo dài lụa mỏng", Reason: "Thoáng mát, nhẹ nhàng", Price: "Từ 2.500.000₫"},
			{Name: "Đầm suông", Reason: "Dễ mặc, dễ phối", Price: "Từ 2.200.000₫"},
		},
	}
}
