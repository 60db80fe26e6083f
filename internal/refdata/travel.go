package refdata

import "strings"

type VisaRule struct {
	PassportCountry    string `json:"passport_country"`
	DestinationCountry string `json:"destination_country"`
	VisaRequired       bool   `json:"visa_required"`
	VisaType           string `json:"visa_type"`
	MaxStay            string `json:"max_stay,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

type InsuranceProvider struct {
	Name     string `json:"name"`
	Coverage string `json:"coverage"`
	URL      string `json:"url"`
}

type BaggageAllowance struct {
	CabinClass  string `json:"cabin_class"`
	CarryOn     string `json:"carry_on"`
	CheckedBags string `json:"checked_bags"`
	Notes       string `json:"notes,omitempty"`
}

type PopularDestination struct {
	Name    string `json:"name"`
	Image   string `json:"image"`
	Tagline string `json:"tagline"`
}

// visaFree перечисляет пары паспорт→направление с безвизовым въездом.
// Матрица намеренно неполная: отсутствующая пара трактуется как
// "виза нужна, уточните в посольстве".
var visaFree = map[string][]string{
	"US": {"FR", "DE", "IT", "ES", "PT", "NL", "GB", "GR", "JP", "KR", "SG", "MY", "TH", "ID", "AE", "MX", "BR", "ZA", "CA"},
	"GB": {"FR", "DE", "IT", "ES", "PT", "NL", "GR", "US", "JP", "KR", "SG", "MY", "TH", "ID", "AE", "MX", "BR", "ZA", "CA"},
	"DE": {"FR", "IT", "ES", "PT", "NL", "GB", "GR", "US", "JP", "KR", "SG", "MY", "TH", "ID", "AE", "MX", "BR", "ZA", "CA"},
	"FR": {"DE", "IT", "ES", "PT", "NL", "GB", "GR", "US", "JP", "KR", "SG", "MY", "TH", "ID", "AE", "MX", "BR", "ZA", "CA"},
	"IN": {"TH", "ID", "MV", "AE", "SG"},
	"SG": {"US", "GB", "FR", "DE", "IT", "ES", "JP", "KR", "MY", "TH", "ID", "AE"},
	"AU": {"GB", "FR", "DE", "IT", "ES", "JP", "KR", "SG", "MY", "TH", "ID", "AE", "US", "CA"},
}

// LookupVisaRule возвращает правило въезда для пары стран. Одинаковые
// страны означают внутреннюю поездку без визы.
func LookupVisaRule(passportCountry, destinationCountry string) VisaRule {
	passport := strings.ToUpper(strings.TrimSpace(passportCountry))
	destination := strings.ToUpper(strings.TrimSpace(destinationCountry))

	rule := VisaRule{
		PassportCountry:    passport,
		DestinationCountry: destination,
	}

	if passport == destination {
		rule.VisaRequired = false
		rule.VisaType = "N/A"
		rule.Notes = "Domestic travel, no visa needed."
		return rule
	}

	for _, code := range visaFree[passport] {
		if code == destination {
			rule.VisaRequired = false
			rule.VisaType = "Visa-free"
			rule.MaxStay = "90 days"
			rule.Notes = "Short tourist stays are visa-free. Verify current rules before travel."
			return rule
		}
	}

	rule.VisaRequired = true
	rule.VisaType = "Tourist visa"
	rule.Notes = "A visa is likely required. Confirm requirements with the embassy."
	return rule
}

var insuranceProviders = []InsuranceProvider{
	{Name: "World Nomads", Coverage: "Adventure travel, medical, trip cancellation", URL: "https://www.worldnomads.com"},
	{Name: "SafetyWing", Coverage: "Long-term travel medical for nomads", URL: "https://safetywing.com"},
	{Name: "Allianz Travel", Coverage: "Comprehensive trip and medical cover", URL: "https://www.allianztravelinsurance.com"},
	{Name: "AXA Assistance", Coverage: "Trip interruption, medical, baggage", URL: "https://www.axatravelinsurance.com"},
	{Name: "InsureMyTrip", Coverage: "Comparison marketplace for trip insurance", URL: "https://www.insuremytrip.com"},
}

// InsuranceProviders возвращает справочник страховых провайдеров.
func InsuranceProviders() []InsuranceProvider {
	out := make([]InsuranceProvider, len(insuranceProviders))
	copy(out, insuranceProviders)
	return out
}

var baggageAllowances = map[string]BaggageAllowance{
	"economy": {
		CabinClass:  "economy",
		CarryOn:     "1 bag up to 7 kg",
		CheckedBags: "1 bag up to 23 kg",
		Notes:       "Low-cost carriers may charge for checked bags.",
	},
	"premium-economy": {
		CabinClass:  "premium-economy",
		CarryOn:     "1 bag up to 10 kg",
		CheckedBags: "2 bags up to 23 kg each",
	},
	"business": {
		CabinClass:  "business",
		CarryOn:     "2 bags up to 10 kg total",
		CheckedBags: "2 bags up to 32 kg each",
	},
	"first": {
		CabinClass:  "first",
		CarryOn:     "2 bags up to 14 kg total",
		CheckedBags: "3 bags up to 32 kg each",
	},
}

// BaggageInfo возвращает нормы багажа для класса обслуживания.
func BaggageInfo(cabinClass string) (BaggageAllowance, bool) {
	allowance, ok := baggageAllowances[strings.ToLower(strings.TrimSpace(cabinClass))]
	return allowance, ok
}

var packingLists = map[string][]string{
	"beach": {
		"Swimwear", "Sunscreen SPF 50+", "Sunglasses", "Beach towel", "Flip-flops",
		"Light cover-up", "Waterproof phone pouch", "After-sun lotion",
	},
	"city": {
		"Comfortable walking shoes", "Day backpack", "Portable charger",
		"Reusable water bottle", "Light jacket", "City map or offline maps",
	},
	"hiking": {
		"Hiking boots", "Moisture-wicking layers", "Rain shell", "First aid kit",
		"Headlamp", "Trekking poles", "Water purification tablets", "Trail snacks",
	},
	"winter": {
		"Insulated jacket", "Thermal base layers", "Gloves and beanie",
		"Waterproof boots", "Lip balm", "Hand warmers",
	},
	"business": {
		"Suit or formal wear", "Laptop and charger", "Travel adapter",
		"Business cards", "Wrinkle-release spray", "Dress shoes",
	},
}

// PackingList возвращает список вещей для стиля поездки.
func PackingList(style string) ([]string, bool) {
	list, ok := packingLists[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		return nil, false
	}

	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

// PackingStyles возвращает поддерживаемые стили поездки.
func PackingStyles() []string {
	return []string{"beach", "business", "city", "hiking", "winter"}
}

var popularDestinations = []PopularDestination{
	{Name: "Paris, France", Image: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800", Tagline: "City of Lights"},
	{Name: "Tokyo, Japan", Image: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800", Tagline: "Where tradition meets future"},
	{Name: "Bali, Indonesia", Image: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800", Tagline: "Island of the Gods"},
	{Name: "New York, USA", Image: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800", Tagline: "The city that never sleeps"},
	{Name: "Santorini, Greece", Image: "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800", Tagline: "Aegean gem"},
	{Name: "Dubai, UAE", Image: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800", Tagline: "Future reimagined"},
	{Name: "Rome, Italy", Image: "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800", Tagline: "Eternal City"},
	{Name: "Maldives", Image: "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800", Tagline: "Paradise on Earth"},
}

// PopularDestinations возвращает подборку направлений для вдохновения.
func PopularDestinations() []PopularDestination {
	out := make([]PopularDestination, len(popularDestinations))
	copy(out, popularDestinations)
	return out
}
