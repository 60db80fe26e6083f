package refdata

import "testing"

// TestLookupVisaRuleSameCountry проверяет внутреннюю поездку.
func TestLookupVisaRuleSameCountry(t *testing.T) {
	rule := LookupVisaRule("us", "US")

	if rule.VisaRequired {
		t.Fatal("expected no visa for domestic travel")
	}
	if rule.VisaType != "N/A" {
		t.Fatalf("unexpected visa type: %s", rule.VisaType)
	}
}

// TestLookupVisaRuleVisaFree проверяет безвизовую пару стран.
func TestLookupVisaRuleVisaFree(t *testing.T) {
	rule := LookupVisaRule("US", "FR")

	if rule.VisaRequired {
		t.Fatal("expected visa-free entry for US passport to France")
	}
	if rule.VisaType != "Visa-free" {
		t.Fatalf("unexpected visa type: %s", rule.VisaType)
	}
	if rule.MaxStay != "90 days" {
		t.Fatalf("unexpected max stay: %s", rule.MaxStay)
	}
}

// TestLookupVisaRuleRequired проверяет пару вне безвизовой матрицы.
func TestLookupVisaRuleRequired(t *testing.T) {
	rule := LookupVisaRule("IN", "US")

	if !rule.VisaRequired {
		t.Fatal("expected a visa requirement")
	}
	if rule.VisaType != "Tourist visa" {
		t.Fatalf("unexpected visa type: %s", rule.VisaType)
	}
}

// TestBaggageInfo проверяет нормы багажа по классам обслуживания.
func TestBaggageInfo(t *testing.T) {
	allowance, ok := BaggageInfo("Business")
	if !ok {
		t.Fatal("expected baggage info for business class")
	}
	if allowance.CabinClass != "business" {
		t.Fatalf("unexpected cabin class: %s", allowance.CabinClass)
	}

	if _, ok := BaggageInfo("private-jet"); ok {
		t.Fatal("did not expect baggage info for an unknown class")
	}
}

// TestPackingList проверяет списки вещей и отказ для неизвестного стиля.
func TestPackingList(t *testing.T) {
	items, ok := PackingList("BEACH")
	if !ok {
		t.Fatal("expected a beach packing list")
	}
	if len(items) == 0 {
		t.Fatal("expected a non-empty packing list")
	}

	if _, ok := PackingList("space"); ok {
		t.Fatal("did not expect a packing list for an unknown style")
	}

	for _, style := range PackingStyles() {
		if _, ok := PackingList(style); !ok {
			t.Fatalf("advertised style %q has no packing list", style)
		}
	}
}

// TestInsuranceProviders проверяет справочник страховых провайдеров.
func TestInsuranceProviders(t *testing.T) {
	providers := InsuranceProviders()
	if len(providers) == 0 {
		t.Fatal("expected a non-empty provider list")
	}
	for _, provider := range providers {
		if provider.Name == "" || provider.URL == "" {
			t.Fatalf("incomplete provider entry: %+v", provider)
		}
	}
}

// TestPopularDestinations проверяет подборку направлений.
func TestPopularDestinations(t *testing.T) {
	destinations := PopularDestinations()
	if len(destinations) != 8 {
		t.Fatalf("expected 8 destinations, got %d", len(destinations))
	}
	for _, destination := range destinations {
		if destination.Image == "" {
			t.Fatalf("destination %s has no image", destination.Name)
		}
	}
}
