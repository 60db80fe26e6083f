package refdata

import "testing"

// TestConvert проверяет пересчет через USD и округление.
func TestConvert(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{"usd to eur", 100, "USD", "EUR", 92.0},
		{"identity", 100, "USD", "USD", 100.0},
		{"eur to usd", 92, "EUR", "USD", 100.0},
		{"usd to inr", 10, "USD", "INR", 831.2},
		{"lowercase codes", 100, "usd", "eur", 92.0},
		{"unknown from degrades to usd", 100, "XXX", "EUR", 92.0},
		{"unknown to degrades to usd", 100, "EUR", "XXX", 108.7},
		{"zero amount", 0, "USD", "EUR", 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(tc.amount, tc.from, tc.to)
			if got != tc.want {
				t.Fatalf("Convert(%v, %s, %s) = %v, want %v", tc.amount, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

// TestConvertRounding проверяет округление до двух знаков.
func TestConvertRounding(t *testing.T) {
	got := Convert(1, "USD", "INR")
	if got != 83.12 {
		t.Fatalf("expected 83.12, got %v", got)
	}

	got = Convert(1, "INR", "USD")
	if got != 0.01 {
		t.Fatalf("expected 0.01, got %v", got)
	}
}

// TestCurrenciesCatalog проверяет состав справочника валют.
func TestCurrenciesCatalog(t *testing.T) {
	list := Currencies()
	if len(list) == 0 {
		t.Fatal("expected a non-empty currency catalog")
	}

	seen := make(map[string]bool, len(list))
	for _, currency := range list {
		if len(currency.Code) != 3 {
			t.Fatalf("unexpected currency code %q", currency.Code)
		}
		if seen[currency.Code] {
			t.Fatalf("duplicate currency code %q", currency.Code)
		}
		seen[currency.Code] = true
	}

	if !seen["USD"] || !seen["EUR"] || !seen["INR"] {
		t.Fatal("catalog is missing a core currency")
	}

	// Возвращаемый срез должен быть копией.
	list[0].Rate = -1
	if Currencies()[0].Rate == -1 {
		t.Fatal("Currencies must return a copy")
	}
}
