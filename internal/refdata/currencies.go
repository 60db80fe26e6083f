package refdata

import (
	"math"
	"strings"
)

type Currency struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	// Rate — курс за 1 USD.
	Rate float64 `json:"rate"`
}

var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 1.0},
	{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.92},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 0.79},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Rate: 83.12},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: 149.50},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Rate: 1.53},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Rate: 1.36},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "Fr", Rate: 0.88},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Rate: 7.24},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", Rate: 3.67},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Rate: 1.34},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿", Rate: 35.80},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Rate: 15650.0},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "Mex$", Rate: 17.10},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Rate: 4.97},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Rate: 18.65},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Rate: 32.20},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽", Rate: 92.50},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", Rate: 1335.0},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Rate: 1.66},
}

// Currencies возвращает справочник валют.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

func rateFor(code string) float64 {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, currency := range currencies {
		if currency.Code == code {
			return currency.Rate
		}
	}

	// Неизвестный код деградирует до курса USD, а не до ошибки.
	return 1.0
}

// Convert пересчитывает сумму между валютами через USD и округляет до
// двух знаков. Функция тотальна: отказов нет ни для каких аргументов.
func Convert(amount float64, fromCode, toCode string) float64 {
	converted := amount / rateFor(fromCode) * rateFor(toCode)
	return math.Round(converted*100) / 100
}
