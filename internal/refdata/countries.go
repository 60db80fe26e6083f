package refdata

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

var countries = []Country{
	{Code: "US", Name: "United States", Flag: "🇺🇸"},
	{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧"},
	{Code: "FR", Name: "France", Flag: "🇫🇷"},
	{Code: "DE", Name: "Germany", Flag: "🇩🇪"},
	{Code: "IT", Name: "Italy", Flag: "🇮🇹"},
	{Code: "ES", Name: "Spain", Flag: "🇪🇸"},
	{Code: "PT", Name: "Portugal", Flag: "🇵🇹"},
	{Code: "NL", Name: "Netherlands", Flag: "🇳🇱"},
	{Code: "CH", Name: "Switzerland", Flag: "🇨🇭"},
	{Code: "GR", Name: "Greece", Flag: "🇬🇷"},
	{Code: "TR", Name: "Turkey", Flag: "🇹🇷"},
	{Code: "IN", Name: "India", Flag: "🇮🇳"},
	{Code: "JP", Name: "Japan", Flag: "🇯🇵"},
	{Code: "CN", Name: "China", Flag: "🇨🇳"},
	{Code: "KR", Name: "South Korea", Flag: "🇰🇷"},
	{Code: "TH", Name: "Thailand", Flag: "🇹🇭"},
	{Code: "ID", Name: "Indonesia", Flag: "🇮🇩"},
	{Code: "SG", Name: "Singapore", Flag: "🇸🇬"},
	{Code: "MY", Name: "Malaysia", Flag: "🇲🇾"},
	{Code: "VN", Name: "Vietnam", Flag: "🇻🇳"},
	{Code: "AE", Name: "United Arab Emirates", Flag: "🇦🇪"},
	{Code: "AU", Name: "Australia", Flag: "🇦🇺"},
	{Code: "NZ", Name: "New Zealand", Flag: "🇳🇿"},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦"},
	{Code: "MX", Name: "Mexico", Flag: "🇲🇽"},
	{Code: "BR", Name: "Brazil", Flag: "🇧🇷"},
	{Code: "AR", Name: "Argentina", Flag: "🇦🇷"},
	{Code: "ZA", Name: "South Africa", Flag: "🇿🇦"},
	{Code: "EG", Name: "Egypt", Flag: "🇪🇬"},
	{Code: "MA", Name: "Morocco", Flag: "🇲🇦"},
	{Code: "RU", Name: "Russia", Flag: "🇷🇺"},
	{Code: "MV", Name: "Maldives", Flag: "🇲🇻"},
}

// Countries возвращает справочник стран для выбора паспорта.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}
