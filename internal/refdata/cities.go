package refdata

import "strings"

type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type City struct {
	Name     string    `json:"name"`
	Country  string    `json:"country"`
	Airports []Airport `json:"airports"`
}

var cities = []City{
	{Name: "New York", Country: "United States", Airports: []Airport{
		{Code: "JFK", Name: "John F. Kennedy International"},
		{Code: "EWR", Name: "Newark Liberty International"},
		{Code: "LGA", Name: "LaGuardia"},
	}},
	{Name: "Los Angeles", Country: "United States", Airports: []Airport{
		{Code: "LAX", Name: "Los Angeles International"},
	}},
	{Name: "London", Country: "United Kingdom", Airports: []Airport{
		{Code: "LHR", Name: "Heathrow"},
		{Code: "LGW", Name: "Gatwick"},
		{Code: "STN", Name: "Stansted"},
	}},
	{Name: "Paris", Country: "France", Airports: []Airport{
		{Code: "CDG", Name: "Charles de Gaulle"},
		{Code: "ORY", Name: "Orly"},
	}},
	{Name: "Rome", Country: "Italy", Airports: []Airport{
		{Code: "FCO", Name: "Fiumicino"},
	}},
	{Name: "Barcelona", Country: "Spain", Airports: []Airport{
		{Code: "BCN", Name: "Barcelona-El Prat"},
	}},
	{Name: "Amsterdam", Country: "Netherlands", Airports: []Airport{
		{Code: "AMS", Name: "Schiphol"},
	}},
	{Name: "Istanbul", Country: "Turkey", Airports: []Airport{
		{Code: "IST", Name: "Istanbul Airport"},
		{Code: "SAW", Name: "Sabiha Gokcen"},
	}},
	{Name: "Dubai", Country: "United Arab Emirates", Airports: []Airport{
		{Code: "DXB", Name: "Dubai International"},
	}},
	{Name: "Mumbai", Country: "India", Airports: []Airport{
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International"},
	}},
	{Name: "Delhi", Country: "India", Airports: []Airport{
		{Code: "DEL", Name: "Indira Gandhi International"},
	}},
	{Name: "Tokyo", Country: "Japan", Airports: []Airport{
		{Code: "NRT", Name: "Narita International"},
		{Code: "HND", Name: "Haneda"},
	}},
	{Name: "Singapore", Country: "Singapore", Airports: []Airport{
		{Code: "SIN", Name: "Changi"},
	}},
	{Name: "Bangkok", Country: "Thailand", Airports: []Airport{
		{Code: "BKK", Name: "Suvarnabhumi"},
		{Code: "DMK", Name: "Don Mueang"},
	}},
	{Name: "Bali", Country: "Indonesia", Airports: []Airport{
		{Code: "DPS", Name: "Ngurah Rai International"},
	}},
	{Name: "Sydney", Country: "Australia", Airports: []Airport{
		{Code: "SYD", Name: "Kingsford Smith"},
	}},
	{Name: "Toronto", Country: "Canada", Airports: []Airport{
		{Code: "YYZ", Name: "Pearson International"},
	}},
	{Name: "Rio de Janeiro", Country: "Brazil", Airports: []Airport{
		{Code: "GIG", Name: "Galeão International"},
	}},
	{Name: "Cape Town", Country: "South Africa", Airports: []Airport{
		{Code: "CPT", Name: "Cape Town International"},
	}},
	{Name: "Athens", Country: "Greece", Airports: []Airport{
		{Code: "ATH", Name: "Eleftherios Venizelos"},
	}},
}

const minCityQueryLength = 2

// SearchCities возвращает города, чье имя содержит запрос. Запросы короче
// двух символов дают пустой результат.
func SearchCities(query string) []City {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minCityQueryLength {
		return []City{}
	}

	matches := make([]City, 0)
	for _, city := range cities {
		if strings.Contains(strings.ToLower(city.Name), query) ||
			strings.Contains(strings.ToLower(city.Country), query) {
			matches = append(matches, city)
		}
	}

	return matches
}

// AirportsForCity возвращает аэропорты города (регистронезависимо).
func AirportsForCity(name string) []Airport {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, city := range cities {
		if strings.ToLower(city.Name) == name {
			out := make([]Airport, len(city.Airports))
			copy(out, city.Airports)
			return out
		}
	}

	return []Airport{}
}
