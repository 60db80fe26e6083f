package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/odyssey-travel/backend/internal/refdata"
)

type RefDataHandler struct{}

// NewRefDataHandler создает обработчик справочных данных.
func NewRefDataHandler() *RefDataHandler {
	return &RefDataHandler{}
}

// Countries возвращает список стран.
func (h *RefDataHandler) Countries(c echo.Context) error {
	return c.JSON(http.StatusOK, refdata.Countries())
}

// Currencies возвращает список валют с курсами к USD.
func (h *RefDataHandler) Currencies(c echo.Context) error {
	return c.JSON(http.StatusOK, refdata.Currencies())
}

// ConvertCurrency пересчитывает сумму между валютами.
func (h *RefDataHandler) ConvertCurrency(c echo.Context) error {
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return badRequest(c, "amount must be a number")
	}

	fromCurr := strings.ToUpper(strings.TrimSpace(c.QueryParam("from_curr")))
	toCurr := strings.ToUpper(strings.TrimSpace(c.QueryParam("to_curr")))
	if fromCurr == "" || toCurr == "" {
		return badRequest(c, "from_curr and to_curr are required")
	}

	converted := refdata.Convert(amount, fromCurr, toCurr)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"amount":           amount,
		"from":             fromCurr,
		"to":               toCurr,
		"converted_amount": converted,
	})
}

// AutocompleteCities возвращает города по префиксу запроса.
func (h *RefDataHandler) AutocompleteCities(c echo.Context) error {
	return c.JSON(http.StatusOK, refdata.SearchCities(c.QueryParam("q")))
}

// Airports возвращает аэропорты города.
func (h *RefDataHandler) Airports(c echo.Context) error {
	return c.JSON(http.StatusOK, refdata.AirportsForCity(c.Param("city")))
}

// VisaRequirements возвращает правило въезда для пары стран.
func (h *RefDataHandler) VisaRequirements(c echo.Context) error {
	passport := c.QueryParam("passport_country")
	destination := c.QueryParam("destination_country")
	if passport == "" || destination == "" {
		return badRequest(c, "passport_country and destination_country are required")
	}

	return c.JSON(http.StatusOK, refdata.LookupVisaRule(passport, destination))
}

// InsuranceProviders возвращает справочник страховых провайдеров.
func (h *RefDataHandler) InsuranceProviders(c echo.Context) error {
	return c.JSON(http.StatusOK, refdata.InsuranceProviders())
}

// BaggageInfo возвращает нормы багажа для класса обслуживания.
func (h *RefDataHandler) BaggageInfo(c echo.Context) error {
	allowance, ok := refdata.BaggageInfo(c.Param("class"))
	if !ok {
		return notFound(c, "unknown cabin class")
	}

	return c.JSON(http.StatusOK, allowance)
}

// PackingList возвращает список вещей для стиля поездки.
func (h *RefDataHandler) PackingList(c echo.Context) error {
	list, ok := refdata.PackingList(c.Param("style"))
	if !ok {
		return notFound(c, "unknown packing style")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"style": strings.ToLower(c.Param("style")),
		"items": list,
	})
}

// PopularDestinations возвращает подборку направлений.
func (h *RefDataHandler) PopularDestinations(c echo.Context) error {
	return c.JSON(http.StatusOK, refdata.PopularDestinations())
}
