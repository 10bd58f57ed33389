package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListGuides searches with ?q= first, then filters by ?category=.
func (h *GardenHandler) ListGuides(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		list any
		err  error
	)
	switch q, category := c.Query("q"), c.Query("category"); {
	case q != "":
		list, err = h.garden.Guides.Search(ctx, q)
	case category != "":
		list, err = h.garden.Guides.GetByCategory(ctx, category)
	default:
		list, err = h.garden.Guides.GetAll(ctx)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetGuide returns one guide.
func (h *GardenHandler) GetGuide(c *gin.Context) {
	guide, err := h.garden.Guides.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

// CurrentWeather returns current conditions.
func (h *GardenHandler) CurrentWeather(c *gin.Context) {
	current, err := h.garden.Weather.GetCurrent(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

// WeatherForecast returns the forecast, ?days= long.
func (h *GardenHandler) WeatherForecast(c *gin.Context) {
	days, ok := intQuery(c, "days")
	if !ok {
		return
	}
	forecast, err := h.garden.Weather.GetForecast(c.Request.Context(), days)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// WeatherAlerts returns active weather alerts.
func (h *GardenHandler) WeatherAlerts(c *gin.Context) {
	alerts, err := h.garden.Weather.GetAlerts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// ListPests filters by ?type= (pest or disease) when given.
func (h *GardenHandler) ListPests(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		list any
		err  error
	)
	if kind := c.Query("type"); kind != "" {
		list, err = h.garden.Pests.GetByType(ctx, kind)
	} else {
		list, err = h.garden.Pests.GetAll(ctx)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// IdentifyPest reads the photo from the body and the host plant from
// ?plantType=.
func (h *GardenHandler) IdentifyPest(c *gin.Context) {
	photo, ok := h.photo(c)
	if !ok {
		return
	}
	result, err := h.garden.Pests.IdentifyFromPhoto(c.Request.Context(), photo, c.Query("plantType"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PestTreatments returns treatments for one pest tailored to ?plantType=.
func (h *GardenHandler) PestTreatments(c *gin.Context) {
	plan, err := h.garden.Pests.GetTreatmentSuggestions(c.Request.Context(), c.Param("id"), c.Query("plantType"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
