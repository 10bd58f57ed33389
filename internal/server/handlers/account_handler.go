package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// GetLocation returns the saved garden location.
func (h *GardenHandler) GetLocation(c *gin.Context) {
	loc, err := h.garden.Location.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

// SaveLocation merges the request body into the saved location.
func (h *GardenHandler) SaveLocation(c *gin.Context) {
	var patch models.LocationPatch
	if !h.bind(c, &patch) {
		return
	}
	loc, err := h.garden.Location.Save(c.Request.Context(), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

// CurrentPosition returns the device position.
func (h *GardenHandler) CurrentPosition(c *gin.Context) {
	pos, err := h.garden.Location.GetCurrentPosition(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

// ReverseGeocode resolves ?lat= and ?lon= to an address.
func (h *GardenHandler) ReverseGeocode(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	addr, err := h.garden.Location.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, addr)
}

// LocalWeather returns the weather at ?lat= and ?lon=.
func (h *GardenHandler) LocalWeather(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		return
	}
	weather, err := h.garden.Location.GetWeatherByLocation(c.Request.Context(), lat, lon)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, weather)
}

// SearchLocations lists places matching ?q=.
func (h *GardenHandler) SearchLocations(c *gin.Context) {
	matches, err := h.garden.Location.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetProfile returns the gardener profile.
func (h *GardenHandler) GetProfile(c *gin.Context) {
	p, err := h.garden.Profile.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile merges the request body into the profile.
func (h *GardenHandler) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if !h.bind(c, &patch) {
		return
	}
	p, err := h.garden.Profile.Update(c.Request.Context(), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UploadAvatar stores the raw request body as the new avatar.
func (h *GardenHandler) UploadAvatar(c *gin.Context) {
	image, ok := h.photo(c)
	if !ok {
		return
	}
	url, err := h.garden.Profile.UploadAvatar(c.Request.Context(), image)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": url})
}

// UpdatePreferences merges the request body into the notification preferences.
func (h *GardenHandler) UpdatePreferences(c *gin.Context) {
	var patch models.PreferencesPatch
	if !h.bind(c, &patch) {
		return
	}
	prefs, err := h.garden.Profile.UpdatePreferences(c.Request.Context(), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// DeleteAccount requests account deletion.
func (h *GardenHandler) DeleteAccount(c *gin.Context) {
	if err := h.garden.Profile.DeleteAccount(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
