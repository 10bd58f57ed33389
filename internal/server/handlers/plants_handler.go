package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// ListPlants returns every plant.
func (h *GardenHandler) ListPlants(c *gin.Context) {
	list, err := h.garden.Plants.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPlant returns one plant.
func (h *GardenHandler) GetPlant(c *gin.Context) {
	plant, err := h.garden.Plants.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

// CreatePlant stores a new plant.
func (h *GardenHandler) CreatePlant(c *gin.Context) {
	var input models.Plant
	if !h.bind(c, &input) {
		return
	}
	plant, err := h.garden.Plants.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, plant)
}

// UpdatePlant applies a partial update to a plant.
func (h *GardenHandler) UpdatePlant(c *gin.Context) {
	var patch models.PlantPatch
	if !h.bind(c, &patch) {
		return
	}
	plant, err := h.garden.Plants.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

// DeletePlant removes a plant.
func (h *GardenHandler) DeletePlant(c *gin.Context) {
	if err := h.garden.Plants.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IdentifyPlant reads the photo from the raw request body.
func (h *GardenHandler) IdentifyPlant(c *gin.Context) {
	photo, ok := h.photo(c)
	if !ok {
		return
	}
	result, err := h.garden.Plants.IdentifyFromPhoto(c.Request.Context(), photo)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBedPlants returns the plants growing in one garden bed.
func (h *GardenHandler) ListBedPlants(c *gin.Context) {
	list, err := h.garden.Plants.GetByGardenBed(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListGardenBeds returns every garden bed.
func (h *GardenHandler) ListGardenBeds(c *gin.Context) {
	list, err := h.garden.GardenBeds.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetGardenBed returns one garden bed.
func (h *GardenHandler) GetGardenBed(c *gin.Context) {
	bed, err := h.garden.GardenBeds.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// CreateGardenBed stores a new garden bed.
func (h *GardenHandler) CreateGardenBed(c *gin.Context) {
	var input models.GardenBed
	if !h.bind(c, &input) {
		return
	}
	bed, err := h.garden.GardenBeds.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, bed)
}

// UpdateGardenBed applies a partial update to a garden bed.
func (h *GardenHandler) UpdateGardenBed(c *gin.Context) {
	var patch models.GardenBedPatch
	if !h.bind(c, &patch) {
		return
	}
	bed, err := h.garden.GardenBeds.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// DeleteGardenBed removes a garden bed.
func (h *GardenHandler) DeleteGardenBed(c *gin.Context) {
	if err := h.garden.GardenBeds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
