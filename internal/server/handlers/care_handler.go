package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// ListCareTasks returns every care task.
func (h *GardenHandler) ListCareTasks(c *gin.Context) {
	list, err := h.garden.CareTasks.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCareTask returns one care task.
func (h *GardenHandler) GetCareTask(c *gin.Context) {
	task, err := h.garden.CareTasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListPlantCareTasks returns the care tasks of one plant.
func (h *GardenHandler) ListPlantCareTasks(c *gin.Context) {
	list, err := h.garden.CareTasks.GetByPlant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpcomingCareTasks honours ?days=, defaulting to a week.
func (h *GardenHandler) UpcomingCareTasks(c *gin.Context) {
	days, ok := intQuery(c, "days")
	if !ok {
		return
	}
	list, err := h.garden.CareTasks.GetUpcoming(c.Request.Context(), days)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// OverdueCareTasks returns incomplete tasks already past their date.
func (h *GardenHandler) OverdueCareTasks(c *gin.Context) {
	list, err := h.garden.CareTasks.GetOverdue(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateCareTask stores a new care task.
func (h *GardenHandler) CreateCareTask(c *gin.Context) {
	var input models.CareTask
	if !h.bind(c, &input) {
		return
	}
	task, err := h.garden.CareTasks.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateCareTask applies a partial update to a care task.
func (h *GardenHandler) UpdateCareTask(c *gin.Context) {
	var patch models.CareTaskPatch
	if !h.bind(c, &patch) {
		return
	}
	task, err := h.garden.CareTasks.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CompleteCareTask accepts an optional {"notes": "..."} body.
func (h *GardenHandler) CompleteCareTask(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if !h.bindOptional(c, &body) {
		return
	}
	task, err := h.garden.CareTasks.MarkComplete(c.Request.Context(), c.Param("id"), body.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteCareTask removes a care task.
func (h *GardenHandler) DeleteCareTask(c *gin.Context) {
	if err := h.garden.CareTasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListHarvests returns every logged harvest.
func (h *GardenHandler) ListHarvests(c *gin.Context) {
	list, err := h.garden.Harvests.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetHarvest returns one harvest.
func (h *GardenHandler) GetHarvest(c *gin.Context) {
	harvest, err := h.garden.Harvests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, harvest)
}

// ListPlantHarvests returns the harvests of one plant, newest first.
func (h *GardenHandler) ListPlantHarvests(c *gin.Context) {
	list, err := h.garden.Harvests.GetByPlant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PlantHarvestStats returns yield and quality totals for one plant.
func (h *GardenHandler) PlantHarvestStats(c *gin.Context) {
	stats, err := h.garden.Harvests.GetHarvestStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateHarvest logs a new harvest.
func (h *GardenHandler) CreateHarvest(c *gin.Context) {
	var input models.Harvest
	if !h.bind(c, &input) {
		return
	}
	harvest, err := h.garden.Harvests.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, harvest)
}

// UpdateHarvest applies a partial update to a harvest.
func (h *GardenHandler) UpdateHarvest(c *gin.Context) {
	var patch models.HarvestPatch
	if !h.bind(c, &patch) {
		return
	}
	harvest, err := h.garden.Harvests.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, harvest)
}

// DeleteHarvest removes a harvest.
func (h *GardenHandler) DeleteHarvest(c *gin.Context) {
	if err := h.garden.Harvests.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
