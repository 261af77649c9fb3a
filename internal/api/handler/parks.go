package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parkpulse/parkpulse-data/internal/api/respond"
	"github.com/parkpulse/parkpulse-data/internal/parks"
)

// ListParks returns the static park registry.
// @Summary List parks
// @Description Returns every registered park with canonical IDs.
// @Tags parks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /parks [get]
func (h *Handler) ListParks(w http.ResponseWriter, r *http.Request) {
	all := parks.AllParks()
	out := make([]map[string]any, 0, len(all))
	for _, p := range all {
		out = append(out, map[string]any{
			"id":           p.ID,
			"name":         p.Name,
			"timezone":     p.Timezone,
			"outdoorHeavy": p.OutdoorHeavy,
		})
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{"parks": out})
}

// ListParkAttractions returns the registered attractions for a park.
// @Summary List park attractions
// @Description Returns every registered attraction in a park with area tags.
// @Tags parks
// @Produce json
// @Param parkID path string true "Canonical park ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /parks/{parkID}/attractions [get]
func (h *Handler) ListParkAttractions(w http.ResponseWriter, r *http.Request) {
	parkID := chi.URLParam(r, "parkID")
	if _, err := parks.ParkByID(parkID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	attractions := parks.ParkAttractions(parkID)
	out := make([]map[string]any, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, map[string]any{
			"id":            a.ID,
			"name":          a.Name,
			"area":          a.Area,
			"ratedCapacity": a.RatedCapacity,
			"popularity":    a.Popularity,
			"indoor":        a.Indoor,
		})
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"parkId":      parkID,
		"attractions": out,
	})
}
