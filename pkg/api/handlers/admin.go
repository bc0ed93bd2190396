package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartlife/pkg/alias"
	"smartlife/pkg/api/types"
)

// AdminHandler exposes the device alias store for operational use.
// These routes carry no authentication.
type AdminHandler struct {
	store alias.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store alias.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetDeviceMap handles GET /admin/device-map
// @Summary      Dump the device alias map
// @Description  Returns the full persisted alias store contents
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]map[string]string
// @Router       /admin/device-map [get]
func (h *AdminHandler) GetDeviceMap(c *gin.Context) {
	m, err := h.store.Dump(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpsertDeviceMap handles POST /admin/device-map
// @Summary      Map a device alias
// @Description  Sets device_name -> device_id under user_id and persists the store
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      types.UpsertAliasRequest  true  "Alias mapping"
// @Success      200      {object}  types.OKResponse
// @Failure      400      {object}  types.ErrorResponse  "Missing fields"
// @Router       /admin/device-map [post]
func (h *AdminHandler) UpsertDeviceMap(c *gin.Context) {
	var req types.UpsertAliasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if req.UserID == "" || req.DeviceName == "" || req.DeviceID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "user_id, device_name and device_id are required",
		})
		return
	}

	if err := h.store.Upsert(c.Request.Context(), req.UserID, req.DeviceName, req.DeviceID); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}
