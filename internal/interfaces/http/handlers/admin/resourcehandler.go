package admin

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cotracker/cotracker/internal/application/admin/dto"
	"github.com/cotracker/cotracker/internal/application/admin/usecases"
	"github.com/cotracker/cotracker/internal/shared/constants"
	"github.com/cotracker/cotracker/internal/shared/logger"
	"github.com/cotracker/cotracker/internal/shared/utils"
)

// ResourceHandler serves the list/create/delete screens of the admin site.
type ResourceHandler struct {
	pilots        PilotManager
	airstrips     AirstripManager
	aircraftTypes AircraftTypeManager
	checkouts     CheckoutManager
	logger        logger.Interface
}

func NewResourceHandler(
	pilots PilotManager,
	airstrips AirstripManager,
	aircraftTypes AircraftTypeManager,
	checkouts CheckoutManager,
	logger logger.Interface,
) *ResourceHandler {
	return &ResourceHandler{
		pilots:        pilots,
		airstrips:     airstrips,
		aircraftTypes: aircraftTypes,
		checkouts:     checkouts,
		logger:        logger,
	}
}

// ListPilots handles GET /emerald/pilots/
func (h *ResourceHandler) ListPilots(c *gin.Context) {
	result, err := h.pilots.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// CreatePilot handles POST /emerald/pilots/
func (h *ResourceHandler) CreatePilot(c *gin.Context) {
	var req dto.CreatePilotRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.pilots.Create(c.Request.Context(), usecases.CreatePilotCommand{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Pilot created successfully")
}

// DeletePilot handles DELETE /emerald/pilots/:id/
func (h *ResourceHandler) DeletePilot(c *gin.Context) {
	h.delete(c, "pilot", h.pilots.Delete)
}

// ListAirstrips handles GET /emerald/airstrips/
func (h *ResourceHandler) ListAirstrips(c *gin.Context) {
	result, err := h.airstrips.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// CreateAirstrip handles POST /emerald/airstrips/
func (h *ResourceHandler) CreateAirstrip(c *gin.Context) {
	var req dto.CreateAirstripRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.airstrips.Create(c.Request.Context(), usecases.CreateAirstripCommand{
		Ident:  req.Ident,
		Name:   req.Name,
		IsBase: req.IsBase,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Airstrip created successfully")
}

// DeleteAirstrip handles DELETE /emerald/airstrips/:id/
func (h *ResourceHandler) DeleteAirstrip(c *gin.Context) {
	h.delete(c, "airstrip", h.airstrips.Delete)
}

// AttachToBase handles POST /emerald/airstrips/:id/bases/:base_id/
func (h *ResourceHandler) AttachToBase(c *gin.Context) {
	cmd, ok := h.attachment(c)
	if !ok {
		return
	}
	if err := h.airstrips.AttachToBase(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// DetachFromBase handles DELETE /emerald/airstrips/:id/bases/:base_id/
func (h *ResourceHandler) DetachFromBase(c *gin.Context) {
	cmd, ok := h.attachment(c)
	if !ok {
		return
	}
	if err := h.airstrips.DetachFromBase(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ListAircraftTypes handles GET /emerald/aircraft-types/
func (h *ResourceHandler) ListAircraftTypes(c *gin.Context) {
	result, err := h.aircraftTypes.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// CreateAircraftType handles POST /emerald/aircraft-types/
func (h *ResourceHandler) CreateAircraftType(c *gin.Context) {
	var req dto.CreateAircraftTypeRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.aircraftTypes.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Aircraft type created successfully")
}

// DeleteAircraftType handles DELETE /emerald/aircraft-types/:id/
func (h *ResourceHandler) DeleteAircraftType(c *gin.Context) {
	h.delete(c, "aircraft type", h.aircraftTypes.Delete)
}

// ListCheckouts handles GET /emerald/checkouts/
func (h *ResourceHandler) ListCheckouts(c *gin.Context) {
	result, err := h.checkouts.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result, len(result))
}

// CreateCheckout handles POST /emerald/checkouts/
func (h *ResourceHandler) CreateCheckout(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.checkouts.Create(c.Request.Context(), usecases.CreateCheckoutCommand{
		PilotID:        req.PilotID,
		AirstripID:     req.AirstripID,
		AircraftTypeID: req.AircraftTypeID,
		CreatedBy:      c.GetString(constants.ContextKeyAdminUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Checkout recorded successfully")
}

// DeleteCheckout handles DELETE /emerald/checkouts/:id/
func (h *ResourceHandler) DeleteCheckout(c *gin.Context) {
	h.delete(c, "checkout", h.checkouts.Delete)
}

func (h *ResourceHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid admin request body", "path", c.FullPath(), "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return false
	}
	return true
}

func (h *ResourceHandler) delete(c *gin.Context, entity string, del func(ctx context.Context, id uint) error) {
	id, err := utils.ParseIDParam(c, "id", entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *ResourceHandler) attachment(c *gin.Context) (usecases.BaseAttachmentCommand, bool) {
	airstripID, err := utils.ParseIDParam(c, "id", "airstrip")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.BaseAttachmentCommand{}, false
	}
	baseID, err := utils.ParseIDParam(c, "base_id", "base")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.BaseAttachmentCommand{}, false
	}
	return usecases.BaseAttachmentCommand{AirstripID: airstripID, BaseID: baseID}, true
}
