package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotracker/cotracker/internal/application/checkout/usecases"
	"github.com/cotracker/cotracker/internal/shared/logger"
	"github.com/cotracker/cotracker/internal/shared/utils"
)

// Handler serves the read-only checkout reports.
type Handler struct {
	listPilotsUC        usecases.ListPilotsExecutor
	getPilotDetailUC    usecases.GetPilotDetailExecutor
	listAirstripsUC     usecases.ListAirstripsExecutor
	getAirstripDetailUC usecases.GetAirstripDetailExecutor
	listBasesUC         usecases.ListBasesExecutor
	getBaseDetailUC     usecases.GetBaseDetailExecutor
	filterCheckoutsUC   usecases.FilterCheckoutsExecutor
	logger              logger.Interface
}

func NewHandler(
	listPilotsUC usecases.ListPilotsExecutor,
	getPilotDetailUC usecases.GetPilotDetailExecutor,
	listAirstripsUC usecases.ListAirstripsExecutor,
	getAirstripDetailUC usecases.GetAirstripDetailExecutor,
	listBasesUC usecases.ListBasesExecutor,
	getBaseDetailUC usecases.GetBaseDetailExecutor,
	filterCheckoutsUC usecases.FilterCheckoutsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listPilotsUC:        listPilotsUC,
		getPilotDetailUC:    getPilotDetailUC,
		listAirstripsUC:     listAirstripsUC,
		getAirstripDetailUC: getAirstripDetailUC,
		listBasesUC:         listBasesUC,
		getBaseDetailUC:     getBaseDetailUC,
		filterCheckoutsUC:   filterCheckoutsUC,
		logger:              logger,
	}
}

// ListPilots handles GET /pilots/
func (h *Handler) ListPilots(c *gin.Context) {
	pilots, err := h.listPilotsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, pilots, len(pilots))
}

// GetPilot handles GET /pilots/:username/
func (h *Handler) GetPilot(c *gin.Context) {
	result, err := h.getPilotDetailUC.Execute(c.Request.Context(), usecases.GetPilotDetailQuery{
		Username: c.Param("username"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAirstrips handles GET /airstrips/
func (h *Handler) ListAirstrips(c *gin.Context) {
	airstrips, err := h.listAirstripsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, airstrips, len(airstrips))
}

// GetAirstrip handles GET /airstrips/:ident/
func (h *Handler) GetAirstrip(c *gin.Context) {
	result, err := h.getAirstripDetailUC.Execute(c.Request.Context(), usecases.GetAirstripDetailQuery{
		Ident: c.Param("ident"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListBases handles GET /bases/
func (h *Handler) ListBases(c *gin.Context) {
	bases, err := h.listBasesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, bases, len(bases))
}

// GetBaseAttached handles GET /bases/:ident/attached/
func (h *Handler) GetBaseAttached(c *gin.Context) {
	h.getBase(c, true)
}

// GetBaseUnattached handles GET /bases/:ident/unattached/
func (h *Handler) GetBaseUnattached(c *gin.Context) {
	h.getBase(c, false)
}

func (h *Handler) getBase(c *gin.Context, attached bool) {
	result, err := h.getBaseDetailUC.Execute(c.Request.Context(), usecases.GetBaseDetailQuery{
		Ident:    c.Param("ident"),
		Attached: attached,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// FilterCheckouts handles GET /checkouts/
func (h *Handler) FilterCheckouts(c *gin.Context) {
	result, err := h.filterCheckoutsUC.Execute(c.Request.Context(), usecases.FilterCheckoutsQuery{
		Params: c.Request.URL.Query(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
}
