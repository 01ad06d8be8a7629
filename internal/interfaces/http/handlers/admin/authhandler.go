package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cotracker/cotracker/internal/application/admin/dto"
	"github.com/cotracker/cotracker/internal/application/admin/usecases"
	"github.com/cotracker/cotracker/internal/shared/constants"
	"github.com/cotracker/cotracker/internal/shared/logger"
	"github.com/cotracker/cotracker/internal/shared/utils"
)

type AuthHandler struct {
	loginUC LoginExecutor
	indexUC IndexExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC LoginExecutor, indexUC IndexExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		indexUC: indexUC,
		logger:  logger,
	}
}

// Login handles POST /emerald/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for admin login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Index handles GET /emerald/
func (h *AuthHandler) Index(c *gin.Context) {
	result, err := h.indexUC.Execute(c.Request.Context(), usecases.AdminIndexQuery{
		Username: c.GetString(constants.ContextKeyAdminUsername),
		Role:     c.GetString(constants.ContextKeyAdminRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
