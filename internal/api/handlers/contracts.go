package handlers

import (
	"net/http"

	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/config"
	"derivatives-case-study/internal/logging"
	"derivatives-case-study/internal/model"

	"github.com/gin-gonic/gin"
)

// ContractHandler lists the contract presets on disk.
type ContractHandler struct {
	deps *Deps
}

func NewContractHandler(deps *Deps) *ContractHandler {
	return &ContractHandler{deps: deps}
}

// ListContracts handles GET /api/v1/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	presets, err := config.ListPresets(h.deps.ContractDir)
	if err != nil {
		// A broken preset file is a server fault, whatever its error kind.
		logging.FromContext(c.Request.Context()).Error("listing contract presets",
			"dir", h.deps.ContractDir, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    string(model.KindInternal),
				Message: "contract presets could not be loaded",
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": presets})
}
