package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/config"
	"derivatives-case-study/internal/logging"
	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/observability"

	"github.com/gin-gonic/gin"
)

// Deps are the dependencies shared by every handler.
type Deps struct {
	// ContractDir holds the YAML contract presets.
	ContractDir string
	Metrics     *observability.Metrics
}

// resolveContract turns a request into validated contract terms. Explicit
// fields override the named preset.
func (d *Deps) resolveContract(req models.ContractRequest) (config.ContractConfig, model.ContractTerms, error) {
	cc := config.ContractConfig{
		Notional:       req.Notional,
		Strike:         req.Strike,
		DurationMonths: req.DurationMonths,
		InitialRate:    req.InitialRate,
	}
	if req.Preset != "" {
		preset, err := d.loadPreset(req.Preset)
		if err != nil {
			return config.ContractConfig{}, model.ContractTerms{}, err
		}
		cc = config.MergeContract(preset.Contract, cc)
	}
	terms, err := cc.ToModelTerms()
	if err != nil {
		return config.ContractConfig{}, model.ContractTerms{}, err
	}
	if err := model.RequirePositive("initial_rate", cc.InitialRate); err != nil {
		return config.ContractConfig{}, model.ContractTerms{}, err
	}
	return cc, terms, nil
}

func (d *Deps) loadPreset(name string) (config.Preset, error) {
	// Presets are addressed by id only; no paths.
	if name != filepath.Base(name) || filepath.Ext(name) != "" {
		return config.Preset{}, model.InvalidInputf("invalid preset id %q", name)
	}
	p, err := config.LoadPreset(filepath.Join(d.ContractDir, name+".yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return config.Preset{}, model.InvalidInputf("unknown preset %q", name)
	}
	return p, err
}

func toContractTerms(cc config.ContractConfig) models.ContractTerms {
	return models.ContractTerms{
		Notional:       cc.Notional,
		Strike:         cc.Strike,
		DurationMonths: cc.DurationMonths,
		InitialRate:    cc.InitialRate,
	}
}

func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindInvalidInput:
		return http.StatusBadRequest
	case model.KindPreconditionViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for a failed calculation and counts it.
func (d *Deps) fail(c *gin.Context, operation string, err error) {
	kind := model.KindOf(err)
	d.Metrics.Computation(operation, string(kind))

	status := statusFor(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("calculation failed",
			"operation", operation, "error", err)
		msg = "An unexpected error occurred"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    string(kind),
			Message: msg,
			Details: map[string]interface{}{"operation": operation},
		},
	})
}

// ok writes a successful calculation and counts it.
func (d *Deps) ok(c *gin.Context, operation string, body any) {
	d.Metrics.Computation(operation, "")
	c.JSON(http.StatusOK, body)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
