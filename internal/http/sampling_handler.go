package http

import (
	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/domain/dto"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/inspectwise/inspection-service/internal/service"
)

// SamplingHandler serves the sampling plan and verdict routes.
type SamplingHandler struct {
	calculator service.PlanCalculator
	operators  []string
}

// NewSamplingHandler creates a SamplingHandler. operators is the roster
// offered when recording a batch and may be empty.
func NewSamplingHandler(calculator service.PlanCalculator, operators []string) *SamplingHandler {
	roster := make([]string, len(operators))
	copy(roster, operators)
	return &SamplingHandler{
		calculator: calculator,
		operators:  roster,
	}
}

// QualityLevels handles GET /api/quality-levels.
//
// @Summary      List quality levels
// @Description  Returns the supported acceptable quality levels with their labels, strictest first.
// @Tags         Sampling
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.QualityLevelOption}
// @Router       /api/quality-levels [get]
func (h *SamplingHandler) QualityLevels(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.QualityLevelOptions())
}

// SamplingTable handles GET /api/sampling-table.
//
// @Summary      Reference table
// @Description  Returns every code letter with its lot range, sample size and Ac/Re per quality level.
// @Tags         Sampling
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]sampling.TableRow}
// @Router       /api/sampling-table [get]
func (h *SamplingHandler) SamplingTable(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(sampling.Table())
}

// Operators handles GET /api/operators.
//
// @Summary      List operators
// @Description  Returns the configured operator roster.
// @Tags         Sampling
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.OperatorsResponse}
// @Router       /api/operators [get]
func (h *SamplingHandler) Operators(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.OperatorsResponse{Operators: h.operators})
}

// SamplingPlan handles POST /api/sampling-plan.
//
// @Summary      Compute a sampling plan
// @Description  Resolves the code letter, sample size and Ac/Re for the lot and returns how many units to draw from how many containers. A sample at least as large as the lot calls for 100% inspection.
// @Tags         Sampling
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SamplingPlanRequest true "Lot packaging and quality level"
// @Success      200 {object} dto.SuccessResponse{data=model.SamplingResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid packaging, lot size or quality level"
// @Failure      422 {object} dto.ErrorResponse "No plan for the inputs"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sampling-plan [post]
func (h *SamplingHandler) SamplingPlan(c *gin.Context) {
	req, ok := decode[dto.SamplingPlanRequest](c)
	if !ok {
		return
	}

	result, err := h.calculator.Evaluate(req.Shape(), req.QualityLevel)
	if err != nil {
		respondError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(result)
}

// Verdict handles POST /api/verdict.
//
// @Summary      Judge a lot
// @Description  Computes the plan for the lot and compares the observed defect count with the acceptance number. The lot is accepted when defects do not exceed Ac.
// @Tags         Sampling
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.VerdictRequest true "Lot, quality level and defects found"
// @Success      200 {object} dto.SuccessResponse{data=dto.VerdictResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid packaging, lot size, quality level or defect count"
// @Failure      422 {object} dto.ErrorResponse "No plan for the inputs"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/verdict [post]
func (h *SamplingHandler) Verdict(c *gin.Context) {
	req, ok := decode[dto.VerdictRequest](c)
	if !ok {
		return
	}

	result, verdict, err := h.calculator.Judge(req.Shape(), req.QualityLevel, req.DefectsFound)
	if err != nil {
		respondError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.VerdictResponse{
		Sampling: result,
		Verdict:  verdict,
		Summary:  verdict.Summary(),
	})
}
