package service

import (
	"fmt"
	"math"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/metrics"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/inspectwise/inspection-service/internal/service/cache"
)

// PlanCalculator defines the interface for sampling plan operations.
type PlanCalculator interface {
	// Evaluate resolves the plan for a packed lot and derives the drawing instructions.
	Evaluate(shape model.LotShape, level sampling.QualityLevel) (model.SamplingResult, error)
	// Resolve looks up the plan for a bare lot size.
	Resolve(lotSize int, level sampling.QualityLevel) (sampling.Plan, error)
	// Judge evaluates the lot and decides it against the observed defect count.
	Judge(shape model.LotShape, level sampling.QualityLevel, defects int) (model.SamplingResult, sampling.Verdict, error)
	// InvalidateCache clears cached results.
	InvalidateCache()
}

// planKey identifies a cached SamplingResult.
type planKey struct {
	containers int
	units      int
	level      sampling.QualityLevel
}

// Option configures a PlanCalculatorService.
type Option func(*PlanCalculatorService)

// PlanCalculatorService implements PlanCalculator on top of the sampling tables.
// Results are pure functions of their inputs, so they are safe to cache.
type PlanCalculatorService struct {
	cache cache.Cache[planKey, model.SamplingResult]
	now   func() time.Time
}

// NewPlanCalculatorService creates a new PlanCalculatorService with the given options.
func NewPlanCalculatorService(opts ...Option) *PlanCalculatorService {
	s := &PlanCalculatorService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PlanCalculatorService) {
		if capacity > 0 {
			s.cache = newTTLCache[planKey, model.SamplingResult](capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache[planKey, model.SamplingResult]) Option {
	return func(s *PlanCalculatorService) {
		s.cache = c
	}
}

// Evaluate resolves the plan for shape at level. Packaging is checked first,
// then the lot size, then the quality level.
func (s *PlanCalculatorService) Evaluate(shape model.LotShape, level sampling.QualityLevel) (model.SamplingResult, error) {
	start := s.now()
	key := planKey{containers: shape.NumContainers, units: shape.UnitsPerContainer, level: level}

	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			metrics.RecordPlanResolution(time.Since(start), string(result.Plan.CodeLetter), "cached")
			return cloneResult(result), nil
		}
	}

	result, err := evaluate(shape, level)
	if err != nil {
		metrics.RecordPlanResolution(time.Since(start), "", "error")
		return model.SamplingResult{}, err
	}
	metrics.RecordPlanResolution(time.Since(start), string(result.Plan.CodeLetter), "success")

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return cloneResult(result), nil
}

// Resolve looks up the plan for a lot whose packaging is unknown.
func (s *PlanCalculatorService) Resolve(lotSize int, level sampling.QualityLevel) (sampling.Plan, error) {
	start := s.now()
	plan, err := sampling.Resolve(lotSize, level)
	if err != nil {
		metrics.RecordPlanResolution(time.Since(start), "", "error")
		return sampling.Plan{}, err
	}
	metrics.RecordPlanResolution(time.Since(start), string(plan.CodeLetter), "success")
	return plan, nil
}

// Judge evaluates the lot and applies the acceptance rule to defects.
func (s *PlanCalculatorService) Judge(shape model.LotShape, level sampling.QualityLevel, defects int) (model.SamplingResult, sampling.Verdict, error) {
	if defects < 0 {
		return model.SamplingResult{}, sampling.Verdict{}, fmt.Errorf("%w: defects found %d", sampling.ErrInvalidInput, defects)
	}

	result, err := s.Evaluate(shape, level)
	if err != nil {
		return model.SamplingResult{}, sampling.Verdict{}, err
	}

	verdict := sampling.Judge(result.Plan, defects)
	metrics.RecordVerdict(string(verdict.Outcome))
	return result, verdict, nil
}

// InvalidateCache clears the result cache.
func (s *PlanCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Close stops the cache sweeper.
func (s *PlanCalculatorService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func evaluate(shape model.LotShape, level sampling.QualityLevel) (model.SamplingResult, error) {
	n, u := shape.NumContainers, shape.UnitsPerContainer
	if n <= 0 || u <= 0 {
		return model.SamplingResult{}, fmt.Errorf("%w: containers=%d units per container=%d", sampling.ErrInvalidInput, n, u)
	}
	if n > math.MaxInt/u {
		return model.SamplingResult{}, fmt.Errorf("%w: lot size overflows", sampling.ErrInvalidInput)
	}

	plan, err := sampling.Resolve(shape.LotSize(), level)
	if err != nil {
		return model.SamplingResult{}, err
	}
	in, err := sampling.Derive(plan, n, u)
	if err != nil {
		return model.SamplingResult{}, err
	}
	return model.NewSamplingResult(shape, plan, in), nil
}

// cloneResult detaches the Steps slice from the cached copy.
func cloneResult(r model.SamplingResult) model.SamplingResult {
	r.Steps = append([]string(nil), r.Steps...)
	return r
}
