package service

import (
	"sync"
	"testing"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shape(n, u int) model.LotShape {
	return model.LotShape{NumContainers: n, UnitsPerContainer: u}
}

func TestPlanCalculatorService_Evaluate(t *testing.T) {
	tests := []struct {
		name           string
		shape          model.LotShape
		level          sampling.QualityLevel
		wantLetter     sampling.CodeLetter
		wantSample     int
		wantAc, wantRe int
		wantOpen       int
		wantNote       string
		wantErr        error
	}{
		{
			name:       "small lot at low quality",
			shape:      shape(5, 10),
			level:      sampling.QualityLow,
			wantLetter: "D", wantSample: 8, wantAc: 1, wantRe: 2,
			wantOpen: 2,
		},
		{
			name:       "single box lot",
			shape:      shape(1, 5),
			level:      sampling.QualityStandard,
			wantLetter: "A", wantSample: 2, wantAc: 0, wantRe: 1,
			wantOpen: 1,
		},
		{
			name:       "two small boxes",
			shape:      shape(2, 4),
			level:      sampling.QualityStrict,
			wantLetter: "A", wantSample: 2, wantAc: 0, wantRe: 1,
			wantOpen: 1,
		},
		{
			name:    "zero containers",
			shape:   shape(0, 10),
			level:   sampling.QualityStandard,
			wantErr: sampling.ErrInvalidInput,
		},
		{
			name:    "negative units",
			shape:   shape(3, -1),
			level:   sampling.QualityStandard,
			wantErr: sampling.ErrInvalidInput,
		},
		{
			name:    "single unit lot",
			shape:   shape(1, 1),
			level:   sampling.QualityStandard,
			wantErr: sampling.ErrLotSizeTooSmall,
		},
		{
			name:    "unknown quality level",
			shape:   shape(10, 10),
			level:   sampling.QualityLevel("6.5"),
			wantErr: sampling.ErrInvalidInput,
		},
		{
			name:    "one unit per container cannot be halved",
			shape:   shape(10, 1),
			level:   sampling.QualityStandard,
			wantErr: sampling.ErrContainerTooSmall,
		},
	}

	svc := NewPlanCalculatorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Evaluate(tt.shape, tt.level)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLetter, result.Plan.CodeLetter)
			assert.Equal(t, tt.wantSample, result.Plan.SampleSize)
			assert.Equal(t, tt.wantAc, result.Plan.AcceptanceNumber)
			assert.Equal(t, tt.wantRe, result.Plan.RejectionNumber)
			assert.Equal(t, tt.wantOpen, result.Instruction.ContainersToOpen)
			assert.Equal(t, tt.shape.LotSize(), result.LotSize)
			assert.Equal(t, model.InspectionLevel, result.Level)
			assert.NotEmpty(t, result.Steps)
		})
	}
}

func TestPlanCalculatorService_FullInspectionNote(t *testing.T) {
	svc := NewPlanCalculatorService()

	result, err := svc.Evaluate(shape(1, 2), sampling.QualityStandard)
	require.NoError(t, err)
	assert.True(t, result.Instruction.FullInspection)
	assert.Equal(t, model.FullInspectionNote, result.Note)

	result, err = svc.Evaluate(shape(10, 40), sampling.QualityStandard)
	require.NoError(t, err)
	assert.False(t, result.Instruction.FullInspection)
	assert.Empty(t, result.Note)
}

func TestPlanCalculatorService_Judge(t *testing.T) {
	svc := NewPlanCalculatorService()

	tests := []struct {
		name    string
		defects int
		want    sampling.Outcome
	}{
		{"no defects", 0, sampling.Accept},
		{"at acceptance number", 1, sampling.Accept},
		{"at rejection number", 2, sampling.Reject},
		{"well over", 8, sampling.Reject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, verdict, err := svc.Judge(shape(5, 10), sampling.QualityLow, tt.defects)
			require.NoError(t, err)
			assert.Equal(t, tt.want, verdict.Outcome)
			assert.Equal(t, result.Plan.AcceptanceNumber, verdict.AcceptanceNumber)
			assert.Equal(t, tt.defects, verdict.ObservedDefects)
		})
	}

	t.Run("negative defects", func(t *testing.T) {
		_, _, err := svc.Judge(shape(5, 10), sampling.QualityLow, -1)
		assert.ErrorIs(t, err, sampling.ErrInvalidInput)
	})

	t.Run("invalid lot", func(t *testing.T) {
		_, _, err := svc.Judge(shape(1, 1), sampling.QualityLow, 0)
		assert.ErrorIs(t, err, sampling.ErrLotSizeTooSmall)
	})
}

func TestPlanCalculatorService_Resolve(t *testing.T) {
	svc := NewPlanCalculatorService()

	plan, err := svc.Resolve(500001, sampling.QualityStrict)
	require.NoError(t, err)
	assert.Equal(t, sampling.CodeLetter("Q"), plan.CodeLetter)
	assert.Equal(t, 1250, plan.SampleSize)

	_, err = svc.Resolve(1, sampling.QualityLevel("9.9"))
	assert.ErrorIs(t, err, sampling.ErrLotSizeTooSmall)

	_, err = svc.Resolve(100, sampling.QualityLevel("9.9"))
	assert.ErrorIs(t, err, sampling.ErrInvalidInput)
}

// countingCache records calls so cache use can be observed.
type countingCache struct {
	mu    sync.Mutex
	items map[planKey]model.SamplingResult
	gets  int
	sets  int
	clear int
}

func newCountingCache() *countingCache {
	return &countingCache{items: make(map[planKey]model.SamplingResult)}
}

func (c *countingCache) Get(k planKey) (model.SamplingResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.items[k]
	return v, ok
}

func (c *countingCache) Set(k planKey, v model.SamplingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.items[k] = v
}

func (c *countingCache) Invalidate(k planKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, k)
}

func (c *countingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear++
	c.items = make(map[planKey]model.SamplingResult)
}

func (c *countingCache) Stop() {}

func TestPlanCalculatorService_Cache(t *testing.T) {
	c := newCountingCache()
	svc := NewPlanCalculatorService(WithCacheInterface(c))

	first, err := svc.Evaluate(shape(10, 40), sampling.QualityStandard)
	require.NoError(t, err)
	second, err := svc.Evaluate(shape(10, 40), sampling.QualityStandard)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, c.gets)
	assert.Equal(t, 1, c.sets)

	t.Run("errors are not cached", func(t *testing.T) {
		_, err := svc.Evaluate(shape(10, 1), sampling.QualityStandard)
		require.Error(t, err)
		assert.Equal(t, 1, c.sets)
	})

	t.Run("callers cannot mutate cached steps", func(t *testing.T) {
		got, err := svc.Evaluate(shape(10, 40), sampling.QualityStandard)
		require.NoError(t, err)
		got.Steps[0] = "tampered"

		again, err := svc.Evaluate(shape(10, 40), sampling.QualityStandard)
		require.NoError(t, err)
		assert.NotEqual(t, "tampered", again.Steps[0])
	})

	t.Run("invalidate", func(t *testing.T) {
		svc.InvalidateCache()
		assert.Equal(t, 1, c.clear)
	})
}

func TestPlanCalculatorService_WithCache(t *testing.T) {
	svc := NewPlanCalculatorService(WithCache(16, time.Minute))
	defer svc.Close()

	for i := 0; i < 3; i++ {
		result, err := svc.Evaluate(shape(20, 50), sampling.QualityStrict)
		require.NoError(t, err)
		assert.Equal(t, sampling.CodeLetter("J"), result.Plan.CodeLetter)
	}

	c, ok := svc.cache.(*ttlCache[planKey, model.SamplingResult])
	require.True(t, ok)
	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
}

func TestPlanCalculatorService_WithCacheZeroCapacity(t *testing.T) {
	svc := NewPlanCalculatorService(WithCache(0, time.Minute))
	assert.Nil(t, svc.cache)
	svc.InvalidateCache()
	svc.Close()
}

func TestPlanCalculatorService_Concurrent(t *testing.T) {
	svc := NewPlanCalculatorService(WithCache(8, time.Minute))
	defer svc.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			level := sampling.QualityLevels()[i%3]
			_, _, err := svc.Judge(shape(10+i%5, 40), level, i%4)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
