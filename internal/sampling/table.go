package sampling

import (
	"fmt"
	"math"
)

// CodeLetter identifies a sample-size row of the reference table.
type CodeLetter string

// Limits is an acceptance/rejection number pair.
type Limits struct {
	Accept int `json:"ac"`
	Reject int `json:"re"`
}

// TableRow is one code letter of the reference table.
type TableRow struct {
	CodeLetter CodeLetter              `json:"code_letter"`
	MinLot     int                     `json:"min_lot"`
	MaxLot     int                     `json:"max_lot"`
	SampleSize int                     `json:"sample_size"`
	Limits     map[QualityLevel]Limits `json:"limits"`
}

type lotRange struct {
	min, max int
	letter   CodeLetter
}

// lotRanges maps lot sizes to code letters. A max of math.MaxInt is unbounded.
var lotRanges = []lotRange{
	{2, 8, "A"},
	{9, 15, "B"},
	{16, 25, "C"},
	{26, 50, "D"},
	{51, 90, "E"},
	{91, 150, "F"},
	{151, 280, "G"},
	{281, 500, "H"},
	{501, 1200, "J"},
	{1201, 3200, "K"},
	{3201, 10000, "L"},
	{10001, 35000, "M"},
	{35001, 150000, "N"},
	{150001, 500000, "P"},
	{500001, math.MaxInt, "Q"},
}

type planEntry struct {
	sampleSize int
	limits     map[QualityLevel]Limits
}

func limits(strict, standard, low Limits) map[QualityLevel]Limits {
	return map[QualityLevel]Limits{
		QualityStrict:   strict,
		QualityStandard: standard,
		QualityLow:      low,
	}
}

// planTable holds the sample size and Ac/Re per code letter. R has no lot
// range pointing at it and is kept only so the table is complete.
var planTable = map[CodeLetter]planEntry{
	"A": {2, limits(Limits{0, 1}, Limits{0, 1}, Limits{0, 1})},
	"B": {3, limits(Limits{0, 1}, Limits{0, 1}, Limits{0, 1})},
	"C": {5, limits(Limits{0, 1}, Limits{0, 1}, Limits{0, 1})},
	"D": {8, limits(Limits{0, 1}, Limits{0, 1}, Limits{1, 2})},
	"E": {13, limits(Limits{0, 1}, Limits{1, 2}, Limits{1, 2})},
	"F": {20, limits(Limits{0, 1}, Limits{1, 2}, Limits{2, 3})},
	"G": {32, limits(Limits{1, 2}, Limits{2, 3}, Limits{3, 4})},
	"H": {50, limits(Limits{1, 2}, Limits{3, 4}, Limits{5, 6})},
	"J": {80, limits(Limits{2, 3}, Limits{5, 6}, Limits{7, 8})},
	"K": {125, limits(Limits{3, 4}, Limits{7, 8}, Limits{10, 11})},
	"L": {200, limits(Limits{5, 6}, Limits{10, 11}, Limits{14, 15})},
	"M": {315, limits(Limits{7, 8}, Limits{14, 15}, Limits{21, 22})},
	"N": {500, limits(Limits{10, 11}, Limits{21, 22}, Limits{21, 22})},
	"P": {800, limits(Limits{14, 15}, Limits{21, 22}, Limits{21, 22})},
	"Q": {1250, limits(Limits{21, 22}, Limits{21, 22}, Limits{21, 22})},
	"R": {2000, limits(Limits{21, 22}, Limits{21, 22}, Limits{21, 22})},
}

// CodeLetterFor classifies a lot size into its sample-size code letter.
func CodeLetterFor(lotSize int) (CodeLetter, error) {
	if lotSize < 2 {
		return "", fmt.Errorf("%w: got %d", ErrLotSizeTooSmall, lotSize)
	}
	for _, r := range lotRanges {
		if lotSize >= r.min && lotSize <= r.max {
			return r.letter, nil
		}
	}
	return "", fmt.Errorf("%w: lot size %d has no code letter", ErrNoPlanForInputs, lotSize)
}

// Table returns a copy of the reachable rows of the reference table in
// ascending lot order. MaxLot is 0 for the unbounded last row.
func Table() []TableRow {
	rows := make([]TableRow, 0, len(lotRanges))
	for _, r := range lotRanges {
		entry := planTable[r.letter]
		row := TableRow{
			CodeLetter: r.letter,
			MinLot:     r.min,
			MaxLot:     r.max,
			SampleSize: entry.sampleSize,
			Limits:     make(map[QualityLevel]Limits, len(entry.limits)),
		}
		if r.max == math.MaxInt {
			row.MaxLot = 0
		}
		for level, l := range entry.limits {
			row.Limits[level] = l
		}
		rows = append(rows, row)
	}
	return rows
}
