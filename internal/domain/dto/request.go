// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/i18n"
	"github.com/inspectwise/inspection-service/internal/sampling"
)

// ValidationError is a field-level validation failure. Key is the i18n
// message key the HTTP layer answers with.
type ValidationError struct {
	Field   string
	Message string
	Key     string
}

// Error returns "field: message".
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidNumBoxes is returned when num_boxes is not positive.
	ErrInvalidNumBoxes = &ValidationError{
		Field:   "num_boxes",
		Message: "must be a positive integer",
		Key:     i18n.ErrKeyInvalidLotShape,
	}
	// ErrInvalidPiecesPerBox is returned when pieces_per_box is not positive.
	ErrInvalidPiecesPerBox = &ValidationError{
		Field:   "pieces_per_box",
		Message: "must be a positive integer",
		Key:     i18n.ErrKeyInvalidLotShape,
	}
	// ErrMissingQualityLevel is returned when quality_level is absent.
	ErrMissingQualityLevel = &ValidationError{
		Field:   "quality_level",
		Message: "must be one of 1.0, 2.5, 4.0",
		Key:     i18n.ErrKeyInvalidQualityLevel,
	}
	// ErrInvalidDefectsFound is returned for a negative defect count.
	ErrInvalidDefectsFound = &ValidationError{
		Field:   "defects_found",
		Message: "must be 0 or more",
		Key:     i18n.ErrKeyInvalidDefectCount,
	}
)

// SamplingPlanRequest asks for the plan and drawing instructions of a lot.
//
// @Description Lot packaging and acceptable quality level
// @Example {"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5"}
type SamplingPlanRequest struct {
	NumBoxes     int                   `json:"num_boxes" example:"10" minimum:"1"`
	PiecesPerBox int                   `json:"pieces_per_box" example:"40" minimum:"1"`
	QualityLevel sampling.QualityLevel `json:"quality_level" swaggertype:"string" enums:"1.0,2.5,4.0" example:"2.5"`
} // @name SamplingPlanRequest

// Validate checks the packaging shape and the presence of a quality level.
// The lot-size minimum is enforced by the sampling engine.
func (r *SamplingPlanRequest) Validate() error {
	if r.NumBoxes <= 0 {
		return ErrInvalidNumBoxes
	}
	if r.PiecesPerBox <= 0 {
		return ErrInvalidPiecesPerBox
	}
	if r.QualityLevel == "" {
		return ErrMissingQualityLevel
	}
	return nil
}

// Shape returns the lot packaging.
func (r *SamplingPlanRequest) Shape() model.LotShape {
	return model.LotShape{NumContainers: r.NumBoxes, UnitsPerContainer: r.PiecesPerBox}
}

// VerdictRequest judges a defect count against the plan of a lot.
//
// @Description Lot, quality level and observed defect count
// @Example {"num_boxes": 10, "pieces_per_box": 40, "quality_level": "2.5", "defects_found": 3}
type VerdictRequest struct {
	SamplingPlanRequest
	DefectsFound int `json:"defects_found" example:"3" minimum:"0"`
} // @name VerdictRequest

// Validate checks the embedded plan request and the defect count.
func (r *VerdictRequest) Validate() error {
	if err := r.SamplingPlanRequest.Validate(); err != nil {
		return err
	}
	if r.DefectsFound < 0 {
		return ErrInvalidDefectsFound
	}
	return nil
}

// CreateInspectionRequest records a finished inspection.
//
// @Description Batch details, lot, quality level, defects and defect types
type CreateInspectionRequest struct {
	VerdictRequest
	Batch            model.BatchInfo `json:"batch"`
	DefectTypes      []string        `json:"defect_types" example:"Scratch,Burr"`
	OtherDefect      bool            `json:"other_defect"`
	OtherDefectNotes string          `json:"other_defect_notes" example:"flash on parting line"`
} // @name CreateInspectionRequest

// Validate checks the embedded verdict request.
func (r *CreateInspectionRequest) Validate() error {
	return r.VerdictRequest.Validate()
}
