// Package model defines the domain entities of the inspection service.
package model

import (
	"strings"
	"time"

	"github.com/inspectwise/inspection-service/internal/sampling"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxPhotosPerInspection caps the photo evidence attached to one report.
	MaxPhotosPerInspection = 10
	// InspectionLevel is the only inspection level the service plans for.
	InspectionLevel = "General Level II (Normal)"
	// FullInspectionNote is shown whenever the sample covers the whole lot.
	FullInspectionNote = "100% inspection required."
	// NoDefectTypesNote is shown when no defect type was ticked.
	NoDefectTypesNote = "No specific defect types recorded."

	notAvailable = "N/A"
)

// LotShape describes how a lot is packed.
//
// @Description Lot packaging: number of boxes and pieces per box
type LotShape struct {
	NumContainers     int `bson:"num_containers" json:"num_containers" example:"10"`
	UnitsPerContainer int `bson:"units_per_container" json:"units_per_container" example:"40"`
}

// LotSize returns the number of units in the lot.
func (s LotShape) LotSize() int {
	return s.NumContainers * s.UnitsPerContainer
}

// SamplingResult is a resolved plan together with the drawing instructions.
//
// @Description Sampling plan and inspector instructions for a lot
type SamplingResult struct {
	Lot          LotShape             `bson:"lot" json:"lot"`
	LotSize      int                  `bson:"lot_size" json:"lot_size" example:"400"`
	Level        string               `bson:"inspection_level" json:"inspection_level" example:"General Level II (Normal)"`
	QualityLabel string               `bson:"quality_label" json:"quality_label" example:"Standard (up to 2.5% defective allowed)"`
	Plan         sampling.Plan        `bson:"plan" json:"plan"`
	Instruction  sampling.Instruction `bson:"instruction" json:"instruction"`
	Steps        []string             `bson:"steps" json:"steps"`
	Note         string               `bson:"note,omitempty" json:"note,omitempty" example:"100% inspection required."`
}

// NewSamplingResult assembles a SamplingResult from the engine output.
func NewSamplingResult(shape LotShape, plan sampling.Plan, in sampling.Instruction) SamplingResult {
	r := SamplingResult{
		Lot:          shape,
		LotSize:      shape.LotSize(),
		Level:        InspectionLevel,
		QualityLabel: plan.QualityLevel.Label(),
		Plan:         plan,
		Instruction:  in,
		Steps:        in.Steps(),
	}
	if plan.CoversLot(r.LotSize) {
		r.Note = FullInspectionNote
	}
	return r
}

// BatchInfo identifies the production batch under inspection.
type BatchInfo struct {
	QCInspector    string `bson:"qc_inspector" json:"qc_inspector" example:"Aina"`
	OperatorName   string `bson:"operator_name" json:"operator_name" example:"Suman"`
	MachineNumber  string `bson:"machine_number" json:"machine_number" example:"M-07"`
	PartName       string `bson:"part_name" json:"part_name" example:"Bracket"`
	PartID         string `bson:"part_id" json:"part_id" example:"BR-1120"`
	PONumber       string `bson:"po_number" json:"po_number" example:"PO-88812"`
	ProductionDate string `bson:"production_date" json:"production_date" example:"2026-10-14"`
}

// Display returns the batch fields as they appear on a printed report,
// with "N/A" for anything left blank.
func (b BatchInfo) Display() BatchInfo {
	return BatchInfo{
		QCInspector:    orNA(b.QCInspector),
		OperatorName:   orNA(b.OperatorName),
		MachineNumber:  orNA(b.MachineNumber),
		PartName:       orNA(b.PartName),
		PartID:         orNA(b.PartID),
		PONumber:       orNA(b.PONumber),
		ProductionDate: orNA(b.ProductionDate),
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// PhotoRef points at a stored photo.
type PhotoRef struct {
	ID          string    `bson:"id" json:"id"`
	ObjectKey   string    `bson:"object_key" json:"-"`
	FileName    string    `bson:"file_name" json:"file_name"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Size        int64     `bson:"size" json:"size"`
	UploadedAt  time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

// Inspection is a completed inspection report.
type Inspection struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID     string             `bson:"report_id" json:"report_id"`
	Batch        BatchInfo          `bson:"batch" json:"batch"`
	Sampling     SamplingResult     `bson:"sampling" json:"sampling"`
	DefectsFound int                `bson:"defects_found" json:"defects_found"`
	Verdict      sampling.Verdict   `bson:"verdict" json:"verdict"`
	VerdictText  string             `bson:"verdict_text" json:"verdict_text"`
	DefectTypes  []string           `bson:"defect_types" json:"defect_types"`
	Photos       []PhotoRef         `bson:"photos" json:"photos"`
	InspectorID  string             `bson:"inspector_id,omitempty" json:"inspector_id,omitempty"`
	InspectedAt  time.Time          `bson:"inspected_at" json:"inspected_at"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewReportID builds Report_<partId>_<yyyymmdd>_<hhmmss>, with NoID
// standing in for a missing part ID.
func NewReportID(partID string, at time.Time) string {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		partID = "NoID"
	}
	return "Report_" + partID + "_" + at.Format("20060102") + "_" + at.Format("150405")
}

// DefectTypeList merges the ticked checklist values with the free-text
// "Other" entry. otherChecked without text yields a bare "Other".
func DefectTypeList(selected []string, otherChecked bool, otherText string) []string {
	list := make([]string, 0, len(selected)+1)
	for _, s := range selected {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	if otherChecked {
		if text := strings.TrimSpace(otherText); text != "" {
			list = append(list, "Other: "+text)
		} else {
			list = append(list, "Other")
		}
	}
	return list
}

// CanAddPhoto reports whether another photo fits under the limit.
func (i *Inspection) CanAddPhoto() bool {
	return len(i.Photos) < MaxPhotosPerInspection
}

// Photo returns the photo reference with the given ID.
func (i *Inspection) Photo(id string) (PhotoRef, bool) {
	for _, p := range i.Photos {
		if p.ID == id {
			return p, true
		}
	}
	return PhotoRef{}, false
}
