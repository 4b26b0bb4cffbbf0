package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/pterm/pterm"
)

func planRows(lotSize int, plan sampling.Plan) pterm.TableData {
	return pterm.TableData{
		{"Lot size", strconv.Itoa(lotSize)},
		{"Inspection level", model.InspectionLevel},
		{"Quality level", plan.QualityLevel.Label()},
		{"Code letter", string(plan.CodeLetter)},
		{"Sample size", strconv.Itoa(plan.SampleSize)},
		{"Accept (Ac)", strconv.Itoa(plan.AcceptanceNumber)},
		{"Reject (Re)", strconv.Itoa(plan.RejectionNumber)},
	}
}

func renderPlan(w io.Writer, lotSize int, plan sampling.Plan) error {
	fmt.Fprint(w, pterm.DefaultSection.Sprint("Sampling plan"))
	if err := writeTable(w, planRows(lotSize, plan), false); err != nil {
		return err
	}
	if plan.CoversLot(lotSize) {
		fmt.Fprintln(w, pterm.Warning.Sprint(model.FullInspectionNote))
	}
	return nil
}

func renderResult(w io.Writer, result model.SamplingResult) error {
	rows := pterm.TableData{
		{"Packaging", fmt.Sprintf("%d box(es) x %d pcs", result.Lot.NumContainers, result.Lot.UnitsPerContainer)},
	}
	rows = append(rows, planRows(result.LotSize, result.Plan)...)

	fmt.Fprint(w, pterm.DefaultSection.Sprint("Sampling plan"))
	if err := writeTable(w, rows, false); err != nil {
		return err
	}

	fmt.Fprint(w, pterm.DefaultSection.Sprint("Instructions"))
	items := make([]pterm.BulletListItem, len(result.Steps))
	for i, step := range result.Steps {
		items[i] = pterm.BulletListItem{Level: 0, Text: step}
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return fmt.Errorf("failed to render instructions: %w", err)
	}
	fmt.Fprint(w, list)

	if result.Note != "" {
		fmt.Fprintln(w, pterm.Warning.Sprint(result.Note))
	}
	if result.Instruction.ExceedsContainers {
		fmt.Fprintln(w, pterm.Warning.Sprint("The sample needs more boxes than the lot holds."))
	}
	return nil
}

func renderVerdict(w io.Writer, out verdictOutput) error {
	if out.Sampling != nil {
		if err := renderResult(w, *out.Sampling); err != nil {
			return err
		}
	} else {
		fmt.Fprint(w, pterm.DefaultSection.Sprint("Sampling plan"))
		if err := writeTable(w, pterm.TableData{
			{"Code letter", string(out.Plan.CodeLetter)},
			{"Sample size", strconv.Itoa(out.Plan.SampleSize)},
			{"Accept (Ac)", strconv.Itoa(out.Plan.AcceptanceNumber)},
			{"Reject (Re)", strconv.Itoa(out.Plan.RejectionNumber)},
		}, false); err != nil {
			return err
		}
	}

	fmt.Fprint(w, pterm.DefaultSection.Sprint("Verdict"))
	if out.Verdict.Accepted() {
		fmt.Fprintln(w, pterm.Success.Sprint(out.Summary))
	} else {
		fmt.Fprintln(w, pterm.Error.Sprint(out.Summary))
	}
	return nil
}

func renderTable(w io.Writer, rows []sampling.TableRow) error {
	levels := sampling.QualityLevels()

	header := []string{"Code", "Lot size", "Sample"}
	for _, level := range levels {
		header = append(header, "AQL "+level.String()+" Ac/Re")
	}

	data := pterm.TableData{header}
	for _, row := range rows {
		lot := fmt.Sprintf("%d - %d", row.MinLot, row.MaxLot)
		if row.MaxLot == 0 {
			lot = fmt.Sprintf("%d+", row.MinLot)
		}
		line := []string{string(row.CodeLetter), lot, strconv.Itoa(row.SampleSize)}
		for _, level := range levels {
			l := row.Limits[level]
			line = append(line, fmt.Sprintf("%d/%d", l.Accept, l.Reject))
		}
		data = append(data, line)
	}
	return writeTable(w, data, true)
}

func writeTable(w io.Writer, data pterm.TableData, hasHeader bool) error {
	table, err := pterm.DefaultTable.WithHasHeader(hasHeader).WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(w, table)
	return nil
}
