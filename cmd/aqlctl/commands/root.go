// Package commands implements the aqlctl command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/spf13/cobra"
)

const jsonFlag = "json"

// NewRootCmd builds the aqlctl command tree around calc.
func NewRootCmd(calc service.PlanCalculator) *cobra.Command {
	root := &cobra.Command{
		Use:   "aqlctl",
		Short: "Acceptance sampling plans from the command line",
		Long: `aqlctl resolves single normal-inspection sampling plans (General Level II).

Available commands:
  plan     - Sample size, Ac/Re and which boxes to open
  verdict  - Accept or reject a lot for the defects found
  table    - Print the sampling reference table

Examples:
  aqlctl plan --boxes 10 --pcs 40 --aql 2.5
  aqlctl plan --lot 400 --aql 1.0
  aqlctl verdict --lot 400 --aql 2.5 --defects 4
  aqlctl table --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP(jsonFlag, "j", false, "Print machine-readable JSON")

	root.AddCommand(newPlanCmd(calc))
	root.AddCommand(newVerdictCmd(calc))
	root.AddCommand(newTableCmd())
	return root
}

// lotFlags are shared by plan and verdict. Either lot or boxes and pcs is set.
type lotFlags struct {
	lot   int
	boxes int
	pcs   int
	aql   string
}

func (f *lotFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.lot, "lot", 0, "Lot size when the packaging is unknown")
	cmd.Flags().IntVar(&f.boxes, "boxes", 0, "Number of boxes in the lot")
	cmd.Flags().IntVar(&f.pcs, "pcs", 0, "Pieces per box")
	cmd.Flags().StringVar(&f.aql, "aql", "", "Acceptable quality level: 1.0, 2.5 or 4.0")

	_ = cmd.MarkFlagRequired("aql")
	cmd.MarkFlagsRequiredTogether("boxes", "pcs")
	cmd.MarkFlagsMutuallyExclusive("lot", "boxes")
	cmd.MarkFlagsOneRequired("lot", "boxes")
}

// packed reports whether the lot was given as boxes and pieces.
func (f *lotFlags) packed(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("boxes")
}

func (f *lotFlags) shape() model.LotShape {
	return model.LotShape{NumContainers: f.boxes, UnitsPerContainer: f.pcs}
}

func (f *lotFlags) level() (sampling.QualityLevel, error) {
	return sampling.ParseQualityLevel(f.aql)
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool(jsonFlag)
	return v
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
