package commands

import (
	"fmt"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/spf13/cobra"
)

type verdictOutput struct {
	Sampling *model.SamplingResult `json:"sampling,omitempty"`
	Plan     sampling.Plan         `json:"plan"`
	Verdict  sampling.Verdict      `json:"verdict"`
	Summary  string                `json:"summary"`
}

func newVerdictCmd(calc service.PlanCalculator) *cobra.Command {
	var (
		flags   lotFlags
		defects int
	)

	cmd := &cobra.Command{
		Use:   "verdict",
		Short: "Accept or reject a lot for the defects found",
		Long:  `Resolve the plan for the lot and accept it when the defects found do not exceed Ac.`,
		Example: `  aqlctl verdict --boxes 10 --pcs 40 --aql 2.5 --defects 3
  aqlctl verdict --lot 400 --aql 1.0 --defects 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := flags.level()
			if err != nil {
				return err
			}
			if defects < 0 {
				return fmt.Errorf("%w: defects found %d", sampling.ErrInvalidInput, defects)
			}

			var out verdictOutput
			if flags.packed(cmd) {
				result, verdict, err := calc.Judge(flags.shape(), level, defects)
				if err != nil {
					return err
				}
				out = verdictOutput{Sampling: &result, Plan: result.Plan, Verdict: verdict}
			} else {
				plan, err := calc.Resolve(flags.lot, level)
				if err != nil {
					return err
				}
				out = verdictOutput{Plan: plan, Verdict: sampling.Judge(plan, defects)}
			}
			out.Summary = out.Verdict.Summary()

			if wantJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return renderVerdict(cmd.OutOrStdout(), out)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&defects, "defects", 0, "Defective pieces found in the sample")
	_ = cmd.MarkFlagRequired("defects")
	return cmd
}
