package commands

import (
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(calc service.PlanCalculator) *cobra.Command {
	var flags lotFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve the sampling plan for a lot",
		Long: `Resolve the code letter, sample size and Ac/Re for a lot.

With --boxes and --pcs the output also says how many boxes to open and how
many pieces to take from each.`,
		Example: `  aqlctl plan --boxes 10 --pcs 40 --aql 2.5
  aqlctl plan --lot 1200 --aql 4.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := flags.level()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !flags.packed(cmd) {
				plan, err := calc.Resolve(flags.lot, level)
				if err != nil {
					return err
				}
				if wantJSON(cmd) {
					return writeJSON(out, plan)
				}
				return renderPlan(out, flags.lot, plan)
			}

			result, err := calc.Evaluate(flags.shape(), level)
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return writeJSON(out, result)
			}
			return renderResult(out, result)
		},
	}

	flags.register(cmd)
	return cmd
}
