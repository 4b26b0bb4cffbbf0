// Command aqlctl resolves sampling plans and verdicts without the HTTP service.
package main

import (
	"os"

	"github.com/inspectwise/inspection-service/cmd/aqlctl/commands"
	"github.com/inspectwise/inspection-service/internal/service"
	"github.com/pterm/pterm"
)

func main() {
	calc := service.NewPlanCalculatorService()
	err := commands.NewRootCmd(calc).Execute()
	calc.Close()

	if err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}
