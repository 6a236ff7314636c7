package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the mrpplan command tree: plan (full planning
// run), explode (BOM hierarchy only), and report (full run,
// transactions/inventory only).
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mrpplan",
		Short: "Time-phased MRP planning engine",
		Long: `mrpplan explodes a bill of materials, buckets sales-order demand and
open purchase orders into a day-bucketed horizon, and runs a
level-ordered, lot-for-lot MRP sweep producing a transaction report,
an ending-inventory summary, expedite requests, and planned purchases.

Examples:
  mrpplan plan --scenario ./scenarios/acme --customer ACME-CORP
  mrpplan explode --scenario ./scenarios/acme --customer ACME-CORP
  mrpplan report --scenario ./scenarios/acme --customer ACME-CORP --format csv`,
	}

	root.AddCommand(newPlanCommand())
	root.AddCommand(newExplodeCommand())
	root.AddCommand(newReportCommand())

	return root
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
