package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report the size and growth phase of every table",
		Long: `The info command loads the seed and prints, for each table, the
number of seed entries, the live length and whether it has grown.

Example:
  dehctl info
  dehctl info --seed mytables.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

type tableInfo struct {
	Table string `json:"table"`
	Seed  int    `json:"seed"`
	Len   int    `json:"len"`
	Phase string `json:"phase"`
}

func runInfo() error {
	t, err := openTables()
	if err != nil {
		return err
	}
	defer t.FreeTables()

	var rows []tableInfo
	for _, st := range t.Set().Stats() {
		rows = append(rows, tableInfo{
			Table: st.Kind.String(),
			Seed:  st.SeedLen,
			Len:   st.Len,
			Phase: st.Phase.String(),
		})
	}

	if jsonOut {
		return printJSON(rows)
	}

	printInfo("\nTable Information:\n")
	for _, r := range rows {
		printInfo("  %-8s seed=%-6d len=%-6d %s\n", r.Table, r.Seed, r.Len, r.Phase)
	}
	printInfo("  names    %d\n", t.Set().Names.Len()-1)
	return nil
}
