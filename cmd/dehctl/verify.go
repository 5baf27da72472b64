package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every cross-table reference in the seed",
		Long: `The verify command loads the seed and reports every state, sprite,
sound and object-type reference that points outside its table.

Example:
  dehctl verify --seed mytables.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify()
		},
	}
}

type verifyResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func runVerify() error {
	t, err := openTables()
	if err != nil {
		return err
	}
	defer t.FreeTables()

	verr := t.Verify()
	errs := multierr.Errors(verr)

	res := verifyResult{Valid: verr == nil}
	for _, e := range errs {
		res.Errors = append(res.Errors, e.Error())
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else if res.Valid {
		printInfo("✓ All references valid\n")
	} else {
		for _, e := range res.Errors {
			printInfo("  ✗ %s\n", e)
		}
	}

	if !res.Valid {
		return fmt.Errorf("%d invalid reference(s)", len(errs))
	}
	return nil
}
