package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dehkit/pkg/action"
)

func init() {
	rootCmd.AddCommand(newActionCmd())
}

func newActionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "action <mnemonic>",
		Short: "Look up a code pointer by mnemonic",
		Long: `The action command resolves a code pointer mnemonic, with or without
the A_ prefix and in any case.

Example:
  dehctl action A_Chase
  dehctl action spawnobjectnamed --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(args)
		},
	}
}

type actionResult struct {
	ID             uint16 `json:"id"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	TakesNameIndex bool   `json:"takesNameIndex"`
}

func runAction(args []string) error {
	id, ok := action.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown action %q", args[0])
	}

	res := actionResult{
		ID:             uint16(id),
		Name:           id.String(),
		Kind:           id.Kind().String(),
		TakesNameIndex: id.TakesNameIndex(),
	}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s (%d)\n", res.Name, res.ID)
	printInfo("  kind: %s\n", res.Kind)
	if res.TakesNameIndex {
		printInfo("  takes a thing name index\n")
	}
	return nil
}
