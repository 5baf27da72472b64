package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dehkit/tables"
)

var resolveDeclare bool

func init() {
	rootCmd.AddCommand(newResolveCmd())
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <table> <key>",
		Short: "Resolve a name or numeral the way a patch reference would",
		Long: `The resolve command looks a key up in a table.

For sprites and sounds it reports the original index (seed name or
numeral) and the index a rename directive would claim. For music it
reports the claimable index. For mobjs the key is a thing name: it is
registered in the name registry and, with --declare, materialized as a
new object type.

Example:
  dehctl resolve sprites TROO
  dehctl resolve sounds 300
  dehctl resolve mobjs ZombieKnight --declare`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
	cmd.Flags().BoolVar(&resolveDeclare, "declare", false, "Materialize a thing name as a new object type")
	return cmd
}

type resolveResult struct {
	Table    string `json:"table"`
	Key      string `json:"key"`
	Original *int   `json:"original,omitempty"`
	Deh      *int   `json:"deh,omitempty"`
	Name     *int   `json:"name,omitempty"`
	Type     *int   `json:"type,omitempty"`
}

func runResolve(args []string) error {
	kind, ok := tables.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown table %q", args[0])
	}
	key := args[1]

	t, err := openTables()
	if err != nil {
		return err
	}
	defer t.FreeTables()

	res := resolveResult{Table: kind.String(), Key: key}
	switch kind {
	case tables.KindSprites:
		res.Original = ptr(t.GetOriginalSpriteIndex(key))
		res.Deh = ptr(t.GetDehSpriteIndex(key))
	case tables.KindSounds:
		res.Original = ptr(t.GetOriginalSFXIndex(key))
		res.Deh = ptr(t.GetDehSFXIndex(key, len(key)))
	case tables.KindMusic:
		res.Deh = ptr(t.GetDehMusicIndex(key, len(key)))
	case tables.KindMobjs:
		idx := t.LookupNameIndex(key)
		res.Name = ptr(idx)
		if resolveDeclare {
			if _, err := t.DeclareNamedMobj(idx); err != nil {
				return err
			}
		}
		res.Type = ptr(t.LookupTypeIndex(idx))
	default:
		return fmt.Errorf("table %s has no name lookup", kind)
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s %q:\n", res.Table, res.Key)
	printField("original", res.Original)
	printField("deh", res.Deh)
	printField("name", res.Name)
	printField("type", res.Type)
	return nil
}

func printField(label string, v *int) {
	switch {
	case v == nil:
	case *v == tables.NotFound:
		printInfo("  %-8s not found\n", label)
	default:
		printInfo("  %-8s %d\n", label, *v)
	}
}

func ptr(v int) *int { return &v }
