package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dehkit/pkg/dsdh"
	"github.com/joshuapare/dehkit/tables"
)

func init() {
	rootCmd.AddCommand(newGrowCmd())
}

func newGrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grow <table> <index>",
		Short: "Grow a table so an index is addressable",
		Long: `The grow command applies the same capacity request a patch makes
when it references a slot, then reports the table's new length.

Example:
  dehctl grow states 4000
  dehctl grow sounds 500 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow(args)
		},
	}
}

type growResult struct {
	Table string `json:"table"`
	Index int    `json:"index"`
	From  int    `json:"from"`
	Len   int    `json:"len"`
	Phase string `json:"phase"`
}

func runGrow(args []string) error {
	kind, ok := tables.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown table %q", args[0])
	}
	limit, err := strconv.Atoi(args[1])
	if err != nil || limit < 0 {
		return fmt.Errorf("invalid index %q", args[1])
	}

	t, err := openTables()
	if err != nil {
		return err
	}
	defer t.FreeTables()

	from := lenOf(t, kind)
	if err := ensure(t, kind, limit); err != nil {
		return err
	}

	res := growResult{
		Table: kind.String(),
		Index: limit,
		From:  from,
		Len:   lenOf(t, kind),
		Phase: phaseOf(t, kind).String(),
	}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s: %d -> %d slots (%s)\n", res.Table, res.From, res.Len, res.Phase)
	return nil
}

func ensure(t *dsdh.Tables, kind tables.Kind, limit int) error {
	switch kind {
	case tables.KindStates:
		return t.EnsureStatesCapacity(limit)
	case tables.KindSprites:
		return t.EnsureSpritesCapacity(limit)
	case tables.KindSounds:
		return t.EnsureSFXCapacity(limit)
	case tables.KindMusic:
		return t.EnsureMusicCapacity(limit)
	case tables.KindMobjs:
		return t.EnsureMobjInfoCapacity(limit)
	}
	return tables.ErrUnknownKind
}

func statOf(t *dsdh.Tables, kind tables.Kind) tables.Stats {
	for _, st := range t.Set().Stats() {
		if st.Kind == kind {
			return st
		}
	}
	return tables.Stats{Kind: kind}
}

func lenOf(t *dsdh.Tables, kind tables.Kind) int { return statOf(t, kind).Len }

func phaseOf(t *dsdh.Tables, kind tables.Kind) tables.Phase { return statOf(t, kind).Phase }
