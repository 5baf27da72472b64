package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/dehkit/tables"
)

var (
	dumpFrom  int
	dumpCount int
	dumpGrow  int
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <table>",
		Short: "Print table records as YAML",
		Long: `The dump command prints the records of one table as YAML, or JSON
with --json. Tables: states, sprites, sounds, music, mobjs.

Example:
  dehctl dump sounds --from 80 --count 10
  dehctl dump states --grow 40 --from 38`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	cmd.Flags().IntVar(&dumpFrom, "from", 0, "First index to print")
	cmd.Flags().IntVar(&dumpCount, "count", -1, "Number of records to print (-1 for all)")
	cmd.Flags().IntVar(&dumpGrow, "grow", -1, "Ensure capacity for this index before dumping")
	return cmd
}

// entry is one dumped record with its slot index.
type entry[T any] struct {
	Index  int `json:"index"  yaml:"index"`
	Record T   `json:"record" yaml:"record"`
}

func runDump(args []string) error {
	kind, ok := tables.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown table %q", args[0])
	}

	t, err := openTables()
	if err != nil {
		return err
	}
	defer t.FreeTables()

	s := t.Set()
	if dumpGrow >= 0 {
		if err := s.EnsureCapacity(kind, dumpGrow); err != nil {
			return err
		}
	}

	switch kind {
	case tables.KindStates:
		return printRecords(s.States.Records())
	case tables.KindSprites:
		return printRecords(s.Sprites.Records())
	case tables.KindSounds:
		return printRecords(s.Sounds.Records())
	case tables.KindMusic:
		return printRecords(s.Music.Records())
	case tables.KindMobjs:
		return printRecords(s.Mobjs.Records())
	}
	return tables.ErrUnknownKind
}

func printRecords[T any](records []T) error {
	from := max(dumpFrom, 0)
	to := len(records)
	if dumpCount >= 0 {
		to = min(to, from+dumpCount)
	}

	var out []entry[T]
	for i := from; i < to; i++ {
		out = append(out, entry[T]{Index: i, Record: records[i]})
	}

	if jsonOut {
		return printJSON(out)
	}
	if quiet {
		return nil
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
