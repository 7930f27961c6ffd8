package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <db> <name>",
		Short: "Show buffer layout statistics for a stored trie",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0], args[1])
		},
	}
	return cmd
}

func runStats(dbPath, name string) error {
	s, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("open database %q: %w", dbPath, err)
	}
	defer s.Close()

	c, _, err := loadContainer(s, name)
	if err != nil {
		return err
	}
	st := c.Stats()

	if jsonOut {
		return printJSON(st)
	}
	printInfo("buffer length:       %d\n", st.BufferLength)
	printInfo("cell region:         [%d..%d) (%d bytes used)\n", st.CellRegionStart, st.CellRegionEnd, st.CellBytesUsed)
	printInfo("segment pool bytes:  %d\n", st.SegmentBytesUsed)
	printInfo("free between regions: %d\n", st.FreeBetween)
	printInfo("free tail:           %d\n", st.FreeTail)
	return nil
}
