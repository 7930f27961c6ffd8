package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <db> <name>",
		Short: "List every hostname stored in a trie",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], args[1])
		},
	}
	return cmd
}

func runList(dbPath, name string) error {
	s, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("open database %q: %w", dbPath, err)
	}
	defer s.Close()

	c, ref, err := loadContainer(s, name)
	if err != nil {
		return err
	}

	var hostnames []string
	for h := range c.Iterate(ref) {
		hostnames = append(hostnames, h)
	}
	sort.Strings(hostnames)

	if jsonOut {
		return printJSON(hostnames)
	}
	for _, h := range hostnames {
		printInfo("%s\n", h)
	}
	return nil
}
