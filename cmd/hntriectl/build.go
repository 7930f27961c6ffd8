package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jameshilliard/hntrie/internal/logx"
	"github.com/jameshilliard/hntrie/trie"
	"github.com/jameshilliard/hntrie/trie/accel"
)

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <db> <name> <hostlist-file>",
		Short: "Build a hostname trie from a newline-delimited list and store it",
		Long: `build reads one hostname per line from hostlist-file, inserts each
into a fresh trie, compacts the buffer, and stores it under name in the
bbolt database at db. Blank lines and lines starting with # are skipped.

Example:
  hntriectl build blocklists.db ads hosts.txt`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], args[1], args[2])
		},
	}
	return cmd
}

func runBuild(dbPath, name, hostlistPath string) error {
	f, err := os.Open(hostlistPath)
	if err != nil {
		return fmt.Errorf("open hostlist %q: %w", hostlistPath, err)
	}
	defer f.Close()

	c := trie.NewContainer(0, 0, trie.WithLogger(logx.L), trie.WithAccelerator(accel.Select()))
	ref := c.CreateTrie()

	var total, added int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++
		c.SetNeedle([]byte(line))
		if c.Add(ref) {
			added++
		}
		printVerbose("added %s\n", line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read hostlist %q: %w", hostlistPath, err)
	}

	byteLength, _ := c.Optimize()

	s, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("open database %q: %w", dbPath, err)
	}
	defer s.Close()

	if err := s.Put([]byte(name), c.Bytes()); err != nil {
		return fmt.Errorf("store trie %q: %w", name, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"name":        name,
			"lines_read":  total,
			"distinct":    added,
			"byte_length": byteLength,
		})
	}
	printInfo("built %q: %d lines read, %d distinct hostnames, %d bytes\n", name, total, added, byteLength)
	return nil
}
