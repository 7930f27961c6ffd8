package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newQueryCmd())
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <db> <name> <hostname>",
		Short: "Check whether hostname matches a stored trie",
		Long: `query reports the label-boundary-aligned offset within hostname
where a stored entry in the named trie matches, or that there is no
match. Matching is right-to-left and label-aware: a stored "example.com"
matches both "example.com" and "foo.example.com", but not "notexample.com".

Example:
  hntriectl query blocklists.db ads foo.ads.example.com`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1], args[2])
		},
	}
	return cmd
}

func runQuery(dbPath, name, hostname string) error {
	s, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("open database %q: %w", dbPath, err)
	}
	defer s.Close()

	c, ref, err := loadContainer(s, name)
	if err != nil {
		return err
	}

	c.SetNeedle([]byte(hostname))
	offset := c.Matches(ref)

	if jsonOut {
		return printJSON(map[string]any{
			"hostname": hostname,
			"matched":  offset >= 0,
			"offset":   offset,
		})
	}

	if offset < 0 {
		printInfo("%s: no match\n", hostname)
		return nil
	}
	if offset == 0 {
		printInfo("%s: matched (exact)\n", hostname)
	} else {
		printInfo("%s: matched at offset %d (%q)\n", hostname, offset, hostname[offset:])
	}
	return nil
}
