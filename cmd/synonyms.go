package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quizbee/adjudicator/internal/normalize"
	"github.com/quizbee/adjudicator/internal/synonyms"
)

var synonymsCmd = &cobra.Command{
	Use:   "synonyms",
	Short: "Inspect the bundled synonym table",
}

var synonymsInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show table version, size, and domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := synonyms.Load()
		if err != nil {
			return err
		}
		fmt.Printf("version  %s\n", table.Version())
		fmt.Printf("sets     %d\n", table.Size())
		fmt.Printf("domains  %s\n", strings.Join(table.Domains(), ", "))
		return nil
	},
}

var synonymsCheckCmd = &cobra.Command{
	Use:   "check <term-a> <term-b>",
	Short: "Report whether two terms share a synonym set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domains, _ := cmd.Flags().GetStringSlice("domain")

		table, err := synonyms.Load()
		if err != nil {
			return err
		}

		a := normalize.Normalize(args[0])
		b := normalize.Normalize(args[1])
		same, domain := table.SameSet(a, b, domains)
		if same {
			color.Green("synonyms (domain: %s)", domain)
		} else {
			color.Red("not synonyms")
		}
		return nil
	},
}

var synonymsLookupCmd = &cobra.Command{
	Use:   "lookup <term>",
	Short: "List every synonym recorded for a term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := synonyms.Load()
		if err != nil {
			return err
		}

		alts := table.Lookup(normalize.Normalize(args[0]))
		if len(alts) == 0 {
			fmt.Println("no synonyms recorded")
			return nil
		}
		for _, alt := range alts {
			fmt.Println(alt)
		}
		return nil
	},
}

func init() {
	synonymsCheckCmd.Flags().StringSliceP("domain", "d", nil, "Domains to consult (repeatable)")

	synonymsCmd.AddCommand(synonymsInfoCmd)
	synonymsCmd.AddCommand(synonymsCheckCmd)
	synonymsCmd.AddCommand(synonymsLookupCmd)
}
