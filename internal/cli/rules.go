package cli

import (
	"fmt"
	"os"

	"github.com/mkoval/clausewise/internal/rules"
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate risk rule sets",
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the builtin rule set",
	Long:  `Print every risk category with its tier, keywords, phrases, negation markers, and redline template.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(rulesPath)
		if err != nil {
			return err
		}
		printRuleSet(rs)
		return nil
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a YAML rule-set file",
	Long: `Load and validate a rule-set file without analyzing anything.
Reports the first problem found, identifying the offending category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %s (%d categories, flag threshold %d, negation window %d)\n",
			rs.Version, len(rs.Categories), rs.FlagThreshold, rs.NegationWindow)
		return nil
	},
}

func printRuleSet(rs *rules.RuleSet) {
	fmt.Printf("Rule set %s: %d categories, flag threshold %d, negation window %d tokens\n",
		rs.Version, len(rs.Categories), rs.FlagThreshold, rs.NegationWindow)

	for _, cat := range rs.Categories {
		fmt.Printf("\n%s (%s)\n", cat.Name, cat.Tier)
		if len(cat.Keywords) > 0 {
			fmt.Println("  keywords:")
			for _, term := range rules.SortedKeywords(cat.Keywords) {
				fmt.Printf("    %-30s %d\n", term, cat.Keywords[term])
			}
		}
		if len(cat.Phrases) > 0 {
			fmt.Println("  phrases:")
			for _, phrase := range rules.SortedKeywords(cat.Phrases) {
				fmt.Printf("    %-30s %d\n", phrase, cat.Phrases[phrase])
			}
		}
		if len(cat.NegationMarkers) > 0 {
			fmt.Printf("  negation markers: %v\n", cat.NegationMarkers)
		}
		if template, ok := rs.Template(cat.Name); ok {
			fmt.Printf("  redline: %s\n", template)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesCheckCmd)

	rulesShowCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rule-set file (default: builtin rules)")
}
