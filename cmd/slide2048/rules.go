package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rules",
	Long: `Print the rules YAML a new game would use, after searching --rules,
~/.slide2048/rules.yaml, ./configs/rules.yaml and the built-in defaults.

Examples:
  slide2048 rules > ~/.slide2048/rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	rules, err := loadRules()
	if err != nil {
		fail("%v", err)
	}
	text, err := rulesText(rules)
	if err != nil {
		fail("%v", err)
	}
	fmt.Fprintf(os.Stdout, "# source: %s\n%s", rules.Source, text)
}
