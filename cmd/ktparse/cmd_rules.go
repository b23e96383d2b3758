package main

import (
	"fmt"

	"github.com/dhamidi/ktparse/kotlin/parser"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newRulesCmd() *cobra.Command {
	var showGrammar bool
	var verify bool

	cmd := &cobra.Command{
		Use:   "rules [rule]...",
		Short: "List the rule names accepted by 'parse --rule'",
		Long: `List the parser's rules.

With --grammar, print the EBNF production each rule implements. Naming
rules limits the output to those rules. --verify checks that the grammar
is well formed and that every production is reachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify {
				g, err := parser.Grammar()
				if err != nil {
					return fmt.Errorf("parse grammar: %w", err)
				}
				if err := ebnf.Verify(g, parser.GrammarStart); err != nil {
					return fmt.Errorf("verify grammar: %w", err)
				}
			}

			selected := parser.Rules()
			if len(args) > 0 {
				selected = selected[:0:0]
				for _, name := range args {
					r, ok := parser.LookupRule(name)
					if !ok {
						return fmt.Errorf("unknown rule %q", name)
					}
					selected = append(selected, r)
				}
			}

			for _, r := range selected {
				if !showGrammar {
					fmt.Println(r)
					continue
				}
				text, ok := parser.Production(r)
				if !ok {
					return fmt.Errorf("no production for rule %s", r)
				}
				fmt.Println(text)
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showGrammar, "grammar", "g", false, "print each rule's EBNF production")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar before printing")

	return cmd
}
