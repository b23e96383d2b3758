package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/ktparse/kotlin/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var ruleName string
	var includePositions bool
	var showStats bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Kotlin file and dump its syntax tree",
		Long: `Parse a .kt or .kts file and print the resulting tree.

If no file is provided, reads Kotlin source from stdin.
Use --rule to start from a rule other than the file's own, for example
--rule expression to parse a single expression.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, data, err := readSource(args)
			if err != nil {
				return err
			}
			rule, err := entryRule(ruleName, filename)
			if err != nil {
				return err
			}

			p := parser.New(rule, bytes.NewReader(data), parser.WithFile(filename))
			node := p.Finish()
			if showStats {
				st := p.Stats()
				fmt.Fprintf(os.Stderr, "%d tokens, %d nodes, %d backtracks, %d guard trips\n",
					st.Tokens, st.Nodes, st.Backtracks, st.GuardTrips)
			}
			if node == nil {
				printError(os.Stderr, p.Err(), data)
				return errReported
			}

			switch outputFormat {
			case "tree":
				if includePositions {
					fmt.Print(node.StringWithPositions())
				} else {
					fmt.Print(node.String())
				}
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				if err := enc.Encode(node); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				if err := enc.Close(); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, yaml)")
	cmd.Flags().StringVarP(&ruleName, "rule", "r", "", "entry rule (default: file, or script for .kts)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include spans in tree output")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print parser statistics to stderr")

	return cmd
}
