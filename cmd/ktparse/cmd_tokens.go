package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dhamidi/ktparse/kotlin/lexer"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream the parser sees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, data, err := readSource(args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, tok := range lexer.Tokenize(data, filename) {
				nl := ""
				if tok.NewlineBefore {
					nl = "nl"
				}
				fmt.Fprintf(w, "%d:%d\t%s\t%s\t%q\n", tok.Span.Start.Line, tok.Span.Start.Column, tok.Kind, nl, tok.Literal)
			}
			return w.Flush()
		},
	}

	return cmd
}
