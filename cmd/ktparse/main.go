package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// errReported is returned by commands that already printed their error.
var errReported = errors.New("error already reported")

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "ktparse",
		Short:         "Parse Kotlin source into syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more (repeat for debug output)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newRulesCmd())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			os.Stderr.WriteString("ktparse: " + err.Error() + "\n")
		}
		os.Exit(1)
	}
}
