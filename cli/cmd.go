package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbDir string

var rootCmd = &cobra.Command{
	Use:   "chainctl",
	Short: "Chainctl is a simple command-line tool for operating a local chainkit digest chain",
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&dbDir, "db", "chainkit.db", "chain store directory")

	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(headCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(digestCmd)

	return nil
}

// Execute executes command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
