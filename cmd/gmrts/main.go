// Command gmrts evaluates a corpus of binary samples against GM/T
// 0005-2021's fifteen statistical tests and reports the proportion and
// uniformity gate verdicts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opengm/gmrts/internal/log"
)

const (
	version   = "0.2.2"
	copyright = "Copyright (c) 2026 The OpenGM Group"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "gmrts",
		Short: "GM/T 0005-2021 randomness test suite",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log", "info", "log level: off, error, info, debug")

	root.AddCommand(newRunCommand())
	root.AddCommand(newQueryCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func printInfo() {
	fmt.Printf("gmrts v%s\n%s\n\n", version, copyright)
}
