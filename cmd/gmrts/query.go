package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmespath/go-jmespath"
	"github.com/spf13/cobra"
)

func newQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <report.json> <expression>",
		Short: "run a JMESPath expression against a saved --json report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return queryMain(args[0], args[1])
		},
	}
	return cmd
}

func queryMain(path, expr string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gmrts: reading %s: %w", path, err)
	}

	var data interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return fmt.Errorf("gmrts: decoding %s: %w", path, err)
	}

	result, err := jmespath.Search(expr, data)
	if err != nil {
		return fmt.Errorf("gmrts: evaluating %q: %w", expr, err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
