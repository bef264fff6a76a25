package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dpotapov/go-htmltok/entity"
)

var entityCmd = &cobra.Command{
	Use:   "entity name...",
	Short: "Resolve named character references through the packed trie",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("need at least one reference name")
		}
		for _, name := range args {
			name = strings.TrimPrefix(name, "&")
			if text, ok := entity.Lookup(name); ok {
				fmt.Printf("&%s\t%q\n", name, text)
				continue
			}
			// Retry with a semicolon: most references require it.
			if !strings.HasSuffix(name, ";") {
				if text, ok := entity.Lookup(name + ";"); ok {
					fmt.Printf("&%s;\t%q (semicolon required)\n", name, text)
					continue
				}
			}
			fmt.Printf("&%s\tno match\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entityCmd)
}
