package main

import (
	"fmt"

	"github.com/phrazzld/kdc-shelver/internal/domain/shelving"
)

// RulesCmd prints the rule catalogue.
type RulesCmd struct{}

func (c *RulesCmd) Run(rt *runtime) error {
	for i, r := range shelving.Rules() {
		sep := ""
		if i > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(rt.out, "%s[%s] %s\n  %s\n", sep, r.Stage, r.Title, r.Explanation); err != nil {
			return err
		}
		for _, ex := range r.Examples {
			if _, err := fmt.Fprintf(rt.out, "  - %s: %s\n", ex.Title, ex.Note); err != nil {
				return err
			}
		}
	}
	return nil
}
