package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passgauge/passgauge/internal/policy"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the built-in threshold policies",
	Args:  cobra.NoArgs,
	RunE:  runPolicies,
}

func init() {
	RootCmd.AddCommand(policiesCmd)
}

func runPolicies(cmd *cobra.Command, args []string) error {
	u := GetUI()

	for i, name := range policy.Available() {
		p, err := policy.Load(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(u.Writer)
		}

		header := p.Name
		if p.Name == policyName {
			header += " (selected)"
		}
		fmt.Fprintln(u.Writer, u.Styles.Header.Render(header))
		fmt.Fprintf(u.Writer, "  %s\n", u.Styles.Subtle.Render(p.Description))
		fmt.Fprintf(u.Writer, "  minimum length:  %d\n", p.MinLength)
		fmt.Fprintf(u.Writer, "  denylist size:   %d\n", len(p.Denylist))
		o := p.StrongOverride
		fmt.Fprintf(u.Writer, "  strong override: length>=%d digits>=%d special>=%d upper>=%d lower>=%d\n",
			o.MinLength, o.MinDigits, o.MinSpecial, o.MinUpper, o.MinLower)
		scheme := "very_weak / weak / medium / strong"
		if p.CollapseMedium {
			scheme = "very_weak / weak / strong"
		}
		fmt.Fprintf(u.Writer, "  labels:          %s\n", scheme)
	}
	return nil
}
