package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passgauge/passgauge/internal/tips"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show password hardening recommendations",
	Args:  cobra.NoArgs,
	RunE:  runTips,
}

func init() {
	RootCmd.AddCommand(tipsCmd)
}

func runTips(cmd *cobra.Command, args []string) error {
	u := GetUI()

	sections, err := tips.Load()
	if err != nil {
		return fmt.Errorf("loading recommendations: %w", err)
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(u.Writer)
		}
		fmt.Fprintln(u.Writer, u.Styles.Header.Render(section.Title))
		for _, item := range section.Items {
			fmt.Fprintf(u.Writer, "  %s %s\n", u.Styles.Subtle.Render("-"), item)
		}
	}
	return nil
}
