package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/passgauge/passgauge/internal/ui"
)

var meterCmd = &cobra.Command{
	Use:   "meter",
	Short: "Interactive strength meter (live, as you type)",
	Long: `Open an interactive meter that classifies the password as you type.

The candidate only ever lives in this terminal session; nothing is
stored once the meter exits.`,
	Args:         cobra.NoArgs,
	RunE:         runMeter,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(meterCmd)
}

func runMeter(cmd *cobra.Command, args []string) error {
	u := GetUI()
	if !u.IsInteractive() {
		return fmt.Errorf("meter requires an interactive terminal")
	}

	eng, err := buildEngine(u)
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewMeterModel(eng, u.Styles), tea.WithOutput(u.ErrWriter))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("meter failed: %w", err)
	}
	return nil
}
