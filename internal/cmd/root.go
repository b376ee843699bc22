package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/passgauge/passgauge/internal/classifier"
	"github.com/passgauge/passgauge/internal/model"
	"github.com/passgauge/passgauge/internal/policy"
	"github.com/passgauge/passgauge/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	policyName string
	modelPath  string
	noModel    bool
)

// RootCmd is the top-level passgauge command
var RootCmd = &cobra.Command{
	Use:   "passgauge",
	Short: "A local password strength analyzer",
	Long: `passgauge classifies password strength by combining deterministic
heuristic rules with an optional statistical classifier.

Analysis happens entirely in this process: passwords are never stored,
logged, or transmitted anywhere. When no trained classifier artifact is
available the engine degrades to its deterministic rule ladder, so every
input always gets a label.`,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&policyName, "policy", "p", "default", "Threshold policy to apply")
	RootCmd.PersistentFlags().StringVarP(&modelPath, "model", "m", "", "Path to a classifier artifact (default: bundled artifact)")
	RootCmd.PersistentFlags().BoolVar(&noModel, "no-model", false, "Skip the statistical classifier, rules only")
}

var (
	globalUI     *ui.UI
	globalUIOnce sync.Once
)

// GetUI returns the process-wide UI, initialized on first use
func GetUI() *ui.UI {
	globalUIOnce.Do(func() {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return globalUI
}

// buildEngine assembles the strength engine for the selected policy.
// The classifier artifact is optional: a failed load is reported as a
// warning and the engine runs rules-only.
func buildEngine(u *ui.UI) (*classifier.Engine, error) {
	pol, err := policy.Load(policyName)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	var predictor classifier.Predictor
	if !noModel {
		var artifact *model.Artifact
		var loadErr error
		if modelPath != "" {
			artifact, loadErr = model.Load(modelPath)
		} else {
			artifact, loadErr = model.LoadDefault()
		}
		if loadErr != nil {
			fmt.Fprintln(u.ErrWriter, u.Styles.Warning.Render(
				fmt.Sprintf("%s classifier artifact unavailable, falling back to rules: %v", u.Styles.IconWarning, loadErr),
			))
		} else {
			predictor = artifact
		}
	}

	eng := classifier.New(pol, predictor)
	if verbose {
		fmt.Fprintf(u.ErrWriter, "policy: %s\n", pol.Name)
		fmt.Fprintf(u.ErrWriter, "model: %v\n", eng.HasModel())
	}
	return eng, nil
}

// exitCode carries the strength bucket of a check run back to main.
var exitCode int

// ExitCode returns 0 for strong, 1 for medium, 2 for weak and 3 for
// very weak after a check run; 0 otherwise.
func ExitCode() int {
	return exitCode
}
