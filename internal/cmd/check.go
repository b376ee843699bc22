package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passgauge/passgauge/internal/classifier"
	"github.com/passgauge/passgauge/internal/reporter"
	"github.com/passgauge/passgauge/internal/ui"
)

var (
	showFeatures bool
	quiet        bool
)

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Classify the strength of one password",
	Long: `Classify a password's strength.

The password is taken from the argument, from a no-echo prompt when run
interactively, or from the first line of stdin when piped. It is
analyzed in-process and never stored or transmitted.

The exit status encodes the result for scripting: 0 strong, 1 medium,
2 weak, 3 very weak.

Examples:
  passgauge check 'Tr0ub4dor&3xyz'
  passgauge check --policy strict --features
  printf '%s' "$CANDIDATE" | passgauge check --format json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().BoolVar(&showFeatures, "features", false, "Show the full feature record and model probabilities")
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the label")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	u := GetUI()

	password, err := readCandidate(args, u)
	if err != nil {
		return err
	}

	eng, err := buildEngine(u)
	if err != nil {
		return err
	}

	result := eng.Classify(password)
	exitCode = int(classifier.Strong - result.Label)

	if quiet {
		fmt.Fprintln(u.Writer, result.Label)
		return nil
	}

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(u.Writer)
	default:
		rep = reporter.NewTerminalReporter(u.Writer, u, showFeatures)
	}
	return rep.Report([]classifier.Result{result})
}

// readCandidate resolves the password to analyze: argument, no-echo
// prompt on a TTY, or the first line of piped stdin.
func readCandidate(args []string, u *ui.UI) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if ui.StdinIsTerminal() {
		return u.ReadPassword("Password: ")
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	// Empty stdin is a valid (empty) candidate.
	return "", nil
}
