package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/passgauge/passgauge/internal/classifier"
	"github.com/passgauge/passgauge/internal/reporter"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Classify newline-separated passwords from a file or stdin",
	Long: `Classify every password in a newline-separated list and report the
label distribution. Blank lines are skipped. Results reference inputs
by line position only; the passwords themselves never appear in the
report.

Examples:
  passgauge batch candidates.txt
  cat candidates.txt | passgauge batch --format json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runBatch,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	u := GetUI()

	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	eng, err := buildEngine(u)
	if err != nil {
		return err
	}

	var results []classifier.Result
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		results = append(results, eng.Classify(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if verbose {
		fmt.Fprintf(u.ErrWriter, "classified %d candidates\n", len(results))
	}

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(u.Writer)
	default:
		rep = reporter.NewTerminalReporter(u.Writer, u, false)
	}
	return rep.Report(results)
}
