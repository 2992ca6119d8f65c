package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rezonia/zugferd/internal/docspec"
	"github.com/rezonia/zugferd/internal/output"
	"github.com/rezonia/zugferd/internal/profile"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Show how a description fits each profile",
	Long: `Build the description once per profile and report how many values each
profile drops. The profile named in the description is ignored.

Exits with an error when no profile keeps every value.

Examples:
  zugferd check invoice.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	d, err := docspec.LoadFile(args[0])
	if err != nil {
		return err
	}

	fits := make([]output.Fit, 0, len(profile.All()))
	lossless := false
	for _, p := range profile.All() {
		b, err := d.Build(p.String())
		fit := output.Fit{Profile: p, Err: err}
		if b != nil {
			fit.Dropped = len(b.Skipped())
		}
		if err == nil && fit.Dropped == 0 {
			lossless = true
		}
		fits = append(fits, fit)
	}

	if err := output.WriteFits(cmd.OutOrStdout(), fits); err != nil {
		return err
	}
	if !lossless {
		return errors.New("no profile keeps every value of the description")
	}
	return nil
}
