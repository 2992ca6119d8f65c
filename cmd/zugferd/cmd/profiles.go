package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rezonia/zugferd/internal/output"
	"github.com/rezonia/zugferd/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List supported profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.WriteProfiles(cmd.OutOrStdout())
	},
}

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities <profile>",
	Short: "List the fields a profile supports",
	Long: `List every field the profile defines, with the profile that introduces it.

The profile may be given by name, alias or guideline URN.

Examples:
  zugferd capabilities minimum
  zugferd capabilities "basic wl"
  zugferd capabilities urn:cen.eu:en16931:2017`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Parse(args[0])
		if err != nil {
			return err
		}
		return output.WriteCapabilities(cmd.OutOrStdout(), p)
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(capabilitiesCmd)
}
