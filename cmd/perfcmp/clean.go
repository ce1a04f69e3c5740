package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"perfcmp/internal/compare"
)

// surveyAskOne allows mocking the confirmation prompt in tests.
var surveyAskOne = survey.AskOne

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove both cache directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			original := compare.VersionSpec{
				Label:    "original",
				CacheDir: viper.GetString("original.cache_dir"),
			}
			optimized := compare.VersionSpec{
				Label:    "optimized",
				CacheDir: viper.GetString("optimized.cache_dir"),
			}

			if !force {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Remove %s and %s?", original.CacheDir, optimized.CacheDir),
					Default: false,
				}
				if err := surveyAskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			d := &compare.Driver{
				Original:  original,
				Optimized: optimized,
				Out:       cmd.OutOrStdout(),
			}
			return d.ClearCaches()
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	return cmd
}
