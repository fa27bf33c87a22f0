package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quizbee/adjudicator/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update adjudicator to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("version")

		checker := selfupdate.NewChecker()
		input := &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}
		err := checker.Update(cmd.Context(), input, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			color.Green("Already running the latest version.")
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			return fmt.Errorf("development builds cannot self-update; install a released binary")
		case err != nil:
			return err
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of the latest")
	rootCmd.AddCommand(updateCmd)
}
