package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ragline/ragline/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .ragline.yml config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
