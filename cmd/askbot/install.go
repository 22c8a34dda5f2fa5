package main

import (
	"fmt"

	"github.com/sandevgo/askbot/internal/service/installer"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Run the interactive setup wizard",
	Long:  `Collects the backend URL, Telegram token and storage path and writes the runtime .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := installer.RunWizard(); err != nil {
			return err
		}
		fmt.Println("AskBot is configured. Run `askbot start` to launch it.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
