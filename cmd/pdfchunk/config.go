package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newjordan/pdfchunk/internal/config"
	"github.com/newjordan/pdfchunk/internal/home"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pdfchunk configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file to ~/.pdfchunk/config.yaml,
or to the path given with --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			dir, err := home.New("")
			if err != nil {
				return err
			}
			if err := dir.EnsureExists(); err != nil {
				return err
			}
			path = dir.ConfigPath()
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
