package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
)

func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}

type rootOptions struct {
	configPath string
	noColor    bool
}

func main() {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "awc",
		Short:         "Track AniList Watching Challenge posts against your anime list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.Version = buildVersion()
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "challenges", Title: "Challenge Commands:"},
		&cobra.Group{ID: "views", Title: "View Commands:"},
		&cobra.Group{ID: "settings", Title: "Settings:"},
		&cobra.Group{ID: "data", Title: "Data Commands:"},
	)

	for _, c := range []*cobra.Command{
		addCmd(opts), listCmd(opts), showCmd(opts), codeCmd(opts),
		refreshCmd(opts), renameCmd(opts), deleteCmd(opts),
	} {
		c.GroupID = "challenges"
		rootCmd.AddCommand(c)
	}

	globalC := globalCmd(opts)
	globalC.GroupID = "views"
	rootCmd.AddCommand(globalC)

	for _, c := range []*cobra.Command{legendCmd(opts), userCmd(opts), prefsCmd(opts)} {
		c.GroupID = "settings"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{exportCmd(opts), importCmd(opts), clearCmd(opts), watchCmd(opts)} {
		c.GroupID = "data"
		rootCmd.AddCommand(c)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
