package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
)

func legendCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Show or customize the status symbols used to parse posts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current legend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				l, err := a.tracker.Legend(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), legendTable(l))
				return nil
			})
		},
	})

	var candidate domain.Legend
	setC := &cobra.Command{
		Use:     "set",
		Short:   "Replace the legend",
		Long:    "Replace the legend. A symbol may only appear in one status. Empty statuses are filled from the default legend.",
		Example: "  awc legend set --complete ✔️ --complete X --ongoing ⭐ --incomplete ❌ --incomplete O",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				saved, err := a.tracker.SaveLegend(ctx, candidate)
				if errors.Is(err, legend.ErrEmptyLegend) {
					fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning:"), "legend cannot be empty, reverted to default")
					err = nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), legendTable(saved))
				return nil
			})
		},
	}
	setC.Flags().StringArrayVar(&candidate.Complete, "complete", nil, "Symbol for completed requirements (repeatable)")
	setC.Flags().StringArrayVar(&candidate.Ongoing, "ongoing", nil, "Symbol for ongoing requirements (repeatable)")
	setC.Flags().StringArrayVar(&candidate.Incomplete, "incomplete", nil, "Symbol for incomplete requirements (repeatable)")
	cmd.AddCommand(setC)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default legend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				saved, err := a.tracker.SaveLegend(ctx, legend.Default())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), legendTable(saved))
				return nil
			})
		},
	})

	return cmd
}

func userCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the AniList username",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <username>",
		Short: "Set the AniList username and refresh every challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				stats, err := a.tracker.SetHandle(ctx, args[0])
				switch {
				case errors.Is(err, domain.ErrHandleRequired):
					return err
				case err != nil:
					return fmt.Errorf("username saved, refresh failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Username set to %s, %d challenges refreshed\n", stats.Handle, stats.Challenges)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the AniList username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				return a.tracker.ClearHandle(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the AniList profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				p, err := a.tracker.Profile(ctx)
				if err != nil {
					return err
				}
				tbl := newTable("Name", "Avatar", "Banner")
				tbl.AddRow(p.Name, orDash(p.AvatarURL), orDash(p.BannerURL))
				fmt.Fprintln(cmd.OutOrStdout(), tbl)
				return nil
			})
		},
	})

	return cmd
}

func prefsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Display preferences",
	}
	cmd.AddCommand(&cobra.Command{
		Use:       "title <romaji|english>",
		Short:     "Choose which anime title is displayed",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.TitleRomaji), string(domain.TitleEnglish)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				return a.tracker.SetTitlePreference(ctx, domain.ParseTitlePreference(args[0]))
			})
		},
	})
	return cmd
}

func exportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		Short:   "Export all data as JSON",
		Example: "  awc export backup.json",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				if len(args) == 0 {
					return a.tracker.Export(ctx, cmd.OutOrStdout(), version)
				}
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := a.tracker.Export(ctx, f, version); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			})
		},
	}
}

func importCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				result, err := a.tracker.Import(ctx, f)
				if err != nil {
					return err
				}
				for _, w := range result.Warnings {
					fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning:"), w)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d challenges\n", len(result.Snapshot.Challenges))
				if stats := result.Refreshed; stats != nil {
					fmt.Fprintf(out, "Refreshed for %s: %d complete, %d ongoing, %d incomplete, %d discrepancies\n",
						stats.Handle, stats.Complete, stats.Ongoing, stats.Incomplete, stats.Discrepancies)
				}
				return nil
			})
		},
	}
}

func clearCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all challenges and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear all data without --yes")
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				removed, err := a.tracker.ClearAll(ctx)
				if err != nil {
					return err
				}
				if len(removed) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clear")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Removed:", strings.Join(removed, ", "))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting everything")
	return cmd
}
