package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"awc_tracker/internal/aggregate"
	"awc_tracker/internal/reconcile"
)

func addCmd(opts *rootOptions) *cobra.Command {
	var postURL string
	cmd := &cobra.Command{
		Use:   "add [file|-]",
		Short: "Add a challenge from its forum post",
		Long: "Parse a challenge post, look up every linked anime on AniList and store the challenge. " +
			"The post is read from the file argument, or from stdin when the argument is missing or \"-\".",
		Example: "  awc add post.md --url https://anilist.co/forum/thread/1\n  pbpaste | awc add",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				result, err := a.tracker.AddChallenge(ctx, raw, postURL)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, w := range result.Warnings {
					fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("warning:"), w)
				}
				for _, e := range result.Errors {
					fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("lookup:"), e, "Displaying as unfilled.")
				}
				fmt.Fprintf(out, "Challenge %q added with %d requirements (id %d)\n",
					result.Challenge.Title, len(result.Challenge.Entries), result.Challenge.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&postURL, "url", "", "Forum post URL to store with the challenge")
	return cmd
}

func listCmd(opts *rootOptions) *cobra.Command {
	var filter, sort string
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List stored challenges",
		Example: "  awc list --filter discrepancies --sort progress-desc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := aggregate.ParseChallengeFilter(filter)
			if err != nil {
				return err
			}
			s, err := aggregate.ParseChallengeSort(sort)
			if err != nil {
				return err
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				challenges, err := a.tracker.Challenges(ctx, f, s)
				if err != nil {
					return err
				}
				if len(challenges) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No challenges.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), challengeTable(challenges))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "all, ongoing, completed or discrepancies")
	cmd.Flags().StringVar(&sort, "sort", "date-desc", "date-desc, date-asc, title-asc, title-desc, progress-asc or progress-desc")
	return cmd
}

func showCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the requirements of a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				c, err := a.tracker.Challenge(ctx, id)
				if err != nil {
					return err
				}
				pref, err := a.tracker.TitlePreference(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, color.New(color.Bold).Sprint(c.Title))
				if c.PostURL != "" {
					fmt.Fprintln(out, c.PostURL)
				}
				if ratio, ok := aggregate.Progress(*c); ok {
					fmt.Fprintf(out, "Progress: %.0f%%\n", ratio*100)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, entryTable(c.Entries, pref))
				return nil
			})
		},
	}
}

func codeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "code <id>",
		Short: "Print a challenge as forum post code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				code, err := a.tracker.GenerateCode(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)
				return nil
			})
		},
	}
}

func refreshCmd(opts *rootOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "refresh [<id>]",
		Short:   "Refresh AniList statuses of one or all challenges",
		Example: "  awc refresh 1700000000000\n  awc refresh --all",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with a challenge id")
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					stats, err := a.tracker.RefreshAll(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Refreshed %d challenges for %s: %d complete, %d ongoing, %d incomplete, %d discrepancies\n",
						stats.Challenges, stats.Handle, stats.Complete, stats.Ongoing, stats.Incomplete, stats.Discrepancies)
					return nil
				}

				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				c, err := a.tracker.RefreshChallenge(ctx, id)
				if err != nil {
					return err
				}
				stats := reconcile.Tally(*c)
				fmt.Fprintf(out, "%q refreshed: %d complete, %d ongoing, %d incomplete, %d discrepancies\n",
					c.Title, stats.Complete, stats.Ongoing, stats.Incomplete, stats.Discrepancies)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Refresh every challenge (default when no id is given)")
	return cmd
}

func renameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a challenge",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				return a.tracker.Rename(ctx, id, strings.Join(args[1:], " "))
			})
		},
	}
}

func deleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				if err := a.tracker.Delete(ctx, id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Challenge deleted")
				return nil
			})
		},
	}
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read post: %w", err)
	}
	return string(b), nil
}
