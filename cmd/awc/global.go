package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"awc_tracker/internal/aggregate"
)

func globalCmd(opts *rootOptions) *cobra.Command {
	var filter, sort, tag, genre string
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Show every anime across all challenges",
		Long: "Aggregate all challenges by anime. Filter and sort default to the last used values.\n\n" +
			"Filters: all, anilist_complete, anilist_ongoing, anilist_incomplete, challenge_all_complete,\n" +
			"challenge_any_ongoing, challenge_incomplete, discrepancy_update_post, discrepancy_update_anilist, discrepancy\n" +
			"Sorts: title-asc, title-desc, count-asc, count-desc, anilist-status, challenge-status",
		Example: "  awc global --filter discrepancy_update_post\n  awc global --genre drama --sort count-desc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := aggregate.Query{Tag: tag, Genre: genre}
			var err error
			if filter != "" {
				if q.Filter, err = aggregate.ParseFilter(filter); err != nil {
					return err
				}
			}
			if sort != "" {
				if q.Sort, err = aggregate.ParseSort(sort); err != nil {
					return err
				}
			}
			return runApp(cmd, opts, false, func(ctx context.Context, a *app) error {
				if q.Preference, err = a.tracker.TitlePreference(ctx); err != nil {
					return err
				}
				records, err := a.tracker.GlobalView(ctx, q)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No anime match.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), globalTable(records, q.Preference))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Status filter (default: last used)")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort order (default: last used)")
	cmd.Flags().StringVar(&tag, "tag", "", "Only anime with a tag containing this text")
	cmd.Flags().StringVar(&genre, "genre", "", "Only anime with a genre containing this text")
	return cmd
}
