package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yucatanweather/app/internal/domain/collections"
	"github.com/yucatanweather/app/pkg/logger"
	"github.com/yucatanweather/app/pkg/util"
)

// withCollections opens the configured store, loads it and hands the service
// to fn.
func withCollections(cmd *cobra.Command, fn func(collections.Service) error) error {
	store, err := openStore(cmd.Context(), cfg.Client.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := collections.NewService(store, logger.Discard())
	svc.LoadHistory(cmd.Context())
	svc.LoadFavorites(cmd.Context())
	return fn(svc)
}

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent searches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollections(cmd, func(svc collections.Service) error {
				entries := svc.History()
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}
				printHistory(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Max entries (0 = all)")
	return cmd
}

func favoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCollections(cmd, func(svc collections.Service) error {
				printFavorites(cmd.OutOrStdout(), svc.Favorites())
				return nil
			})
		},
	}
}

func clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete search history and favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}
			return withCollections(cmd, func(svc collections.Service) error {
				if err := svc.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" history and favorites cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func printHistory(w io.Writer, entries []collections.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recent searches")
		return
	}
	fmt.Fprint(w, color.CyanString("Recent searches\n"))
	for _, e := range entries {
		climate := e.Climate
		if climate == "" {
			climate = "-"
		}
		fmt.Fprintf(w, "  %s %s %s %s\n",
			color.HiBlackString(e.Date.Format(util.DateLayout)),
			e.Location,
			color.YellowString(climate),
			color.HiBlackString(e.Place))
	}
}

func printFavorites(w io.Writer, entries []collections.FavoriteEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "You have no favorite places")
		return
	}
	fmt.Fprint(w, color.CyanString("Favorite places\n"))
	for _, f := range entries {
		fmt.Fprintf(w, "  %s %s (%.4f, %.4f) %s\n",
			color.YellowString("★"), f.Name, f.Lat, f.Lng, color.HiBlackString(f.Type))
	}
}
