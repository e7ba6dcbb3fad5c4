package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the progress record as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.Close()

		data, err := rt.svc.Progress.Export()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			_, err := cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Progress exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the progress record with an exported one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		rt, err := openRuntime(ctx, false)
		if err != nil {
			return err
		}
		defer rt.Close()
		if err := rt.snapshot(ctx); err != nil {
			return err
		}
		if err := rt.svc.Progress.Import(ctx, data); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress imported.")
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [snapshot-id]",
	Short: "List snapshots or restore one",
	Long: `Without arguments, list the stored progress snapshots. With a snapshot
id, or "latest", replace the current progress with that snapshot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := openRuntime(ctx, false)
		if err != nil {
			return err
		}
		defer rt.Close()
		if rt.snapshots == nil {
			return fmt.Errorf("the %s backend keeps no snapshots", cfg.Backend)
		}

		snaps, err := rt.snapshots.List(ctx, cfg.Database.SnapshotsKept)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			if len(snaps) == 0 {
				fmt.Fprintln(out, "No snapshots yet.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME\tSIZE")
			for _, s := range snaps {
				fmt.Fprintf(tw, "%d\t%s\t%d B\n", s.ID, s.Timestamp.Local().Format("2006-01-02 15:04:05"), len(s.Data))
			}
			return tw.Flush()
		}

		if len(snaps) == 0 {
			return fmt.Errorf("no snapshots to restore")
		}
		target := snaps[0]
		if args[0] != "latest" {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q", args[0])
			}
			found := false
			for _, s := range snaps {
				if s.ID == id {
					target, found = s, true
					break
				}
			}
			if !found {
				return fmt.Errorf("snapshot %d not found", id)
			}
		}
		if err := rt.svc.Progress.Import(ctx, target.Data); err != nil {
			return err
		}
		fmt.Fprintf(out, "Restored snapshot %d from %s.\n", target.ID, target.Timestamp.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}
