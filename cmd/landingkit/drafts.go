package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/eduardo/landingkit/internal/infrastructure"
	"github.com/eduardo/landingkit/internal/parser"
	"github.com/spf13/cobra"
)

func newDraftsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage drafts in the draft store",
	}
	cmd.AddCommand(
		newDraftsListCmd(opts),
		newDraftsPullCmd(opts),
		newDraftsPushCmd(opts),
	)
	return cmd
}

func newDraftsListCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recently updated drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			r, err := opts.openRemote(ctx, infrastructure.NewOSFileSystem(), false)
			if err != nil {
				return err
			}
			defer r.Close()

			drafts, err := r.drafts.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No drafts found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCAMPAIGN\tUPDATED")
			for _, d := range drafts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.CampaignName, d.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of drafts (0 for all)")
	return cmd
}

func newDraftsPullCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull <draft-id> [file]",
		Short: "Write a stored draft to a local markdown file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fs := infrastructure.NewOSFileSystem()
			r, err := opts.openRemote(ctx, fs, false)
			if err != nil {
				return err
			}
			defer r.Close()

			draft, err := r.drafts.Get(ctx, args[0])
			if err != nil {
				return err
			}
			filename := args[0] + ".md"
			if len(args) == 2 {
				filename = args[1]
			}
			data, err := parser.Render(draft)
			if err != nil {
				return fmt.Errorf("failed to render draft: %w", err)
			}
			if err := fs.WriteFile(filename, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", filename, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filename)
			return nil
		},
	}
}

func newDraftsPushCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push <file>",
		Short: "Save a local draft file to the draft store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fs := infrastructure.NewOSFileSystem()
			draft, err := parser.NewMarkdownParser(fs).Parse(args[0])
			if err != nil {
				return err
			}

			r, err := opts.openRemote(ctx, fs, false)
			if err != nil {
				return err
			}
			defer r.Close()

			id, err := r.drafts.Save(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %s\n", id)
			return nil
		},
	}
}
