package main

import (
	"errors"
	"fmt"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/infrastructure"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var req domain.BuildRequest

	cmd := &cobra.Command{
		Use:   "build [draft-file]",
		Short: "Build a draft into a zip archive",
		Example: `  landingkit build summer.md
  landingkit build summer.json --out dist/summer.zip
  landingkit build --draft-id abc123 --upload`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				req.DraftFile = args[0]
			}
			if req.DraftFile == "" && req.DraftID == "" {
				return errors.New("pass a draft file or --draft-id")
			}
			return runBuild(cmd, opts, req)
		},
	}

	cmd.Flags().StringVar(&req.DraftID, "draft-id", "", "build a draft from the draft store")
	cmd.Flags().StringVarP(&req.OutputPath, "out", "o", "", "archive path (default <output-dir>/<campaign>-<id>.zip)")
	cmd.Flags().StringVar(&req.OutputDir, "output-dir", "", "directory for the default archive path")
	cmd.Flags().BoolVar(&req.Upload, "upload", false, "upload the archive to the storage bucket")
	cmd.Flags().BoolVar(&req.KeepTemp, "keep-temp", false, "keep the generated site directory")
	return cmd
}

func runBuild(cmd *cobra.Command, opts *rootOptions, req domain.BuildRequest) error {
	ctx := cmd.Context()
	fs := infrastructure.NewOSFileSystem()

	var r *remote
	if req.DraftFile == "" || req.Upload {
		var err error
		r, err = opts.openRemote(ctx, fs, req.Upload)
		if err != nil {
			return err
		}
		defer r.Close()
	}

	result, err := opts.newBuildService(fs, r).Build(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Archive: %s\n", result.ArchivePath)
	if result.ObjectURL != "" {
		fmt.Fprintf(out, "Uploaded: %s\n", result.ObjectURL)
	}
	if result.TempDir != "" {
		fmt.Fprintf(out, "Site directory: %s\n", result.TempDir)
	}
	fmt.Fprintf(out, "Trace: %s\n", result.TraceID)
	return nil
}
