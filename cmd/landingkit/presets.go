package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eduardo/landingkit/internal/sections"
	"github.com/eduardo/landingkit/internal/theme"
	"github.com/spf13/cobra"
)

func newPresetsCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List theme presets and registered sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			presets := theme.Presets()
			kinds := make([]string, 0, len(presets))
			for kind := range presets {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(out, "%s: %s\n", kind, strings.Join(presets[kind], ", "))
			}
			fmt.Fprintf(out, "sections: %s\n", strings.Join(sections.NewRegistry().Names(), ", "))
			return nil
		},
	}
}
