// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// toucan-render is a thin CLI front-end over the graph compiler,
// effect host, and render driver: it renders a frame range from an
// OTIO timeline to a numbered image sequence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "toucan-render: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "toucan-render",
	Short: "Render frames from an OTIO timeline",
	Long: `toucan-render compiles an OTIO timeline's image graph and renders
frames from it to a numbered image sequence, driving the same
graph compiler, effect host, and render driver the core library
exposes.`,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
