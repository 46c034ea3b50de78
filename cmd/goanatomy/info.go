package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goanatomy/pkg/analysis"
	"github.com/philipparndt/goanatomy/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <mesh.stl>...",
	Short: "Display statistics for structure meshes",
	Long:  "Show triangle counts, dimensions and surface area for each structure file.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	failed := 0
	for i, filename := range args {
		if i > 0 {
			fmt.Println()
		}
		model, err := stl.Parse(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", filename, err)
			failed++
			continue
		}

		stats := analysis.AnalyzeStructure(model)

		fmt.Printf("Structure: %s\n", stats.Name)
		fmt.Printf("File: %s\n", filename)
		fmt.Printf("  Triangles: %d\n", stats.Triangles)
		fmt.Printf("  Surface Area: %.2f mm²\n", stats.SurfaceArea)
		fmt.Printf("  Size: %.2f × %.2f × %.2f mm\n", stats.Size.X, stats.Size.Y, stats.Size.Z)
		fmt.Printf("  Center: (%.2f, %.2f, %.2f)\n", stats.Center.X, stats.Center.Y, stats.Center.Z)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
