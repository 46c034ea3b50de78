package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goanatomy/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goanatomy",
	Short: "Interactive anatomical visualization workstation",
	Long: `goanatomy is a visualization workstation for anatomical surface meshes
and scalar volumes. It clips structure meshes against axis-aligned planes,
extracts multi-planar reconstruction slices from raw volumes and shows both
in an interactive 3D view.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
