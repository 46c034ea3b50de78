package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goanatomy/internal/app"
	"github.com/philipparndt/goanatomy/pkg/config"
	"github.com/philipparndt/goanatomy/pkg/volume"
	"github.com/spf13/cobra"
)

var (
	viewVolumeFile string
	viewVolumeDims string
	viewVolumeFmt  string
	viewConfigFile string
)

var viewCmd = &cobra.Command{
	Use:   "view <mesh.stl>...",
	Short: "Open the interactive 3D workstation",
	Long: `Open the 3D workstation with the given structure meshes. An optional raw
volume backs the slice planes; without one a synthetic phantom volume is
generated so the planes still work.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewVolumeFile, "volume", "", "raw volume file backing the slice planes")
	viewCmd.Flags().StringVar(&viewVolumeDims, "dims", "", "volume dimensions as NXxNYxNZ (required with --volume)")
	viewCmd.Flags().StringVar(&viewVolumeFmt, "format", "uint16", "voxel format: uint8, uint16 or float32")
	viewCmd.Flags().StringVar(&viewConfigFile, "config", "", "YAML config file")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig(viewConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	vol, err := loadVolumeFlag(viewVolumeFile, viewVolumeDims, viewVolumeFmt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(cfg, args, vol); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadVolumeFlag resolves the volume flags, generating a phantom when
// no file is given
func loadVolumeFlag(file, dims, format string) (*volume.Volume, error) {
	if file == "" {
		return volume.NewPhantom(64, 64, 64)
	}
	if dims == "" {
		return nil, fmt.Errorf("--dims is required with --volume")
	}
	nx, ny, nz, err := volume.ParseDims(dims)
	if err != nil {
		return nil, err
	}
	return volume.LoadRaw(file, nx, ny, nz, volume.RawFormat(format))
}
