package volume

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// RawFormat names the voxel encoding of a raw volume file
type RawFormat string

const (
	RawUint8   RawFormat = "uint8"
	RawUint16  RawFormat = "uint16"
	RawFloat32 RawFormat = "float32"
)

// LoadRaw reads a headerless little-endian raw volume file with the
// given dimensions and voxel format. Scan data exported from NIfTI or
// DICOM series is expected to be converted to this layout externally;
// the x coordinate varies fastest, then y, then z.
func LoadRaw(filename string, nx, ny, nz int, format RawFormat) (*Volume, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open volume file: %w", err)
	}
	defer file.Close()

	v, err := New(nx, ny, nz)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(file)
	switch format {
	case RawUint8:
		buf := make([]byte, len(v.Data))
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("failed to read voxel data: %w", err)
		}
		for i, b := range buf {
			v.Data[i] = float64(b)
		}

	case RawUint16:
		buf := make([]uint16, len(v.Data))
		if err := binary.Read(reader, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("failed to read voxel data: %w", err)
		}
		for i, s := range buf {
			v.Data[i] = float64(s)
		}

	case RawFloat32:
		buf := make([]float32, len(v.Data))
		if err := binary.Read(reader, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("failed to read voxel data: %w", err)
		}
		for i, f := range buf {
			v.Data[i] = float64(f)
		}

	default:
		return nil, fmt.Errorf("unsupported raw format %q", format)
	}

	return v, nil
}

// ParseDims parses a NXxNYxNZ dimension string such as "256x256x180"
func ParseDims(s string) (nx, ny, nz int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%dx%d", &nx, &ny, &nz); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid dimensions %q (expected NXxNYxNZ)", s)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return 0, 0, 0, fmt.Errorf("invalid dimensions %q (all must be >= 1)", s)
	}
	return nx, ny, nz, nil
}
