package meshio

import (
	"fmt"
	"strconv"
	"strings"
)

// parseVertexLine parses "v x y z" (or "v x y" for 2D) into coordinates.
func parseVertexLine(fields []string) ([]float64, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("meshio: vertex line: %w", ErrIOFormat)
	}
	coords := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("meshio: vertex coordinate %q: %w", f, ErrIOFormat)
		}
		coords[i] = v
	}
	return coords, nil
}

// parseFaceLine parses "f i j k [...]" 1-based indices into 0-based ones.
// Each field may carry optional "/texcoord/normal" suffixes, which are
// ignored; only the vertex-index component before the first "/" is read.
func parseFaceLine(fields []string) ([]int, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("meshio: face line: %w", ErrIOFormat)
	}
	idx := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		if slash := strings.IndexByte(f, '/'); slash >= 0 {
			f = f[:slash]
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("meshio: face index %q: %w", f, ErrIOFormat)
		}
		idx[i] = n - 1
	}
	return idx, nil
}

// parseGroupLine parses "g name" into its group name.
func parseGroupLine(fields []string) (string, error) {
	if len(fields) < 2 {
		return "", fmt.Errorf("meshio: group line: %w", ErrIOFormat)
	}
	return strings.Join(fields[1:], " "), nil
}

// formatVertex renders coords rounded to 6 decimal digits, "v" prefixed.
func formatVertex(coords []float64) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatFloat(round6(c), 'f', 6, 64)
	}
	return "v " + strings.Join(parts, " ")
}

// formatFace renders 0-based indices as a 1-based "f" line.
func formatFace(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v + 1)
	}
	return "f " + strings.Join(parts, " ")
}

func round6(x float64) float64 {
	const scale = 1e6
	if x < 0 {
		return -float64(int64(-x*scale+0.5)) / scale
	}
	return float64(int64(x*scale+0.5)) / scale
}
