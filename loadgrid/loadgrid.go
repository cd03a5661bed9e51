// Package loadgrid reads voxel matrices from disk. A matrix file is a JSON
// array of layers ([x][y][z], cell values are weights, 0 blocks the cell);
// files ending in .br are brotli-compressed JSON.
package loadgrid

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
)

// LoadMatrix reads and validates a voxel matrix file.
func LoadMatrix(filepath string) ([][][]float64, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(filepath, ".br") {
		reader = brotli.NewReader(file)
	}

	var matrix [][][]float64
	if err := json.NewDecoder(reader).Decode(&matrix); err != nil {
		return nil, fmt.Errorf("decoding matrix from '%s': %w", filepath, err)
	}

	if err := validate(matrix); err != nil {
		return nil, fmt.Errorf("matrix in '%s' is invalid: %w", filepath, err)
	}

	log.Printf("[INFO] Matrix successfully loaded from '%s'. Shape: %dx%dx%d.\n",
		filepath, len(matrix), len(matrix[0]), len(matrix[0][0]))

	return matrix, nil
}

// validate rejects empty and ragged matrices before they reach the grid.
func validate(matrix [][][]float64) error {
	if len(matrix) == 0 || len(matrix[0]) == 0 || len(matrix[0][0]) == 0 {
		return fmt.Errorf("matrix must have three non-empty dimensions")
	}
	height := len(matrix[0])
	depth := len(matrix[0][0])
	for x, plane := range matrix {
		if len(plane) != height {
			return fmt.Errorf("plane %d has %d rows, want %d", x, len(plane), height)
		}
		for y, row := range plane {
			if len(row) != depth {
				return fmt.Errorf("row %d of plane %d has %d cells, want %d", y, x, len(row), depth)
			}
		}
	}
	return nil
}
