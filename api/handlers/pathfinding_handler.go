package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voxnav/voxnav/core"
	"github.com/voxnav/voxnav/loadgrid"
	"github.com/voxnav/voxnav/pathfinding"
	"github.com/voxnav/voxnav/pathfinding/astar"
	"github.com/voxnav/voxnav/pathfinding/bestfirst"
	"github.com/voxnav/voxnav/pathfinding/biastar"
	"github.com/voxnav/voxnav/pathfinding/breadthfirst"
	"github.com/voxnav/voxnav/pathfinding/dijkstra"
	"github.com/voxnav/voxnav/pathfinding/idastar"
	"github.com/voxnav/voxnav/pathfinding/msp"
	"github.com/voxnav/voxnav/pathfinding/thetastar"
)

type FindPathRequest struct {
	// Matrix carries the voxel weights inline; MatrixFile names a file under
	// GRID_DATA_DIR instead. Exactly one of the two must be set.
	Matrix     [][][]float64 `json:"matrix,omitempty"`
	MatrixFile string        `json:"matrixFile,omitempty"`
	Inverse    bool          `json:"inverse,omitempty"`

	Start [3]int `json:"start"`
	End   [3]int `json:"end"`

	Algorithm        string  `json:"algorithm"`
	DiagonalMovement string  `json:"diagonalMovement,omitempty"`
	Heuristic        string  `json:"heuristic,omitempty"`
	Weight           int     `json:"weight,omitempty"`
	MaxRuns          int     `json:"maxRuns,omitempty"`
	TimeLimitMs      float64 `json:"timeLimitMs,omitempty"`

	Smoothen bool `json:"smoothen,omitempty"`
	Expand   bool `json:"expand,omitempty"`
}

type FindPathResponse struct {
	Path          []core.Coord `json:"path"`
	Runs          int          `json:"runs"`
	ExecutionTime float64      `json:"executionTimeMs"`
	Error         string       `json:"error,omitempty"`
}

// finderConstructors maps the request's algorithm name to its finder.
var finderConstructors = map[string]func(pathfinding.Options) pathfinding.Pathfinder{
	"astar":        func(o pathfinding.Options) pathfinding.Pathfinder { return astar.New(o) },
	"bestfirst":    func(o pathfinding.Options) pathfinding.Pathfinder { return bestfirst.New(o) },
	"biastar":      func(o pathfinding.Options) pathfinding.Pathfinder { return biastar.New(o) },
	"breadthfirst": func(o pathfinding.Options) pathfinding.Pathfinder { return breadthfirst.New(o) },
	"dijkstra":     func(o pathfinding.Options) pathfinding.Pathfinder { return dijkstra.New(o) },
	"idastar":      func(o pathfinding.Options) pathfinding.Pathfinder { return idastar.New(o) },
	"msp":          func(o pathfinding.Options) pathfinding.Pathfinder { return msp.New(o) },
	"thetastar":    func(o pathfinding.Options) pathfinding.Pathfinder { return thetastar.New(o) },
}

var diagonalMovements = map[string]core.DiagonalMovement{
	"":                    core.DiagonalNever,
	"never":               core.DiagonalNever,
	"onlyWhenNoObstacle":  core.DiagonalOnlyWhenNoObstacle,
	"ifAtMostOneObstacle": core.DiagonalIfAtMostOneObstacle,
	"always":              core.DiagonalAlways,
}

var heuristics = map[string]core.Heuristic{
	"":          nil, // finder default
	"manhattan": core.Manhattan,
	"euclidean": core.Euclidean,
	"chebyshev": core.Chebyshev,
	"octile":    core.Octile,
	"null":      core.Null,
}

// AlgorithmNames lists the available algorithms, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(finderConstructors))
	for name := range finderConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AlgorithmsHandler serves the list of algorithm names.
func AlgorithmsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": AlgorithmNames()})
}

// FindPathHandler runs one search over a request-supplied matrix.
func FindPathHandler(c *gin.Context) {
	var req FindPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	construct, ok := finderConstructors[req.Algorithm]
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: "Unknown algorithm: " + req.Algorithm})
		return
	}
	diagonal, ok := diagonalMovements[req.DiagonalMovement]
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: "Unknown diagonalMovement: " + req.DiagonalMovement})
		return
	}
	heuristic, ok := heuristics[req.Heuristic]
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: "Unknown heuristic: " + req.Heuristic})
		return
	}

	matrix, err := resolveMatrix(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: err.Error()})
		return
	}

	grid, err := core.NewGrid(core.GridConfig{Matrix: matrix, Inverse: req.Inverse})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: "Invalid matrix: " + err.Error()})
		return
	}

	start := grid.Node(req.Start[0], req.Start[1], req.Start[2])
	end := grid.Node(req.End[0], req.End[1], req.End[2])
	if start == nil || end == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, FindPathResponse{Error: "Start or end is outside the matrix"})
		return
	}

	finder := construct(pathfinding.Options{
		Heuristic:        heuristic,
		Weight:           req.Weight,
		DiagonalMovement: diagonal,
		MaxRuns:          req.MaxRuns,
		TimeLimit:        time.Duration(req.TimeLimitMs * float64(time.Millisecond)),
	})

	log.Printf("[INFO] Received find-path request: Algorithm=%s, Start=%v, End=%v, Diagonal=%v\n",
		req.Algorithm, req.Start, req.End, diagonal)

	searchStart := time.Now()
	nodePath, runs, err := finder.FindPath(start, end, grid)
	executionTime := time.Since(searchStart).Seconds() * 1000

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pathfinding.ErrRunsExceeded) || errors.Is(err, pathfinding.ErrTimeExceeded) {
			status = http.StatusUnprocessableEntity
		}
		c.AbortWithStatusJSON(status, FindPathResponse{
			Runs:          runs,
			ExecutionTime: executionTime,
			Error:         err.Error(),
		})
		return
	}

	path := pathfinding.NewResult(nodePath, runs).Path
	if req.Smoothen {
		path = core.SmoothenPath(grid, path, false)
	}
	if req.Expand {
		path = core.ExpandPath(path)
	}

	c.JSON(http.StatusOK, FindPathResponse{
		Path:          path,
		Runs:          runs,
		ExecutionTime: executionTime,
	})
	log.Printf("[INFO] Sent response for Algorithm=%s (PathLen=%d, Runs=%d)\n", req.Algorithm, len(path), runs)
}

// resolveMatrix picks the inline matrix or loads the named file from
// GRID_DATA_DIR, refusing paths that escape the data directory.
func resolveMatrix(req FindPathRequest) ([][][]float64, error) {
	if req.Matrix != nil && req.MatrixFile != "" {
		return nil, errors.New("Provide either matrix or matrixFile, not both")
	}
	if req.Matrix != nil {
		return req.Matrix, nil
	}
	if req.MatrixFile == "" {
		return nil, errors.New("Missing matrix or matrixFile")
	}

	dataDir := os.Getenv("GRID_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	base, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, err
	}
	full := filepath.Join(base, filepath.Clean("/"+req.MatrixFile))
	if !strings.HasPrefix(full, base+string(os.PathSeparator)) {
		return nil, errors.New("matrixFile escapes the data directory")
	}

	return loadgrid.LoadMatrix(full)
}
