// Package assign solves minimum-cost bipartite assignment over dense
// rectangular cost matrices. The solver is a pure stateless function used
// for both per-parent child alignment and the global element alignment.
package assign

import (
	"math"
	"sort"
)

// Pair is one matched (row, column) index pair of an assignment.
type Pair struct {
	Row int
	Col int
}

// Solve computes a minimum-total-cost one-to-one assignment over cost,
// a rectangular rows×cols matrix. Every index of the smaller dimension is
// matched; unmatched indices of the larger dimension are omitted. The
// result is sorted by row. An empty matrix yields an empty assignment.
func Solve(cost [][]float64) []Pair {
	rows := len(cost)
	if rows == 0 || len(cost[0]) == 0 {
		return nil
	}
	cols := len(cost[0])

	if rows <= cols {
		return solve(cost, rows, cols, false)
	}
	return solve(transpose(cost, rows, cols), cols, rows, true)
}

// Total sums the matrix costs of the given pairs.
func Total(cost [][]float64, pairs []Pair) float64 {
	sum := 0.0
	for _, p := range pairs {
		sum += cost[p.Row][p.Col]
	}
	return sum
}

// solve runs the shortest-augmenting-path assignment for n <= m, one
// augmentation per row, maintaining dual potentials u and v. Indices are
// 1-based internally; column 0 is the virtual start of each path.
func solve(cost [][]float64, n, m int, swapped bool) []Pair {
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	rowOf := make([]int, m+1) // rowOf[j]: row matched to column j, 0 when free
	way := make([]int, m+1)   // way[j]: previous column on the augmenting path

	for i := 1; i <= n; i++ {
		rowOf[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := rowOf[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				reduced := cost[i0-1][j-1] - u[i0] - v[j]
				if reduced < minv[j] {
					minv[j] = reduced
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[rowOf[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if rowOf[j0] == 0 {
				break
			}
		}

		// Walk the path backwards, flipping matched edges.
		for j0 != 0 {
			j1 := way[j0]
			rowOf[j0] = rowOf[j1]
			j0 = j1
		}
	}

	pairs := make([]Pair, 0, n)
	for j := 1; j <= m; j++ {
		if rowOf[j] == 0 {
			continue
		}
		if swapped {
			pairs = append(pairs, Pair{Row: j - 1, Col: rowOf[j] - 1})
		} else {
			pairs = append(pairs, Pair{Row: rowOf[j] - 1, Col: j - 1})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].Row < pairs[b].Row })
	return pairs
}

// transpose returns the cols×rows flip of a rows×cols matrix.
func transpose(cost [][]float64, rows, cols int) [][]float64 {
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = cost[i][j]
		}
	}
	return out
}
