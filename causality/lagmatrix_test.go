package causality

import (
	"errors"
	"math"
	"testing"
)

// almostEqual compares floats with tolerance
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBuildLagMatrix(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	order := 3

	m, err := BuildLagMatrix(x, order)
	if err != nil {
		t.Fatalf("BuildLagMatrix returned error: %v", err)
	}

	rows, cols := m.Dims()
	if rows != len(x)-order || cols != order {
		t.Fatalf("BuildLagMatrix shape = (%d, %d); want (%d, %d)", rows, cols, len(x)-order, order)
	}

	// Row t must hold [x[order-1+t], ..., x[t]], aligned with target x[order+t].
	for tRow := 0; tRow < rows; tRow++ {
		for i := 0; i < order; i++ {
			want := x[order-1-i+tRow]
			if got := m.At(tRow, i); got != want {
				t.Errorf("lag matrix [%d][%d] = %v; want %v", tRow, i, got, want)
			}
		}
	}
}

func TestBuildLagMatrixColumnConvention(t *testing.T) {
	x := []float64{10, 20, 30, 40, 50}
	m, err := BuildLagMatrix(x, 2)
	if err != nil {
		t.Fatalf("BuildLagMatrix returned error: %v", err)
	}

	// Column 0 is lag-1: x[1:4]. Column 1 is lag-2: x[0:3].
	wantCol0 := []float64{20, 30, 40}
	wantCol1 := []float64{10, 20, 30}
	for tRow := 0; tRow < 3; tRow++ {
		if got := m.At(tRow, 0); got != wantCol0[tRow] {
			t.Errorf("column 0 row %d = %v; want %v", tRow, got, wantCol0[tRow])
		}
		if got := m.At(tRow, 1); got != wantCol1[tRow] {
			t.Errorf("column 1 row %d = %v; want %v", tRow, got, wantCol1[tRow])
		}
	}
}

func TestBuildLagMatrixInvalidOrder(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	for _, order := range []int{0, -1, len(x), len(x) + 5} {
		if _, err := BuildLagMatrix(x, order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("BuildLagMatrix(x, %d) error = %v; want ErrInvalidOrder", order, err)
		}
	}
}
