package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numeth/matrix"
	"github.com/stretchr/testify/require"
)

func TestDet_SmallClosedForms(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-4}}, -4},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{2, 1, -1}, {3, -1, 1}, {2, 3, 1}}, -20},
		{"3x3 singular", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(mustDense(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

// TestDet_LU exercises the LU path for n > 3.
func TestDet_LU(t *testing.T) {
	m := mustDense(t, [][]float64{
		{2, 0, 0, 1},
		{0, 3, 0, 0},
		{0, 0, 4, 0},
		{1, 0, 0, 2},
	})
	d, err := matrix.Det(m)
	require.NoError(t, err)
	require.InDelta(t, 36.0, d, 1e-9)

	// The input buffer is not modified by the factorisation.
	require.Equal(t, [][]float64{{2, 0, 0, 1}, {0, 3, 0, 0}, {0, 0, 4, 0}, {1, 0, 0, 2}}, m.RawRows())
}

func TestDet_Errors(t *testing.T) {
	_, err := matrix.Det(mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Det3x3(mustDense(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
