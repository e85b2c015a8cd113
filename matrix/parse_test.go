package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numeth/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	m, err := matrix.ParseRows("[5,6,7,8]")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6, 7, 8}}, m.RawRows())

	m, err = matrix.ParseRows(" [1, 2 ; 3, 4.5] ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, m.RawRows())

	m, err = matrix.ParseRows("-1e2, .5")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-100, 0.5}}, m.RawRows())
}

func TestParseRows_Errors(t *testing.T) {
	_, err := matrix.ParseRows("[1,,2]")
	require.ErrorIs(t, err, matrix.ErrInvalidNumber)

	_, err = matrix.ParseRows("[1,abc]")
	require.ErrorIs(t, err, matrix.ErrInvalidNumber)

	_, err = matrix.ParseRows("[1,NaN]")
	require.ErrorIs(t, err, matrix.ErrInvalidNumber)

	_, err = matrix.ParseRows("[1,2;3]")
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ParseRows("[]")
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
