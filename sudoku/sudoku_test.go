package sudoku_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/unblack/pnm"
	"github.com/katalvlaran/unblack/sudoku"
	"github.com/katalvlaran/unblack/uarray2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solved = [sudoku.Size][sudoku.Size]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func boardOf(t *testing.T, rows [sudoku.Size][sudoku.Size]int) *uarray2.Array[int] {
	t.Helper()
	a, err := uarray2.New[int](sudoku.Size, sudoku.Size)
	require.NoError(t, err)
	for r, row := range rows {
		for c, v := range row {
			require.NoError(t, a.Set(c, r, v))
		}
	}
	return a
}

func graymapText(rows [sudoku.Size][sudoku.Size]int, maxval int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P2\n%d %d\n%d\n", sudoku.Size, sudoku.Size, maxval)
	for _, row := range rows {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestCheckSolved(t *testing.T) {
	require.NoError(t, sudoku.Check(boardOf(t, solved)))
	assert.True(t, sudoku.Valid(boardOf(t, solved)))
}

func TestCheckReportsFirstUnit(t *testing.T) {
	// Swapping two cells of a row keeps rows valid but breaks two columns.
	swapped := solved
	swapped[0][0], swapped[0][1] = swapped[0][1], swapped[0][0]
	err := sudoku.Check(boardOf(t, swapped))
	require.ErrorIs(t, err, sudoku.ErrInvalidBoard)
	assert.Contains(t, err.Error(), "column 0")

	// Swapping two rows of different bands keeps rows and columns valid
	// but breaks boxes.
	bands := solved
	bands[2], bands[3] = bands[3], bands[2]
	err = sudoku.Check(boardOf(t, bands))
	require.ErrorIs(t, err, sudoku.ErrInvalidBoard)
	assert.Contains(t, err.Error(), "box 0")
}

func TestCheckRowFailure(t *testing.T) {
	swapped := solved
	swapped[0][0], swapped[1][0] = swapped[1][0], swapped[0][0]
	err := sudoku.Check(boardOf(t, swapped))
	require.ErrorIs(t, err, sudoku.ErrInvalidBoard)
	// Column 0 is still a permutation; rows 0 and 1 now repeat digits.
	assert.Contains(t, err.Error(), "row 0")
}

func TestCheckRepeatedDigits(t *testing.T) {
	var same [sudoku.Size][sudoku.Size]int
	for r := range same {
		for c := range same[r] {
			same[r][c] = 1
		}
	}
	assert.False(t, sudoku.Valid(boardOf(t, same)))
}

func TestCheckShape(t *testing.T) {
	small, err := uarray2.New[int](3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, sudoku.Check(small), sudoku.ErrMalformedBoard)
	require.ErrorIs(t, sudoku.Check(nil), sudoku.ErrMalformedBoard)
}

func TestFromGraymap(t *testing.T) {
	gm, err := pnm.DecodeGraymap(strings.NewReader(graymapText(solved, 9)))
	require.NoError(t, err)
	board, err := sudoku.FromGraymap(gm)
	require.NoError(t, err)
	require.NoError(t, sudoku.Check(board))
}

func TestFromGraymapMalformed(t *testing.T) {
	gm, err := pnm.DecodeGraymap(strings.NewReader(graymapText(solved, 10)))
	require.NoError(t, err)
	_, err = sudoku.FromGraymap(gm)
	require.ErrorIs(t, err, sudoku.ErrMalformedBoard)

	zero := solved
	zero[4][4] = 0
	gm, err = pnm.DecodeGraymap(strings.NewReader(graymapText(zero, 9)))
	require.NoError(t, err)
	_, err = sudoku.FromGraymap(gm)
	require.ErrorIs(t, err, sudoku.ErrMalformedBoard)

	gm, err = pnm.DecodeGraymap(strings.NewReader("P2 2 2 9 1 2 3 4"))
	require.NoError(t, err)
	_, err = sudoku.FromGraymap(gm)
	require.ErrorIs(t, err, sudoku.ErrMalformedBoard)

	_, err = sudoku.FromGraymap(nil)
	require.ErrorIs(t, err, sudoku.ErrMalformedBoard)
}
