package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracperc/bernoulli"
	"github.com/katalvlaran/fracperc/euler"
	"github.com/katalvlaran/fracperc/field"
)

// TestDeadTimesEight_Shapes pins hand-checked values for both boundaries.
func TestDeadTimesEight_Shapes(t *testing.T) {
	cases := []struct {
		name         string
		rows         []string
		white, black int
		alive        int
	}{
		{"AllAlive", []string{"##", "##"}, 0, -8, 1},
		{"AllDead", []string{"..", ".."}, 8, 0, 0},
		{"AliveRing", []string{"###", "#.#", "###"}, 8, 0, 0},
		{"DeadRing", []string{"...", ".#.", "..."}, 0, -8, 1},
		{"DeadDiagonal", []string{".#", "#."}, 8, -16, 2},
		{"AliveDiagonal", []string{"#.", ".#"}, 8, -16, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := field.MustParse(tc.rows...)
			assert.Equal(t, tc.white, euler.DeadTimesEight(f, euler.WhiteOutside), "white outside")
			assert.Equal(t, tc.black, euler.DeadTimesEight(f, euler.BlackOutside), "black outside")
			assert.Equal(t, tc.alive, euler.Alive(f), "alive")
		})
	}
}

// TestAlive_SolidDisk: a fully alive field is one component without holes.
func TestAlive_SolidDisk(t *testing.T) {
	for _, n := range []int{1, 2, 9, 27} {
		f, err := field.NewBinary(n, n)
		require.NoError(t, err)
		assert.Equalf(t, 1, euler.Alive(f), "n=%d", n)
		assert.Equalf(t, 0, euler.DeadTimesEight(f, euler.WhiteOutside), "n=%d", n)
	}
}

// components counts connected components of cells with value v and how many
// of them do not touch the grid boundary.
func components(f *field.Binary, v bool, conn8 bool) (total, interior int) {
	offsets := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	if conn8 {
		offsets = append(offsets, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, -1})
	}
	seen := make(map[[2]int]bool)
	for x := 0; x < f.Nx(); x++ {
		for y := 0; y < f.Ny(); y++ {
			if f.At(x, y) != v || seen[[2]int{x, y}] {
				continue
			}
			total++
			touches := false
			stack := [][2]int{{x, y}}
			seen[[2]int{x, y}] = true
			for len(stack) > 0 {
				u := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if u[0] == 0 || u[1] == 0 || u[0] == f.Nx()-1 || u[1] == f.Ny()-1 {
					touches = true
				}
				for _, d := range offsets {
					w := [2]int{u[0] + d[0], u[1] + d[1]}
					if f.InBounds(w[0], w[1]) && f.At(w[0], w[1]) == v && !seen[w] {
						seen[w] = true
						stack = append(stack, w)
					}
				}
			}
			if !touches {
				interior++
			}
		}
	}
	return total, interior
}

// TestEuler_ComponentsMinusHoles checks both formulas against
// components − holes on random fields.
//
// With white outside, alive components touching the boundary join the
// outside, so only interior alive components are holes of the dead set; the
// converse holds for Alive with dead outside.
func TestEuler_ComponentsMinusHoles(t *testing.T) {
	stream := bernoulli.NewStream(3)
	for i := 0; i < 200; i++ {
		f, err := field.NewBinary(1+i%9, 1+(i/9)%9)
		require.NoError(t, err)
		require.NoError(t, stream.Fill(f, 0.5))

		dead, deadInterior := components(f, true, true)
		alive, aliveInterior := components(f, false, false)

		raw := euler.DeadTimesEight(f, euler.WhiteOutside)
		require.Zero(t, raw%8, "field %d: raw %d not divisible by 8", i, raw)
		assert.Equalf(t, dead-aliveInterior, raw/8, "field %d dead", i)
		assert.Equalf(t, alive-deadInterior, euler.Alive(f), "field %d alive", i)
	}
}

// TestBoundary_String covers the names used in logs.
func TestBoundary_String(t *testing.T) {
	assert.Equal(t, "white", euler.WhiteOutside.String())
	assert.Equal(t, "black", euler.BlackOutside.String())
}
