package convergence

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheFellow/fdperiodic/pkg/fd"
)

func TestResolutions(t *testing.T) {
	ns, err := Resolutions(10, 1000, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 16, 27, 46, 77, 129, 215, 359, 599, 1000}, ns)

	ns, err = Resolutions(3, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, ns)

	ns, err = Resolutions(12, 12, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{12}, ns)
}

func TestResolutionsRejectsBadRange(t *testing.T) {
	for _, c := range [][3]int{{2, 10, 3}, {10, 9, 3}, {10, 20, 0}} {
		_, err := Resolutions(c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrBadRange, "%v", c)
	}
}

func TestRelativeL2(t *testing.T) {
	exact, err := fd.FromValues(1, 2, []float64{3, 4})
	require.NoError(t, err)
	approx, err := fd.FromValues(1, 2, []float64{3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/25, RelativeL2(approx, exact), 1e-15)
	assert.Zero(t, RelativeL2(exact, exact))
	assert.Panics(t, func() { RelativeL2(fd.New(2, 1), exact) })
}

func TestOperatorsMatchFiniteDifferenceLimit(t *testing.T) {
	// At a fine grid every operator must be close to its exact derivative.
	n := 256
	h := 1.0 / float64(n)
	f := fd.Sample(n, n, TestFunction)
	for _, op := range Operators() {
		e := RelativeL2(op.Apply(f, h), fd.Sample(n, n, op.Exact))
		assert.Less(t, e, 1e-7, op.Name)
	}
}

func TestRunSecondOrder(t *testing.T) {
	rep, err := Run(context.Background(), Config{MinPoints: 10, MaxPoints: 100, Count: 2}, nil)
	require.NoError(t, err)
	require.Equal(t, []int{10, 100}, rep.Resolutions)
	require.Len(t, rep.Series, 4)

	for _, s := range rep.Series {
		require.Len(t, s.Points, 2, s.Operator)
		coarse, fine := s.Points[0].Error, s.Points[1].Error
		assert.Greater(t, coarse, 100*fine, s.Operator)
		assert.InDelta(t, 2.0, s.Order(), 0.1, s.Operator)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{MinPoints: 10, MaxPoints: 20, Count: 2}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{MinPoints: 1, MaxPoints: 20, Count: 2}, nil)
	assert.ErrorIs(t, err, ErrBadRange)
}

func TestSeriesOrder(t *testing.T) {
	s := Series{Points: []Point{{N: 10, Error: 1e-4}, {N: 100, Error: 1e-8}, {N: 1000, Error: 1e-12}}}
	assert.InDelta(t, 2.0, s.Order(), 1e-9)

	assert.True(t, math.IsNaN(Series{Points: []Point{{N: 10, Error: 1}}}.Order()))
	assert.True(t, math.IsNaN(Series{Points: []Point{{N: 10, Error: 0}, {N: 20, Error: 0}}}.Order()))
}

func sampleReport() Report {
	return Report{
		Resolutions: []int{10, 100},
		Series: []Series{
			{Operator: "first_dir1", Points: []Point{{10, 1e-4}, {100, 1e-8}}},
			{Operator: "second_dir2", Points: []Point{{10, 4e-4}, {100, 4e-8}}},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Write(&buf, "text"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "first_dir1")
	assert.Contains(t, lines[1], "1.000e-04")
	assert.Contains(t, lines[3], "2.00")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Write(&buf, "csv"))
	assert.Equal(t, "operator,n,error\n"+
		"first_dir1,10,0.0001\nfirst_dir1,100,1e-08\n"+
		"second_dir2,10,0.0004\nsecond_dir2,100,4e-08\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Write(&buf, "json"))

	var got struct {
		Resolutions []int
		Series      []struct {
			Operator string
			Order    float64
			Points   []Point
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []int{10, 100}, got.Resolutions)
	require.Len(t, got.Series, 2)
	assert.InDelta(t, 2.0, got.Series[1].Order, 1e-9)
	assert.Equal(t, Point{N: 100, Error: 4e-8}, got.Series[1].Points[1])
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, sampleReport().Write(&bytes.Buffer{}, "xml"))
}
