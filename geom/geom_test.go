package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barutsrb/hyprspace-go/geom"
)

func TestRectEdges(t *testing.T) {
	r := geom.R(10, 20, 100, 50)
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 70.0, r.Bottom())
}

func TestRectInset(t *testing.T) {
	r := geom.R(0, 0, 100, 100).Inset(10, 5, 10, 5)
	assert.Equal(t, geom.R(10, 5, 80, 90), r)
}

func TestRectInsetFloorsAtZero(t *testing.T) {
	r := geom.R(0, 0, 10, 10).Inset(20, 20, 20, 20)
	assert.Equal(t, 0.0, r.Width)
	assert.Equal(t, 0.0, r.Height)
}

func TestSplitSeamEvenRatio(t *testing.T) {
	a, b := geom.SplitSeam(1000, 10, 1, 1)
	assert.InDelta(t, 495, a, 0.001)
	assert.InDelta(t, 495, b, 0.001)
}

func TestSplitSeamRatio(t *testing.T) {
	// ratio 1.05 : 1 over a 1000-wide container, no gap.
	a, b := geom.SplitSeam(1000, 0, 1.05, 1)
	assert.InDelta(t, 512.195, a, 0.01)
	assert.InDelta(t, 487.805, b, 0.01)
}

func TestRectClose(t *testing.T) {
	a := geom.R(0, 0, 100, 100)
	b := geom.R(0.5, 0, 100, 99.6)
	assert.True(t, a.Close(b, 1))
	assert.False(t, a.Close(b, 0.1))
}

func TestDirectionAxis(t *testing.T) {
	assert.Equal(t, geom.AxisX, geom.DirLeft.Axis())
	assert.Equal(t, geom.AxisX, geom.DirRight.Axis())
	assert.Equal(t, geom.AxisY, geom.DirUp.Axis())
	assert.Equal(t, geom.AxisY, geom.DirDown.Axis())
}
