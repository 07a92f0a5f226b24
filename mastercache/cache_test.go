package mastercache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barutsrb/hyprspace-go/mastercache"
)

func TestResizeClampsToRange(t *testing.T) {
	c := mastercache.New(0.5, mastercache.SideLeft)
	c.Resize(-10000, 1000)
	assert.Equal(t, 0.1, c.Percent)
	c.Resize(10000, 1000)
	assert.Equal(t, 0.9, c.Percent)
}

func TestResizeRightSideInvertsSign(t *testing.T) {
	left := mastercache.New(0.5, mastercache.SideLeft)
	left.Resize(100, 1000)
	right := mastercache.New(0.5, mastercache.SideRight)
	right.Resize(100, 1000)
	assert.InDelta(t, 0.6, left.Percent, 1e-9)
	assert.InDelta(t, 0.4, right.Percent, 1e-9)
}

func TestBalanceResetsToDefault(t *testing.T) {
	c := mastercache.New(0.5, mastercache.SideLeft)
	c.Resize(300, 1000)
	c.Balance(0.5)
	assert.Equal(t, 0.5, c.Percent)
}
