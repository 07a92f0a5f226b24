package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barutsrb/hyprspace-go/config"
	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wtree"
)

func TestDecodeAppliesDefaultsForOmittedKeys(t *testing.T) {
	cfg, err := config.Decode([]byte(`mouseSensitivity = 2.0`))
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.MouseSensitivity)
	assert.Equal(t, 0.5, cfg.MasterDefaultPercent)
	assert.Equal(t, "tiles", cfg.DefaultRootContainerLayout)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := config.Decode([]byte(`notARealOption = 1`))
	assert.Error(t, err)
}

func TestDecodeRejectsMasterPercentOutOfRange(t *testing.T) {
	_, err := config.Decode([]byte(`masterDefaultPercent = 0.95`))
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownLayoutName(t *testing.T) {
	_, err := config.Decode([]byte(`defaultRootContainerLayout = "spiral"`))
	assert.Error(t, err)
}

func TestRootLayoutResolvesToLayoutKind(t *testing.T) {
	cfg, err := config.Decode([]byte(`defaultRootContainerLayout = "dwindle"`))
	require.NoError(t, err)
	assert.Equal(t, wtree.LayoutDwindle, cfg.RootLayout())
}

func TestRootOrientationAutoPicksLandscapeHorizontal(t *testing.T) {
	cfg := config.Default()
	mon := geom.Monitor{VisibleFrame: geom.R(0, 0, 1920, 1080)}
	assert.Equal(t, geom.AxisX, cfg.RootOrientation(mon))
}

func TestRootOrientationAutoPicksPortraitVertical(t *testing.T) {
	cfg := config.Default()
	mon := geom.Monitor{VisibleFrame: geom.R(0, 0, 1080, 1920)}
	assert.Equal(t, geom.AxisY, cfg.RootOrientation(mon))
}

func TestLayoutConfigCarriesGapsAndTunables(t *testing.T) {
	cfg, err := config.Decode([]byte(`
[gaps.inner]
horizontal = 10
vertical = 5
`))
	require.NoError(t, err)
	lc := cfg.LayoutConfig()
	assert.Equal(t, 10.0, lc.InnerGapHorizontal)
	assert.Equal(t, 5.0, lc.InnerGapVertical)
	assert.Equal(t, cfg.AccordionPadding, lc.AccordionPadding)
}
