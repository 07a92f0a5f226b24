// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the engine's configuration (spec.md §6): every
// option has a documented default, and unknown keys are rejected by a
// strict TOML decode, grounded on cogentcore-core's base/iox/tomlx
// wrapper around github.com/pelletier/go-toml/v2.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/barutsrb/hyprspace-go/geom"
	"github.com/barutsrb/hyprspace-go/wlayout"
	"github.com/barutsrb/hyprspace-go/wtree"
)

// InnerGaps is the `gaps.inner` table.
type InnerGaps struct {
	Horizontal float64 `toml:"horizontal"`
	Vertical   float64 `toml:"vertical"`
}

// OuterGaps is the `gaps.outer` table.
type OuterGaps struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
}

// Gaps is the `gaps` table.
type Gaps struct {
	Inner InnerGaps `toml:"inner"`
	Outer OuterGaps `toml:"outer"`
}

// Config is the full configuration table of spec.md §6.
type Config struct {
	DefaultRootContainerLayout      string `toml:"defaultRootContainerLayout"`
	DefaultRootContainerOrientation string `toml:"defaultRootContainerOrientation"`

	AccordionPadding         float64 `toml:"accordionPadding"`
	DwindleDefaultSplitRatio float64 `toml:"dwindleDefaultSplitRatio"`
	SplitWidthMultiplier     float64 `toml:"splitWidthMultiplier"`
	MasterDefaultPercent     float64 `toml:"masterDefaultPercent"`
	NiriFocusedWidthRatio    float64 `toml:"niriFocusedWidthRatio"`

	Gaps Gaps `toml:"gaps"`

	MouseSensitivity        float64 `toml:"mouseSensitivity"`
	NoOuterGapsInFullscreen bool    `toml:"noOuterGapsInFullscreen"`

	EnableNormalizationFlattenContainers                       bool `toml:"enableNormalizationFlattenContainers"`
	EnableNormalizationOppositeOrientationForNestedContainers bool `toml:"enableNormalizationOppositeOrientationForNestedContainers"`
}

// Default returns the spec's documented defaults.
func Default() Config {
	return Config{
		DefaultRootContainerLayout:      "tiles",
		DefaultRootContainerOrientation: "auto",
		AccordionPadding:                30,
		DwindleDefaultSplitRatio:        1.0,
		SplitWidthMultiplier:            1.0,
		MasterDefaultPercent:            0.5,
		NiriFocusedWidthRatio:           0.8,
		MouseSensitivity:                1.0,
		NoOuterGapsInFullscreen:         true,
		EnableNormalizationFlattenContainers:                       true,
		EnableNormalizationOppositeOrientationForNestedContainers: true,
	}
}

// Load reads a TOML config file from path onto the documented defaults;
// keys the file omits keep their default, and any key the schema does
// not recognize is a load error rather than being silently ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(data)
}

// Decode strictly parses TOML bytes onto the documented defaults.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every range-constrained option (spec.md §6 table).
func (c Config) Validate() error {
	if c.MasterDefaultPercent < 0.1 || c.MasterDefaultPercent > 0.9 {
		return fmt.Errorf("config: masterDefaultPercent %v out of range [0.1, 0.9]", c.MasterDefaultPercent)
	}
	if c.NiriFocusedWidthRatio < 0.1 || c.NiriFocusedWidthRatio > 1.0 {
		return fmt.Errorf("config: niriFocusedWidthRatio %v out of range [0.1, 1.0]", c.NiriFocusedWidthRatio)
	}
	if c.DwindleDefaultSplitRatio < 0.1 || c.DwindleDefaultSplitRatio > 1.9 {
		return fmt.Errorf("config: dwindleDefaultSplitRatio %v out of range [0.1, 1.9]", c.DwindleDefaultSplitRatio)
	}
	if _, ok := layoutKinds[c.DefaultRootContainerLayout]; !ok {
		return fmt.Errorf("config: unknown defaultRootContainerLayout %q", c.DefaultRootContainerLayout)
	}
	switch c.DefaultRootContainerOrientation {
	case "horizontal", "vertical", "auto":
	default:
		return fmt.Errorf("config: unknown defaultRootContainerOrientation %q", c.DefaultRootContainerOrientation)
	}
	return nil
}

var layoutKinds = map[string]wtree.LayoutKind{
	"tiles":     wtree.LayoutTiles,
	"accordion": wtree.LayoutAccordion,
	"dwindle":   wtree.LayoutDwindle,
	"scroll":    wtree.LayoutScroll,
	"master":    wtree.LayoutMaster,
}

// RootLayout resolves the configured default root layout kind.
func (c Config) RootLayout() wtree.LayoutKind {
	return layoutKinds[c.DefaultRootContainerLayout]
}

// RootOrientation resolves the configured default root orientation.
// "auto" picks horizontal for a landscape monitor and vertical for a
// portrait one, matching the source's aspect-ratio heuristic.
func (c Config) RootOrientation(monitor geom.Monitor) geom.Axis {
	switch c.DefaultRootContainerOrientation {
	case "horizontal":
		return geom.AxisX
	case "vertical":
		return geom.AxisY
	default:
		if monitor.VisibleFrame.Width >= monitor.VisibleFrame.Height {
			return geom.AxisX
		}
		return geom.AxisY
	}
}

// WorkspaceGaps converts the config's gaps table into wtree.Gaps.
func (c Config) WorkspaceGaps() wtree.Gaps {
	return wtree.Gaps{
		InnerHorizontal:         c.Gaps.Inner.Horizontal,
		InnerVertical:           c.Gaps.Inner.Vertical,
		OuterTop:                c.Gaps.Outer.Top,
		OuterBottom:             c.Gaps.Outer.Bottom,
		OuterLeft:               c.Gaps.Outer.Left,
		OuterRight:              c.Gaps.Outer.Right,
		NoOuterGapsInFullscreen: c.NoOuterGapsInFullscreen,
	}
}

// LayoutConfig converts the config into the wlayout engine's own
// configuration shape.
func (c Config) LayoutConfig() wlayout.Config {
	return wlayout.Config{
		InnerGapHorizontal:       c.Gaps.Inner.Horizontal,
		InnerGapVertical:         c.Gaps.Inner.Vertical,
		AccordionPadding:         c.AccordionPadding,
		DwindleDefaultSplitRatio: c.DwindleDefaultSplitRatio,
		SplitWidthMultiplier:     c.SplitWidthMultiplier,
		MasterDefaultPercent:     c.MasterDefaultPercent,
		FocusedWidthRatio:        c.NiriFocusedWidthRatio,
		MouseSensitivity:         c.MouseSensitivity,
		NoOuterGapsInFullscreen:  c.NoOuterGapsInFullscreen,
	}
}
