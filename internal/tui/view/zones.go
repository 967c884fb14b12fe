package view

import (
	"fmt"

	"rgbctl/internal/color"
)

// Zone identifiers for mouse hit-testing.
const (
	TabAddZoneID = "tab-add"
	HexZoneID    = "hex"
	ModeZoneID   = "mode"
)

// TabZoneID identifies the label of tab i.
func TabZoneID(i int) string { return fmt.Sprintf("tab-%d", i) }

// TabCloseZoneID identifies the close button of tab i.
func TabCloseZoneID(i int) string { return fmt.Sprintf("tab-close-%d", i) }

// SliderZoneID identifies the gradient bar of a channel.
func SliderZoneID(ch color.Channel) string { return "slider-" + ch.String() }
