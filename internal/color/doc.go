// Package color holds the colour representation shared by the picker, the
// device preview and the CLI.
//
// A colour is an RGB triple of 8-bit channels. Its textual form is the
// seven-character hex string "#rrggbb". The two forms are kept consistent by
// only ever deriving the hex string from the triple:
//
//	rgb, err := color.ParseHex("#1A2B3C")
//	if err != nil {
//	    // errors.Is(err, color.ErrInvalidFormat)
//	}
//	rgb.Hex() // "#1a2b3c"
//
// # Channel input
//
// User supplied channel values pass through ParseChannel or ChannelFromInt.
// Both reject anything that is not an integer in [0,255] with ErrOutOfRange,
// so a Channel value held by the rest of the program is always in range.
//
// # Gradients
//
// Gradients derives, for each channel, the pair of colours obtained by forcing
// that channel to 0 and to 255 while holding the other two. The TUI paints
// these as the background of each channel's slider.
//
// # Theme
//
// Initialize and DetectDarkBackground configure lipgloss for dark or light
// terminals. The "auto" theme asks the terminal via termenv.
package color
