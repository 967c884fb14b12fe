package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"rgbctl/internal/color"
	"rgbctl/internal/config"
	"rgbctl/internal/device"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type frameOptions struct {
	mode        string
	wait        int
	pins        []int
	copy        bool
	addressable bool
	configPath  string
	raw         bool
}

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

func newFrameCmd() *cobra.Command {
	opts := &frameOptions{}
	cmd := &cobra.Command{
		Use:   "frame [#rrggbb]",
		Short: "Print the controller configuration frame for a colour",
		Long: `Builds the static configuration frame the LED controller reads from its
serial line, for example:

  s{"color":[26,43,60],"pins":[9,10,11],"mode":0,"speed":5}

With --addressable the frame for the addressable strips of the
"addressable" config section is built instead. It starts with a header such as

  a[{"pin":6,"speed":30,"ledCount":2,"seqSize":2}]

followed by binary LED data, shown as a hex dump unless --raw is given.

The frame is only printed (or copied with --copy); rgbctl never talks to the
device itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.addressable {
				if len(args) != 0 {
					return errors.New("--addressable takes its colours from the config, not an argument")
				}
				return runAddressableFrame(cmd, opts)
			}
			if len(args) != 1 {
				return errors.New("requires a colour argument")
			}
			return runFrame(cmd, args[0], opts)
		},
	}
	defaultPins := device.DefaultPins
	cmd.Flags().StringVar(&opts.mode, "mode", "static", "Lighting mode (static, rainbow, fade, strobe)")
	cmd.Flags().IntVar(&opts.wait, "wait", device.DefaultWait, "Step interval in milliseconds")
	cmd.Flags().IntSliceVar(&opts.pins, "pins", defaultPins[:], "Red, green and blue output pins")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the frame to the clipboard")
	cmd.Flags().BoolVar(&opts.addressable, "addressable", false, "Build the addressable frame from the config file")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Configuration file or directory (default: user and project config)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "With --addressable, write the frame bytes unchanged")
	return cmd
}

func runFrame(cmd *cobra.Command, hex string, opts *frameOptions) error {
	c, err := color.ParseHex(hex)
	if err != nil {
		return err
	}
	mode, err := device.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	if len(opts.pins) != 3 {
		return fmt.Errorf("--pins: want 3 pins, got %d", len(opts.pins))
	}

	p := device.NewProfile()
	p.Color = c
	p.Mode = mode
	p.Wait = opts.wait
	p.Pins = [3]int{opts.pins[0], opts.pins[1], opts.pins[2]}

	frame, err := p.MarshalFrame()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(frame))

	if opts.copy {
		if err := clipboardWriteAll(string(frame)); err != nil {
			return fmt.Errorf("failed to copy frame: %w", err)
		}
	}
	return nil
}

func runAddressableFrame(cmd *cobra.Command, opts *frameOptions) error {
	if opts.copy {
		return errors.New("--copy cannot be used with --addressable: the frame is binary")
	}

	var (
		cfg config.RgbctlConfig
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadConfigFromPath(opts.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}
	if len(cfg.Addressable.Channels) == 0 {
		return fmt.Errorf("%w configured: add an addressable section to the config", device.ErrNoChannels)
	}

	addr, err := cfg.Addressable.ToAddrConfig()
	if err != nil {
		return err
	}
	frame, err := addr.MarshalFrame()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.raw {
		_, err = out.Write(frame)
		return err
	}
	header := addr.Header()
	fmt.Fprintln(out, header)
	fmt.Fprint(out, hex.Dump(frame[len(header):]))
	return nil
}
