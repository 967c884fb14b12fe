package cmd

import (
	"fmt"

	"rgbctl/internal/cli"
	"rgbctl/internal/color"
	"rgbctl/internal/picker"

	"github.com/spf13/cobra"
)

type colorOptions struct {
	red    string
	green  string
	blue   string
	output string
}

func newColorCmd() *cobra.Command {
	opts := &colorOptions{}
	cmd := &cobra.Command{
		Use:   "color <#rrggbb>",
		Short: "Show the channels and slider gradients of a colour",
		Long: `Parses a #RRGGBB colour and prints its channels together with the
gradient each channel slider would show. --red, --green and --blue replace a
channel before printing, the same way typing into a slider's value field does.`,
		Example: `  rgbctl color "#1a2b3c"
  rgbctl color "#1a2b3c" --red 255 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColor(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.red, "red", "", "Replace the red channel (0-255)")
	cmd.Flags().StringVar(&opts.green, "green", "", "Replace the green channel (0-255)")
	cmd.Flags().StringVar(&opts.blue, "blue", "", "Replace the blue channel (0-255)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func runColor(cmd *cobra.Command, hex string, opts *colorOptions) error {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	state, err := picker.FromHex(hex)
	if err != nil {
		return err
	}
	for _, set := range []struct {
		ch    color.Channel
		value string
		flag  string
	}{
		{color.Red, opts.red, "red"},
		{color.Green, opts.green, "green"},
		{color.Blue, opts.blue, "blue"},
	} {
		if !cmd.Flags().Changed(set.flag) {
			continue
		}
		state, err = state.OnChannelChange(set.ch, set.value)
		if err != nil {
			return fmt.Errorf("--%s: %w", set.flag, err)
		}
	}

	return cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: format}).PrintColor(cli.NewColorReport(state.Color))
}
