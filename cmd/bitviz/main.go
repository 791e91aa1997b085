package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/san-kum/bitviz/internal/bits"
	"github.com/san-kum/bitviz/internal/config"
	"github.com/san-kum/bitviz/internal/grid"
	"github.com/san-kum/bitviz/internal/term"
	"github.com/san-kum/bitviz/internal/viz"
	"github.com/san-kum/bitviz/internal/wave"
)

var (
	configFile string
	themeName  string
	clampName  string
	borderName string
	logFile    string
	preset     string
	// render / wave inputs
	currentArg    string
	optArg        string
	opArg         string
	samplesPerBit int
	timing        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands. The root runs the interactive visualizer
// when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bitviz",
		Short: "learn binary operations on a 16-bit register",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runBackend(cfg, cfg.Backend)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().StringVar(&clampName, "clamp", config.DefaultClamp, "overflow policy (saturate, one)")
	rootCmd.PersistentFlags().StringVar(&borderName, "border", config.DefaultBorder, "outer border glyphs (line, block)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "append debug log to this file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run with the bubbletea backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runBackend(cfg, config.BackendBubbleTea)
		},
	}

	tcellCmd := &cobra.Command{
		Use:   "tcell",
		Short: "run with the tcell backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runBackend(cfg, config.BackendTcell)
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval [current] [op] [opt]",
		Short: "evaluate one operation",
		Long:  "evaluate one operation; values accept decimal, 0x, 0b and 0o forms. opt may be omitted for not, shl and shr.",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  evalOperation,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print a single frame",
		RunE:  renderFrame,
	}
	addFrameFlags(renderCmd)

	waveCmd := &cobra.Command{
		Use:   "wave [value]",
		Short: "plot a value as a digital waveform",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotWave,
	}
	addFrameFlags(waveCmd)
	waveCmd.Flags().IntVar(&samplesPerBit, "width", wave.DefaultSamplesPerBit, "samples per bit")
	waveCmd.Flags().BoolVar(&timing, "timing", false, "stack current, opt and result")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named starting frames",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCURRENT\tOP\tOPT\tRESULT\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				f := p.Frame(bits.ClampSaturate)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					name, p.Current.Hex(), p.Op.Name(), p.Opt.Hex(), f.Result().Hex(), p.Description)
			}
			w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, tcellCmd, evalCmd, renderCmd, waveCmd, presetsCmd, themesCmd)
	return rootCmd
}

func addFrameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&currentArg, "current", "0", "current register")
	cmd.Flags().StringVar(&optArg, "opt", "0", "opt register")
	cmd.Flags().StringVar(&opArg, "op", "and", "operation (and, or, xor, not, shl, shr)")
}

// loadConfig merges the config file with any flags set explicitly on the
// command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.Override(config.Flags{
		Theme:   themeName,
		Clamp:   clampName,
		Border:  borderName,
		LogFile: logFile,
		Preset:  preset,
	}, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the standard logger at path. The returned file is nil
// when logging is off.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(path, "bitviz")
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}

func runBackend(cfg *config.Config, backend string) error {
	frame, err := cfg.StartFrame()
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}
	theme := viz.GetTheme(cfg.Theme)

	logf, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	if logf != nil {
		defer logf.Close()
	}

	switch backend {
	case config.BackendTcell:
		return term.Run(frame, glyphs, theme)
	default:
		return viz.Run(frame, glyphs, theme)
	}
}

// frameFromFlags builds the frame for the one-shot commands: the configured
// preset or startup state, with any of --current, --opt and --op on top.
func frameFromFlags(cmd *cobra.Command) (bits.Frame, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return bits.Frame{}, nil, err
	}
	f, err := cfg.StartFrame()
	if err != nil {
		return bits.Frame{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("current") {
		if f.Current, err = bits.ParseValue(currentArg); err != nil {
			return f, nil, err
		}
	}
	if flags.Changed("opt") {
		if f.Opt, err = bits.ParseValue(optArg); err != nil {
			return f, nil, err
		}
	}
	if flags.Changed("op") {
		if f.Op, err = bits.ParseOperation(opArg); err != nil {
			return f, nil, err
		}
	}
	return f, cfg, nil
}

func evalOperation(cmd *cobra.Command, args []string) error {
	current, err := bits.ParseValue(args[0])
	if err != nil {
		return err
	}
	op, err := bits.ParseOperation(args[1])
	if err != nil {
		return err
	}

	var opt bits.Register
	switch {
	case len(args) == 3:
		if opt, err = bits.ParseValue(args[2]); err != nil {
			return err
		}
	case op.UsesOpt():
		return fmt.Errorf("eval: %s needs an opt value", op.Name())
	}

	type row struct {
		name string
		v    bits.Register
	}
	rows := []row{{"current", current}}
	if op.UsesOpt() {
		rows = append(rows, row{"opt", opt})
	}
	rows = append(rows, row{"result (" + op.Symbol() + ")", bits.Evaluate(current, opt, op)})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tHEX\tDECIMAL\tBINARY")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.name, r.v.Hex(), r.v.Uint16(), r.v.Binary())
	}
	return w.Flush()
}

func renderFrame(cmd *cobra.Command, args []string) error {
	f, cfg, err := frameFromFlags(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), grid.Render(&f, glyphs).String())
	return nil
}

func plotWave(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		v, err := bits.ParseValue(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, wave.Plot(v, samplesPerBit))
		return nil
	}

	f, _, err := frameFromFlags(cmd)
	if err != nil {
		return err
	}
	if timing {
		fmt.Fprintln(out, wave.Timing(&f, samplesPerBit, isTerminal(out)))
		return nil
	}
	fmt.Fprintln(out, wave.Plot(f.Result(), samplesPerBit))
	return nil
}

// isTerminal reports whether w is a terminal that can take color codes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && xterm.IsTerminal(int(f.Fd()))
}
