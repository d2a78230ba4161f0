package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gotransect/internal/geom"
	"gotransect/internal/tui"
)

func newViewCmd() *cobra.Command {
	var flags paramFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive cross-section viewer",
		Long: `view opens the terminal viewer. When stdin is a pipe it is read as a
centerline of plain "x y" pairs, one per line; otherwise the viewer starts
with the demo meander from the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			center, err := readCenterline(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if center == nil {
				mc := cfg.Meander
				center = geom.Meander(mc.Reach, mc.Amplitude, mc.Wavelength, mc.Step)
				logger.Debug("using demo meander centerline", "vertices", len(center))
			} else {
				logger.Debug("read centerline from stdin", "vertices", len(center))
			}

			m := tui.New(tui.Params{
				Spacing:    cfg.Spacing,
				Length:     cfg.Length,
				Resolution: cfg.Resolution,
			}, center)
			_, err = tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				// stdin may be consumed by the centerline pipe; the TUI
				// needs the terminal
				tea.WithInputTTY(),
			).Run()
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

// readCenterline parses stdin as coordinate pairs when it is not a
// terminal. A nil line with nil error means "no piped input".
func readCenterline(in io.Reader) (geom.Line, error) {
	f, ok := in.(*os.File)
	if !ok {
		return nil, nil
	}
	st, err := f.Stat()
	if err != nil || st.Mode()&os.ModeCharDevice != 0 {
		return nil, nil
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return geom.ParseXY(string(data))
}
