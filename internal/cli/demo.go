package cli

import (
	"time"

	"github.com/spf13/cobra"

	"gotransect/internal/geom"
)

func newDemoCmd() *cobra.Command {
	var flags paramFlags
	var workers int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the pipeline on a synthetic meander and log a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			mc := cfg.Meander
			center := geom.Meander(mc.Reach, mc.Amplitude, mc.Wavelength, mc.Step)
			logger.Debug("built meander centerline",
				"vertices", len(center), "arc", center.ArcLength())

			start := time.Now()
			s, err := geom.Resample(center, cfg.Spacing)
			if err != nil {
				return err
			}
			logger.Info("resampled centerline",
				"points", s.Len(),
				"spacing", cfg.Spacing,
				"arc", s.Dist[s.Len()-1],
				"elapsed", time.Since(start).Round(time.Microsecond))

			start = time.Now()
			ts, err := geom.TransectsCtx(cmd.Context(), s.X, s.Y, cfg.Length, cfg.Resolution, workers)
			if err != nil {
				return err
			}
			logger.Info("generated transects",
				"count", len(ts),
				"length", cfg.Length,
				"resolution", cfg.Resolution,
				"workers", workers,
				"elapsed", time.Since(start).Round(time.Microsecond))

			first, last := ts[0], ts[len(ts)-1]
			logger.Info("first transect",
				"start_x", first.X[0], "start_y", first.Y[0],
				"end_x", first.X[len(first.X)-1], "end_y", first.Y[len(first.Y)-1],
				"points", len(first.X))
			logger.Info("last transect",
				"start_x", last.X[0], "start_y", last.Y[0],
				"end_x", last.X[len(last.X)-1], "end_y", last.Y[len(last.Y)-1],
				"points", len(last.X))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "transect worker goroutines (0 = NumCPU)")
	return cmd
}
