package cli

import (
	"github.com/spf13/cobra"

	"gotransect/internal/config"
)

// paramFlags holds the generation flags shared by view and demo. Flag
// values override the config file, which overrides the built-in defaults.
type paramFlags struct {
	configPath string
	spacing    float64
	length     float64
	resolution float64
}

func (p *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().Float64Var(&p.spacing, "spacing", 0, "centerline resampling interval")
	cmd.Flags().Float64Var(&p.length, "length", 0, "total transect length")
	cmd.Flags().Float64Var(&p.resolution, "resolution", 0, "sample spacing along each transect")
}

// resolve merges config file and flags into validated settings.
func (p *paramFlags) resolve(cmd *cobra.Command) (config.File, error) {
	cfg := config.Default()
	if p.configPath != "" {
		loaded, err := config.Load(p.configPath)
		if err != nil {
			return config.File{}, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("spacing") {
		cfg.Spacing = p.spacing
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = p.length
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Resolution = p.resolution
	}
	if err := cfg.Validate(); err != nil {
		return config.File{}, err
	}
	return cfg, nil
}
