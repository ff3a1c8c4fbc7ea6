package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var v *viper.Viper
	root := &cobra.Command{
		Use:   "allrgb",
		Short: "Paint an image that uses every color of an RGB cube exactly once",
		Long: `allrgb shuffles an evenly spaced RGB color cube and grows an image from
one or more seed pixels, placing each color on the frontier cell whose
painted neighbors resemble it most.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			setupLogging(cfg.LogLevel)
			return runGenerate(cfg)
		},
	}
	defineFlags(root.Flags())
	v = newConfigViper(root.Flags())
	root.AddCommand(versionCommand())
	return root
}
