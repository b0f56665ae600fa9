package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sheath/config"
)

var (
	// 全局参数
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "sheath",
	Short: "Shield-sheath induced voltage calculator",
	Long: `sheath computes the voltage induced on cable shield sheaths during a ground fault.

Two models are available:
  three-phase   per-phase complex voltages E_a, E_b, E_c including ground return resistance
  single-phase  reduced model with a single cable-to-ground spacing S

Inputs come from the config file, an optional parameter sheet and --set overrides, in that order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		// 交互界面占用终端，不输出日志
		if cmd.Name() == "tui" {
			logger = zap.NewNop()
			return nil
		}
		logger, err = cfg.Logging.Build(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, cmd := range []*cobra.Command{evalCmd, chartCmd, plotCmd, tuiCmd} {
		cmd.Flags().StringVarP(&inputs.mode, "mode", "m", "", "Calculation mode (three-phase, single-phase)")
		cmd.Flags().StringVarP(&inputs.sheet, "sheet", "s", "", "Parameter sheet file")
		cmd.Flags().StringArrayVar(&inputs.set, "set", nil, "Override an input, NAME=VALUE (SI suffixes allowed)")
	}
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "", "Output format (text, json)")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "Chart page output path")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "Phasor diagram output path")
	plotCmd.Flags().StringVar(&plotFormat, "format", "", "Image format (png, svg, pdf)")
	initCmd.Flags().StringVarP(&initOut, "out", "o", config.DefaultPath, "Config file to write")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	sheetCmd.Flags().StringVarP(&sheetMode, "mode", "m", "three-phase", "Calculation mode")
	sheetCmd.Flags().StringVarP(&sheetOut, "out", "o", "", "Sheet output path (default stdout)")

	rootCmd.AddCommand(evalCmd, chartCmd, plotCmd, tuiCmd, initCmd, sheetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
