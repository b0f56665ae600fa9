package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sheath"
	"sheath/app"
	"sheath/config"
	"sheath/display"
	"sheath/equation"
	"sheath/load"
	"sheath/load/ast"
)

// errValidation 输入校验失败
var errValidation = errors.New("input validation failed")

// inputFlags 输入来源参数
type inputFlags struct {
	mode  string
	sheet string
	set   []string
}

var (
	inputs inputFlags

	evalFormat string
	chartOut   string
	plotOut    string
	plotFormat string
	initOut    string
	initForce  bool
	sheetMode  string
	sheetOut   string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate shield voltages and print the results",
	Long: `Validates the inputs and prints the per-phase shield voltages.

All validation errors are printed at once and the command exits non-zero.

Example:
  sheath eval --mode single-phase --set I_sg=2k --format json`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write an HTML chart page of the phase voltages",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Write a phasor diagram image of the phase voltages",
	Args:  cobra.NoArgs,
	RunE:  runPlot,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive input form with live results",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Print a parameter sheet with the default inputs of a mode",
	Args:  cobra.NoArgs,
	RunE:  runSheet,
}

// resolve 依次合并配置、参数表与 --set 覆盖
func (in inputFlags) resolve(cfg *config.Config) (equation.Mode, equation.Values, error) {
	mode, values, err := cfg.Values()
	if err != nil {
		return 0, nil, err
	}
	if in.mode != "" {
		m, err := equation.ParseMode(in.mode)
		if err != nil {
			return 0, nil, err
		}
		if m != mode {
			mode, values = m, equation.DefaultValues(m)
		}
	}
	if in.sheet != "" {
		sheet, err := load.LoadFile(in.sheet)
		if err != nil {
			return 0, nil, err
		}
		if sheet.Mode != mode {
			mode, values = sheet.Mode, equation.DefaultValues(sheet.Mode)
		}
		for k, v := range sheet.Values {
			values[k] = v
		}
	}
	for _, kv := range in.set {
		name, raw, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return 0, nil, fmt.Errorf("invalid --set %q, expected NAME=VALUE", kv)
		}
		if !mode.HasField(name) {
			return 0, nil, fmt.Errorf("mode %s has no input %q", mode, name)
		}
		v, err := ast.Value{Value: strings.TrimSpace(raw)}.ParseSI()
		if err != nil {
			return 0, nil, fmt.Errorf("--set %s: %w", name, err)
		}
		values[name] = v
	}
	return mode, values, nil
}

// calculate 构建计算器
func calculate() (*sheath.Calculator, error) {
	mode, values, err := inputs.resolve(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("inputs resolved", zap.Stringer("mode", mode), zap.Any("values", values))
	return sheath.NewCalculator(mode, values, sheath.WithLogger(logger)), nil
}

// result 取得计算结果，校验失败时输出全部错误
func result(w io.Writer, calc *sheath.Calculator) (equation.Result, error) {
	if errs := calc.Errors(); len(errs) > 0 {
		if err := display.Errors(w, errs); err != nil {
			return equation.Result{}, err
		}
		return equation.Result{}, errValidation
	}
	if err := calc.Failure(); err != nil {
		return equation.Result{}, err
	}
	r, _ := calc.Result()
	return r, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	calc, err := calculate()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	format := evalFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch strings.ToLower(format) {
	case "json":
		var res *equation.Result
		if r, ok := calc.Result(); ok {
			res = &r
		}
		rec := display.NewRecord(calc.Mode(), calc.Values(), res, calc.Errors())
		if err := rec.Render(w); err != nil {
			return err
		}
		if len(calc.Errors()) > 0 {
			return errValidation
		}
		return calc.Failure()
	case "", "text":
		r, err := result(w, calc)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Mode: %s\n\n", calc.Mode())
		return display.Text(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func runChart(cmd *cobra.Command, args []string) error {
	calc, err := calculate()
	if err != nil {
		return err
	}
	r, err := result(cmd.ErrOrStderr(), calc)
	if err != nil {
		return err
	}
	out := chartOut
	if out == "" {
		out = cfg.Output.Chart
	}
	if err := writeFile(out, (&display.Charts{Result: r}).Render); err != nil {
		return err
	}
	logger.Info("chart written", zap.String("path", out))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	calc, err := calculate()
	if err != nil {
		return err
	}
	r, err := result(cmd.ErrOrStderr(), calc)
	if err != nil {
		return err
	}
	out, format := plotOut, plotFormat
	if out == "" {
		out = cfg.Output.Plot
	}
	if format == "" {
		format = cfg.Output.PlotFormat
	}
	if err := writeFile(out, (&display.Plot{Result: r, Format: format}).Render); err != nil {
		return err
	}
	logger.Info("phasor diagram written", zap.String("path", out), zap.String("format", format))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	calc, err := calculate()
	if err != nil {
		return err
	}
	return app.Run(calc, tea.WithAltScreen())
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOut); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", initOut)
	}
	if err := config.DefaultConfig().Save(initOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", initOut)
	return nil
}

func runSheet(cmd *cobra.Command, args []string) error {
	mode, err := equation.ParseMode(sheetMode)
	if err != nil {
		return err
	}
	sheet := &load.Sheet{Mode: mode, Values: equation.DefaultValues(mode)}
	if sheetOut == "" {
		return load.Export(cmd.OutOrStdout(), sheet)
	}
	return load.ExportFile(sheetOut, sheet)
}

// writeFile 写出文件
func writeFile(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
