package sheath

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sheath/equation"
	"sheath/utils"
	"sheath/validate"
)

// ErrCalculationFailed 计算过程异常，区别于输入校验错误
var ErrCalculationFailed = errors.New("Calculation error occurred")

// EvaluateFunc 计算函数
type EvaluateFunc func(mode equation.Mode, values equation.Values) (equation.Result, error)

// Option 计算器配置
type Option func(*Calculator)

// WithLogger 设置日志
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBus 设置事件总线
func WithBus(bus utils.Bus) Option {
	return func(c *Calculator) {
		if bus != nil {
			c.bus = bus
		}
	}
}

// WithEvaluator 替换计算函数
func WithEvaluator(fn EvaluateFunc) Option {
	return func(c *Calculator) {
		if fn != nil {
			c.evaluate = fn
		}
	}
}

// Calculator 护套电压计算器
// 持有当前输入、结果与错误，每次输入变更后同步重新计算。
type Calculator struct {
	mode     equation.Mode
	values   equation.Values
	result   *equation.Result
	errs     validate.Errors
	failure  error
	evaluate EvaluateFunc
	bus      utils.Bus
	logger   *zap.Logger
}

// NewCalculator 初始化，values 为空时使用模型默认值
func NewCalculator(mode equation.Mode, values equation.Values, opts ...Option) *Calculator {
	if values == nil {
		values = equation.DefaultValues(mode)
	}
	c := &Calculator{
		mode:     mode,
		values:   values.Clone(),
		evaluate: equation.Evaluate,
		bus:      utils.NewBus(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Recompute()
	return c
}

// Bus 事件总线
func (c *Calculator) Bus() utils.Bus { return c.bus }

// Mode 当前模型
func (c *Calculator) Mode() equation.Mode { return c.mode }

// Values 当前输入副本
func (c *Calculator) Values() equation.Values { return c.values.Clone() }

// Value 单个输入
func (c *Calculator) Value(field string) (float64, bool) {
	v, ok := c.values[field]
	return v, ok
}

// Result 当前结果，存在错误时返回假
func (c *Calculator) Result() (equation.Result, bool) {
	if c.result == nil {
		return equation.Result{}, false
	}
	return *c.result, true
}

// Errors 当前校验错误
func (c *Calculator) Errors() validate.Errors { return c.errs }

// Failure 计算异常
func (c *Calculator) Failure() error { return c.failure }

// Set 修改单个输入并重新计算
func (c *Calculator) Set(field string, value float64) {
	c.values[field] = value
	c.bus.Emit(utils.EventInputChanged, field)
	c.Recompute()
}

// SetValues 批量修改输入并重新计算
func (c *Calculator) SetValues(values equation.Values) {
	for k, v := range values {
		c.values[k] = v
	}
	c.bus.Emit(utils.EventInputChanged, "")
	c.Recompute()
}

// SetMode 切换模型，新模型缺少的字段使用默认值
func (c *Calculator) SetMode(mode equation.Mode) {
	c.mode = mode
	for k, v := range equation.DefaultValues(mode) {
		if _, ok := c.values[k]; !ok {
			c.values[k] = v
		}
	}
	c.bus.Emit(utils.EventInputChanged, "")
	c.Recompute()
}

// Recompute 校验并计算
func (c *Calculator) Recompute() {
	c.result, c.failure = nil, nil
	c.errs = validate.Validate(c.mode, c.values)
	if len(c.errs) > 0 {
		c.logger.Debug("输入校验失败",
			zap.Stringer("mode", c.mode),
			zap.Strings("errors", c.errs))
		c.bus.Emit(utils.EventValidationFailed, c.errs)
		return
	}
	result, err := c.safeEvaluate()
	if err != nil {
		c.failure = err
		c.logger.Warn("计算失败", zap.Stringer("mode", c.mode), zap.Error(err))
		c.bus.Emit(utils.EventCalculationFailed, err)
		return
	}
	c.result = &result
	c.logger.Debug("计算完成",
		zap.Stringer("mode", c.mode),
		zap.Int("phases", len(result.Phases)))
	c.bus.Emit(utils.EventResultUpdated, result)
}

// safeEvaluate 捕获计算过程中的异常
func (c *Calculator) safeEvaluate() (result equation.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCalculationFailed, r)
		}
	}()
	result, err = c.evaluate(c.mode, c.values.Clone())
	if err != nil {
		return equation.Result{}, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}
	return result, nil
}
