// Package maths 提供护套感应电压计算所需的复数运算。
// Complex 为不可变值类型，所有运算均返回新值。
package maths

import (
	"encoding/json"
	"fmt"
	"math"
)

// Complex 复数 a + bi
type Complex struct {
	real float64 // 实部
	imag float64 // 虚部
}

// New 创建复数
func New(real, imag float64) Complex {
	return Complex{real: real, imag: imag}
}

// FromPolar 由幅值和相角(弧度)创建复数
func FromPolar(magnitude, phase float64) Complex {
	return Complex{
		real: magnitude * math.Cos(phase),
		imag: magnitude * math.Sin(phase),
	}
}

// FromComplex128 由内置复数类型创建
func FromComplex128(c complex128) Complex {
	return Complex{real: real(c), imag: imag(c)}
}

// Real 实部
func (c Complex) Real() float64 { return c.real }

// Imag 虚部
func (c Complex) Imag() float64 { return c.imag }

// Complex128 转换为内置复数类型
func (c Complex) Complex128() complex128 { return complex(c.real, c.imag) }

// Add 复数加法
func (c Complex) Add(other Complex) Complex {
	return Complex{real: c.real + other.real, imag: c.imag + other.imag}
}

// Multiply 复数乘法 (a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		real: c.real*other.real - c.imag*other.imag,
		imag: c.real*other.imag + c.imag*other.real,
	}
}

// MultiplyScalar 实数缩放
func (c Complex) MultiplyScalar(k float64) Complex {
	return Complex{real: c.real * k, imag: c.imag * k}
}

// Magnitude 幅值
func (c Complex) Magnitude() float64 {
	return math.Sqrt(c.real*c.real + c.imag*c.imag)
}

// Phase 相角(弧度)，范围 (-π, π]
func (c Complex) Phase() float64 {
	if c.real == 0 && c.imag == 0 {
		return 0
	}
	p := math.Atan2(c.imag, c.real)
	// 负零虚部落在负实轴上时 atan2 给出 -π
	if p == -math.Pi {
		return math.Pi
	}
	return p
}

// String 格式化为 "实部 ± |虚部|j"，保留4位小数
func (c Complex) String() string {
	sign := "+"
	if c.imag < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%.4f %s %.4fj", c.real, sign, math.Abs(c.imag))
}

// complexJSON 序列化结构
type complexJSON struct {
	Real Float `json:"real"`
	Imag Float `json:"imag"`
}

// MarshalJSON 序列化为 {"real":..,"imag":..}
func (c Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal(complexJSON{Real: Float(c.real), Imag: Float(c.imag)})
}

// UnmarshalJSON 反序列化
func (c *Complex) UnmarshalJSON(data []byte) error {
	var v complexJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Complex{real: float64(v.Real), imag: float64(v.Imag)}
	return nil
}
