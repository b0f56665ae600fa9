// Package load 读写参数表文件，输出计算模型与输入映射。
package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"sheath/equation"
	"sheath/load/ast"
)

// Sheet 参数表
type Sheet struct {
	Mode   equation.Mode   // 计算模型
	Values equation.Values // 输入值
}

// LoadString 加载参数表
func LoadString(s string) (*Sheet, error) {
	return Load(strings.NewReader(s))
}

// LoadFile 从文件加载参数表
func LoadFile(filename string) (*Sheet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	sheet, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sheet, nil
}

// Load 加载参数表，未声明 .mode 时按三相模型处理
func Load(r io.Reader) (*Sheet, error) {
	parseTree, err := ast.NewParseTree(r)
	if err != nil {
		return nil, err
	}
	sheet := &Sheet{Mode: equation.ThreePhase, Values: equation.Values{}}
	if parseTree.Mode != nil {
		mode, err := equation.ParseMode(parseTree.Mode.Name)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", parseTree.Mode.Line, err)
		}
		sheet.Mode = mode
	}
	lines := map[string]int{}
	for _, node := range parseTree.ParamNodes {
		if !sheet.Mode.HasField(node.Name) {
			return nil, fmt.Errorf("第 %d 行: 模型 %s 未定义参数 %s", node.Line, sheet.Mode, node.Name)
		}
		if first, ok := lines[node.Name]; ok {
			return nil, fmt.Errorf("第 %d 行: 参数 %s 重复定义 (首次出现于第 %d 行)", node.Line, node.Name, first)
		}
		v, err := node.Value.ParseSI()
		if err != nil {
			return nil, err
		}
		lines[node.Name] = node.Line
		sheet.Values[node.Name] = v
	}
	return sheet, nil
}

// Export 导出参数表，字段按模型顺序输出，缺失字段跳过
func Export(w io.Writer, sheet *Sheet) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, ".mode %s\n", sheet.Mode)
	for _, field := range sheet.Mode.Fields() {
		v, ok := sheet.Values[field]
		if !ok {
			continue
		}
		writer.WriteString(field)
		writer.WriteRune(' ')
		writer.WriteString(ast.AnyToString(v))
		writer.WriteRune('\n')
	}
	return writer.Flush()
}

// ExportFile 导出参数表到文件
func ExportFile(filename string, sheet *Sheet) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Export(file, sheet); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
