// Package ast 提供参数表解析的抽象语法树（AST）功能。
// 它能够解析包含模型指令、参数赋值和注释的参数表文本，
// 并构建相应的语法树结构供后续处理使用。
package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// 常量定义 - 用于词法分析和语法分析的关键字和符号
const (
	tokenMode              = ".mode"  // 模型指令
	tokenValue             = ".value" // 值设置命令
	tokenNewline           = "\n"     // 换行符
	tokenSpace             = " "      // 空格
	tokenTab               = "\t"     // 制表符
	tokenAssign            = "="      // 赋值
	tokenCommentHash       = "#"      // # 注释
	tokenCommentLine       = "//"     // // 行注释
	tokenCommentBlockStart = "/*"     // /* 块注释开始
	tokenCommentBlockEnd   = "*/"     // */ 块注释结束
)

// ParamNode 表示参数赋值节点
type ParamNode struct {
	Name  string // 参数名
	Value Value  // 值
	Line  int    // 行号
}

// ModeNode 表示模型指令节点
type ModeNode struct {
	Name string // 模型名称
	Line int    // 行号
}

// CommentNode 表示注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

// ParseTree 解析树
type ParseTree struct {
	Mode         *ModeNode      // 模型指令
	ParamNodes   []*ParamNode   // 参数列表
	CommentNodes []*CommentNode // 注释列表
}

// String 打印
func (parseTree *ParseTree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "找到 %d 个参数, %d 个注释\n", len(parseTree.ParamNodes), len(parseTree.CommentNodes))
	if parseTree.Mode != nil {
		fmt.Fprintf(&sb, "模型: %s (行号: %d)\n", parseTree.Mode.Name, parseTree.Mode.Line)
	}
	for _, n := range parseTree.ParamNodes {
		fmt.Fprintf(&sb, "参数: %s = %s (行号: %d)\n", n.Name, n.Value.Value, n.Line)
	}
	for _, n := range parseTree.CommentNodes {
		fmt.Fprintf(&sb, "注释 (行号: %d): %s\n", n.Line, n.Text)
	}
	return sb.String()
}

// NewParseTree 生成参数表解析树
func NewParseTree(r io.Reader) (parseTree *ParseTree, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(SplitTokens)
	parseTree = &ParseTree{}
	lineNum := 1
	var line []string
	lineStart := 1
	for scanner.Scan() {
		token := scanner.Text()
		// 处理换行符
		if token == tokenNewline {
			if err := parseLine(line, lineStart, parseTree); err != nil {
				return nil, err
			}
			line = line[:0]
			lineNum++
			lineStart = lineNum
			continue
		}
		// 跳过空格、制表符和赋值符号
		if token == tokenSpace || token == tokenTab || token == tokenAssign || token == "\r" {
			continue
		}
		// 处理注释
		if parseComment(token, lineNum, parseTree) {
			lineNum += strings.Count(token, tokenNewline)
			continue
		}
		line = append(line, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取参数表时出错: %w", err)
	}
	if err := parseLine(line, lineStart, parseTree); err != nil {
		return nil, err
	}
	return parseTree, nil
}

// parseLine 解析一行内的 token
func parseLine(tokens []string, lineNum int, parseTree *ParseTree) error {
	if len(tokens) == 0 {
		return nil
	}
	switch strings.ToLower(tokens[0]) {
	case tokenMode:
		if len(tokens) != 2 {
			return errorAtLine(lineNum, ".mode 指令需要一个模型名称")
		}
		if parseTree.Mode != nil {
			return errorAtLine(lineNum, "重复的 .mode 指令 (首次出现于第 %d 行)", parseTree.Mode.Line)
		}
		parseTree.Mode = &ModeNode{Name: tokens[1], Line: lineNum}
		return nil
	case tokenValue:
		tokens = tokens[1:]
	}
	switch len(tokens) {
	case 0:
		return errorAtLine(lineNum, ".value 命令缺少名称")
	case 1:
		return errorAtLine(lineNum, "参数 %s 缺少值", tokens[0])
	case 2:
	default:
		return errorAtLine(lineNum, "参数 %s 存在多余内容: %s", tokens[0], strings.Join(tokens[2:], " "))
	}
	if !isLetter(tokens[0][0]) {
		return errorAtLine(lineNum, "无效的参数名: %s", tokens[0])
	}
	parseTree.ParamNodes = append(parseTree.ParamNodes, &ParamNode{
		Name:  tokens[0],
		Value: Value{Value: tokens[1], Line: lineNum},
		Line:  lineNum,
	})
	return nil
}

// parseComment 解析注释 token
func parseComment(token string, lineNum int, parseTree *ParseTree) bool {
	var comment string
	switch {
	case strings.HasPrefix(token, tokenCommentHash):
		comment = token[1:]
	case strings.HasPrefix(token, tokenCommentLine):
		comment = token[2:]
	case strings.HasPrefix(token, tokenCommentBlockStart):
		comment = strings.TrimSuffix(token[2:], tokenCommentBlockEnd)
	default:
		return false
	}
	parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
		Text: strings.TrimSpace(comment),
		Line: lineNum,
	})
	return true
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("第 %d 行: %s", lineNum, msg)
}

// isLetter 检查是否是字母
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// scanToLineEnd 读取到行尾（不含换行符）
func scanToLineEnd(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// SplitTokens 分割标识符
func SplitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := range data {
		switch data[i] {
		case '#':
			if i != 0 {
				return i, data[:i], nil
			}
			return scanToLineEnd(data, atEOF)
		case '/':
			if len(data) <= i+1 {
				if !atEOF {
					return 0, nil, nil
				}
				continue
			}
			switch data[i+1] {
			case '*':
				if i != 0 {
					return i, data[:i], nil
				}
				if end := bytes.Index(data, []byte(tokenCommentBlockEnd)); end >= 0 {
					end += 2
					return end, data[:end], nil
				}
				if atEOF {
					return len(data), data, nil
				}
				return 0, nil, nil
			case '/':
				if i != 0 {
					return i, data[:i], nil
				}
				return scanToLineEnd(data, atEOF)
			}
		case ' ', '\t', '\r', '\n', '=':
			if i != 0 {
				return i, data[:i], nil
			}
			return i + 1, data[0 : i+1], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
