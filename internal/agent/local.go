package agent

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// arithmeticPattern matches prompts made only of numbers, operators,
// parentheses and whitespace.
var arithmeticPattern = regexp.MustCompile(`^[0-9\s+\-*/%().]+$`)

// leadingZeros matches zeros padding the integer part of a number, which Go
// literal syntax would otherwise read as an octal prefix.
var leadingZeros = regexp.MustCompile(`(^|[^0-9.])0+([0-9])`)

var errUnsupportedExpression = errors.New("unsupported expression")

// LocalAgent is a deterministic agent that needs no network access.
// Arithmetic prompts such as "2+2" are evaluated exactly; any other
// prompt is acknowledged verbatim.
type LocalAgent struct {
	logger *slog.Logger
}

// NewLocalAgent creates a LocalAgent. A nil logger falls back to slog.Default().
func NewLocalAgent(logger *slog.Logger) *LocalAgent {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalAgent{logger: logger.With("component", "local_agent")}
}

// Run implements Agent.
func (a *LocalAgent) Run(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewExecutionError("agent invocation interrupted", err)
	}

	expr := strings.TrimSpace(prompt)
	if !IsArithmetic(expr) {
		a.logger.DebugContext(ctx, "acknowledging non-arithmetic prompt", "prompt_length", len(prompt))
		return fmt.Sprintf("Received task: %s", expr), nil
	}

	value, err := Evaluate(expr)
	if err != nil {
		return "", NewExecutionError(fmt.Sprintf("cannot evaluate %q", expr), err)
	}

	a.logger.DebugContext(ctx, "evaluated arithmetic prompt", "expression", expr, "result", value)
	return value, nil
}

// IsArithmetic reports whether s looks like an arithmetic expression.
func IsArithmetic(s string) bool {
	return arithmeticPattern.MatchString(s) && strings.ContainsAny(s, "0123456789")
}

// Evaluate computes an arithmetic expression with exact rational arithmetic.
// Division of integers is true division: "7/2" yields "3.5". Numbers are
// always decimal, so "010" is ten.
func Evaluate(expr string) (string, error) {
	node, err := parser.ParseExpr(leadingZeros.ReplaceAllString(expr, "$1$2"))
	if err != nil {
		return "", fmt.Errorf("parse expression: %w", err)
	}

	v, err := eval(node)
	if err != nil {
		return "", err
	}

	return format(v), nil
}

func eval(e ast.Expr) (constant.Value, error) {
	switch n := e.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return nil, fmt.Errorf("%w: literal %s", errUnsupportedExpression, n.Value)
		}
		v := constant.MakeFromLiteral(n.Value, n.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, fmt.Errorf("%w: malformed number %s", errUnsupportedExpression, n.Value)
		}
		return v, nil

	case *ast.ParenExpr:
		return eval(n.X)

	case *ast.UnaryExpr:
		if n.Op != token.ADD && n.Op != token.SUB {
			return nil, fmt.Errorf("%w: operator %s", errUnsupportedExpression, n.Op)
		}
		x, err := eval(n.X)
		if err != nil {
			return nil, err
		}
		return constant.UnaryOp(n.Op, x, 0), nil

	case *ast.BinaryExpr:
		x, err := eval(n.X)
		if err != nil {
			return nil, err
		}
		y, err := eval(n.Y)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case token.ADD, token.SUB, token.MUL:
		case token.QUO:
			if constant.Sign(y) == 0 {
				return nil, errors.New("division by zero")
			}
		case token.REM:
			if x.Kind() != constant.Int || y.Kind() != constant.Int {
				return nil, fmt.Errorf("%w: remainder of non-integers", errUnsupportedExpression)
			}
			if constant.Sign(y) == 0 {
				return nil, errors.New("division by zero")
			}
		default:
			return nil, fmt.Errorf("%w: operator %s", errUnsupportedExpression, n.Op)
		}
		return constant.BinaryOp(x, n.Op, y), nil
	}

	return nil, fmt.Errorf("%w: %T", errUnsupportedExpression, e)
}

func format(v constant.Value) string {
	if v.Kind() == constant.Int {
		return v.ExactString()
	}
	if i := constant.ToInt(v); i.Kind() == constant.Int {
		return i.ExactString()
	}
	f, _ := constant.Float64Val(v)
	return strconv.FormatFloat(f, 'g', -1, 64)
}
