// seehuhn.de/go/figure - declarative 2D and 3D plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package mathexpr evaluates formulas in one variable, such as
// "3*x^2 + exp(x)" or "lg(y)".
//
// Formulas use the usual arithmetic operators, with ^ for powers, the
// functions listed in [Functions], pow(x, y), and the numeric built-ins of
// the expression language (abs, ceil, floor, round, min, max).  The
// constant pi is predefined.
package mathexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Functions lists the functions available in formulas.
var Functions = map[string]func(float64) float64{
	"acos": math.Acos,
	"asin": math.Asin,
	"atan": math.Atan,
	"cos":  math.Cos,
	"cosh": math.Cosh,
	"exp":  math.Exp,
	"lg":   math.Log10,
	"ln":   math.Log,
	"log":  math.Log,
	"sign": sign,
	"sin":  math.Sin,
	"sinh": math.Sinh,
	"sqrt": math.Sqrt,
	"tan":  math.Tan,
	"tanh": math.Tanh,
}

// ErrEmpty is returned when compiling a formula which contains only
// white space.
var ErrEmpty = errors.New("mathexpr: empty formula")

// Func is a compiled formula.  A Func is not safe for concurrent use.
type Func struct {
	src  string
	name string
	prog *vm.Program
	env  map[string]any
}

// Compile parses src as a formula in the variable name.
func Compile(src, name string) (*Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}
	env := newEnv(name)
	prog, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("mathexpr: %q: %w", src, err)
	}
	return &Func{src: src, name: name, prog: prog, env: env}, nil
}

// Eval evaluates the formula at v.
func (f *Func) Eval(v float64) (float64, error) {
	f.env[f.name] = v
	out, err := expr.Run(f.prog, f.env)
	if err != nil {
		return math.NaN(), fmt.Errorf("mathexpr: %q at %s=%g: %w", f.src, f.name, v, err)
	}
	switch out := out.(type) {
	case float64:
		return out, nil
	case int:
		return float64(out), nil
	case bool:
		if out {
			return 1, nil
		}
		return 0, nil
	default:
		return math.NaN(), fmt.Errorf("mathexpr: %q: result has type %T", f.src, out)
	}
}

// String returns the source text of the formula.
func (f *Func) String() string {
	return f.src
}

// IsLog reports whether src is the decimal logarithm of the variable,
// e.g. "lg(x)".  Axes with such a transform get decade ticks.
func IsLog(src, name string) bool {
	return strings.ReplaceAll(src, " ", "") == "lg("+name+")"
}

func newEnv(name string) map[string]any {
	env := make(map[string]any, len(Functions)+3)
	for fn, f := range Functions {
		env[fn] = f
	}
	env["pi"] = math.Pi
	env["pow"] = math.Pow
	env[name] = 0.0
	return env
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}
