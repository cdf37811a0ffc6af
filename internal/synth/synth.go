// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package synth renders a validated concatenator chain as a string concatenation expression.
package synth

import (
	"errors"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/model"
)

// ErrUnexpectedShape is returned for chains the classifier should have excluded.
var ErrUnexpectedShape = errors.New("unexpected chain shape")

// additive is the precedence of the concatenation operator.
var additive = token.ADD.Precedence()

// Trivia places comments while the expression is rendered.
type Trivia interface {
	// Place drains comments before anchor into out, returns true when written inline.
	Place(out *strings.Builder, anchor token.Pos) bool
	// Separate writes the white space before text starting at pos, after placed comments.
	Separate(out *strings.Builder, pos token.Pos)
	// Skip drops comments inside spliced source text.
	Skip(pos, end token.Pos)
	// Track records the source line of the text last written.
	Track(pos token.Pos)
	// Leading returns comments to be placed before the replacement.
	Leading() []string
	// Trailing drains the remaining comments, to be placed after the replacement.
	Trailing() []string
}

// NoTrivia discards all comments.
type NoTrivia struct{}

func (NoTrivia) Place(*strings.Builder, token.Pos) bool       { return false }
func (NoTrivia) Separate(out *strings.Builder, _ token.Pos) { out.WriteByte(' ') }
func (NoTrivia) Skip(token.Pos, token.Pos)                  {}
func (NoTrivia) Track(token.Pos)                            {}
func (NoTrivia) Leading() []string                          { return nil }
func (NoTrivia) Trailing() []string                         { return nil }

// Expression is a synthesized replacement.
type Expression struct {
	// Text is the Go source of the expression.
	Text string

	// Operands is the number of concatenated operands, more than one is a binary expression.
	Operands int

	// Leading are comments to be placed before the statement containing the replacement.
	Leading []string

	// Trailing are comments to be placed after the statement containing the replacement.
	Trailing []string
}

// MultiLine reports whether the text spans more than one line.
func (e Expression) MultiLine() bool {
	return strings.Contains(e.Text, "\n")
}

// Synthesizer renders chains.
type Synthesizer struct {
	Info *types.Info

	// Source returns the source text of a node.
	Source func(ast.Node) string

	Trivia Trivia
}

// Render converts a chain into an equivalent string expression.
//
// Contributions are rendered in evaluation order: the construction seed, then each
// append and add argument, so the buffer always holds the left operand of the next one.
func (s Synthesizer) Render(ch chain.Chain) (Expression, error) {
	r := renderer{Synthesizer: s}

	if seed := ch.Construction.Seed; seed != nil {
		if err := r.contribution(seed.Expr.Pos(), *seed); err != nil {
			return Expression{}, err
		}
	}

	for _, l := range ch.Links {
		if err := r.link(l); err != nil {
			return Expression{}, err
		}
	}

	if r.operands == 0 {
		r.out.WriteString(`""`)
		r.operands = 1
	}

	return Expression{
		Text:     r.out.String(),
		Operands: r.operands,
		Leading:  s.Trivia.Leading(),
		Trailing: s.Trivia.Trailing(),
	}, nil
}

type renderer struct {
	Synthesizer

	out      strings.Builder
	operands int
}

func (r *renderer) link(l chain.Link) error {
	switch l.Kind {
	case model.CallHint:
		return nil

	case model.CallAppend, model.CallAdd:
		if len(l.Args) != 1 {
			return ErrUnexpectedShape
		}

		return r.contribution(l.Args[0].Expr.Pos(), l.Args[0])

	case model.CallAppendRanged:
		if len(l.Args) != 3 {
			return ErrUnexpectedShape
		}

		return r.ranged(l.Args[0].Expr, l.Args[1].Expr, l.Args[2].Expr)

	default:
		return ErrUnexpectedShape
	}
}

// operator starts a new operand, placing pending comments before anchor.
func (r *renderer) operator(anchor token.Pos) {
	if r.operands > 0 {
		r.out.WriteString(" +")
	}

	placed := r.Trivia.Place(&r.out, anchor)

	switch {
	case r.operands == 0:

	case placed:
		r.Trivia.Separate(&r.out, anchor)

	default:
		r.out.WriteByte(' ')
	}

	r.operands++
}

func (r *renderer) contribution(anchor token.Pos, arg model.Arg) error {
	text, err := r.operand(arg)
	if err != nil {
		return err
	}

	r.operator(anchor)
	r.out.WriteString(text)
	r.Trivia.Skip(arg.Expr.Pos(), arg.Expr.End())
	r.Trivia.Track(arg.Expr.End())

	return nil
}

// operand renders one argument as an operand of type string.
func (r *renderer) operand(arg model.Arg) (string, error) {
	e := arg.Expr
	tv := r.Info.Types[e]

	switch arg.Kind {
	case model.ArgString:
		return r.parenthesized(e, additive), nil

	case model.ArgNamedString:
		if tv.Value != nil && tv.Value.Kind() == constant.String {
			return strconv.Quote(constant.StringVal(tv.Value)), nil
		}

		return "string(" + r.Source(e) + ")", nil

	case model.ArgByte:
		if tv.Value != nil {
			return byteLiteral(tv.Value)
		}

		return "string([]byte{" + r.Source(e) + "})", nil

	case model.ArgRune:
		if tv.Value != nil {
			return runeLiteral(tv.Value)
		}

		return "string(" + r.Source(e) + ")", nil

	case model.ArgBytes, model.ArgRunes:
		if tv.IsNil() {
			return `""`, nil
		}

		return "string(" + r.Source(e) + ")", nil

	default:
		return "", ErrUnexpectedShape
	}
}

// ranged renders the range (offset, length) of a slice as a conversion of a slice expression.
//
// A non-zero offset is sliced off first, so it is evaluated once and need not share the
// type of the length.
func (r *renderer) ranged(slice, offset, length ast.Expr) error {
	text := "string(" + r.parenthesized(slice, token.HighestPrec)
	if !isZero(r.Info, offset) {
		text += "[" + r.Source(offset) + ":]"
	}

	text += "[:" + r.Source(length) + "])"

	r.operator(slice.Pos())
	r.out.WriteString(text)
	r.Trivia.Skip(slice.Pos(), length.End())
	r.Trivia.Track(length.End())

	return nil
}

// parenthesized returns the source of e, in parentheses when its precedence is below prec.
func (r *renderer) parenthesized(e ast.Expr, prec int) string {
	text := r.Source(e)
	if precedence(e) < prec {
		return "(" + text + ")"
	}

	return text
}

func precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.BinaryExpr:
		return e.Op.Precedence()

	case *ast.UnaryExpr, *ast.StarExpr:
		return token.UnaryPrec

	case *ast.KeyValueExpr:
		return token.LowestPrec

	default:
		return token.HighestPrec
	}
}

func isZero(info *types.Info, e ast.Expr) bool {
	tv, ok := info.Types[e]
	if !ok || tv.Value == nil {
		return false
	}

	n, exact := constant.Int64Val(constant.ToInt(tv.Value))

	return exact && n == 0
}

func byteLiteral(v constant.Value) (string, error) {
	n, ok := constant.Int64Val(constant.ToInt(v))
	if !ok {
		return "", ErrUnexpectedShape
	}

	b, err := safecast.Conv[byte](n)
	if err != nil {
		return "", err
	}

	return strconv.Quote(string([]byte{b})), nil
}

func runeLiteral(v constant.Value) (string, error) {
	n, ok := constant.Int64Val(constant.ToInt(v))
	if !ok {
		return "", ErrUnexpectedShape
	}

	c, err := safecast.Conv[rune](n)
	if err != nil {
		return "", err
	}

	return strconv.Quote(string(c)), nil
}
