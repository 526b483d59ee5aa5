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

// Package lower translates parsed Go files into the statement-oriented
// [syntax.Node] trees consumed by the onestmt check.
//
// Every terminated statement yields a content node followed by a synthesized
// [syntax.StatementTerminator] at the statement's end, standing in for Go's
// implicit semicolon. Three-clause for headers yield their initializer,
// condition and iterator clauses with the separators between them, in sibling
// order ahead of the body block. Call arguments yield [syntax.ArgumentList]
// nodes so that a function literal passed as the first argument is visible as
// a [syntax.Lambda] first child.
package lower

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/onestmt/internal/syntax"
)

// File lowers a parsed Go file into a statement-oriented syntax tree.
// The resulting tree holds positions into fset and is read-only.
func File(fset *token.FileSet, file *ast.File) *syntax.Node {
	l := &lowerer{fset: fset}

	root := l.node(syntax.StatementBlock, file.Pos())
	for _, decl := range file.Decls {
		l.decl(root, decl)
	}

	return root
}

type lowerer struct {
	fset *token.FileSet
}

func (l *lowerer) line(pos token.Pos) int {
	return l.fset.PositionFor(pos, false).Line
}

func (l *lowerer) node(kind syntax.Kind, pos token.Pos) *syntax.Node {
	return syntax.NewNode(kind, l.line(pos), pos)
}

func (l *lowerer) append(parent *syntax.Node, kind syntax.Kind, pos token.Pos) *syntax.Node {
	n := l.node(kind, pos)
	parent.Append(n)

	return n
}

// terminator appends the synthesized statement boundary for a statement
// ending at end.
func (l *lowerer) terminator(parent *syntax.Node, end token.Pos) {
	l.append(parent, syntax.StatementTerminator, end-1)
}

// decl lowers a top-level declaration. Declaration groups are statements and
// receive terminators; function declarations contribute their bodies.
func (l *lowerer) decl(parent *syntax.Node, decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.GenDecl:
		n := l.append(parent, syntax.Expression, d.Pos())
		l.genDeclValues(n, d)
		l.terminator(parent, d.End())

	case *ast.FuncDecl:
		n := l.append(parent, syntax.Expression, d.Pos())
		if d.Body != nil {
			l.block(n, d.Body)
		}
	}
}

// genDeclValues lowers the initializer expressions of a declaration group.
func (l *lowerer) genDeclValues(parent *syntax.Node, d *ast.GenDecl) {
	for _, spec := range d.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, value := range vspec.Values {
			l.expr(parent, value)
		}
	}
}

func (l *lowerer) block(parent *syntax.Node, b *ast.BlockStmt) {
	n := l.append(parent, syntax.StatementBlock, b.Lbrace)
	for _, s := range b.List {
		l.stmt(n, s)
	}
}

func (l *lowerer) stmt(parent *syntax.Node, s ast.Stmt) {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		if !s.Implicit {
			l.append(parent, syntax.EmptyStatement, s.Semicolon)
		}

	case *ast.BlockStmt:
		l.block(parent, s)

	case *ast.LabeledStmt:
		l.stmt(parent, s.Stmt)

	case *ast.ForStmt:
		l.forStmt(parent, s)

	case *ast.RangeStmt:
		n := l.append(parent, syntax.For, s.Pos())
		l.expr(n, s.X)
		l.block(n, s.Body)

	case *ast.IfStmt:
		l.ifStmt(parent, s)

	case *ast.SwitchStmt:
		n := l.append(parent, syntax.Expression, s.Pos())
		l.inline(n, s.Init)

		if s.Tag != nil {
			l.expr(n, s.Tag)
		}

		l.caseClauses(n, s.Body)

	case *ast.TypeSwitchStmt:
		n := l.append(parent, syntax.Expression, s.Pos())
		l.inline(n, s.Init)
		l.inline(n, s.Assign)
		l.caseClauses(n, s.Body)

	case *ast.SelectStmt:
		n := l.append(parent, syntax.Expression, s.Pos())
		l.commClauses(n, s.Body)

	default:
		l.terminated(parent, s)
	}
}

// terminated lowers a simple statement as content followed by its
// terminator.
func (l *lowerer) terminated(parent *syntax.Node, s ast.Stmt) {
	n := l.append(parent, syntax.Expression, s.Pos())
	l.inline(n, s)
	l.terminator(parent, s.End())
}

// inline lowers a statement's expression content without a terminator, for
// control clause positions that carry no statement boundary of their own.
func (l *lowerer) inline(parent *syntax.Node, s ast.Stmt) {
	switch s := s.(type) {
	case nil:

	case *ast.ExprStmt:
		l.expr(parent, s.X)

	case *ast.AssignStmt:
		for _, e := range s.Rhs {
			l.expr(parent, e)
		}

	case *ast.DeclStmt:
		if d, ok := s.Decl.(*ast.GenDecl); ok {
			l.genDeclValues(parent, d)
		}

	case *ast.ReturnStmt:
		for _, e := range s.Results {
			l.expr(parent, e)
		}

	case *ast.GoStmt:
		l.expr(parent, s.Call)

	case *ast.DeferStmt:
		l.expr(parent, s.Call)

	case *ast.SendStmt:
		l.expr(parent, s.Value)

	case *ast.IncDecStmt:
		l.expr(parent, s.X)
	}
}

// forStmt lowers a loop. The three-clause form mirrors the clause order of
// the header source: initializer, separator, condition, separator, iterator,
// then the body block. The while-form and range loops have no header
// separators in the source and lower as a plain block.
func (l *lowerer) forStmt(parent *syntax.Node, s *ast.ForStmt) {
	n := l.append(parent, syntax.For, s.Pos())

	if s.Init != nil || s.Post != nil {
		init := l.append(n, syntax.ForInitializer, clausePos(s.Init, s.For))
		l.inline(init, s.Init)
		l.terminator(n, clauseEnd(s.Init, s.For))

		cond := l.append(n, syntax.ForCondition, exprPos(s.Cond, s.For))
		if s.Cond != nil {
			l.expr(cond, s.Cond)
		}

		l.terminator(n, exprEnd(s.Cond, s.For))

		iter := l.append(n, syntax.ForIterator, clausePos(s.Post, s.For))
		l.inline(iter, s.Post)
	}

	l.block(n, s.Body)
}

// ifStmt lowers an if chain. The init clause shares the header with the
// condition and carries no statement boundary.
func (l *lowerer) ifStmt(parent *syntax.Node, s *ast.IfStmt) {
	n := l.append(parent, syntax.Expression, s.Pos())
	l.inline(n, s.Init)
	l.expr(n, s.Cond)
	l.block(n, s.Body)

	switch els := s.Else.(type) {
	case nil:
	case *ast.BlockStmt:
		l.block(n, els)
	default:
		l.stmt(n, els)
	}
}

func (l *lowerer) caseClauses(parent *syntax.Node, body *ast.BlockStmt) {
	for _, s := range body.List {
		clause, ok := s.(*ast.CaseClause)
		if !ok {
			continue
		}

		n := l.append(parent, syntax.StatementBlock, clause.Case)
		for _, e := range clause.List {
			l.expr(n, e)
		}

		for _, bs := range clause.Body {
			l.stmt(n, bs)
		}
	}
}

func (l *lowerer) commClauses(parent *syntax.Node, body *ast.BlockStmt) {
	for _, s := range body.List {
		clause, ok := s.(*ast.CommClause)
		if !ok {
			continue
		}

		n := l.append(parent, syntax.StatementBlock, clause.Case)
		l.inline(n, clause.Comm)

		for _, bs := range clause.Body {
			l.stmt(n, bs)
		}
	}
}

// expr lowers the parts of an expression the check cares about: argument
// lists and the function literals inside them.
func (l *lowerer) expr(parent *syntax.Node, e ast.Expr) {
	switch e := e.(type) {
	case *ast.CallExpr:
		l.expr(parent, e.Fun)

		args := l.append(parent, syntax.ArgumentList, e.Lparen)
		for _, arg := range e.Args {
			l.expr(args, arg)
		}

	case *ast.FuncLit:
		n := l.append(parent, syntax.Lambda, e.Pos())
		l.block(n, e.Body)

	case *ast.ParenExpr:
		l.expr(parent, e.X)

	case *ast.SelectorExpr:
		l.expr(parent, e.X)

	case *ast.StarExpr:
		l.expr(parent, e.X)

	case *ast.UnaryExpr:
		l.expr(parent, e.X)

	case *ast.BinaryExpr:
		l.expr(parent, e.X)
		l.expr(parent, e.Y)

	case *ast.IndexExpr:
		l.expr(parent, e.X)
		l.expr(parent, e.Index)

	case *ast.SliceExpr:
		l.expr(parent, e.X)

	case *ast.TypeAssertExpr:
		l.expr(parent, e.X)

	case *ast.KeyValueExpr:
		l.expr(parent, e.Value)

	case *ast.CompositeLit:
		for _, elt := range e.Elts {
			l.expr(parent, elt)
		}
	}
}

// clausePos returns the position of an optional clause statement, or
// fallback when it is absent.
func clausePos(s ast.Stmt, fallback token.Pos) token.Pos {
	if s == nil {
		return fallback
	}

	return s.Pos()
}

// clauseEnd returns the last position of an optional clause statement, or
// fallback when it is absent.
func clauseEnd(s ast.Stmt, fallback token.Pos) token.Pos {
	if s == nil {
		return fallback + 1
	}

	return s.End()
}

func exprPos(e ast.Expr, fallback token.Pos) token.Pos {
	if e == nil {
		return fallback
	}

	return e.Pos()
}

func exprEnd(e ast.Expr, fallback token.Pos) token.Pos {
	if e == nil {
		return fallback + 1
	}

	return e.End()
}
