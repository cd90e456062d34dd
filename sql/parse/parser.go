// Copyright 2026 The Cobblesql Authors.
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

package parse

import (
	"strconv"
	"strings"

	"github.com/cobblesql/cobblesql/sql"
	"github.com/cobblesql/cobblesql/sql/expression"
)

// Parser consumes a Lexer's token stream with one token of lookahead, a
// standard recursive-descent shape.
type Parser struct {
	lex  *Lexer
	cur  Token
	peek *Token
}

// Parse lexes and parses text into the statements it contains, each
// terminated by an optional trailing semicolon.
func Parse(text string) ([]Stmt, error) {
	p := &Parser{lex: NewLexer(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for p.cur.Kind != TokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		for p.cur.Kind == TokSemicolon {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return stmts, nil
}

func (p *Parser) advance() error {
	if p.peek != nil {
		p.cur = *p.peek
		p.peek = nil
		return nil
	}
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *Parser) lookahead() (Token, error) {
	if p.peek == nil {
		t, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.peek = &t
	}
	return *p.peek, nil
}

func (p *Parser) isKeyword(kw string) bool {
	return p.cur.Kind == TokIdent && strings.EqualFold(p.cur.Text, kw)
}

func (p *Parser) expectKeyword(kw string) error {
	if !p.isKeyword(kw) {
		return ErrUnexpectedToken.New(p.cur.Text, p.cur.Pos, strings.ToUpper(kw))
	}
	return p.advance()
}

func (p *Parser) expect(kind TokenKind, what string) (Token, error) {
	if p.cur.Kind != kind {
		return Token{}, ErrUnexpectedToken.New(p.cur.Text, p.cur.Pos, what)
	}
	t := p.cur
	return t, p.advance()
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch {
	case p.isKeyword("SELECT"):
		return p.parseSelect()
	case p.isKeyword("CREATE"):
		return p.parseCreate()
	case p.isKeyword("INSERT"):
		return p.parseInsert()
	default:
		return nil, ErrUnknownStatement.New(p.cur.Text)
	}
}

// --- SELECT -----------------------------------------------------------

func (p *Parser) parseSelect() (Stmt, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}

	var items []SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.cur.Kind != TokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	stmt := &SelectStmt{Items: items}

	if p.isKeyword("FROM") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseTableName()
		if err != nil {
			return nil, err
		}
		stmt.From = name
		stmt.HasFrom = true
	}

	if p.isKeyword("WHERE") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = e
	}

	if p.isKeyword("ORDER") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		asc := true
		if p.isKeyword("DESC") {
			asc = false
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else if p.isKeyword("ASC") {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		stmt.OrderBy = &OrderByClause{Expr: e, Asc: asc}
	}

	if p.isKeyword("LIMIT") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		tok, err := p.expect(TokInt, "a number")
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.ParseUint(tok.Text, 10, 64)
		if convErr != nil {
			return nil, ErrInvalidLiteral.New("integer", tok.Text)
		}
		stmt.Limit = &n
	}

	return *stmt, nil
}

func (p *Parser) parseSelectItem() (SelectItem, error) {
	if p.cur.Kind == TokStar {
		if err := p.advance(); err != nil {
			return SelectItem{}, err
		}
		return SelectItem{Expr: expression.NewWildcard()}, nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return SelectItem{}, err
	}
	item := SelectItem{Expr: e}
	if p.isKeyword("AS") {
		if err := p.advance(); err != nil {
			return SelectItem{}, err
		}
		tok, err := p.expect(TokIdent, "an alias")
		if err != nil {
			return SelectItem{}, err
		}
		item.Alias = tok.Text
	} else if p.cur.Kind == TokIdent && !p.isClauseKeyword() {
		// Bare alias with no AS: `SELECT x y`.
		item.Alias = p.cur.Text
		if err := p.advance(); err != nil {
			return SelectItem{}, err
		}
	}
	return item, nil
}

// isClauseKeyword reports whether the current identifier token is actually
// a clause keyword (FROM, WHERE, ...) rather than a bare alias or the start
// of the next select item.
func (p *Parser) isClauseKeyword() bool {
	for _, kw := range []string{"FROM", "WHERE", "ORDER", "LIMIT", "AS"} {
		if p.isKeyword(kw) {
			return true
		}
	}
	return false
}

func (p *Parser) parseTableName() (TableName, error) {
	first, err := p.expect(TokIdent, "a table name")
	if err != nil {
		return TableName{}, err
	}
	if p.cur.Kind == TokDot {
		if err := p.advance(); err != nil {
			return TableName{}, err
		}
		second, err := p.expect(TokIdent, "a table name")
		if err != nil {
			return TableName{}, err
		}
		return TableName{Schema: first.Text, Table: second.Text}, nil
	}
	return TableName{Table: first.Text}, nil
}

// --- CREATE -------------------------------------------------------------

func (p *Parser) parseCreate() (Stmt, error) {
	if err := p.expectKeyword("CREATE"); err != nil {
		return nil, err
	}
	switch {
	case p.isKeyword("SCHEMA"):
		return p.parseCreateSchema()
	case p.isKeyword("TABLE"):
		return p.parseCreateTable()
	default:
		return nil, ErrUnexpectedToken.New(p.cur.Text, p.cur.Pos, "SCHEMA or TABLE")
	}
}

func (p *Parser) parseIfNotExists() (bool, error) {
	if !p.isKeyword("IF") {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	if err := p.expectKeyword("NOT"); err != nil {
		return false, err
	}
	if err := p.expectKeyword("EXISTS"); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) parseCreateSchema() (Stmt, error) {
	if err := p.expectKeyword("SCHEMA"); err != nil {
		return nil, err
	}
	existsOk, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(TokIdent, "a schema name")
	if err != nil {
		return nil, err
	}
	return CreateSchemaStmt{Name: name.Text, ExistsOk: existsOk}, nil
}

func (p *Parser) parseCreateTable() (Stmt, error) {
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	existsOk, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	name, err := p.parseTableName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokLParen, "("); err != nil {
		return nil, err
	}

	var cols []ColumnDef
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		if p.cur.Kind != TokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokRParen, ")"); err != nil {
		return nil, err
	}
	return CreateTableStmt{Table: name, Columns: cols, ExistsOk: existsOk}, nil
}

func (p *Parser) parseColumnDef() (ColumnDef, error) {
	name, err := p.expect(TokIdent, "a column name")
	if err != nil {
		return ColumnDef{}, err
	}
	typ, err := p.expect(TokIdent, "a type name")
	if err != nil {
		return ColumnDef{}, err
	}
	col := ColumnDef{Name: name.Text, Type: typ.Text}

	for {
		switch {
		case p.isKeyword("NOT"):
			if err := p.advance(); err != nil {
				return ColumnDef{}, err
			}
			if err := p.expectKeyword("NULL"); err != nil {
				return ColumnDef{}, err
			}
			col.NotNull = true
		case p.isKeyword("UNIQUE"):
			if err := p.advance(); err != nil {
				return ColumnDef{}, err
			}
			col.Unique = true
		case p.isKeyword("PRIMARY"):
			if err := p.advance(); err != nil {
				return ColumnDef{}, err
			}
			if err := p.expectKeyword("KEY"); err != nil {
				return ColumnDef{}, err
			}
			col.PK = true
		case p.isKeyword("DEFAULT"):
			if err := p.advance(); err != nil {
				return ColumnDef{}, err
			}
			e, err := p.parseUnary()
			if err != nil {
				return ColumnDef{}, err
			}
			col.Default = e
		default:
			return col, nil
		}
	}
}

// --- INSERT ---------------------------------------------------------------

func (p *Parser) parseInsert() (Stmt, error) {
	if err := p.expectKeyword("INSERT"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	name, err := p.parseTableName()
	if err != nil {
		return nil, err
	}

	var columns []string
	if p.cur.Kind == TokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		for {
			col, err := p.expect(TokIdent, "a column name")
			if err != nil {
				return nil, err
			}
			columns = append(columns, col.Text)
			if p.cur.Kind != TokComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(TokRParen, ")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}

	var rows [][]expression.Expr
	for {
		row, err := p.parseValueRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if p.cur.Kind != TokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return InsertStmt{Table: name, Columns: columns, Rows: rows}, nil
}

func (p *Parser) parseValueRow() ([]expression.Expr, error) {
	if _, err := p.expect(TokLParen, "("); err != nil {
		return nil, err
	}
	var vals []expression.Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		vals = append(vals, e)
		if p.cur.Kind != TokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokRParen, ")"); err != nil {
		return nil, err
	}
	return vals, nil
}

// --- Expressions ------------------------------------------------------
//
// Precedence, lowest to highest: OR, AND, NOT, comparison (including
// BETWEEN/LIKE/ILIKE/IS), additive, multiplicative, unary, primary.

func (p *Parser) parseExpr() (expression.Expr, error) { return p.parseOr() }

func (p *Parser) parseOr() (expression.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("OR") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = expression.NewBinary(left, expression.Or, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (expression.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("AND") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = expression.NewBinary(left, expression.And, right)
	}
	return left, nil
}

func (p *Parser) parseNot() (expression.Expr, error) {
	if p.isKeyword("NOT") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return expression.NewUnary(expression.Not, operand), nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (expression.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isKeyword("BETWEEN"):
			if err := p.advance(); err != nil {
				return nil, err
			}
			low, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			if err := p.expectKeyword("AND"); err != nil {
				return nil, err
			}
			high, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = expression.NewBetween(left, low, high, false)
		case p.isKeyword("NOT"):
			la, err := p.lookahead()
			if err != nil {
				return nil, err
			}
			if la.Kind != TokIdent || !strings.EqualFold(la.Text, "BETWEEN") {
				return left, nil
			}
			if err := p.advance(); err != nil { // NOT
				return nil, err
			}
			if err := p.advance(); err != nil { // BETWEEN
				return nil, err
			}
			low, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			if err := p.expectKeyword("AND"); err != nil {
				return nil, err
			}
			high, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = expression.NewBetween(left, low, high, true)
		case p.isKeyword("LIKE"):
			if err := p.advance(); err != nil {
				return nil, err
			}
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = expression.NewBinary(left, expression.Like, right)
		case p.isKeyword("ILIKE"):
			if err := p.advance(); err != nil {
				return nil, err
			}
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = expression.NewBinary(left, expression.ILike, right)
		case p.isKeyword("IS"):
			l, err := p.parseIs(left)
			if err != nil {
				return nil, err
			}
			left = l
		case p.cur.Kind == TokEq:
			left, err = p.binaryStep(left, expression.Equal)
		case p.cur.Kind == TokNeq:
			left, err = p.binaryStep(left, expression.NotEqual)
		case p.cur.Kind == TokLt:
			left, err = p.binaryStep(left, expression.LessThan)
		case p.cur.Kind == TokLe:
			left, err = p.binaryStep(left, expression.LessThanOrEqual)
		case p.cur.Kind == TokGt:
			left, err = p.binaryStep(left, expression.GreaterThan)
		case p.cur.Kind == TokGe:
			left, err = p.binaryStep(left, expression.GreaterThanOrEqual)
		default:
			return left, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) binaryStep(left expression.Expr, op expression.BinOp) (expression.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return expression.NewBinary(left, op, right), nil
}

func (p *Parser) parseIs(left expression.Expr) (expression.Expr, error) {
	if err := p.advance(); err != nil { // IS
		return nil, err
	}
	negate := false
	if p.isKeyword("NOT") {
		negate = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	switch {
	case p.isKeyword("NULL"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if negate {
			return expression.NewUnary(expression.IsNotNull, left), nil
		}
		return expression.NewUnary(expression.IsNull, left), nil
	case p.isKeyword("TRUE"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		e := expression.Expr(expression.NewUnary(expression.IsTrue, left))
		if negate {
			e = expression.NewUnary(expression.Not, e)
		}
		return e, nil
	case p.isKeyword("FALSE"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		e := expression.Expr(expression.NewUnary(expression.IsFalse, left))
		if negate {
			e = expression.NewUnary(expression.Not, e)
		}
		return e, nil
	default:
		return nil, ErrUnexpectedToken.New(p.cur.Text, p.cur.Pos, "NULL, TRUE, or FALSE")
	}
}

func (p *Parser) parseAdditive() (expression.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokPlus || p.cur.Kind == TokMinus {
		op := expression.Plus
		if p.cur.Kind == TokMinus {
			op = expression.Minus
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = expression.NewBinary(left, op, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (expression.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokStar || p.cur.Kind == TokSlash || p.cur.Kind == TokPercent {
		var op expression.BinOp
		switch p.cur.Kind {
		case TokStar:
			op = expression.Multiply
		case TokSlash:
			op = expression.Divide
		default:
			op = expression.Modulo
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = expression.NewBinary(left, op, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (expression.Expr, error) {
	switch p.cur.Kind {
	case TokMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expression.NewUnary(expression.UnaryMinus, operand), nil
	case TokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expression.NewUnary(expression.UnaryPlus, operand), nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (expression.Expr, error) {
	switch {
	case p.cur.Kind == TokInt:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, ErrInvalidLiteral.New("integer", text)
		}
		return expression.NewLiteral(sql.NewInt64(n)), nil
	case p.cur.Kind == TokFloat:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, ErrInvalidLiteral.New("float", text)
		}
		return expression.NewLiteral(sql.NewFloat64(f)), nil
	case p.cur.Kind == TokString:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expression.NewLiteral(sql.NewText(text)), nil
	case p.cur.Kind == TokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen, ")"); err != nil {
			return nil, err
		}
		return e, nil
	case p.isKeyword("TRUE"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expression.NewLiteral(sql.NewBool(true)), nil
	case p.isKeyword("FALSE"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expression.NewLiteral(sql.NewBool(false)), nil
	case p.isKeyword("NULL"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expression.NewLiteral(sql.NewNull()), nil
	case p.cur.Kind == TokIdent:
		return p.parseIdentOrCall()
	default:
		return nil, ErrUnexpectedToken.New(p.cur.Text, p.cur.Pos, "an expression")
	}
}

func (p *Parser) parseIdentOrCall() (expression.Expr, error) {
	first, err := p.expect(TokIdent, "an identifier")
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == TokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var args []expression.Expr
		if p.cur.Kind != TokRParen {
			for {
				if p.cur.Kind == TokStar {
					if err := p.advance(); err != nil {
						return nil, err
					}
					args = append(args, expression.NewWildcard())
				} else {
					a, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
				}
				if p.cur.Kind != TokComma {
					break
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		if _, err := p.expect(TokRParen, ")"); err != nil {
			return nil, err
		}
		return expression.NewFunction(first.Text, args), nil
	}

	if p.cur.Kind == TokDot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.expect(TokIdent, "a column name")
		if err != nil {
			return nil, err
		}
		return expression.NewQualifiedColumnRef(first.Text, second.Text), nil
	}

	return expression.NewColumnRef(first.Text), nil
}
