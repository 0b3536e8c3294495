package parser

import (
	"notal/internal/ast"
	"notal/internal/diag"
	"notal/internal/source"
	"notal/internal/token"
)

// parseDeclBlock parses the kamus (dictionary) section: an indentation
// block of declarations anchored on the 'kamus' keyword's column. It uses
// the same off-side discipline as statement blocks.
func (p *Parser) parseDeclBlock(kamusCol uint32) []ast.DeclID {
	if p.at(token.EOF) || p.atBlockTerminator() {
		return nil
	}
	if p.peek().Column() <= kamusCol {
		return nil
	}
	base := p.peek().Column()

	var decls []ast.DeclID
	for !p.at(token.EOF) && !p.atBlockTerminator() && p.peek().Column() >= base {
		before := p.pos
		id, ok := p.parseDecl()
		if ok {
			decls = append(decls, id)
		} else {
			p.resyncStatement()
		}
		if p.pos == before {
			break
		}
	}
	return decls
}

// parseDecl dispatches one dictionary entry on its first token:
//
//	constant NAME : type = expr
//	type NAME : < fields > | ( members ) | base [ '|' predicate ]
//	name {, name} : type [ '|' predicate ]
func (p *Parser) parseDecl() (ast.DeclID, bool) {
	switch p.peek().Kind {
	case token.KwConstant:
		return p.parseConstDecl()
	case token.KwType:
		return p.parseTypeDecl()
	case token.Ident:
		return p.parseVarDecl()
	default:
		p.err(diag.SynUnexpectedStatement,
			"expected a declaration, got '"+p.peek().Text+"'")
		return ast.NoDeclID, false
	}
}

func (p *Parser) parseConstDecl() (ast.DeclID, bool) {
	kw := p.advance()
	data := ast.DeclConstData{}
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}
	data.Name, data.NameSpan = name, nameSpan
	if _, ok := p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' after constant name"); !ok {
		return ast.NoDeclID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}
	data.Type = typ
	if _, ok := p.expect(token.Eq, diag.DeclBadConstant,
		"expected '=' and a value in constant declaration"); !ok {
		return ast.NoDeclID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoDeclID, false
	}
	data.Value = value
	span := kw.Span.Cover(p.lastSpan)
	return p.arenas.Decls.NewConst(span, data), true
}

// parseTypeDecl handles the three 'type' forms: record ("< ... >"), enum
// ("( ... )"), and named base with an optional constraint predicate.
func (p *Parser) parseTypeDecl() (ast.DeclID, bool) {
	kw := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' after type name"); !ok {
		return ast.NoDeclID, false
	}

	switch p.peek().Kind {
	case token.Lt:
		fields, ok := p.parseRecordFields()
		if !ok {
			return ast.NoDeclID, false
		}
		span := kw.Span.Cover(p.lastSpan)
		return p.arenas.Decls.NewRecord(span, ast.DeclRecordData{
			Name: name, NameSpan: nameSpan, Fields: fields,
		}), true
	case token.LParen:
		members, ok := p.parseEnumMembers()
		if !ok {
			return ast.NoDeclID, false
		}
		span := kw.Span.Cover(p.lastSpan)
		return p.arenas.Decls.NewEnum(span, ast.DeclEnumData{
			Name: name, NameSpan: nameSpan, Members: members,
		}), true
	default:
		base, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		data := ast.DeclConstrainedData{Name: name, NameSpan: nameSpan, Base: base}
		if p.at(token.Pipe) {
			p.advance()
			pred, ok := p.parseExpr()
			if !ok {
				return ast.NoDeclID, false
			}
			data.Constraint = pred
		}
		span := kw.Span.Cover(p.lastSpan)
		return p.arenas.Decls.NewConstrained(span, data), true
	}
}

// parseRecordFields parses "< name {, name} : type {, name ... : type} >".
func (p *Parser) parseRecordFields() ([]ast.RecordField, bool) {
	p.advance() // <
	var fields []ast.RecordField
	for {
		startSpan := p.peek().Span
		var names []source.StringID
		for {
			name, _, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			names = append(names, name)
			if !p.at(token.Comma) || p.peekAt(1).Kind != token.Ident ||
				p.peekAt(2).Kind != token.Colon && p.peekAt(2).Kind != token.Comma {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon,
			"expected ':' after record field name"); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fields = append(fields, ast.RecordField{
			Span:  startSpan.Cover(p.lastSpan),
			Names: names,
			Type:  typ,
		})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.Gt, diag.SynUnexpectedToken,
		"expected '>' to close record type"); !ok {
		return nil, false
	}
	return fields, true
}

func (p *Parser) parseEnumMembers() ([]ast.EnumMember, bool) {
	p.advance() // (
	var members []ast.EnumMember
	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		members = append(members, ast.EnumMember{Span: nameSpan, Name: name})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen,
		"expected ')' to close enum type"); !ok {
		return nil, false
	}
	return members, true
}

// parseVarDecl parses "name {, name} : type [ '|' predicate ]".
func (p *Parser) parseVarDecl() (ast.DeclID, bool) {
	start := p.peek().Span
	var data ast.DeclVarData
	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return ast.NoDeclID, false
		}
		data.Names = append(data.Names, name)
		data.NameSpans = append(data.NameSpans, nameSpan)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' after variable name"); !ok {
		return ast.NoDeclID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}
	data.Type = typ
	if p.at(token.Pipe) {
		p.advance()
		pred, ok := p.parseExpr()
		if !ok {
			return ast.NoDeclID, false
		}
		data.Constraint = pred
	}
	span := start.Cover(p.lastSpan)
	return p.arenas.Decls.NewVar(span, data), true
}

// parseType parses a type expression: a bare name, "array [bounds] of T",
// "array of T", or "pointer to T".
func (p *Parser) parseType() (ast.TypeID, bool) {
	switch p.peek().Kind {
	case token.Ident:
		tok := p.advance()
		return p.arenas.Types.NewName(tok.Span, p.arenas.Intern(tok.Text)), true
	case token.KwArray:
		return p.parseArrayType()
	case token.KwPointer:
		kw := p.advance()
		if _, ok := p.expect(token.KwTo, diag.SynExpectType,
			"expected 'to' after 'pointer'"); !ok {
			return ast.NoTypeID, false
		}
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewPointer(kw.Span.Cover(p.lastSpan), elem), true
	default:
		p.err(diag.SynExpectType, "expected type, got '"+p.peek().Text+"'")
		return ast.NoTypeID, false
	}
}

// parseArrayType parses the static form with explicit lo..hi bounds per
// dimension, or the dynamic form with no bracket at all.
func (p *Parser) parseArrayType() (ast.TypeID, bool) {
	kw := p.advance() // array
	if p.at(token.LBracket) {
		p.advance()
		var bounds []ast.ArrayBound
		for {
			lo, ok := p.parseExpr()
			if !ok {
				return ast.NoTypeID, false
			}
			if _, ok := p.expect(token.DotDot, diag.SynExpectRange,
				"expected '..' in array bounds"); !ok {
				return ast.NoTypeID, false
			}
			hi, ok := p.parseExpr()
			if !ok {
				return ast.NoTypeID, false
			}
			bounds = append(bounds, ast.ArrayBound{Lo: lo, Hi: hi})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket,
			"expected ']' to close array bounds"); !ok {
			return ast.NoTypeID, false
		}
		if _, ok := p.expect(token.KwOf, diag.SynExpectType,
			"expected 'of' after array bounds"); !ok {
			return ast.NoTypeID, false
		}
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewArrayStatic(kw.Span.Cover(p.lastSpan), bounds, elem), true
	}

	if _, ok := p.expect(token.KwOf, diag.SynExpectType,
		"expected '[' bounds or 'of' after 'array'"); !ok {
		return ast.NoTypeID, false
	}
	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewArrayDyn(kw.Span.Cover(p.lastSpan), elem), true
}
