package main

import (
	"bytes"
	"strings"
)

type parsedSource struct {
	nodes          []ImportNode
	declarations   []TopLevelDecl
	ambientModules []string
}

func isWhiteSpace(char byte) bool {
	return (char == ' ' || char == '\t' || char == '\n' || char == '\r')
}

// skipSpaces skips spaces, tabs, and newlines, returns new index
func skipSpaces(code []byte, i int) int {
	for i < len(code) && isWhiteSpace(code[i]) {
		i++
	}
	return i
}

func isByteIdentifierChar(char byte) bool {
	// 0-9 || A-Z || a-z || _ || $
	return (char >= 48 && char <= 57) || (char >= 65 && char <= 90) || (char >= 97 && char <= 122) || char == 95 || char == 36
}

func isQuote(char byte) bool {
	return char == '\'' || char == '"'
}

func hasPrefixAt(code []byte, i int, s string) bool {
	if i < 0 || i+len(s) > len(code) {
		return false
	}
	return bytes.Equal(code[i:i+len(s)], []byte(s))
}

func hasWordAt(code []byte, i int, s string) bool {
	if !hasPrefixAt(code, i, s) {
		return false
	}
	end := i + len(s)
	return end >= len(code) || !isByteIdentifierChar(code[end])
}

// isStatementBoundary reports whether a keyword starting at i is not the tail
// of a longer identifier or a member access.
func isStatementBoundary(code []byte, i int) bool {
	if i == 0 {
		return true
	}
	prev := code[i-1]
	return !isByteIdentifierChar(prev) && prev != '.'
}

// parseStringLiteral extracts the string literal at position i (' or ").
// Returns the literal value and the index after the closing quote; ok is false
// for an unterminated literal.
func parseStringLiteral(code []byte, i int) (value string, next int, ok bool) {
	quote := code[i]
	end := skipToStringEnd(code, i, quote)
	if end >= len(code) || code[end] != quote {
		return "", end, false
	}
	return string(code[i+1 : end]), end + 1, true
}

// skipToStringEnd returns the index of the closing quote. ' and " literals
// cannot span lines: an unescaped line break ends them and its index is
// returned instead.
func skipToStringEnd(code []byte, start int, quote byte) int {
	i := start + 1
	for i < len(code) {
		if code[i] == quote {
			return i
		}
		if code[i] == '\n' && quote != '`' {
			return i
		}
		if code[i] == '\\' && i+1 < len(code) {
			i += 2
		} else {
			i++
		}
	}
	return i
}

func skipLineComment(code []byte, start int) int {
	i := start + 2
	for i < len(code) && code[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(code []byte, start int) int {
	i := start + 2
	for i+1 < len(code) && !(code[i] == '*' && code[i+1] == '/') {
		i++
	}
	if i+1 < len(code) {
		return i + 2
	}
	return len(code)
}

// expressionKeywords are the keywords after which an expression begins.
var expressionKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

// previousToken returns the index of the last non-blank byte before i, or -1,
// and the identifier ending there if there is one.
func previousToken(code []byte, i int) (int, string) {
	j := i - 1
	for j >= 0 && isWhiteSpace(code[j]) {
		j--
	}
	if j < 0 || !isByteIdentifierChar(code[j]) {
		return j, ""
	}
	end := j + 1
	for j >= 0 && isByteIdentifierChar(code[j]) {
		j--
	}
	return end - 1, string(code[j+1 : end])
}

// atExpressionStart reports whether an operand may start at i, where `/`
// opens a regular expression rather than a division and `<` may open markup.
func atExpressionStart(code []byte, i int) bool {
	j, word := previousToken(code, i)
	if j < 0 {
		return true
	}
	if word != "" {
		return expressionKeywords[word]
	}
	switch code[j] {
	case '(', ',', '=', ':', '[', '!', '&', '|', '?', '{', '}', ';', '+', '-', '*', '%', '~', '^':
		return true
	case '>':
		// arrow body
		return j > 0 && code[j-1] == '='
	}
	return false
}

// skipRegexLiteral returns the index after the regular expression starting
// at start, flags included. An unterminated literal ends at the line break.
func skipRegexLiteral(code []byte, start int) int {
	i := start + 1
	inClass := false
	for i < len(code) {
		switch code[i] {
		case '\\':
			i += 2
			continue
		case '\n':
			return i
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				i++
				for i < len(code) && isByteIdentifierChar(code[i]) {
					i++
				}
				return i
			}
		}
		i++
	}
	return len(code)
}

func isJSXNameChar(char byte) bool {
	return isByteIdentifierChar(char) || char == '.' || char == '-' || char == ':'
}

func readJSXName(code []byte, i int) (string, int) {
	start := i
	for i < len(code) && isJSXNameChar(code[i]) {
		i++
	}
	return string(code[start:i]), i
}

// looksLikeJSX reports whether the `<` at i opens a markup element. Generic
// arrow functions written as `<T,>` or `<T extends U>` are not elements.
func looksLikeJSX(code []byte, i int) bool {
	if i+1 >= len(code) || !atExpressionStart(code, i) {
		return false
	}
	next := code[i+1]
	if next == '>' {
		return true
	}
	if !(next >= 'a' && next <= 'z' || next >= 'A' && next <= 'Z') {
		return false
	}
	_, j := readJSXName(code, i+1)
	j = skipSpaces(code, j)
	return j < len(code) && code[j] != ',' && !hasWordAt(code, j, "extends")
}

// skipJSXElement returns the index after the markup element opened at start.
// Text between tags is opaque. ok is false when the element is not closed
// with matching tags.
func skipJSXElement(code []byte, start int) (int, bool) {
	var open []string
	n := len(code)
	i := start
	for i < n && code[i] == '<' {
		if i+1 < n && code[i+1] == '/' {
			name, j := readJSXName(code, skipSpaces(code, i+2))
			j = skipSpaces(code, j)
			if j >= n || code[j] != '>' || len(open) == 0 || open[len(open)-1] != name {
				return start, false
			}
			open = open[:len(open)-1]
			i = j + 1
		} else {
			name, j := readJSXName(code, skipSpaces(code, i+1))
			end, selfClosing, ok := skipJSXAttributes(code, j)
			if !ok {
				return start, false
			}
			i = end
			if !selfClosing {
				open = append(open, name)
			}
		}
		if len(open) == 0 {
			return i, true
		}

		// children
		for i < n && code[i] != '<' {
			if code[i] == '{' {
				end, ok := skipJSXExpression(code, i)
				if !ok {
					return start, false
				}
				i = end
				continue
			}
			i++
		}
	}
	return start, false
}

// skipJSXAttributes skips the attributes of an opening tag and returns the
// index after its closing `>` or `/>`.
func skipJSXAttributes(code []byte, i int) (next int, selfClosing bool, ok bool) {
	n := len(code)
	for i < n {
		switch c := code[i]; {
		case c == '>':
			return i + 1, false, true
		case c == '/' && i+1 < n && code[i+1] == '>':
			return i + 2, true, true
		case isQuote(c):
			end := bytes.IndexByte(code[i+1:], c)
			if end < 0 {
				return i, false, false
			}
			i += end + 2
		case c == '{':
			end, ok := skipJSXExpression(code, i)
			if !ok {
				return i, false, false
			}
			i = end
		case c == '<':
			return i, false, false
		default:
			i++
		}
	}
	return i, false, false
}

// skipJSXExpression returns the index after the `{...}` container at start,
// descending into nested markup.
func skipJSXExpression(code []byte, start int) (int, bool) {
	n := len(code)
	depth := 0
	i := start
	for i < n {
		c := code[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			i = skipToStringEnd(code, i, c) + 1
			continue
		case c == '/' && i+1 < n && code[i+1] == '/':
			i = skipLineComment(code, i)
			continue
		case c == '/' && i+1 < n && code[i+1] == '*':
			i = skipBlockComment(code, i)
			continue
		case c == '/' && atExpressionStart(code, i):
			i = skipRegexLiteral(code, i)
			continue
		case c == '<' && looksLikeJSX(code, i):
			if end, ok := skipJSXElement(code, i); ok {
				i = end
				continue
			}
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
		i++
	}
	return start, false
}

// skipSpacesAndComments skips whitespace, line comments, and block comments
func skipSpacesAndComments(code []byte, i int) int {
	n := len(code)
	for i < n {
		i = skipSpaces(code, i)
		if i+1 < n && code[i] == '/' && code[i+1] == '/' {
			i = skipLineComment(code, i)
			continue
		}
		if i+1 < n && code[i] == '/' && code[i+1] == '*' {
			i = skipBlockComment(code, i)
			continue
		}
		break
	}
	return i
}

// skipOptionalSemicolon skips spaces/tabs then `;` if present.
// Returns position after `;` if found, or the original position i if not.
func skipOptionalSemicolon(code []byte, i int) int {
	j := i
	for j < len(code) && (code[j] == ' ' || code[j] == '\t') {
		j++
	}
	if j < len(code) && code[j] == ';' {
		return j + 1
	}
	return i
}

// skipImportAttributes skips `with { ... }` / `assert { ... }` after a module specifier.
func skipImportAttributes(code []byte, i int) int {
	j := skipSpacesAndComments(code, i)
	if !hasWordAt(code, j, "with") && !hasWordAt(code, j, "assert") {
		return i
	}
	for j < len(code) && code[j] != '{' {
		j++
	}
	for j < len(code) && code[j] != '}' {
		j++
	}
	if j < len(code) {
		return j + 1
	}
	return i
}

// parseIdentifier extracts a single identifier token starting at position i.
func parseIdentifier(code []byte, i int) (name string, next int) {
	start := i
	for i < len(code) && isByteIdentifierChar(code[i]) {
		i++
	}
	return string(code[start:i]), i
}

// parseEntityName parses a dotted name such as `A.B.C`.
func parseEntityName(code []byte, i int) (name string, next int) {
	name, i = parseIdentifier(code, i)
	for name != "" && i+1 < len(code) && code[i] == '.' && isByteIdentifierChar(code[i+1]) {
		var part string
		part, i = parseIdentifier(code, i+1)
		name += "." + part
	}
	return name, i
}

func parseAsAlias(code []byte, i int) (alias string, next int) {
	j := skipSpacesAndComments(code, i)
	if !hasWordAt(code, j, "as") {
		return "", i
	}
	j = skipSpacesAndComments(code, j+2)
	alias, next = parseIdentifier(code, j)
	if alias == "" {
		return "", i
	}
	return alias, next
}

// parseNamedBindings parses `{ A, B as C, type D, "str" as E }` starting at `{`.
func parseNamedBindings(code []byte, i int, isWholeStatementType bool) (bindings []Binding, next int) {
	n := len(code)
	i++ // skip '{'
	for i < n {
		i = skipSpacesAndComments(code, i)
		if i >= n {
			break
		}
		if code[i] == '}' {
			return bindings, i + 1
		}

		isType := isWholeStatementType
		// inline `type` modifier, unless `type` is the imported name itself
		if hasWordAt(code, i, "type") {
			j := skipSpacesAndComments(code, i+4)
			if j < n && (isByteIdentifierChar(code[j]) || isQuote(code[j])) && !hasWordAt(code, j, "as") {
				isType = true
				i = j
			}
		}

		var name string
		if isQuote(code[i]) {
			value, strNext, ok := parseStringLiteral(code, i)
			if !ok {
				return bindings, strNext
			}
			name, i = value, strNext
		} else {
			name, i = parseIdentifier(code, i)
			if name == "" {
				i++ // skip unexpected char
				continue
			}
		}

		alias, aliasNext := parseAsAlias(code, i)
		i = aliasNext
		b := Binding{Kind: BindingNamed, Local: name, IsType: isType}
		if alias != "" {
			b.Local = alias
			b.Imported = name
		}
		bindings = append(bindings, b)

		i = skipSpacesAndComments(code, i)
		if i < n && code[i] == ',' {
			i++
		}
	}
	return bindings, i
}

func parseNamespaceBinding(code []byte, i int, isType bool) (binding Binding, next int, ok bool) {
	alias, next := parseAsAlias(code, i+1) // skip '*'
	if alias == "" {
		return Binding{}, i + 1, false
	}
	return Binding{Kind: BindingNamespace, Local: alias, Imported: "*", IsType: isType}, next, true
}

// parseImportBindings parses everything between `import [type]` and `from`.
func parseImportBindings(code []byte, i int, isWholeStatementType bool) (bindings []Binding, next int) {
	n := len(code)
	if i >= n {
		return nil, i
	}
	if code[i] == '*' {
		b, next, ok := parseNamespaceBinding(code, i, isWholeStatementType)
		if ok {
			bindings = append(bindings, b)
		}
		return bindings, next
	}
	if code[i] == '{' {
		return parseNamedBindings(code, i, isWholeStatementType)
	}

	name, next := parseIdentifier(code, i)
	if name == "" {
		return nil, i
	}
	bindings = append(bindings, Binding{Kind: BindingDefault, Local: name, Imported: "default", IsType: isWholeStatementType})

	j := skipSpacesAndComments(code, next)
	if j >= n || code[j] != ',' {
		return bindings, next
	}
	j = skipSpacesAndComments(code, j+1)
	if j < n && code[j] == '*' {
		b, nsNext, ok := parseNamespaceBinding(code, j, isWholeStatementType)
		if ok {
			bindings = append(bindings, b)
		}
		return bindings, nsNext
	}
	if j < n && code[j] == '{' {
		named, namedNext := parseNamedBindings(code, j, isWholeStatementType)
		return append(bindings, named...), namedNext
	}
	return bindings, j
}

// parseFromClause expects `from 'module'` at i and returns the specifier and the
// end of the statement.
func parseFromClause(code []byte, i int) (specifier string, end int, ok bool) {
	i = skipSpacesAndComments(code, i)
	if !hasWordAt(code, i, "from") {
		return "", i, false
	}
	i = skipSpacesAndComments(code, i+4)
	if i >= len(code) || !isQuote(code[i]) {
		return "", i, false
	}
	specifier, next, ok := parseStringLiteral(code, i)
	if !ok {
		return "", next, false
	}
	next = skipImportAttributes(code, next)
	return specifier, skipOptionalSemicolon(code, next), true
}

func importKindOf(bindings []Binding) ImportNodeKind {
	if len(bindings) == 0 {
		return NamedImport
	}
	switch bindings[0].Kind {
	case BindingDefault:
		return DefaultImport
	case BindingNamespace:
		return NamespaceImport
	}
	return NamedImport
}

type parseState struct {
	code   []byte
	n      int
	markup bool
	result parsedSource
}

// parseDeclareStatement records `declare module "name"` ambient module names.
// Block contents are left to the main loop, which tracks braces.
func (s *parseState) parseDeclareStatement(i int) (int, bool) {
	if !hasWordAt(s.code, i, "declare") {
		return i, false
	}
	j := skipSpacesAndComments(s.code, i+7)
	if !hasWordAt(s.code, j, "module") {
		return j, true
	}
	j = skipSpacesAndComments(s.code, j+6)
	if j < s.n && isQuote(s.code[j]) {
		name, next, ok := parseStringLiteral(s.code, j)
		if ok && name != "" {
			s.result.ambientModules = append(s.result.ambientModules, name)
		}
		return next, true
	}
	return j, true
}

func (s *parseState) parseImportStatement(i int) (int, bool) {
	if !hasWordAt(s.code, i, "import") {
		return i, false
	}
	start := i
	i += len("import")
	if i >= s.n {
		return i, true
	}
	// import(...) and import.meta are expressions
	if !(isWhiteSpace(s.code[i]) || s.code[i] == '{' || isQuote(s.code[i]) || s.code[i] == '*' || s.code[i] == '/') {
		return i, true
	}
	i = skipSpacesAndComments(s.code, i)

	typeOnly := false
	if hasWordAt(s.code, i, "type") {
		// `import type from 'm'` and `import type, { a } from 'm'` bind a default named "type"
		j := skipSpacesAndComments(s.code, i+4)
		if j < s.n && (s.code[j] == '{' || s.code[j] == '*' || (isByteIdentifierChar(s.code[j]) && !hasWordAt(s.code, j, "from"))) {
			typeOnly = true
			i = j
		}
	}

	if i < s.n && isQuote(s.code[i]) {
		specifier, next, ok := parseStringLiteral(s.code, i)
		if !ok {
			return next, true
		}
		next = skipImportAttributes(s.code, next)
		end := skipOptionalSemicolon(s.code, next)
		s.result.nodes = append(s.result.nodes, ImportNode{Kind: SideEffectImport, Span: Span{start, end}, Specifier: specifier})
		return end, true
	}

	if i < s.n && isByteIdentifierChar(s.code[i]) {
		name, next := parseIdentifier(s.code, i)
		j := skipSpacesAndComments(s.code, next)
		if j < s.n && s.code[j] == '=' && (j+1 >= s.n || s.code[j+1] != '=') {
			return s.parseImportEquals(start, j+1, name, typeOnly), true
		}
	}

	bindings, next := parseImportBindings(s.code, i, typeOnly)
	specifier, end, ok := parseFromClause(s.code, next)
	if !ok {
		return end, true
	}
	s.result.nodes = append(s.result.nodes, ImportNode{
		Kind:      importKindOf(bindings),
		Span:      Span{start, end},
		Specifier: specifier,
		Bindings:  bindings,
		TypeOnly:  typeOnly,
	})
	return end, true
}

// parseImportEquals handles `import x = require('m')`. Entity aliases such as
// `import x = A.B` are not module imports and produce no node.
func (s *parseState) parseImportEquals(start int, i int, name string, typeOnly bool) int {
	i = skipSpacesAndComments(s.code, i)
	if !hasWordAt(s.code, i, "require") {
		return i
	}
	i = skipSpacesAndComments(s.code, i+len("require"))
	if i >= s.n || s.code[i] != '(' {
		return i
	}
	i = skipSpacesAndComments(s.code, i+1)
	if i >= s.n || !isQuote(s.code[i]) {
		return i
	}
	specifier, next, ok := parseStringLiteral(s.code, i)
	if !ok {
		return next
	}
	i = skipSpacesAndComments(s.code, next)
	if i >= s.n || s.code[i] != ')' {
		return i
	}
	end := skipOptionalSemicolon(s.code, i+1)
	s.result.nodes = append(s.result.nodes, ImportNode{
		Kind:      ImportEquals,
		Span:      Span{start, end},
		Specifier: specifier,
		Bindings:  []Binding{{Kind: BindingDefault, Local: name, IsType: typeOnly}},
		TypeOnly:  typeOnly,
	})
	return end
}

func (s *parseState) parseExportStatement(i int) (int, bool) {
	if !hasWordAt(s.code, i, "export") {
		return i, false
	}
	start := i
	keywordEnd := i + len("export")
	if keywordEnd >= s.n || !(isWhiteSpace(s.code[keywordEnd]) || s.code[keywordEnd] == '{' || s.code[keywordEnd] == '*' || s.code[keywordEnd] == '/') {
		return keywordEnd, true
	}
	modifier := Span{start, keywordEnd}
	i = skipSpacesAndComments(s.code, keywordEnd)
	if i >= s.n {
		return i, true
	}

	typeOnly := false
	if hasWordAt(s.code, i, "type") {
		j := skipSpacesAndComments(s.code, i+4)
		if j < s.n && (s.code[j] == '{' || s.code[j] == '*') {
			typeOnly = true
			i = j
		}
	}

	switch {
	case s.code[i] == '*':
		var bindings []Binding
		next := i + 1
		if b, nsNext, ok := parseNamespaceBinding(s.code, i, typeOnly); ok {
			bindings = append(bindings, b)
			next = nsNext
		}
		specifier, end, ok := parseFromClause(s.code, next)
		if !ok {
			return end, true
		}
		s.result.nodes = append(s.result.nodes, ImportNode{Kind: ExportReexport, Span: Span{start, end}, Specifier: specifier, Bindings: bindings, TypeOnly: typeOnly})
		return end, true

	case s.code[i] == '{':
		bindings, next := parseNamedBindings(s.code, i, typeOnly)
		if specifier, end, ok := parseFromClause(s.code, next); ok {
			s.result.nodes = append(s.result.nodes, ImportNode{Kind: ExportReexport, Span: Span{start, end}, Specifier: specifier, Bindings: bindings, TypeOnly: typeOnly})
			return end, true
		}
		end := skipOptionalSemicolon(s.code, next)
		s.result.declarations = append(s.result.declarations, TopLevelDecl{Kind: DeclExportList, ExportModifier: Span{start, end}})
		return end, true

	case hasWordAt(s.code, i, "default"):
		end := i + len("default")
		s.result.declarations = append(s.result.declarations, TopLevelDecl{Kind: DeclOther, Name: "default", ExportModifier: Span{start, end}})
		return end, true

	case s.code[i] == '=' || hasWordAt(s.code, i, "import") || hasWordAt(s.code, i, "as"):
		// `export = x`, `export import a = b`, `export as namespace X`
		return i + 1, true
	}

	kind, name, next := parseDeclarationName(s.code, i)
	if name != "" || kind == DeclOther {
		s.result.declarations = append(s.result.declarations, TopLevelDecl{Kind: kind, Name: name, ExportModifier: modifier})
	}
	return next, true
}

var declarationModifiers = []string{"declare", "abstract", "async"}

// parseDeclarationName parses the name of the declaration following `export`.
// Handles: const/let/var, [async] function[*], [abstract] class, interface,
// type, [const] enum, namespace/module, optionally prefixed with `declare`.
func parseDeclarationName(code []byte, i int) (kind DeclKind, name string, next int) {
	for {
		matched := false
		for _, modifier := range declarationModifiers {
			if hasWordAt(code, i, modifier) {
				i = skipSpacesAndComments(code, i+len(modifier))
				matched = true
			}
		}
		if !matched {
			break
		}
	}

	if hasWordAt(code, i, "const") {
		j := skipSpacesAndComments(code, i+len("const"))
		if hasWordAt(code, j, "enum") {
			i = j
		}
	}

	for _, kw := range []string{"namespace", "module"} {
		if hasWordAt(code, i, kw) {
			j := skipSpacesAndComments(code, i+len(kw))
			if j < len(code) && isQuote(code[j]) {
				value, next, _ := parseStringLiteral(code, j)
				return DeclNamespace, value, next
			}
			name, next = parseEntityName(code, j)
			return DeclNamespace, name, next
		}
	}

	for _, kw := range []string{"const", "let", "var", "function", "class", "interface", "type", "enum"} {
		if !hasWordAt(code, i, kw) {
			continue
		}
		j := skipSpacesAndComments(code, i+len(kw))
		if j < len(code) && code[j] == '*' {
			j = skipSpacesAndComments(code, j+1)
		}
		name, next = parseIdentifier(code, j)
		return DeclOther, name, next
	}

	return DeclOther, "", i
}

// ParseSource scans TS code and extracts top-level import/export nodes,
// exported declarations and ambient module declarations.
func ParseSource(code []byte) parsedSource {
	return parseSource(code, false)
}

// parseSource is ParseSource with markup elements skipped as a whole when
// markup is set, so their text never reaches the statement scanner.
func parseSource(code []byte, markup bool) parsedSource {
	state := parseState{
		code:   code,
		n:      len(code),
		markup: markup,
		result: parsedSource{
			nodes: make([]ImportNode, 0, 16),
		},
	}
	i := 0
	n := state.n
	depth := 0 // brace depth: static import/export can only appear at depth 0

	for i < n {
		b := code[i]
		switch {
		case b == '\'' || b == '"' || b == '`':
			i = skipToStringEnd(code, i, b)
			if i < n {
				i++ // advance past closing quote
			}
			continue
		case b == '/' && i+1 < n && code[i+1] == '/':
			i = skipLineComment(code, i)
			continue
		case b == '/' && i+1 < n && code[i+1] == '*':
			i = skipBlockComment(code, i)
			continue
		case b == '/' && atExpressionStart(code, i):
			i = skipRegexLiteral(code, i)
			continue
		case b == '<' && state.markup && looksLikeJSX(code, i):
			if end, ok := skipJSXElement(code, i); ok {
				i = end
				continue
			}
		case b == '{':
			depth++
			i++
			continue
		case b == '}':
			if depth > 0 {
				depth--
			}
			i++
			continue
		}

		if depth == 0 && isStatementBoundary(code, i) {
			var next int
			var ok bool
			switch b {
			case 'd':
				next, ok = state.parseDeclareStatement(i)
			case 'i':
				next, ok = state.parseImportStatement(i)
			case 'e':
				next, ok = state.parseExportStatement(i)
			}
			if ok {
				i = next
				continue
			}
		}
		i++
	}

	return state.result
}

// ParseUnit parses text into a SourceUnit identified by path.
func ParseUnit(path string, text []byte) *SourceUnit {
	markup := strings.HasSuffix(path, ".tsx")
	parsed := parseSource(text, markup)
	return &SourceUnit{
		Path:              path,
		Text:              string(text),
		IsMarkup:          markup,
		IsDeclarationOnly: isDeclarationFile(path),
		Nodes:             parsed.nodes,
		Declarations:      parsed.declarations,
		AmbientModules:    parsed.ambientModules,
	}
}

func isDeclarationFile(path string) bool {
	return strings.HasSuffix(path, ".d.ts") || strings.HasSuffix(path, ".d.mts") || strings.HasSuffix(path, ".d.cts")
}
