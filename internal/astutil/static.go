package astutil

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// StaticStringValue resolves an expression node to its string form at
// analysis time, without executing the program. Resolvable shapes: string
// literals (cooked, escapes decoded), numbers, bigints (digit text), the
// boolean and null keywords, regex literals (their /pattern/flags text), and
// template literals with no substitutions. Everything else is not static.
func StaticStringValue(n *sitter.Node, src []byte) (string, bool) {
	switch KindOf(n) {
	case KindString:
		return cookedString(n, src), true
	case KindNumber:
		return numberString(n.Content(src)), true
	case KindRegex:
		return n.Content(src), true
	case KindTrue, KindFalse, KindNull:
		return n.Type(), true
	case KindTemplateString:
		return cookedTemplate(n, src)
	}
	return "", false
}

// StaticPropertyName resolves the property name of a member-like or
// member-access node. A plain identifier key in non-computed position
// resolves directly; computed keys fall back to static value resolution.
// Private names and dynamic keys are not static.
func StaticPropertyName(n *sitter.Node, src []byte) (string, bool) {
	var key *sitter.Node
	switch KindOf(n) {
	case KindPair, KindMethodDefinition, KindFieldDefinition:
		key = keyOf(n)
	case KindMemberExpression:
		key = n.ChildByFieldName("property")
	case KindSubscriptExpression:
		if index := n.ChildByFieldName("index"); index != nil {
			return StaticStringValue(index, src)
		}
		return "", false
	default:
		return "", false
	}
	if key == nil {
		return "", false
	}
	switch KindOf(key) {
	case KindComputedPropertyName:
		for i := 0; i < int(key.NamedChildCount()); i++ {
			inner := key.NamedChild(i)
			if !isCommentToken(inner) {
				return StaticStringValue(inner, src)
			}
		}
		return "", false
	case KindIdentifier, KindPropertyIdentifier:
		return key.Content(src), true
	case KindPrivateIdentifier:
		return "", false
	}
	return StaticStringValue(key, src)
}

// cookedString assembles the runtime value of a string literal from its
// fragment and escape-sequence children.
func cookedString(n *sitter.Node, src []byte) string {
	var b strings.Builder
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "string_fragment":
			b.WriteString(child.Content(src))
		case "escape_sequence":
			b.WriteString(decodeEscape(child.Content(src)))
		}
	}
	return b.String()
}

// cookedTemplate resolves a template literal with no substitutions to its
// single cooked chunk. Templates with embedded expressions are not static.
func cookedTemplate(n *sitter.Node, src []byte) (string, bool) {
	var b strings.Builder
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "template_substitution":
			return "", false
		case "string_fragment":
			b.WriteString(child.Content(src))
		case "escape_sequence":
			b.WriteString(decodeEscape(child.Content(src)))
		}
	}
	return b.String(), true
}

// decodeEscape interprets a single JavaScript escape sequence.
func decodeEscape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}
	switch seq[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		return "\x00"
	case 'x', 'u':
		hex := strings.TrimSuffix(strings.TrimPrefix(seq[2:], "{"), "}")
		if code, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return string(rune(code))
		}
		return seq
	case '\n':
		// Line continuation contributes nothing.
		return ""
	default:
		return seq[1:]
	}
}

// numberString renders a numeric literal the way the runtime would: radix
// prefixes evaluated, separators dropped, bigints reduced to digit text.
func numberString(text string) string {
	s := strings.ReplaceAll(text, "_", "")
	if strings.HasSuffix(s, "n") || strings.HasSuffix(s, "N") {
		s = s[:len(s)-1]
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return strconv.FormatUint(v, 10)
		}
		return s
	}
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return strconv.FormatUint(v, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == float64(int64(f)) {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return text
}
