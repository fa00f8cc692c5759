package astutil

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// FunctionNameWithKind builds a human-readable name-and-kind label for a
// function-like node from its structural context, e.g. "function 'test'",
// "static async method 'fetch'", "getter 'size'", "arrow function",
// "constructor". The label is lowercase; callers capitalize at the
// reporting boundary.
//
// The label is an ordered word sequence: modifiers (static, private), then
// async/generator, then the kind word, then the name suffix. A class
// constructor short-circuits to the bare word "constructor".
func FunctionNameWithKind(fn *sitter.Node, src []byte) string {
	member := memberOf(fn)
	memberKind := KindOf(member)

	var words []string

	if memberKind == KindMethodDefinition || memberKind == KindFieldDefinition {
		if hasKeyword(member, "static") {
			words = append(words, "static")
		}
		if key := keyOf(member); KindOf(key) == KindPrivateIdentifier {
			words = append(words, "private")
		}
	}
	if IsAsync(fn) {
		words = append(words, "async")
	}
	if IsGenerator(fn) {
		words = append(words, "generator")
	}

	switch memberKind {
	case KindPair, KindMethodDefinition:
		if isConstructor(member, src) {
			return "constructor"
		}
		switch accessorKind(member) {
		case "get":
			words = append(words, "getter")
		case "set":
			words = append(words, "setter")
		default:
			words = append(words, "method")
		}
	case KindFieldDefinition:
		words = append(words, "method")
	default:
		if KindOf(fn) == KindArrowFunction {
			words = append(words, "arrow")
		}
		words = append(words, "function")
	}

	if member != nil {
		if key := keyOf(member); KindOf(key) == KindPrivateIdentifier {
			words = append(words, key.Content(src))
		} else if name, ok := StaticPropertyName(member, src); ok {
			words = append(words, "'"+name+"'")
		} else if !sameNode(member, fn) {
			// A named function expression assigned to an unresolvable key
			// still contributes its own name.
			if id := fn.ChildByFieldName("name"); id != nil {
				words = append(words, "'"+id.Content(src)+"'")
			}
		}
	} else if id := fn.ChildByFieldName("name"); id != nil {
		words = append(words, "'"+id.Content(src)+"'")
	}

	return strings.Join(words, " ")
}

// FunctionHeadLoc computes the span to highlight when reporting on a
// function-like node: the head (modifiers, key or name, or the arrow
// token), never the parameter list or body.
//
// Members span from the start of the enclosing member (covering static/get/
// set/async modifiers and the key) to the opening-parameter boundary. A
// standalone arrow function is anchored to its "=>" token alone. Any other
// function spans from its own start to the opening-parameter boundary.
func FunctionHeadLoc(fn *sitter.Node) Span {
	if member := memberOf(fn); member != nil {
		return Span{Start: StartOf(member), End: headEnd(fn)}
	}
	if KindOf(fn) == KindArrowFunction {
		if arrow := arrowTokenOf(fn); arrow != nil {
			return Span{Start: StartOf(arrow), End: EndOf(arrow)}
		}
	}
	return Span{Start: StartOf(fn), End: headEnd(fn)}
}

func headEnd(fn *sitter.Node) Position {
	if open := OpeningParenOfParams(fn); open != nil {
		return StartOf(open)
	}
	// Malformed shape; fall back to the node end rather than fail.
	return EndOf(fn)
}

// arrowTokenOf finds the "=>" of an arrow function by scanning back from
// its body, so arrows nested in default parameter values are not picked up.
func arrowTokenOf(fn *sitter.Node) *sitter.Node {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return FirstToken(fn, IsArrowToken)
	}
	for tok := TokenBefore(firstLeaf(body)); tok != nil; tok = TokenBefore(tok) {
		if IsArrowToken(tok) {
			return tok
		}
		if tok.StartByte() < fn.StartByte() {
			return nil
		}
	}
	return nil
}
