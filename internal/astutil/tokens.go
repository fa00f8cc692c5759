package astutil

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Tokens are the leaf nodes of the concrete syntax tree, ordered by source
// position. All queries skip comment leaves, mirroring a lint host's token
// stream.

// Position is a 1-based line/column source location.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span is a source range between two positions. Spans are plain values;
// callers receive fresh copies, never references into tree-owned data.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func positionAt(p sitter.Point) Position {
	return Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

// StartOf returns the starting position of a node or token.
func StartOf(n *sitter.Node) Position {
	return positionAt(n.StartPoint())
}

// EndOf returns the position just past a node or token.
func EndOf(n *sitter.Node) Position {
	return positionAt(n.EndPoint())
}

// IsOpeningParenToken reports whether tok is a "(" punctuator.
func IsOpeningParenToken(tok *sitter.Node) bool {
	return tok != nil && !tok.IsNamed() && tok.Type() == "("
}

// IsArrowToken reports whether tok is a "=>" punctuator.
func IsArrowToken(tok *sitter.Node) bool {
	return tok != nil && !tok.IsNamed() && tok.Type() == "=>"
}

func isCommentToken(tok *sitter.Node) bool {
	return tok.Type() == "comment"
}

func firstLeaf(n *sitter.Node) *sitter.Node {
	for n.ChildCount() > 0 {
		n = n.Child(0)
	}
	return n
}

func lastLeaf(n *sitter.Node) *sitter.Node {
	for n.ChildCount() > 0 {
		n = n.Child(int(n.ChildCount()) - 1)
	}
	return n
}

func nextLeaf(n *sitter.Node) *sitter.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if sib := cur.NextSibling(); sib != nil {
			return firstLeaf(sib)
		}
	}
	return nil
}

func prevLeaf(n *sitter.Node) *sitter.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if sib := cur.PrevSibling(); sib != nil {
			return lastLeaf(sib)
		}
	}
	return nil
}

// FirstToken returns the first token within node matching pred. A nil pred
// matches any token.
func FirstToken(node *sitter.Node, pred func(*sitter.Node) bool) *sitter.Node {
	for tok := firstLeaf(node); tok != nil && tok.EndByte() <= node.EndByte(); tok = nextLeaf(tok) {
		if isCommentToken(tok) {
			continue
		}
		if pred == nil || pred(tok) {
			return tok
		}
	}
	return nil
}

// TokenAfter returns the first token after node matching pred, searching the
// whole remaining stream. A nil pred matches any token.
func TokenAfter(node *sitter.Node, pred func(*sitter.Node) bool) *sitter.Node {
	for tok := nextLeaf(lastLeaf(node)); tok != nil; tok = nextLeaf(tok) {
		if isCommentToken(tok) {
			continue
		}
		if pred == nil || pred(tok) {
			return tok
		}
	}
	return nil
}

// TokenBefore returns the token immediately preceding tok.
func TokenBefore(tok *sitter.Node) *sitter.Node {
	for t := prevLeaf(tok); t != nil; t = prevLeaf(t) {
		if !isCommentToken(t) {
			return t
		}
	}
	return nil
}

// singleParam returns the sole parameter node of an arrow function with
// exactly one parameter, in either surface form: the bare `parameter` field
// (x => x) or a one-entry parenthesized list ((x) => x). Nil otherwise.
func singleParam(arrow *sitter.Node) *sitter.Node {
	if p := arrow.ChildByFieldName("parameter"); p != nil {
		return p
	}
	params := arrow.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var only *sitter.Node
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		if isCommentToken(child) {
			continue
		}
		if only != nil {
			return nil
		}
		only = child
	}
	return only
}

// ParamCount returns the number of declared parameter slots. Rest, default,
// and destructuring parameters each count as one.
func ParamCount(fn *sitter.Node) int {
	if fn.ChildByFieldName("parameter") != nil {
		return 1
	}
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		if !isCommentToken(params.NamedChild(i)) {
			count++
		}
	}
	return count
}

// OpeningParenOfParams locates the token that opens the parameter list of a
// function-like node. For an arrow function with exactly one parameter the
// parameter's own first token marks the boundary when no parenthesis
// precedes it; a directly preceding "(" wins when present. Named functions
// search for the first "(" after the name, anonymous ones for the first "("
// anywhere inside the node.
func OpeningParenOfParams(fn *sitter.Node) *sitter.Node {
	if KindOf(fn) == KindArrowFunction {
		if param := singleParam(fn); param != nil {
			argTok := FirstToken(param, nil)
			if argTok == nil {
				return nil
			}
			if before := TokenBefore(argTok); IsOpeningParenToken(before) {
				return before
			}
			return argTok
		}
	}
	if name := fn.ChildByFieldName("name"); name != nil {
		return TokenAfter(name, IsOpeningParenToken)
	}
	return FirstToken(fn, IsOpeningParenToken)
}
