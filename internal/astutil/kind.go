package astutil

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// NodeKind is a closed tagged view over the tree-sitter node types the
// analysis cares about. Dispatching on NodeKind instead of raw type strings
// keeps the classification logic exhaustive: a grammar node we have not
// enumerated maps to KindUnknown and is ignored rather than half-handled.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunction
	KindMethodDefinition
	KindFieldDefinition
	KindPair
	KindMemberExpression
	KindSubscriptExpression
	KindComputedPropertyName
	KindIdentifier
	KindPropertyIdentifier
	KindPrivateIdentifier
	KindString
	KindNumber
	KindRegex
	KindTemplateString
	KindTrue
	KindFalse
	KindNull
	KindClassBody
	// kindCount marks the end of the enum for exhaustiveness checks.
	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:              "unknown",
	KindFunctionDeclaration:  "function_declaration",
	KindFunctionExpression:   "function_expression",
	KindArrowFunction:        "arrow_function",
	KindMethodDefinition:     "method_definition",
	KindFieldDefinition:      "field_definition",
	KindPair:                 "pair",
	KindMemberExpression:     "member_expression",
	KindSubscriptExpression:  "subscript_expression",
	KindComputedPropertyName: "computed_property_name",
	KindIdentifier:           "identifier",
	KindPropertyIdentifier:   "property_identifier",
	KindPrivateIdentifier:    "private_identifier",
	KindString:               "string",
	KindNumber:               "number",
	KindRegex:                "regex",
	KindTemplateString:       "template_string",
	KindTrue:                 "true",
	KindFalse:                "false",
	KindNull:                 "null",
	KindClassBody:            "class_body",
}

func (k NodeKind) String() string {
	if k < 0 || k >= kindCount {
		return "invalid"
	}
	return kindNames[k]
}

// KindOf maps a tree-sitter node onto the closed NodeKind set. Generator
// functions collapse onto their non-generator kind; generator-ness is a flag
// queried separately (IsGenerator). The "function" spelling is the function
// expression node type of older grammar revisions.
func KindOf(n *sitter.Node) NodeKind {
	if n == nil {
		return KindUnknown
	}
	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return KindFunctionDeclaration
	case "function", "function_expression", "generator_function":
		return KindFunctionExpression
	case "arrow_function":
		return KindArrowFunction
	case "method_definition":
		return KindMethodDefinition
	case "field_definition", "public_field_definition":
		return KindFieldDefinition
	case "pair":
		return KindPair
	case "member_expression":
		return KindMemberExpression
	case "subscript_expression":
		return KindSubscriptExpression
	case "computed_property_name":
		return KindComputedPropertyName
	case "identifier":
		return KindIdentifier
	case "property_identifier", "shorthand_property_identifier":
		return KindPropertyIdentifier
	case "private_property_identifier":
		return KindPrivateIdentifier
	case "string":
		return KindString
	case "number":
		return KindNumber
	case "regex":
		return KindRegex
	case "template_string":
		return KindTemplateString
	case "true":
		return KindTrue
	case "false":
		return KindFalse
	case "null":
		return KindNull
	case "class_body":
		return KindClassBody
	}
	return KindUnknown
}

// IsFunctionLike reports whether the kind is one of the function-like node
// kinds the max-params rule visits. A method_definition is its own function
// in this grammar; there is no separate inner function expression node.
func (k NodeKind) IsFunctionLike() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction, KindMethodDefinition:
		return true
	}
	return false
}

// IsMemberLike reports whether the kind represents an object-literal
// property, a class method, or a class field.
func (k NodeKind) IsMemberLike() bool {
	switch k {
	case KindPair, KindMethodDefinition, KindFieldDefinition:
		return true
	}
	return false
}

// memberOf resolves the member-like context of a function-like node: the
// node itself for a method definition, or the enclosing pair / class field
// when the function is that member's value. Returns nil for standalone
// functions.
func memberOf(fn *sitter.Node) *sitter.Node {
	if KindOf(fn) == KindMethodDefinition {
		return fn
	}
	parent := fn.Parent()
	if parent == nil {
		return nil
	}
	switch KindOf(parent) {
	case KindPair, KindFieldDefinition:
		if value := parent.ChildByFieldName("value"); value != nil && sameNode(value, fn) {
			return parent
		}
	}
	return nil
}

// sameNode compares nodes by source extent; tree-sitter hands out fresh
// wrapper values on every child access.
func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// keyOf returns the property-key node of a member-like node.
func keyOf(member *sitter.Node) *sitter.Node {
	switch KindOf(member) {
	case KindPair:
		return member.ChildByFieldName("key")
	case KindMethodDefinition:
		return member.ChildByFieldName("name")
	case KindFieldDefinition:
		return member.ChildByFieldName("property")
	}
	return nil
}

// hasKeyword reports whether node has a direct anonymous child with the
// given literal value, e.g. "async", "static", "get", "set", "*".
func hasKeyword(n *sitter.Node, keyword string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && child.Type() == keyword {
			return true
		}
	}
	return false
}

// IsAsync reports whether the function-like node carries the async modifier.
func IsAsync(fn *sitter.Node) bool {
	return hasKeyword(fn, "async")
}

// IsGenerator reports whether the function-like node is a generator. Plain
// functions use dedicated generator node types; methods carry a "*" child.
func IsGenerator(fn *sitter.Node) bool {
	switch fn.Type() {
	case "generator_function", "generator_function_declaration":
		return true
	}
	return hasKeyword(fn, "*")
}

// accessorKind returns "get" or "set" for accessor method definitions and
// "" for everything else.
func accessorKind(member *sitter.Node) string {
	if KindOf(member) != KindMethodDefinition {
		return ""
	}
	if hasKeyword(member, "get") {
		return "get"
	}
	if hasKeyword(member, "set") {
		return "set"
	}
	return ""
}

// isConstructor reports whether member is a class constructor: a non-static,
// non-accessor class method whose literal (non-computed) key names
// "constructor". Object-literal methods named constructor are plain methods.
func isConstructor(member *sitter.Node, src []byte) bool {
	if KindOf(member) != KindMethodDefinition {
		return false
	}
	if parent := member.Parent(); parent == nil || KindOf(parent) != KindClassBody {
		return false
	}
	if hasKeyword(member, "static") || accessorKind(member) != "" {
		return false
	}
	key := keyOf(member)
	if key == nil {
		return false
	}
	switch KindOf(key) {
	case KindPropertyIdentifier:
		return key.Content(src) == "constructor"
	case KindString:
		name, ok := StaticStringValue(key, src)
		return ok && name == "constructor"
	}
	return false
}

// Walk visits every node under root in pre-order.
func Walk(root *sitter.Node, visit func(*sitter.Node)) {
	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	for {
		visit(cursor.CurrentNode())

		if cursor.GoToFirstChild() {
			continue
		}

		for {
			if cursor.GoToNextSibling() {
				break
			}
			if !cursor.GoToParent() {
				return
			}
		}
	}
}
