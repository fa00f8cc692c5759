package rule

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/paramlint/paramlint/internal/astutil"
	"github.com/paramlint/paramlint/internal/parser"
)

// RuleName identifies the max-params rule in configuration and reports.
const RuleName = "max-params"

// MessageIDExceed is the message identifier carried by every violation.
const MessageIDExceed = "exceed"

// Limits holds the two independent parameter-count limits. A nil limit means
// that category is unchecked: no comparison is ever made against an absent
// bound.
type Limits struct {
	// Func applies to every function-like node that is not a constructor.
	Func *int `yaml:"func,omitempty" json:"func,omitempty"`
	// Constructor applies to class constructors only.
	Constructor *int `yaml:"constructor,omitempty" json:"constructor,omitempty"`
}

// Validate rejects negative limits. Absent limits are valid.
func (l Limits) Validate() error {
	if l.Func != nil && *l.Func < 0 {
		return fmt.Errorf("func limit must be a non-negative integer, got %d", *l.Func)
	}
	if l.Constructor != nil && *l.Constructor < 0 {
		return fmt.Errorf("constructor limit must be a non-negative integer, got %d", *l.Constructor)
	}
	return nil
}

// Violation is one offending function-like node.
type Violation struct {
	// Path of the source file the node came from.
	Path string
	// Loc is the head span to highlight: the function's name, modifiers, or
	// arrow token, never its body.
	Loc astutil.Span
	// Node references the offending node for host-side anchoring.
	Node *sitter.Node
	// MessageID selects the message template.
	MessageID string
	// Name is the capitalized kind-and-name label, e.g. "Method 'update'".
	Name string
	// Count is the declared parameter count.
	Count int
	// Max is the limit that was exceeded.
	Max int
}

// Message renders the violation message.
func (v Violation) Message() string {
	return fmt.Sprintf("%s has too many parameters (%d). Maximum allowed is %d.", v.Name, v.Count, v.Max)
}

// MaxParams flags functions, methods, and constructors whose parameter count
// exceeds the configured limits.
type MaxParams struct {
	limits Limits
}

// NewMaxParams creates the rule with the given limits.
func NewMaxParams(limits Limits) *MaxParams {
	return &MaxParams{limits: limits}
}

// Name returns the rule identifier.
func (r *MaxParams) Name() string { return RuleName }

// Check runs a single pass over the file's function-like nodes. Each node is
// classified and checked independently; traversal order affects only the
// order of the returned violations, never their content.
func (r *MaxParams) Check(file *parser.File) []Violation {
	var violations []Violation

	astutil.Walk(file.Root(), func(n *sitter.Node) {
		if !astutil.KindOf(n).IsFunctionLike() {
			return
		}

		label := astutil.FunctionNameWithKind(n, file.Source)
		limit := r.limits.Func
		if label == "constructor" {
			limit = r.limits.Constructor
		}
		if limit == nil {
			return
		}

		count := astutil.ParamCount(n)
		if count <= *limit {
			return
		}

		violations = append(violations, Violation{
			Path:      file.Path,
			Loc:       astutil.FunctionHeadLoc(n),
			Node:      n,
			MessageID: MessageIDExceed,
			Name:      capitalize(label),
			Count:     count,
			Max:       *limit,
		})
	})

	return violations
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
