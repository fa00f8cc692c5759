package parser

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Parser parses JavaScript source files using tree-sitter.
type Parser struct {
	js *sitter.Parser
}

// New creates a parser with JavaScript language support.
func New() *Parser {
	js := sitter.NewParser()
	js.SetLanguage(javascript.GetLanguage())
	return &Parser{js: js}
}

// ParseFile parses a single file from disk.
func (p *Parser) ParseFile(ctx context.Context, filePath string) (*File, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("unsupported language for file: %s", filePath)
	}

	return p.ParseContent(ctx, filePath, content)
}

// ParseContent parses source code content. The returned File owns the tree;
// callers release it with Close once the analysis pass is done.
func (p *Parser) ParseContent(ctx context.Context, filePath string, content []byte) (*File, error) {
	tree, err := p.js.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	return &File{
		Path:   filePath,
		Source: content,
		tree:   tree,
	}, nil
}

// File is one parsed source file. Everything derived from it lives exactly
// as long as a single analysis pass; nothing persists across files.
type File struct {
	Path   string
	Source []byte
	tree   *sitter.Tree
}

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Close releases the underlying tree.
func (f *File) Close() {
	f.tree.Close()
}
