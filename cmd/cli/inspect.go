package main

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/spf13/cobra"

	"github.com/paramlint/paramlint/internal/astutil"
	"github.com/paramlint/paramlint/internal/parser"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the kind label, parameter count, and head span of every function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := parser.New()
			file, err := p.ParseFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			w := os.Stdout
			astutil.Walk(file.Root(), func(n *sitter.Node) {
				if !astutil.KindOf(n).IsFunctionLike() {
					return
				}
				label := astutil.FunctionNameWithKind(n, file.Source)
				loc := astutil.FunctionHeadLoc(n)
				fmt.Fprintf(w, "%d:%d-%d:%d  %-40s  %d params\n",
					loc.Start.Line, loc.Start.Column, loc.End.Line, loc.End.Column,
					label, astutil.ParamCount(n))
			})
			return nil
		},
	}

	return cmd
}
