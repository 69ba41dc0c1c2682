package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/ast"
	"monkey/internal/token"
)

// collectCompletions lists the keywords followed by the names bound in the
// program, each name once in order of first declaration.
func collectCompletions(program *ast.Program) []protocol.CompletionItem {
	var items []protocol.CompletionItem

	for _, kw := range token.Keywords() {
		items = append(items, completionItem(kw, protocol.CompletionItemKindKeyword, "keyword"))
	}

	if program == nil {
		return items
	}

	seen := make(map[string]bool)
	add := func(name string, kind protocol.CompletionItemKind, detail string) {
		if seen[name] {
			return
		}
		seen[name] = true
		items = append(items, completionItem(name, kind, detail))
	}

	ast.Inspect(program, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.LetStmt:
			if _, ok := n.Value.(*ast.FunctionLiteral); ok {
				add(n.Name.Name, protocol.CompletionItemKindFunction, "let binding")
			} else {
				add(n.Name.Name, protocol.CompletionItemKindVariable, "let binding")
			}
		case *ast.FunctionLiteral:
			for _, param := range n.Params {
				add(param.Name, protocol.CompletionItemKindVariable, "parameter")
			}
		}
		return true
	})

	return items
}

func completionItem(label string, kind protocol.CompletionItemKind, detail string) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:  label,
		Kind:   &kind,
		Detail: &detail,
	}
}
