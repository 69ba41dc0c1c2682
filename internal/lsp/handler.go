package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/ast"
	"monkey/internal/parser"
)

var log = commonlog.GetLogger("monkey.lsp")

// Version is reported to clients in the initialize response.
var Version = "0.1.0"

// Semantic token types reported by the server, in legend order
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"operator",
}

// Semantic token modifiers, in legend order
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// document is the server's view of one open file.
type document struct {
	text    string
	program *ast.Program
	errors  []*parser.ParseError
}

// MonkeyHandler implements the LSP server handlers for monkey sources.
// Documents are kept in memory from the text the client sends, so unsaved
// edits are analysed too.
type MonkeyHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	options   []parser.Option
}

// NewMonkeyHandler creates a handler that parses with opts.
func NewMonkeyHandler(opts ...parser.Option) *MonkeyHandler {
	return &MonkeyHandler{
		documents: make(map[protocol.DocumentUri]*document),
		options:   opts,
	}
}

// Initialize advertises full document sync, completion and semantic tokens.
func (h *MonkeyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "monkey",
			Version: &Version,
		},
	}, nil
}

func (h *MonkeyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *MonkeyHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *MonkeyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *MonkeyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	doc := h.update(uri, params.TextDocument.Text)
	publishDiagnostics(ctx, uri, ConvertParseErrors(doc.errors))

	return nil
}

func (h *MonkeyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	text := ""
	if doc, ok := h.documents[uri]; ok {
		text = doc.text
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			start, end := c.Range.IndexesIn(text)
			text = text[:start] + c.Text + text[end:]
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	doc := h.update(uri, text)
	publishDiagnostics(ctx, uri, ConvertParseErrors(doc.errors))

	return nil
}

func (h *MonkeyHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.documents, uri)
	h.mu.Unlock()

	// clear the editor's problem list for the file
	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})

	return nil
}

// TextDocumentCompletion offers the keywords and every name bound in the
// document by a let statement or a function parameter.
func (h *MonkeyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, err := h.lookup(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        collectCompletions(doc.program),
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document.
func (h *MonkeyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.lookup(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.text, doc.program)

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

// update re-parses text and stores the result under uri.
func (h *MonkeyHandler) update(uri protocol.DocumentUri, text string) *document {
	program, errs := parser.ParseSource(text, h.options...)
	doc := &document{text: text, program: program, errors: errs}

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()

	if len(errs) > 0 {
		log.Debugf("%s: %d parse errors", uri, len(errs))
	}

	return doc
}

func (h *MonkeyHandler) lookup(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
