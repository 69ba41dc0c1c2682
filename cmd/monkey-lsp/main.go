// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"monkey/internal/config"
	"monkey/internal/lsp"
)

const lsName = "monkey" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr unless a file is set
	var logPath *string
	if cfg.Log.Path != "" {
		logPath = &cfg.Log.Path
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	log := commonlog.GetLogger(lsName)

	parserOpts, err := cfg.ParserOptions()
	if err != nil {
		log.Errorf("invalid parser options: %s", err)
		os.Exit(1)
	}

	monkeyHandler := lsp.NewMonkeyHandler(parserOpts...)

	handler = protocol.Handler{
		Initialize:                     monkeyHandler.Initialize,
		Initialized:                    monkeyHandler.Initialized,
		Shutdown:                       monkeyHandler.Shutdown,
		SetTrace:                       monkeyHandler.SetTrace,
		TextDocumentDidOpen:            monkeyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           monkeyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          monkeyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         monkeyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: monkeyHandler.TextDocumentSemanticTokensFull,
	}

	// debug=false keeps glsp's own message tracing off
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting monkey LSP server %s", lsp.Version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("server stopped: %s", err)
		os.Exit(1)
	}
}
