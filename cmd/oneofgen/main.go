// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command oneofgen renders the fixed arity containers of package oneof.
//
// Flags override values read from the config file, which defaults to
// oneofgen.yaml and is rendered as a text/template before it is parsed:
//
//	package: {{ env "ONEOF_PACKAGE" | default "oneof" }}
//	maxArity: 4
//	output: .
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/z5labs/oneof/pkg/slogfield"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := buildCmd(os.Stderr).ExecuteContext(ctx)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("oneofgen failed", slogfield.Error(err))
		cancel()
		os.Exit(1)
	}
}
