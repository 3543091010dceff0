// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordGrid server and CLI application.

WordGrid shows the letters A to Z. Picking a letter samples up to five
dictionary words starting with it, shown in alphabetical order; picking a word
opens a web search for it. Which words appear changes on every pick, their
order never does.

# Usage

Print the grid and a sample for one letter:

	wordgrid letters
	wordgrid words q

Browse interactively, either line by line or in a terminal UI:

	wordgrid cli
	wordgrid tui

Serve other processes over msgpack on stdin/stdout, or over HTTP:

	wordgrid serve
	wordgrid http --addr :8080

# Corpus

A word list of about a thousand common English words is compiled in. Use
--corpus (or words.corpus in the config) to read a .txt, .xml or .msgpack list
instead. `wordgrid export words.msgpack` writes the active corpus in the
compact msgpack form.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run:

	[words]
	limit = 5
	seed = 0
	corpus = ""

	[search]
	prefix = "https://www.google.com/search?q="
	dry_run = false

	[server]
	http_addr = ":8080"
	max_limit = 26

	[cli]
	columns = 6

Flags override the file for a single run. With dry_run set, search URLs are
printed or returned but no browser is launched.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordgrid"
	gh      = "https://github.com/bastiangx/wordgrid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
