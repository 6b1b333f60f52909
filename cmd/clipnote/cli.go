package main

import (
	"context"
	"io"
	"time"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/clip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Clipper *clip.Clipper
	Writer  clipnote.ClipWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Clip    ClipCmd    `cmd:"" help:"Clip a URL into a markdown document"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URL     string        `arg:"" help:"Article or video URL to clip"`
	Out     string        `short:"o" default:"." help:"Output directory"`
	Lang    []string      `short:"l" help:"Caption language preference order (repeatable)"`
	Cookies string        `help:"Netscape-format cookie file for cookie-gated captions"`
	Timeout time.Duration `default:"30s" help:"Per-request timeout"`
	Rate    float64       `default:"0" help:"Max requests per second, 0 for unlimited"`
	HTML    bool          `help:"Also write the auxiliary HTML mirror"`
	Verbose bool          `short:"v" help:"Log tier activity to stderr"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
