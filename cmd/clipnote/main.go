package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/clip"
	"github.com/Donghyun-349/clipnote/fs"
	"github.com/Donghyun-349/clipnote/goquery"
	"github.com/Donghyun-349/clipnote/htmltomarkdown"
	clipnotehttp "github.com/Donghyun-349/clipnote/http"
	"github.com/Donghyun-349/clipnote/readability"
	"github.com/Donghyun-349/clipnote/rod"
	clipnoteslog "github.com/Donghyun-349/clipnote/slog"
	"github.com/Donghyun-349/clipnote/trafilatura"
	"github.com/Donghyun-349/clipnote/youtube"
	"github.com/Donghyun-349/clipnote/ytdlp"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used by extraction tiers. Exposed for end-to-end
	// testing; Run creates one when nil.
	Fetcher clipnote.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clipnote"),
		kong.Description("Clip web articles and video transcripts into markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clipnote --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "clip" {
		m.wireClip(deps, &cli.Clip, stderr)
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

// wireClip assembles the extraction pipeline from the clip command's
// flags: fetcher, image resolver, article tiers, caption tiers, and
// the clip writer.
func (m *Main) wireClip(deps *Dependencies, cmd *ClipCmd, stderr io.Writer) {
	logger := slog.New(slog.DiscardHandler)
	if cmd.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if m.Fetcher == nil {
		fetchOpts := []clipnotehttp.Option{clipnotehttp.WithTimeout(cmd.Timeout)}
		if cmd.Rate > 0 {
			fetchOpts = append(fetchOpts, clipnotehttp.WithRateLimit(cmd.Rate))
		}
		m.Fetcher = clipnotehttp.NewFetcher(fetchOpts...)
	}

	conv := htmltomarkdown.NewConverter()
	images := fs.NewImageResolver(cmd.Out)

	blog := clipnoteslog.NewLoggingExtractor(goquery.NewBlogExtractor(m.Fetcher, images), "blog", logger)
	fallback := clipnoteslog.NewLoggingExtractor(goquery.NewFallbackExtractor(m.Fetcher, images), "fallback", logger)
	article := clipnoteslog.NewLoggingExtractor(trafilatura.NewExtractor(m.Fetcher, conv, images), "article", logger)
	readable := clipnoteslog.NewLoggingExtractor(readability.NewExtractor(m.Fetcher, conv), "readability", logger)

	languages := cmd.Lang
	if len(languages) == 0 {
		languages = clipnote.DefaultLanguages
	}
	cookiePath := cmd.Cookies
	if cookiePath == "" {
		cookiePath = clipnote.DefaultCookiePath()
	}
	cfg := clipnote.CaptionConfig{
		Languages:  languages,
		CookiePath: cookiePath,
		Timeout:    cmd.Timeout,
	}

	api := youtube.NewClient(cfg)
	downloader := ytdlp.NewClient(cfg, m.Fetcher)
	browser := rod.NewTranscriptScraper(cfg)

	deps.Clipper = clip.New(
		clip.WithBlogTiers(blog, fallback),
		clip.WithArticleTiers(article, readable, fallback),
		clip.WithCaptionTiers(
			clipnoteslog.NewLoggingCaptionSource(api, "api", logger),
			clipnoteslog.NewLoggingCaptionSource(downloader, "downloader", logger),
			clipnoteslog.NewLoggingCaptionSource(browser, "browser", logger),
		),
		clip.WithMetadataTiers(api, downloader),
	)
	deps.Writer = fs.NewWriter(cmd.Out)
}
