package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Donghyun-349/clipnote"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	result, err := deps.Clipper.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipnote.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WriteClip(deps.Ctx, result)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipnote.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, path)

	if c.HTML && result.HTML != "" {
		htmlPath := strings.TrimSuffix(path, ".md") + ".html"
		if err := os.WriteFile(htmlPath, []byte(result.HTML), 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clipnote.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, htmlPath)
	}

	return nil
}
