package mock

import "github.com/Donghyun-349/clipnote"

var _ clipnote.Converter = (*Converter)(nil)

// Converter is a mock implementation of clipnote.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
