// Package imagegen simulates the product image generation collaborator:
// deterministic output after a fixed artificial delay, one attempt per
// call.
package imagegen

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

var ErrEmptyPrompt = errors.New("imagegen: prompt must not be empty")

type Generator struct {
	delay   time.Duration
	baseURL string
}

func NewGenerator() *Generator {
	return &Generator{
		delay:   300 * time.Millisecond,
		baseURL: "https://images.marketplace.local",
	}
}

// Generate returns the URL a generated product image would live at.
func (g *Generator) Generate(prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	time.Sleep(g.delay)

	return fmt.Sprintf("%s/%s.webp", g.baseURL, slug.Make(prompt)), nil
}
