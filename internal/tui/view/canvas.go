package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BaseStyle is the index of the style a canvas is created with.
const BaseStyle = 0

// Canvas is a fixed-size grid of styled cells. lipgloss styles are not
// comparable, so cells refer to styles by index.
type Canvas struct {
	width  int
	height int
	runes  [][]rune
	style  [][]int
	styles []lipgloss.Style
}

// NewCanvas returns a blank canvas filled with base.
func NewCanvas(width, height int, base lipgloss.Style) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		runes:  make([][]rune, height),
		style:  make([][]int, height),
		styles: []lipgloss.Style{base},
	}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.style[y] = make([]int, width)
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in lines.
func (c *Canvas) Height() int { return c.height }

// AddStyle registers a style and returns its index.
func (c *Canvas) AddStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

// Set writes one cell. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.style[y][x] = style
}

// Fill paints a rectangle with r.
func (c *Canvas) Fill(x, y, w, h int, r rune, style int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.Set(xx, yy, r, style)
		}
	}
}

// Text writes s from x, truncated to width cells with an ellipsis.
func (c *Canvas) Text(x, y, width int, s string, style int) {
	if width <= 0 {
		return
	}
	s = ansi.Truncate(s, width, "…")
	for _, r := range s {
		if width <= 0 {
			return
		}
		c.Set(x, y, r, style)
		x++
		width--
	}
}

// Render renders each line, merging runs that share a style.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.style[y][x] == c.style[y][start] {
				continue
			}
			b.WriteString(c.styles[c.style[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
