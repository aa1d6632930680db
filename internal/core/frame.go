package core

import "math"

// DrawKind identifies the primitive of a draw command.
type DrawKind int

const (
	DrawFill DrawKind = iota
	DrawRect
	DrawCircle
	DrawHLine
	DrawSprite
	DrawText
	DrawTextCentered
	DrawPanel
)

// DrawCmd is one drawing instruction in world units.
//
// Rect uses X, Y, W, H. Circle and Sprite are centred on X, Y; a circle's
// radius is W. HLine spans X..X+W at height Y. Text starts at X, Y;
// centred text only uses Y. Panels are centred on the screen.
type DrawCmd struct {
	Kind   DrawKind
	X, Y   float64
	W, H   float64
	Rune   rune
	Color  Color
	Text   string
	Lines  []string
	Sprite *Sprite
}

// Frame is a display list produced by a game's Render. It holds no
// reference to game state, so rendering twice from the same state yields
// equal frames.
type Frame struct {
	cmds []DrawCmd
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{cmds: make([]DrawCmd, 0, 32)}
}

// Reset empties the frame, keeping its storage.
func (f *Frame) Reset() {
	f.cmds = f.cmds[:0]
}

// Commands returns the recorded commands in draw order.
func (f *Frame) Commands() []DrawCmd {
	return f.cmds
}

// Fill covers the whole screen.
func (f *Frame) Fill(r rune, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawFill, Rune: r, Color: c})
}

// Rect fills an axis-aligned rectangle.
func (f *Frame) Rect(x, y, w, h float64, r rune, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawRect, X: x, Y: y, W: w, H: h, Rune: r, Color: c})
}

// Circle fills a circle of the given radius centred on (cx, cy).
func (f *Frame) Circle(cx, cy, radius float64, r rune, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawCircle, X: cx, Y: cy, W: radius, Rune: r, Color: c})
}

// HLine draws a one-cell-high line from x to x+w at height y.
func (f *Frame) HLine(x, y, w float64, r rune, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawHLine, X: x, Y: y, W: w, Rune: r, Color: c})
}

// Sprite draws character art centred on (cx, cy).
func (f *Frame) Sprite(cx, cy float64, s *Sprite, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawSprite, X: cx, Y: cy, Sprite: s, Color: c})
}

// Text writes a string starting at (x, y).
func (f *Frame) Text(x, y float64, s string, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawText, X: x, Y: y, Text: s, Color: c})
}

// TextCentered writes a string centred horizontally at height y.
func (f *Frame) TextCentered(y float64, s string, c Color) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawTextCentered, Y: y, Text: s, Color: c})
}

// Panel draws a boxed message in the middle of the screen.
func (f *Frame) Panel(c Color, lines ...string) {
	f.cmds = append(f.cmds, DrawCmd{Kind: DrawPanel, Lines: lines, Color: c})
}

// Rasterize draws the frame onto dst, scaling world to the screen size.
func (f *Frame) Rasterize(dst *Screen, world World) {
	dst.Clear()
	if !world.Valid() || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	sx := float64(dst.Width()) / world.W
	sy := float64(dst.Height()) / world.H

	for _, cmd := range f.cmds {
		switch cmd.Kind {
		case DrawFill:
			dst.DrawRectColored(NewRect(0, 0, dst.Width(), dst.Height()), cmd.Rune, cmd.Color)
		case DrawRect:
			x0, x1 := cellSpan(cmd.X, cmd.X+cmd.W, sx)
			y0, y1 := cellSpan(cmd.Y, cmd.Y+cmd.H, sy)
			dst.DrawRectColored(NewRect(x0, y0, x1-x0, y1-y0), cmd.Rune, cmd.Color)
		case DrawCircle:
			rasterCircle(dst, cmd, sx, sy)
		case DrawHLine:
			x0, x1 := cellSpan(cmd.X, cmd.X+cmd.W, sx)
			row := Clamp(int(math.Floor(cmd.Y*sy)), 0, dst.Height()-1)
			dst.DrawRectColored(NewRect(x0, row, x1-x0, 1), cmd.Rune, cmd.Color)
		case DrawSprite:
			rasterSprite(dst, cmd, sx, sy)
		case DrawText:
			col := int(math.Floor(cmd.X * sx))
			row := Clamp(int(math.Floor(cmd.Y*sy)), 0, dst.Height()-1)
			dst.DrawTextColored(col, row, cmd.Text, cmd.Color)
		case DrawTextCentered:
			row := Clamp(int(math.Floor(cmd.Y*sy)), 0, dst.Height()-1)
			col := (dst.Width() - len([]rune(cmd.Text))) / 2
			dst.DrawTextColored(col, row, cmd.Text, cmd.Color)
		case DrawPanel:
			rasterPanel(dst, cmd)
		}
	}
}

// cellSpan maps the world interval [lo, hi) to cell columns or rows.
// A non-empty interval always covers at least one cell.
func cellSpan(lo, hi, scale float64) (int, int) {
	a := int(math.Round(lo * scale))
	b := int(math.Round(hi * scale))
	if hi > lo && b <= a {
		b = a + 1
	}
	return a, b
}

func rasterCircle(dst *Screen, cmd DrawCmd, sx, sy float64) {
	cx, cy := cmd.X*sx, cmd.Y*sy
	rx, ry := cmd.W*sx, cmd.W*sy
	plotted := false
	if rx > 0 && ry > 0 {
		for row := int(math.Floor(cy - ry)); row <= int(math.Ceil(cy+ry)); row++ {
			for col := int(math.Floor(cx - rx)); col <= int(math.Ceil(cx+rx)); col++ {
				dx := (float64(col) + 0.5 - cx) / rx
				dy := (float64(row) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 {
					dst.SetColored(col, row, cmd.Rune, cmd.Color)
					plotted = true
				}
			}
		}
	}
	if !plotted {
		dst.SetColored(int(math.Floor(cx)), int(math.Floor(cy)), cmd.Rune, cmd.Color)
	}
}

func rasterSprite(dst *Screen, cmd DrawCmd, sx, sy float64) {
	if cmd.Sprite == nil {
		return
	}
	left := int(math.Floor(cmd.X*sx)) - cmd.Sprite.Width()/2
	top := int(math.Floor(cmd.Y*sy)) - cmd.Sprite.Height()/2
	for dy, row := range cmd.Sprite.Rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetColored(left+dx, top+dy, r, cmd.Color)
			}
			dx++
		}
	}
}

// rasterPanel draws lines inside a box centred on the screen, one blank
// row between lines.
func rasterPanel(dst *Screen, cmd DrawCmd) {
	if len(cmd.Lines) == 0 {
		return
	}
	widest := 0
	for _, line := range cmd.Lines {
		widest = Max(widest, len([]rune(line)))
	}

	boxW := widest + 4
	boxH := len(cmd.Lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range cmd.Lines {
		x := boxX + (boxW-len([]rune(line)))/2
		color := ColorDefault
		if i == 0 {
			color = cmd.Color
		}
		dst.DrawTextColored(x, boxY+1+i*2, line, color)
	}
}
