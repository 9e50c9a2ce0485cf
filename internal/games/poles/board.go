package poles

import (
	"fmt"

	"github.com/vovakirdan/tui-poles/internal/core"
)

// CellColumns is the number of terminal columns used to draw one lane cell,
// which keeps cells roughly square in a terminal font.
const CellColumns = 2

// Theme controls the glyphs and colors used to draw the lane.
// Glyphs hold one or two runes; a single rune is repeated to fill the cell.
type Theme struct {
	Empty string
	Pole  string
	Bird  string

	EmptyColor core.Color
	PoleColor  core.Color
	BirdColor  core.Color
	FrameColor core.Color
	TextColor  core.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Empty:      "· ",
		Pole:       "██",
		Bird:       "()",
		EmptyColor: core.ColorGray,
		PoleColor:  core.ColorGreen,
		BirdColor:  core.ColorBrightYellow,
		FrameColor: core.ColorGray,
		TextColor:  core.ColorBrightWhite,
	}
}

// LaneWidth derives the lane width from the display width in columns,
// leaving room for the frame and capping at MaxLaneWidth.
func LaneWidth(displayCols int) int {
	return min(max((displayCols-2)/CellColumns, MinLaneWidth), MaxLaneWidth)
}

// Board is a Sink that keeps the latest frame and paints it into a screen buffer.
// It also carries the info panel shown between runs.
type Board struct {
	width  int
	height int
	theme  Theme

	poles    []Pole
	bird     Position
	hasFrame bool

	score       int
	infoVisible bool
	gameOver    bool
	finalScore  int
}

// NewBoard creates a board for a lane of the given width.
func NewBoard(width int, theme Theme) *Board {
	return &Board{
		width:       width,
		height:      LaneHeight,
		theme:       theme,
		infoVisible: true,
	}
}

// Render stores a copy of the frame.
func (b *Board) Render(poles []Pole, bird Position) {
	b.poles = append(b.poles[:0], poles...)
	b.bird = bird
	b.hasFrame = true
}

// ScoreChanged updates the score display.
func (b *Board) ScoreChanged(score int) {
	b.score = score
}

// GameOver records the result shown in the info panel.
func (b *Board) GameOver(score int) {
	b.gameOver = true
	b.finalScore = score
}

// SetInfoVisible shows or hides the info panel.
func (b *Board) SetInfoVisible(visible bool) {
	b.infoVisible = visible
	if !visible {
		b.gameOver = false
	}
}

// InfoVisible reports whether the info panel is shown.
func (b *Board) InfoVisible() bool {
	return b.infoVisible
}

// Score returns the displayed score.
func (b *Board) Score() int {
	return b.score
}

// Size returns the screen footprint of the board: the header row plus the framed lane.
func (b *Board) Size() (w, h int) {
	return b.width*CellColumns + 2, b.height + 3
}

// Draw paints the board into dst.
func (b *Board) Draw(dst *core.Screen) {
	dst.Clear()

	w, _ := b.Size()
	dst.DrawTextColored(1, 0, "POLES", b.theme.TextColor)
	scoreText := fmt.Sprintf("Score: %d", b.score)
	dst.DrawTextColored(w-1-len(scoreText), 0, scoreText, b.theme.TextColor)

	frame := core.NewRect(0, 1, w, b.height+2)
	dst.DrawBox(frame, b.theme.FrameColor)

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.drawCell(dst, x, y, b.theme.Empty, b.theme.EmptyColor)
		}
	}

	for _, p := range b.poles {
		for y := max(p.Y, 0); y < min(p.End(), b.height); y++ {
			b.drawCell(dst, p.X, y, b.theme.Pole, b.theme.PoleColor)
		}
	}

	if b.hasFrame {
		b.drawCell(dst, b.bird.X, b.bird.Y, b.theme.Bird, b.theme.BirdColor)
	}

	if b.infoVisible {
		b.drawInfo(dst, frame)
	}
}

// drawCell paints one lane cell; cells outside the lane are ignored.
func (b *Board) drawCell(dst *core.Screen, x, y int, glyph string, c core.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	runes := []rune(glyph)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	sx := 1 + x*CellColumns
	for i := 0; i < CellColumns; i++ {
		dst.SetColored(sx+i, 2+y, runes[i%len(runes)], c)
	}
}

// drawInfo paints the panel centered on the lane.
func (b *Board) drawInfo(dst *core.Screen, frame core.Rect) {
	lines := []string{"P O L E S", ""}
	if b.gameOver {
		lines = append(lines, "Game Over!", fmt.Sprintf("Your score: %d", b.finalScore), "")
	}
	for _, a := range []core.Action{core.ActionStart, core.ActionUp, core.ActionDown, core.ActionQuit} {
		if bind, ok := core.BindingFor(a); ok {
			lines = append(lines, fmt.Sprintf("%-11s %s", bind.Label, bind.Help))
		}
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	box := core.NewRect(
		frame.X+(frame.W-boxW)/2,
		frame.Y+(frame.H-boxH)/2,
		boxW,
		boxH,
	)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, b.theme.FrameColor)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, b.theme.TextColor)
	}
}
