package main

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// renderBoardSVG draws the board, tiles and captions as an SVG document.
// Board pixel space has y growing upward, SVG the other way around, so rows
// are mirrored here.
func renderBoardSVG(w io.Writer, state GameState, result GameResult, layout BoardLayout) {
	span := layout.PixelSpan()
	square := layout.SquareSize()
	pad := square / 2
	canvasSize := span + square

	// Board y to SVG y for a point.
	toSVG := func(x, y int) (int, int) {
		return pad + (x + span/2), pad + span - (y + span/2)
	}

	canvas := svg.New(w)
	canvas.Start(canvasSize, canvasSize)
	canvas.Rect(0, 0, canvasSize, canvasSize, "fill:white")
	canvas.Rect(pad, pad, span, span, "fill:forestgreen;stroke:black")

	for i := 0; i <= state.Board.Size(); i++ {
		offset := pad + i*square
		canvas.Line(pad, offset, pad+span, offset, "stroke:black")
		canvas.Line(offset, pad, offset, pad+span, "stroke:black")
	}

	radius := (square - 10) / 2
	for location := 0; location < state.Board.Squares(); location++ {
		cell := state.Board.At(location)
		if cell == CellEmpty {
			continue
		}
		cx, cy := layout.SquareCenter(location)
		sx, sy := toSVG(cx, cy)
		fill := "fill:black;stroke:black"
		if cell == CellWhite {
			fill = "fill:white;stroke:black"
		}
		canvas.Circle(sx, sy, radius, fill)
	}

	if state.Status == StatusFinished {
		// End-of-game box across the middle two rows.
		canvas.Rect(0, pad+span/2-square, canvasSize, 2*square, "fill:#202020")
		canvas.Text(canvasSize/2, pad+span/2-8, result.Message,
			"text-anchor:middle;font-family:Georgia;font-size:25px;font-weight:bold;text-decoration:underline;fill:white")
		canvas.Text(canvasSize/2, pad+span/2+24, result.Score,
			"text-anchor:middle;font-family:Georgia;font-size:16px;font-weight:bold;fill:white")
	} else {
		caption := "black's turn"
		if state.ToMove == PlayerWhite {
			caption = "white's turn"
		}
		canvas.Text(canvasSize/2, pad-6, caption,
			"text-anchor:middle;font-family:Georgia;font-size:14px;fill:black")
	}

	canvas.End()
}
