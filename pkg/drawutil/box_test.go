package drawutil

import (
	"image"
	"testing"

	"github.com/wesen/portgraph/pkg/cellbuf"
)

func TestDrawBox(t *testing.T) {
	buf := cellbuf.New(10, 6, 0)
	DrawBox(buf, image.Rect(1, 1, 6, 4), RoundedBox, 3)

	checks := []struct {
		x, y int
		want rune
	}{
		{1, 1, '╭'}, {5, 1, '╮'}, {1, 3, '╰'}, {5, 3, '╯'},
		{3, 1, '─'}, {3, 3, '─'}, {1, 2, '│'}, {5, 2, '│'},
		{3, 2, ' '},
	}
	for _, c := range checks {
		got := buf.Cells[c.y][c.x]
		if got.Ch != c.want || got.Style != 3 {
			t.Errorf("cell (%d,%d): expected %c/3, got %c/%d", c.x, c.y, c.want, got.Ch, got.Style)
		}
	}
	if buf.Cells[0][0].Style != 0 || buf.Cells[4][6].Style != 0 {
		t.Error("DrawBox wrote outside its rectangle")
	}
}

func TestDrawBoxThin(t *testing.T) {
	buf := cellbuf.New(6, 3, 0)
	DrawBox(buf, image.Rect(0, 0, 4, 1), SquareBox, 1)
	for x := 0; x < 4; x++ {
		if buf.Cells[0][x].Ch != '─' {
			t.Errorf("one-row box: cell (%d,0) expected ─, got %c", x, buf.Cells[0][x].Ch)
		}
	}
	DrawBox(buf, image.Rect(5, 0, 6, 3), SquareBox, 1)
	if buf.Cells[1][5].Ch != '│' {
		t.Errorf("one-column box: expected │, got %c", buf.Cells[1][5].Ch)
	}
	DrawBox(buf, image.Rect(2, 2, 2, 3), SquareBox, 2) // empty, no-op
}
