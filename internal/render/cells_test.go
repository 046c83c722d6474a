package render

import (
	"testing"

	"doomfire/internal/sims/fire"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCellBuffer(t *testing.T) {
	Convey("Given a cell buffer with 10x18 tiles", t, func() {
		b := NewCellBuffer(4, 3, 10, 18)
		orange := fire.RGB{R: 252, G: 132}

		Convey("A tile-aligned rectangle fills exactly one cell", func() {
			b.FillRect(orange, 20, 18, 30, 36)
			So(b.At(2, 1), ShouldResemble, orange)
			So(b.At(1, 1), ShouldResemble, fire.Black)
			So(b.At(3, 1), ShouldResemble, fire.Black)
			So(b.At(2, 2), ShouldResemble, fire.Black)
		})

		Convey("A partial rectangle touches every overlapped cell", func() {
			b.FillRect(orange, 5, 10, 15, 20)
			So(b.At(0, 0), ShouldResemble, orange)
			So(b.At(1, 1), ShouldResemble, orange)
			So(b.At(2, 0), ShouldResemble, fire.Black)
		})

		Convey("Rectangles outside the buffer are clipped", func() {
			b.FillRect(orange, 35, 50, 400, 400)
			So(b.At(3, 2), ShouldResemble, orange)
			b.FillRect(orange, -100, -100, -1, -1)
			So(b.At(0, 0), ShouldResemble, fire.Black)
		})

		Convey("Clear paints everything", func() {
			b.Clear(fire.White)
			cols, rows := b.Size()
			So(cols, ShouldEqual, 4)
			So(rows, ShouldEqual, 3)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					So(b.At(c, r), ShouldResemble, fire.White)
				}
			}
		})
	})
}

func TestCellBufferMatchesGrid(t *testing.T) {
	cfg := fire.DefaultConfig()
	cfg.Width, cfg.Height = 6, 5
	f, err := fire.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		f.Step()
	}
	b := NewCellBuffer(cfg.Width, cfg.Height, cfg.TileWidth, cfg.TileHeight)
	f.Render(b)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			want := f.Palette().ColorFor(int(f.Grid().Get(x, y)))
			if got := b.At(x, y); got != want {
				t.Fatalf("cell (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}
