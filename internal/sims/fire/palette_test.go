package fire

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPalette(t *testing.T) {
	Convey("Given the default palette length", t, func() {
		p, err := BuildPalette(DefaultPaletteLength)
		So(err, ShouldBeNil)

		Convey("It has exactly N entries", func() {
			So(p.Len(), ShouldEqual, 256)
			So(len(p.Colors()), ShouldEqual, 256)
		})

		Convey("Entry zero is black and the ramp ends in yellow", func() {
			So(p.ColorFor(0), ShouldResemble, RGB{0, 0, 0})
			So(p.ColorFor(RampLength-1), ShouldResemble, RGB{252, 252, 0})
		})

		Convey("Every entry past the ramp is white", func() {
			for i := RampLength; i < p.Len(); i++ {
				So(p.ColorFor(i), ShouldResemble, White)
			}
		})

		Convey("Conversions keep order and opacity", func() {
			cp := p.ColorPalette()
			So(len(cp), ShouldEqual, 256)
			r, _, _, a := cp[7].RGBA()
			So(r>>8, ShouldEqual, uint32(100))
			So(a>>8, ShouldEqual, uint32(255))
		})

		Convey("Colors returns a copy", func() {
			c := p.Colors()
			c[0] = White
			So(p.ColorFor(0), ShouldResemble, Black)
		})
	})

	Convey("Given a longer palette", t, func() {
		p, err := BuildPalette(300)
		So(err, ShouldBeNil)
		So(p.Len(), ShouldEqual, 300)
		So(p.ColorFor(299), ShouldResemble, White)

		Convey("The GIF color table is capped at 256 entries", func() {
			So(len(p.ColorPalette()), ShouldEqual, 256)
		})
	})

	Convey("A palette shorter than the ramp is a configuration error", t, func() {
		_, err := BuildPalette(RampLength - 1)
		So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
	})
}

func TestRGBImplementsColor(t *testing.T) {
	r, g, b, a := RGB{R: 255, G: 128, B: 0}.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Fatalf("got %x %x %x %x", r, g, b, a)
	}
}
