package random

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSeeded(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a, b := NewSeeded(42), NewSeeded(42)

		Convey("They should produce the same sequence", func() {
			for i := 0; i < 100; i++ {
				So(a.Intn(1000), ShouldEqual, b.Intn(1000))
			}
		})
	})

	Convey("Values should stay in range", t, func() {
		src := New()
		for i := 0; i < 1000; i++ {
			v := src.Intn(7)
			So(v, ShouldBeGreaterThanOrEqualTo, 0)
			So(v, ShouldBeLessThan, 7)
		}
	})
}

func TestFixed(t *testing.T) {
	Convey("Given a fixed source", t, func() {
		src := NewFixed(1, 5, -1)

		Convey("It should replay values modulo n and wrap around", func() {
			So(src.Intn(3), ShouldEqual, 1)
			So(src.Intn(3), ShouldEqual, 2)
			So(src.Intn(3), ShouldEqual, 2)
			So(src.Intn(10), ShouldEqual, 1)
			So(src.Calls(), ShouldEqual, 4)
		})

		Convey("It should panic on a non-positive bound", func() {
			So(func() { src.Intn(0) }, ShouldPanic)
		})
	})
}
