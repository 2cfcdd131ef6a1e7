package demicode_test

import (
	"fmt"

	"github.com/apparebit/demicode"
	"github.com/apparebit/demicode/property"
)

func ExampleSegment() {
	seg, err := demicode.SegmentString(property.Builtin(), "né!")
	if err != nil {
		panic(err)
	}
	for seg.Next() {
		span := seg.Span()
		fmt.Printf("%d..%d %s\n", span.Start, span.End, string(span.Runes))
	}
	// Output: 0..1 n
	// 1..2 é
	// 2..3 !
}

func ExampleCalculator_StringWidth() {
	calc := demicode.NewCalculator(property.Builtin())
	for _, s := range []string{"hello", "中文", "🇺🇸"} {
		w, err := calc.StringWidth(s)
		if err != nil {
			panic(err)
		}
		fmt.Println(s, w)
	}
	// Output: hello 5
	// 中文 4
	// 🇺🇸 2
}

func ExampleCalculator_ClusterWidth() {
	db := property.Builtin()
	calc := demicode.NewCalculator(db)
	seg, err := demicode.SegmentString(db, "a中\u200B")
	if err != nil {
		panic(err)
	}
	for seg.Next() {
		w, err := calc.ClusterWidth(seg.Span().Runes)
		if err != nil {
			panic(err)
		}
		fmt.Println(w)
	}
	// Output: 1
	// 2
	// 0
}
