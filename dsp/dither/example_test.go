package dither_test

import (
	"fmt"

	"github.com/cwbudde/algo-dither/dsp/dither"
)

func ExampleNewQuantizer() {
	quant, err := dither.NewQuantizer(
		dither.WithBitDepth(8),
		dither.WithDitherType(dither.DitherNone),
	)
	if err != nil {
		panic(err)
	}

	// 0.3 * 128 = 38.4 rounds to code 38.
	code := quant.ProcessInteger(0.3)

	fmt.Println(code, quant.ProcessSample(0.3))
	// Output: 38 0.296875
}

func ExampleQuantize() {
	scale := dither.Scale(8)

	for _, x := range []float64{0.0, 0.5, -0.5, 0.25} {
		code := dither.Quantize(x, scale, dither.RoundHalfEven)
		fmt.Printf("%5.2f -> %4d -> %5.2f\n", x, code, dither.Dequantize(code, scale))
	}
	// Output:
	//  0.00 ->    0 ->  0.00
	//  0.50 ->   64 ->  0.50
	// -0.50 ->  -64 -> -0.50
	//  0.25 ->   32 ->  0.25
}

func ExampleTriangleStep() {
	var st dither.TriangleState

	draws := []float64{0.25, -0.25, 0.125}
	for i, r := range draws {
		var out float64
		out, st = dither.TriangleStep(10, r, st)
		fmt.Printf("sample %d: %.3f (carry %.3f)\n", i, out, st.Last)
	}
	// Output:
	// sample 0: 10.250 (carry 0.250)
	// sample 1: 9.500 (carry -0.250)
	// sample 2: 10.375 (carry 0.125)
}
