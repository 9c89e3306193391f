package ndconv_test

import (
	"fmt"
	"log"

	"github.com/born-ml/ndconv"
)

func ExampleConv() {
	input, err := ndconv.FromSlice([]int{1, 2, 3, 4}, ndconv.Shape{2, 2})
	if err != nil {
		log.Fatal(err)
	}
	weights, err := ndconv.FromSlice([]int{1, 1, 1, 1}, ndconv.Shape{2, 2})
	if err != nil {
		log.Fatal(err)
	}

	out, err := ndconv.Conv(input, ndconv.NewKernel(weights), ndconv.Full(), ndconv.ZeroFill[int]())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out.Shape())
	fmt.Println(out.Data())
	// Output:
	// [3 3]
	// [1 3 2 4 10 6 3 7 4]
}

func ExampleKernel_WithDilation() {
	input, err := ndconv.FromSlice([]int{1, 2, 3, 4, 5, 6}, ndconv.Shape{6})
	if err != nil {
		log.Fatal(err)
	}
	weights, err := ndconv.FromSlice([]int{1, 1, 1}, ndconv.Shape{3})
	if err != nil {
		log.Fatal(err)
	}
	kernel := ndconv.NewKernel(weights).WithDilation(2)

	out, err := ndconv.Conv(input, kernel, ndconv.Custom([]int{4}, []int{2}), ndconv.ZeroFill[int]())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out.Data())
	// Output:
	// [1 4 9 8 5]
}
