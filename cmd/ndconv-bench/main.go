// Package main provides the ndconv benchmark CLI.
//
// It times N-dimensional convolution across modes and worker counts on
// synthetic inputs, e.g.:
//
//	ndconv-bench -rank 2 -size 512 -kernel 5 -dilation 2 -mode same -iters 20
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndconv"
)

var (
	rank     = flag.Int("rank", 2, "input rank")
	size     = flag.Int("size", 512, "input edge length per dimension")
	kernel   = flag.Int("kernel", 3, "kernel edge length per dimension")
	dilation = flag.Int("dilation", 1, "kernel dilation factor")
	mode     = flag.String("mode", "same", "convolution mode: full, same or valid")
	iters    = flag.Int("iters", 20, "iterations to time")
	workers  = flag.Int("workers", 0, "worker goroutines (0 = default)")
	seed     = flag.Int64("seed", 1, "random seed for synthetic data")
)

func randomArray(rng *rand.Rand, shape ndconv.Shape) (*ndconv.Array[float32], error) {
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = rng.Float32()
	}
	return ndconv.New(data, shape)
}

func parseMode(name string) (ndconv.Mode, error) {
	switch name {
	case "full":
		return ndconv.Full(), nil
	case "same":
		return ndconv.Same(), nil
	case "valid":
		return ndconv.Valid(), nil
	default:
		return ndconv.Mode{}, fmt.Errorf("unknown mode %q", name)
	}
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	convMode, err := parseMode(*mode)
	if err != nil {
		klog.Exitf("invalid -mode: %v", err)
	}
	if *iters < 1 {
		klog.Exitf("invalid -iters: %d", *iters)
	}

	inShape := make(ndconv.Shape, *rank)
	kShape := make(ndconv.Shape, *rank)
	for i := range inShape {
		inShape[i] = *size
		kShape[i] = *kernel
	}

	rng := rand.New(rand.NewSource(*seed))
	input, err := randomArray(rng, inShape)
	if err != nil {
		klog.Exitf("building input: %v", err)
	}
	weights, err := randomArray(rng, kShape)
	if err != nil {
		klog.Exitf("building kernel: %v", err)
	}
	k := ndconv.NewKernel(weights).WithDilation(*dilation)

	cfg := ndconv.DefaultConfig()
	if *workers > 0 {
		cfg.NumWorkers = *workers
	}

	inputBytes := uint64(input.NumElements() * 4)
	klog.Infof("input %v (%s), kernel %v, dilation %d, mode %s, %d workers",
		inShape, humanize.Bytes(inputBytes), kShape, *dilation, convMode, cfg.NumWorkers)

	var out *ndconv.Array[float32]
	bar := progressbar.Default(int64(*iters), "convolving")
	start := time.Now()
	for i := 0; i < *iters; i++ {
		out, err = ndconv.ConvWith(input, k, convMode, ndconv.ZeroFill[float32](), cfg)
		if err != nil {
			klog.Exitf("convolution failed: %v", err)
		}
		_ = bar.Add(1)
	}
	elapsed := time.Since(start)

	perIter := elapsed / time.Duration(*iters)
	macs := int64(out.NumElements()) * int64(kShape.NumElements())
	macsPerSec := float64(macs) / perIter.Seconds()

	fmt.Printf("output %v (%s)\n", out.Shape(), humanize.Bytes(uint64(out.NumElements()*4)))
	fmt.Printf("%v per iteration, %s cells/s, %s MAC/s\n",
		perIter.Round(time.Microsecond),
		humanize.SIWithDigits(float64(out.NumElements())/perIter.Seconds(), 2, ""),
		humanize.SIWithDigits(macsPerSec, 2, ""))
}
