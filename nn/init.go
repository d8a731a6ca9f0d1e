// SPDX-License-Identifier: MIT

package nn

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// GlorotNormal returns an Initializer drawing from N(0, 2/(fanIn+fanOut)).
// The same seed yields the same sequence of weights.
func GlorotNormal(seed uint64) Initializer {
	src := rand.NewPCG(seed, seed^pcgStream)

	return func(fanIn, fanOut int) float64 {
		d := distuv.Normal{
			Mu:    0,
			Sigma: math.Sqrt(2 / float64(fanIn+fanOut)),
			Src:   src,
		}
		return d.Rand()
	}
}

// Constant returns an Initializer that always yields v.
func Constant(v float64) Initializer {
	return func(int, int) float64 { return v }
}
