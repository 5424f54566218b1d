/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// paramBounds describes the acceptable range of the sample mean and of
// the mean of squares (see variance) for a Normal sampler test.
type paramBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

func mean(vec []*big.Int) *big.Float {
	meanI := big.NewInt(0)
	for i := 0; i < len(vec); i++ {
		meanI.Add(meanI, vec[i])
	}
	ret := new(big.Float).SetInt(meanI)
	ret.Quo(ret, big.NewFloat(float64(len(vec))))
	return ret
}

// variance returns the mean of the squared samples (the second moment
// about zero); for a zero-mean sampler this equals the variance.
func variance(vec []*big.Int) *big.Float {
	squareSum := big.NewInt(0)
	square := new(big.Int)
	for i := 0; i < len(vec); i++ {
		square.Mul(vec[i], vec[i])
		squareSum.Add(squareSum, square)
	}
	ret := new(big.Float).SetInt(squareSum)
	ret.Quo(ret, big.NewFloat(float64(len(vec))))
	return ret
}

// testNormalSampler draws a batch of samples from s and checks that the
// observed mean and mean of squares fall within the expected bounds.
func testNormalSampler(t *testing.T, s interface {
	Sample() (*big.Int, error)
}, expect paramBounds) {
	const numSamples = 10000

	vec := make([]*big.Int, numSamples)
	for i := range vec {
		v, err := s.Sample()
		assert.NoError(t, err)
		vec[i] = v
	}

	m, _ := mean(vec).Float64()
	v, _ := variance(vec).Float64()

	assert.True(t, m >= expect.meanLow && m <= expect.meanHigh,
		"sample mean %f outside expected range [%f, %f]", m, expect.meanLow, expect.meanHigh)
	assert.True(t, v >= expect.varLow && v <= expect.varHigh,
		"sample variance %f outside expected range [%f, %f]", v, expect.varLow, expect.varHigh)
}
