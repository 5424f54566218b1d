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
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// DeterministicUniform samples values from the interval [0, max) using a
// keyed stream cipher instead of crypto/rand. The same key always
// reproduces the same sequence of samples, which is what reproducible
// test scenarios need.
//
// It is not suitable for production key or ciphertext generation: use
// Uniform for that.
type DeterministicUniform struct {
	key     *[32]byte
	max     *big.Int
	maxBits int
	counter uint64
}

// NewDeterministicUniform returns a DeterministicUniform sampler drawing
// from [0, max), keyed by key.
func NewDeterministicUniform(max *big.Int, key *[32]byte) *DeterministicUniform {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	return &DeterministicUniform{
		key:     key,
		max:     max,
		maxBits: maxBits,
	}
}

// Sample draws the next value in the deterministic sequence from
// [0, max). It rejection-samples against the keystream so the result is
// uniform over [0, max), not merely over the byte range.
func (u *DeterministicUniform) Sample() (*big.Int, error) {
	maxBytes := (u.maxBits + 7) / 8
	over := uint((8 * maxBytes) - u.maxBits)

	nonce := make([]byte, 8)
	for {
		in := make([]byte, maxBytes)
		out := make([]byte, maxBytes)

		binary.LittleEndian.PutUint64(nonce, u.counter)
		u.counter++

		salsa20.XORKeyStream(out, in, nonce, u.key)
		out[0] = out[0] >> over

		ret := new(big.Int).SetBytes(out)
		if ret.Cmp(u.max) < 0 {
			return ret, nil
		}
	}
}
