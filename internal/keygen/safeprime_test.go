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

package keygen_test

import (
	"math/big"
	"testing"

	"github.com/gsw-go/gsw/internal/keygen"
	"github.com/stretchr/testify/assert"
)

// TestFermatIsProbablePrime_AgreesOnPrimes checks that the source-faithful
// Fermat test agrees with IsProbablePrime on a handful of small primes and
// safe primes a fresh GetSafePrime call would plausibly produce.
func TestFermatIsProbablePrime_AgreesOnPrimes(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 23, 47, 167, 359, 719}

	for _, p := range primes {
		n := big.NewInt(p)
		ok, err := keygen.FermatIsProbablePrime(n)
		assert.NoError(t, err)
		assert.True(t, ok, "%d should test prime", p)
		assert.True(t, keygen.IsProbablePrime(n), "%d should test prime", p)
	}
}

// TestFermatIsProbablePrime_RejectsComposites checks composites without a
// Fermat-witness blind spot are correctly rejected.
func TestFermatIsProbablePrime_RejectsComposites(t *testing.T) {
	composites := []int64{4, 6, 9, 15, 21, 25, 49, 100, 360}

	for _, c := range composites {
		n := big.NewInt(c)
		ok, err := keygen.FermatIsProbablePrime(n)
		assert.NoError(t, err)
		assert.False(t, ok, "%d should not test prime", c)
	}
}
