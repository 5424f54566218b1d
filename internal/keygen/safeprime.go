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

// Package keygen holds shared key-establishment primitives: safe-prime
// generation and the primality tests it builds on.
package keygen

import (
	"crypto/rand"
	"math/big"

	"github.com/gsw-go/gsw/internal"
	"github.com/pkg/errors"
)

// fermatTrials is the number of independent witnesses the source-faithful
// Fermat test draws before accepting a candidate as probably prime.
const fermatTrials = 16

// millerRabinRounds is the certainty passed to big.Int.ProbablyPrime for
// GetSafePrime's production primality test. ProbablyPrime also runs a
// Baillie-PSW check internally, so rounds beyond a handful add negligible
// extra assurance; 40 matches common library defaults.
const millerRabinRounds = 40

// FermatIsProbablePrime reports whether p passes fermatTrials independent
// Fermat tests: for each trial a random a in [1, p-1] must satisfy
// a^(p-1) = 1 (mod p). This is the primality test the original GSW
// reference implementation uses; it accepts Carmichael numbers as a
// known limitation, kept here for source fidelity rather than as the
// default primality test (see IsProbablePrime).
func FermatIsProbablePrime(p *big.Int) (bool, error) {
	if p.Cmp(big.NewInt(2)) < 0 {
		return false, nil
	}
	if p.Cmp(big.NewInt(2)) == 0 {
		return true, nil
	}

	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	one := big.NewInt(1)

	for i := 0; i < fermatTrials; i++ {
		a, err := rand.Int(rand.Reader, pMinusOne)
		if err != nil {
			return false, errors.Wrap(err, "cannot sample Fermat witness")
		}
		a.Add(a, one) // shift [0, p-1) to [1, p)

		if internal.ModExp(a, pMinusOne, p).Cmp(one) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// IsProbablePrime is the primality test GenPrime and GetSafePrime use by
// default: Miller-Rabin (plus a Baillie-PSW pass) via big.Int.ProbablyPrime,
// substituted for the source's pure Fermat test per the design notes -
// the Fermat test alone accepts Carmichael numbers, which ProbablyPrime
// does not.
func IsProbablePrime(p *big.Int) bool {
	return p.ProbablyPrime(millerRabinRounds)
}

// GenPrime draws a uniformly random b-bit integer and resamples until it
// passes IsProbablePrime.
func GenPrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("prime bit length must be at least 2")
	}

	lower := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	upper := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	span := new(big.Int).Sub(upper, lower)

	for {
		offset, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, errors.Wrap(err, "cannot sample prime candidate")
		}
		p := new(big.Int).Add(lower, offset)
		if IsProbablePrime(p) {
			return p, nil
		}
	}
}

// GetSafePrime returns a safe (Sophie Germain) prime with exactly k bits:
// a prime p = 2*q + 1 where q is itself prime. It repeatedly draws a
// (k-1)-bit prime q and tests 2*q+1 until that candidate is also prime.
func GetSafePrime(k int) (*big.Int, error) {
	if k < 3 {
		return nil, errors.New("safe prime bit length must be at least 3")
	}

	for {
		q, err := GenPrime(k - 1)
		if err != nil {
			return nil, err
		}
		sp := new(big.Int).Lsh(q, 1)
		sp.Add(sp, big.NewInt(1))
		if IsProbablePrime(sp) {
			return sp, nil
		}
	}
}
