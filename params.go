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

package gsw

import (
	"math/big"

	"github.com/gsw-go/gsw/internal"
	"github.com/gsw-go/gsw/internal/keygen"
	"github.com/pkg/errors"
)

// defaultDepth is the homomorphic depth hint L used when Setup is called
// without an explicit depth argument.
const defaultDepth = 10

// Params bundles the derived parameters of a GSW instance for a given
// security level. It is immutable once returned by Setup.
type Params struct {
	N        int      // n = 2^lambda
	Q        *big.Int // odd safe prime of 2*lambda bits
	ChiScale float64  // standard deviation of the LWE error distribution
	M        int      // n * (floor(log2 q) + 1)
	Ell      int      // ceil(log2 q)
	BigN     int      // n * Ell
	Depth    int      // homomorphic depth hint, retained for callers
}

// Setup derives a Params bundle for security parameter lambda. depth
// optionally overrides the default homomorphic depth hint of 10; it does
// not influence any core operation.
func Setup(lambda int, depth ...int) (*Params, error) {
	if lambda <= 0 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "lambda must be positive, got %d", lambda)
	}

	L := defaultDepth
	if len(depth) > 0 {
		L = depth[0]
		if L <= 0 {
			return nil, errors.Wrapf(internal.ErrInvalidParameter, "depth must be positive, got %d", L)
		}
	}

	n := 1 << uint(lambda)

	q, err := keygen.GetSafePrime(2 * lambda)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate safe prime for Params")
	}

	// ell = ceil(log2 q) and floor(log2 q)+1 both equal q.BitLen() for an
	// odd prime q (never itself a power of two), so m and N coincide; see
	// the design notes on this simplification.
	ell := q.BitLen()
	m := n * ell
	bigN := n * ell
	if m != bigN {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "m (%d) and N (%d) diverge for q=%v", m, bigN, q)
	}

	return &Params{
		N:        n,
		Q:        q,
		ChiScale: 1.0,
		M:        m,
		Ell:      ell,
		BigN:     bigN,
		Depth:    L,
	}, nil
}
