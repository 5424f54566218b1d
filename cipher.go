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
	"sort"

	"github.com/gsw-go/gsw/data"
	"github.com/gsw-go/gsw/internal"
	"github.com/gsw-go/gsw/sample"
	"github.com/pkg/errors"
)

// Ciphertext is an n x m residue matrix encoding a single plaintext
// integer under the Params and PublicKey that produced it.
type Ciphertext data.Matrix

// Dims reports the row and column count of the ciphertext matrix.
func (c Ciphertext) Dims() (rows, cols int) {
	return data.Matrix(c).Rows(), data.Matrix(c).Cols()
}

// Encrypt encrypts the integer mu under pk. mu must lie in [0, 2n].
func Encrypt(params *Params, pk *PublicKey, mu int) (Ciphertext, error) {
	if mu < 0 || mu > 2*params.N {
		return nil, errors.Wrapf(internal.ErrDomainViolation, "plaintext %d outside [0, %d]", mu, 2*params.N)
	}
	if !pk.A.CheckDims(params.N, params.M) {
		return nil, errors.Wrapf(internal.ErrShapeMismatch, "public key A is not %d x %d", params.N, params.M)
	}

	R, err := data.NewRandomMatrix(params.M, params.M, sample.NewBit())
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample encryption randomizer R")
	}

	G := data.BuildGadget(params.N, params.Ell)
	muG := G.MulScalar(big.NewInt(int64(mu)))

	AR, err := pk.A.Mul(R)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute A*R")
	}

	C, err := muG.Add(AR)
	if err != nil {
		return nil, errors.Wrap(err, "cannot assemble ciphertext")
	}

	return Ciphertext(C.Mod(params.Q)), nil
}

// Decrypt recovers the plaintext integer encrypted in ct under sk. It
// never fails on noise: it always returns its best estimate.
func Decrypt(params *Params, sk *SecretKey, ct Ciphertext) (int, error) {
	if !data.Matrix(ct).CheckDims(params.N, params.M) {
		return 0, errors.Wrapf(internal.ErrShapeMismatch, "ciphertext is not %d x %d", params.N, params.M)
	}

	w, err := data.Matrix(ct).VecMul(sk.S)
	if err != nil {
		return 0, errors.Wrap(err, "cannot compute s*C")
	}
	w = w.Mod(params.Q)
	// g is recomputed from S rather than read off sk.V: the original
	// keeps v unused by decryption, reserved for protocol extensions.
	g := data.Powerof2(params.Ell, sk.S).Mod(params.Q)

	d := make([]*big.Int, len(w))
	for i := range w {
		d[i] = roundDiv(w[i], g[i])
	}

	order := tallyByFrequency(d)

	bestMu := order[0]
	bestD := decryptionDistance(params.Q, w, g, bestMu)
	for _, candidate := range order[1:] {
		dist := decryptionDistance(params.Q, w, g, candidate)
		if dist.Cmp(bestD) < 0 {
			bestD = dist
			bestMu = candidate
		}
	}

	return int(bestMu.Int64()), nil
}

// roundDiv returns round(num/den) for non-negative num, den, rounding
// half away from zero. den == 0 cannot occur with valid Params; it is
// guarded defensively and treated as a zero quotient.
func roundDiv(num, den *big.Int) *big.Int {
	if den.Sign() == 0 {
		return big.NewInt(0)
	}

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	twiceRem := new(big.Int).Lsh(rem, 1)
	if twiceRem.Cmp(den) >= 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}

// tallyByFrequency groups the values of d by equality, and returns the
// distinct values sorted by descending count, ties broken by the order in
// which each value first appears in d.
func tallyByFrequency(d []*big.Int) []*big.Int {
	type bucket struct {
		val   *big.Int
		count int
	}

	index := make(map[string]int)
	var buckets []*bucket

	for _, di := range d {
		key := di.String()
		if i, ok := index[key]; ok {
			buckets[i].count++
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, &bucket{val: di, count: 1})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].count > buckets[j].count
	})

	ordered := make([]*big.Int, len(buckets))
	for i, b := range buckets {
		ordered[i] = b.val
	}
	return ordered
}

// decryptionDistance computes D(mu) = sum of squared centered residuals
// of (w - mu*g) mod q.
func decryptionDistance(q *big.Int, w, g data.Vector, mu *big.Int) *big.Int {
	total := new(big.Int)
	for i := range w {
		r := new(big.Int).Mul(mu, g[i])
		r.Sub(w[i], r)
		r.Mod(r, q)

		complement := new(big.Int).Sub(q, r)
		if complement.Cmp(r) < 0 {
			r = complement
		}

		sq := new(big.Int).Mul(r, r)
		total.Add(total, sq)
	}
	return total
}

// Add homomorphically adds two ciphertexts produced under the same
// Params and PublicKey. Neither input is modified.
func Add(params *Params, c1, c2 Ciphertext) (Ciphertext, error) {
	if !data.Matrix(c1).CheckDims(params.N, params.M) || !data.Matrix(c2).CheckDims(params.N, params.M) {
		return nil, errors.Wrapf(internal.ErrShapeMismatch, "ciphertexts must be %d x %d", params.N, params.M)
	}

	sum, err := data.Matrix(c1).Add(data.Matrix(c2))
	if err != nil {
		return nil, errors.Wrap(err, "cannot add ciphertexts")
	}

	return Ciphertext(sum.Mod(params.Q)), nil
}

// ConstMult homomorphically multiplies ct by the non-negative integer
// constant k. ct is not modified.
func ConstMult(params *Params, ct Ciphertext, k int) (Ciphertext, error) {
	if k < 0 {
		return nil, errors.Wrapf(internal.ErrDomainViolation, "constant %d must be non-negative", k)
	}
	if !data.Matrix(ct).CheckDims(params.N, params.M) {
		return nil, errors.Wrapf(internal.ErrShapeMismatch, "ciphertext must be %d x %d", params.N, params.M)
	}

	res := data.Matrix(ct).MulScalar(big.NewInt(int64(k)))
	return Ciphertext(res.Mod(params.Q)), nil
}
