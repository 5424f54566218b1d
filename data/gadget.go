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

package data

import (
	"fmt"
	"math/big"
)

// DecToBin returns the l-bit binary expansion of (x mod 2^l), as a
// Vector of l elements that are each 0 or 1, least-significant bit
// first.
func DecToBin(x *big.Int, l int) Vector {
	bits := make(Vector, l)
	for i := 0; i < l; i++ {
		if x.Bit(i) == 1 {
			bits[i] = big.NewInt(1)
		} else {
			bits[i] = big.NewInt(0)
		}
	}
	return bits
}

// BitDecomp takes a length-k vector v (elements taken mod q) and returns
// the length-(k*l) bit vector formed by concatenating the l-bit,
// LSB-first binary expansion of each coordinate.
func BitDecomp(q *big.Int, l int, v Vector) Vector {
	res := make(Vector, 0, len(v)*l)
	for _, vi := range v {
		reduced := new(big.Int).Mod(vi, q)
		res = append(res, DecToBin(reduced, l)...)
	}
	return res
}

// BitDecompInverse is the left inverse of BitDecomp: given a length-(k*l)
// bit-shaped vector u, it recovers the length-k vector whose i-th
// coordinate is the integer represented (mod q) by u's i-th block of l
// bits. It returns an error if len(u) is not a multiple of l.
func BitDecompInverse(q *big.Int, l int, u Vector) (Vector, error) {
	if l <= 0 || len(u)%l != 0 {
		return nil, fmt.Errorf("vector length %d is not a multiple of l=%d", len(u), l)
	}

	k := len(u) / l
	res := make(Vector, k)
	for i := 0; i < k; i++ {
		acc := new(big.Int)
		pow := big.NewInt(1)
		for j := 0; j < l; j++ {
			term := new(big.Int).Mul(u[i*l+j], pow)
			acc.Add(acc, term)
			pow.Lsh(pow, 1)
		}
		res[i] = acc.Mod(acc, q)
	}
	return res, nil
}

// Powerof2 takes a length-k vector v and returns the length-(k*l) vector
// formed by concatenating, for each coordinate v_i, the block
// (v_i, 2*v_i, 4*v_i, ..., 2^(l-1)*v_i). Results are not reduced mod q;
// callers that need a residue apply Mod afterwards, matching the two-step
// "Powerof2(...) mod q" used throughout the scheme.
func Powerof2(l int, v Vector) Vector {
	res := make(Vector, 0, len(v)*l)
	for _, vi := range v {
		pow := big.NewInt(1)
		for j := 0; j < l; j++ {
			res = append(res, new(big.Int).Mul(vi, pow))
			pow = new(big.Int).Lsh(pow, 1)
		}
	}
	return res
}

// Flatten reduces a bit-shaped vector u back into canonical {0,1} form:
// Flatten(u) = BitDecomp(BitDecompInverse(u)).
func Flatten(q *big.Int, l int, u Vector) (Vector, error) {
	inv, err := BitDecompInverse(q, l, u)
	if err != nil {
		return nil, err
	}
	return BitDecomp(q, l, inv), nil
}

// BitDecompMatrix applies BitDecomp to every row of m.
func BitDecompMatrix(q *big.Int, l int, m Matrix) Matrix {
	rows := make([]Vector, len(m))
	for i, row := range m {
		rows[i] = BitDecomp(q, l, row)
	}
	res, _ := NewMatrix(rows)
	return res
}

// BitDecompInverseMatrix applies BitDecompInverse to every row of m.
func BitDecompInverseMatrix(q *big.Int, l int, m Matrix) (Matrix, error) {
	rows := make([]Vector, len(m))
	for i, row := range m {
		inv, err := BitDecompInverse(q, l, row)
		if err != nil {
			return nil, err
		}
		rows[i] = inv
	}
	return NewMatrix(rows)
}

// FlattenMatrix applies Flatten to every row of m.
func FlattenMatrix(q *big.Int, l int, m Matrix) (Matrix, error) {
	rows := make([]Vector, len(m))
	for i, row := range m {
		flat, err := Flatten(q, l, row)
		if err != nil {
			return nil, err
		}
		rows[i] = flat
	}
	return NewMatrix(rows)
}

// BuildGadget returns the n x (n*l) gadget matrix G: block-diagonal with
// n copies of the row g = (1, 2, 4, ..., 2^(l-1)) placed along the
// diagonal, zero elsewhere.
func BuildGadget(n, l int) Matrix {
	g := make(Vector, l)
	pow := big.NewInt(1)
	for j := 0; j < l; j++ {
		g[j] = new(big.Int).Set(pow)
		pow = new(big.Int).Lsh(pow, 1)
	}

	rows := make([]Vector, n)
	for i := 0; i < n; i++ {
		row := make(Vector, n*l)
		for j := 0; j < n*l; j++ {
			row[j] = big.NewInt(0)
		}
		copy(row[i*l:(i+1)*l], g)
		rows[i] = row
	}
	res, _ := NewMatrix(rows)
	return res
}
