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
)

// normal holds the shared state used by the Normal (Gaussian) samplers of
// this package, all centered on mean 0.
type normal struct {
	// Standard deviation
	sigma *big.Float
	// Precision parameter
	n uint
	// Precomputed values for quicker sampling
	powN  *big.Int
	powNF *big.Float
}

// newNormal returns an instance of normal. It assumes mean = 0.
func newNormal(sigma *big.Float, n uint) *normal {
	powN := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(n)), nil)
	powNF := new(big.Float)
	powNF.SetPrec(n)
	powNF.SetInt(powN)

	return &normal{
		sigma: sigma,
		n:     n,
		powN:  powN,
		powNF: powNF,
	}
}

// taylorExp approximates exp(-x/alpha) with taylor polynomial
// of degree k, precise at least up to 2^-n.
func taylorExp(x *big.Int, alpha *big.Float, k uint, n uint) *big.Float {
	// prepare the values for calculating the taylor polynomial of exp(x/sigma)
	res := big.NewFloat(1)
	res.SetPrec(n)

	val := new(big.Float)
	val.SetPrec(n)
	val.SetInt(x)
	val.Quo(val, alpha)

	powVal := new(big.Float)
	powVal.SetPrec(n)
	powVal.Set(val)

	factorial := new(big.Float)
	factorial.SetPrec(n)
	factorial.SetInt64(1)

	tmp := new(big.Float)
	tmp.SetPrec(n)

	// set up a minimal value up to which it calculates the precision
	oneOverEps := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(n)), nil)
	eps := new(big.Float)
	eps.SetPrec(n)
	eps.SetInt(oneOverEps)
	eps.Quo(big.NewFloat(1), eps)

	// computation of the polynomial
	for i := uint(1); i <= k; i++ {
		tmp.Quo(powVal, factorial)

		res.Add(res, tmp)

		powVal.Mul(powVal, val)
		factorial.Mul(factorial, big.NewFloat(float64(i+1)))
		if tmp.Cmp(eps) == -1 {
			break
		}
	}
	res.Quo(big.NewFloat(1), res)

	return res
}
