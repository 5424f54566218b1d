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

	"github.com/gsw-go/gsw/data"
	"github.com/gsw-go/gsw/internal"
	"github.com/gsw-go/gsw/sample"
	"github.com/pkg/errors"
)

// gaussianPrecision is the bit precision used for the error-term discrete
// Gaussian sampler. chi_scale is fixed and small, so a moderate precision
// keeps the precomputed CDF table tiny while still giving exact sampling.
const gaussianPrecision = 128

// PublicKey holds the GSW public key material bound to one
// (Params, SecretKey) pair.
type PublicKey struct {
	A data.Matrix // n x m
	E data.Vector // length m, small discrete Gaussian error
}

// GeneratePublicKey derives a PublicKey from params and sk. B is sampled
// uniformly, e is sampled from a discrete Gaussian of scale
// params.ChiScale, and A is built by stacking -B above b = t*B + e.
func GeneratePublicKey(params *Params, sk *SecretKey) (*PublicKey, error) {
	if len(sk.T) != params.N-1 {
		return nil, errors.Wrapf(internal.ErrShapeMismatch, "secret key t has length %d, want %d", len(sk.T), params.N-1)
	}

	B, err := data.NewRandomMatrix(params.N-1, params.M, sample.NewUniform(params.Q))
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample public matrix B")
	}

	gaussian := sample.NewNormalCumulative(big.NewFloat(params.ChiScale), gaussianPrecision, true)
	e, err := data.NewRandomVector(params.M, gaussian)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample LWE error vector")
	}

	tDotB, err := B.VecMul(sk.T)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute t*B")
	}
	b := tDotB.Add(e).Mod(params.Q)

	negB := B.MulScalar(big.NewInt(-1)).Mod(params.Q)
	A, err := negB.StackVertical(data.Matrix{b})
	if err != nil {
		return nil, errors.Wrap(err, "cannot assemble public matrix A")
	}

	return &PublicKey{A: A, E: e}, nil
}
