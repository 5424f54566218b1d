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
	"github.com/gsw-go/gsw/sample"
	"github.com/pkg/errors"
)

// SecretKey holds the GSW secret key material for one Params instance.
type SecretKey struct {
	T data.Vector // length n-1, sampled uniformly
	S data.Vector // length n, T with a trailing 1 appended; the active secret
	V data.Vector // length N, Powerof2(S) mod q; kept for protocol extensions
}

// GenerateSecretKey samples a fresh SecretKey under params.
func GenerateSecretKey(params *Params) (*SecretKey, error) {
	t, err := data.NewRandomVector(params.N-1, sample.NewUniform(params.Q))
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample secret key vector t")
	}

	s := t.Concat(data.NewVector([]*big.Int{big.NewInt(1)}))
	v := data.Powerof2(params.Ell, s).Mod(params.Q)

	return &SecretKey{T: t, S: s, V: v}, nil
}
