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

import "github.com/pkg/errors"

// GenerateKeys is a convenience bundle that derives Params and a fresh
// (SecretKey, PublicKey) pair from a single security parameter lambda.
func GenerateKeys(lambda int, depth ...int) (*Params, *SecretKey, *PublicKey, error) {
	params, err := Setup(lambda, depth...)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot set up params")
	}

	sk, err := GenerateSecretKey(params)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot generate secret key")
	}

	pk, err := GeneratePublicKey(params, sk)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot generate public key")
	}

	return params, sk, pk, nil
}
