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

package gsw_test

import (
	"math/big"
	"testing"

	"github.com/gsw-go/gsw"
	"github.com/stretchr/testify/assert"
)

// TestCipher_RoundTrip_SmallParams checks P5 at a small, fast security
// level: every tested plaintext in [0, 2n] must decrypt exactly.
func TestCipher_RoundTrip_SmallParams(t *testing.T) {
	params, sk, pk, err := gsw.GenerateKeys(4)
	assert.NoError(t, err)

	for _, mu := range []int{0, 1, params.N / 2, params.N, 2 * params.N} {
		ct, err := gsw.Encrypt(params, pk, mu)
		assert.NoError(t, err)

		got, err := gsw.Decrypt(params, sk, ct)
		assert.NoError(t, err)
		assert.Equal(t, mu, got, "round trip failed for mu=%d", mu)
	}
}

// TestCipher_RoundTrip_ScenarioLambda7 checks concrete scenario 2:
// mu in {0, 1, 100, 2n} all recover exactly at lambda=7.
func TestCipher_RoundTrip_ScenarioLambda7(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size lambda=7 round trip in short mode")
	}

	params, sk, pk, err := gsw.GenerateKeys(7)
	assert.NoError(t, err)

	for _, mu := range []int{0, 1, 100, 2 * params.N} {
		ct, err := gsw.Encrypt(params, pk, mu)
		assert.NoError(t, err)

		got, err := gsw.Decrypt(params, sk, ct)
		assert.NoError(t, err)
		assert.Equal(t, mu, got, "round trip failed for mu=%d", mu)
	}
}

// TestCipher_Add_ScenarioLambda7 checks concrete scenario 3:
// mu_a=37, mu_b=58 -> decrypt(add(...)) = 95.
func TestCipher_Add_ScenarioLambda7(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size lambda=7 add scenario in short mode")
	}

	params, sk, pk, err := gsw.GenerateKeys(7)
	assert.NoError(t, err)

	ctA, err := gsw.Encrypt(params, pk, 37)
	assert.NoError(t, err)
	ctB, err := gsw.Encrypt(params, pk, 58)
	assert.NoError(t, err)

	sum, err := gsw.Add(params, ctA, ctB)
	assert.NoError(t, err)

	got, err := gsw.Decrypt(params, sk, sum)
	assert.NoError(t, err)
	assert.Equal(t, 95, got)
}

// TestCipher_ConstMult_ScenarioLambda7 checks concrete scenario 4:
// mu=12, k=7 -> decrypt(const_mult(...)) = 84.
func TestCipher_ConstMult_ScenarioLambda7(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size lambda=7 const-mult scenario in short mode")
	}

	params, sk, pk, err := gsw.GenerateKeys(7)
	assert.NoError(t, err)

	ct, err := gsw.Encrypt(params, pk, 12)
	assert.NoError(t, err)

	scaled, err := gsw.ConstMult(params, ct, 7)
	assert.NoError(t, err)

	got, err := gsw.Decrypt(params, sk, scaled)
	assert.NoError(t, err)
	assert.Equal(t, 84, got)
}

// TestCipher_AdditiveHomomorphism checks P6 at a small security level.
func TestCipher_AdditiveHomomorphism(t *testing.T) {
	params, sk, pk, err := gsw.GenerateKeys(5)
	assert.NoError(t, err)

	muA, muB := 3, 5
	ctA, err := gsw.Encrypt(params, pk, muA)
	assert.NoError(t, err)
	ctB, err := gsw.Encrypt(params, pk, muB)
	assert.NoError(t, err)

	sum, err := gsw.Add(params, ctA, ctB)
	assert.NoError(t, err)

	got, err := gsw.Decrypt(params, sk, sum)
	assert.NoError(t, err)
	assert.Equal(t, muA+muB, got)
}

// TestCipher_ScalarMultiplication checks P7 at a small security level.
func TestCipher_ScalarMultiplication(t *testing.T) {
	params, sk, pk, err := gsw.GenerateKeys(5)
	assert.NoError(t, err)

	mu, k := 5, 6
	ct, err := gsw.Encrypt(params, pk, mu)
	assert.NoError(t, err)

	scaled, err := gsw.ConstMult(params, ct, k)
	assert.NoError(t, err)

	got, err := gsw.Decrypt(params, sk, scaled)
	assert.NoError(t, err)
	assert.Equal(t, mu*k, got)
}

// TestCipher_Immutability checks P8: Add and ConstMult must not alter
// their ciphertext inputs.
func TestCipher_Immutability(t *testing.T) {
	params, _, pk, err := gsw.GenerateKeys(4)
	assert.NoError(t, err)

	ct, err := gsw.Encrypt(params, pk, 3)
	assert.NoError(t, err)
	other, err := gsw.Encrypt(params, pk, 4)
	assert.NoError(t, err)

	before := cloneCiphertext(ct)

	_, err = gsw.Add(params, ct, other)
	assert.NoError(t, err)
	assert.Equal(t, before, ct)

	_, err = gsw.ConstMult(params, ct, 5)
	assert.NoError(t, err)
	assert.Equal(t, before, ct)
}

func TestCipher_RejectsOutOfDomainPlaintext(t *testing.T) {
	params, _, pk, err := gsw.GenerateKeys(4)
	assert.NoError(t, err)

	_, err = gsw.Encrypt(params, pk, -1)
	assert.Error(t, err)

	_, err = gsw.Encrypt(params, pk, 2*params.N+1)
	assert.Error(t, err)
}

func TestCipher_RejectsNegativeConstMult(t *testing.T) {
	params, _, pk, err := gsw.GenerateKeys(4)
	assert.NoError(t, err)

	ct, err := gsw.Encrypt(params, pk, 1)
	assert.NoError(t, err)

	_, err = gsw.ConstMult(params, ct, -1)
	assert.Error(t, err)
}

func TestCipher_RejectsMalformedShapes(t *testing.T) {
	params, sk, pk, err := gsw.GenerateKeys(4)
	assert.NoError(t, err)

	ct, err := gsw.Encrypt(params, pk, 1)
	assert.NoError(t, err)

	malformed := ct[:len(ct)-1]

	_, err = gsw.Decrypt(params, sk, malformed)
	assert.Error(t, err)

	_, err = gsw.Add(params, malformed, ct)
	assert.Error(t, err)

	_, err = gsw.ConstMult(params, malformed, 2)
	assert.Error(t, err)
}

func cloneCiphertext(ct gsw.Ciphertext) gsw.Ciphertext {
	clone := make(gsw.Ciphertext, len(ct))
	for i, row := range ct {
		clonedRow := make([]*big.Int, len(row))
		for j, v := range row {
			clonedRow[j] = new(big.Int).Set(v)
		}
		clone[i] = clonedRow
	}
	return clone
}
