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

// Package gsw implements a leveled fully-homomorphic encryption scheme
// following the Gentry-Sahai-Waters construction over Learning-With-Errors:
// parameter selection from a security level, key generation, integer
// encryption and decryption, and two homomorphic operations over
// ciphertexts (addition and scalar multiplication by a plaintext
// constant).
//
// The scheme makes no claim of side-channel resistance, constant-time
// execution, or protocol-level integration; it does not persist keys or
// ciphertexts.
package gsw
