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

// Command gsw is a demonstration driver for the gsw package: it sets up
// parameters at a chosen security level, generates a key pair, and runs
// an encrypt/decrypt round trip on a sample plaintext.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gsw-go/gsw"
	"github.com/gsw-go/gsw/internal/status"
)

func main() {
	lambda := flag.Int("lambda", 7, "security parameter (n = 2^lambda)")
	plaintext := flag.Int("plaintext", 100, "integer to encrypt")
	flag.Parse()

	logger := status.New()

	params, sk, pk, err := gsw.GenerateKeys(*lambda)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}
	logger.Report("keys generated")
	fmt.Printf("n=%d q=%v ell=%d m=%d N=%d depth=%d\n",
		params.N, params.Q, params.Ell, params.M, params.BigN, params.Depth)

	ct, err := gsw.Encrypt(params, pk, *plaintext)
	if err != nil {
		log.Fatalf("encryption failed: %v", err)
	}
	logger.Report("plaintext encrypted")

	recovered, err := gsw.Decrypt(params, sk, ct)
	if err != nil {
		log.Fatalf("decryption failed: %v", err)
	}
	logger.Report("ciphertext decrypted")

	fmt.Printf("plaintext=%d recovered=%d\n", *plaintext, recovered)
}
