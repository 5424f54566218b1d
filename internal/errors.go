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

package internal

import (
	"errors"
	"fmt"
)

var errKindStr = "gsw:"

// ErrInvalidParameter is returned when a parameter to a constructor is
// out of its documented domain: a non-positive security parameter or
// homomorphic-depth hint. Prime generation retries until it succeeds and
// does not return this error.
var ErrInvalidParameter = errors.New(fmt.Sprintf("%s invalid parameter", errKindStr))

// ErrShapeMismatch is returned when a vector or matrix argument has the
// wrong dimension relative to the Params it is checked against.
var ErrShapeMismatch = errors.New(fmt.Sprintf("%s shape mismatch", errKindStr))

// ErrDomainViolation is returned when a plaintext or constant falls
// outside the range an operation documents as safe.
var ErrDomainViolation = errors.New(fmt.Sprintf("%s value outside documented domain", errKindStr))
