// Copyright (c) 2016, Christopher Patton. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
//
// 1. Redistributions of source code must retain the above copyright notice,
// this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright notice,
// this list of conditions and the following disclaimer in the documentation
// and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its contributors
// may be used to endorse or promote products derived from this software without
// specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package mentalpoker

import "errors"

// Sentinel errors for the failure taxonomy. Callers should use
// errors.Is to test for a specific kind; messages wrapped with fmt.Errorf
// at call sites carry the offending value for diagnostics.
var (
	// ErrInvalidMessage is returned when an ElGamal plaintext is not an
	// integer in the valid range.
	ErrInvalidMessage = errors.New("mentalpoker: message must be an integer in the valid range")

	// ErrInvalidKey is returned when restoring a private key from a scalar
	// outside [1, Q) or [2, n).
	ErrInvalidKey = errors.New("mentalpoker: cannot restore private key, not in valid range")

	// ErrNonInvertible is returned when a modular inverse is requested on
	// an element sharing a factor with the modulus. This is a programmer
	// error: callers must not pass moduli/elements that can collide.
	ErrNonInvertible = errors.New("mentalpoker: element has no inverse modulo the given modulus")

	// ErrKeyDoesNotMatchCiphertext is returned by commutative_decrypt when
	// no element's blinding pair decrypts to 1 under the given key.
	ErrKeyDoesNotMatchCiphertext = errors.New("mentalpoker: private key does not correlate to this ciphertext")

	// ErrIncompleteDecryption is returned by reveal_card (EG flavour) when,
	// after applying the supplied keys, the residual value is still a
	// ciphertext set rather than an integer.
	ErrIncompleteDecryption = errors.New("mentalpoker: provided keys not able to fully decrypt card")

	// ErrUnknownCardEncoding is returned when a reveal produces a point or
	// integer that is not in the canonical deck table.
	ErrUnknownCardEncoding = errors.New("mentalpoker: revealed value is not a known card encoding")

	// ErrUnknownDeck is returned when an accessor is called with an
	// unrecognized deck identifier.
	ErrUnknownDeck = errors.New("mentalpoker: unknown deck id")
)
