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

import (
	"math/big"
	"testing"
)

func TestUniversalReencryptionPreservesPlaintext(t *testing.T) {
	sk := mustEGKey(t)
	msg := big.NewInt(17)
	cs, err := sk.CommutativeEncrypt(msg)
	if err != nil {
		t.Fatalf("CommutativeEncrypt: %v", err)
	}

	e := cs[0]
	for i := 0; i < 100; i++ {
		e, err = sk.Pub.universalReencrypt(e)
		if err != nil {
			t.Fatalf("universalReencrypt iteration %d: %v", i, err)
		}
	}

	got, err := sk.CommutativeDecrypt(CommutativeSet{e})
	if err != nil {
		t.Fatalf("CommutativeDecrypt: %v", err)
	}
	gotInt, ok := got.(*big.Int)
	if !ok {
		t.Fatalf("CommutativeDecrypt returned %T, want *big.Int", got)
	}
	if gotInt.Cmp(msg) != 0 {
		t.Fatalf("decrypted %s after 100 re-encryptions, want %s", gotInt, msg)
	}
}

func TestCommutativeLayerPeelAnyOrder(t *testing.T) {
	const numLayers = 4
	keys := make([]*EGPrivateKey, numLayers)
	for i := range keys {
		keys[i] = mustEGKey(t)
	}

	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
	}

	msg := big.NewInt(31337)
	for _, order := range orders {
		var cur any = msg
		for _, i := range order {
			cs, err := keys[i].CommutativeEncrypt(cur)
			if err != nil {
				t.Fatalf("CommutativeEncrypt layer %d: %v", i, err)
			}
			cur = cs
		}

		for _, i := range order {
			set, ok := cur.(CommutativeSet)
			if !ok {
				t.Fatalf("order %v: expected CommutativeSet mid-peel, got %T", order, cur)
			}
			v, err := keys[i].CommutativeDecrypt(set)
			if err != nil {
				t.Fatalf("order %v: CommutativeDecrypt: %v", order, err)
			}
			cur = v
		}

		got, ok := cur.(*big.Int)
		if !ok {
			t.Fatalf("order %v: final value is %T, want *big.Int", order, cur)
		}
		if got.Cmp(msg) != 0 {
			t.Fatalf("order %v: peeled to %s, want %s", order, got, msg)
		}
	}
}

func TestSetPermutationIndependence(t *testing.T) {
	keys := []*EGPrivateKey{mustEGKey(t), mustEGKey(t), mustEGKey(t)}
	msg := big.NewInt(7)
	var cur any = msg
	for _, k := range keys {
		cs, err := k.CommutativeEncrypt(cur)
		if err != nil {
			t.Fatalf("CommutativeEncrypt: %v", err)
		}
		cur = cs
	}

	set := cur.(CommutativeSet)
	shuffled := append(CommutativeSet(nil), set...)
	if err := Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }); err != nil {
		t.Fatalf("Shuffle: %v", err)
	}

	cur = any(shuffled)
	for _, k := range keys {
		s, ok := cur.(CommutativeSet)
		if !ok {
			t.Fatalf("expected CommutativeSet, got %T", cur)
		}
		v, err := k.CommutativeDecrypt(s)
		if err != nil {
			t.Fatalf("CommutativeDecrypt: %v", err)
		}
		cur = v
	}

	got, ok := cur.(*big.Int)
	if !ok {
		t.Fatalf("final value is %T, want *big.Int", cur)
	}
	if got.Cmp(msg) != 0 {
		t.Fatalf("peeled to %s after set shuffle, want %s", got, msg)
	}
}

func TestCommutativeDecryptWrongKeyFails(t *testing.T) {
	good := mustEGKey(t)
	bad := mustEGKey(t)
	cs, err := good.CommutativeEncrypt(big.NewInt(9))
	if err != nil {
		t.Fatalf("CommutativeEncrypt: %v", err)
	}
	if _, err := bad.CommutativeDecrypt(cs); err != ErrKeyDoesNotMatchCiphertext {
		t.Fatalf("CommutativeDecrypt with wrong key: got %v, want ErrKeyDoesNotMatchCiphertext", err)
	}
}

func TestThreePassRoundTrip(t *testing.T) {
	alice := mustEGKey(t)
	bob := mustEGKey(t)

	c1, c2, err := bob.Encrypt(big.NewInt(55))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	z1, z2, err := alice.ThreePassReencrypt(c1, c2, bob.Pub.Beta)
	if err != nil {
		t.Fatalf("ThreePassReencrypt: %v", err)
	}
	r1, r2, err := alice.ThreePassRedecrypt(z1, z2, bob.Pub.Beta)
	if err != nil {
		t.Fatalf("ThreePassRedecrypt: %v", err)
	}
	got, err := bob.Decrypt(r1, r2)
	if err != nil {
		t.Fatalf("bob.Decrypt: %v", err)
	}
	if got.Cmp(big.NewInt(55)) != 0 {
		t.Fatalf("three-pass hand-off recovered %s, want 55", got)
	}
}
