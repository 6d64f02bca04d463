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
	"fmt"
	"math/big"
)

// KeyParameters stores the public parameters for ElGamal encryption over
// Z/p: a generator G and primes P and Q such that Q divides (P-1)/2 and
// <G> is a cyclic subgroup of Z/p of order Q.
type KeyParameters struct {
	P, G, Q *big.Int
}

// DefaultParams are the 2048-bit prime / 224-bit prime-order subgroup parameters
// of RFC 5114's 2048/224 MODP group, matching original_source's PUBLIC_PARAMS.
var DefaultParams = mustParams(
	"AD107E1E9123A9D0D660FAA79559C51FA20D64E5683B9FD1B54B1597B61D0A75E6FA141DF95A56DBAF9A3C407BA1DF15EB3D688A309C180E1DE6B85A1274A0A66D3F8152AD6AC2129037C9EDEFDA4DF8D91E8FEF55B7394B7AD5B7D0B6C12207C9F98D11ED34DBF6C6BA0B2C8BBC27BE6A00E0A0B9C49708B3BF8A317091883681286130BC8985DB1602E714415D9330278273C7DE31EFDC7310F7121FD5A07415987D9ADC0A486DCDF93ACC44328387315D75E198C641A480CD86A1B9E587E8BE60E69CC928B2B9C52172E413042E9B23F10B0E16E79763C9B53DCF4BA80A29E3FB73C16B8E75B97EF363E2FFA31F71CF9DE5384E71B81C0AC4DFFE0C10E64F",
	"AC4032EF4F2D9AE39DF30B5C8FFDAC506CDEBE7B89998CAF74866A08CFE4FFE3A6824A4E10B9A6F0DD921F01A70C4AFAAB739D7700C29F52C57DB17C620A8652BE5E9001A8D66AD7C17669101999024AF4D027275AC1348BB8A762D0521BC98AE247150422EA1ED409939D54DA7460CDB5F6C6B250717CBEF180EB34118E98D119529A45D6F834566E3025E316A330EFBB77A86F0C1AB15B051AE3D428C8F8ACB70A8137150B8EEB10E183EDD19963DDD9E263E4770589EF6AA21E7F5F2FF381B539CCE3409D13CD566AFBB48D6C019181E1BCFE94B30269EDFE72FE9B6AA4BD7B5A0F1C71CFFF4C19C418E1F6EC017981BC087F2A7065B384B890D3191F2BFA",
	"801C0D34C58D93FE997177101F80535A4738CEBCBF389A99B36371EB",
)

func mustParams(p, g, q string) *KeyParameters {
	params, err := NewKeyParametersFromStrings(p, g, q)
	if err != nil {
		panic(err)
	}
	return params
}

// NewKeyParametersFromStrings builds a KeyParameters from hex-encoded P, G,
// and Q values.
func NewKeyParametersFromStrings(p, g, q string) (*KeyParameters, error) {
	params := new(KeyParameters)
	params.P = new(big.Int)
	params.G = new(big.Int)
	params.Q = new(big.Int)
	if _, ok := params.P.SetString(p, 16); !ok {
		return nil, fmt.Errorf("mentalpoker: invalid P: %q", p)
	}
	if _, ok := params.G.SetString(g, 16); !ok {
		return nil, fmt.Errorf("mentalpoker: invalid G: %q", g)
	}
	if _, ok := params.Q.SetString(q, 16); !ok {
		return nil, fmt.Errorf("mentalpoker: invalid Q: %q", q)
	}
	return params, nil
}

// MaxMsgBytes returns the maximum number of message bytes that may be
// encrypted under the modulus P via Encode.
func (params *KeyParameters) MaxMsgBytes() int {
	return (params.P.BitLen() / 8) - 4
}

// Sample draws a cryptographically secure uniform exponent in [1, Q).
func (params *KeyParameters) Sample() (*big.Int, error) {
	return SampleRange(one, params.Q)
}

// Encode takes a slice of bytes and returns the corresponding element of
// Z/p, padded with 0xFF sentinels so Decode can recover the original
// length.
func (params *KeyParameters) Encode(msg []byte) (*big.Int, error) {
	maxMsgBytes := params.MaxMsgBytes()
	if len(msg) > maxMsgBytes {
		return nil, fmt.Errorf("mentalpoker: message too big (%d > %d bytes)", len(msg), maxMsgBytes)
	}
	padded := make([]byte, maxMsgBytes+2)
	padded[0] = 0xFF
	n := copy(padded[1:], msg)
	padded[n+1] = 0xFF
	return new(big.Int).SetBytes(padded), nil
}

// Decode takes an element of Z/p produced by Encode and returns the
// original message bytes.
func (params *KeyParameters) Decode(m *big.Int) ([]byte, error) {
	padded := m.Bytes()
	i := len(padded) - 1
	for ; i >= 0; i-- {
		if padded[i] != 0x00 {
			break
		}
	}
	if i < 1 {
		return nil, fmt.Errorf("mentalpoker: malformed encoded message")
	}
	msg := make([]byte, i-1)
	copy(msg, padded[1:])
	return msg, nil
}
