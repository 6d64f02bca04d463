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

// DealerEG is one party's state in the extended-ElGamal commutative
// scheme: a shuffle key plus per-deck per-card key sequences, keyed by an
// opaque deck id.
type DealerEG struct {
	ShuffleKey *EGPrivateKey
	Params     *KeyParameters
	intToCard  map[string]string
	newDeck    []*big.Int
	decks      map[string][]*EGPrivateKey
}

// NewDealerEG builds a dealer over the given card names and public
// parameters, generating the canonical residue deck (DefaultResidues for
// DefaultParams, otherwise derived by testing each candidate integer for
// quadratic residuosity) and its
// int-to-card table. If shuffleKey is nil, a fresh one is sampled.
func NewDealerEG(cards []string, shuffleKey *EGPrivateKey, params *KeyParameters) (*DealerEG, error) {
	residues, err := EGResidueDeck(params, len(cards))
	if err != nil {
		return nil, err
	}
	intToCard := make(map[string]string, len(cards))
	for i, v := range residues {
		intToCard[v.String()] = cards[i]
	}
	if shuffleKey == nil {
		shuffleKey, err = NewEGPrivateKey(params)
		if err != nil {
			return nil, err
		}
	}
	return &DealerEG{
		ShuffleKey: shuffleKey,
		Params:     params,
		intToCard:  intToCard,
		newDeck:    residues,
		decks:      make(map[string][]*EGPrivateKey),
	}, nil
}

// NewDeck returns the canonical fresh residue deck.
func (d *DealerEG) NewDeck() []*big.Int {
	return append([]*big.Int(nil), d.newDeck...)
}

// BoxInts wraps a slice of integers as a deck of dynamically-typed cards,
// the input shape Shuffle/Deal expect for a never-yet-encrypted deck.
func BoxInts(ints []*big.Int) []any {
	out := make([]any, len(ints))
	for i, v := range ints {
		out[i] = v
	}
	return out
}

// BoxSets wraps a slice of commutative ciphertext sets as a deck of
// dynamically-typed cards.
func BoxSets(sets []CommutativeSet) []any {
	out := make([]any, len(sets))
	for i, v := range sets {
		out[i] = v
	}
	return out
}

// Shuffle commutatively encrypts every card in deck under the dealer's
// shuffle key and randomly permutes the result, producing a
// shuffle-locked deck. If refreshKey is true, a fresh shuffle key is
// sampled first; refreshKey has no default and the caller always chooses.
// Passing false keeps the shuffle key across calls: EG shuffles commute
// layer-wise, and every party must later be able to peel its own layer
// with its own still-held key.
func (d *DealerEG) Shuffle(deck []any, refreshKey bool) ([]CommutativeSet, error) {
	if refreshKey {
		key, err := NewEGPrivateKey(d.Params)
		if err != nil {
			return nil, err
		}
		d.ShuffleKey = key
	}
	encrypted := make([]CommutativeSet, len(deck))
	for i, card := range deck {
		cs, err := d.ShuffleKey.CommutativeEncrypt(card)
		if err != nil {
			return nil, err
		}
		encrypted[i] = cs
	}
	if err := Shuffle(len(encrypted), func(i, j int) { encrypted[i], encrypted[j] = encrypted[j], encrypted[i] }); err != nil {
		return nil, err
	}
	return encrypted, nil
}

// RemoveShuffleLock peels one layer of commutative_decrypt from every card
// in deck under the dealer's shuffle key. Each result is either a *big.Int
// (if that was the last remaining layer) or a smaller CommutativeSet (if
// other parties' shuffle locks remain).
func (d *DealerEG) RemoveShuffleLock(deck []CommutativeSet) ([]any, error) {
	out := make([]any, len(deck))
	for i, card := range deck {
		v, err := d.ShuffleKey.CommutativeDecrypt(card)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Deal removes this dealer's shuffle lock (if shuffleLocked), commutatively
// encrypts each resulting card under a fresh per-card key, and stores the
// key sequence under deckID for later retrieval. The result is a
// deal-locked deck.
func (d *DealerEG) Deal(deck []any, shuffleLocked bool, deckID string) ([]CommutativeSet, error) {
	if shuffleLocked {
		sets := make([]CommutativeSet, len(deck))
		for i, card := range deck {
			cs, ok := card.(CommutativeSet)
			if !ok {
				return nil, fmt.Errorf("mentalpoker: deal: shuffle-locked deck entry %d is not a commutative ciphertext", i)
			}
			sets[i] = cs
		}
		unlocked, err := d.RemoveShuffleLock(sets)
		if err != nil {
			return nil, err
		}
		deck = unlocked
	}
	keys := make([]*EGPrivateKey, len(deck))
	dealt := make([]CommutativeSet, len(deck))
	for i, card := range deck {
		key, err := NewEGPrivateKey(d.Params)
		if err != nil {
			return nil, err
		}
		keys[i] = key
		cs, err := key.CommutativeEncrypt(card)
		if err != nil {
			return nil, err
		}
		dealt[i] = cs
	}
	d.decks[deckID] = keys
	return dealt, nil
}

// RevealCard peels layers with CommutativeDecrypt, one key at a time, until
// an integer drops out, and looks it up in the canonical table. It returns
// ErrIncompleteDecryption if keys runs out while a ciphertext set remains.
func (d *DealerEG) RevealCard(card CommutativeSet, keys []*EGPrivateKey) (string, error) {
	var value any = card
	for _, key := range keys {
		set, ok := value.(CommutativeSet)
		if !ok {
			break
		}
		v, err := key.CommutativeDecrypt(set)
		if err != nil {
			return "", err
		}
		value = v
	}
	m, ok := value.(*big.Int)
	if !ok {
		return "", ErrIncompleteDecryption
	}
	name, ok := d.intToCard[m.String()]
	if !ok {
		return "", ErrUnknownCardEncoding
	}
	return name, nil
}

// GetCardKey returns the per-card key at index within the deck identified
// by deckID.
func (d *DealerEG) GetCardKey(index int, deckID string) (*EGPrivateKey, error) {
	keys, err := d.GetDeckKeys(deckID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(keys) {
		return nil, fmt.Errorf("mentalpoker: index %d out of range for deck %q", index, deckID)
	}
	return keys[index], nil
}

// GetDeckKeys returns the full per-card key sequence for deckID.
func (d *DealerEG) GetDeckKeys(deckID string) ([]*EGPrivateKey, error) {
	keys, ok := d.decks[deckID]
	if !ok {
		return nil, ErrUnknownDeck
	}
	return keys, nil
}
