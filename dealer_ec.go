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

import "fmt"

// DefaultDeckID is the deck identifier used when the caller doesn't supply
// one. It is a convenience, not a reserved name: callers are free to reuse
// it for more than one concurrent deck-in-flight at their own risk.
const DefaultDeckID = "temp"

// DealerEC is one party's state in the elliptic-curve shuffle-and-lock
// scheme: a shuffle key plus per-deck per-card key sequences, keyed by an
// opaque deck id.
type DealerEC struct {
	ShuffleKey  *ECKey
	pointToCard map[string]string
	newDeck     []ECPoint
	decks       map[string][]*ECKey
}

// NewDealerEC builds a dealer over the given card names, generating the
// canonical EC deck (i*G for i=1..len(cards)) and its point-to-card table.
// If shuffleKey is nil, a fresh one is sampled.
func NewDealerEC(cards []string, shuffleKey *ECKey) (*DealerEC, error) {
	deck := ECDeck(len(cards))
	pointToCard := make(map[string]string, len(cards))
	for i, p := range deck {
		pointToCard[p.X().String()] = cards[i]
	}
	if shuffleKey == nil {
		var err error
		shuffleKey, err = NewECKey()
		if err != nil {
			return nil, err
		}
	}
	return &DealerEC{
		ShuffleKey:  shuffleKey,
		pointToCard: pointToCard,
		newDeck:     deck,
		decks:       make(map[string][]*ECKey),
	}, nil
}

// Shuffle masks every card in deck with the dealer's shuffle key and
// randomly permutes the result, producing a shuffle-locked deck. If
// refreshKey is true, a fresh shuffle key is sampled before masking;
// refreshKey has no default and the caller always chooses. Refreshing on
// every call is safe in the EC scheme, since each party's shuffle lock is
// removed again (by the same party) before the first deal.
func (d *DealerEC) Shuffle(deck []ECPoint, refreshKey bool) ([]ECPoint, error) {
	if refreshKey {
		key, err := NewECKey()
		if err != nil {
			return nil, err
		}
		d.ShuffleKey = key
	}
	masked := make([]ECPoint, len(deck))
	for i, card := range deck {
		masked[i] = d.ShuffleKey.Mask(card)
	}
	if err := Shuffle(len(masked), func(i, j int) { masked[i], masked[j] = masked[j], masked[i] }); err != nil {
		return nil, err
	}
	return masked, nil
}

// Deal removes this dealer's shuffle lock (if shuffleLocked), masks each
// position with a fresh per-card key, and stores the key sequence under
// deckID for later retrieval. The result is a deal-locked deck.
func (d *DealerEC) Deal(deck []ECPoint, shuffleLocked bool, deckID string) ([]ECPoint, error) {
	if shuffleLocked {
		unmasked := make([]ECPoint, len(deck))
		for i, card := range deck {
			p, err := d.ShuffleKey.Unmask(card)
			if err != nil {
				return nil, err
			}
			unmasked[i] = p
		}
		deck = unmasked
	}
	keys := make([]*ECKey, len(deck))
	dealt := make([]ECPoint, len(deck))
	for i, card := range deck {
		key, err := NewECKey()
		if err != nil {
			return nil, err
		}
		keys[i] = key
		dealt[i] = key.Mask(card)
	}
	d.decks[deckID] = keys
	return dealt, nil
}

// RevealCard applies Unmask with each key in order and looks up the
// resulting point in the canonical table. It returns ErrUnknownCardEncoding
// if the fully-unmasked point isn't a canonical card -- in particular, if
// keys is incomplete, the residual point will not appear in the table.
func (d *DealerEC) RevealCard(card ECPoint, keys []*ECKey) (string, error) {
	for _, key := range keys {
		p, err := key.Unmask(card)
		if err != nil {
			return "", err
		}
		card = p
	}
	name, ok := d.pointToCard[card.X().String()]
	if !ok {
		return "", ErrUnknownCardEncoding
	}
	return name, nil
}

// GetCardKey returns the per-card key at index within the deck identified
// by deckID.
func (d *DealerEC) GetCardKey(index int, deckID string) (*ECKey, error) {
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
func (d *DealerEC) GetDeckKeys(deckID string) ([]*ECKey, error) {
	keys, ok := d.decks[deckID]
	if !ok {
		return nil, ErrUnknownDeck
	}
	return keys, nil
}

// NewDeck returns the canonical fresh EC deck.
func (d *DealerEC) NewDeck() []ECPoint {
	return append([]ECPoint(nil), d.newDeck...)
}
