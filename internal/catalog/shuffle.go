// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "math/rand/v2"

// Shuffle permutes s in place with the Fisher–Yates algorithm so every
// permutation is equally likely. A nil r uses the global source.
func Shuffle[T any](s []T, r *rand.Rand) {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := len(s) - 1; i > 0; i-- {
		j := intN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Seeded returns a deterministic generator for a seed, so a shuffled feed
// can be reproduced across requests.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
