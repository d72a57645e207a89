// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed holds the fixed example round requests used to populate an
// empty store.
package seed

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/round-match/models"
)

//go:embed requests.yaml
var requestsYAML []byte

var (
	loadOnce sync.Once
	requests []models.RoundRequest
)

// Requests returns a fresh copy of the seed collection.
// Panics if the embedded data is malformed.
func Requests() []models.RoundRequest {
	loadOnce.Do(func() {
		var err error
		requests, err = decode(requestsYAML)
		if err != nil {
			panic(err)
		}
	})
	return clone(requests)
}

// IDSet returns the ids of reqs as a set. Stores use it to tell seed rows
// from created ones.
func IDSet(reqs []models.RoundRequest) map[string]struct{} {
	ids := make(map[string]struct{}, len(reqs))
	for _, r := range reqs {
		ids[r.ID] = struct{}{}
	}
	return ids
}

func decode(data []byte) ([]models.RoundRequest, error) {
	var reqs []models.RoundRequest
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("decode seed requests: %w", err)
	}

	seen := make(map[string]bool, len(reqs))
	for i, r := range reqs {
		if r.ID == "" {
			return nil, fmt.Errorf("seed request %d: missing id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("seed request %d: duplicate id %q", i, r.ID)
		}
		seen[r.ID] = true
	}
	return reqs, nil
}

func clone(reqs []models.RoundRequest) []models.RoundRequest {
	out := make([]models.RoundRequest, len(reqs))
	for i, r := range reqs {
		r.PreferredArea = slices.Clone(r.PreferredArea)
		r.PlayStyle = slices.Clone(r.PlayStyle)
		out[i] = r
	}
	return out
}
