// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package search

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/round-match/models"
)

const hokkaido = "北海道"

func boolPtr(b bool) *bool { return &b }

func ids(reqs []models.RoundRequest) []string {
	out := []string{}
	for _, r := range reqs {
		out = append(out, r.ID)
	}
	return out
}

func fixtures() []models.RoundRequest {
	return []models.RoundRequest{
		{
			ID:                "a",
			PlayDateSpecified: "2025-06-01",
			PreferredArea:     []string{hokkaido},
			CourseType:        "林間",
			HasCompanion:      true,
			PlayStyle:         []string{"スループレー"},
			ShuttleService:    true,
		},
		{
			ID:                "b",
			PlayDateSpecified: "2025-05-31",
			PreferredArea:     []string{hokkaido, models.Areas[3]},
			CourseType:        "丘陵",
			HasCompanion:      false,
			PlayStyle:         []string{"2サムOK", "キャディ付"},
		},
		{
			ID:               "c",
			PlayDateFlexible: "weekends",
			PreferredArea:    []string{models.Areas[4]},
			CourseType:       "林間",
			HasCompanion:     false,
			PlayStyle:        []string{"4サム希望"},
			ShuttleService:   true,
		},
	}
}

func TestFilter_NoCriteriaReturnsInput(t *testing.T) {
	reqs := fixtures()
	got := Filter(reqs, Criteria{})

	require.Len(t, got, len(reqs))
	assert.Equal(t, reqs, got)
	// Same backing array: nothing copied
	assert.Same(t, &reqs[0], &got[0])
}

func TestFilter_EmptySlicesAreNoConstraint(t *testing.T) {
	reqs := fixtures()
	got := Filter(reqs, Criteria{Areas: []string{}, PlayStyles: []string{}})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"area", Criteria{Areas: []string{hokkaido}}, []string{"a", "b"}},
		{"area any of", Criteria{Areas: []string{models.Areas[3], models.Areas[4]}}, []string{"b", "c"}},
		{"area no match", Criteria{Areas: []string{models.Areas[7]}}, []string{}},
		{"course type", Criteria{CourseType: "林間"}, []string{"a", "c"}},
		{"play style", Criteria{PlayStyles: []string{"キャディ付", "4サム希望"}}, []string{"b", "c"}},
		{"companion required", Criteria{HasCompanion: boolPtr(true)}, []string{"a"}},
		{"companion excluded", Criteria{HasCompanion: boolPtr(false)}, []string{"b", "c"}},
		{"shuttle wanted", Criteria{ShuttleService: boolPtr(true)}, []string{"a", "c"}},
		{"shuttle not wanted", Criteria{ShuttleService: boolPtr(false)}, []string{"b"}},
		{"date bound inclusive", Criteria{DateFrom: "2025-06-01"}, []string{"a", "c"}},
		{"date bound early", Criteria{DateFrom: "2025-01-01"}, []string{"a", "b", "c"}},
		{"date bound late keeps flexible", Criteria{DateFrom: "2026-01-01"}, []string{"c"}},
		{"area and companion", Criteria{Areas: []string{hokkaido}, HasCompanion: boolPtr(true)}, []string{"a"}},
		{"course and shuttle", Criteria{CourseType: "林間", ShuttleService: boolPtr(true), DateFrom: "2025-06-01"}, []string{"a", "c"}},
		{"all constraints", Criteria{
			Areas:          []string{hokkaido},
			CourseType:     "丘陵",
			PlayStyles:     []string{"2サムOK"},
			HasCompanion:   boolPtr(false),
			ShuttleService: boolPtr(false),
			DateFrom:       "2025-05-01",
		}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixtures(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	reqs := fixtures()
	before := fixtures()

	Filter(reqs, Criteria{Areas: []string{hokkaido}, HasCompanion: boolPtr(false)})
	assert.Equal(t, before, reqs)
}

func TestCriteria_Active(t *testing.T) {
	assert.False(t, Criteria{}.Active())
	assert.True(t, Criteria{DateFrom: "2025-01-01"}.Active())
	assert.True(t, Criteria{HasCompanion: boolPtr(false)}.Active())
}

func TestParseQuery(t *testing.T) {
	q := url.Values{}
	q.Add("area", hokkaido)
	q.Add("area", models.Areas[1])
	q.Add("play_style", "")
	q.Set("course_type", "林間")
	q.Set("has_companion", "true")
	q.Set("shuttle_service", "false")
	q.Set("date_from", "2025-06-01")

	c, err := ParseQuery(q)
	require.NoError(t, err)

	assert.Equal(t, []string{hokkaido, models.Areas[1]}, c.Areas)
	assert.Empty(t, c.PlayStyles)
	assert.Equal(t, "林間", c.CourseType)
	require.NotNil(t, c.HasCompanion)
	assert.True(t, *c.HasCompanion)
	require.NotNil(t, c.ShuttleService)
	assert.False(t, *c.ShuttleService)
	assert.Equal(t, "2025-06-01", c.DateFrom)
}

func TestParseQuery_Empty(t *testing.T) {
	c, err := ParseQuery(url.Values{})
	require.NoError(t, err)
	assert.False(t, c.Active())
}

func TestParseQuery_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"companion", "has_companion=maybe"},
		{"shuttle", "shuttle_service=yes please"},
		{"date", "date_from=06/01/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParseQuery(q)
			assert.True(t, errors.Is(err, ErrInvalidCriteria), "expected ErrInvalidCriteria, got %v", err)
		})
	}
}
