// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package search narrows a collection of round requests by user-chosen
// criteria. It never modifies its input and never touches storage.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/danielhkuo/round-match/models"
)

var ErrInvalidCriteria = errors.New("invalid search criteria")

// Criteria are the optional constraints of a search. Zero values mean "no
// constraint" for every field.
type Criteria struct {
	Areas          []string // match if any area overlaps
	CourseType     string   // exact match
	PlayStyles     []string // match if any style overlaps
	HasCompanion   *bool
	ShuttleService *bool
	DateFrom       string // inclusive YYYY-MM-DD lower bound on playDateSpecified
}

// Active reports whether any criterion is set.
func (c Criteria) Active() bool {
	return len(c.Areas) > 0 ||
		c.CourseType != "" ||
		len(c.PlayStyles) > 0 ||
		c.HasCompanion != nil ||
		c.ShuttleService != nil ||
		c.DateFrom != ""
}

// Filter returns the requests satisfying every active criterion, in their
// original order. With no active criteria it returns requests itself.
func Filter(requests []models.RoundRequest, c Criteria) []models.RoundRequest {
	if !c.Active() {
		return requests
	}

	out := make([]models.RoundRequest, 0, len(requests))
	for _, r := range requests {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether r satisfies every active criterion.
func (c Criteria) Match(r models.RoundRequest) bool {
	if len(c.Areas) > 0 && !intersects(r.PreferredArea, c.Areas) {
		return false
	}
	if c.CourseType != "" && r.CourseType != c.CourseType {
		return false
	}
	if len(c.PlayStyles) > 0 && !intersects(r.PlayStyle, c.PlayStyles) {
		return false
	}
	if c.HasCompanion != nil && r.HasCompanion != *c.HasCompanion {
		return false
	}
	if c.ShuttleService != nil && r.ShuttleService != *c.ShuttleService {
		return false
	}
	// Flexible-only requests always pass the date bound.
	// YYYY-MM-DD compares correctly as a string.
	if c.DateFrom != "" && r.PlayDateSpecified != "" && r.PlayDateSpecified < c.DateFrom {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// ParseQuery builds Criteria from URL query parameters:
//
//	area, play_style        repeatable
//	course_type             single label
//	has_companion           true|false
//	shuttle_service         true|false
//	date_from               YYYY-MM-DD
//
// Empty values are ignored.
func ParseQuery(q url.Values) (Criteria, error) {
	var c Criteria

	c.Areas = nonEmpty(q["area"])
	c.PlayStyles = nonEmpty(q["play_style"])
	c.CourseType = q.Get("course_type")

	var err error
	if c.HasCompanion, err = parseTriState(q.Get("has_companion")); err != nil {
		return Criteria{}, fmt.Errorf("%w: has_companion: %v", ErrInvalidCriteria, err)
	}
	if c.ShuttleService, err = parseTriState(q.Get("shuttle_service")); err != nil {
		return Criteria{}, fmt.Errorf("%w: shuttle_service: %v", ErrInvalidCriteria, err)
	}

	if d := q.Get("date_from"); d != "" {
		if _, err := time.Parse(models.DateLayout, d); err != nil {
			return Criteria{}, fmt.Errorf("%w: date_from must be YYYY-MM-DD", ErrInvalidCriteria)
		}
		c.DateFrom = d
	}

	return c, nil
}

func parseTriState(v string) (*bool, error) {
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
