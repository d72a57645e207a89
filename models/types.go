// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DateLayout is the calendar date format used for play dates and createdAt.
const DateLayout = "2006-01-02"

// Area labels, in display order
var Areas = []string{
	"北海道",
	"東北（青森、岩手、秋田、宮城、山形、福島、新潟）",
	"北関東（茨城、栃木、群馬、埼玉、山梨、長野）",
	"南関東（埼玉、千葉、東京、神奈川）",
	"東海（静岡、岐阜、愛知、三重）",
	"北陸（富山、石川、福井）",
	"近畿（滋賀、京都、奈良、和歌山、大阪、兵庫）",
	"中国（鳥取、島根、岡山、広島、山口）",
}

// CourseTypeUnspecified is the explicit "no preference" course type.
const CourseTypeUnspecified = "指定しない"

// Course type labels, in display order
var CourseTypes = []string{
	CourseTypeUnspecified,
	"山岳",
	"丘陵",
	"シーサイド",
	"林間",
	"高原",
	"河川",
}

// Play style labels, in display order
var PlayStyles = []string{
	"スループレー",
	"2サムOK",
	"3サムOK",
	"4サム希望",
	"キャディ付",
}

// IsArea reports whether label is one of Areas.
func IsArea(label string) bool { return contains(Areas, label) }

// IsCourseType reports whether label is one of CourseTypes.
func IsCourseType(label string) bool { return contains(CourseTypes, label) }

// IsPlayStyle reports whether label is one of PlayStyles.
func IsPlayStyle(label string) bool { return contains(PlayStyles, label) }

func contains(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}

// Domain types

// RoundRequest is a posted wish to play a round with others.
// JSON names are the persisted layout and must not change.
type RoundRequest struct {
	ID                string   `json:"id" yaml:"id"`
	Nickname          string   `json:"nickname" yaml:"nickname"`
	PlayDateSpecified string   `json:"playDateSpecified,omitempty" yaml:"playDateSpecified"`
	PlayDateFlexible  string   `json:"playDateFlexible,omitempty" yaml:"playDateFlexible"`
	PreferredArea     []string `json:"preferredArea" yaml:"preferredArea"`
	CourseType        string   `json:"courseType" yaml:"courseType"`
	HasCompanion      bool     `json:"hasCompanion" yaml:"hasCompanion"`
	CompanionNickname string   `json:"companionNickname,omitempty" yaml:"companionNickname"`
	PlayStyle         []string `json:"playStyle" yaml:"playStyle"`
	ShuttleService    bool     `json:"shuttleService" yaml:"shuttleService"`
	Requirements      string   `json:"requirements" yaml:"requirements"`
	Contact           string   `json:"contact" yaml:"contact"`
	CreatedAt         string   `json:"createdAt" yaml:"createdAt"`
}

// Request types

// RoundRequestInput is the body of POST /requests: a RoundRequest before id
// and createdAt are assigned.
type RoundRequestInput struct {
	Nickname          string   `json:"nickname"`
	PlayDateSpecified string   `json:"playDateSpecified,omitempty"`
	PlayDateFlexible  string   `json:"playDateFlexible,omitempty"`
	PreferredArea     []string `json:"preferredArea"`
	CourseType        string   `json:"courseType"`
	HasCompanion      bool     `json:"hasCompanion"`
	CompanionNickname string   `json:"companionNickname,omitempty"`
	PlayStyle         []string `json:"playStyle"`
	ShuttleService    bool     `json:"shuttleService"`
	Requirements      string   `json:"requirements"`
	Contact           string   `json:"contact"`
}

// Response types

type OptionsResponse struct {
	Areas       []string `json:"areas"`
	CourseTypes []string `json:"course_types"`
	PlayStyles  []string `json:"play_styles"`
}

type SearchResponse struct {
	Requests []RoundRequest `json:"requests"`
	Total    int            `json:"total"`
	Matched  int            `json:"matched"`
}

// DebugResponse mirrors the three views of the debug panel
type DebugResponse struct {
	All       []RoundRequest `json:"all"`
	Seed      []RoundRequest `json:"seed"`
	Persisted []RoundRequest `json:"persisted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
