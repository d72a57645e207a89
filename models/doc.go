// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - RoundRequest: a player's posted wish to play together
  - RoundRequestInput: a RoundRequest before id and createdAt are assigned,
    also the body of POST /requests

RoundRequest JSON field names are also the persisted layout:

	id, nickname, playDateSpecified, playDateFlexible, preferredArea,
	courseType, hasCompanion, companionNickname, playStyle,
	shuttleService, requirements, contact, createdAt

# Response Types

  - OptionsResponse: areas, course_types, play_styles
  - SearchResponse: requests, total, matched
  - DebugResponse: all, seed, persisted
  - ErrorResponse: error, message

# Enumerations

Fixed, ordered label sets shown by the client:

  - Areas: 8 regional labels
  - CourseTypes: 7 labels, including CourseTypeUnspecified
  - PlayStyles: 5 labels

IsArea, IsCourseType, and IsPlayStyle check membership.

Dates use DateLayout (YYYY-MM-DD), which also sorts lexically.
*/
package models
