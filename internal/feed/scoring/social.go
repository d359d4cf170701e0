// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"github.com/openann19/pawfeed/internal/models"
)

// Social scores content relevance by social-graph proximity between the
// viewer and the content author. It is a pure value type, safe for
// concurrent use.
//
// Tiers, checked in order:
//
//	direct follow                 -> 100
//	mutual connections            -> min(80, count*10)
//	second-degree reachability    -> 60
//	shared communities            -> min(40, count*5)
//	stranger floor                -> 20
//
// A mutual connection is a followee who follows the viewer back and whose
// own followee list contains the author.
type Social struct{}

// NewSocial creates a social connection engine.
func NewSocial() Social {
	return Social{}
}

// Score returns the social proximity score between a viewer and an author.
func (Social) Score(userID, authorID string, graph *models.SocialGraph) int {
	if graph == nil || authorID == "" {
		return 20
	}

	if _, ok := graph.Following[authorID]; ok {
		return 100
	}

	if n := mutualConnections(authorID, graph); n > 0 {
		s := n * 10
		if s > 80 {
			return 80
		}
		return s
	}

	if secondDegree(authorID, graph) {
		return 60
	}

	if n := sharedCommunities(userID, authorID, graph); n > 0 {
		s := n * 5
		if s > 40 {
			return 40
		}
		return s
	}

	return 20
}

// mutualConnections counts followees who follow the viewer back and are
// themselves connected to the author.
func mutualConnections(authorID string, graph *models.SocialGraph) int {
	count := 0
	for id := range graph.Following {
		if _, back := graph.Followers[id]; !back {
			continue
		}
		if connectedTo(graph.Connections[id], authorID) {
			count++
		}
	}
	return count
}

// secondDegree reports whether any followee's own followee list contains
// the author.
func secondDegree(authorID string, graph *models.SocialGraph) bool {
	for id := range graph.Following {
		if connectedTo(graph.Connections[id], authorID) {
			return true
		}
	}
	return false
}

// sharedCommunities counts communities both the viewer and the author
// belong to.
func sharedCommunities(userID, authorID string, graph *models.SocialGraph) int {
	author := graph.Communities[authorID]
	viewer := graph.Communities[userID]
	if len(author) == 0 || len(viewer) == 0 {
		return 0
	}

	viewerSet := make(map[string]struct{}, len(viewer))
	for _, c := range viewer {
		viewerSet[c] = struct{}{}
	}

	shared := 0
	for _, c := range author {
		if _, ok := viewerSet[c]; ok {
			shared++
		}
	}
	return shared
}

// connectedTo reports whether target appears in the followee list.
func connectedTo(followees []string, target string) bool {
	for _, id := range followees {
		if id == target {
			return true
		}
	}
	return false
}
