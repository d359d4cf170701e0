// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/openann19/pawfeed/internal/feed"
)

// DataProvider supplies the per-user state feed generation needs. The
// handlers depend on this interface so the data source can be swapped
// without touching HTTP code.
type DataProvider interface {
	// GetUserProfile returns the viewer profile.
	GetUserProfile(ctx context.Context, userID string) (*feed.UserProfile, error)

	// GetSocialGraph returns the viewer's social graph. A user with no
	// connections gets an empty graph, not an error.
	GetSocialGraph(ctx context.Context, userID string) (*feed.SocialGraph, error)

	// GetEngagementHistory returns the viewer's engagement history. A new
	// user gets an empty history, not an error.
	GetEngagementHistory(ctx context.Context, userID string) (*feed.EngagementHistory, error)

	// GetCandidates returns the candidate content pool for the viewer.
	GetCandidates(ctx context.Context, userID string) ([]feed.FeedContent, error)

	// GetContent returns a single content item by id.
	GetContent(ctx context.Context, contentID string) (*feed.FeedContent, error)

	// GetTrendingTopics returns the current topic trend scores.
	GetTrendingTopics(ctx context.Context) (map[string]float64, error)
}

// NotFoundError is returned by providers for unknown users or content.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// MemoryProvider is an in-memory DataProvider, used in tests and
// single-node deployments seeded at startup.
type MemoryProvider struct {
	mu        sync.RWMutex
	users     map[string]feed.UserProfile
	graphs    map[string]feed.SocialGraph
	histories map[string]feed.EngagementHistory
	content   map[string]feed.FeedContent
	order     []string
	trending  map[string]float64
}

var _ DataProvider = (*MemoryProvider)(nil)

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		users:     make(map[string]feed.UserProfile),
		graphs:    make(map[string]feed.SocialGraph),
		histories: make(map[string]feed.EngagementHistory),
		content:   make(map[string]feed.FeedContent),
		trending:  make(map[string]float64),
	}
}

// PutUser stores or replaces a user profile.
func (p *MemoryProvider) PutUser(profile feed.UserProfile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[profile.ID] = profile
}

// PutGraph stores or replaces a user's social graph.
func (p *MemoryProvider) PutGraph(userID string, graph feed.SocialGraph) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.graphs[userID] = graph
}

// PutHistory stores or replaces a user's engagement history.
func (p *MemoryProvider) PutHistory(userID string, history feed.EngagementHistory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.histories[userID] = history
}

// PutContent adds content to the candidate pool, replacing any item with
// the same id.
func (p *MemoryProvider) PutContent(items ...feed.FeedContent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range items {
		if _, exists := p.content[item.ID]; !exists {
			p.order = append(p.order, item.ID)
		}
		p.content[item.ID] = item
	}
}

// SetTrending replaces the trending topic scores.
func (p *MemoryProvider) SetTrending(topics map[string]float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trending = topics
}

// GetUserProfile implements DataProvider.
func (p *MemoryProvider) GetUserProfile(_ context.Context, userID string) (*feed.UserProfile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	profile, ok := p.users[userID]
	if !ok {
		return nil, &NotFoundError{Kind: "user", ID: userID}
	}
	return &profile, nil
}

// GetSocialGraph implements DataProvider.
func (p *MemoryProvider) GetSocialGraph(_ context.Context, userID string) (*feed.SocialGraph, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	graph, ok := p.graphs[userID]
	if !ok {
		graph = feed.SocialGraph{}
	}
	return &graph, nil
}

// GetEngagementHistory implements DataProvider.
func (p *MemoryProvider) GetEngagementHistory(_ context.Context, userID string) (*feed.EngagementHistory, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	history, ok := p.histories[userID]
	if !ok {
		history = feed.EngagementHistory{}
	}
	return &history, nil
}

// GetCandidates implements DataProvider. Candidates are returned in
// insertion order; ranking happens downstream.
func (p *MemoryProvider) GetCandidates(_ context.Context, _ string) ([]feed.FeedContent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	items := make([]feed.FeedContent, 0, len(p.order))
	for _, id := range p.order {
		items = append(items, p.content[id])
	}
	return items, nil
}

// GetContent implements DataProvider.
func (p *MemoryProvider) GetContent(_ context.Context, contentID string) (*feed.FeedContent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	item, ok := p.content[contentID]
	if !ok {
		return nil, &NotFoundError{Kind: "content", ID: contentID}
	}
	return &item, nil
}

// GetTrendingTopics implements DataProvider.
func (p *MemoryProvider) GetTrendingTopics(_ context.Context) (map[string]float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	topics := make(map[string]float64, len(p.trending))
	for topic, score := range p.trending {
		topics[topic] = score
	}
	return topics, nil
}
