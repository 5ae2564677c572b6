package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/service/review"
)

type eventQueueMock struct {
	enqueueFn func(ctx context.Context, ev domain.AttributionEvent, source string) (bool, error)
	getFn     func(ctx context.Context, id uuid.UUID) (*domain.PendingEvent, error)
	statsFn   func(ctx context.Context) (domain.PendingEventStats, error)
}

func (m *eventQueueMock) Enqueue(ctx context.Context, ev domain.AttributionEvent, source string) (bool, error) {
	return m.enqueueFn(ctx, ev, source)
}

func (m *eventQueueMock) Get(ctx context.Context, id uuid.UUID) (*domain.PendingEvent, error) {
	return m.getFn(ctx, id)
}

func (m *eventQueueMock) Stats(ctx context.Context) (domain.PendingEventStats, error) {
	return m.statsFn(ctx)
}

type eventProcessorMock struct {
	processFn func(ctx context.Context, ev domain.AttributionEvent) (domain.MatchResult, error)
}

func (m *eventProcessorMock) ProcessEvent(ctx context.Context, ev domain.AttributionEvent) (domain.MatchResult, error) {
	return m.processFn(ctx, ev)
}

type reviewServiceMock struct {
	getFn      func(ctx context.Context, id uuid.UUID) (*domain.AttributedDomain, error)
	requestFn  func(ctx context.Context, id uuid.UUID) (*domain.AttributedDomain, error)
	confirmFn  func(ctx context.Context, in review.ResolveInput) (*domain.AttributedDomain, error)
	rejectFn   func(ctx context.Context, in review.ResolveInput) (*domain.AttributedDomain, error)
	matchesFn  func(ctx context.Context, id uuid.UUID, limit int) ([]domain.AttributionMatch, error)
	timelineFn func(ctx context.Context, id uuid.UUID) ([]domain.DomainEvent, error)
	findFn     func(ctx context.Context, clientID, name string) (*domain.AttributedDomain, error)
}

func (m *reviewServiceMock) GetDomain(ctx context.Context, id uuid.UUID) (*domain.AttributedDomain, error) {
	return m.getFn(ctx, id)
}

func (m *reviewServiceMock) RequestReview(ctx context.Context, id uuid.UUID) (*domain.AttributedDomain, error) {
	return m.requestFn(ctx, id)
}

func (m *reviewServiceMock) Confirm(ctx context.Context, in review.ResolveInput) (*domain.AttributedDomain, error) {
	return m.confirmFn(ctx, in)
}

func (m *reviewServiceMock) Reject(ctx context.Context, in review.ResolveInput) (*domain.AttributedDomain, error) {
	return m.rejectFn(ctx, in)
}

func (m *reviewServiceMock) Matches(ctx context.Context, id uuid.UUID, limit int) ([]domain.AttributionMatch, error) {
	return m.matchesFn(ctx, id, limit)
}

func (m *reviewServiceMock) Timeline(ctx context.Context, id uuid.UUID) ([]domain.DomainEvent, error) {
	return m.timelineFn(ctx, id)
}

func (m *reviewServiceMock) FindDomain(ctx context.Context, clientID, name string) (*domain.AttributedDomain, error) {
	return m.findFn(ctx, clientID, name)
}
