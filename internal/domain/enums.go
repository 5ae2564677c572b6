package domain

// EventType is the upstream vocabulary for business outcomes.
type EventType string

const (
	EventTypePositiveReply  EventType = "positive_reply"
	EventTypeSignUp         EventType = "sign_up"
	EventTypeMeetingBooked  EventType = "meeting_booked"
	EventTypePayingCustomer EventType = "paying_customer"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypePositiveReply, EventTypeSignUp, EventTypeMeetingBooked, EventTypePayingCustomer:
		return true
	}
	return false
}

// EventSource is the canonical timeline vocabulary stored with domain events.
type EventSource string

const (
	EventSourcePositiveReply  EventSource = "POSITIVE_REPLY"
	EventSourceSignUp         EventSource = "SIGN_UP"
	EventSourceMeetingBooked  EventSource = "MEETING_BOOKED"
	EventSourcePayingCustomer EventSource = "PAYING_CUSTOMER"
)

func (s EventSource) String() string { return string(s) }

// MatchType describes how an event was tied to an outbound email.
type MatchType string

const (
	MatchTypeHard MatchType = "HARD_MATCH"
	MatchTypeSoft MatchType = "SOFT_MATCH"
	MatchTypeNone MatchType = "NO_MATCH"
)

func (m MatchType) String() string { return string(m) }

func (m MatchType) IsValid() bool {
	switch m {
	case MatchTypeHard, MatchTypeSoft, MatchTypeNone:
		return true
	}
	return false
}

// AttributionStatus is the window outcome of a match.
type AttributionStatus string

const (
	AttributionStatusAttributed    AttributionStatus = "ATTRIBUTED"
	AttributionStatusOutsideWindow AttributionStatus = "OUTSIDE_WINDOW"
	AttributionStatusNoMatch       AttributionStatus = "NO_MATCH"
)

func (s AttributionStatus) String() string { return string(s) }

func (s AttributionStatus) IsValid() bool {
	switch s {
	case AttributionStatusAttributed, AttributionStatusOutsideWindow, AttributionStatusNoMatch:
		return true
	}
	return false
}

// ReviewStatus is the client review/dispute state of an attributed domain.
type ReviewStatus string

const (
	ReviewStatusNone          ReviewStatus = "NO_STATUS"
	ReviewStatusPendingReview ReviewStatus = "PENDING_CLIENT_REVIEW"
	ReviewStatusAttributed    ReviewStatus = "ATTRIBUTED"
	ReviewStatusRejected      ReviewStatus = "CLIENT_REJECTED"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusNone, ReviewStatusPendingReview, ReviewStatusAttributed, ReviewStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further review transition is possible.
func (s ReviewStatus) IsTerminal() bool {
	return s == ReviewStatusAttributed || s == ReviewStatusRejected
}

// CanTransitionTo reports whether the review workflow allows moving from s to next.
func (s ReviewStatus) CanTransitionTo(next ReviewStatus) bool {
	switch s {
	case ReviewStatusNone:
		return next == ReviewStatusPendingReview
	case ReviewStatusPendingReview:
		return next == ReviewStatusAttributed || next == ReviewStatusRejected
	}
	return false
}

// PendingEventStatus is the processing state of a queued attribution event.
type PendingEventStatus string

const (
	PendingEventStatusPending    PendingEventStatus = "pending"
	PendingEventStatusProcessing PendingEventStatus = "processing"
	PendingEventStatusDone       PendingEventStatus = "done"
	PendingEventStatusFailed     PendingEventStatus = "failed"
)

func (s PendingEventStatus) IsValid() bool {
	switch s {
	case PendingEventStatusPending, PendingEventStatusProcessing, PendingEventStatusDone, PendingEventStatusFailed:
		return true
	}
	return false
}
