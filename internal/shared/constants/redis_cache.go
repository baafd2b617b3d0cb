package constants

import (
	"fmt"
	"time"
)

// Redis key and TTL catalogue for the Gatherly application.
// Pattern: gatherly:{module}:{operation}:{identifier}

const CACHE_PREFIX = "gatherly"

// TTL tiers
const (
	TTL_STATIC_SHORT   = 6 * time.Hour    // user profiles
	TTL_EVENT_DETAIL   = 2 * time.Hour    // individual events
	TTL_EVENT_LIST     = 1 * time.Hour    // event listings
	TTL_SEARCH_RESULTS = 15 * time.Minute // search responses
	TTL_RESERVED_SEATS = 30 * time.Second // live seat state
)

// Event cache keys
const (
	CACHE_KEY_EVENT_LIST   = CACHE_PREFIX + ":events:list"        // + :status:X:category:Y:limit:N
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:id:"  // + event-id
	CACHE_KEY_EVENT_SEARCH = CACHE_PREFIX + ":events:search:sig:" // + query signature
)

// Seat keys
const (
	CACHE_KEY_RESERVED_SEATS = CACHE_PREFIX + ":seats:reserved:event:" // + event-id
	KEY_SEAT_CLAIM           = CACHE_PREFIX + ":seats:claim:"          // + event-id:row:column
)

// Invalidation patterns
const (
	PATTERN_INVALIDATE_EVENT_ALL    = CACHE_PREFIX + ":events:*"
	PATTERN_INVALIDATE_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:id:"
	PATTERN_INVALIDATE_SEATS        = CACHE_PREFIX + ":seats:*"
)

// BuildEventListKey builds a cache key for a filtered event listing
func BuildEventListKey(status, category, createdBy string, limit int) string {
	return fmt.Sprintf("%s:status:%s:category:%s:by:%s:limit:%d",
		CACHE_KEY_EVENT_LIST, status, category, createdBy, limit)
}

// BuildEventDetailKey builds a cache key for one event
func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

// BuildReservedSeatsKey builds the cache key for an event's reserved seat list
func BuildReservedSeatsKey(eventID string) string {
	return CACHE_KEY_RESERVED_SEATS + eventID
}

// BuildSeatClaimKey builds the redis key marking one seat of one event as taken
func BuildSeatClaimKey(eventID string, row, column int) string {
	return fmt.Sprintf("%s%s:%d:%d", KEY_SEAT_CLAIM, eventID, row, column)
}
