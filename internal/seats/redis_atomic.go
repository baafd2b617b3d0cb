package seats

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gatherly/internal/shared/constants"
)

// AtomicRedisOperations claims and releases seat keys in Redis. Claims
// are the serialization point for concurrent bookings: a booking only
// proceeds once every requested seat key was set atomically.
type AtomicRedisOperations struct {
	redis *redis.Client
}

func NewAtomicRedisOperations(redisClient *redis.Client) *AtomicRedisOperations {
	return &AtomicRedisOperations{redis: redisClient}
}

// Claims every seat key or none. A key that already exists aborts the
// whole claim and reports which seat lost the race.
const luaClaimSeats = `
-- KEYS[1..N] = seat claim keys
-- ARGV[1] = claim owner (booking id)
-- ARGV[2] = ttl_seconds

local owner = ARGV[1]
local ttl = tonumber(ARGV[2])

for i = 1, #KEYS do
    if redis.call("EXISTS", KEYS[i]) == 1 then
        return {0, KEYS[i]}
    end
end

for i = 1, #KEYS do
    redis.call("SETEX", KEYS[i], ttl, owner)
end

return {1, "success"}
`

// Releases only the claim keys this owner still holds.
const luaReleaseSeats = `
-- KEYS[1..N] = seat claim keys
-- ARGV[1] = claim owner (booking id)

local owner = ARGV[1]
local released = 0

for i = 1, #KEYS do
    if redis.call("GET", KEYS[i]) == owner then
        redis.call("DEL", KEYS[i])
        released = released + 1
    end
end

return released
`

// ErrSeatConflict carries the first seat that was already claimed.
type ErrSeatConflict struct {
	Seat Seat
}

func (e *ErrSeatConflict) Error() string {
	return fmt.Sprintf("seat %s already taken", e.Seat.Label())
}

// ClaimSeats atomically claims all seats for owner, or none of them.
func (a *AtomicRedisOperations) ClaimSeats(ctx context.Context, eventID string, seatList []Seat, owner string, ttl time.Duration) error {
	if a.redis == nil {
		return fmt.Errorf("redis client not available")
	}
	if len(seatList) == 0 {
		return fmt.Errorf("no seats to claim")
	}

	keys := make([]string, len(seatList))
	for i, s := range seatList {
		keys[i] = constants.BuildSeatClaimKey(eventID, s.Row, s.Column)
	}

	result, err := a.redis.Eval(ctx, luaClaimSeats, keys,
		owner, int(ttl.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("failed to claim seats: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return fmt.Errorf("unexpected claim script result: %v", result)
	}

	status, _ := values[0].(int64)
	if status == 1 {
		return nil
	}

	lostKey, _ := values[1].(string)
	for i, key := range keys {
		if key == lostKey {
			return &ErrSeatConflict{Seat: seatList[i]}
		}
	}
	return &ErrSeatConflict{Seat: seatList[0]}
}

// ReleaseSeats frees the claim keys still owned by owner. Keys that
// expired or were claimed by someone else are left alone.
func (a *AtomicRedisOperations) ReleaseSeats(ctx context.Context, eventID string, seatList []Seat, owner string) (int, error) {
	if a.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}
	if len(seatList) == 0 {
		return 0, nil
	}

	keys := make([]string, len(seatList))
	for i, s := range seatList {
		keys[i] = constants.BuildSeatClaimKey(eventID, s.Row, s.Column)
	}

	released, err := a.redis.Eval(ctx, luaReleaseSeats, keys, owner).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to release seats: %w", err)
	}
	return released, nil
}
