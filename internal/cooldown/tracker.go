package cooldown

import (
	"context"
	"fmt"
	"time"

	"ping-list-service/internal/permission"
	"ping-list-service/internal/repository"
	"ping-list-service/internal/repository/model"
)

// ActiveError reports that a list's cooldown window has not elapsed yet.
type ActiveError struct {
	Remaining time.Duration
}

func (e *ActiveError) Error() string {
	return fmt.Sprintf("cooldown active, %s remaining", e.Remaining)
}

// Tracker enforces the per-list broadcast cooldown. The cooldown is shared
// by the whole list: any successful broadcast resets the clock for all
// subsequent callers.
type Tracker struct {
	repo repository.Repository
}

func NewTracker(repo repository.Repository) *Tracker {
	return &Tracker{repo: repo}
}

// CheckAndRecord claims the list's cooldown window at now, or fails with
// *ActiveError carrying the remaining wait. Actors flagged bypass_cooldown
// (individually or through any role) always succeed and never write the
// timestamp, so they do not reset the shared window for everyone else.
// The claim itself is a single conditional write, so exactly one contender
// wins a contested window.
func (t *Tracker) CheckAndRecord(ctx context.Context, guild *model.Guild, list *model.PingList, actor permission.Actor, now time.Time) error {
	bypass, err := t.bypasses(ctx, guild.Id, actor)
	if err != nil {
		return err
	}
	if bypass {
		return nil
	}

	cd := list.EffectiveCooldown(guild)

	claimed, lastPingAt, err := t.repo.ClaimListPing(ctx, list.Id, now, cd)
	if err != nil {
		return err
	}
	if !claimed {
		remaining := cd - now.Sub(lastPingAt)
		if remaining < 0 {
			remaining = 0
		}
		return &ActiveError{Remaining: remaining}
	}
	return nil
}

func (t *Tracker) bypasses(ctx context.Context, guildId string, actor permission.Actor) (bool, error) {
	userException, err := t.repo.GetUserException(ctx, guildId, actor.UserId)
	if err != nil {
		return false, err
	}
	if userException != nil && userException.BypassCooldown {
		return true, nil
	}

	roleExceptions, err := t.repo.GetRoleExceptions(ctx, guildId, actor.RoleIds)
	if err != nil {
		return false, err
	}
	for _, exception := range roleExceptions {
		if exception.BypassCooldown {
			return true, nil
		}
	}
	return false, nil
}
