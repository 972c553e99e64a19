package permission

import (
	"context"
	"errors"

	"ping-list-service/internal/repository"
	"ping-list-service/internal/repository/model"
)

// ErrDenied is the policy-level refusal surfaced to the dispatcher.
var ErrDenied = errors.New("denied by policy")

// Actor is the acting user as decoded from the platform event.
type Actor struct {
	UserId  string
	RoleIds []string
}

// Resolver combines guild defaults, role exceptions, user exceptions and
// channel restrictions into one decision. It never mutates anything and
// loads entities fresh on every call.
type Resolver struct {
	repo repository.Repository
}

func NewResolver(repo repository.Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns the decisive scope for an action. channelId may be empty
// for calls that are not channel-scoped. A missing guild is a hard error
// (repository.ErrGuildNotFound); policy resolution must never default-allow
// because configuration failed to load.
//
// Precedence, most specific wins:
//  1. guild-wide default for the action,
//  2. role exceptions, folded in with Combine (one Allow role outranks any
//     number of Deny roles),
//  3. a decisive user exception replaces the role-derived result,
//  4. a Deny channel restriction is a hard ceiling over everything above.
func (r *Resolver) Resolve(ctx context.Context, action model.Action, guildId string, actor Actor, channelId string) (model.Scope, error) {
	guild, err := r.repo.GetGuild(ctx, guildId)
	if err != nil {
		return model.ScopeNeutral, err
	}
	return r.resolveWithBase(ctx, action, guild, guild.DefaultScope(action), actor, channelId)
}

// ResolveForList resolves an action targeting a specific list. A decisive
// list-level override (join/ping) replaces the guild default as the base:
// it is more specific than the guild but still below role and user
// exceptions.
func (r *Resolver) ResolveForList(ctx context.Context, action model.Action, list *model.PingList, actor Actor, channelId string) (model.Scope, error) {
	guild, err := r.repo.GetGuild(ctx, list.GuildId)
	if err != nil {
		return model.ScopeNeutral, err
	}

	base := guild.DefaultScope(action)
	if override := list.OverrideScope(action); override.Decisive() {
		base = override
	}
	return r.resolveWithBase(ctx, action, guild, base, actor, channelId)
}

func (r *Resolver) resolveWithBase(ctx context.Context, action model.Action, guild *model.Guild, base model.Scope, actor Actor, channelId string) (model.Scope, error) {
	scope := base

	roleExceptions, err := r.repo.GetRoleExceptions(ctx, guild.Id, actor.RoleIds)
	if err != nil {
		return model.ScopeNeutral, err
	}
	for _, exception := range roleExceptions {
		scope = scope.Combine(exception.ScopeFor(action))
	}

	userException, err := r.repo.GetUserException(ctx, guild.Id, actor.UserId)
	if err != nil {
		return model.ScopeNeutral, err
	}
	if userException != nil {
		// User-level settings are authoritative over role-derived results,
		// but a Neutral field defers rather than erasing them.
		if userScope := userException.ScopeFor(action); userScope.Decisive() {
			scope = userScope
		}
	}

	if action.ChannelScoped() && channelId != "" {
		restriction, err := r.repo.GetChannelRestriction(ctx, channelId)
		if err != nil {
			return model.ScopeNeutral, err
		}
		if restriction != nil && restriction.ScopeFor(action) == model.ScopeDeny {
			return model.ScopeDeny, nil
		}
	}

	return scope, nil
}

// IsAllowed interprets the decisive result: a Neutral outcome is allowed
// (default-open) unless the guild explicitly restricted the action
// guild-wide, in which case Neutral is closed. Communities that never
// touched the restriction commands must not be locked out.
func (r *Resolver) IsAllowed(ctx context.Context, action model.Action, guildId string, actor Actor, channelId string) (bool, error) {
	guild, err := r.repo.GetGuild(ctx, guildId)
	if err != nil {
		return false, err
	}

	scope, err := r.resolveWithBase(ctx, action, guild, guild.DefaultScope(action), actor, channelId)
	if err != nil {
		return false, err
	}
	return interpret(scope, guild.DefaultScope(action)), nil
}

// IsAllowedForList is IsAllowed over ResolveForList.
func (r *Resolver) IsAllowedForList(ctx context.Context, action model.Action, list *model.PingList, actor Actor, channelId string) (bool, error) {
	guild, err := r.repo.GetGuild(ctx, list.GuildId)
	if err != nil {
		return false, err
	}

	base := guild.DefaultScope(action)
	if override := list.OverrideScope(action); override.Decisive() {
		base = override
	}

	scope, err := r.resolveWithBase(ctx, action, guild, base, actor, channelId)
	if err != nil {
		return false, err
	}
	return interpret(scope, guild.DefaultScope(action)), nil
}

// CanManage reports whether the actor holds the decisive moderation
// capability. Unlike the other actions, Manage is never default-open.
func (r *Resolver) CanManage(ctx context.Context, guildId string, actor Actor) (bool, error) {
	scope, err := r.Resolve(ctx, model.ActionManage, guildId, actor, "")
	if err != nil {
		return false, err
	}
	return scope == model.ScopeAllow, nil
}

func interpret(scope model.Scope, guildDefault model.Scope) bool {
	switch scope {
	case model.ScopeAllow:
		return true
	case model.ScopeDeny:
		return false
	}
	return guildDefault != model.ScopeDeny
}
