package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"ping-list-service/internal/repository/model"
)

var (
	ErrGuildNotFound    = errors.New("guild not found")
	ErrListNotFound     = errors.New("list not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrRuleNotFound     = errors.New("rule not found")

	// ErrNameTaken is returned when a list name or alias collides with an
	// existing list of the same guild (case-insensitive).
	ErrNameTaken = errors.New("name already in use")

	ErrAlreadyMember = errors.New("user already in list")
	ErrNotMember     = errors.New("user not in list")
)

// Repository is the persistence gateway for all policy entities. It is the
// sole point of shared mutable state: callers never cache entities across
// operations and treat every load as authoritative at call time.
//
// ClaimListPing, AddProposalVote and CompareAndSwapProposalState are the
// read-modify-write points that require at-most-one-winner semantics under
// contention; implementations must back them with an atomic conditional
// update, never a read-then-write.
type Repository interface {
	GetGuild(ctx context.Context, guildId string) (*model.Guild, error)
	SaveGuild(ctx context.Context, guild *model.Guild) error

	GetList(ctx context.Context, listId uuid.UUID) (*model.PingList, error)
	// GetListByName looks a list up by display name or alias,
	// case-insensitively within the guild.
	GetListByName(ctx context.Context, guildId string, name string) (*model.PingList, error)
	CreateList(ctx context.Context, list *model.PingList) error
	UpdateList(ctx context.Context, list *model.PingList) error
	DeleteList(ctx context.Context, listId uuid.UUID) error

	// ClaimListPing atomically records a broadcast at now if the list's
	// previous broadcast is at least cooldown ago (or absent). When the
	// claim is lost, the returned timestamp is the current lastPingAt so
	// the caller can report the remaining wait.
	ClaimListPing(ctx context.Context, listId uuid.UUID, now time.Time, cooldown time.Duration) (bool, time.Time, error)

	GetListMemberIds(ctx context.Context, listId uuid.UUID) ([]string, error)
	AddMember(ctx context.Context, listId uuid.UUID, userId string) error
	RemoveMember(ctx context.Context, listId uuid.UUID, userId string) error
	RemoveListMembers(ctx context.Context, listId uuid.UUID) error

	// GetRoleExceptions returns the exceptions configured for any of the
	// given roles; roles without a row are simply absent from the result.
	GetRoleExceptions(ctx context.Context, guildId string, roleIds []string) ([]*model.RoleException, error)
	SetRoleException(ctx context.Context, exception *model.RoleException) error
	// GetUserException returns (nil, nil) when no row exists.
	GetUserException(ctx context.Context, guildId string, userId string) (*model.UserException, error)
	SetUserException(ctx context.Context, exception *model.UserException) error
	// GetChannelRestriction returns (nil, nil) when no row exists.
	GetChannelRestriction(ctx context.Context, channelId string) (*model.ChannelRestriction, error)
	SetChannelRestriction(ctx context.Context, restriction *model.ChannelRestriction) error

	CreateProposal(ctx context.Context, proposal *model.Proposal) error
	GetProposal(ctx context.Context, proposalId string) (*model.Proposal, error)
	// AddProposalVote records a vote if the proposal is active and the user
	// has not voted yet, and returns the proposal's state afterwards either
	// way. Callers inspect the returned state to tell the cases apart.
	AddProposalVote(ctx context.Context, proposalId string, userId string) (*model.Proposal, error)
	CompareAndSwapProposalState(ctx context.Context, proposalId string, expected model.ProposalStatus, next model.ProposalStatus) (bool, error)
	GetDueProposals(ctx context.Context, now time.Time) ([]*model.Proposal, error)

	// GetRules returns the guild's role-log rules in insertion order.
	GetRules(ctx context.Context, guildId string) ([]*model.RoleLogRule, error)
	CreateRule(ctx context.Context, rule *model.RoleLogRule) error
	DeleteRule(ctx context.Context, ruleId uuid.UUID) error
}
