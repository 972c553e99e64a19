package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Guild holds the per-guild policy configuration. Platform ids (guilds,
// channels, users, roles, messages) are opaque strings.
type Guild struct {
	Id string `bson:"_id" json:"id"`

	PingCooldown      time.Duration `bson:"pingCooldown" json:"pingCooldown"`
	ProposalThreshold int           `bson:"proposalThreshold" json:"proposalThreshold"`
	ProposalTimeout   time.Duration `bson:"proposalTimeout" json:"proposalTimeout"`

	JoinDefault    Scope `bson:"joinDefault" json:"joinDefault"`
	PingDefault    Scope `bson:"pingDefault" json:"pingDefault"`
	ProposeDefault Scope `bson:"proposeDefault" json:"proposeDefault"`
	ManageDefault  Scope `bson:"manageDefault" json:"manageDefault"`
}

func (g *Guild) DefaultScope(action Action) Scope {
	switch action {
	case ActionJoin:
		return g.JoinDefault
	case ActionPing:
		return g.PingDefault
	case ActionPropose:
		return g.ProposeDefault
	case ActionManage:
		return g.ManageDefault
	}
	return ScopeNeutral
}

// PingList is a named, joinable member group. Name and aliases are unique
// per guild, case-insensitively; SearchNames carries the lowercased forms
// that back the unique index and lookups.
type PingList struct {
	Id      uuid.UUID `bson:"_id" json:"id"`
	GuildId string    `bson:"guildId" json:"guildId"`

	Name        string   `bson:"name" json:"name"`
	Aliases     []string `bson:"aliases,omitempty" json:"aliases,omitempty"`
	SearchNames []string `bson:"searchNames" json:"-"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`

	CooldownOverride *time.Duration `bson:"cooldownOverride,omitempty" json:"cooldownOverride,omitempty"`
	JoinOverride     Scope          `bson:"joinOverride" json:"joinOverride"`
	PingOverride     Scope          `bson:"pingOverride" json:"pingOverride"`

	Visible    bool      `bson:"visible" json:"visible"`
	LastPingAt time.Time `bson:"lastPingAt,omitempty" json:"lastPingAt,omitempty"`
}

// NormalizeSearchNames rebuilds SearchNames from the display name and
// aliases. Call after any rename before persisting.
func (l *PingList) NormalizeSearchNames() {
	names := make([]string, 0, len(l.Aliases)+1)
	names = append(names, strings.ToLower(l.Name))
	for _, a := range l.Aliases {
		names = append(names, strings.ToLower(a))
	}
	l.SearchNames = names
}

func (l *PingList) MatchesName(name string) bool {
	lower := strings.ToLower(name)
	for _, n := range l.SearchNames {
		if n == lower {
			return true
		}
	}
	return false
}

// EffectiveCooldown is the list override when set, else the guild default.
// Zero means no cooldown.
func (l *PingList) EffectiveCooldown(guild *Guild) time.Duration {
	if l.CooldownOverride != nil {
		return *l.CooldownOverride
	}
	return guild.PingCooldown
}

// OverrideScope returns the list-level override for an action, or Neutral
// for actions lists do not override.
func (l *PingList) OverrideScope(action Action) Scope {
	switch action {
	case ActionJoin:
		return l.JoinOverride
	case ActionPing:
		return l.PingOverride
	}
	return ScopeNeutral
}

// Membership records that a user is in a list. At most one row per
// (list, user) pair, enforced by a unique index.
type Membership struct {
	ListId uuid.UUID `bson:"listId" json:"listId"`
	UserId string    `bson:"userId" json:"userId"`
}

// Exception carries the per-role or per-user policy overrides. RoleException
// and UserException share the shape; user rows are authoritative over role
// rows during resolution.
type Exception struct {
	CanPing        Scope `bson:"canPing" json:"canPing"`
	CanPropose     Scope `bson:"canPropose" json:"canPropose"`
	CanManage      Scope `bson:"canManage" json:"canManage"`
	BypassCooldown bool  `bson:"bypassCooldown" json:"bypassCooldown"`
}

func (e *Exception) ScopeFor(action Action) Scope {
	switch action {
	case ActionPing:
		return e.CanPing
	case ActionPropose:
		return e.CanPropose
	case ActionManage:
		return e.CanManage
	}
	return ScopeNeutral
}

type RoleException struct {
	GuildId   string `bson:"guildId" json:"guildId"`
	RoleId    string `bson:"roleId" json:"roleId"`
	Exception `bson:",inline"`
}

type UserException struct {
	GuildId   string `bson:"guildId" json:"guildId"`
	UserId    string `bson:"userId" json:"userId"`
	Exception `bson:",inline"`
}

// ChannelRestriction narrows what may happen in a channel. Restrictions are
// guild-independent and only ever deny; an Allow here is meaningless and is
// ignored by the resolver.
type ChannelRestriction struct {
	ChannelId  string `bson:"_id" json:"channelId"`
	Mentioning Scope  `bson:"mentioning" json:"mentioning"`
	Proposing  Scope  `bson:"proposing" json:"proposing"`
}

func (c *ChannelRestriction) ScopeFor(action Action) Scope {
	switch action {
	case ActionPing:
		return c.Mentioning
	case ActionPropose:
		return c.Proposing
	}
	return ScopeNeutral
}

type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalDenied   ProposalStatus = "denied"
	ProposalRemoved  ProposalStatus = "removed"
)

// Terminal reports whether the status can no longer change.
func (s ProposalStatus) Terminal() bool {
	return s == ProposalAccepted || s == ProposalDenied || s == ProposalRemoved
}

// Proposal is a vote-gated request to create a new ping list, keyed by the
// platform message that originated it.
type Proposal struct {
	Id        string `bson:"_id" json:"id"`
	GuildId   string `bson:"guildId" json:"guildId"`
	ChannelId string `bson:"channelId" json:"channelId"`

	Name      string `bson:"name" json:"name"`
	NameLower string `bson:"nameLower" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Deadline  time.Time `bson:"deadline" json:"deadline"`

	Status ProposalStatus `bson:"status" json:"status"`
	Votes  int            `bson:"votes" json:"votes"`
	Voters []string       `bson:"voters,omitempty" json:"voters,omitempty"`
}

func (p *Proposal) HasVoter(userId string) bool {
	for _, v := range p.Voters {
		if v == userId {
			return true
		}
	}
	return false
}

type TriggerKind string

const (
	TriggerRoleAdd    TriggerKind = "role_add"
	TriggerRoleRemove TriggerKind = "role_remove"
	TriggerJoinServer TriggerKind = "join_server"
)

// RuleTrigger doubles as the event type fed to the rule engine: a rule
// matches an event when the kinds are equal and, for role triggers, the
// role ids are equal too.
type RuleTrigger struct {
	Kind   TriggerKind `bson:"kind" json:"kind"`
	RoleId string      `bson:"roleId,omitempty" json:"roleId,omitempty"`
}

func (t RuleTrigger) Matches(event RuleTrigger) bool {
	if t.Kind != event.Kind {
		return false
	}
	if t.Kind == TriggerJoinServer {
		return true
	}
	return t.RoleId == event.RoleId
}

type ConditionKind string

const (
	ConditionHasRole    ConditionKind = "has_role"
	ConditionNotHasRole ConditionKind = "not_has_role"
)

type RuleCondition struct {
	Kind   ConditionKind `bson:"kind" json:"kind"`
	RoleId string        `bson:"roleId" json:"roleId"`
}

// RoleLogRule emits a templated notification when its trigger occurs and
// every condition holds against the member's role set.
type RoleLogRule struct {
	Id      uuid.UUID `bson:"_id" json:"id"`
	GuildId string    `bson:"guildId" json:"guildId"`

	Trigger    RuleTrigger     `bson:"trigger" json:"trigger"`
	ChannelId  string          `bson:"channelId" json:"channelId"`
	Template   string          `bson:"template" json:"template"`
	Conditions []RuleCondition `bson:"conditions,omitempty" json:"conditions,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
