package model

// Scope is a three-valued permission decision. The zero value is Neutral,
// which defers to a less specific scope; Deny and Allow are both decisive.
// The ordering Neutral < Deny < Allow is load-bearing: combining scopes
// takes the maximum, so a single Allow exception wins over any number of
// Deny exceptions at the same specificity level.
type Scope int

const (
	ScopeNeutral Scope = iota
	ScopeDeny
	ScopeAllow
)

func (s Scope) Combine(other Scope) Scope {
	if other > s {
		return other
	}
	return s
}

func (s Scope) Decisive() bool {
	return s != ScopeNeutral
}

func (s Scope) String() string {
	switch s {
	case ScopeNeutral:
		return "neutral"
	case ScopeDeny:
		return "deny"
	case ScopeAllow:
		return "allow"
	}
	return "unknown"
}

// Action is a policy-gated operation.
type Action int

const (
	ActionJoin Action = iota
	ActionPing
	ActionPropose
	ActionManage
)

func (a Action) String() string {
	switch a {
	case ActionJoin:
		return "join"
	case ActionPing:
		return "ping"
	case ActionPropose:
		return "propose"
	case ActionManage:
		return "manage"
	}
	return "unknown"
}

// ChannelScoped reports whether the action is subject to channel
// restrictions. Join and Manage are guild-level only.
func (a Action) ChannelScoped() bool {
	return a == ActionPing || a == ActionPropose
}
