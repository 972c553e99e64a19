package rolelog

import (
	"fmt"
	"strings"
	"text/template"

	"ping-list-service/internal/repository/model"
)

// Member is the affected user at evaluation time. RoleIds must be the
// post-event role set: for a role_add event it already contains the added
// role, for a role_remove event it no longer does.
type Member struct {
	UserId   string
	Username string
	RoleIds  []string
}

func (m Member) HasRole(roleId string) bool {
	for _, r := range m.RoleIds {
		if r == roleId {
			return true
		}
	}
	return false
}

// Intent is a render-ready notification for the dispatcher to deliver to a
// channel. The core formats no other user-facing text.
type Intent struct {
	ChannelId string `json:"channelId"`
	Message   string `json:"message"`
}

// templateData is the namespace rule templates may reference.
type templateData struct {
	User    string
	UserID  string
	Mention string
}

// Evaluate matches an event against a snapshot of the guild's rules and
// renders one intent per firing rule, preserving rule order. It performs no
// I/O; no matching rule is not an error, just an empty result.
func Evaluate(rules []*model.RoleLogRule, event model.RuleTrigger, member Member) ([]Intent, error) {
	data := templateData{
		User:    member.Username,
		UserID:  member.UserId,
		Mention: fmt.Sprintf("<@%s>", member.UserId),
	}

	intents := make([]Intent, 0)
	for _, rule := range rules {
		if !rule.Trigger.Matches(event) {
			continue
		}
		if !conditionsHold(rule.Conditions, member) {
			continue
		}

		message, err := renderTemplate(rule.Template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render rule %s: %w", rule.Id, err)
		}
		intents = append(intents, Intent{ChannelId: rule.ChannelId, Message: message})
	}

	return intents, nil
}

// All conditions must hold; a rule with no conditions always fires.
func conditionsHold(conditions []model.RuleCondition, member Member) bool {
	for _, condition := range conditions {
		has := member.HasRole(condition.RoleId)
		switch condition.Kind {
		case model.ConditionHasRole:
			if !has {
				return false
			}
		case model.ConditionNotHasRole:
			if has {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func renderTemplate(text string, data templateData) (string, error) {
	tmpl, err := template.New("rule").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ValidateTemplate rejects templates that would fail at evaluation time.
// The service runs this when a rule is created so Evaluate only ever sees
// renderable templates.
func ValidateTemplate(text string) error {
	_, err := renderTemplate(text, templateData{User: "user", UserID: "0", Mention: "<@0>"})
	return err
}
