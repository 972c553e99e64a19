package notifier

import (
	"context"

	"github.com/google/uuid"
	"ping-list-service/internal/repository/model"
	"ping-list-service/internal/rolelog"
)

type ChangeType string

const (
	ChangeTypeCreate ChangeType = "create"
	ChangeTypeModify ChangeType = "modify"
	ChangeTypeDelete ChangeType = "delete"
)

// Notifier publishes policy changes and notification intents for downstream
// consumers (the dispatcher, audit tooling).
type Notifier interface {
	ListUpdate(ctx context.Context, list *model.PingList, changeType ChangeType) error
	MembershipUpdate(ctx context.Context, listId uuid.UUID, userId string, changeType ChangeType) error
	ProposalUpdate(ctx context.Context, proposal *model.Proposal) error
	NotificationIntents(ctx context.Context, guildId string, intents []rolelog.Intent) error
}
