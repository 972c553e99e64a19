package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"ping-list-service/internal/config"
	"ping-list-service/internal/repository/model"
	"ping-list-service/internal/rolelog"
)

const topic = "ping-list-service"

const (
	messageTypeListUpdate       = "list_update"
	messageTypeMembershipUpdate = "membership_update"
	messageTypeProposalUpdate   = "proposal_update"
	messageTypeNotifications    = "notification_intents"
)

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

type listUpdateMessage struct {
	List       *model.PingList `json:"list"`
	ChangeType ChangeType      `json:"changeType"`
}

func (k *kafkaNotifier) ListUpdate(ctx context.Context, list *model.PingList, changeType ChangeType) error {
	return k.publishMessage(ctx, messageTypeListUpdate, list.GuildId, listUpdateMessage{List: list, ChangeType: changeType})
}

type membershipUpdateMessage struct {
	ListId     uuid.UUID  `json:"listId"`
	UserId     string     `json:"userId"`
	ChangeType ChangeType `json:"changeType"`
}

func (k *kafkaNotifier) MembershipUpdate(ctx context.Context, listId uuid.UUID, userId string, changeType ChangeType) error {
	return k.publishMessage(ctx, messageTypeMembershipUpdate, listId.String(), membershipUpdateMessage{
		ListId:     listId,
		UserId:     userId,
		ChangeType: changeType,
	})
}

type proposalUpdateMessage struct {
	Proposal *model.Proposal `json:"proposal"`
}

func (k *kafkaNotifier) ProposalUpdate(ctx context.Context, proposal *model.Proposal) error {
	return k.publishMessage(ctx, messageTypeProposalUpdate, proposal.GuildId, proposalUpdateMessage{Proposal: proposal})
}

type notificationIntentsMessage struct {
	GuildId string           `json:"guildId"`
	Intents []rolelog.Intent `json:"intents"`
}

func (k *kafkaNotifier) NotificationIntents(ctx context.Context, guildId string, intents []rolelog.Intent) error {
	return k.publishMessage(ctx, messageTypeNotifications, guildId, notificationIntentsMessage{GuildId: guildId, Intents: intents})
}

func (k *kafkaNotifier) publishMessage(ctx context.Context, messageType string, key string, payload any) error {
	bytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Message-Type", Value: []byte(messageType)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
