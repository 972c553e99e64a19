package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"ping-list-service/internal/cooldown"
	"ping-list-service/internal/messaging/notifier"
	"ping-list-service/internal/permission"
	"ping-list-service/internal/proposal"
	"ping-list-service/internal/repository"
	"ping-list-service/internal/repository/model"
	"ping-list-service/internal/rolelog"
)

// Service is the dispatcher-facing API: one method per decoded command or
// platform event. It owns outcome mapping (policy refusals become
// permission.ErrDenied, idempotent membership changes become result flags)
// and publishes configuration changes and intents to Kafka.
type Service struct {
	logger *zap.SugaredLogger
	repo   repository.Repository
	notif  notifier.Notifier

	resolver *permission.Resolver
	tracker  *cooldown.Tracker
	workflow *proposal.Workflow

	now func() time.Time
}

func NewService(logger *zap.SugaredLogger, repo repository.Repository, notif notifier.Notifier) *Service {
	resolver := permission.NewResolver(repo)
	return &Service{
		logger:   logger,
		repo:     repo,
		notif:    notif,
		resolver: resolver,
		tracker:  cooldown.NewTracker(repo),
		workflow: proposal.NewWorkflow(repo, resolver),
		now:      time.Now,
	}
}

type PingResult struct {
	List *model.PingList
	// MemberIds is everyone to mention, in no particular order.
	MemberIds []string
}

// Ping authorizes a broadcast to a list and claims its cooldown window. On
// success the caller receives the member ids to render; the service itself
// sends nothing to the platform.
func (s *Service) Ping(ctx context.Context, guildId string, channelId string, listName string, actor permission.Actor) (*PingResult, error) {
	list, err := s.repo.GetListByName(ctx, guildId, listName)
	if err != nil {
		return nil, err
	}

	allowed, err := s.resolver.IsAllowedForList(ctx, model.ActionPing, list, actor, channelId)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, permission.ErrDenied
	}

	guild, err := s.repo.GetGuild(ctx, guildId)
	if err != nil {
		return nil, err
	}
	if err := s.tracker.CheckAndRecord(ctx, guild, list, actor, s.now()); err != nil {
		return nil, err
	}

	memberIds, err := s.repo.GetListMemberIds(ctx, list.Id)
	if err != nil {
		return nil, err
	}
	return &PingResult{List: list, MemberIds: memberIds}, nil
}

type MembershipResult struct {
	List *model.PingList
	// NoOp is set when the user already was (join) or was not (leave) a
	// member. Repeating a membership command is never an error.
	NoOp bool
}

func (s *Service) Join(ctx context.Context, guildId string, listName string, actor permission.Actor) (*MembershipResult, error) {
	list, err := s.repo.GetListByName(ctx, guildId, listName)
	if err != nil {
		return nil, err
	}

	allowed, err := s.resolver.IsAllowedForList(ctx, model.ActionJoin, list, actor, "")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, permission.ErrDenied
	}

	if err := s.repo.AddMember(ctx, list.Id, actor.UserId); err != nil {
		if errors.Is(err, repository.ErrAlreadyMember) {
			return &MembershipResult{List: list, NoOp: true}, nil
		}
		return nil, err
	}

	if err := s.notif.MembershipUpdate(ctx, list.Id, actor.UserId, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending membership update", "error", err)
	}
	return &MembershipResult{List: list}, nil
}

// Leave needs no permission check: anyone may remove themselves.
func (s *Service) Leave(ctx context.Context, guildId string, listName string, actor permission.Actor) (*MembershipResult, error) {
	list, err := s.repo.GetListByName(ctx, guildId, listName)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveMember(ctx, list.Id, actor.UserId); err != nil {
		if errors.Is(err, repository.ErrNotMember) {
			return &MembershipResult{List: list, NoOp: true}, nil
		}
		return nil, err
	}

	if err := s.notif.MembershipUpdate(ctx, list.Id, actor.UserId, notifier.ChangeTypeDelete); err != nil {
		s.logger.Errorw("error sending membership update", "error", err)
	}
	return &MembershipResult{List: list}, nil
}

type CreateListRequest struct {
	GuildId     string
	Name        string
	Aliases     []string
	Description string

	CooldownOverride *time.Duration
	JoinOverride     model.Scope
	PingOverride     model.Scope
	Visible          bool
}

// CreateList is the moderation path for making a list directly, skipping the
// proposal workflow.
func (s *Service) CreateList(ctx context.Context, req CreateListRequest, actor permission.Actor) (*model.PingList, error) {
	if err := s.requireManage(ctx, req.GuildId, actor); err != nil {
		return nil, err
	}

	list := &model.PingList{
		Id:               uuid.New(),
		GuildId:          req.GuildId,
		Name:             req.Name,
		Aliases:          req.Aliases,
		Description:      req.Description,
		CooldownOverride: req.CooldownOverride,
		JoinOverride:     req.JoinOverride,
		PingOverride:     req.PingOverride,
		Visible:          req.Visible,
	}
	list.NormalizeSearchNames()

	if err := s.repo.CreateList(ctx, list); err != nil {
		return nil, err
	}

	if err := s.notif.ListUpdate(ctx, list, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending list update", "error", err)
	}
	return list, nil
}

type UpdateListRequest struct {
	Name        *string
	Aliases     []string
	Description *string

	CooldownOverride      *time.Duration
	ClearCooldownOverride bool
	JoinOverride          *model.Scope
	PingOverride          *model.Scope
	Visible               *bool
}

func (s *Service) UpdateList(ctx context.Context, listId uuid.UUID, req UpdateListRequest, actor permission.Actor) (*model.PingList, error) {
	list, err := s.repo.GetList(ctx, listId)
	if err != nil {
		return nil, err
	}
	if err := s.requireManage(ctx, list.GuildId, actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Aliases != nil {
		list.Aliases = req.Aliases
	}
	if req.Description != nil {
		list.Description = *req.Description
	}
	if req.ClearCooldownOverride {
		list.CooldownOverride = nil
	} else if req.CooldownOverride != nil {
		list.CooldownOverride = req.CooldownOverride
	}
	if req.JoinOverride != nil {
		list.JoinOverride = *req.JoinOverride
	}
	if req.PingOverride != nil {
		list.PingOverride = *req.PingOverride
	}
	if req.Visible != nil {
		list.Visible = *req.Visible
	}
	list.NormalizeSearchNames()

	if err := s.repo.UpdateList(ctx, list); err != nil {
		return nil, err
	}

	if err := s.notif.ListUpdate(ctx, list, notifier.ChangeTypeModify); err != nil {
		s.logger.Errorw("error sending list update", "error", err)
	}
	return list, nil
}

// DeleteList removes the list and its memberships.
func (s *Service) DeleteList(ctx context.Context, listId uuid.UUID, actor permission.Actor) error {
	list, err := s.repo.GetList(ctx, listId)
	if err != nil {
		return err
	}
	if err := s.requireManage(ctx, list.GuildId, actor); err != nil {
		return err
	}

	if err := s.repo.DeleteList(ctx, listId); err != nil {
		return err
	}
	if err := s.repo.RemoveListMembers(ctx, listId); err != nil {
		return err
	}

	if err := s.notif.ListUpdate(ctx, list, notifier.ChangeTypeDelete); err != nil {
		s.logger.Errorw("error sending list update", "error", err)
	}
	return nil
}

func (s *Service) Propose(ctx context.Context, messageId string, guildId string, channelId string, name string, actor permission.Actor) (*model.Proposal, error) {
	prop, err := s.workflow.Create(ctx, proposal.CreateRequest{
		MessageId: messageId,
		GuildId:   guildId,
		ChannelId: channelId,
		Name:      name,
		Actor:     actor,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.notif.ProposalUpdate(ctx, prop); err != nil {
		s.logger.Errorw("error sending proposal update", "error", err)
	}
	return prop, nil
}

// Vote applies a vote; acceptance additionally announces the materialized
// list.
func (s *Service) Vote(ctx context.Context, proposalId string, actor permission.Actor) (*proposal.VoteResult, error) {
	result, err := s.workflow.Vote(ctx, proposalId, actor, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.notif.ProposalUpdate(ctx, result.Proposal); err != nil {
		s.logger.Errorw("error sending proposal update", "error", err)
	}
	if result.Accepted {
		if err := s.notif.ListUpdate(ctx, result.List, notifier.ChangeTypeCreate); err != nil {
			s.logger.Errorw("error sending list update", "error", err)
		}
	}
	return result, nil
}

func (s *Service) CancelProposal(ctx context.Context, proposalId string, actor permission.Actor) (*model.Proposal, error) {
	prop, err := s.workflow.Cancel(ctx, proposalId, actor)
	if err != nil {
		return nil, err
	}

	if err := s.notif.ProposalUpdate(ctx, prop); err != nil {
		s.logger.Errorw("error sending proposal update", "error", err)
	}
	return prop, nil
}

// ExpireDueProposals denies every active proposal past its deadline and
// returns how many were expired. The sweeper calls this on a timer; losing a
// race against a concurrent vote is fine, the state machine admits only one
// transition.
func (s *Service) ExpireDueProposals(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.repo.GetDueProposals(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, prop := range due {
		ok, err := s.workflow.ExpireIfDue(ctx, prop.Id, now)
		if err != nil {
			return expired, err
		}
		if !ok {
			continue
		}
		expired++

		prop.Status = model.ProposalDenied
		if err := s.notif.ProposalUpdate(ctx, prop); err != nil {
			s.logger.Errorw("error sending proposal update", "error", err)
		}
	}
	return expired, nil
}

// RoleChanged feeds a role add or removal through the guild's role-log
// rules. The member's RoleIds must already reflect the change. Intents are
// returned to the caller and published for any other consumers.
func (s *Service) RoleChanged(ctx context.Context, guildId string, member rolelog.Member, roleId string, added bool) ([]rolelog.Intent, error) {
	kind := model.TriggerRoleRemove
	if added {
		kind = model.TriggerRoleAdd
	}
	return s.evaluateRules(ctx, guildId, member, model.RuleTrigger{Kind: kind, RoleId: roleId})
}

func (s *Service) MemberJoined(ctx context.Context, guildId string, member rolelog.Member) ([]rolelog.Intent, error) {
	return s.evaluateRules(ctx, guildId, member, model.RuleTrigger{Kind: model.TriggerJoinServer})
}

func (s *Service) evaluateRules(ctx context.Context, guildId string, member rolelog.Member, event model.RuleTrigger) ([]rolelog.Intent, error) {
	rules, err := s.repo.GetRules(ctx, guildId)
	if err != nil {
		return nil, err
	}

	intents, err := rolelog.Evaluate(rules, event, member)
	if err != nil {
		return nil, err
	}

	if len(intents) > 0 {
		if err := s.notif.NotificationIntents(ctx, guildId, intents); err != nil {
			s.logger.Errorw("error sending notification intents", "error", err)
		}
	}
	return intents, nil
}

// UpsertGuild writes the guild policy configuration. Guild setup comes from
// the platform's own admins through the dispatcher, so it is not gated on
// the stored policy.
func (s *Service) UpsertGuild(ctx context.Context, guild *model.Guild) error {
	return s.repo.SaveGuild(ctx, guild)
}

func (s *Service) SetRoleException(ctx context.Context, exception *model.RoleException, actor permission.Actor) error {
	if err := s.requireManage(ctx, exception.GuildId, actor); err != nil {
		return err
	}
	return s.repo.SetRoleException(ctx, exception)
}

func (s *Service) SetUserException(ctx context.Context, exception *model.UserException, actor permission.Actor) error {
	if err := s.requireManage(ctx, exception.GuildId, actor); err != nil {
		return err
	}
	return s.repo.SetUserException(ctx, exception)
}

func (s *Service) SetChannelRestriction(ctx context.Context, guildId string, restriction *model.ChannelRestriction, actor permission.Actor) error {
	if err := s.requireManage(ctx, guildId, actor); err != nil {
		return err
	}
	return s.repo.SetChannelRestriction(ctx, restriction)
}

type CreateRuleRequest struct {
	GuildId    string
	Trigger    model.RuleTrigger
	ChannelId  string
	Template   string
	Conditions []model.RuleCondition
}

// CreateRule validates the template up front so evaluation never sees a
// broken one.
func (s *Service) CreateRule(ctx context.Context, req CreateRuleRequest, actor permission.Actor) (*model.RoleLogRule, error) {
	if err := s.requireManage(ctx, req.GuildId, actor); err != nil {
		return nil, err
	}
	if err := rolelog.ValidateTemplate(req.Template); err != nil {
		return nil, err
	}

	rule := &model.RoleLogRule{
		Id:         uuid.New(),
		GuildId:    req.GuildId,
		Trigger:    req.Trigger,
		ChannelId:  req.ChannelId,
		Template:   req.Template,
		Conditions: req.Conditions,
		CreatedAt:  s.now(),
	}
	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) DeleteRule(ctx context.Context, guildId string, ruleId uuid.UUID, actor permission.Actor) error {
	if err := s.requireManage(ctx, guildId, actor); err != nil {
		return err
	}
	return s.repo.DeleteRule(ctx, ruleId)
}

func (s *Service) ListRules(ctx context.Context, guildId string) ([]*model.RoleLogRule, error) {
	return s.repo.GetRules(ctx, guildId)
}

func (s *Service) requireManage(ctx context.Context, guildId string, actor permission.Actor) error {
	ok, err := s.resolver.CanManage(ctx, guildId, actor)
	if err != nil {
		return err
	}
	if !ok {
		return permission.ErrDenied
	}
	return nil
}
