package proposal

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"ping-list-service/internal/permission"
	"ping-list-service/internal/repository"
	"ping-list-service/internal/repository/model"
)

const (
	testGuildId   = "guild1"
	testChannelId = "chan1"
	testMessageId = "msg1"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testGuild() *model.Guild {
	return &model.Guild{
		Id:                testGuildId,
		ProposalThreshold: 3,
		ProposalTimeout:   24 * time.Hour,
	}
}

func activeProposal(votes int, voters ...string) *model.Proposal {
	return &model.Proposal{
		Id:        testMessageId,
		GuildId:   testGuildId,
		ChannelId: testChannelId,
		Name:      "raiders",
		CreatedAt: testTime,
		Deadline:  testTime.Add(24 * time.Hour),
		Status:    model.ProposalActive,
		Votes:     votes,
		Voters:    voters,
	}
}

func newWorkflow(repo repository.Repository) *Workflow {
	return NewWorkflow(repo, permission.NewResolver(repo))
}

func expectProposeAllowed(ctx context.Context, mockRepo *repository.MockRepository, actor permission.Actor) {
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetRoleExceptions(ctx, testGuildId, actor.RoleIds).Return(nil, nil)
	mockRepo.EXPECT().GetUserException(ctx, testGuildId, actor.UserId).Return(nil, nil)
	mockRepo.EXPECT().GetChannelRestriction(ctx, testChannelId).Return(nil, nil)
}

func TestWorkflow_Create(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user1"}

	expectProposeAllowed(ctx, mockRepo, actor)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetListByName(ctx, testGuildId, "raiders").Return(nil, repository.ErrListNotFound)
	mockRepo.EXPECT().CreateProposal(ctx, gomock.Any()).Return(nil)

	workflow := newWorkflow(mockRepo)

	proposal, err := workflow.Create(ctx, CreateRequest{
		MessageId: testMessageId,
		GuildId:   testGuildId,
		ChannelId: testChannelId,
		Name:      "raiders",
		Actor:     actor,
	}, testTime)

	assert.NoError(t, err)
	assert.Equal(t, model.ProposalActive, proposal.Status)
	assert.Equal(t, 0, proposal.Votes)
	assert.Empty(t, proposal.Voters)
	assert.Equal(t, testTime.Add(24*time.Hour), proposal.Deadline)
}

func TestWorkflow_Create_Forbidden(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user1"}

	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetRoleExceptions(ctx, testGuildId, actor.RoleIds).Return(nil, nil)
	mockRepo.EXPECT().GetUserException(ctx, testGuildId, actor.UserId).Return(nil, nil)
	mockRepo.EXPECT().GetChannelRestriction(ctx, testChannelId).Return(&model.ChannelRestriction{
		ChannelId: testChannelId, Proposing: model.ScopeDeny,
	}, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Create(ctx, CreateRequest{
		MessageId: testMessageId,
		GuildId:   testGuildId,
		ChannelId: testChannelId,
		Name:      "raiders",
		Actor:     actor,
	}, testTime)

	assert.ErrorIs(t, err, permission.ErrDenied)
}

func TestWorkflow_Create_NameTaken(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user1"}

	expectProposeAllowed(ctx, mockRepo, actor)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetListByName(ctx, testGuildId, "raiders").Return(&model.PingList{Name: "raiders"}, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Create(ctx, CreateRequest{
		MessageId: testMessageId,
		GuildId:   testGuildId,
		ChannelId: testChannelId,
		Name:      "raiders",
		Actor:     actor,
	}, testTime)

	assert.ErrorIs(t, err, repository.ErrNameTaken)
}

// The third distinct vote reaches the threshold, accepts the proposal and
// materializes the list.
func TestWorkflow_Vote_ReachesThreshold(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user3"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(2, "user1", "user2"), nil)
	mockRepo.EXPECT().AddProposalVote(ctx, testMessageId, "user3").Return(activeProposal(3, "user1", "user2", "user3"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().CompareAndSwapProposalState(ctx, testMessageId, model.ProposalActive, model.ProposalAccepted).Return(true, nil)
	mockRepo.EXPECT().CreateList(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, list *model.PingList) error {
		assert.Equal(t, testGuildId, list.GuildId)
		assert.Equal(t, "raiders", list.Name)
		assert.True(t, list.Visible)
		return nil
	})

	workflow := newWorkflow(mockRepo)

	result, err := workflow.Vote(ctx, testMessageId, actor, testTime.Add(time.Hour))
	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.NotNil(t, result.List)
	assert.Equal(t, model.ProposalAccepted, result.Proposal.Status)
}

func TestWorkflow_Vote_BelowThreshold(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user2"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)
	mockRepo.EXPECT().AddProposalVote(ctx, testMessageId, "user2").Return(activeProposal(2, "user1", "user2"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)

	workflow := newWorkflow(mockRepo)

	result, err := workflow.Vote(ctx, testMessageId, actor, testTime.Add(time.Hour))
	assert.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.False(t, result.AlreadyVoted)
	assert.Equal(t, 2, result.Proposal.Votes)
}

// Voting twice counts once and reports the no-op.
func TestWorkflow_Vote_Idempotent(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user1"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)
	mockRepo.EXPECT().AddProposalVote(ctx, testMessageId, "user1").Return(activeProposal(1, "user1"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)

	workflow := newWorkflow(mockRepo)

	result, err := workflow.Vote(ctx, testMessageId, actor, testTime.Add(time.Hour))
	assert.NoError(t, err)
	assert.True(t, result.AlreadyVoted)
	assert.Equal(t, 1, result.Proposal.Votes)
}

func TestWorkflow_Vote_Closed(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()

	accepted := activeProposal(3, "user1", "user2", "user3")
	accepted.Status = model.ProposalAccepted
	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(accepted, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Vote(ctx, testMessageId, permission.Actor{UserId: "user4"}, testTime)
	assert.ErrorIs(t, err, ErrProposalClosed)
}

// A name collision discovered at acceptance time rolls the proposal back
// to Active and reports the conflict without discarding the votes.
func TestWorkflow_Vote_NameCollisionRollsBack(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user3"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(2, "user1", "user2"), nil)
	mockRepo.EXPECT().AddProposalVote(ctx, testMessageId, "user3").Return(activeProposal(3, "user1", "user2", "user3"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().CompareAndSwapProposalState(ctx, testMessageId, model.ProposalActive, model.ProposalAccepted).Return(true, nil)
	mockRepo.EXPECT().CreateList(ctx, gomock.Any()).Return(repository.ErrNameTaken)
	mockRepo.EXPECT().CompareAndSwapProposalState(ctx, testMessageId, model.ProposalAccepted, model.ProposalActive).Return(true, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Vote(ctx, testMessageId, actor, testTime.Add(time.Hour))
	assert.ErrorIs(t, err, repository.ErrNameTaken)
}

// A sub-threshold vote at the deadline lazily denies the proposal.
func TestWorkflow_Vote_PastDeadline(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user2"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)
	mockRepo.EXPECT().AddProposalVote(ctx, testMessageId, "user2").Return(activeProposal(2, "user1", "user2"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().CompareAndSwapProposalState(ctx, testMessageId, model.ProposalActive, model.ProposalDenied).Return(true, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Vote(ctx, testMessageId, actor, testTime.Add(25*time.Hour))
	assert.ErrorIs(t, err, ErrProposalClosed)
}

func TestWorkflow_ExpireIfDue(t *testing.T) {
	t.Run("due", func(t *testing.T) {
		mockCntrl := gomock.NewController(t)
		mockRepo := repository.NewMockRepository(mockCntrl)
		ctx := context.Background()

		mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)
		mockRepo.EXPECT().CompareAndSwapProposalState(ctx, testMessageId, model.ProposalActive, model.ProposalDenied).Return(true, nil)

		workflow := newWorkflow(mockRepo)

		expired, err := workflow.ExpireIfDue(ctx, testMessageId, testTime.Add(25*time.Hour))
		assert.NoError(t, err)
		assert.True(t, expired)
	})

	t.Run("not yet due", func(t *testing.T) {
		mockCntrl := gomock.NewController(t)
		mockRepo := repository.NewMockRepository(mockCntrl)
		ctx := context.Background()

		mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)

		workflow := newWorkflow(mockRepo)

		expired, err := workflow.ExpireIfDue(ctx, testMessageId, testTime.Add(time.Hour))
		assert.NoError(t, err)
		assert.False(t, expired)
	})
}

func TestWorkflow_Cancel(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "mod1"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetRoleExceptions(ctx, testGuildId, actor.RoleIds).Return(nil, nil)
	mockRepo.EXPECT().GetUserException(ctx, testGuildId, "mod1").Return(&model.UserException{
		GuildId: testGuildId, UserId: "mod1", Exception: model.Exception{CanManage: model.ScopeAllow},
	}, nil)
	mockRepo.EXPECT().CompareAndSwapProposalState(ctx, testMessageId, model.ProposalActive, model.ProposalRemoved).Return(true, nil)

	workflow := newWorkflow(mockRepo)

	proposal, err := workflow.Cancel(ctx, testMessageId, actor)
	assert.NoError(t, err)
	assert.Equal(t, model.ProposalRemoved, proposal.Status)
}

func TestWorkflow_Cancel_Forbidden(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "user1"}

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(activeProposal(1, "user1"), nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetRoleExceptions(ctx, testGuildId, actor.RoleIds).Return(nil, nil)
	mockRepo.EXPECT().GetUserException(ctx, testGuildId, "user1").Return(nil, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Cancel(ctx, testMessageId, actor)
	assert.ErrorIs(t, err, permission.ErrDenied)
}

func TestWorkflow_Cancel_NotActive(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockRepo := repository.NewMockRepository(mockCntrl)
	ctx := context.Background()
	actor := permission.Actor{UserId: "mod1"}

	denied := activeProposal(1, "user1")
	denied.Status = model.ProposalDenied

	mockRepo.EXPECT().GetProposal(ctx, testMessageId).Return(denied, nil)
	mockRepo.EXPECT().GetGuild(ctx, testGuildId).Return(testGuild(), nil)
	mockRepo.EXPECT().GetRoleExceptions(ctx, testGuildId, actor.RoleIds).Return(nil, nil)
	mockRepo.EXPECT().GetUserException(ctx, testGuildId, "mod1").Return(&model.UserException{
		GuildId: testGuildId, UserId: "mod1", Exception: model.Exception{CanManage: model.ScopeAllow},
	}, nil)

	workflow := newWorkflow(mockRepo)

	_, err := workflow.Cancel(ctx, testMessageId, actor)
	assert.ErrorIs(t, err, ErrNotActive)
}
