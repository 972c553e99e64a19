package proposal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"ping-list-service/internal/permission"
	"ping-list-service/internal/repository"
	"ping-list-service/internal/repository/model"
)

var (
	// ErrProposalClosed is returned for votes on a terminal proposal.
	ErrProposalClosed = errors.New("proposal is closed")
	// ErrNotActive is returned when cancelling a proposal that already
	// reached a terminal state.
	ErrNotActive = errors.New("proposal is not active")
)

// Workflow drives a proposal from Active to Accepted, Denied or Removed.
// All state lives in the repository; every operation re-reads the proposal
// and advances it through compare-and-swap, so concurrent votes and sweeps
// cannot double-apply a transition.
type Workflow struct {
	repo     repository.Repository
	resolver *permission.Resolver
}

func NewWorkflow(repo repository.Repository, resolver *permission.Resolver) *Workflow {
	return &Workflow{repo: repo, resolver: resolver}
}

type CreateRequest struct {
	// MessageId is the originating platform message and becomes the
	// proposal's key.
	MessageId string
	GuildId   string
	ChannelId string
	Name      string
	Actor     permission.Actor
}

// Create opens a proposal. It fails with permission.ErrDenied when the
// resolver denies Propose for the actor in the channel, and with
// repository.ErrNameTaken when a list already uses the name or another
// active proposal claimed it (the latter enforced by a unique index, so a
// concurrent create cannot slip past the check).
func (w *Workflow) Create(ctx context.Context, req CreateRequest, now time.Time) (*model.Proposal, error) {
	allowed, err := w.resolver.IsAllowed(ctx, model.ActionPropose, req.GuildId, req.Actor, req.ChannelId)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, permission.ErrDenied
	}

	guild, err := w.repo.GetGuild(ctx, req.GuildId)
	if err != nil {
		return nil, err
	}

	_, err = w.repo.GetListByName(ctx, req.GuildId, req.Name)
	if err == nil {
		return nil, repository.ErrNameTaken
	}
	if !errors.Is(err, repository.ErrListNotFound) {
		return nil, err
	}

	proposal := &model.Proposal{
		Id:        req.MessageId,
		GuildId:   req.GuildId,
		ChannelId: req.ChannelId,
		Name:      req.Name,
		CreatedAt: now,
		Deadline:  now.Add(guild.ProposalTimeout),
		Status:    model.ProposalActive,
	}
	if err := w.repo.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

type VoteResult struct {
	Proposal *model.Proposal
	// AlreadyVoted marks the idempotent no-op case; the count did not move.
	AlreadyVoted bool
	// Accepted is set when this vote reached the threshold; List is the
	// materialized ping list in that case.
	Accepted bool
	List     *model.PingList
}

// Vote records a vote and advances the proposal when the guild threshold is
// reached. Voting twice is a no-op success. The threshold is checked before
// the deadline, so reaching both at the same instant accepts; a
// sub-threshold vote at or past the deadline lazily denies the proposal.
//
// A name collision at acceptance time rolls the proposal back to Active and
// reports repository.ErrNameTaken: the votes stay valid for a retry under a
// disambiguated name.
func (w *Workflow) Vote(ctx context.Context, proposalId string, actor permission.Actor, now time.Time) (*VoteResult, error) {
	proposal, err := w.repo.GetProposal(ctx, proposalId)
	if err != nil {
		return nil, err
	}
	if proposal.Status != model.ProposalActive {
		return nil, ErrProposalClosed
	}
	alreadyVoted := proposal.HasVoter(actor.UserId)

	updated, err := w.repo.AddProposalVote(ctx, proposalId, actor.UserId)
	if err != nil {
		return nil, err
	}
	if updated.Status != model.ProposalActive {
		return nil, ErrProposalClosed
	}

	guild, err := w.repo.GetGuild(ctx, proposal.GuildId)
	if err != nil {
		return nil, err
	}

	if updated.Votes >= guild.ProposalThreshold {
		return w.accept(ctx, updated)
	}

	if !now.Before(updated.Deadline) {
		if _, err := w.repo.CompareAndSwapProposalState(ctx, proposalId, model.ProposalActive, model.ProposalDenied); err != nil {
			return nil, err
		}
		return nil, ErrProposalClosed
	}

	return &VoteResult{Proposal: updated, AlreadyVoted: alreadyVoted}, nil
}

func (w *Workflow) accept(ctx context.Context, proposal *model.Proposal) (*VoteResult, error) {
	swapped, err := w.repo.CompareAndSwapProposalState(ctx, proposal.Id, model.ProposalActive, model.ProposalAccepted)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// A concurrent vote or sweep advanced the state first.
		return nil, ErrProposalClosed
	}

	list := &model.PingList{
		Id:      uuid.New(),
		GuildId: proposal.GuildId,
		Name:    proposal.Name,
		Visible: true,
	}
	if err := w.repo.CreateList(ctx, list); err != nil {
		if errors.Is(err, repository.ErrNameTaken) {
			// A list with this name appeared after Create validated it.
			// Roll back to Active; the votes remain valid for a retry.
			if _, casErr := w.repo.CompareAndSwapProposalState(ctx, proposal.Id, model.ProposalAccepted, model.ProposalActive); casErr != nil {
				return nil, casErr
			}
			return nil, repository.ErrNameTaken
		}
		return nil, err
	}

	proposal.Status = model.ProposalAccepted
	return &VoteResult{Proposal: proposal, Accepted: true, List: list}, nil
}

// ExpireIfDue denies an active proposal whose deadline has passed without
// reaching the threshold. The engine holds no timers; the sweeper (or any
// lazy access) drives this.
func (w *Workflow) ExpireIfDue(ctx context.Context, proposalId string, now time.Time) (bool, error) {
	proposal, err := w.repo.GetProposal(ctx, proposalId)
	if err != nil {
		return false, err
	}
	if proposal.Status != model.ProposalActive || now.Before(proposal.Deadline) {
		return false, nil
	}
	return w.repo.CompareAndSwapProposalState(ctx, proposalId, model.ProposalActive, model.ProposalDenied)
}

// Cancel removes an active proposal. Requires the actor to hold the
// decisive moderation capability.
func (w *Workflow) Cancel(ctx context.Context, proposalId string, actor permission.Actor) (*model.Proposal, error) {
	proposal, err := w.repo.GetProposal(ctx, proposalId)
	if err != nil {
		return nil, err
	}

	ok, err := w.resolver.CanManage(ctx, proposal.GuildId, actor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, permission.ErrDenied
	}

	if proposal.Status != model.ProposalActive {
		return nil, ErrNotActive
	}

	swapped, err := w.repo.CompareAndSwapProposalState(ctx, proposalId, model.ProposalActive, model.ProposalRemoved)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrNotActive
	}

	proposal.Status = model.ProposalRemoved
	return proposal, nil
}
