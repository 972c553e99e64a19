package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"ping-list-service/internal/config"
	"ping-list-service/internal/repository/model"
	"ping-list-service/internal/repository/registrytypes"
)

const (
	databaseName = "ping-list-service"

	guildCollectionName       = "guilds"
	listCollectionName        = "lists"
	membershipCollectionName  = "memberships"
	roleExceptionCollection   = "roleExceptions"
	userExceptionCollection   = "userExceptions"
	channelRestrictionColName = "channelRestrictions"
	proposalCollectionName    = "proposals"
	ruleCollectionName        = "roleLogRules"
)

type mongoRepository struct {
	logger   *zap.SugaredLogger
	database *mongo.Database

	guildCollection       *mongo.Collection
	listCollection        *mongo.Collection
	membershipCollection  *mongo.Collection
	roleExceptionColl     *mongo.Collection
	userExceptionColl     *mongo.Collection
	channelRestrictionCol *mongo.Collection
	proposalCollection    *mongo.Collection
	ruleCollection        *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetRegistry(createCodecRegistry()))
	if err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	database := client.Database(databaseName)
	repo := &mongoRepository{
		logger:   logger,
		database: database,

		guildCollection:       database.Collection(guildCollectionName),
		listCollection:        database.Collection(listCollectionName),
		membershipCollection:  database.Collection(membershipCollectionName),
		roleExceptionColl:     database.Collection(roleExceptionCollection),
		userExceptionColl:     database.Collection(userExceptionCollection),
		channelRestrictionCol: database.Collection(channelRestrictionColName),
		proposalCollection:    database.Collection(proposalCollectionName),
		ruleCollection:        database.Collection(ruleCollectionName),
	}

	if err := repo.createIndexes(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// Uniqueness invariants (list names per guild, one membership per user and
// list, one exception row per key, one active proposal per guild and name)
// live in the indexes so concurrent writers cannot race past a read check.
func (m *mongoRepository) createIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := m.listCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "guildId", Value: 1}, {Key: "searchNames", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = m.membershipCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "listId", Value: 1}, {Key: "userId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = m.roleExceptionColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "guildId", Value: 1}, {Key: "roleId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = m.userExceptionColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "guildId", Value: 1}, {Key: "userId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = m.proposalCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "guildId", Value: 1}, {Key: "nameLower", Value: 1}},
		Options: options.Index().SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": model.ProposalActive}),
	})
	if err != nil {
		return err
	}

	_, err = m.ruleCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "guildId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}

func (m *mongoRepository) GetGuild(ctx context.Context, guildId string) (*model.Guild, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var guild model.Guild
	err := m.guildCollection.FindOne(ctx, bson.M{"_id": guildId}).Decode(&guild)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGuildNotFound
		}
		return nil, err
	}

	return &guild, nil
}

func (m *mongoRepository) SaveGuild(ctx context.Context, guild *model.Guild) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.guildCollection.ReplaceOne(ctx, bson.M{"_id": guild.Id}, guild, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRepository) GetList(ctx context.Context, listId uuid.UUID) (*model.PingList, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var list model.PingList
	err := m.listCollection.FindOne(ctx, bson.M{"_id": listId}).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	return &list, nil
}

func (m *mongoRepository) GetListByName(ctx context.Context, guildId string, name string) (*model.PingList, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"guildId": guildId, "searchNames": normalizeName(name)}

	var list model.PingList
	err := m.listCollection.FindOne(ctx, filter).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	return &list, nil
}

func (m *mongoRepository) CreateList(ctx context.Context, list *model.PingList) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	list.NormalizeSearchNames()

	_, err := m.listCollection.InsertOne(ctx, list)
	if mongo.IsDuplicateKeyError(err) {
		return ErrNameTaken
	}
	return err
}

func (m *mongoRepository) UpdateList(ctx context.Context, list *model.PingList) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	list.NormalizeSearchNames()

	err := m.listCollection.FindOneAndReplace(ctx, bson.M{"_id": list.Id}, list).Err()
	if err == mongo.ErrNoDocuments {
		return ErrListNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrNameTaken
	}
	return err
}

func (m *mongoRepository) DeleteList(ctx context.Context, listId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.listCollection.DeleteOne(ctx, bson.M{"_id": listId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrListNotFound
	}
	return nil
}

func (m *mongoRepository) ClaimListPing(ctx context.Context, listId uuid.UUID, now time.Time, cooldown time.Duration) (bool, time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The filter only matches when the cooldown window has elapsed (or the
	// list was never pinged), so exactly one contender wins the window.
	filter := bson.M{
		"_id": listId,
		"$or": bson.A{
			bson.M{"lastPingAt": bson.M{"$exists": false}},
			bson.M{"lastPingAt": bson.M{"$lte": now.Add(-cooldown)}},
		},
	}

	result, err := m.listCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"lastPingAt": now}})
	if err != nil {
		return false, time.Time{}, err
	}
	if result.ModifiedCount == 1 {
		return true, now, nil
	}

	list, err := m.GetList(ctx, listId)
	if err != nil {
		return false, time.Time{}, err
	}
	return false, list.LastPingAt, nil
}

func (m *mongoRepository) GetListMemberIds(ctx context.Context, listId uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.membershipCollection.Find(ctx, bson.M{"listId": listId})
	if err != nil {
		return nil, err
	}

	var memberships []model.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	userIds := make([]string, len(memberships))
	for i, membership := range memberships {
		userIds[i] = membership.UserId
	}
	return userIds, nil
}

func (m *mongoRepository) AddMember(ctx context.Context, listId uuid.UUID, userId string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.membershipCollection.InsertOne(ctx, model.Membership{ListId: listId, UserId: userId})
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyMember
	}
	return err
}

func (m *mongoRepository) RemoveMember(ctx context.Context, listId uuid.UUID, userId string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.membershipCollection.DeleteOne(ctx, bson.M{"listId": listId, "userId": userId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotMember
	}
	return nil
}

func (m *mongoRepository) RemoveListMembers(ctx context.Context, listId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.membershipCollection.DeleteMany(ctx, bson.M{"listId": listId})
	return err
}

func (m *mongoRepository) GetRoleExceptions(ctx context.Context, guildId string, roleIds []string) ([]*model.RoleException, error) {
	if len(roleIds) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.roleExceptionColl.Find(ctx, bson.M{"guildId": guildId, "roleId": bson.M{"$in": roleIds}})
	if err != nil {
		return nil, err
	}

	var result []model.RoleException
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	exceptions := make([]*model.RoleException, len(result))
	for i := range result {
		exceptions[i] = &result[i]
	}
	return exceptions, nil
}

func (m *mongoRepository) SetRoleException(ctx context.Context, exception *model.RoleException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"guildId": exception.GuildId, "roleId": exception.RoleId}
	_, err := m.roleExceptionColl.ReplaceOne(ctx, filter, exception, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRepository) GetUserException(ctx context.Context, guildId string, userId string) (*model.UserException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exception model.UserException
	err := m.userExceptionColl.FindOne(ctx, bson.M{"guildId": guildId, "userId": userId}).Decode(&exception)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &exception, nil
}

func (m *mongoRepository) SetUserException(ctx context.Context, exception *model.UserException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"guildId": exception.GuildId, "userId": exception.UserId}
	_, err := m.userExceptionColl.ReplaceOne(ctx, filter, exception, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRepository) GetChannelRestriction(ctx context.Context, channelId string) (*model.ChannelRestriction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var restriction model.ChannelRestriction
	err := m.channelRestrictionCol.FindOne(ctx, bson.M{"_id": channelId}).Decode(&restriction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &restriction, nil
}

func (m *mongoRepository) SetChannelRestriction(ctx context.Context, restriction *model.ChannelRestriction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": restriction.ChannelId}
	_, err := m.channelRestrictionCol.ReplaceOne(ctx, filter, restriction, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRepository) CreateProposal(ctx context.Context, proposal *model.Proposal) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	proposal.NameLower = normalizeName(proposal.Name)

	_, err := m.proposalCollection.InsertOne(ctx, proposal)
	if mongo.IsDuplicateKeyError(err) {
		return ErrNameTaken
	}
	return err
}

func (m *mongoRepository) GetProposal(ctx context.Context, proposalId string) (*model.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var proposal model.Proposal
	err := m.proposalCollection.FindOne(ctx, bson.M{"_id": proposalId}).Decode(&proposal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	return &proposal, nil
}

func (m *mongoRepository) AddProposalVote(ctx context.Context, proposalId string, userId string) (*model.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":    proposalId,
		"status": model.ProposalActive,
		"voters": bson.M{"$ne": userId},
	}
	update := bson.M{
		"$addToSet": bson.M{"voters": userId},
		"$inc":      bson.M{"votes": 1},
	}

	var proposal model.Proposal
	err := m.proposalCollection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&proposal)
	if err == nil {
		return &proposal, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Either the proposal is closed or the user already voted; hand the
	// current state back so the workflow can tell which.
	return m.GetProposal(ctx, proposalId)
}

func (m *mongoRepository) CompareAndSwapProposalState(ctx context.Context, proposalId string, expected model.ProposalStatus, next model.ProposalStatus) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.proposalCollection.UpdateOne(ctx,
		bson.M{"_id": proposalId, "status": expected},
		bson.M{"$set": bson.M{"status": next}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

func (m *mongoRepository) GetDueProposals(ctx context.Context, now time.Time) ([]*model.Proposal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": model.ProposalActive, "deadline": bson.M{"$lte": now}}
	cursor, err := m.proposalCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var result []model.Proposal
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	proposals := make([]*model.Proposal, len(result))
	for i := range result {
		proposals[i] = &result[i]
	}
	return proposals, nil
}

func (m *mongoRepository) GetRules(ctx context.Context, guildId string) ([]*model.RoleLogRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := m.ruleCollection.Find(ctx, bson.M{"guildId": guildId}, opts)
	if err != nil {
		return nil, err
	}

	var result []model.RoleLogRule
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	rules := make([]*model.RoleLogRule, len(result))
	for i := range result {
		rules[i] = &result[i]
	}
	return rules, nil
}

func (m *mongoRepository) CreateRule(ctx context.Context, rule *model.RoleLogRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.ruleCollection.InsertOne(ctx, rule)
	return err
}

func (m *mongoRepository) DeleteRule(ctx context.Context, ruleId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.ruleCollection.DeleteOne(ctx, bson.M{"_id": ruleId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(name)
}

func createCodecRegistry() *bsoncodec.Registry {
	return bson.NewRegistryBuilder().
		RegisterTypeEncoder(registrytypes.UUIDType, bsoncodec.ValueEncoderFunc(registrytypes.UuidEncodeValue)).
		RegisterTypeDecoder(registrytypes.UUIDType, bsoncodec.ValueDecoderFunc(registrytypes.UuidDecodeValue)).
		Build()
}
