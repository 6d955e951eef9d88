package socialsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"clip_hub/internal/api/authz"
	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	socialdto "clip_hub/internal/api/social/dto"
	models "clip_hub/internal/api/social/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
)

// TweetService là cấu trúc chứa các phương thức liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
	likeService *basesvc.BaseServiceMongoImpl[models.Like]
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweetCollection),
		likeService:          basesvc.NewBaseServiceMongo[models.Like](likeCollection),
	}, nil
}

// CreateTweet tạo tweet mới cho người dùng đã đăng nhập
func (s *TweetService) CreateTweet(ctx context.Context, actor primitive.ObjectID, input *socialdto.TweetCreateInput) (models.Tweet, error) {
	var zero models.Tweet

	if actor.IsZero() {
		return zero, common.ErrTokenMissing
	}

	return s.InsertOne(ctx, models.Tweet{
		Content: input.Content,
		Owner:   actor,
	})
}

// UpdateTweet sửa nội dung tweet (chỉ chủ sở hữu)
func (s *TweetService) UpdateTweet(ctx context.Context, tweetID primitive.ObjectID, actor primitive.ObjectID, input *socialdto.TweetUpdateInput) (models.Tweet, error) {
	var zero models.Tweet

	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, tweet.Owner); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, tweetID, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	})
}

// DeleteTweet xóa tweet cùng các like trên nó (chỉ chủ sở hữu)
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID primitive.ObjectID, actor primitive.ObjectID) error {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return err
	}

	if err := authz.CanMutate(actor, tweet.Owner); err != nil {
		return err
	}

	if _, err := s.likeService.DeleteMany(ctx, bson.M{
		"targetKind": models.LikeTargetTweet,
		"targetId":   tweetID,
	}); err != nil {
		return err
	}

	return s.DeleteById(ctx, tweetID)
}

// GetUserTweets trả về tweet của một người dùng (mới nhất trước), kèm
// chủ sở hữu, số like và trạng thái like của người xem.
func (s *TweetService) GetUserTweets(ctx context.Context, ownerID primitive.ObjectID, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[socialdto.TweetWithMeta], error) {
	filter := bson.M{"owner": ownerID}

	limit = basemodels.NormalizeLimit(limit)
	page = basemodels.NormalizePage(page)

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := basemodels.TotalPages(total, limit)
	page = basemodels.ResolvePage(page, totalPages)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, likeMetaStages(models.LikeTargetTweet, viewer)...)
	pipeline = append(pipeline, ownerJoinStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"content":    1,
		"likesCount": 1,
		"isLiked":    1,
		"createdAt":  1,
		"owner": bson.M{
			"_id":      1,
			"username": 1,
			"fullName": 1,
			"avatar":   1,
		},
	}}})

	var docs []socialdto.TweetWithMeta
	if err := s.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}
