// Package socialsvc - các service thuộc domain social.
package socialsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"clip_hub/internal/api/authz"
	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	contentdto "clip_hub/internal/api/content/dto"
	contentmodels "clip_hub/internal/api/content/models"
	socialdto "clip_hub/internal/api/social/dto"
	models "clip_hub/internal/api/social/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
)

// LikeService là cấu trúc chứa các phương thức liên quan đến like
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[models.Like]
	videoService   *basesvc.BaseServiceMongoImpl[contentmodels.Video]
	commentService *basesvc.BaseServiceMongoImpl[models.Comment]
	tweetService   *basesvc.BaseServiceMongoImpl[models.Tweet]
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](likeCollection),
		videoService:         basesvc.NewBaseServiceMongo[contentmodels.Video](videoCollection),
		commentService:       basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
		tweetService:         basesvc.NewBaseServiceMongo[models.Tweet](tweetCollection),
	}, nil
}

// verifyLikeTarget kiểm tra đối tượng like tồn tại và hiển thị được với actor.
// Video chưa publish chỉ chủ sở hữu like được (người khác nhận 404).
func (s *LikeService) verifyLikeTarget(ctx context.Context, kind string, targetID primitive.ObjectID, actor primitive.ObjectID) error {
	switch kind {
	case models.LikeTargetVideo:
		video, err := s.videoService.FindOneById(ctx, targetID)
		if err != nil {
			return err
		}
		return authz.CanViewVideo(actor, video.Owner, video.IsPublished)
	case models.LikeTargetComment:
		_, err := s.commentService.FindOneById(ctx, targetID)
		return err
	case models.LikeTargetTweet:
		_, err := s.tweetService.FindOneById(ctx, targetID)
		return err
	default:
		return common.NewError(
			common.ErrCodeValidationInput,
			"Loại đối tượng like không hợp lệ: "+kind,
			common.StatusBadRequest,
			nil,
		)
	}
}

// ToggleLike đảo trạng thái like của actor trên một đối tượng.
// Xóa trước nếu đã like; chưa like thì kiểm tra đối tượng tồn tại rồi tạo.
func (s *LikeService) ToggleLike(ctx context.Context, kind string, targetID primitive.ObjectID, actor primitive.ObjectID) (*socialdto.ToggleLikeResult, error) {
	if actor.IsZero() {
		return nil, common.ErrTokenMissing
	}
	if !models.IsValidLikeTarget(kind) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Loại đối tượng like không hợp lệ: "+kind,
			common.StatusBadRequest,
			nil,
		)
	}

	edgeFilter := bson.M{
		"likedBy":    actor,
		"targetKind": kind,
		"targetId":   targetID,
	}

	// Đã like rồi thì gỡ
	err := s.DeleteOne(ctx, edgeFilter)
	if err == nil {
		return &socialdto.ToggleLikeResult{Liked: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// Chưa like: đối tượng phải tồn tại và hiển thị được với actor
	if err := s.verifyLikeTarget(ctx, kind, targetID, actor); err != nil {
		return nil, err
	}

	_, err = s.InsertOne(ctx, models.Like{
		TargetKind: kind,
		TargetID:   targetID,
		LikedBy:    actor,
	})
	if err != nil {
		// Hai toggle đồng thời có thể đụng unique index; coi như đã like
		if errors.Is(err, common.ErrDuplicate) {
			return &socialdto.ToggleLikeResult{Liked: true}, nil
		}
		return nil, err
	}

	return &socialdto.ToggleLikeResult{Liked: true}, nil
}

// GetLikedVideos trả về các video đã like của người dùng (mới like trước),
// join video + chủ sở hữu; chỉ gồm video đã publish.
func (s *LikeService) GetLikedVideos(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[contentdto.VideoWithOwner], error) {
	videosCol := global.MongoDB_ColNames.Videos
	usersCol := global.MongoDB_ColNames.Users

	baseStages := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"likedBy":    userID,
			"targetKind": models.LikeTargetVideo,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": videosCol,
			"let":  bson.M{"videoId": "$targetId"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$videoId"}}}},
				bson.M{"$match": bson.M{"isPublished": true}},
				bson.M{"$lookup": bson.M{
					"from":         usersCol,
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
				}},
				bson.M{"$addFields": bson.M{"owner": bson.M{"$first": "$owner"}}},
				bson.M{"$project": bson.M{
					"videoFile":   1,
					"thumbnail":   1,
					"title":       1,
					"description": 1,
					"duration":    1,
					"views":       1,
					"isPublished": 1,
					"createdAt":   1,
					"owner": bson.M{
						"_id":      1,
						"username": 1,
						"fullName": 1,
						"avatar":   1,
					},
				}},
			},
			"as": "video",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$video"}}},
	}

	limit = basemodels.NormalizeLimit(limit)
	page = basemodels.NormalizePage(page)

	countPipeline := append(mongo.Pipeline{}, baseStages...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})

	var countResult []struct {
		Total int64 `bson:"total"`
	}
	if err := s.Aggregate(ctx, countPipeline, &countResult); err != nil {
		return nil, err
	}

	var total int64
	if len(countResult) > 0 {
		total = countResult[0].Total
	}

	totalPages := basemodels.TotalPages(total, limit)
	page = basemodels.ResolvePage(page, totalPages)

	fetchPipeline := append(mongo.Pipeline{}, baseStages...)
	fetchPipeline = append(fetchPipeline,
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	)

	var docs []contentdto.VideoWithOwner
	if err := s.Aggregate(ctx, fetchPipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}
