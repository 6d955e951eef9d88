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
	contentmodels "clip_hub/internal/api/content/models"
	socialdto "clip_hub/internal/api/social/dto"
	models "clip_hub/internal/api/social/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	videoService basesvc.BaseServiceMongo[contentmodels.Video]
	likeService  *basesvc.BaseServiceMongoImpl[models.Like]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
		videoService:         basesvc.NewBaseServiceMongo[contentmodels.Video](videoCollection),
		likeService:          basesvc.NewBaseServiceMongo[models.Like](likeCollection),
	}, nil
}

// AddComment thêm bình luận vào một video.
// Video phải tồn tại và hiển thị được với người bình luận.
func (s *CommentService) AddComment(ctx context.Context, videoID primitive.ObjectID, actor primitive.ObjectID, input *socialdto.CommentCreateInput) (models.Comment, error) {
	var zero models.Comment

	if actor.IsZero() {
		return zero, common.ErrTokenMissing
	}

	video, err := s.videoService.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if err := authz.CanViewVideo(actor, video.Owner, video.IsPublished); err != nil {
		return zero, err
	}

	return s.InsertOne(ctx, models.Comment{
		Content: input.Content,
		Video:   videoID,
		Owner:   actor,
	})
}

// UpdateComment sửa nội dung bình luận (chỉ chủ sở hữu)
func (s *CommentService) UpdateComment(ctx context.Context, commentID primitive.ObjectID, actor primitive.ObjectID, input *socialdto.CommentUpdateInput) (models.Comment, error) {
	var zero models.Comment

	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, comment.Owner); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, commentID, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	})
}

// DeleteComment xóa bình luận cùng các like trên nó (chỉ chủ sở hữu)
func (s *CommentService) DeleteComment(ctx context.Context, commentID primitive.ObjectID, actor primitive.ObjectID) error {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return err
	}

	if err := authz.CanMutate(actor, comment.Owner); err != nil {
		return err
	}

	if _, err := s.likeService.DeleteMany(ctx, bson.M{
		"targetKind": models.LikeTargetComment,
		"targetId":   commentID,
	}); err != nil {
		return err
	}

	return s.DeleteById(ctx, commentID)
}

// likeMetaStages các stage join like vào feed: đếm like và tính isLiked cho viewer
func likeMetaStages(targetKind string, viewer primitive.ObjectID) []bson.D {
	likesCol := global.MongoDB_ColNames.Likes

	var isLikedExpr interface{} = false
	if !viewer.IsZero() {
		isLikedExpr = bson.M{"$in": bson.A{viewer, "$likes.likedBy"}}
	}

	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from": likesCol,
			"let":  bson.M{"targetId": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$targetKind", targetKind}},
					bson.M{"$eq": bson.A{"$targetId", "$$targetId"}},
				}}}},
			},
			"as": "likes",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"isLiked":    isLikedExpr,
		}}},
	}
}

// ownerJoinStages các stage join chủ sở hữu (flatten về một object)
func ownerJoinStages() []bson.D {
	usersCol := global.MongoDB_ColNames.Users
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCol,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$addFields", Value: bson.M{"owner": bson.M{"$first": "$owner"}}}},
	}
}

// GetVideoComments trả về bình luận của một video (mới nhất trước), kèm
// chủ sở hữu, số like và trạng thái like của người xem.
// Video phải tồn tại và hiển thị được với người xem: video chưa publish
// chỉ chủ sở hữu đọc được bình luận, người khác nhận 404.
func (s *CommentService) GetVideoComments(ctx context.Context, videoID primitive.ObjectID, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[socialdto.CommentWithMeta], error) {
	video, err := s.videoService.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanViewVideo(viewer, video.Owner, video.IsPublished); err != nil {
		return nil, err
	}

	filter := bson.M{"video": videoID}

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
	pipeline = append(pipeline, likeMetaStages(models.LikeTargetComment, viewer)...)
	pipeline = append(pipeline, ownerJoinStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"content":    1,
		"video":      1,
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

	var docs []socialdto.CommentWithMeta
	if err := s.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}
