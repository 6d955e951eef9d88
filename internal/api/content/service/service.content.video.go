// Package contentsvc - service video thuộc domain content.
package contentsvc

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authsvc "clip_hub/internal/api/auth/service"
	"clip_hub/internal/api/authz"
	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	contentdto "clip_hub/internal/api/content/dto"
	models "clip_hub/internal/api/content/models"
	socialmodels "clip_hub/internal/api/social/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/utility"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
	commentService  *basesvc.BaseServiceMongoImpl[socialmodels.Comment]
	likeService     *basesvc.BaseServiceMongoImpl[socialmodels.Like]
	playlistService *basesvc.BaseServiceMongoImpl[models.Playlist]
	userService     *authsvc.UserService
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
		commentService:       basesvc.NewBaseServiceMongo[socialmodels.Comment](commentCollection),
		likeService:          basesvc.NewBaseServiceMongo[socialmodels.Like](likeCollection),
		playlistService:      basesvc.NewBaseServiceMongo[models.Playlist](playlistCollection),
		userService:          userService,
	}, nil
}

// ownerLookupStages các stage join chủ sở hữu video và flatten về một object
func ownerLookupStages() []bson.D {
	usersCol := global.MongoDB_ColNames.Users
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCol,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$addFields", Value: bson.M{"owner": bson.M{"$first": "$owner"}}}},
		{{Key: "$project", Value: bson.M{
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
		}}},
	}
}

// PublishVideo đăng một video mới. Video mặc định ở trạng thái đã publish.
func (s *VideoService) PublishVideo(ctx context.Context, owner primitive.ObjectID, input *contentdto.VideoPublishInput, videoFile basemodels.MediaAsset, thumbnail basemodels.MediaAsset) (models.Video, error) {
	video := models.Video{
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
		Owner:       owner,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Views:       0,
		IsPublished: true,
	}

	return s.InsertOne(ctx, video)
}

// GetVideoById lấy một video theo ID cho người xem cụ thể.
// Video chưa publish chỉ chủ sở hữu thấy (người khác nhận 404).
// Mỗi lượt xem hợp lệ tăng views nguyên tử và ghi vào lịch sử xem của người xem.
func (s *VideoService) GetVideoById(ctx context.Context, videoID primitive.ObjectID, viewer primitive.ObjectID) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanViewVideo(viewer, video.Owner, video.IsPublished); err != nil {
		return zero, err
	}

	// Tăng views nguyên tử, trả về document sau khi tăng
	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": videoID}, &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err != nil {
		return zero, err
	}

	// Ghi vào lịch sử xem của người xem đã đăng nhập
	if !viewer.IsZero() {
		if err := s.userService.AppendWatchHistory(ctx, viewer, videoID); err != nil {
			// Lịch sử xem không được chặn việc trả video
			logrus.WithFields(logrus.Fields{
				"video_id": videoID.Hex(),
				"user_id":  viewer.Hex(),
			}).WithError(err).Warn("⚠️ Không ghi được lịch sử xem")
		}
	}

	return updated, nil
}

// UpdateVideo cập nhật title/description/thumbnail của video (chỉ chủ sở hữu).
// Thumbnail cũ được dọn dẹp trong nền khi bị thay thế.
func (s *VideoService) UpdateVideo(ctx context.Context, videoID primitive.ObjectID, actor primitive.ObjectID, input *contentdto.VideoUpdateInput, newThumbnail *basemodels.MediaAsset) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, video.Owner); err != nil {
		return zero, err
	}

	set := make(map[string]interface{})
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if newThumbnail != nil {
		set["thumbnail"] = *newThumbnail
	}

	if len(set) == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Không có trường nào để cập nhật",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, videoID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, err
	}

	if newThumbnail != nil && video.Thumbnail.StorageID != "" {
		s.cleanupStorage(video.Thumbnail.StorageID)
	}

	return updated, nil
}

// TogglePublishStatus đảo trạng thái publish của video (chỉ chủ sở hữu)
func (s *VideoService) TogglePublishStatus(ctx context.Context, videoID primitive.ObjectID, actor primitive.ObjectID) (models.Video, error) {
	var zero models.Video

	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, video.Owner); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, videoID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": !video.IsPublished},
	})
}

// DeleteVideo xóa video cùng toàn bộ dữ liệu liên quan (chỉ chủ sở hữu):
// like trên video, like trên các comment của video, các comment,
// gỡ video khỏi mọi playlist và mọi lịch sử xem, rồi dọn dẹp tệp
// trên storage trong nền.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID primitive.ObjectID, actor primitive.ObjectID) error {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return err
	}

	if err := authz.CanMutate(actor, video.Owner); err != nil {
		return err
	}

	// Thu thập ID các comment của video để xóa like trên comment
	comments, err := s.commentService.Find(ctx, bson.M{"video": videoID}, nil)
	if err != nil {
		return err
	}
	commentIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, comment := range comments {
		commentIDs = append(commentIDs, comment.ID)
	}

	// Like trên video
	if _, err := s.likeService.DeleteMany(ctx, bson.M{
		"targetKind": socialmodels.LikeTargetVideo,
		"targetId":   videoID,
	}); err != nil {
		return err
	}

	// Like trên các comment của video
	if len(commentIDs) > 0 {
		if _, err := s.likeService.DeleteMany(ctx, bson.M{
			"targetKind": socialmodels.LikeTargetComment,
			"targetId":   bson.M{"$in": commentIDs},
		}); err != nil {
			return err
		}
	}

	// Các comment của video
	if _, err := s.commentService.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
		return err
	}

	// Gỡ video khỏi mọi playlist đang chứa nó
	if _, err := s.playlistService.UpdateMany(ctx, bson.M{"videos": videoID}, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}, nil); err != nil {
		return err
	}

	// Gỡ video khỏi lịch sử xem của mọi người dùng
	if err := s.userService.PurgeWatchHistory(ctx, videoID); err != nil {
		return err
	}

	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}

	// Dọn dẹp tệp video và thumbnail trong nền
	s.cleanupStorage(video.VideoFile.StorageID)
	s.cleanupStorage(video.Thumbnail.StorageID)

	return nil
}

// cleanupStorage xóa một object trên storage trong nền; lỗi chỉ được log
func (s *VideoService) cleanupStorage(storageID string) {
	if storageID == "" {
		return
	}
	go utility.GoProtect(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := global.MediaStorage.Delete(cleanupCtx, storageID); err != nil {
			logrus.WithField("storage_id", storageID).WithError(err).
				Warn("⚠️ Không xóa được tệp media của video")
		}
	})
}

// BuildVideoSort dựng sort option cho danh sách video công khai.
// sortBy ∈ {createdAt, views, duration}; chỉ sortType desc cho giảm dần,
// có sortBy mà không có sortType thì tăng dần. Không có sortBy hợp lệ
// thì mặc định views giảm dần.
func BuildVideoSort(sortBy string, sortType string) bson.D {
	switch sortBy {
	case "createdAt", "views", "duration":
	default:
		return bson.D{{Key: "views", Value: -1}}
	}

	order := 1
	if sortType == "desc" {
		order = -1
	}
	return bson.D{{Key: sortBy, Value: order}}
}

// BuildVideoMatch dựng filter cho danh sách video công khai: chỉ video
// đã publish, tìm chữ trên cả title và description (regex không phân
// biệt hoa thường), lọc theo chủ kênh nếu có.
func BuildVideoMatch(query *contentdto.VideoListQuery) (bson.M, error) {
	match := bson.M{"isPublished": true}
	if query.Query != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(query.Query), "$options": "i"}
		match["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if query.UserID != "" {
		ownerID := utility.String2ObjectID(query.UserID)
		if ownerID.IsZero() {
			return nil, common.ErrInvalidInput
		}
		match["owner"] = ownerID
	}
	return match, nil
}

// GetAllVideos trả về danh sách video công khai (chỉ video đã publish),
// lọc theo từ khóa và chủ kênh, phân trang.
func (s *VideoService) GetAllVideos(ctx context.Context, query *contentdto.VideoListQuery, page, limit int64) (*basemodels.PaginateResult[contentdto.VideoWithOwner], error) {
	match, err := BuildVideoMatch(query)
	if err != nil {
		return nil, err
	}

	limit = basemodels.NormalizeLimit(limit)
	page = basemodels.NormalizePage(page)

	total, err := s.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	totalPages := basemodels.TotalPages(total, limit)
	page = basemodels.ResolvePage(page, totalPages)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: BuildVideoSort(query.SortBy, query.SortType)}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	var docs []contentdto.VideoWithOwner
	if err := s.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}

// GetChannelVideos trả về video của một kênh (mới nhất trước), join chủ sở hữu.
// Người xem không phải chủ kênh chỉ thấy video đã publish.
func (s *VideoService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID, viewer primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[contentdto.VideoWithOwner], error) {
	match := bson.M{"owner": channelID}
	if viewer != channelID {
		match["isPublished"] = true
	}

	limit = basemodels.NormalizeLimit(limit)
	page = basemodels.NormalizePage(page)

	total, err := s.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	totalPages := basemodels.TotalPages(total, limit)
	page = basemodels.ResolvePage(page, totalPages)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	var docs []contentdto.VideoWithOwner
	if err := s.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}
