// Package contentsvc - service danh sách phát (Playlist).
package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clip_hub/internal/api/authz"
	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	contentdto "clip_hub/internal/api/content/dto"
	models "clip_hub/internal/api/content/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/utility"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến danh sách phát
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
	videoService *basesvc.BaseServiceMongoImpl[models.Video]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlistCollection),
		videoService:         basesvc.NewBaseServiceMongo[models.Video](videoCollection),
	}, nil
}

// CreatePlaylist tạo danh sách phát mới cho người dùng
func (s *PlaylistService) CreatePlaylist(ctx context.Context, owner primitive.ObjectID, input *contentdto.PlaylistCreateInput) (models.Playlist, error) {
	playlist := models.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Owner:       owner,
		Videos:      []primitive.ObjectID{},
	}
	return s.InsertOne(ctx, playlist)
}

// GetUserPlaylists trả về danh sách phát của một người dùng (mới cập nhật trước), phân trang
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Playlist], error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"owner": userID}, page, limit, opts)
}

// GetPlaylistById trả về một danh sách phát kèm các video đã join (giữ thứ tự mảng)
func (s *PlaylistService) GetPlaylistById(ctx context.Context, playlistID primitive.ObjectID) (*contentdto.PlaylistWithVideos, error) {
	usersCol := global.MongoDB_ColNames.Users
	videosCol := global.MongoDB_ColNames.Videos

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": playlistID}}},
		{{Key: "$lookup", Value: bson.M{
			"from": videosCol,
			"let":  bson.M{"videoIds": "$videos"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$in": bson.A{"$_id", "$$videoIds"}}}},
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
			"as": "videoDocs",
		}}},
		// Sắp lại videoDocs theo thứ tự của mảng videos gốc
		{{Key: "$addFields", Value: bson.M{
			"videos": bson.M{
				"$map": bson.M{
					"input": "$videos",
					"as":    "vid",
					"in": bson.M{
						"$first": bson.M{
							"$filter": bson.M{
								"input": "$videoDocs",
								"as":    "doc",
								"cond":  bson.M{"$eq": bson.A{"$$doc._id", "$$vid"}},
							},
						},
					},
				},
			},
		}}},
		// Video đã bị xóa khỏi hệ thống cho ra phần tử null, lọc bỏ
		{{Key: "$addFields", Value: bson.M{
			"videos": bson.M{
				"$filter": bson.M{
					"input": "$videos",
					"as":    "vid",
					"cond":  bson.M{"$ne": bson.A{"$$vid", nil}},
				},
			},
		}}},
		{{Key: "$project", Value: bson.M{"videoDocs": 0}}},
	}

	var results []contentdto.PlaylistWithVideos
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return &results[0], nil
}

// UpdatePlaylist cập nhật tên/mô tả danh sách phát (chỉ chủ sở hữu)
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistID primitive.ObjectID, actor primitive.ObjectID, input *contentdto.PlaylistUpdateInput) (models.Playlist, error) {
	var zero models.Playlist

	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, playlist.Owner); err != nil {
		return zero, err
	}

	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Không có trường nào để cập nhật",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{Set: set})
}

// DeletePlaylist xóa một danh sách phát (chỉ chủ sở hữu)
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID primitive.ObjectID, actor primitive.ObjectID) error {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := authz.CanMutate(actor, playlist.Owner); err != nil {
		return err
	}

	return s.DeleteById(ctx, playlistID)
}

// AddVideoToPlaylist thêm video vào danh sách phát (chỉ chủ sở hữu, không trùng lặp).
// Video phải tồn tại trong hệ thống.
func (s *PlaylistService) AddVideoToPlaylist(ctx context.Context, playlistID primitive.ObjectID, videoID primitive.ObjectID, actor primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, playlist.Owner); err != nil {
		return zero, err
	}

	// Video phải tồn tại trước khi thêm
	if _, err := s.videoService.FindOneById(ctx, videoID); err != nil {
		return zero, err
	}

	if utility.Contains(playlist.Videos, videoID) {
		return zero, common.NewError(
			common.ErrCodeDatabaseDuplicate,
			"Video đã có trong danh sách phát",
			common.StatusConflict,
			nil,
		)
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"videos": videoID},
	})
}

// RemoveVideoFromPlaylist gỡ video khỏi danh sách phát (chỉ chủ sở hữu)
func (s *PlaylistService) RemoveVideoFromPlaylist(ctx context.Context, playlistID primitive.ObjectID, videoID primitive.ObjectID, actor primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return zero, err
	}

	if err := authz.CanMutate(actor, playlist.Owner); err != nil {
		return zero, err
	}

	if !utility.Contains(playlist.Videos, videoID) {
		return zero, common.ErrNotFound
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	})
}
