// Package reportsvc - thống kê dashboard cho chủ kênh.
package reportsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	contentdto "clip_hub/internal/api/content/dto"
	contentmodels "clip_hub/internal/api/content/models"
	contentsvc "clip_hub/internal/api/content/service"
	reportdto "clip_hub/internal/api/report/dto"
	socialmodels "clip_hub/internal/api/social/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
)

// ReportService là cấu trúc chứa các phương thức thống kê kênh
type ReportService struct {
	videoService        *basesvc.BaseServiceMongoImpl[contentmodels.Video]
	likeService         *basesvc.BaseServiceMongoImpl[socialmodels.Like]
	commentService      *basesvc.BaseServiceMongoImpl[socialmodels.Comment]
	subscriptionService *basesvc.BaseServiceMongoImpl[socialmodels.Subscription]
	playlistService     *basesvc.BaseServiceMongoImpl[contentmodels.Playlist]
	channelVideos       *contentsvc.VideoService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	channelVideos, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, err
	}

	return &ReportService{
		videoService:        basesvc.NewBaseServiceMongo[contentmodels.Video](videoCollection),
		likeService:         basesvc.NewBaseServiceMongo[socialmodels.Like](likeCollection),
		commentService:      basesvc.NewBaseServiceMongo[socialmodels.Comment](commentCollection),
		subscriptionService: basesvc.NewBaseServiceMongo[socialmodels.Subscription](subscriptionCollection),
		playlistService:     basesvc.NewBaseServiceMongo[contentmodels.Playlist](playlistCollection),
		channelVideos:       channelVideos,
	}, nil
}

// GetChannelStats tính toàn bộ số liệu dashboard của một kênh.
// Các nhóm số liệu chạy song song; một nhóm lỗi thì cả lời gọi lỗi.
// Kênh trống trả về số liệu bằng 0.
func (s *ReportService) GetChannelStats(ctx context.Context, channelID primitive.ObjectID) (*reportdto.ChannelStats, error) {
	stats := &reportdto.ChannelStats{
		Comments: reportdto.CommentStats{
			TopLikedComments:   []reportdto.TopComment{},
			TopCommentedVideos: []reportdto.TopCommentedVideo{},
		},
		Subscriptions: reportdto.SubscriptionStats{
			NewestSubscribers: []reportdto.SubscriberBrief{},
			OldestSubscribers: []reportdto.SubscriberBrief{},
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview, err := s.videoOverview(gctx, channelID)
		if err != nil {
			return err
		}
		stats.Videos = *overview
		return nil
	})

	g.Go(func() error {
		likes, err := s.likeStats(gctx, channelID)
		if err != nil {
			return err
		}
		stats.Likes = *likes
		return nil
	})

	g.Go(func() error {
		comments, err := s.commentStats(gctx, channelID)
		if err != nil {
			return err
		}
		stats.Comments = *comments
		return nil
	})

	g.Go(func() error {
		subs, err := s.subscriptionStats(gctx, channelID)
		if err != nil {
			return err
		}
		stats.Subscriptions = *subs
		return nil
	})

	g.Go(func() error {
		playlists, err := s.playlistStats(gctx, channelID)
		if err != nil {
			return err
		}
		stats.Playlists = *playlists
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetChannelVideos danh sách video của chính chủ kênh (gồm cả chưa publish)
func (s *ReportService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[contentdto.VideoWithOwner], error) {
	return s.channelVideos.GetChannelVideos(ctx, channelID, channelID, page, limit)
}

// spotlightProjection projection dùng chung cho các video nổi bật
func spotlightProjection() bson.M {
	return bson.M{
		"title":     1,
		"thumbnail": 1,
		"views":     1,
		"createdAt": 1,
	}
}

func (s *ReportService) videoOverview(ctx context.Context, channelID primitive.ObjectID) (*reportdto.VideoOverview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": channelID}}},
		{{Key: "$facet", Value: bson.M{
			"overview": bson.A{
				bson.M{"$group": bson.M{
					"_id":         nil,
					"totalVideos": bson.M{"$sum": 1},
					"totalViews":  bson.M{"$sum": "$views"},
					"avgViews":    bson.M{"$avg": "$views"},
				}},
			},
			"mostViewed": bson.A{
				bson.M{"$sort": bson.D{{Key: "views", Value: -1}}},
				bson.M{"$limit": 1},
				bson.M{"$project": spotlightProjection()},
			},
			"latest": bson.A{
				bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
				bson.M{"$limit": 1},
				bson.M{"$project": spotlightProjection()},
			},
			"oldest": bson.A{
				bson.M{"$sort": bson.D{{Key: "createdAt", Value: 1}}},
				bson.M{"$limit": 1},
				bson.M{"$project": spotlightProjection()},
			},
		}}},
	}

	var rows []struct {
		Overview []struct {
			TotalVideos int64   `bson:"totalVideos"`
			TotalViews  int64   `bson:"totalViews"`
			AvgViews    float64 `bson:"avgViews"`
		} `bson:"overview"`
		MostViewed []reportdto.VideoSpotlight `bson:"mostViewed"`
		Latest     []reportdto.VideoSpotlight `bson:"latest"`
		Oldest     []reportdto.VideoSpotlight `bson:"oldest"`
	}
	if err := s.videoService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	result := &reportdto.VideoOverview{}
	if len(rows) == 0 {
		return result, nil
	}

	row := rows[0]
	if len(row.Overview) > 0 {
		result.TotalVideos = row.Overview[0].TotalVideos
		result.TotalViews = row.Overview[0].TotalViews
		result.AvgViews = row.Overview[0].AvgViews
	}
	if len(row.MostViewed) > 0 {
		result.MostViewed = &row.MostViewed[0]
	}
	if len(row.Latest) > 0 {
		result.Latest = &row.Latest[0]
	}
	if len(row.Oldest) > 0 {
		result.Oldest = &row.Oldest[0]
	}

	return result, nil
}

// countLikesReceived đếm like kênh nhận được trên một loại nội dung,
// bằng cách join like sang bảng nội dung rồi lọc theo chủ sở hữu.
func (s *ReportService) countLikesReceived(ctx context.Context, kind string, fromCol string, channelID primitive.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"targetKind": kind}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         fromCol,
			"localField":   "targetId",
			"foreignField": "_id",
			"as":           "target",
		}}},
		{{Key: "$unwind", Value: "$target"}},
		{{Key: "$match", Value: bson.M{"target.owner": channelID}}},
		{{Key: "$count", Value: "total"}},
	}

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := s.likeService.Aggregate(ctx, pipeline, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (s *ReportService) likeStats(ctx context.Context, channelID primitive.ObjectID) (*reportdto.LikeStats, error) {
	videoLikes, err := s.countLikesReceived(ctx, socialmodels.LikeTargetVideo, global.MongoDB_ColNames.Videos, channelID)
	if err != nil {
		return nil, err
	}
	commentLikes, err := s.countLikesReceived(ctx, socialmodels.LikeTargetComment, global.MongoDB_ColNames.Comments, channelID)
	if err != nil {
		return nil, err
	}
	tweetLikes, err := s.countLikesReceived(ctx, socialmodels.LikeTargetTweet, global.MongoDB_ColNames.Tweets, channelID)
	if err != nil {
		return nil, err
	}

	return &reportdto.LikeStats{
		VideoLikes:   videoLikes,
		CommentLikes: commentLikes,
		TweetLikes:   tweetLikes,
	}, nil
}

func (s *ReportService) commentStats(ctx context.Context, channelID primitive.ObjectID) (*reportdto.CommentStats, error) {
	videosCol := global.MongoDB_ColNames.Videos
	likesCol := global.MongoDB_ColNames.Likes
	commentsCol := global.MongoDB_ColNames.Comments

	// Bình luận trên video của kênh: join sang videos rồi lọc theo owner
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         videosCol,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "videoDoc",
		}}},
		{{Key: "$unwind", Value: "$videoDoc"}},
		{{Key: "$match", Value: bson.M{"videoDoc.owner": channelID}}},
		{{Key: "$facet", Value: bson.M{
			"total": bson.A{
				bson.M{"$count": "total"},
			},
			"topLiked": bson.A{
				bson.M{"$lookup": bson.M{
					"from": likesCol,
					"let":  bson.M{"commentId": "$_id"},
					"pipeline": bson.A{
						bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
							bson.M{"$eq": bson.A{"$targetKind", socialmodels.LikeTargetComment}},
							bson.M{"$eq": bson.A{"$targetId", "$$commentId"}},
						}}}},
					},
					"as": "likes",
				}},
				bson.M{"$addFields": bson.M{"likesCount": bson.M{"$size": "$likes"}}},
				bson.M{"$sort": bson.D{{Key: "likesCount", Value: -1}, {Key: "createdAt", Value: -1}}},
				bson.M{"$limit": 5},
				bson.M{"$project": bson.M{"content": 1, "video": 1, "likesCount": 1}},
			},
		}}},
	}

	var rows []struct {
		Total []struct {
			Total int64 `bson:"total"`
		} `bson:"total"`
		TopLiked []reportdto.TopComment `bson:"topLiked"`
	}
	if err := s.commentService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	result := &reportdto.CommentStats{
		TopLikedComments:   []reportdto.TopComment{},
		TopCommentedVideos: []reportdto.TopCommentedVideo{},
	}
	if len(rows) > 0 {
		if len(rows[0].Total) > 0 {
			result.TotalComments = rows[0].Total[0].Total
		}
		if rows[0].TopLiked != nil {
			result.TopLikedComments = rows[0].TopLiked
		}
	}

	// Video được bình luận nhiều nhất của kênh
	topVideosPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": channelID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         commentsCol,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "comments",
		}}},
		{{Key: "$addFields", Value: bson.M{"commentsCount": bson.M{"$size": "$comments"}}}},
		{{Key: "$match", Value: bson.M{"commentsCount": bson.M{"$gt": 0}}}},
		{{Key: "$sort", Value: bson.D{{Key: "commentsCount", Value: -1}}}},
		{{Key: "$limit", Value: 5}},
		{{Key: "$project", Value: bson.M{"title": 1, "commentsCount": 1}}},
	}

	var topVideos []reportdto.TopCommentedVideo
	if err := s.videoService.Aggregate(ctx, topVideosPipeline, &topVideos); err != nil {
		return nil, err
	}
	if topVideos != nil {
		result.TopCommentedVideos = topVideos
	}

	return result, nil
}

// subscriberSpotlight trả về số người đăng ký đầu/cuối theo thời điểm
func (s *ReportService) subscriberSpotlight(ctx context.Context, channelID primitive.ObjectID, sortDir int) ([]reportdto.SubscriberBrief, error) {
	usersCol := global.MongoDB_ColNames.Users

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"channel": channelID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: sortDir}}}},
		{{Key: "$limit", Value: 5}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCol,
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "userDoc",
		}}},
		{{Key: "$unwind", Value: "$userDoc"}},
		{{Key: "$project", Value: bson.M{
			"_id":          "$userDoc._id",
			"username":     "$userDoc.username",
			"fullName":     "$userDoc.fullName",
			"avatar":       "$userDoc.avatar",
			"subscribedAt": "$createdAt",
		}}},
	}

	var docs []reportdto.SubscriberBrief
	if err := s.subscriptionService.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []reportdto.SubscriberBrief{}
	}
	return docs, nil
}

func (s *ReportService) subscriptionStats(ctx context.Context, channelID primitive.ObjectID) (*reportdto.SubscriptionStats, error) {
	totalSubscribers, err := s.subscriptionService.CountDocuments(ctx, bson.M{"channel": channelID})
	if err != nil {
		return nil, err
	}
	totalSubscribedTo, err := s.subscriptionService.CountDocuments(ctx, bson.M{"subscriber": channelID})
	if err != nil {
		return nil, err
	}

	newest, err := s.subscriberSpotlight(ctx, channelID, -1)
	if err != nil {
		return nil, err
	}
	oldest, err := s.subscriberSpotlight(ctx, channelID, 1)
	if err != nil {
		return nil, err
	}

	return &reportdto.SubscriptionStats{
		TotalSubscribers:  totalSubscribers,
		TotalSubscribedTo: totalSubscribedTo,
		NewestSubscribers: newest,
		OldestSubscribers: oldest,
	}, nil
}

func (s *ReportService) playlistStats(ctx context.Context, channelID primitive.ObjectID) (*reportdto.PlaylistStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": channelID}}},
		{{Key: "$group", Value: bson.M{
			"_id":                    nil,
			"totalPlaylists":         bson.M{"$sum": 1},
			"totalVideosInPlaylists": bson.M{"$sum": bson.M{"$size": "$videos"}},
		}}},
	}

	var rows []struct {
		TotalPlaylists         int64 `bson:"totalPlaylists"`
		TotalVideosInPlaylists int64 `bson:"totalVideosInPlaylists"`
	}
	if err := s.playlistService.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	result := &reportdto.PlaylistStats{}
	if len(rows) > 0 {
		result.TotalPlaylists = rows[0].TotalPlaylists
		result.TotalVideosInPlaylists = rows[0].TotalVideosInPlaylists
	}
	return result, nil
}
