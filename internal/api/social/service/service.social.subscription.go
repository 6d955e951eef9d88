package socialsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authmodels "clip_hub/internal/api/auth/models"
	"clip_hub/internal/api/authz"
	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	socialdto "clip_hub/internal/api/social/dto"
	models "clip_hub/internal/api/social/models"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](subscriptionCollection),
		userService:          basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
	}, nil
}

// ToggleSubscription đảo trạng thái đăng ký kênh của actor.
// Xóa trước nếu đã đăng ký; chưa thì kiểm tra kênh tồn tại rồi tạo.
// Không cho tự đăng ký kênh của chính mình.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, channelID primitive.ObjectID, actor primitive.ObjectID) (*socialdto.ToggleSubscriptionResult, error) {
	if err := authz.CanSubscribe(actor, channelID); err != nil {
		return nil, err
	}

	edgeFilter := bson.M{
		"subscriber": actor,
		"channel":    channelID,
	}

	// Đã đăng ký rồi thì hủy
	err := s.DeleteOne(ctx, edgeFilter)
	if err == nil {
		return &socialdto.ToggleSubscriptionResult{Subscribed: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// Chưa đăng ký: kênh phải là người dùng tồn tại
	if _, err := s.userService.FindOneById(ctx, channelID); err != nil {
		return nil, err
	}

	_, err = s.InsertOne(ctx, models.Subscription{
		Subscriber: actor,
		Channel:    channelID,
	})
	if err != nil {
		// Hai toggle đồng thời có thể đụng unique index; coi như đã đăng ký
		if errors.Is(err, common.ErrDuplicate) {
			return &socialdto.ToggleSubscriptionResult{Subscribed: true}, nil
		}
		return nil, err
	}

	return &socialdto.ToggleSubscriptionResult{Subscribed: true}, nil
}

// subscriptionUserStages join một phía của cạnh subscription sang bảng users
// và trả về projection công khai kèm thời điểm đăng ký.
func subscriptionUserStages(localField string) []bson.D {
	usersCol := global.MongoDB_ColNames.Users
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCol,
			"localField":   localField,
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
}

// GetUserChannelSubscribers trả về người đăng ký của một kênh.
// Chỉ chủ kênh xem được danh sách; người khác chỉ nhận tổng số.
func (s *SubscriptionService) GetUserChannelSubscribers(ctx context.Context, channelID primitive.ObjectID, actor primitive.ObjectID, page, limit int64) (*socialdto.SubscribersView, error) {
	if actor.IsZero() {
		return nil, common.ErrTokenMissing
	}

	filter := bson.M{"channel": channelID}

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := authz.CanListSubscribers(actor, channelID); err != nil {
		return &socialdto.SubscribersView{TotalSubscribers: total}, nil
	}

	limit = basemodels.NormalizeLimit(limit)
	page = basemodels.NormalizePage(page)
	totalPages := basemodels.TotalPages(total, limit)
	page = basemodels.ResolvePage(page, totalPages)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, subscriptionUserStages("subscriber")...)

	var docs []socialdto.SubscriberInfo
	if err := s.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	return &socialdto.SubscribersView{
		TotalSubscribers: total,
		Subscribers:      basemodels.NewPaginateResult(docs, total, page, limit),
	}, nil
}

// GetSubscribedChannels trả về các kênh mà một người dùng theo dõi
// (mới đăng ký trước), với projection công khai của kênh.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[socialdto.ChannelInfo], error) {
	filter := bson.M{"subscriber": subscriberID}

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
	pipeline = append(pipeline, subscriptionUserStages("channel")...)

	var docs []socialdto.ChannelInfo
	if err := s.Aggregate(ctx, pipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}
