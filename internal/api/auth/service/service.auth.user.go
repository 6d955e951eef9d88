// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authdto "clip_hub/internal/api/auth/dto"
	models "clip_hub/internal/api/auth/models"
	basemodels "clip_hub/internal/api/base/models"
	basesvc "clip_hub/internal/api/base/service"
	"clip_hub/internal/common"
	"clip_hub/internal/global"
	"clip_hub/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// generateTokenPair tạo cặp access + refresh token cho người dùng
func generateTokenPair(userID primitive.ObjectID) (*authdto.TokenPair, error) {
	cfg := global.MongoDB_ServerConfig

	accessToken, err := utility.GenerateToken(userID.Hex(), cfg.JwtAccessSecret, time.Duration(cfg.JwtAccessExpiry)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utility.GenerateToken(userID.Hex(), cfg.JwtRefreshSecret, time.Duration(cfg.JwtRefreshExpiry)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &authdto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Register đăng ký người dùng mới.
// Username được chuẩn hóa về chữ thường. Avatar/ảnh bìa đã được handler
// upload trước và truyền vào dưới dạng MediaAsset.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput, avatar basemodels.MediaAsset, cover basemodels.MediaAsset) (models.User, error) {
	var zero models.User

	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Kiểm tra trùng lặp trước khi insert để trả về thông báo rõ ràng;
	// unique index vẫn là chốt chặn cuối cùng
	exists, err := s.DocumentExists(ctx, bson.M{
		"$or": []bson.M{
			{"username": username},
			{"email": email},
		},
	})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeDatabaseDuplicate,
			"Username hoặc email đã được sử dụng",
			common.StatusConflict,
			nil,
		)
	}

	hashedPassword, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:   username,
		Email:      email,
		FullName:   input.FullName,
		Password:   hashedPassword,
		Avatar:     avatar,
		CoverImage: cover,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return zero, err
	}

	created.Password = ""
	created.RefreshToken = ""
	return created, nil
}

// Login đăng nhập bằng username hoặc email + mật khẩu.
// Thành công trả về user cùng cặp token; refresh token được ghi đè vào user
// (mỗi user chỉ có một refresh token active).
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (models.User, *authdto.TokenPair, error) {
	var zero models.User

	if input.Username == "" && input.Email == "" {
		return zero, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Cần cung cấp username hoặc email để đăng nhập",
			common.StatusBadRequest,
			nil,
		)
	}

	var filters []bson.M
	if input.Username != "" {
		filters = append(filters, bson.M{"username": strings.ToLower(input.Username)})
	}
	if input.Email != "" {
		filters = append(filters, bson.M{"email": strings.ToLower(input.Email)})
	}

	user, err := s.FindOne(ctx, bson.M{"$or": filters}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, nil, common.ErrInvalidCredentials
		}
		return zero, nil, err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return zero, nil, common.ErrInvalidCredentials
	}

	tokens, err := generateTokenPair(user.ID)
	if err != nil {
		return zero, nil, err
	}

	// Ghi đè refresh token active
	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": tokens.RefreshToken},
	})
	if err != nil {
		return zero, nil, err
	}

	updated.Password = ""
	updated.RefreshToken = ""
	return updated, tokens, nil
}

// RefreshAccessToken xoay vòng cặp token từ một refresh token hợp lệ.
// Token không khớp với token đang lưu (đã logout hoặc đã bị xoay) bị từ chối 401.
func (s *UserService) RefreshAccessToken(ctx context.Context, refreshToken string) (*authdto.TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrTokenMissing
	}

	claims, err := utility.ParseToken(refreshToken, global.MongoDB_ServerConfig.JwtRefreshSecret)
	if err != nil {
		return nil, err
	}

	userID := utility.String2ObjectID(claims.UserID)
	if userID.IsZero() {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrTokenInvalid
		}
		return nil, err
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		logrus.WithFields(logrus.Fields{
			"user_id": claims.UserID,
		}).Warn("RefreshAccessToken: Refresh token không khớp với token đang lưu")
		return nil, common.ErrTokenInvalid
	}

	tokens, err := generateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	_, err = s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": tokens.RefreshToken},
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// Logout đăng xuất người dùng: gỡ refresh token đang lưu
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	})
	return err
}

// ChangePassword đổi mật khẩu sau khi xác nhận mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(user.Password, input.OldPassword) {
		return common.NewError(
			common.ErrCodeAuthCredentials,
			"Mật khẩu cũ không đúng",
			common.StatusBadRequest,
			nil,
		)
	}

	hashedPassword, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashedPassword},
	})
	return err
}

// UpdateAccount cập nhật thông tin tài khoản (fullName, email).
// Chỉ các trường được cung cấp mới bị thay đổi.
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateAccountInput) (models.User, error) {
	var zero models.User

	set := make(map[string]interface{})
	if input.FullName != "" {
		set["fullName"] = input.FullName
	}
	if input.Email != "" {
		email := strings.ToLower(strings.TrimSpace(input.Email))

		// Email mới không được trùng với người dùng khác
		exists, err := s.DocumentExists(ctx, bson.M{
			"email": email,
			"_id":   bson.M{"$ne": userID},
		})
		if err != nil {
			return zero, err
		}
		if exists {
			return zero, common.NewError(
				common.ErrCodeDatabaseDuplicate,
				"Email đã được sử dụng bởi tài khoản khác",
				common.StatusConflict,
				nil,
			)
		}
		set["email"] = email
	}

	if len(set) == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Không có trường nào để cập nhật",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, err
	}

	updated.Password = ""
	updated.RefreshToken = ""
	return updated, nil
}

// ReplaceAvatar thay avatar của người dùng và dọn dẹp tệp cũ trong nền.
// Lỗi xóa tệp cũ chỉ được log, không trả về cho client.
func (s *UserService) ReplaceAvatar(ctx context.Context, userID primitive.ObjectID, asset basemodels.MediaAsset) (models.User, error) {
	return s.replaceMediaField(ctx, userID, "avatar", asset)
}

// ReplaceCoverImage thay ảnh bìa của người dùng và dọn dẹp tệp cũ trong nền
func (s *UserService) ReplaceCoverImage(ctx context.Context, userID primitive.ObjectID, asset basemodels.MediaAsset) (models.User, error) {
	return s.replaceMediaField(ctx, userID, "coverImage", asset)
}

func (s *UserService) replaceMediaField(ctx context.Context, userID primitive.ObjectID, field string, asset basemodels.MediaAsset) (models.User, error) {
	var zero models.User

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return zero, err
	}

	var old basemodels.MediaAsset
	switch field {
	case "avatar":
		old = user.Avatar
	case "coverImage":
		old = user.CoverImage
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{field: asset},
	})
	if err != nil {
		return zero, err
	}

	// Dọn dẹp tệp cũ trong nền sau khi thay thế thành công
	if old.StorageID != "" {
		oldStorageID := old.StorageID
		go utility.GoProtect(func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := global.MediaStorage.Delete(cleanupCtx, oldStorageID); err != nil {
				logrus.WithFields(logrus.Fields{
					"storage_id": oldStorageID,
					"field":      field,
				}).WithError(err).Warn("⚠️ Không xóa được tệp media cũ")
			}
		})
	}

	updated.Password = ""
	updated.RefreshToken = ""
	return updated, nil
}

// GetUserChannelProfile lấy hồ sơ kênh công khai theo username.
// viewer là người đang xem (NilObjectID nếu ẩn danh) để tính isSubscribed.
func (s *UserService) GetUserChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*authdto.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, common.ErrInvalidInput
	}

	subsCol := global.MongoDB_ColNames.Subscriptions

	var isSubscribedExpr interface{} = false
	if !viewer.IsZero() {
		isSubscribedExpr = bson.M{"$in": bson.A{viewer, "$subscribers.subscriber"}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": username}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         subsCol,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         subsCol,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subscribersCount":  bson.M{"$size": "$subscribers"},
			"subscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed":      isSubscribedExpr,
		}}},
		{{Key: "$project", Value: bson.M{
			"username":          1,
			"fullName":          1,
			"avatar":            1,
			"coverImage":        1,
			"subscribersCount":  1,
			"subscribedToCount": 1,
			"isSubscribed":      1,
			"createdAt":         1,
		}}},
	}

	var results []authdto.ChannelProfile
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return &results[0], nil
}

// GetWatchHistory lấy lịch sử xem của người dùng theo thứ tự lần xem đầu tiên,
// join chủ sở hữu từng video; chỉ trả về video đã publish.
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[authdto.WatchHistoryVideo], error) {
	videosCol := global.MongoDB_ColNames.Videos
	usersCol := global.MongoDB_ColNames.Users

	// Các stage chung: unwind lịch sử (giữ thứ tự mảng), join video đã publish
	// kèm chủ sở hữu, flatten về document video
	baseStages := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$unwind", Value: bson.M{
			"path":              "$watchHistory",
			"includeArrayIndex": "watchOrder",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": videosCol,
			"let":  bson.M{"videoId": "$watchHistory"},
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
					"title":     1,
					"thumbnail": 1,
					"duration":  1,
					"views":     1,
					"createdAt": 1,
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

	// Đếm trước để resolve page
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
		bson.D{{Key: "$sort", Value: bson.M{"watchOrder": 1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	)

	var docs []authdto.WatchHistoryVideo
	if err := s.Aggregate(ctx, fetchPipeline, &docs); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(docs, total, page, limit), nil
}

// AppendWatchHistory thêm một video vào lịch sử xem ($addToSet nên không trùng lặp)
func (s *UserService) AppendWatchHistory(ctx context.Context, userID primitive.ObjectID, videoID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"watchHistory": videoID},
	})
	return err
}

// watchHistoryPurge dựng filter và update gỡ một video khỏi lịch sử xem
// của mọi người dùng đang chứa nó
func watchHistoryPurge(videoID primitive.ObjectID) (bson.M, *basesvc.UpdateData) {
	return bson.M{"watchHistory": videoID}, &basesvc.UpdateData{
		Pull: map[string]interface{}{"watchHistory": videoID},
	}
}

// PurgeWatchHistory gỡ một video khỏi lịch sử xem của mọi người dùng.
// Gọi trong cascade xóa video để ID video không tồn đọng vĩnh viễn.
func (s *UserService) PurgeWatchHistory(ctx context.Context, videoID primitive.ObjectID) error {
	filter, update := watchHistoryPurge(videoID)
	_, err := s.UpdateMany(ctx, filter, update, nil)
	return err
}
