package models

import "testing"

func TestIsValidLikeTarget(t *testing.T) {
	cases := []struct {
		name string
		kind string
		want bool
	}{
		{"video hợp lệ", LikeTargetVideo, true},
		{"comment hợp lệ", LikeTargetComment, true},
		{"tweet hợp lệ", LikeTargetTweet, true},
		{"chuỗi rỗng không hợp lệ", "", false},
		{"loại lạ không hợp lệ", "playlist", false},
		{"phân biệt hoa thường", "Video", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidLikeTarget(tc.kind); got != tc.want {
				t.Errorf("IsValidLikeTarget(%q) = %v, muốn %v", tc.kind, got, tc.want)
			}
		})
	}
}
