package localday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	// 2024-03-01 23:30 UTC
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{
			name: "正常系: UTCでの日付",
			loc:  time.UTC,
			want: "2024-03-01",
		},
		{
			name: "正常系: 東側のゾーンでは日付が進む",
			loc:  time.FixedZone("Asia/Tokyo", 9*60*60),
			want: "2024-03-02",
		},
		{
			name: "正常系: 西側のゾーンでは日付はそのまま",
			loc:  time.FixedZone("America/New_York", -5*60*60),
			want: "2024-03-01",
		},
		{
			name: "フォールバック: ゾーン解決不可なら instant 自身の日付成分を使う",
			loc:  nil,
			want: "2024-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Day(instant, tt.loc))
		})
	}
}

func TestDay_ZeroPadding(t *testing.T) {
	instant := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-05", Day(instant, time.UTC))
	assert.Equal(t, "2024-01-05", Day(instant, nil))
}

func TestDay_Deterministic(t *testing.T) {
	// 同一入力なら常に同一出力 (純粋関数)
	instant := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	loc := time.FixedZone("X", 2*60*60)
	first := Day(instant, loc)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Day(instant, loc))
	}
}

func TestResolve(t *testing.T) {
	t.Run("正常系: 既知のタイムゾーン名", func(t *testing.T) {
		loc, name := Resolve("UTC")
		require.NotNil(t, loc)
		assert.Equal(t, "UTC", name)
	})

	t.Run("異常系: 未知のタイムゾーン名は (nil, 空) を返す", func(t *testing.T) {
		loc, name := Resolve("Not/AZone")
		assert.Nil(t, loc)
		assert.Equal(t, "", name)
	})

	t.Run("正常系: 空文字列はローカルタイムゾーンにフォールバック", func(t *testing.T) {
		loc, _ := Resolve("")
		assert.NotNil(t, loc)
	})
}
