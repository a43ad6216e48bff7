// internal/localday/localday.go
package localday

import (
	"fmt"
	"time"
)

// Day は instant のカレンダー日付を loc のタイムゾーンで YYYY-MM-DD 形式に整形します。
// loc が nil の場合 (タイムゾーンを解決できなかった場合) は instant 自身の
// 壁時計の日付成分をそのまま使います。ゾーン変換ありの結果とは深夜境界付近で
// ずれることがありますが、これは許容された近似です。
func Day(instant time.Time, loc *time.Location) string {
	if loc != nil {
		instant = instant.In(loc)
	}
	year, month, day := instant.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Resolve はタイムゾーン名を *time.Location に解決します。
// name が空の場合は実行環境のローカルタイムゾーンを使います。
// 第2戻り値はバックエンドへ転送するタイムゾーン名で、正式な名前が
// 得られない場合は空文字列を返します (バックエンド側では「不明」扱い)。
func Resolve(name string) (*time.Location, string) {
	if name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, ""
		}
		return loc, name
	}

	loc := time.Local
	if loc == nil {
		return nil, ""
	}
	resolved := loc.String()
	if resolved == "" || resolved == "Local" {
		// "Local" はIANA名ではないため転送しない
		return loc, ""
	}
	return loc, resolved
}
