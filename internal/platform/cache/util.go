package cache

import (
	"time"
)

// TimeUntilNext6PM は次の午後6時（インド時間）までの期間を返します。
// マンディの当日価格は夕方に確定するため、キャッシュTTLとして使います。
func TimeUntilNext6PM() time.Duration {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	now := time.Now().In(loc)

	// 次の午後6時を計算
	next6pm := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, loc)

	// 今日の午後6時が既に過ぎている場合は明日の午後6時を使用
	if now.After(next6pm) {
		next6pm = next6pm.Add(24 * time.Hour)
	}

	return next6pm.Sub(now)
}
