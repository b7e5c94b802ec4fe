package route

import "github.com/vincenthsieh/tokyosync/internal/domain"

// Fallback is the static suggestion shown when the backend fails.
// Failures are isolated per call and never reach itinerary state.
func Fallback() *Suggestion {
	return &Suggestion{
		Transit: domain.TransitInfo{
			Mode:         domain.ModeTrain,
			Duration:     "未知",
			LineName:     "請查詢地圖",
			Instructions: "無法取得路線資訊，請檢查網路連線或設定。",
			Cost:         "---",
		},
		Notes:    "暫時無法規劃路線。",
		Fallback: true,
	}
}

// Disabled is the static suggestion shown when suggestions are
// switched off entirely.
func Disabled() *Suggestion {
	return &Suggestion{
		Transit: domain.TransitInfo{
			Mode:         domain.ModeTrain,
			Duration:     "未啟用",
			LineName:     "路線建議未啟用",
			Instructions: "設定 TOKYOSYNC_ROUTE_ENABLED=1 以啟用即時規劃功能。",
			Cost:         "---",
		},
		Notes:    "路線建議功能未啟用。",
		Fallback: true,
	}
}
