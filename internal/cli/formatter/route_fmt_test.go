package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vincenthsieh/tokyosync/internal/domain"
	"github.com/vincenthsieh/tokyosync/internal/route"
)

func TestFormatSuggestion_RealPlan(t *testing.T) {
	s := &route.Suggestion{
		Transit: domain.TransitInfo{
			Mode: domain.ModeTrain, LineName: "JR 山手線",
			Duration: "約 25 分", Cost: "約 ¥200",
			Instructions: "新橋站搭山手線外回至澀谷站。",
		},
		EstimatedArrival: "14:25",
		Notes:            "避開 17 點後的通勤人潮。",
	}

	out := FormatSuggestion("新橋", "澀谷", s)

	assert.Contains(t, out, "新橋 → 澀谷")
	assert.Contains(t, out, "電車")
	assert.Contains(t, out, "JR 山手線")
	assert.Contains(t, out, "預計到達 14:25")
	assert.NotContains(t, out, "⚠")
}

func TestFormatSuggestion_FallbackMarked(t *testing.T) {
	out := FormatSuggestion("新橋", "澀谷", route.Fallback())

	assert.Contains(t, out, "⚠")
	assert.Contains(t, out, "無法取得路線資訊")
	assert.NotContains(t, out, "預計到達")
}

func TestFormatSplitPlan(t *testing.T) {
	p := &route.SplitPlan{
		GroupAPlan: []string{"山手線至澀谷", "Shibuya Sky 看夜景"},
		GroupBPlan: []string{"中央線至中野", "Broadway 挖寶"},
		Meetup: route.MeetupRecommendation{
			LocationName: "中目黑站 正面改札",
			Time:         "17:10",
			Reason:       "兩邊都是東橫線直達",
		},
	}

	out := FormatSplitPlan(p)

	assert.Contains(t, out, "Shibuya Sky 看夜景")
	assert.Contains(t, out, "Broadway 挖寶")
	assert.Contains(t, out, "中目黑站 正面改札")
	assert.Contains(t, out, "17:10")
	assert.Contains(t, out, "兩邊都是東橫線直達")
}
