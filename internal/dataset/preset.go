// Package dataset holds the built-in default itinerary used whenever
// no usable persisted snapshot exists.
package dataset

import "github.com/vincenthsieh/tokyosync/internal/domain"

// SchemaVersion tags every saved snapshot. A stored snapshot whose
// version differs in any way is stale and replaced by the preset on
// the next load.
const SchemaVersion = "v16"

// Hotel is the trip's fixed home base, the implicit origin of every
// day's first navigation request.
var Hotel = domain.Location{
	ID:              "hotel-1899",
	Name:            "HOTEL 1899 TOKYO",
	Address:         "東京都港区新橋6-4-1",
	JapaneseName:    "ホテル1899東京",
	JapaneseAddress: "東京都港区新橋6-4-1",
}

// Preset returns a fresh copy of the built-in five-day itinerary.
// Callers own the returned slice.
func Preset() []domain.Entry {
	entries := make([]domain.Entry, len(preset))
	copy(entries, preset)
	return entries
}

var preset = []domain.Entry{
	// Day 1: 12/23
	{
		ID: "d1-arrival", Day: 1, Date: "12/23 (週二)", Type: domain.EntryTransit,
		Location: &Hotel,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 100 分",
			LineName: "N'EX / 總武線 → 山手線", Direction: "往 東京 / 新橋",
			Instructions: "【目標 16:30 機場發車】\n1. 14:55 降落 → 預計 16:10 出關\n2. 走到 JR 車站搭 N'EX 或 總武線快速 → 東京站 (約 17:30 抵達)\n3. 轉 JR山手線 (往品川) → 新橋站 (約 17:40 抵達)\n4. 走「烏森口 (Karasumori Exit)」步行 10 分至飯店",
		},
		StartTime: "16:10", EndTime: "17:50",
		Notes: "出關 → 前往飯店",
	},
	{
		ID: "d1-hotel-arrival", Day: 1, Type: domain.EntryVisit,
		StartTime: "17:50", EndTime: "18:20",
		Location:  &Hotel,
		Notes:     "Check-in & 休息整理",
		Details:   "17:50 抵達大廳 Check-in\n18:20 準時出發前往晚餐。",
	},
	{
		ID: "d1-transit-dinner", Day: 1, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 55 分",
			LineName: "銀座線", Direction: "往 淺草",
			Instructions: "1. 18:20 飯店出發 → 走回新橋站 (10分)\n2. 18:35 搭 Metro 銀座線 → 田原町站\n3. 步行 15-20 分至大多福",
		},
		StartTime: "18:20", EndTime: "19:15",
		Notes: "前往淺草晚餐",
	},
	{
		ID: "d1-dinner", Day: 1, Type: domain.EntryVisit,
		StartTime: "19:30", EndTime: "21:30",
		IsReservation: true,
		Location: &domain.Location{
			ID: "otafuku", Name: "淺草おden 大多福",
			Address:      "東京都台東區千束 1-6-2",
			JapaneseName: "浅草おでん 大多福", JapaneseAddress: "東京都台東区千束1-6-2",
		},
		Notes: "★訂位時間 19:30",
	},
	{
		ID: "d1-return", Day: 1, Type: domain.EntryTransit,
		Location: &Hotel,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 35 分",
			LineName: "銀座線", Direction: "往 澀谷", LastTrain: "00:08",
			Instructions: "1. 從田原町站搭銀座線回新橋站\n2. 走「烏森口」步行 10 分鐘回飯店",
		},
		StartTime: "21:30", EndTime: "22:05",
		Notes: "返回飯店",
	},
	{
		ID: "d1-rest", Day: 1, Type: domain.EntryVisit, StartTime: "22:05",
		Location: &Hotel, Notes: "休息 / 結束 Day 1",
	},

	// Day 2: 12/24
	{
		ID: "d2-transit-lunch", Day: 2, Date: "12/24 (週三)", Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 20 分",
			LineName: "JR 山手線", Direction: "往 東京",
			Instructions: "新橋站 → JR山手線 (內回) → 有樂町站 → 步行至 Tokyo Midtown Hibiya",
		},
		StartTime: "10:55", EndTime: "11:15",
		Notes: "移動至早午餐",
	},
	{
		ID: "d2-lunch", Day: 2, Type: domain.EntryVisit,
		StartTime: "11:15", EndTime: "13:00",
		Location: &domain.Location{
			ID: "buvette", Name: "Buvette Tokyo",
			Address:      "東京 Midtown Hibiya 1F",
			JapaneseName: "Buvette Tokyo", JapaneseAddress: "東京都千代田区有楽町1-1-2",
		},
		Notes: "法式鄉村料理",
	},
	{
		ID: "d2-split", Day: 2, Type: domain.EntrySplit,
		StartTime: "13:00", EndTime: "16:50",
		Notes: "分頭行動",
		SplitGroups: []domain.SplitGroup{
			{
				ID: "g-shibuya", Name: "A組：澀谷",
				Itinerary: []domain.Entry{
					{
						ID: "s1", Type: domain.EntryTransit,
						StartTime: "13:00", EndTime: "13:20",
						Transit: &domain.TransitInfo{
							Mode: domain.ModeTrain, Duration: "約20分", LineName: "JR 山手線",
							Instructions: "有樂町站 → 澀谷站 (山手線 12分)",
						},
						Notes: "前往澀谷",
					},
					{
						ID: "s2", Type: domain.EntryVisit,
						StartTime: "13:20", EndTime: "16:30",
						Location: &domain.Location{ID: "shibuya-area", Name: "澀谷 (Shibuya)"},
						Notes:    "Shibuya Sky / Parco / 逛街",
					},
					{
						ID: "s5", Type: domain.EntryTransit,
						StartTime: "16:30", EndTime: "16:45",
						Transit: &domain.TransitInfo{
							Mode: domain.ModeTrain, Duration: "約10分", LineName: "東橫線",
							Instructions: "澀谷 → 中目黑 (東橫線 2站)",
						},
						Notes: "前往中目黑",
					},
				},
			},
			{
				ID: "g-nakano", Name: "B組：中野",
				Itinerary: []domain.Entry{
					{
						ID: "n0", Type: domain.EntryTransit,
						StartTime: "13:00", EndTime: "13:40",
						Transit: &domain.TransitInfo{
							Mode: domain.ModeTrain, Duration: "約40分", LineName: "中央線快速",
							Instructions: "有樂町 → 新宿 (轉中央線) → 中野",
						},
					},
					{
						ID: "n1", Type: domain.EntryVisit,
						StartTime: "13:40", EndTime: "16:20",
						Location: &domain.Location{ID: "broadway", Name: "中野 Broadway"},
						Notes:    "動漫挖寶",
					},
					{
						ID: "n2", Type: domain.EntryTransit,
						StartTime: "16:20", EndTime: "17:00",
						Transit: &domain.TransitInfo{
							Mode: domain.ModeTrain, Duration: "約40分", LineName: "東西線/東橫線",
							Instructions: "中野 → 中目黑",
						},
					},
				},
			},
		},
	},
	{
		ID: "d2-meetup", Day: 2, Type: domain.EntryMeetup,
		StartTime: "17:00", EndTime: "18:30",
		Location: &domain.Location{ID: "nakame", Name: "中目黑站 (正面改札)"},
		Notes:    "會合 & 目黑川散步",
	},
	{
		ID: "d2-transit-dinner", Day: 2, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 15 分", LineName: "東橫線",
			Instructions: "中目黑 → 祐天寺 (1站) → 步行 10 分",
		},
		StartTime: "19:00", EndTime: "19:20",
		Notes: "前往燒肉晚餐",
	},
	{
		ID: "d2-dinner", Day: 2, Type: domain.EntryVisit,
		StartTime: "19:30", EndTime: "21:30", IsReservation: true,
		Location: &domain.Location{
			ID: "serita", Name: "Serita (せりた) 燒肉",
			Address: "東京都目黑區中町 1-35-9",
		},
		Notes: "★訂位時間 19:30",
	},
	{
		ID: "d2-return", Day: 2, Type: domain.EntryTransit,
		Location: &Hotel,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 45 分",
			LineName: "東橫線 → 山手線", LastTrain: "00:27",
			Instructions: "1. 步行回祐天寺站搭東橫線至澀谷\n2. 澀谷轉 JR 山手線至新橋站\n3. 步行回飯店",
		},
		StartTime: "21:30", EndTime: "22:15",
		Notes: "返回飯店",
	},
	{
		ID: "d2-rest", Day: 2, Type: domain.EntryVisit, StartTime: "22:15",
		Location: &Hotel, Notes: "休息 / 結束 Day 2",
	},

	// Day 3: 12/25
	{
		ID: "d3-transit-shinjuku", Day: 3, Date: "12/25 (週四)", Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 30 分", LineName: "JR 山手線",
			Instructions: "新橋站 → 新宿站",
		},
		StartTime: "10:40", EndTime: "11:10",
		Notes: "前往新宿",
	},
	{
		ID: "d3-shinjuku", Day: 3, Type: domain.EntryVisit,
		StartTime: "11:10", EndTime: "14:00",
		Location: &domain.Location{
			ID: "shinjuku-shopping", Name: "新宿逛街", Address: "新宿東口 / Lumine",
		},
		Notes: "Lumine / 伊勢丹 / 紐約早餐女王",
	},
	{
		ID: "d3-transit-ginza", Day: 3, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 30 分", LineName: "JR 山手線",
			Instructions: "新宿 → 有樂町 → 步行至銀座",
		},
		StartTime: "14:00", EndTime: "14:30",
		Notes: "移動至銀座",
	},
	{
		ID: "d3-ginza", Day: 3, Type: domain.EntryVisit,
		StartTime: "14:30", EndTime: "18:00",
		Location: &domain.Location{
			ID: "ginza-shopping", Name: "銀座百貨巡禮", Address: "銀座中央通",
		},
		Notes: "Ginza Six / 三越 / Uniqlo旗艦店",
	},
	{
		ID: "d3-transit-dinner", Day: 3, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 20 分", LineName: "日比谷線",
			Instructions: "銀座站 → 神谷町站 (Exit 5) → Janu Tokyo",
		},
		StartTime: "18:00", EndTime: "18:25",
		Notes: "前往麻布台 Hills",
	},
	{
		ID: "d3-dinner", Day: 3, Type: domain.EntryVisit,
		StartTime: "18:30", EndTime: "20:30", IsReservation: true,
		Location: &domain.Location{
			ID: "sumi", Name: "SUMI (Janu Tokyo)", Address: "東京都港區麻布台 1-2-2",
		},
		Notes: "★訂位時間 18:30",
	},
	{
		ID: "d3-transit-bar", Day: 3, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 20 分", LineName: "日比谷線",
			Instructions: "神谷町 → 銀座站 (C2 出口)",
		},
		StartTime: "20:30", EndTime: "20:50",
		Notes: "前往銀座酒吧",
	},
	{
		ID: "d3-bar", Day: 3, Type: domain.EntryVisit,
		StartTime: "21:00", EndTime: "23:00",
		Location: &domain.Location{ID: "tender-bar", Name: "Ginza Tender Bar"},
		Notes:    "上田和男 硬搖盪",
	},
	{
		ID: "d3-return", Day: 3, Type: domain.EntryTransit,
		Location: &Hotel,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeWalk, Duration: "約 15 分", LastTrain: "00:12",
			Instructions: "從銀座 6 丁目步行回新橋飯店，或搭一站銀座線。",
		},
		StartTime: "23:00", EndTime: "23:15",
		Notes: "返回飯店",
	},
	{
		ID: "d3-rest", Day: 3, Type: domain.EntryVisit, StartTime: "23:15",
		Location: &Hotel, Notes: "休息 / 結束 Day 3",
	},

	// Day 4: 12/26
	{
		ID: "d4-transit-lunch", Day: 4, Date: "12/26 (週五)", Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 35 分", LineName: "三田線 → 大江戶線",
			Instructions: "御成門站 → 三田 (轉) → 六本木",
		},
		StartTime: "10:50", EndTime: "11:25",
		Notes: "前往六本木",
	},
	{
		ID: "d4-lunch", Day: 4, Type: domain.EntryVisit,
		StartTime: "11:30", EndTime: "13:30", IsReservation: true,
		Location: &domain.Location{
			ID: "jiro", Name: "すきやばし次郎 六本木",
			Address: "六本木 6-12-2 Residence B棟 3F",
		},
		Notes: "★訂位時間 11:30",
	},
	{
		ID: "d4-transit-takanawa", Day: 4, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 20 分", LineName: "大江戶線/山手線",
			Instructions: "六本木 → 大門/濱松町 → 高輪Gateway",
		},
		StartTime: "13:50", EndTime: "14:15",
		Notes: "前往高輪",
	},
	{
		ID: "d4-takanawa", Day: 4, Type: domain.EntryVisit,
		StartTime: "14:30", EndTime: "17:00",
		Location: &domain.Location{
			ID: "takanawa-gateway", Name: "高輪 Gateway City",
			Address:      "東京都港区港南2",
			JapaneseName: "高輪ゲートウェイシティ", JapaneseAddress: "東京都港区港南2",
		},
		Notes: "隈研吾設計新站體 / 參觀周邊開發區",
	},
	{
		ID: "d4-transit-yokohama", Day: 4, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 45 分", LineName: "JR京濱東北線",
			Instructions: "高輪Gateway → 橫濱 (轉港未來線) → 馬車道",
		},
		StartTime: "17:00", EndTime: "17:50",
		Notes: "前往橫濱",
	},
	{
		ID: "d4-yokohama", Day: 4, Type: domain.EntryVisit,
		StartTime: "18:00", EndTime: "20:15",
		Location: &domain.Location{
			ID: "yokohama-red-brick", Name: "橫濱紅磚倉庫 & chano-ma",
			Address:      "神奈川県横浜市中区新港1-1 (2號館 3F)",
			JapaneseName: "横浜赤レンガ倉庫 / chano-ma",
			JapaneseAddress: "神奈川県横浜市中区新港1-1 横浜赤レンガ倉庫2号館 3F",
		},
		Notes:   "紅磚倉庫夜景 / 躺著喝茶喝酒 (chano-ma)",
		Details: "位於紅磚倉庫 2 號館 3F 的 chano-ma，特色是有像床一樣的白色臥榻座位，可以舒適地躺著享受音樂與餐飲。",
	},
	{
		ID: "d4-transit-bar", Day: 4, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 40 分", LineName: "JR京濱東北線",
			Instructions: "馬車道 → 橫濱 → 大森",
		},
		StartTime: "20:15", EndTime: "20:55",
		Notes: "移動至大森",
	},
	{
		ID: "d4-bar", Day: 4, Type: domain.EntryVisit,
		StartTime: "21:00", EndTime: "23:00",
		Location: &domain.Location{ID: "tenderly", Name: "Tenderly Bar (大森)"},
		Notes:    "大森經典酒吧",
	},
	{
		ID: "d4-return", Day: 4, Type: domain.EntryTransit,
		Location: &Hotel,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 25 分",
			LineName: "JR 京濱東北線", LastTrain: "00:15",
			Instructions: "1. 大森站搭 JR 京濱東北線直達新橋站\n2. 步行回飯店",
		},
		StartTime: "23:00", EndTime: "23:30",
		Notes: "返回飯店",
	},
	{
		ID: "d4-rest", Day: 4, Type: domain.EntryVisit, StartTime: "23:30",
		Location: &Hotel, Notes: "休息 / 結束 Day 4",
	},

	// Day 5: 12/27
	{
		ID: "d5-checkout", Day: 5, Date: "12/27 (週六)", Type: domain.EntryVisit,
		StartTime: "07:30", EndTime: "09:00",
		Location: &domain.Location{
			ID: "hotel-checkout", Name: "飯店退房準備", Address: "HOTEL 1899",
		},
		Notes: "起床 / 打包 / 退房",
	},
	{
		ID: "d5-transit-narita", Day: 5, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 100 分", LineName: "山手線 → 總武線快速",
			Instructions: "新橋 → 東京 → JR 成田站",
		},
		StartTime: "09:00", EndTime: "10:40",
		Notes: "前往成田市區",
	},
	{
		ID: "d5-narita-city", Day: 5, Type: domain.EntryVisit,
		StartTime: "10:50", EndTime: "13:00",
		Location: &domain.Location{
			ID: "chomeisen", Name: "長命泉 (Sake store CYOUMEISEN)",
			Address:      "千葉県成田市上町540",
			JapaneseName: "長命泉 (蔵元直営店)", JapaneseAddress: "千葉県成田市上町540",
		},
		Notes:   "清酒試飲 & 鰻魚飯午餐",
		Details: "成田山表參道上的知名酒造，提供清酒試飲與鰻魚飯。",
	},
	{
		ID: "d5-transit-airport", Day: 5, Type: domain.EntryTransit,
		Transit: &domain.TransitInfo{
			Mode: domain.ModeTrain, Duration: "約 30 分", LineName: "JR/京成",
			Instructions: "成田站 → 成田機場",
		},
		StartTime: "13:00", EndTime: "13:30",
	},
	{
		ID: "d5-airport", Day: 5, Type: domain.EntryVisit, StartTime: "13:30",
		Location: &domain.Location{
			ID: "nrt-airport", Name: "成田國際機場 (NRT)",
			Address:      "Narita International Airport",
			JapaneseName: "成田国際空港",
		},
		Notes:          "辦理登機 (16:30 起飛)",
		Details:        "建議於起飛前 3 小時抵達機場。逛免稅店、最後採買。",
		StrictDeadline: "登機報到截止",
		EndTime:        "15:30",
		WarningLevel:   domain.WarningCaution,
	},
}
