package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// Suggestion is a transit route proposal between two named places.
type Suggestion struct {
	Transit          domain.TransitInfo `json:"transitInfo"`
	EstimatedArrival string             `json:"estimatedArrivalTime,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Fallback         bool               `json:"-"`
}

// MeetupRecommendation is where and when split groups should rejoin.
type MeetupRecommendation struct {
	LocationName string `json:"locationName"`
	Reason       string `json:"reason"`
	Time         string `json:"time"`
}

// SplitPlan is a suggested pair of parallel sub-itineraries with a
// recommended meetup.
type SplitPlan struct {
	GroupAPlan []string             `json:"groupA_Plan"`
	GroupBPlan []string             `json:"groupB_Plan"`
	Meetup     MeetupRecommendation `json:"meetupRecommendation"`
}

// Planner proposes routes and split plans via an external model. The
// itinerary engine never blocks on it; callers swallow failures at
// the boundary and show a static fallback instead.
type Planner interface {
	// SuggestRoute plans transit from origin to destination assuming
	// the given current time.
	SuggestRoute(ctx context.Context, origin, destination, timeStr string) (*Suggestion, error)

	// SuggestSplitPlan proposes parallel plans for two groups plus a
	// meetup recommendation.
	SuggestSplitPlan(ctx context.Context, origin, interestA, interestB, availableTime string) (*SplitPlan, error)

	// Available checks whether the backend is reachable.
	Available(ctx context.Context) bool
}

// ollamaPlanner implements Planner against the Ollama HTTP API.
type ollamaPlanner struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaPlanner creates a Planner that talks to a local Ollama
// instance.
func NewOllamaPlanner(cfg Config, observer Observer) Planner {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaPlanner{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate
// (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

const systemPrompt = "你是專業的東京導遊。務必回傳純 JSON 格式，不要包含其他文字。請以繁體中文 (Traditional Chinese) 回答。"

func (p *ollamaPlanner) SuggestRoute(ctx context.Context, origin, destination, timeStr string) (*Suggestion, error) {
	prompt := fmt.Sprintf(`請規劃從東京的 "%s" 到 "%s" 的最佳交通路線。
假設當前時間：%s。
優先考慮效率高的電車（JR, Metro）。

JSON 格式結構如下：
{
  "transitInfo": {
    "mode": "TRAIN" | "WALK" | "TAXI" | "BUS",
    "duration": "例如：15分鐘",
    "lineName": "例如：JR山手線",
    "cost": "例如：¥200",
    "instructions": "簡短的轉乘或步行指示"
  },
  "estimatedArrivalTime": "預計到達時間",
  "notes": "關於此路線的簡短備註（例如：最快路線、換乘較少）"
}`, origin, destination, timeStr)

	raw, err := p.generate(ctx, "route", prompt)
	if err != nil {
		return nil, err
	}

	sug, err := ExtractJSON[Suggestion](raw, func(s Suggestion) error {
		if s.Transit.Duration == "" && s.Transit.Instructions == "" {
			return errors.New("empty transit payload")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sug, nil
}

func (p *ollamaPlanner) SuggestSplitPlan(ctx context.Context, origin, interestA, interestB, availableTime string) (*SplitPlan, error) {
	prompt := fmt.Sprintf(`我們現在在東京的 "%s"。我們有 %s 小時的時間。
請規劃分頭行動的行程：
- A組興趣：%s
- B組興趣：%s

請建議雙方分頭行動的簡短行程，並建議一個對雙方都方便的會合地點和時間。

JSON 格式結構如下：
{
  "groupA_Plan": ["A組活動1", "A組活動2"],
  "groupB_Plan": ["B組活動1", "B組活動2"],
  "meetupRecommendation": {
    "locationName": "會合地點名稱",
    "reason": "選擇此地點的原因",
    "time": "建議會合時間"
  }
}`, origin, availableTime, interestA, interestB)

	raw, err := p.generate(ctx, "split_plan", prompt)
	if err != nil {
		return nil, err
	}

	plan, err := ExtractJSON[SplitPlan](raw, func(sp SplitPlan) error {
		if len(sp.GroupAPlan) == 0 || len(sp.GroupBPlan) == 0 {
			return errors.New("missing group plans")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// generate performs the request/retry loop and reports one observer
// event per logical call.
func (p *ollamaPlanner) generate(ctx context.Context, op, prompt string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := ollamaRequest{
		Model:  p.cfg.Model,
		System: systemPrompt,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: p.cfg.Temperature,
			NumPredict:  p.cfg.MaxTokens,
		},
	}

	var lastErr error
	attempts := 1 + p.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		resp, err := p.doRequest(ctx, body)
		if err == nil {
			p.observer.OnCallComplete(CallEvent{
				Op:        op,
				Model:     p.cfg.Model,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return resp.Response, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	p.observer.OnCallComplete(CallEvent{
		Op:        op,
		Model:     p.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return "", ErrTimeout
	}
	if isConnectionError(lastErr) {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (p *ollamaPlanner) doRequest(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := p.cfg.Endpoint + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("route backend returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (p *ollamaPlanner) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := p.cfg.Endpoint + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(err.Error(), "connection refused")
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrInvalidOutput):
		return "invalid_output"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "error"
	}
}
