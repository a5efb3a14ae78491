package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/config"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Timeline.ColumnWidth = 28
	cfg.Timeline.Gutter = 4
	cfg.Timeline.BaseWindowWeeks = 8
	cfg.Timeline.PaddingDays = 5

	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	h.RegisterRoutes()
	return h
}

func postJSON(t *testing.T, h *Handler, path string, body string) *Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("%s 返回状态码 %d", path, rec.Code)
	}

	resp := &Response{}
	if err := json.NewDecoder(rec.Body).Decode(resp); err != nil {
		t.Fatalf("无法解析响应: %v", err)
	}
	return resp
}

func TestComputePositions(t *testing.T) {
	h := newTestHandler(t)

	resp := postJSON(t, h, "/timeline/positions", `{
		"originDate": "2025-03-03T00:00:00Z",
		"blocks": [
			{"id": 1, "projectID": 1, "startDate": "2025-03-10T00:00:00Z", "endDate": "2025-03-14T00:00:00Z"}
		]
	}`)

	if !resp.Success {
		t.Fatalf("期望成功，got %q", resp.Message)
	}

	items := resp.Data.([]any)
	if len(items) != 1 {
		t.Fatalf("期望 1 个位置，got %d", len(items))
	}
	item := items[0].(map[string]any)
	if item["left"].(float64) != 5*28 {
		t.Fatalf("left = %v，期望 140", item["left"])
	}
	if item["width"].(float64) != 5*28-4 {
		t.Fatalf("width = %v，期望 136", item["width"])
	}
}

func TestComputePositionsRejectsReversedDates(t *testing.T) {
	h := newTestHandler(t)

	resp := postJSON(t, h, "/timeline/positions", `{
		"originDate": "2025-03-03T00:00:00Z",
		"blocks": [
			{"id": 1, "projectID": 1, "startDate": "2025-03-14T00:00:00Z", "endDate": "2025-03-10T00:00:00Z"}
		]
	}`)

	if resp.Success {
		t.Fatal("结束日期早于开始日期的块应该被拒绝")
	}
}

func TestResolveDrag(t *testing.T) {
	h := newTestHandler(t)

	resp := postJSON(t, h, "/timeline/drag/resolve", `{
		"blocks": [
			{"id": 1, "projectID": 1, "startDate": "2025-03-03T00:00:00Z", "endDate": "2025-03-07T00:00:00Z"},
			{"id": 2, "projectID": 1, "startDate": "2025-03-10T00:00:00Z", "endDate": "2025-03-14T00:00:00Z"}
		],
		"draggedBlockIDs": [1],
		"weeksDelta": 1
	}`)

	if !resp.Success {
		t.Fatalf("期望成功，got %q", resp.Message)
	}

	data := resp.Data.(map[string]any)
	moves := data["blockMoves"].([]any)
	if len(moves) != 2 {
		t.Fatalf("期望 2 个移动，got %d", len(moves))
	}
}

func TestResolveDragUnknownBlock(t *testing.T) {
	h := newTestHandler(t)

	resp := postJSON(t, h, "/timeline/drag/resolve", `{
		"blocks": [
			{"id": 1, "projectID": 1, "startDate": "2025-03-03T00:00:00Z", "endDate": "2025-03-07T00:00:00Z"}
		],
		"draggedBlockIDs": [42],
		"weeksDelta": 1
	}`)

	if resp.Success {
		t.Fatal("未知的拖拽块 ID 应该被拒绝")
	}
}

func TestComputeViewport(t *testing.T) {
	h := newTestHandler(t)

	resp := postJSON(t, h, "/timeline/viewport", `{
		"pivotDate": "2025-03-05T00:00:00Z",
		"previous": {"displayStartOffset": 0, "scrollLeft": 300},
		"blocks": [
			{"id": 1, "projectID": 1, "startDate": "2025-02-17T00:00:00Z", "endDate": "2025-02-21T00:00:00Z"}
		]
	}`)

	if !resp.Success {
		t.Fatalf("期望成功，got %q", resp.Message)
	}

	data := resp.Data.(map[string]any)
	// 块在 pivot 之前两周：起点 = -10 - 5 天留白
	if got := data["displayStartOffset"].(float64); got != -15 {
		t.Fatalf("displayStartOffset = %v，期望 -15", got)
	}
	// 起点左移 15 列，滚动位置要补偿 15 * 28
	if got := data["scrollLeft"].(float64); got != 300+15*28 {
		t.Fatalf("scrollLeft = %v，期望 %d", got, 300+15*28)
	}
}
