package domain

import "time"

// TimelineWindow 是派生数据，不会被持久化：
// 偏移量的单位是工作日，以基准日期所在周的周一为原点。
type TimelineWindow struct {
	OriginDate         time.Time `json:"originDate"`
	DisplayStartOffset int32     `json:"displayStartOffset"`
	DisplayEndOffset   int32     `json:"displayEndOffset"`
}
