package drag

// CollapseSet 记录哪些泳道被折叠。
// 原来这份状态散落在浏览器的 session storage 里，
// 这里收敛成一个有显式读写方法的结构
type CollapseSet struct {
	collapsed map[int64]bool
}

func NewCollapseSet() *CollapseSet {
	return &CollapseSet{
		collapsed: make(map[int64]bool),
	}
}

func (s *CollapseSet) IsCollapsed(projectID int64) bool {
	return s.collapsed[projectID]
}

func (s *CollapseSet) Toggle(projectID int64) {
	if s.collapsed[projectID] {
		delete(s.collapsed, projectID)
		return
	}
	s.collapsed[projectID] = true
}

func (s *CollapseSet) CollapsedIDs() []int64 {
	ids := make([]int64, 0, len(s.collapsed))
	for id := range s.collapsed {
		ids = append(ids, id)
	}
	return ids
}
