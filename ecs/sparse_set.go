package ecs

// componentStore holds one component kind. Values live densely in insertion
// order, except that removal moves the last value into the hole; index maps
// an entity id to its slot, with 0 meaning absent.
type componentStore struct {
	slots []slot
	index []int
}

type slot struct {
	id    entityID
	value any
}

func (s *componentStore) slotOf(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.index) {
		return 0, false
	}
	i := s.index[id-1]
	return i - 1, i > 0
}

func (s *componentStore) has(id entityID) bool {
	_, ok := s.slotOf(id)
	return ok
}

func (s *componentStore) get(id entityID) any {
	i, ok := s.slotOf(id)
	if !ok {
		return nil
	}
	return s.slots[i].value
}

func (s *componentStore) set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	if i, ok := s.slotOf(id); ok {
		s.slots[i].value = v
		return
	}
	for int(id) > len(s.index) {
		s.index = append(s.index, 0)
	}
	s.slots = append(s.slots, slot{id: id, value: v})
	s.index[id-1] = len(s.slots)
}

func (s *componentStore) remove(id entityID) {
	i, ok := s.slotOf(id)
	if !ok {
		return
	}
	last := len(s.slots) - 1
	moved := s.slots[last]
	s.slots[i] = moved
	s.index[moved.id-1] = i + 1
	s.slots[last] = slot{}
	s.slots = s.slots[:last]
	s.index[id-1] = 0
}

// ids snapshots the stored entity ids so callers may mutate the store while
// walking them.
func (s *componentStore) ids() []entityID {
	if s == nil {
		return nil
	}
	out := make([]entityID, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.id
	}
	return out
}

func (s *componentStore) len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}
