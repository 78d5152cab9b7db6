package ecs

// entityStore tracks entity generations and free slot ids.
type entityStore struct {
	nextID entityID
	gen    []generation
	free   []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gen = append(s.gen, 0)
	}
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.id()-1]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.gen[id-1] == e.generation()
}

// at rebuilds the live handle for a slot id, if the slot is allocated.
func (s *entityStore) at(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gen) {
		return 0, false
	}
	for _, f := range s.free {
		if int(f) == id {
			return 0, false
		}
	}
	return makeEntity(entityID(id), s.gen[id-1]), true
}
