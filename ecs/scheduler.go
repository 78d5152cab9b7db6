package ecs

// System updates a world once per simulation tick.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in the order they were added. Ordering dependencies
// between locomotion stages are enforced by list position, not inferred.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	out := make([]System, 0, len(s.systems))
	return append(out, s.systems...)
}
