package engine

import (
	"github.com/lixenwraith/tilerunner/enemy"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/sirupsen/logrus"
)

// SpawnPoint brings one enemy to life when it scrolls into view
// It never has more than one live instance; a killed instance keeps the point
// cleared until the point leaves the view and comes back
type SpawnPoint struct {
	Species enemy.SpeciesID
	Pos     vmath.Vector

	area    vmath.Rect
	visible bool
	cleared bool
	live    *enemy.Enemy
	gen     int
}

// AddSpawnPoint registers a spawn point; returns nil for an unknown species
func (l *Level) AddSpawnPoint(id enemy.SpeciesID, pos vmath.Vector) *SpawnPoint {
	if _, ok := enemy.NewSpecies(id); !ok {
		l.log.WithField("species", int(id)).Warn("unknown species, spawn point skipped")
		return nil
	}
	sp := &SpawnPoint{Species: id, Pos: pos, area: vmath.Box(16, 16)}
	l.spawns = append(l.spawns, sp)
	return sp
}

// Instance returns the live enemy of this point, if any
func (sp *SpawnPoint) Instance() *enemy.Enemy {
	if sp.live == nil || !sp.live.IsActive() || sp.live.Generation() != sp.gen {
		return nil
	}
	return sp.live
}

// Cleared reports that the last instance was killed while in view
func (sp *SpawnPoint) Cleared() bool {
	return sp.cleared
}

func (l *Level) updateSpawns(view vmath.Rect) {
	for _, sp := range l.spawns {
		if e := sp.Instance(); e != nil && e.Health <= 0 {
			sp.cleared = true
		}

		in := sp.area.Overlap(sp.Pos, view, vmath.Vector{})
		switch {
		case in && !sp.visible:
			if !sp.cleared && sp.Instance() == nil {
				l.spawn(sp)
			}
		case !in && sp.visible:
			if e := sp.Instance(); e != nil {
				e.ForceKill()
			}
			sp.cleared = false
		}
		sp.visible = in
	}
}

func (l *Level) spawn(sp *SpawnPoint) {
	e := l.SpawnEnemy(sp.Species, sp.Pos)
	if e == nil {
		return
	}
	sp.live = e
	sp.gen = e.Generation()
	l.log.WithFields(logrus.Fields{
		"species": sp.Species.String(),
		"x":       sp.Pos.X,
		"y":       sp.Pos.Y,
		"slots":   l.enemies.Len(),
	}).Debug("enemy spawned")
}

// SpawnPoints returns the registered spawn points
func (l *Level) SpawnPoints() []*SpawnPoint {
	return l.spawns
}
