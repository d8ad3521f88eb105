package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeTerrain cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeProp
)

// Filter categories. A shape may carry several: every live enemy is
// both CategoryEnemy and CategoryAttackable, a breakable prop is
// CategoryProp and CategoryAttackable.
const (
	CategoryTerrain uint = 1 << iota
	CategoryPlayer
	CategoryEnemy
	CategoryProp
	CategoryAttackable
	CategoryCorpse
)

const groundRayLength = 6.0

// Space owns the Chipmunk space, the static terrain, and the contact
// bookkeeping the simulation drains once per tick.
type Space struct {
	space *cp.Space

	playerContacts []*cp.Shape
	bumps          [][2]*cp.Shape
}

// NewSpace creates a space with downward gravity. Gravity is given
// positive; the world is Y-up.
func NewSpace(gravity float64) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})

	s := &Space{space: space}
	s.setupHandlers()
	return s
}

// Step advances the physics simulation. Contact handlers record into
// the drain lists during the step.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil {
		return
	}
	s.space.Step(dt)
}

// SetGravity replaces the downward pull for every body that has not
// overridden its own.
func (s *Space) SetGravity(gravity float64) {
	if s == nil || s.space == nil {
		return
	}
	s.space.SetGravity(cp.Vector{Y: -gravity})
}

// AddTerrainBox adds a static solid box centered at center.
func (s *Space) AddTerrainBox(center cp.Vector, w, h float64) *cp.Shape {
	if s == nil || s.space == nil {
		return nil
	}
	bb := cp.NewBBForExtents(center, w/2, h/2)
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeTerrain)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryTerrain, cp.ALL_CATEGORIES))
	s.space.AddShape(shape)
	return shape
}

// AddPlayer creates the player's dynamic body: box shape, infinite
// moment so it never rotates.
func (s *Space) AddPlayer(pos cp.Vector, w, h float64) (*cp.Body, *cp.Shape) {
	return s.addCharacter(pos, w, h, collisionTypePlayer,
		CategoryPlayer,
		CategoryTerrain|CategoryEnemy|CategoryProp)
}

// AddEnemy creates an enemy body. Flying enemies get gravity disabled
// until something re-enables it.
func (s *Space) AddEnemy(pos cp.Vector, w, h float64, flying bool) (*cp.Body, *cp.Shape) {
	body, shape := s.addCharacter(pos, w, h, collisionTypeEnemy,
		CategoryEnemy|CategoryAttackable,
		CategoryTerrain|CategoryPlayer|CategoryEnemy|CategoryProp)
	if flying {
		s.SetGravityScale(body, 0)
	}
	return body, shape
}

// AddProp creates a static attackable obstacle (e.g. a breakable
// crate).
func (s *Space) AddProp(pos cp.Vector, w, h float64) (*cp.Body, *cp.Shape) {
	if s == nil || s.space == nil {
		return nil, nil
	}
	body := cp.NewStaticBody()
	body.SetPosition(pos)
	s.space.AddBody(body)

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeProp)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP,
		CategoryProp|CategoryAttackable, cp.ALL_CATEGORIES))
	s.space.AddShape(shape)
	return body, shape
}

func (s *Space) addCharacter(pos cp.Vector, w, h float64, ct cp.CollisionType, categories, mask uint) (*cp.Body, *cp.Shape) {
	if s == nil || s.space == nil {
		return nil, nil
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	s.space.AddBody(body)

	// frictionless: controllers own the horizontal velocity outright
	shape := cp.NewBox(body, w, h, 0)
	shape.SetCollisionType(ct)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categories, mask))
	s.space.AddShape(shape)
	return body, shape
}

// Remove takes a body and all of its shapes out of the space.
func (s *Space) Remove(body *cp.Body) {
	if s == nil || s.space == nil || body == nil {
		return
	}
	var shapes []*cp.Shape
	body.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})
	for _, shape := range shapes {
		s.space.RemoveShape(shape)
	}
	if s.space.ContainsBody(body) {
		s.space.RemoveBody(body)
	}
}

// SetGravityScale overrides gravity for one body. 1 restores the
// default integration, 0 disables gravity entirely.
func (s *Space) SetGravityScale(body *cp.Body, scale float64) {
	if body == nil {
		return
	}
	if scale == 1 {
		body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
		return
	}
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(scale), damping, dt)
	})
}

// MakeCorpse reclassifies a dead enemy's shape so the player and
// attacks ignore it; it keeps colliding with terrain only.
func (s *Space) MakeCorpse(shape *cp.Shape) {
	if shape == nil {
		return
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryCorpse, CategoryTerrain))
}

// OverlapBox returns every shape matching mask that intersects the box
// centered at center.
func (s *Space) OverlapBox(center cp.Vector, w, h float64, mask uint) []*cp.Shape {
	if s == nil || s.space == nil {
		return nil
	}
	bb := cp.NewBBForExtents(center, w/2, h/2)
	var hits []*cp.Shape
	s.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		hits = append(hits, shape)
	}, nil)
	return hits
}

// RayHit reports whether a segment from origin along dir (unit-ish)
// of the given length hits any shape matching mask.
func (s *Space) RayHit(origin, dir cp.Vector, length float64, mask uint) bool {
	if s == nil || s.space == nil {
		return false
	}
	end := origin.Add(dir.Mult(length))
	info := s.space.SegmentQueryFirst(origin, end, 0, queryFilter(mask))
	return info.Shape != nil
}

// Grounded reports terrain contact directly under a character box via
// three short downward rays (center and both bottom corners).
func (s *Space) Grounded(body *cp.Body, halfW, halfH float64) bool {
	if s == nil || s.space == nil || body == nil {
		return false
	}
	pos := body.Position()
	bottom := pos.Y - halfH + 1
	down := cp.Vector{X: 0, Y: -1}
	for _, dx := range []float64{0, -halfW + 2, halfW - 2} {
		origin := cp.Vector{X: pos.X + dx, Y: bottom}
		if s.RayHit(origin, down, groundRayLength, CategoryTerrain) {
			return true
		}
	}
	return false
}

// DrainPlayerContacts returns the enemy shapes that touched the player
// during the last Step and resets the list.
func (s *Space) DrainPlayerContacts() []*cp.Shape {
	if s == nil {
		return nil
	}
	contacts := s.playerContacts
	s.playerContacts = nil
	return contacts
}

// DrainBumps returns enemy-enemy contact pairs begun during the last
// Step and resets the list.
func (s *Space) DrainBumps() [][2]*cp.Shape {
	if s == nil {
		return nil
	}
	bumps := s.bumps
	s.bumps = nil
	return bumps
}

func (s *Space) setupHandlers() {
	if s == nil || s.space == nil {
		return
	}

	// Player and enemies pass through each other; the contact is only
	// sensed so the simulation can apply touch damage.
	playerEnemy := s.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	playerEnemy.UserData = s
	playerEnemy.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sp, ok := userData.(*Space)
		if !ok || sp == nil {
			return false
		}
		_, enemyShape := arb.Shapes()
		sp.playerContacts = append(sp.playerContacts, enemyShape)
		return false
	}

	enemyEnemy := s.space.NewCollisionHandler(collisionTypeEnemy, collisionTypeEnemy)
	enemyEnemy.UserData = s
	enemyEnemy.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		sp, ok := userData.(*Space)
		if !ok || sp == nil {
			return true
		}
		a, b := arb.Shapes()
		sp.bumps = append(sp.bumps, [2]*cp.Shape{a, b})
		return true
	}
}

func queryFilter(mask uint) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
}
