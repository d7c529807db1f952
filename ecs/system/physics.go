package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/charmotion/common"
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeExplodable
)

// groundGraceFrames keeps a body grounded for a few steps after its sensor
// loses contact.
const groundGraceFrames = 3

// PhysicsSystem owns the Chipmunk2D space. Each step it applies controller
// drive forces, advances the space, writes body positions back to
// transforms and queues contact events for the contact system.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	dt            float64

	entities        map[ecs.Entity]*bodyInfo
	playerShapes    map[*cp.Shape]ecs.Entity
	groundShapes    map[*cp.Shape]ecs.Entity
	explodeShapes   map[*cp.Shape]ecs.Entity
	groundHits      map[ecs.Entity]bool
	pendingContacts []ecs.ContactEvent
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:         newSpace(),
		dt:            common.FrameDelta,
		entities:      make(map[ecs.Entity]*bodyInfo),
		playerShapes:  make(map[*cp.Shape]ecs.Entity),
		groundShapes:  make(map[*cp.Shape]ecs.Entity),
		explodeShapes: make(map[*cp.Shape]ecs.Entity),
		groundHits:    make(map[ecs.Entity]bool),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetStep overrides the fixed step length in seconds.
func (ps *PhysicsSystem) SetStep(dt float64) {
	if ps == nil || dt <= 0 {
		return
	}
	ps.dt = dt
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.applyMotion(w)

	clear(ps.groundHits)
	ps.pendingContacts = ps.pendingContacts[:0]

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushGroundContacts(w)
	for _, ev := range ps.pendingContacts {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: ev})
	}
}

// applyMotion runs each controller's fixed step so drive and fall forces
// land in this space step.
func (ps *PhysicsSystem) applyMotion(w *ecs.World) {
	ecs.ForEach(w, component.MotionComponent.Kind(), func(_ ecs.Entity, m *component.Motion) {
		if m.Controller != nil {
			m.Controller.FixedUpdate()
		}
	})
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		owner, ok := sys.groundShapes[shapeA]
		if !ok {
			owner, ok = sys.groundShapes[shapeB]
			if !ok {
				return true
			}
		}
		sys.groundHits[owner] = true
		return true
	}

	// Explodables resting on platforms also count as ground.
	crateGround := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeExplodable)
	crateGround.UserData = ps
	crateGround.PreSolveFunc = groundHandler.PreSolveFunc

	explodeHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeExplodable)
	explodeHandler.UserData = ps
	explodeHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		player, okA := sys.playerShapes[shapeA]
		if !okA {
			var okB bool
			player, okB = sys.playerShapes[shapeB]
			if !okB {
				return true
			}
		}
		otherShape := shapeB
		if !okA {
			otherShape = shapeA
		}
		other, ok := sys.explodeShapes[otherShape]
		if !ok {
			return true
		}

		set := arb.ContactPointSet()
		points := make([]cp.Vector, 0, set.Count)
		for i := 0; i < set.Count; i++ {
			points = append(points, set.Points[i].PointA)
		}
		sys.pendingContacts = append(sys.pendingContacts, ecs.ContactEvent{
			Entity: player,
			Kind:   ecs.ContactBegin,
			Other:  other,
			Points: points,
		})
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		isExplodable := ecs.Has(w, e, component.ExplodableComponent.Kind())

		info := ps.createBodyInfo(transform, bodyComp, isPlayer, isExplodable)
		if info == nil || info.mainShape == nil {
			continue
		}

		ps.entities[e] = info
		if isPlayer {
			ps.playerShapes[info.mainShape] = e
			if info.groundShape != nil {
				ps.groundShapes[info.groundShape] = e
			}
		}
		if isExplodable {
			ps.explodeShapes[info.mainShape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
		bodyComp.GroundShape = info.groundShape
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, isPlayer, isExplodable bool) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}

	collisionType := collisionTypeSolid
	switch {
	case isPlayer:
		collisionType = collisionTypePlayer
	case isExplodable:
		collisionType = collisionTypeExplodable
	}

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionType)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.FixedRotation {
		moment = cp.INFINITY
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetVelocityVector(cp.Vector{X: bodyComp.VX, Y: bodyComp.VY})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionType)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.mainShape = shape
	info.shapes = []*cp.Shape{shape}

	if isPlayer {
		groundShape := createGroundSensor(width, height, body)
		ps.space.AddShape(groundShape)
		info.groundShape = groundShape
		info.shapes = append(info.shapes, groundShape)
	}

	return info
}

// createGroundSensor adds a thin sensor strip under the body's feet.
func createGroundSensor(width, height float64, body *cp.Body) *cp.Shape {
	groundBB := cp.BB{
		L: -width * 0.45,
		B: -height/2.0 - 0.1,
		R: width * 0.45,
		T: -height / 2.0,
	}

	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)
	return groundShape
}

// flushGroundContacts turns sensor hits into landed and left-ground
// transitions. Leaving the ground waits out the grace window.
func (ps *PhysicsSystem) flushGroundContacts(w *ecs.World) {
	ecs.ForEach(w, component.GroundContactComponent.Kind(), func(e ecs.Entity, gc *component.GroundContact) {
		if ps.groundHits[e] {
			gc.Grace = groundGraceFrames
			if !gc.Grounded {
				gc.Grounded = true
				ps.pendingContacts = append(ps.pendingContacts, ecs.ContactEvent{Entity: e, Kind: ecs.ContactLanded})
			}
			return
		}
		if gc.Grace > 0 {
			gc.Grace--
			return
		}
		if gc.Grounded {
			gc.Grounded = false
			ps.pendingContacts = append(ps.pendingContacts, ecs.ContactEvent{Entity: e, Kind: ecs.ContactLeftGround})
		}
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.playerShapes, shape)
			delete(ps.groundShapes, shape)
			delete(ps.explodeShapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
	}
}
