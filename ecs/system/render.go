package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/charmotion/common"
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/motion"
)

var (
	dashTint   = color.RGBA{R: 0xff, G: 0xf0, B: 0x80, A: 0xff}
	facingTint = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// view maps y-up world units to screen pixels around the camera.
type view struct {
	camX, camY     float64
	shakeX, shakeY float64
	scale          float64
	halfW, halfH   float64
}

func (v view) toScreen(x, y float64) (float64, float64) {
	sx := (x-v.camX)*v.scale + v.halfW + v.shakeX
	sy := -(y-v.camY)*v.scale + v.halfH + v.shakeY
	return sx, sy
}

func (v view) rect(screen *ebiten.Image, cx, cy, width, height float64, clr color.Color) {
	x, y := v.toScreen(cx-width/2, cy+height/2)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*v.scale), float32(height*v.scale), clr, false)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	bounds := screen.Bounds()
	v := view{
		scale: common.PixelsPerUnit,
		halfW: float64(bounds.Dx()) / 2,
		halfH: float64(bounds.Dy()) / 2,
	}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		v.camX = camTransform.X
		v.camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			v.scale *= camComp.Zoom
		}
		v.shakeX = camComp.ShakeX
		v.shakeY = camComp.ShakeY
	}

	entities := w.Query(component.TransformComponent.Kind(), component.RenderRectComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ri, _ := ecs.Get(w, entities[i], component.RenderRectComponent.Kind())
		rj, _ := ecs.Get(w, entities[j], component.RenderRectComponent.Kind())
		if ri.Layer != rj.Layer {
			return ri.Layer < rj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		rect, _ := ecs.Get(w, e, component.RenderRectComponent.Kind())

		clr := rect.Color
		m, hasMotion := ecs.Get(w, e, component.MotionComponent.Kind())
		if hasMotion && m.Controller.Dashing() {
			clr = dashTint
		}
		v.rect(screen, t.X, t.Y, rect.Width, rect.Height, clr)

		if hasMotion && m.Controller != nil {
			r.drawFacing(screen, v, t, rect, m.Controller.State().Facing)
		}
	}
}

// drawFacing marks the side the character is facing.
func (r *RenderSystem) drawFacing(screen *ebiten.Image, v view, t *component.Transform, rect *component.RenderRect, facing motion.Facing) {
	const marker = 0.2
	x := t.X + rect.Width/2 - marker/2
	if facing == motion.FacingLeft {
		x = t.X - rect.Width/2 + marker/2
	}
	v.rect(screen, x, t.Y+rect.Height/4, marker, marker, facingTint)
}
