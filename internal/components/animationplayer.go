package components

import (
	"diorama/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ClipFrameRate is the rate raylib samples glTF animation clips at.
const ClipFrameRate = 60

// AnimationPlayer plays one clip of a model. It is advanced explicitly with
// Advance rather than from Update, so the caller decides the time step.
type AnimationPlayer struct {
	engine.BaseComponent
	Loop    bool
	frames  int32
	time    float32
	frame   int32
	playing bool
	apply   func(frame int32)
}

func NewAnimationPlayer(model rl.Model, clip rl.ModelAnimation) *AnimationPlayer {
	return newClipPlayer(clip.FrameCount, func(frame int32) {
		rl.UpdateModelAnimation(model, clip, frame)
	})
}

func newClipPlayer(frames int32, apply func(frame int32)) *AnimationPlayer {
	return &AnimationPlayer{
		Loop:   true,
		frames: frames,
		apply:  apply,
	}
}

func (p *AnimationPlayer) Play() {
	p.playing = true
	p.apply(p.frame)
}

func (p *AnimationPlayer) Playing() bool {
	return p.playing
}

// Frame returns the clip frame currently applied to the model.
func (p *AnimationPlayer) Frame() int32 {
	return p.frame
}

// Advance moves the clip forward by dt seconds of clip time.
func (p *AnimationPlayer) Advance(dt float32) {
	if !p.playing || p.frames <= 0 {
		return
	}
	p.time += dt
	duration := float32(p.frames) / ClipFrameRate
	if p.time >= duration {
		if !p.Loop {
			p.time = duration
			p.playing = false
		} else {
			p.time = math32.Mod(p.time, duration)
		}
	}
	frame := int32(p.time * ClipFrameRate)
	if frame >= p.frames {
		frame = p.frames - 1
	}
	p.frame = frame
	p.apply(frame)
}
