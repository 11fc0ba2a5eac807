package object

import (
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Message is flying text such as damage numbers and pickup notices
type Message struct {
	entity.Entity
	Text string

	life float64
}

func NewMessage() *Message {
	return &Message{}
}

// Spawn places text at pos; it rises and expires
func (m *Message) Spawn(pos vmath.Vector, text string) {
	m.Entity.Spawn(pos)
	m.Text = text
	m.Speed = vmath.Vec(0, -parameter.MessageRiseSpeed)
	m.TargetSpeed = m.Speed
	m.CameraCheckArea = vmath.Box(float64(len(text)*4), 8)
	m.life = parameter.MessageLifetime
}

func (m *Message) UpdateEvent(tick float64) {
	m.life -= tick
	if m.life <= 0 {
		m.ForceKill()
	}
}

func (m *Message) Sprite() entity.Sprite {
	return entity.Sprite{Kind: "text"}
}
