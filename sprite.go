package aspen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteContent is a Content provider backed by one or more ebiten
// images of identical size, of which one frame is shown at a time. It
// reports the frame size in asset pixels; the owning node's transform
// decides where and how large it appears on screen.
type SpriteContent struct {
	frames []*ebiten.Image
	index  int
}

// NewSpriteContent creates a sprite content provider from the given
// frames. All frames must share the same dimensions.
func NewSpriteContent(frames ...*ebiten.Image) (*SpriteContent, error) {
	s := &SpriteContent{index: -1}
	for _, f := range frames {
		if err := s.AddFrame(f); err != nil {
			return nil, err
		}
	}
	if len(s.frames) > 0 {
		s.index = 0
	}
	return s, nil
}

// AddFrame appends a frame. Frames of a different size than the
// existing ones return ErrInvalidArgument.
func (s *SpriteContent) AddFrame(img *ebiten.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidArgument)
	}
	if len(s.frames) > 0 {
		want := s.frames[0].Bounds().Size()
		if img.Bounds().Size() != want {
			return fmt.Errorf("%w: frame size %v, want %v",
				ErrInvalidArgument, img.Bounds().Size(), want)
		}
	}
	s.frames = append(s.frames, img)
	if s.index < 0 {
		s.index = 0
	}
	return nil
}

// Show selects the frame at index i.
func (s *SpriteContent) Show(i int) error {
	if i < 0 || i >= len(s.frames) {
		return fmt.Errorf("%w: frame index %d out of range",
			ErrInvalidArgument, i)
	}
	s.index = i
	return nil
}

// Frame returns the currently shown frame, or nil when the content is
// empty.
func (s *SpriteContent) Frame() *ebiten.Image {
	if s.index < 0 {
		return nil
	}
	return s.frames[s.index]
}

// Size reports the frame size in asset pixels. It returns false when no
// frame has been added, letting the node fall back to its dummy size.
func (s *SpriteContent) Size() (Vec2, bool) {
	if s.index < 0 {
		return Vec2{}, false
	}
	b := s.frames[s.index].Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}, true
}
