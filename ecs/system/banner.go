package system

import (
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// ShowBanner replaces the HUD banner.
func ShowBanner(w *ecs.World, text string, seconds float64) {
	if w == nil {
		return
	}
	if _, b, ok := ecs.First(w, component.BannerComponent.Kind()); ok {
		b.Text = text
		b.Remaining = seconds
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.HUDTagComponent.Kind(), &component.HUDTag{})
	_ = ecs.Add(w, e, component.BannerComponent.Kind(), &component.Banner{Text: text, Remaining: seconds})
}

// CurrentBanner returns the banner text, if one is showing.
func CurrentBanner(w *ecs.World) (string, bool) {
	_, b, ok := ecs.First(w, component.BannerComponent.Kind())
	if !ok || b.Remaining <= 0 {
		return "", false
	}
	return b.Text, true
}

// BannerSystem counts the HUD banner down.
type BannerSystem struct {
	dt float64
}

func NewBannerSystem(dt float64) *BannerSystem { return &BannerSystem{dt: dt} }

func (s *BannerSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.BannerComponent.Kind(), func(_ ecs.Entity, b *component.Banner) {
		if b.Remaining > 0 {
			b.Remaining = max(b.Remaining-s.dt, 0)
		}
	})
}
