package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/constants"
	"github.com/depeter/jellyreel/internal/jellyfin"
	"github.com/depeter/jellyreel/internal/session"
)

// Keys lists extra keys per carousel action.
type Keys struct {
	Prev, Next, Play []ebiten.Key
}

func anyRepeating(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inputRepeating(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	if IsModifierPressed() {
		return false
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// HomeScreen shows the server's featured items as a looping carousel with
// details of the active slide underneath.
type HomeScreen struct {
	client   *jellyfin.Client
	imgCache *cache.ImageCache
	store    *session.Store
	cfg      config.CarouselConfig
	now      func() time.Duration

	items    []jellyfin.MediaItem
	carousel *FeaturedCarousel
	loaded   bool
	loading  bool
	reload   bool
	// generation discards image callbacks from a previous load.
	generation int
	errText    string
	screenW    float64
	screenH    float64

	// Keys adds bindings on top of the arrow keys, Enter and the remote.
	Keys Keys

	// OnPlay is called when the active slide is chosen.
	OnPlay func(item jellyfin.MediaItem)

	mu sync.Mutex
}

func NewHomeScreen(client *jellyfin.Client, imgCache *cache.ImageCache, store *session.Store,
	cfg config.CarouselConfig, now func() time.Duration) *HomeScreen {
	return &HomeScreen{
		client:   client,
		imgCache: imgCache,
		store:    store,
		cfg:      cfg,
		now:      now,
		screenW:  ScreenWidth,
		screenH:  ScreenHeight,
	}
}

func (hs *HomeScreen) Name() string { return "Home" }

func (hs *HomeScreen) OnEnter() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if !hs.loaded && !hs.loading {
		hs.startLoad()
	}
}

func (hs *HomeScreen) OnExit() {}

// Reload refetches the featured items and rebuilds the carousel. Safe to
// call from any goroutine.
func (hs *HomeScreen) Reload() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.loading {
		hs.reload = true
		return
	}
	hs.startLoad()
}

// startLoad must be called with hs.mu held.
func (hs *HomeScreen) startLoad() {
	hs.loading = true
	hs.generation++
	go hs.loadData(hs.generation)
}

func (hs *HomeScreen) loadData(gen int) {
	primary := hs.cfg.UsePrimaryArtwork()
	items, err := hs.client.GetFeatured(hs.cfg.FeaturedLimit, primary)

	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.loading = false
	hs.loaded = true
	hs.apply(items, err, primary, gen)
	if hs.reload {
		hs.reload = false
		hs.startLoad()
	}
}

// apply must be called with hs.mu held.
func (hs *HomeScreen) apply(items []jellyfin.MediaItem, err error, primary bool, gen int) {
	if err != nil {
		log.Printf("Failed to load featured items: %v", err)
		// Keep showing the previous carousel if there is one.
		if hs.carousel == nil {
			hs.errText = err.Error()
		}
		return
	}

	fc, err := hs.buildCarousel(items, primary)
	if err != nil && !IsEmpty(err) {
		log.Printf("Failed to build carousel: %v", err)
	}
	hs.items = items
	hs.carousel = fc
	hs.errText = ""
	if fc != nil {
		hs.loadImages(items, primary, gen)
	}
}

// buildCarousel must be called with hs.mu held. It returns a nil carousel
// and carousel.ErrNoItems when there is nothing to show.
func (hs *HomeScreen) buildCarousel(items []jellyfin.MediaItem, primary bool) (*FeaturedCarousel, error) {
	views := slideViews(items, primary)
	opts := hs.cfg.Options()
	if hs.cfg.Resume && hs.store != nil {
		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		opts.Start = hs.store.StartIndex(ids)
	}

	fc, err := NewFeaturedCarousel(views, opts, hs.now)
	if err != nil {
		return nil, err
	}
	fc.OnActivate = func(index int) {
		// Called from Update with hs.mu held.
		hs.play(index)
	}
	fc.Engine().OnSettle = func(int) {
		hs.saveSession()
	}
	return fc, nil
}

// slideViews converts items into slides. Primary artwork keeps the
// poster's own aspect ratio; backdrops use the configured one.
func slideViews(items []jellyfin.MediaItem, primary bool) []SlideView {
	views := make([]SlideView, len(items))
	for i, item := range items {
		views[i] = SlideView{ID: item.ID, Title: item.Name}
		if primary {
			views[i].Aspect = item.PrimaryAspect
		}
	}
	return views
}

// loadImages must be called with hs.mu held.
func (hs *HomeScreen) loadImages(items []jellyfin.MediaItem, primary bool, gen int) {
	for i, item := range items {
		url := hs.client.SlideArtURL(item, primary)
		if url == "" {
			continue
		}
		if img := hs.imgCache.Get(url); img != nil {
			hs.carousel.SetImage(i, img)
			continue
		}
		idx := i
		hs.imgCache.LoadAsync(url, func(img *ebiten.Image) {
			hs.mu.Lock()
			defer hs.mu.Unlock()
			if gen != hs.generation || hs.carousel == nil {
				return
			}
			hs.carousel.SetImage(idx, img)
		})
	}
}

func (hs *HomeScreen) saveSession() {
	if hs.store == nil || hs.carousel == nil {
		return
	}
	idx := hs.carousel.Active()
	rec := session.Record{ItemID: hs.items[idx].ID, Index: idx}
	if err := hs.store.Save(rec); err != nil {
		log.Printf("Failed to save session: %v", err)
	}
}

func (hs *HomeScreen) play(index int) {
	if index < 0 || index >= len(hs.items) || hs.OnPlay == nil {
		return
	}
	hs.OnPlay(hs.items[index])
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if hs.carousel == nil {
		return nil, nil
	}

	hs.carousel.SetBounds(hs.carouselBounds())

	dir, enter, _ := InputState()
	switch {
	case dir == DirLeft || anyRepeating(hs.Keys.Prev):
		hs.carousel.Prev()
	case dir == DirRight || anyRepeating(hs.Keys.Next):
		hs.carousel.Next()
	}
	if enter || anyJustPressed(hs.Keys.Play) {
		hs.play(hs.carousel.Active())
	}

	hs.carousel.Update()
	return nil, nil
}

// carouselBounds returns the slide strip's box for the current screen size.
func (hs *HomeScreen) carouselBounds() (x, y, w, h float64) {
	return 0, CarouselTop, hs.screenW, hs.screenH * CarouselHeightFrac
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	b := dst.Bounds()
	hs.screenW, hs.screenH = float64(b.Dx()), float64(b.Dy())
	cx, cy := hs.screenW/2, hs.screenH/2

	DrawText(dst, constants.AppName, SectionPadding, 16, FontSizeTitle, ColorPrimary)

	switch {
	case !hs.loaded:
		DrawTextCentered(dst, "Loading...", cx, cy, FontSizeHeading, ColorTextSecondary)
		return
	case hs.errText != "":
		DrawTextCentered(dst, "Could not load featured items", cx, cy-20, FontSizeHeading, ColorTextSecondary)
		DrawTextCentered(dst, hs.errText, cx, cy+16, FontSizeSmall, ColorError)
		return
	case hs.carousel == nil:
		DrawTextCentered(dst, "No media found", cx, cy, FontSizeHeading, ColorTextSecondary)
		return
	}

	hs.carousel.Draw(dst)
	hs.drawDetails(dst, hs.items[hs.carousel.Active()])
}

func (hs *HomeScreen) drawDetails(dst *ebiten.Image, item jellyfin.MediaItem) {
	_, top, _, h := hs.carouselBounds()
	x := float64(SectionPadding)
	y := top + h + DotRowHeight + 16
	maxW := hs.screenW - 2*SectionPadding

	DrawText(dst, item.Name, x, y, FontSizeTitle, ColorText)
	y += FontSizeTitle + 14

	if meta := itemMeta(item); meta != "" {
		DrawText(dst, meta, x, y, FontSizeBody, ColorTextSecondary)
		y += FontSizeBody + 12
	}
	if item.Tagline != "" {
		DrawText(dst, item.Tagline, x, y, FontSizeBody, ColorTextMuted)
		y += FontSizeBody + 12
	}
	y += DrawTextWrapped(dst, item.Overview, x, y, maxW, FontSizeBody, 3, ColorText)

	drawPlayIcon(dst, float32(x+8), float32(y+14), 9, ColorPrimary)
	DrawText(dst, "Enter to play", x+24, y+6, FontSizeSmall, ColorTextMuted)
}

// itemMeta formats the year, type, rating and runtime line.
func itemMeta(item jellyfin.MediaItem) string {
	var meta string
	add := func(s string) {
		if meta != "" {
			meta += "  ·  "
		}
		meta += s
	}
	if item.Year > 0 {
		add(fmt.Sprintf("%d", item.Year))
	}
	if item.Type != "" {
		add(item.Type)
	}
	if item.CommunityRating > 0 {
		add(fmt.Sprintf("★ %.1f", item.CommunityRating))
	}
	if item.RuntimeTicks > 0 {
		mins := item.RuntimeTicks / constants.TicksPerMinute
		add(fmt.Sprintf("%dh %02dm", mins/60, mins%60))
	}
	return meta
}
