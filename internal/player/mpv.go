package player

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/jellyreel/internal/config"
)

// Player wraps libmpv for playing the active slide in mpv's own window.
type Player struct {
	m        *mpv.Mpv
	mu       sync.Mutex
	playing  bool
	position float64
	itemID   string

	// OnPlaybackEnd runs on the event goroutine when a file ends by
	// itself or the mpv window is closed.
	OnPlaybackEnd func()
}

// New creates and initializes an mpv instance.
func New(cfg *config.Config) (*Player, error) {
	m := mpv.New()

	must(m.SetOptionString("hwdec", cfg.Playback.HWAccel))
	must(m.SetOptionString("force-window", "yes"))
	must(m.SetOptionString("osc", "yes"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("input-default-bindings", "yes"))
	must(m.SetOptionString("input-vo-keyboard", "yes"))
	if cfg.UI.Fullscreen {
		must(m.SetOptionString("fullscreen", "yes"))
	}
	if cfg.Playback.AudioLanguage != "" {
		must(m.SetOptionString("alang", cfg.Playback.AudioLanguage))
	}
	if cfg.Playback.SubLanguage != "" {
		must(m.SetOptionString("slang", cfg.Playback.SubLanguage))
	}
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Playback.Volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m}
	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)

	go p.eventLoop()
	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// LoadFile starts playback of url for the given item.
func (p *Player) LoadFile(url, itemID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.itemID = itemID
	p.playing = true
	p.position = 0
	return p.m.Command([]string{"loadfile", url})
}

// Stop stops playback.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

// Playing returns whether media is currently loaded.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Position returns the playback position in seconds.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// ItemID returns the currently playing item ID.
func (p *Player) ItemID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemID
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			if v, ok := prop.Data.(float64); ok && prop.Name == "time-pos" {
				p.mu.Lock()
				p.position = v
				p.mu.Unlock()
			}

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			if ev.Data != nil {
				log.Printf("mpv end-file: reason=%s wasPlaying=%v", ev.EndFile().Reason, wasPlaying)
			}
			// Stop() clears playing first, so its own end-file is ignored.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
