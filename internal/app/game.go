package app

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/constants"
	"github.com/depeter/jellyreel/internal/jellyfin"
	"github.com/depeter/jellyreel/internal/player"
	"github.com/depeter/jellyreel/internal/session"
	"github.com/depeter/jellyreel/internal/ui"
)

// AppState is what the window is currently doing.
type AppState int

const (
	StateBrowse AppState = iota
	StatePlay
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Client  *jellyfin.Client
	Player  *player.Player
	Cache   *cache.ImageCache
	Session *session.Store
	Screens *ui.ScreenManager
	Home    *ui.HomeScreen

	State         AppState
	Width, Height int

	start time.Time
	keys  bindings

	// Set by the mpv event goroutine when playback ends on its own.
	playbackEnded atomic.Bool
	playing       jellyfin.MediaItem
}

// NewGame creates the Game with all dependencies. client may be nil when
// no server is configured.
func NewGame(cfg *config.Config, client *jellyfin.Client, imgCache *cache.ImageCache, store *session.Store) *Game {
	return &Game{
		Config:  cfg,
		Client:  client,
		Cache:   imgCache,
		Session: store,
		Screens: ui.NewScreenManager(),
		State:   StateBrowse,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		start:   time.Now(),
		keys:    parseBindings(cfg.Keybinds),
	}
}

// Now is the game clock the carousel is ticked with.
func (g *Game) Now() time.Duration {
	return time.Since(g.start)
}

// OpenHome pushes the featured carousel, or a notice when there is no
// server to load it from.
func (g *Game) OpenHome(configPath string) {
	if g.Client == nil {
		g.Screens.Push(ui.NewMessageScreen("No Jellyfin server configured",
			"Set [server] url and token in "+configPath))
		return
	}
	g.Home = ui.NewHomeScreen(g.Client, g.Cache, g.Session, g.Config.Carousel, g.Now)
	g.Home.Keys = g.keys.carousel()
	g.Home.OnPlay = g.StartPlayback
	g.Screens.Push(g.Home)
}

// InitPlayer creates the mpv player instance. Call after the window is visible.
func (g *Game) InitPlayer() error {
	p, err := player.New(g.Config)
	if err != nil {
		return err
	}
	p.OnPlaybackEnd = func() {
		g.playbackEnded.Store(true)
	}
	g.Player = p
	return nil
}

// StartPlayback plays item in mpv's window and switches to play mode.
func (g *Game) StartPlayback(item jellyfin.MediaItem) {
	if g.Player == nil {
		if err := g.InitPlayer(); err != nil {
			log.Printf("Failed to init player: %v", err)
			return
		}
	}

	url := g.Client.GetStreamURL(item.ID)
	if err := g.Player.LoadFile(url, item.ID); err != nil {
		log.Printf("Failed to load file: %v", err)
		return
	}
	go func() {
		if err := g.Client.ReportPlaybackStart(item.ID); err != nil {
			log.Printf("Failed to report playback start: %v", err)
		}
	}()

	g.playing = item
	g.playbackEnded.Store(false)
	g.State = StatePlay
}

// StopPlayback transitions back to browse mode.
func (g *Game) StopPlayback() {
	if g.Player != nil && g.Player.Playing() {
		if err := g.Player.Stop(); err != nil {
			log.Printf("Failed to stop mpv: %v", err)
		}
	}
	g.finishPlayback()
}

// finishPlayback reports the stop position and returns to browsing.
func (g *Game) finishPlayback() {
	if g.Player != nil && g.playing.ID != "" {
		itemID := g.playing.ID
		posTicks := int64(g.Player.Position() * constants.TicksPerSecond)
		go func() {
			if err := g.Client.ReportPlaybackStopped(itemID, posTicks); err != nil {
				log.Printf("Failed to report playback stop: %v", err)
			}
		}()
	}
	g.playing = jellyfin.MediaItem{}
	g.State = StateBrowse
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen (works in all modes)
	if (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) ||
		g.keys.justPressed(g.keys.fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch g.State {
	case StateBrowse:
		if err := g.Screens.Update(); err != nil {
			return err
		}

	case StatePlay:
		if g.playbackEnded.CompareAndSwap(true, false) {
			g.finishPlayback()
			break
		}
		_, _, back := ui.InputState()
		if back || g.keys.justPressed(g.keys.stop) {
			g.StopPlayback()
		}
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	switch g.State {
	case StateBrowse:
		g.Screens.Draw(screen)

	case StatePlay:
		// mpv renders into its own window; this one only says what is on.
		cx, cy := float64(g.Width)/2, float64(g.Height)/2
		ui.DrawTextCentered(screen, "Now playing: "+g.playing.Name, cx, cy-16, ui.FontSizeHeading, ui.ColorText)
		ui.DrawTextCentered(screen, "Esc to stop", cx, cy+20, ui.FontSizeSmall, ui.ColorTextMuted)
	}
}

// Layout follows the window size so the carousel re-measures on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.Width, g.Height = outsideWidth, outsideHeight
	}
	return g.Width, g.Height
}
