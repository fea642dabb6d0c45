package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/term"

	"github.com/depeter/jellyreel/assets/icon"
	"github.com/depeter/jellyreel/internal/app"
	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/constants"
	"github.com/depeter/jellyreel/internal/jellyfin"
	"github.com/depeter/jellyreel/internal/session"
	"github.com/depeter/jellyreel/internal/ui"
)

// passwordEnv holds the password used when the config has a username but
// no token yet. Without it the password is prompted for on a terminal.
const passwordEnv = "JELLYREEL_PASSWORD"

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		cfgPath = "config.toml"
	}

	// Init fonts
	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), constants.AppName, "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	store, err := session.Open(constants.AppName)
	if err != nil {
		log.Printf("Session will not be saved: %v", err)
		store = session.NewStore(nil)
	}

	client := connect(cfg)

	game := app.NewGame(cfg, client, imgCache, store)
	game.OpenHome(cfgPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if client != nil && cfg.Server.Live && game.Home != nil {
		startNotifier(ctx, client, game.Home)
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("jellyreel")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	err = ebiten.RunGame(game)
	if game.Player != nil {
		game.Player.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// connect returns a client for the configured server, logging in with the
// password from the environment when only a username is configured. It
// returns nil when there is no usable server.
func connect(cfg *config.Config) *jellyfin.Client {
	if cfg.Server.URL == "" {
		return nil
	}
	client := jellyfin.NewClient(cfg.Server.URL)
	if cfg.Server.Token != "" {
		client.SetToken(cfg.Server.Token, cfg.Server.UserID)
		return client
	}
	if cfg.Server.Username == "" {
		log.Printf("No token or username configured for %s", cfg.Server.URL)
		return nil
	}

	password, err := readPassword(cfg.Server.Username, cfg.Server.URL)
	if err != nil {
		log.Printf("No password for %s: %v", cfg.Server.Username, err)
		return nil
	}
	if err := client.Authenticate(cfg.Server.Username, password); err != nil {
		log.Printf("Login as %s failed: %v", cfg.Server.Username, err)
		return nil
	}
	cfg.Server.Token = client.Token()
	cfg.Server.UserID = client.UserID()
	if err := cfg.Save(); err != nil {
		log.Printf("Failed to save token: %v", err)
	}
	return client
}

// readPassword takes the password from the environment, or prompts for it
// when stdin is a terminal.
func readPassword(username, serverURL string) (string, error) {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("set %s", passwordEnv)
	}
	fmt.Fprintf(os.Stderr, "Password for %s on %s: ", username, serverURL)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func startNotifier(ctx context.Context, client *jellyfin.Client, home *ui.HomeScreen) {
	n, err := client.Notifier()
	if err != nil {
		log.Printf("Live updates disabled: %v", err)
		return
	}
	n.OnLibraryChanged = home.Reload
	go n.Run(ctx)
}
