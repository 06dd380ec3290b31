package app

import (
	"strings"

	"github.com/dshills/glyphpaint/internal/config"
	"github.com/dshills/glyphpaint/internal/config/watcher"
	"github.com/dshills/glyphpaint/internal/input"
	"github.com/dshills/glyphpaint/internal/renderer/statusline"
)

// startWatcher begins watching the config file. Failure only disables
// live reload.
func (app *Application) startWatcher() {
	if app.configPath == "" {
		return
	}
	w, err := watcher.New(app.configPath)
	if err != nil {
		app.logger.WithComponent("config").Warn("live reload disabled: %v", err)
		return
	}
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.WithComponent("config").Warn("closing watcher: %v", err)
	}
	app.watcher = nil
}

// drainReloads handles pending watcher events without blocking. Bursts
// collapse into a single reload.
func (app *Application) drainReloads() {
	if app.watcher == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case ev, ok := <-app.watcher.Events():
			if !ok {
				break drain
			}
			if !ev.Op.Has(watcher.OpRemove) {
				changed = true
			}
		case err, ok := <-app.watcher.Errors():
			if !ok {
				break drain
			}
			app.logger.WithComponent("config").Warn("watcher: %v", err)
		default:
			break drain
		}
	}

	if changed {
		app.Reload()
	}
}

// Reload rereads the config file and applies the palettes and keymap.
// Canvas size, cursor style and tick interval only apply at startup.
func (app *Application) Reload() {
	log := app.logger.WithComponent("config")

	cfg, err := config.Load(app.configPath)
	if err == nil {
		var s *config.Settings
		if s, err = cfg.Resolve(); err == nil {
			app.applySettings(s)
			app.metrics.RecordReload()
			app.status.SetMessage("Config reloaded", statusline.MessageInfo, statusline.DefaultMessageTTL)
			log.Info("reloaded %s", app.configPath)
			return
		}
	}

	// Joined validation errors span lines; the message row shows the first.
	first, _, _ := strings.Cut(err.Error(), "\n")
	app.status.SetMessage("Config error: "+first, statusline.MessageError, statusline.DefaultMessageTTL)
	log.Error("reload %s: %v", app.configPath, err)
}

func (app *Application) applySettings(s *config.Settings) {
	app.ctrl.SetPalettes(s.Colors, s.Glyphs)

	if s.Keymap != nil {
		app.keymap = s.Keymap
		if src, ok := app.source.(interface{ SetKeymap(*input.Keymap) }); ok {
			src.SetKeymap(s.Keymap)
		}
		app.status.SetHelp(app.keymap.Help(HelpPerLine))
	}
	app.settings.Colors, app.settings.Glyphs, app.settings.Keymap = s.Colors, s.Glyphs, app.keymap
}
