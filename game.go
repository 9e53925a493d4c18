package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/icmeyer/boing/assets"
	"github.com/icmeyer/boing/common"
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/ecs/entity"
	"github.com/icmeyer/boing/ecs/system"
	"github.com/icmeyer/boing/prefabs"
	"golang.design/x/clipboard"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 2 * system.TickRate

type Game struct {
	sceneName string
	spec      *prefabs.SceneSpec

	world   *ecs.World
	physics *system.PhysicsSystem
	render  *system.RenderSystem

	debug   bool
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher   *prefabs.Watcher
	sound     *audio.Player
	clipboard bool

	status      string
	statusTimer int
}

func NewGame(sceneName string, debug, paused, mute bool) (*Game, error) {
	g := &Game{
		sceneName: sceneName,
		render:    system.NewRenderSystem(),
		debug:     debug,
	}

	if !mute {
		player, err := assets.LoadAudioPlayer("")
		if err != nil {
			log.Printf("game: collision sound disabled: %v", err)
		} else {
			g.sound = player
		}
	}

	if err := g.loadScene(); err != nil {
		return nil, err
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	g.watcher = newSceneWatcher()
	g.pauseUI = NewPauseUI(g)
	g.setPaused(paused)
	return g, nil
}

func newSceneWatcher() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
		return nil
	}
	return w
}

// loadScene rebuilds the world from the scene file. On error the current
// world is kept.
func (g *Game) loadScene() error {
	ctx, cancel := context.WithTimeout(context.Background(), prefabs.LoadTimeout)
	defer cancel()
	spec, err := prefabs.LoadScene(ctx, g.sceneName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, spec, g.sound)
	if err != nil {
		return err
	}

	ps := system.NewPhysicsSystem(scene, 1.0/system.TickRate)
	ps.SetPaused(g.paused)

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(ps)
	w.AddSystem(system.NewStatsSystem())
	w.AddSystem(system.NewAudioSystem())
	w.AddSystem(system.NewCameraSystem())

	g.spec = spec
	g.world = w
	g.physics = ps
	log.Printf("game: loaded scene %q with %d bodies", spec.Name, len(scene.Shapes))
	return nil
}

func (g *Game) reload(reason string) {
	if err := g.loadScene(); err != nil {
		log.Printf("game: reload %s: %v", reason, err)
		g.setStatus("reload failed: " + err.Error())
		return
	}
	g.setStatus("reloaded " + g.spec.Name)
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.physics.SetPaused(paused)
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTimer = statusTicks
}

func (g *Game) tick() uint64 {
	e, ok := g.world.First(component.SimStatsComponent.Kind())
	if !ok {
		return 0
	}
	stats, _ := ecs.Get(g.world, e, component.SimStatsComponent)
	return stats.Tick
}

func (g *Game) copySnapshot() {
	data, err := prefabs.NewSnapshot(g.spec.Name, g.tick(), g.physics.Scene()).Marshal()
	if err != nil {
		log.Printf("game: snapshot: %v", err)
		return
	}
	if !g.clipboard {
		log.Printf("game: snapshot (clipboard unavailable):\n%s", data)
		g.setStatus("snapshot logged")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("snapshot copied")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if g.watcher != nil {
		for _, err := range g.watcher.PendingErrors() {
			log.Printf("game: watcher: %v", err)
		}
		if changed := g.watcher.Pending(); len(changed) > 0 {
			g.reload(changed[len(changed)-1])
		}
	}

	g.world.Update()

	if e, ok := g.world.First(component.InputComponent.Kind()); ok {
		input, _ := ecs.Get(g.world, e, component.InputComponent)
		if input.TogglePause {
			g.setPaused(!g.paused)
		}
		if input.Step {
			g.physics.StepOnce()
		}
		if input.ToggleDebug {
			g.debug = !g.debug
		}
		if input.Copy {
			g.copySnapshot()
		}
		if input.Reset {
			g.reload("reset")
		}
	}

	if g.statusTimer > 0 {
		g.statusTimer--
	}
	if g.paused {
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.physics.Scene(), g.world, screen)
		system.DrawStatsDebug(g.world, screen)
	}
	if g.statusTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 10, common.BaseHeight-24)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
