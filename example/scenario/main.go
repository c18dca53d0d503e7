package main

import (
	"flag"
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/kinematic"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/sirupsen/logrus"
)

// The following program runs a scripted scenario through the movement solver and logs where every actor ends up.
func main() {
	settingsPath := flag.String("settings", "settings.toml", "path to the settings file, created with defaults if missing")
	scenarioPath := flag.String("scenario", "scenario.toml", "path to the scenario file")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	if _, err := os.Stat(*settingsPath); os.IsNotExist(err) {
		if err := settings.SaveDefault(*settingsPath); err != nil {
			log.Fatalf("unable to write default settings: %v", err)
		}
	}
	s, err := settings.Load(*settingsPath)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}
	if s.Debug {
		log.Level = logrus.DebugLevel
	}

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("unable to load scenario: %v", err)
	}
	w, err := sc.build()
	if err != nil {
		log.Fatalf("invalid scenario: %v", err)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
	}

	reg := kinematic.New(kinematic.Config{World: w, Settings: s, Log: log})
	defer reg.Close()

	ids := make([]game.ActorID, len(sc.Actors))
	for i, a := range sc.Actors {
		act, err := a.actor()
		if err != nil {
			log.Fatalf("invalid scenario: %v", err)
		}
		if ids[i], err = reg.Add(a.Name, act); err != nil {
			log.Fatalf("unable to add actor: %v", err)
		}
	}

	dt := 1 / sc.TickRate
	for tick := 0; tick < sc.Ticks; tick++ {
		requestJumps(reg, log, sc.Actors, ids, tick)
		for _, res := range reg.Tick(dt) {
			if res.Result.Outcome.Skipped() {
				log.WithFields(logrus.Fields{"actor": res.ID, "tick": tick}).Warnf("actor skipped: %v", res.Result.Outcome)
			}
		}
	}

	for i, a := range sc.Actors {
		d, err := reg.Diagnostics(ids[i])
		if err != nil {
			log.Errorf("actor %q: %v", a.Name, err)
			continue
		}
		log.WithFields(logrus.Fields{
			"actor":    a.Name,
			"grounded": d.OnGround,
			"state":    d.State,
			"stuck":    d.PossiblyStuck,
		}).Infof("final position %.3f", d.Pos)
	}
}

// requestJumps asks every actor scheduled to jump on tick to do so. Failed requests are logged.
func requestJumps(reg *kinematic.Registry, log logrus.FieldLogger, actors []scenarioActor, ids []game.ActorID, tick int) {
	for i, a := range actors {
		if !a.jumpsOn(tick) {
			continue
		}
		if err := reg.RequestJump(ids[i]); err != nil {
			log.WithError(err).WithField("tick", tick).Errorf("actor %q could not jump", a.Name)
		}
	}
}
