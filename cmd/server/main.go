package main

import (
	"context"
	"log"
	"net/http"
	"time"

	httpadapter "plantverse/internal/adapter/http"
	metricsinmem "plantverse/internal/adapter/metrics/inmemory"
	wsnotify "plantverse/internal/adapter/notify/websocket"
	gormrepo "plantverse/internal/adapter/repo/gorm"
	"plantverse/internal/adapter/repo/memory"
	"plantverse/internal/app/account"
	"plantverse/internal/app/care"
	"plantverse/internal/app/history"
	"plantverse/internal/app/plants"
	"plantverse/internal/app/ports"
	"plantverse/internal/app/tick"
	"plantverse/internal/domain/garden"

	"github.com/alecthomas/kong"
	"github.com/cloudwego/hertz/pkg/app/server"
)

var CLI struct {
	Addr     string `help:"HTTP listen address." default:":8080" env:"PLANTVERSE_ADDR"`
	FeedAddr string `help:"Websocket care feed listen address." default:":8081" env:"PLANTVERSE_FEED_ADDR"`
	DSN      string `help:"Postgres DSN. Empty runs the in-memory store." env:"PLANTVERSE_DB_DSN"`

	DecayPerHour  int `help:"Health lost per elapsed hour." default:"1" env:"PLANTVERSE_DECAY_PER_HOUR"`
	SoilBaseline  int `help:"Value soil quality drifts toward." default:"50" env:"PLANTVERSE_SOIL_BASELINE"`
	SoilDriftStep int `help:"Soil drift applied per settlement." default:"1" env:"PLANTVERSE_SOIL_DRIFT_STEP"`
}

type repoSet struct {
	state ports.PlantStateRepository
	care  ports.CareExecutionRepository
	logs  ports.InteractionRepository
	owner ports.OwnerRepository
	tx    ports.TxManager
}

func main() {
	kong.Parse(&CLI,
		kong.Name("plantverse"),
		kong.Description("Gamified plant-care backend"),
		kong.UsageOnError(),
	)

	repos := mustBuildRepos()
	engine := garden.NewEngine(buildTuning())
	kpiRecorder := metricsinmem.NewRecorder()

	feed := wsnotify.NewFeed()
	defer feed.Close()
	go serveFeed(feed, CLI.FeedAddr)

	tickUC := tick.UseCase{
		TxManager: repos.tx,
		StateRepo: repos.state,
		LogRepo:   repos.logs,
		Engine:    engine,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		AccountUC: account.UseCase{TxManager: repos.tx, Owners: repos.owner, Now: time.Now},
		PlantsUC: plants.UseCase{
			TxManager: repos.tx,
			StateRepo: repos.state,
			Tick:      tickUC,
			Engine:    engine,
			Now:       time.Now,
		},
		CareUC: care.UseCase{
			TxManager: repos.tx,
			StateRepo: repos.state,
			CareRepo:  repos.care,
			LogRepo:   repos.logs,
			Metrics:   kpiRecorder,
			Notifier:  feed,
			Engine:    engine,
			Now:       time.Now,
		},
		TickUC:    tickUC,
		HistoryUC: history.UseCase{LogRepo: repos.logs},
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(CLI.Addr))
	h.RegisterRoutes(s)

	log.Printf("plantverse server listening on %s (care feed on %s)", CLI.Addr, CLI.FeedAddr)
	s.Spin()
}

func mustBuildRepos() repoSet {
	if CLI.DSN == "" {
		log.Println("no DSN configured, using in-memory store")
		store := memory.NewStore()
		return repoSet{
			state: memory.NewPlantStateRepo(store),
			care:  memory.NewCareExecutionRepo(store),
			logs:  memory.NewInteractionRepo(store),
			owner: memory.NewOwnerRepo(store),
			tx:    memory.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(CLI.DSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return repoSet{
		state: gormrepo.NewPlantStateRepo(db),
		care:  gormrepo.NewCareExecutionRepo(db),
		logs:  gormrepo.NewInteractionRepo(db),
		owner: gormrepo.NewOwnerRepo(db),
		tx:    gormrepo.NewTxManager(db),
	}
}

func buildTuning() garden.Tuning {
	cfg := garden.DefaultTuning()
	if CLI.DecayPerHour > 0 {
		cfg.HealthDecayPerHour = CLI.DecayPerHour
	}
	if CLI.SoilBaseline >= garden.MinStat && CLI.SoilBaseline <= garden.MaxStat {
		cfg.SoilBaseline = CLI.SoilBaseline
	}
	if CLI.SoilDriftStep > 0 {
		cfg.SoilDriftStep = CLI.SoilDriftStep
	}
	return cfg
}

// The gorilla upgrader needs a net/http listener, so the care feed runs
// beside the hertz API server.
func serveFeed(feed *wsnotify.Feed, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/feed", feed)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("care feed listener stopped: %v", err)
	}
}
