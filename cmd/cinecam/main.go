package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cinecam/internal/api"
	"cinecam/pkg/camera"
	"cinecam/pkg/config"
	"cinecam/pkg/db"
	"cinecam/pkg/logging"
	"cinecam/pkg/probe"
	"cinecam/pkg/sim"
	"cinecam/pkg/sim/mocksim"
	"cinecam/pkg/store"
	"cinecam/pkg/version"
)

var (
	configPath = flag.String("config", "configs/cinecam.yaml", "Path to config file")
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
)

func main() {
	flag.Parse()

	// .env is optional; it can override the config path for dev setups.
	_ = godotenv.Load()
	path := *configPath
	if env := os.Getenv("CINECAM_CONFIG"); env != "" {
		path = env
	}

	if *initConfig {
		if err := config.GenerateDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", path)
		return
	}

	if err := run(context.Background(), path); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("CineCam Started", "version", version.Version)

	dbConn, err := db.Init(appCfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbConn.Close()
	st := store.NewSQLiteStore(dbConn)

	if err := dbConn.PruneShotHistory(time.Duration(appCfg.Camera.HistoryRetention)); err != nil {
		slog.Warn("Failed to prune shot history", "error", err)
	}

	cfgProv := config.NewProvider(appCfg, st)

	simClient, err := initSimClient(ctx, cfgProv)
	if err != nil {
		return fmt.Errorf("failed to initialize sim client: %w", err)
	}
	defer simClient.Close()

	director := camera.New(camera.StandardDimensions(), rand.New(rand.NewSource(time.Now().UnixNano())))
	director.UpdateSettings(api.SettingsFromProvider(ctx, cfgProv))
	if dist := float64(appCfg.Camera.MinVisibleDistance); dist > 0 {
		director.SetVisibilityFloor(dist)
	}

	if g, err := simClient.GetGeometry(ctx); err == nil {
		director.SetAircraft(g)
	} else {
		slog.Warn("Aircraft geometry unavailable, using reference dimensions", "error", err)
	}

	// Restore auto mode from the previous run.
	if mode, ok := st.GetState(ctx, config.KeyCameraMode); ok && mode == string(camera.ModeAuto) {
		director.SetAuto(true)
	}

	// Startup Probes
	probes := []probe.Probe{
		{
			Name:     "Database",
			Check:    func(c context.Context) error { return dbConn.PingContext(c) },
			Critical: true,
		},
		{
			Name: "Simulator",
			Check: func(c context.Context) error {
				_, err := simClient.GetTelemetry(c)
				return err
			},
			Critical: false,
		},
	}
	if err := probe.AnalyzeResults(probe.Run(ctx, probes)); err != nil {
		return fmt.Errorf("startup checks failed: %w", err)
	}

	telH := api.NewTelemetryHandler()
	streamH := api.NewStreamHandler()
	defer streamH.Close()

	go frameLoop(ctx, appCfg, director, simClient, st, telH, streamH)

	return runServer(ctx, appCfg, director, cfgProv, st, telH, streamH)
}

func initSimClient(ctx context.Context, prov config.Provider) (sim.Client, error) {
	provider := prov.SimProvider(ctx)
	switch provider {
	case "mock":
		slog.Info("Using mock simulator")
		return mocksim.NewClient(mocksim.Config{
			StartLat:       prov.MockStartLat(ctx),
			StartLon:       prov.MockStartLon(ctx),
			StartAltFt:     prov.MockStartAlt(ctx),
			StartHeading:   prov.MockStartHeading(ctx),
			DurationParked: prov.MockDurationParked(ctx),
			DurationTaxi:   prov.MockDurationTaxi(ctx),
			Geometry: sim.Geometry{
				Wingspan: 35.0, Length: 37.5, Height: 11.8,
				EyeY: 1.2, EyeZ: -15.0,
			},
		}), nil
	default:
		return nil, fmt.Errorf("unknown sim provider: %s", provider)
	}
}

// frameLoop drives the director at the configured rate and fans results
// out to the telemetry handler, the websocket stream and the shot log.
func frameLoop(ctx context.Context, cfg *config.Config, director *camera.Director, simClient sim.Client, st store.Store, telH *api.TelemetryHandler, streamH *api.StreamHandler) {
	interval := time.Duration(cfg.Ticker.FrameLoop)
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastShot string
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			tel, err := simClient.GetTelemetry(ctx)
			if err != nil {
				telH.UpdateState(simClient.GetState())
				continue
			}
			px, py, _ := simClient.GetPointer(ctx)

			pose, held := director.Tick(dt, tel, px, py)
			status := director.Snapshot()

			telH.Update(&tel)
			telH.UpdateState(simClient.GetState())

			if held && streamH.ClientCount() > 0 {
				streamH.Broadcast(api.StreamFrame{Pose: pose, Status: status})
			}
			logging.TraceDefault("frame", "phase", status.Phase, "shot", status.ShotName, "x", pose.X, "y", pose.Y, "z", pose.Z)

			// Record every shot change once.
			if status.ShotName != lastShot {
				if status.ShotName != "" {
					shot := status
					go func() {
						logCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
						defer cancel()
						if err := st.LogShot(logCtx, store.ShotRecord{
							ShotName: shot.ShotName,
							Category: categoryOf(director, shot.ShotName),
							Duration: shot.ShotRemaining,
						}); err != nil {
							slog.Warn("Failed to log shot", "error", err)
						}
					}()
				}
				lastShot = status.ShotName
			}
		}
	}
}

// categoryOf finds which catalog list a shot name belongs to.
func categoryOf(director *camera.Director, name string) string {
	cat := director.Catalog()
	for _, s := range cat.External {
		if s.Name == name {
			return string(camera.CategoryExternal)
		}
	}
	for _, s := range cat.Cockpit {
		if s.Name == name {
			return string(camera.CategoryCockpit)
		}
	}
	return string(camera.CategoryCockpit)
}

func runServer(ctx context.Context, cfg *config.Config, director *camera.Director, cfgProv config.Provider, st store.Store, telH *api.TelemetryHandler, streamH *api.StreamHandler) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	camH := api.NewCameraHandler(director, st, st)
	cfgH := api.NewConfigHandler(st, cfgProv, director.UpdateSettings)
	pathsH := api.NewPathsHandler(st, director)

	srv := api.NewServer(cfg.Server.Address, telH, camH, cfgH, pathsH, streamH, shutdownFunc)
	srv.Handler = loggingMiddleware(srv.Handler)

	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.RequestLogger.Info("Request Processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
