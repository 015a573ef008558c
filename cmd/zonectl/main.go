package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/zonectl/internal/actuator"
	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/board"
	"codeberg.org/mutker/zonectl/internal/config"
	"codeberg.org/mutker/zonectl/internal/display"
	"codeberg.org/mutker/zonectl/internal/logger"
	"codeberg.org/mutker/zonectl/internal/monitor"
	"codeberg.org/mutker/zonectl/internal/netlink"
	"codeberg.org/mutker/zonectl/internal/pid"
	"codeberg.org/mutker/zonectl/internal/sensor"
	"codeberg.org/mutker/zonectl/internal/telemetry"
)

// Hold time for the join banner before the first cycle repaints.
const joinBannerHold = 2500 * time.Millisecond

var (
	cfg    *config.Config
	hw     *board.Board
	driver *actuator.Driver
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to claim pidfile")
	}

	hw, err = board.Open(cfg.Hardware, cfg.Calibration)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open board")
	}
}

func main() {
	defer closeBoard()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	cleanup()
}

func run(ctx context.Context) error {
	logger.Info().Msg("Environmental monitor initializing")
	clock := monitor.SystemClock()

	lines := hw.Lines()
	driver = actuator.NewDriver(lines.Green, lines.Yellow, lines.Red, lines.Buzzer, lines.Fan, clock)

	zoneLCD, err := display.NewLCD(hw.ZoneDisplayBus(), display.ZoneCols, display.ZoneRows)
	if err != nil {
		return err
	}
	statusLCD, err := display.NewLCD(hw.StatusDisplayBus(), display.StatusCols, display.StatusRows)
	if err != nil {
		return err
	}
	panels := display.NewPanels(zoneLCD, statusLCD)
	panels.Boot()

	// Green marks the board alive until the first cycle decides otherwise
	driver.Apply(ctx, actuator.Commands{Green: true})

	checker := netlink.NewChecker()
	panels.Connecting()
	addr, up := netlink.Join(checker, cfg.Link.JoinAttempts, cfg.JoinInterval())
	panels.LinkResult(up, addr)
	// Leave the join result readable before the first cycle repaints
	clock.Sleep(ctx, joinBannerHold)

	publisher, err := telemetry.NewService(telemetryConfig(), checker)
	if err != nil {
		return err
	}
	defer publisher.Close()

	sampler := sensor.NewSampler(calibration(), hw.Analog(), hw.Climate())

	engine, err := monitor.New(monitor.Config{
		Period:      cfg.Period(),
		SleepFloor:  cfg.SleepFloor(),
		Thresholds:  thresholds(),
		MonitorOnly: cfg.Monitor,
	}, monitor.Deps{
		Sampler:   sampler,
		Actuators: driver,
		Panels:    panels,
		Publisher: publisher,
		Link:      checker,
		Clock:     clock,
	})
	if err != nil {
		return err
	}

	return engine.Run(ctx)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func cleanup() {
	if driver != nil {
		driver.Apply(context.Background(), actuator.Commands{})
	}
	if err := pid.Remove(); err != nil {
		logger.Error().Err(err).Msg("failed to remove pidfile")
	}
	logger.Info().Msg("Exiting...")
}

func closeBoard() {
	if err := hw.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close board")
	}
}

func telemetryConfig() telemetry.Config {
	return telemetry.Config{
		Enabled:            cfg.Telemetry.Enabled,
		Endpoint:           cfg.Telemetry.Endpoint,
		Timeout:            cfg.RequestTimeout(),
		AuthToken:          cfg.Telemetry.AuthToken,
		InsecureSkipVerify: cfg.Telemetry.Insecure,
	}
}

func calibration() sensor.Calibration {
	return sensor.Calibration{
		ADCMax:    cfg.Calibration.ADCMax,
		VRef:      cfg.Calibration.VRef,
		NTCBeta:   cfg.Calibration.NTCBeta,
		NTCKelvin: cfg.Calibration.NTCKelvin,
		NTCSeries: cfg.Calibration.NTCSeriesOhms,
		LDRGamma:  cfg.Calibration.LDRGamma,
		LDRRL10:   cfg.Calibration.LDRRL10,
		LDRSeries: cfg.Calibration.LDRSeriesOhms,
	}
}

func thresholds() alert.Thresholds {
	return alert.Thresholds{
		TempHighC:       cfg.Thresholds.TempHighC,
		LightLowLux:     cfg.Thresholds.LightLowLux,
		HumidityHighPct: cfg.Thresholds.HumidityHighPct,
	}
}
