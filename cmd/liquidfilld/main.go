// Command liquidfilld serves liquid fill gauges as SVG documents over HTTP.
//
// GET /gauge.svg renders a gauge. The query parameters level (fill level in
// [0, 1]), color, waves (number of waves), size (pixels), label (a format
// string, or "auto") and static (true to disable animation) override the
// base config.
//
// The server is configured through the environment, optionally loaded from a
// .env file:
//
//	LIQUIDFILL_PORT     port to listen on (default 8080)
//	LIQUIDFILL_CONFIG   YAML gauge config used as the base of every gauge
package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"honnef.co/go/liquid"
	"honnef.co/go/liquid/svg"
)

const (
	defaultSize = 300
	maxSize     = 4096
)

type Config struct {
	Port   string
	Gauge  liquid.GaugeConfig
	Logger *slog.Logger
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment")
	}

	cfg, err := loadConfig(log)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	app := newApp(cfg)

	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Warn("server forced to shut down", "err", err)
	}
}

func loadConfig(log *slog.Logger) (Config, error) {
	cfg := Config{
		Port:   getEnv("LIQUIDFILL_PORT", "8080"),
		Logger: log,
		Gauge: liquid.GaugeConfig{
			Points: []liquid.Point{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}},
			Color:  "#1890ff",
		},
	}
	if path := os.Getenv("LIQUIDFILL_CONFIG"); path != "" {
		g, err := liquid.LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Gauge = g
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func newApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "liquidfilld",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestLogger(cfg.Logger))

	h := &handler{base: cfg.Gauge, log: cfg.Logger}
	app.Get("/healthz", h.health)
	app.Get("/gauge.svg", h.gauge)
	return app
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			status = ferr.Code
		}
		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start))
		return err
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
		message = ferr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

type handler struct {
	base liquid.GaugeConfig
	log  *slog.Logger
}

func (h *handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handler) gauge(c *fiber.Ctx) error {
	cfg, size, static, err := h.parseQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	g, err := liquid.NewGauge(cfg, liquid.WithLogger(h.log))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	doc := svg.New(size, size)
	doc.Static = static
	if _, err := g.Draw(doc); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(doc.Bytes())
}

// parseQuery applies the query parameters of c to a copy of the base config.
func (h *handler) parseQuery(c *fiber.Ctx) (cfg liquid.GaugeConfig, size float64, static bool, err error) {
	cfg = h.base
	cfg.Points = append([]liquid.Point(nil), h.base.Points...)
	size = defaultSize

	if s := c.Query("level"); s != "" {
		level, err := strconv.ParseFloat(s, 64)
		if err != nil || !(level >= 0 && level <= 1) {
			return cfg, 0, false, errors.New("level must be a number in [0, 1]")
		}
		if len(cfg.Points) >= 2 {
			cfg.Points[1].Y = level
		}
	}
	if s := c.Query("color"); s != "" {
		cfg.Color = s
	}
	if s := c.Query("label"); s != "" {
		cfg.Label = s
	}
	if s := c.Query("waves"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 16 {
			return cfg, 0, false, errors.New("waves must be an integer in [1, 16]")
		}
		cfg.WaveCount = n
	}
	if s := c.Query("size"); s != "" {
		size, err = strconv.ParseFloat(s, 64)
		if err != nil || !(size > 0 && size <= maxSize) {
			return cfg, 0, false, errors.New("size must be a number in (0, 4096]")
		}
	}
	if s := c.Query("static"); s != "" {
		static, err = strconv.ParseBool(s)
		if err != nil {
			return cfg, 0, false, errors.New("static must be a boolean")
		}
	}
	return cfg, size, static, nil
}
