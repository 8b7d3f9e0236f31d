package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/prospecta/internal/api"
	"github.com/terraincognita07/prospecta/internal/cli"
	"github.com/terraincognita07/prospecta/internal/config"
	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/i18n"
	"github.com/terraincognita07/prospecta/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("prospecta exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, stdin *os.File, stdout io.Writer) error {
	command := "serve"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		return serve(cfg)
	case "create-user":
		options, err := parseCreateUserArgs(args)
		if err != nil {
			return err
		}
		return cli.RunCreateUserCommand(cfg.DBPath, options, stdin, stdout)
	case "reset-password":
		if len(args) != 1 {
			return errors.New("usage: prospecta reset-password <username>")
		}
		return cli.RunResetPasswordCommand(cfg.DBPath, args[0], stdout)
	case "seed-roster":
		return cli.RunSeedRosterCommand(cfg.DBPath, stdout)
	default:
		return fmt.Errorf("unknown command %q (serve, create-user, reset-password, seed-roster)", command)
	}
}

func parseCreateUserArgs(args []string) (cli.CreateUserOptions, error) {
	options := cli.CreateUserOptions{}
	flags := flag.NewFlagSet("create-user", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&options.Username, "username", "", "login name, spaces allowed")
	flags.StringVar(&options.Role, "role", "commercial", "admin or commercial")
	flags.StringVar(&options.Project, "project", "", "nasmedic or nasderm")
	flags.StringVar(&options.Zone, "zone", "", "sales territory")
	if err := flags.Parse(args); err != nil {
		return cli.CreateUserOptions{}, fmt.Errorf("create-user: %w", err)
	}
	if options.Username == "" || options.Project == "" {
		return cli.CreateUserOptions{}, errors.New("usage: prospecta create-user -username NAME -project PROJECT [-role ROLE] [-zone ZONE]")
	}
	return options, nil
}

func serve(cfg *config.Config) error {
	port, err := resolvePort(cfg.Port)
	if err != nil {
		return err
	}
	time.Local = cfg.Location

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage, cfg.LocalesDir)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.TemplatesDir, cfg.Location, i18nManager, cfg.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Prospecta",
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} | ${path}\n",
	}))
	app.Use(compress.New())
	app.Use(securityHeaders)
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	app.Static("/static", cfg.StaticDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("prospecta listening", "port", port, "db", cfg.DBPath, "tz", cfg.Location.String(), "env", cfg.AppEnv)
	return app.Listen(":" + port)
}

func resolvePort(raw string) (string, error) {
	if raw == "" {
		return "8080", nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return raw, nil
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "prospecta_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

func securityHeaders(c *fiber.Ctx) error {
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("X-Frame-Options", "DENY")
	c.Set("Referrer-Policy", "same-origin")
	return c.Next()
}
