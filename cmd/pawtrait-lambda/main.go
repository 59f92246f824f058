// Lambda entrypoint for the photo API behind an API Gateway HTTP API.
// Configuration comes entirely from PAWTRAIT_* environment variables;
// collaborators are built once at cold start and reused across invocations.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/sagarc03/pawtrait"
	"github.com/sagarc03/pawtrait/allowlist"
	"github.com/sagarc03/pawtrait/config"
	"github.com/sagarc03/pawtrait/database"
	pawhttp "github.com/sagarc03/pawtrait/http"
	"github.com/sagarc03/pawtrait/s3store"
)

func main() {
	setupLogging()

	ctx := context.Background()

	cfg, err := config.Load(nil, nil)
	if err != nil {
		fatal("load config", err)
	}

	repo, _, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		fatal("connect database", err)
	}

	signer, err := s3store.New(ctx, cfg.Storage.Config)
	if err != nil {
		fatal("create presigner", err)
	}

	service, err := pawtrait.NewPhotoService(repo, signer, pawtrait.ServiceConfig{
		URLTTL: cfg.Storage.URLTTL,
	})
	if err != nil {
		fatal("create service", err)
	}

	allow, err := allowlist.FromConfig(cfg.Auth)
	if err != nil {
		fatal("load allow-list", err)
	}

	handler := pawhttp.NewHandler(&pawhttp.HandlerConfig{
		AllowList: allow,
		CORS:      cfg.CORS,
	}, service)

	adapter := httpadapter.NewV2(handler.Router())
	lambda.Start(adapter.ProxyWithContext)
}

func setupLogging() {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
				return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	slog.SetDefault(slog.New(h))
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
