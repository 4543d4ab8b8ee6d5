package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/clients/gmailclient"
	"github.com/jakechorley/dienstplan/pkg/clients/sheetsclient"
	"github.com/jakechorley/dienstplan/pkg/db"
	"github.com/jakechorley/dienstplan/pkg/utils"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env      string
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	// Google clients are created on first use; only publishing needs OAuth
	oauthCfg     *config.OAuthClientConfig
	sheetsClient *sheetsclient.Client
	gmailClient  *gmailclient.Client
}

func (app *AppContext) oauthClientConfig() (*config.OAuthClientConfig, error) {
	if app.oauthCfg != nil {
		return app.oauthCfg, nil
	}

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}
	app.oauthCfg = oauthCfg
	return oauthCfg, nil
}

// SheetsClient returns the Sheets client, running the OAuth flow if needed
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	oauthCfg, err := app.oauthClientConfig()
	if err != nil {
		return nil, err
	}

	tokens, err := utils.DefaultTokenStore()
	if err != nil {
		return nil, err
	}

	app.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, tokens, app.Env, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.sheetsClient = client
	return client, nil
}

// GmailClient returns the Gmail client, sharing the Sheets client's token
func (app *AppContext) GmailClient() (*gmailclient.Client, error) {
	if app.gmailClient != nil {
		return app.gmailClient, nil
	}

	sheets, err := app.SheetsClient()
	if err != nil {
		return nil, err
	}

	app.Logger.Info("Initializing gmail client")
	client, err := gmailclient.NewClient(app.Ctx, app.oauthCfg, sheets.Token(), app.Cfg.GmailUserID, app.Cfg.GmailSender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}
	app.gmailClient = client
	return client, nil
}
