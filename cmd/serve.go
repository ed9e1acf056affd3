// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/merchant-team-service/internal/config"
	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring/prometheus"
	"github.com/canonical/merchant-team-service/internal/realtime"
	"github.com/canonical/merchant-team-service/internal/remote"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
	"github.com/canonical/merchant-team-service/pkg/authentication"
	"github.com/canonical/merchant-team-service/pkg/team"
	"github.com/canonical/merchant-team-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("merchant-team-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, err := remote.TokenSource(
		ctx,
		remote.Credentials{
			ClientID:     specs.OAuth2ClientID,
			ClientSecret: specs.OAuth2ClientSecret,
			TokenURL:     specs.OAuth2TokenURL,
			IssuerURL:    specs.OAuth2IssuerURL,
			Scopes:       specs.OAuth2Scopes,
			StaticToken:  specs.RemoteAPIToken,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to set up remote credentials: %w", err)
	}
	if tokens == nil {
		logger.Warn("No credentials configured for the remote authority")
	}

	remoteClient := remote.NewClient(
		specs.RemoteAPIURL,
		remote.NewHTTPClient(tokens, tracing.NewMiddleware(monitor, logger).Transport(nil), specs.RemoteAPITimeout),
		tracer,
		monitor,
		logger,
	)

	store := team.NewStore(team.NewState())
	teamService := team.NewService(
		remoteClient,
		store,
		team.NewTracker(),
		specs.CurrentUserID,
		tracer,
		monitor,
		logger,
	)
	defer teamService.Close()

	reconciler := team.NewReconciler(store, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			ctx,
			authentication.Config{
				Issuer:  specs.AuthIssuer,
				JWKSURL: specs.AuthJWKSURL,
				Policy: authentication.Policy{
					AllowedSubjects: specs.AuthAllowedSubjects,
					RequiredScope:   specs.AuthRequiredScope,
					DefaultSubject:  specs.CurrentUserID,
				},
			},
			tracer,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}
		logger.Info("JWT authentication is enabled")
	} else {
		verifier = authentication.NewNoopVerifier(specs.CurrentUserID)
		logger.Info("Authentication is disabled")
	}

	g, gctx := errgroup.WithContext(ctx)

	if specs.RealtimeURL != "" {
		subscriber, err := realtime.NewSubscriber(specs.RealtimeURL, tokens, specs.RealtimeReconnectDelay, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to set up realtime channel: %w", err)
		}

		events := make(chan types.MemberEvent, 64)

		g.Go(func() error {
			defer close(events)
			return subscriber.Run(gctx, events)
		})
		g.Go(func() error {
			return reconciler.Run(gctx, events)
		})
	} else {
		logger.Info("No realtime URL configured, member events are only received through webhooks")
	}

	g.Go(func() error {
		if err := teamService.RefreshTeam(gctx); err != nil {
			logger.Errorf("initial team load failed: %v", err)
		}
		return nil
	})

	router := web.NewRouter(
		web.Config{
			CORSOrigins:   specs.CORSOrigins,
			WebhookSecret: specs.WebhookSecret,
		},
		teamService,
		reconciler,
		verifier,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	g.Go(func() error {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		logger.Security().SystemShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
