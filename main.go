package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	leadx "github.com/tanpawarit/Chative-Sales-Assistant/agent/lead"
	nlux "github.com/tanpawarit/Chative-Sales-Assistant/agent/nlu"
	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
	runnerx "github.com/tanpawarit/Chative-Sales-Assistant/agent/runner"
	serverx "github.com/tanpawarit/Chative-Sales-Assistant/agent/server"
	sessionx "github.com/tanpawarit/Chative-Sales-Assistant/agent/session"
	shippingx "github.com/tanpawarit/Chative-Sales-Assistant/agent/shipping"
	storex "github.com/tanpawarit/Chative-Sales-Assistant/agent/store"
	supportx "github.com/tanpawarit/Chative-Sales-Assistant/agent/support"
	toolx "github.com/tanpawarit/Chative-Sales-Assistant/agent/tool"
	configx "github.com/tanpawarit/Chative-Sales-Assistant/pkg/config"
	docrenderx "github.com/tanpawarit/Chative-Sales-Assistant/pkg/docrender"
	_ "github.com/tanpawarit/Chative-Sales-Assistant/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Chative-Sales-Assistant/pkg/openrouter"
)

type AppConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"APP_ENV" default:"development"`
}

// quoteRenderer adapts the docrender client to the quote engine's
// best-effort render hook.
type quoteRenderer struct {
	client *docrenderx.Client
}

func (r quoteRenderer) Render(ctx context.Context, q *quotex.Quote) error {
	return r.client.Submit(ctx, q.QuoteID, quotex.Document(q))
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	storeCfg := configx.MustNew[storex.Config]("STORE")
	store := storex.MustNewPostgres(*storeCfg)
	defer store.Close()

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	openRouterClient := openrouterx.NewClient(*openRouterCfg)
	if openRouterClient == nil {
		panic("failed to initialize openrouter client")
	}

	docrenderCfg := configx.MustNew[docrenderx.Config]("DOCRENDER")
	docrenderClient := docrenderx.MustNew(*docrenderCfg)

	sessions := sessionx.NewStore(store)
	classifier, err := nlux.NewClassifier(openRouterClient, openRouterCfg.Model)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize classifier: %v", err))
	}

	toolset := toolx.Toolset{
		Directory:    store,
		Quotes:       quotex.NewEngine(store, store, quoteRenderer{client: docrenderClient}),
		Orders:       orderx.NewConverter(store),
		Shipping:     shippingx.NewEstimator(store),
		Availability: catalogx.NewAvailabilityChecker(store),
		Support:      supportx.NewDesk(store),
		Leads:        leadx.NewQualifier(store),
	}

	run, err := runnerx.New(openRouterClient, openRouterCfg.Model, toolset, sessions, classifier)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize runner: %v", err))
	}

	if appCfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	serverx.NewHandler(run, sessions).SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + appCfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", appCfg.Port).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
