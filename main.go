package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	promreporter "github.com/uber-go/tally/prometheus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/corona-loader/api"
	"github.com/bitmark-inc/corona-loader/external/github"
	"github.com/bitmark-inc/corona-loader/external/gis"
	"github.com/bitmark-inc/corona-loader/loader"
	"github.com/bitmark-inc/corona-loader/store"
)

const logPrefix = "init"

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig() {
	// .env first, so its values are visible to the env overrides below
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file.")
	}

	// Config from file
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("corona")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	loadConfig()

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", logPrefix).Info("Initialized sentry")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	connectCtx, cancelConnect := context.WithTimeout(ctx, 30*time.Second)
	mongoClient, err := store.Connect(connectCtx, opts)
	cancelConnect()
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)
	log.WithField("prefix", logPrefix).Info("Initialized mongo store")

	cfg, err := loader.ConfigFromViper()
	if err != nil {
		log.Panicf("loader configuration with error: %s", err)
	}

	// run metrics, exposed at /metrics
	reporter := promreporter.NewReporter(promreporter.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:         "corona",
		Tags:           map[string]string{},
		CachedReporter: reporter,
		Separator:      promreporter.DefaultSeparator,
	}, time.Second)
	defer closer.Close()

	httpClient := &http.Client{
		Timeout: cfg.FetchTimeout,
	}

	l := loader.New(
		cfg,
		gis.New(httpClient, cfg.Snapshot),
		github.New(httpClient, cfg.SeriesBaseURL),
		mStore,
		scope,
	)

	scheduleDone := make(chan struct{})
	go func() {
		l.Schedule(ctx)
		close(scheduleDone)
	}()

	// Init http server
	server := api.NewServer(mStore, l, reporter.HTTPHandler())
	log.WithField("prefix", logPrefix).Info("Initialized http server")

	go func() {
		if err := server.Run(":" + viper.GetString("server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("prefix", logPrefix).Error(err)
			c <- syscall.SIGTERM
		}
	}()

	<-c
	log.Info("Server is preparing to shutdown")
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	log.Info("Shutdown status api server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server Shutdown:", err)
	}

	select {
	case <-scheduleDone:
	case <-shutdownCtx.Done():
		log.Warn("run still in progress at shutdown")
	}

	log.Info("Shutting down db store")
	mStore.Close()

	sentry.Flush(5 * time.Second)
}
