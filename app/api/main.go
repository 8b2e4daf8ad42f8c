package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	bValidator "github.com/x-xyz/marketplace/base/validator"
	"github.com/x-xyz/marketplace/domain"
	mmiddleware "github.com/x-xyz/marketplace/middleware"
	"github.com/x-xyz/marketplace/service/chain"
	pricefeed_service "github.com/x-xyz/marketplace/service/pricefeed"
	"github.com/x-xyz/marketplace/service/query"
	"github.com/x-xyz/marketplace/service/token"
	auth_delivery "github.com/x-xyz/marketplace/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/marketplace/stores/auth/usecase"
	currency_delivery "github.com/x-xyz/marketplace/stores/currency/delivery/http"
	currency_repository "github.com/x-xyz/marketplace/stores/currency/repository"
	currency_usecase "github.com/x-xyz/marketplace/stores/currency/usecase"
	event_delivery "github.com/x-xyz/marketplace/stores/event/delivery/http"
	event_publisher "github.com/x-xyz/marketplace/stores/event/publisher"
	event_repository "github.com/x-xyz/marketplace/stores/event/repository"
	hc_delivery "github.com/x-xyz/marketplace/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketplace/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketplace/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/marketplace/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/marketplace/stores/listing/repository"
	listing_usecase "github.com/x-xyz/marketplace/stores/listing/usecase"

	"github.com/x-xyz/marketplace/service/cache/provider/primitive"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("operator.key"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc20Service := token.NewErc20(chainService)
	erc721Service := token.NewErc721(chainService)
	nativeService := token.NewNativeTransferor(chainService)
	pricefeedService := pricefeed_service.New(chainService)

	chainId := domain.ChainId(viper.GetInt32("marketplace.chainId"))
	owner := domain.Address(viper.GetString("marketplace.owner"))
	engine := domain.Address(viper.GetString("marketplace.engine"))
	treasury := domain.Address(viper.GetString("marketplace.treasury"))
	treasuryPct := viper.GetInt32("marketplace.treasuryPercentage")
	maxTerm := viper.GetDuration("marketplace.maxTerm")
	baseline := domain.Address(viper.GetString("marketplace.baselineCurrency"))
	nativeSentinel := domain.Address(viper.GetString("marketplace.nativeCurrency"))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, primitive.NewPrimitive("healthcheck", 1))
	eventRepo := event_repository.NewEventRepo(q)
	currencyRepo := currency_repository.NewCurrencyRepo(q)
	listingRepo := listing_repository.NewListingRepo(q)

	publisher := event_publisher.New(eventRepo)
	hc := hc_usecase.New(hcRepo)
	currency := currency_usecase.NewCurrencyUsecase(&currency_usecase.CurrencyUsecaseCfg{
		ChainId:   chainId,
		Owner:     owner,
		Baseline:  baseline,
		Native:    nativeSentinel,
		Repo:      currencyRepo,
		Erc20:     erc20Service,
		Pricefeed: pricefeedService,
		Publisher: publisher,
	})
	listing := listing_usecase.NewListingUsecase(&listing_usecase.ListingUsecaseCfg{
		ChainId:            chainId,
		Owner:              owner,
		Engine:             engine,
		Treasury:           treasury,
		TreasuryPercentage: treasuryPct,
		MaxTerm:            maxTerm,
		Repo:               listingRepo,
		Currency:           currency,
		Erc20:              erc20Service,
		Erc721:             erc721Service,
		Native:             nativeService,
		Publisher:          publisher,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	currency_delivery.New(e, authMiddleware, currency)
	listing_delivery.New(e, authMiddleware, listing)
	event_delivery.New(e, eventRepo)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
