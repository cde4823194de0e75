package main

import (
	"context"
	"flag"
	"time"

	apiHttp "saarthi/internal/api/http"
	"saarthi/internal/controllers"
	mongoRepo "saarthi/internal/repository/mongo"
	"saarthi/internal/repository/postgres"
	"saarthi/internal/usecasees"
)

const appName = "saarthi"

func main() {
	var app App
	var confFileName string

	app.Name = appName

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogRus()

	if err := app.initLoki(); err != nil {
		panic(err)
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.InitMetrics()
	app.initFiber()

	pollInterval, err := time.ParseDuration(app.Config.PollInterval)
	if err != nil {
		panic(err)
	}

	refreshInterval, err := time.ParseDuration(app.Config.TickerRefreshInterval)
	if err != nil {
		panic(err)
	}

	orderRepo := postgres.NewOrderRepository(app.DB)
	userRepo := mongoRepo.NewUserRepository(app.Mongo)

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.LogRus,
	)
	cryptoController := controllers.NewCryptoController(
		app.Config.ExchangeSecretKey,
	)
	tgmController := controllers.NewTgmController(
		app.TGM,
		app.TgmChatID,
	)
	authController := controllers.NewAuthController(
		clientController,
		app.Config.AuthURL,
		app.LogRus,
	)
	exchangeController := controllers.NewExchangeController(
		clientController,
		cryptoController,
		app.Config.ExchangeURL,
		app.Config.ExchangeApiKey,
		app.LogRus,
	)

	queue := usecasees.NewOrderQueue()
	registry := usecasees.NewConnRegistry()

	priceUseCase := usecasees.NewPriceUseCase(
		exchangeController,
		registry,
		app.Metrics.Order,
		pollInterval,
		refreshInterval,
		app.LogRus,
		app.PromTail,
	)

	orderUseCase := usecasees.NewOrderUseCase(
		exchangeController,
		tgmController,
		orderRepo,
		userRepo,
		priceUseCase,
		queue,
		app.Metrics.Order,
		app.LogRus,
		app.PromTail,
	)

	ctx := context.Background()

	if err := priceUseCase.Monitoring(ctx); err != nil {
		app.LogRus.Error(err)
	}

	if err := priceUseCase.Broadcasting(ctx); err != nil {
		app.LogRus.Error(err)
	}

	if err := app.initCron(orderUseCase.RunCycle, orderUseCase.ResetDailyCounters); err != nil {
		panic(err)
	}

	apiHttp.RegisterHTTPEndpoints(
		app.Name,
		app.Fiber,
		orderUseCase,
		priceUseCase,
		exchangeController,
		authController,
		registry,
		app.LogRus,
	)

	if err := app.Fiber.Listen(app.Config.HTTPAddr); err != nil {
		app.LogRus.Fatal(err)
	}
}
