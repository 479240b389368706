//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/farmx/ledger-backend/config"
	"github.com/farmx/ledger-backend/internal/infra/dependency"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
	"github.com/farmx/ledger-backend/test/integration/mock"
)

// defaultToday is the business date every scenario starts on.
const defaultToday = "2024-06-15"

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response
	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
	location *time.Location
	aliases  map[string]string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var serverInit sync.Once
var testServer *httptest.Server
var testClock = mock.NewTime()

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testClock,
		redis:    mock.NewRedis(),
		db: mock.NewDb(map[string]any{
			"vendors":               &model.VendorModel{},
			"transactions":          &model.TransactionModel{},
			"merchant_transactions": &model.MerchantTransactionModel{},
			"merchant_expenses":     &model.MerchantExpenseModel{},
			"merchant_commissions":  &model.MerchantCommissionModel{},
			"merchant_payments":     &model.MerchantPaymentModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Ledger setup steps
	ctx.Given(`^a (farmer|merchant) named "([^"]*)" exists$`, test.aVendorNamedExists)
	ctx.Given(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Cache assertion steps
	ctx.Then(`^the cache should contain (\d+) keys matching "([^"]*)"$`, test.theCacheShouldContainKeysMatching)
	ctx.Given(`^the cache entries expire$`, test.theCacheEntriesExpire)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.aliases = make(map[string]string)

	cfg := config.Load()
	t.location = cfg.Ledger.Location()
	if err := t.todayIs(defaultToday); err != nil {
		return err
	}

	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() error {
	var err error
	serverInit.Do(func() {
		cfg := config.Load()

		var injector *dependency.Injector
		injector, err = dependency.NewInjector(
			cfg,
			t.db.DbConn,
			t.redis.Client,
			dependency.WithClock(t.timeMock.Now),
		)
		if err != nil {
			return
		}

		testServer = httptest.NewServer(injector.Router.Setup("test"))
	})
	if err != nil {
		return err
	}
	if testServer == nil {
		return errors.New("test server failed to start")
	}

	t.server = testServer
	return nil
}
