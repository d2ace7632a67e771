// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/farm-manager/backend/config"
	"github.com/farm-manager/backend/internal/infra/dependency"
	"github.com/farm-manager/backend/internal/integration/persistence/model"
	"github.com/farm-manager/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// Infrastructure
	db    *mock.Db
	redis *redis.Client
	clock *mock.Time

	// HTTP
	cfg          *config.Config
	cacheEnabled bool
	server       *httptest.Server
	client       *http.Client
	headers      map[string]string
	response     *response

	// Seeded rows
	cropTypes map[string]uuid.UUID
	plantings map[string]uuid.UUID
	tagSeq    int
}

type response struct {
	status int
	header http.Header
	body   any
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			db:           mock.NewDb("farm_manager", model.AllModels()...),
			redis:        mock.NewRedis(),
			clock:        mock.NewTime(),
			cfg:          config.Load(),
			cacheEnabled: true,
			client:       &http.Client{Timeout: 10 * time.Second},
			headers:      make(map[string]string),
			cropTypes:    make(map[string]uuid.UUID),
			plantings:    make(map[string]uuid.UUID),
		}
		tc.cfg.Server.Environment = "test"

		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerEnvironmentSteps(ctx)
	registerFarmSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// startServer wires the application once per scenario, after the scenario's
// configuration steps have run.
func (tc *TestContext) startServer() {
	if tc.server != nil {
		return
	}

	var redisClient *redis.Client
	if tc.cacheEnabled {
		redisClient = tc.redis
	}

	injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, redisClient, tc.clock.Now)
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
}

// registerEnvironmentSteps registers clock and configuration steps.
func registerEnvironmentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^the report cache is disabled$`, theReportCacheIsDisabled)
	ctx.Step(`^the report rate limit is (\d+) requests per minute$`, theReportRateLimitIs)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)"$`, iSendRequestsTo)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, theResponseHeaderShouldBe)
	ctx.Step(`^a cached report should exist for period "([^"]*)"$`, aCachedReportShouldExistForPeriod)
	ctx.Step(`^no cached report should exist$`, noCachedReportShouldExist)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	GetTestContext(ctx).clock.SetCurrentTime(at.UTC())
	return nil
}

func theReportCacheIsDisabled(ctx context.Context) error {
	GetTestContext(ctx).cacheEnabled = false
	return nil
}

func theReportRateLimitIs(ctx context.Context, limit int) error {
	tc := GetTestContext(ctx)
	tc.cfg.Report.RateLimit = limit
	tc.cfg.Report.RateLimitWindow = time.Minute
	return nil
}
