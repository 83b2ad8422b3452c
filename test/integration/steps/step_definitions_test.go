package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/usecase/category"
	"github.com/kakeibo/backend/internal/application/usecase/subscription"
	"github.com/kakeibo/backend/internal/application/usecase/summary"
	"github.com/kakeibo/backend/internal/application/usecase/transaction"
	"github.com/kakeibo/backend/internal/infra/server/router"
	"github.com/kakeibo/backend/internal/integration/adapters"
	"github.com/kakeibo/backend/internal/integration/cache"
	"github.com/kakeibo/backend/internal/integration/entrypoint/controller"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
	"github.com/kakeibo/backend/internal/integration/persistence"
	"github.com/kakeibo/backend/internal/integration/persistence/model"
	"github.com/kakeibo/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri                string
	headers            map[string]string
	client             *http.Client
	response           *response
	db                 *mock.Db
	accessToken        string
	currentCategoryID  int64
	lastTransactionID  int64
	lastSubscriptionID int64
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"categories":    &model.CategoryModel{},
			"transactions":  &model.TransactionModel{},
			"subscriptions": &model.SubscriptionModel{},
		}),
	}

	testDB = test.db
	if testClock == nil {
		testClock = mock.NewClock()
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Category setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^an inactive category exists with name "([^"]*)" and type "([^"]*)"$`, test.anInactiveCategoryExistsWithNameAndType)

	// Transaction setup steps
	ctx.Given(`^a transaction exists on "([^"]*)" of type "([^"]*)" with amount "([^"]*)" and description "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a categorized transaction exists on "([^"]*)" of type "([^"]*)" with amount "([^"]*)" and description "([^"]*)"$`, test.aCategorizedTransactionExists)

	// Subscription setup steps
	ctx.Given(`^a subscription exists named "([^"]*)" with amount "([^"]*)" and frequency "([^"]*)"$`, test.aSubscriptionExists)
	ctx.Given(`^an inactive subscription exists named "([^"]*)" with amount "([^"]*)" and frequency "([^"]*)"$`, test.anInactiveSubscriptionExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentCategoryID = 0
	t.lastTransactionID = 0
	t.lastSubscriptionID = 0
	testClock.Reset()

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			panic(err)
		}
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			subscriptionRepo := persistence.NewSubscriptionRepository(testDB.DbConn)

			summaryCache := cache.NewSummaryCache(mock.NewRedis(), 10*time.Minute)
			tokenService := adapters.NewTokenService(testJWTSecret)

			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)

			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)

			listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
			createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo, categoryRepo)
			updateSubscriptionUseCase := subscription.NewUpdateSubscriptionUseCase(subscriptionRepo, categoryRepo)
			activateSubscriptionUseCase := subscription.NewActivateSubscriptionUseCase(subscriptionRepo, testClock)
			deactivateSubscriptionUseCase := subscription.NewDeactivateSubscriptionUseCase(subscriptionRepo, testClock)
			getCostsUseCase := subscription.NewGetCostsUseCase(subscriptionRepo, categoryRepo)

			getMonthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(transactionRepo, categoryRepo, summaryCache, testClock)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)
			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
			)
			subscriptionController := controller.NewSubscriptionController(
				listSubscriptionsUseCase,
				createSubscriptionUseCase,
				updateSubscriptionUseCase,
				activateSubscriptionUseCase,
				deactivateSubscriptionUseCase,
				getCostsUseCase,
			)
			summaryController := controller.NewSummaryController(getMonthlySummaryUseCase)

			rateLimiter := middleware.NewRateLimiterWithConfig(10000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				transactionController,
				categoryController,
				subscriptionController,
				summaryController,
				rateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iAmAuthenticated() error {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "integration-test-user",
		ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	t.accessToken = tokenString
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	testClock.SetCurrentTime(parsed)
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	return t.createCategory(name, categoryType, true)
}

func (t *testContext) anInactiveCategoryExistsWithNameAndType(name, categoryType string) error {
	return t.createCategory(name, categoryType, false)
}

func (t *testContext) createCategory(name, categoryType string, isActive bool) error {
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		Name:      name,
		Type:      categoryType,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}
	t.currentCategoryID = categoryModel.ID
	return nil
}

func (t *testContext) aTransactionExists(date, txnType, amount, description string) error {
	return t.createTransaction(date, txnType, amount, description, nil)
}

func (t *testContext) aCategorizedTransactionExists(date, txnType, amount, description string) error {
	if t.currentCategoryID == 0 {
		return errors.New("no category has been created yet")
	}
	categoryID := t.currentCategoryID
	return t.createTransaction(date, txnType, amount, description, &categoryID)
}

func (t *testContext) createTransaction(date, txnType, amount, description string, categoryID *int64) error {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		Date:        parsedDate,
		Description: description,
		Amount:      parsedAmount,
		Type:        txnType,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}
	t.lastTransactionID = transactionModel.ID
	return nil
}

func (t *testContext) aSubscriptionExists(name, amount, frequency string) error {
	return t.createSubscription(name, amount, frequency, true)
}

func (t *testContext) anInactiveSubscriptionExists(name, amount, frequency string) error {
	return t.createSubscription(name, amount, frequency, false)
}

func (t *testContext) createSubscription(name, amount, frequency string, isActive bool) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	subscriptionModel := &model.SubscriptionModel{
		Name:      name,
		Amount:    parsedAmount,
		Frequency: frequency,
		StartDate: now.AddDate(0, -1, 0),
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.db.DbConn.Create(subscriptionModel).Error; err != nil {
		return err
	}
	t.lastSubscriptionID = subscriptionModel.ID
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", strconv.FormatInt(t.currentCategoryID, 10))
	content = strings.ReplaceAll(content, "{{transaction_id}}", strconv.FormatInt(t.lastTransactionID, 10))
	content = strings.ReplaceAll(content, "{{subscription_id}}", strconv.FormatInt(t.lastSubscriptionID, 10))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created IDs so later steps can reference them.
	if idValue, ok := responseBody["id"].(float64); ok {
		id := int64(idValue)
		switch {
		case responseBody["frequency"] != nil:
			t.lastSubscriptionID = id
		case responseBody["date"] != nil:
			t.lastTransactionID = id
		default:
			t.currentCategoryID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.fieldValue(field)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	value, err := t.fieldValue(field)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value, exists := body[field]
	if !exists {
		return fmt.Errorf("field '%s' not present in response: %v", field, body)
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, count int) error {
	value, err := t.fieldValue(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(list) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(list))
	}
	return nil
}

// fieldValue resolves dot-separated paths in the response body. Numeric path
// segments index into lists, so "data.0.id" works.
func (t *testContext) fieldValue(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	var current any = t.response.body
	for _, segment := range strings.Split(field, ".") {
		switch typed := current.(type) {
		case map[string]any:
			current = typed[segment]
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(typed) {
				return nil, fmt.Errorf("invalid list index '%s' in field '%s'", segment, field)
			}
			current = typed[index]
		default:
			return nil, fmt.Errorf("cannot descend into field '%s' at '%s'", field, segment)
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}
