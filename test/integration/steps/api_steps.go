package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

func iSetHeaderTo(ctx context.Context, key, value string) error {
	GetTestContext(ctx).headers[key] = value
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).executeRequest(ctx, method, path)
}

func iSendRequestsTo(ctx context.Context, count int, method, path string) error {
	tc := GetTestContext(ctx)
	for i := 0; i < count; i++ {
		if err := tc.executeRequest(ctx, method, path); err != nil {
			return err
		}
	}
	return nil
}

func (tc *TestContext) executeRequest(ctx context.Context, method, path string) error {
	tc.startServer()

	req, err := http.NewRequestWithContext(ctx, method, tc.server.URL+path, nil)
	if err != nil {
		return err
	}
	for key, value := range tc.headers {
		req.Header.Set(key, value)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		tc.response.body = string(bodyBytes)
	} else {
		tc.response.body = responseBody
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return errors.New("no response received")
	}
	if tc.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, tc.response.status, tc.response.body)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	_, err := responseObject(ctx)
	return err
}

func theResponseFieldShouldBe(ctx context.Context, field, expectedValue string) error {
	body, err := responseObject(ctx)
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	body, err := responseObject(ctx)
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, expected int) error {
	body, err := responseObject(ctx)
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, body)
	}
	if len(items) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(items))
	}
	return nil
}

func theResponseHeaderShouldBe(ctx context.Context, key, expected string) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return errors.New("no response received")
	}
	if actual := tc.response.header.Get(key); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", key, expected, actual)
	}
	return nil
}

func aCachedReportShouldExistForPeriod(ctx context.Context, period string) error {
	tc := GetTestContext(ctx)
	keys, err := tc.redis.Keys(ctx, "farm:report:"+period+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) != 1 {
		return fmt.Errorf("expected one cached %s report, got %v", period, keys)
	}
	return nil
}

func noCachedReportShouldExist(ctx context.Context) error {
	tc := GetTestContext(ctx)
	keys, err := tc.redis.Keys(ctx, "farm:report:*").Result()
	if err != nil {
		return err
	}
	if len(keys) != 0 {
		return fmt.Errorf("expected no cached reports, got %v", keys)
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	tc := GetTestContext(ctx)
	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := tc.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func responseObject(ctx context.Context) (map[string]any, error) {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := tc.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", tc.response.body)
	}
	return body, nil
}

// getFieldValue walks a dot separated path such as "data.monthlyTrend.0.month".
func getFieldValue(object map[string]any, dotSeparatedField string) any {
	var field any = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
