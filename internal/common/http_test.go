package common_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sarpt/playlist-web-api/internal/common"
)

var errMissing = errors.New("missing")

func postForm(handler http.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()

	handler(res, req)
	return res
}

func decodeFormResponse(t *testing.T, res *httptest.ResponseRecorder) common.FormResponse {
	t.Helper()

	var out common.FormResponse
	err := json.Unmarshal(res.Body.Bytes(), &out)
	if err != nil {
		t.Fatalf("Could not decode response %s: %s", res.Body.String(), err)
	}

	return out
}

func TestCreateFormHandler_CallsHandlersInOrder(t *testing.T) {
	// given
	calls := []string{}
	handler := common.CreateFormHandler(common.FormHandlerConfig{
		Arguments: map[string]common.FormArgument{
			"b": {
				Handle: func(req *http.Request) (common.Payload, error) {
					calls = append(calls, "b")
					return "second", nil
				},
			},
			"a": {
				Handle: func(req *http.Request) (common.Payload, error) {
					calls = append(calls, "a")
					return nil, nil
				},
			},
		},
	})

	// when
	res := postForm(handler, url.Values{"b": {"1"}, "a": {"1"}})

	// then
	if res.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", res.Code)
	}

	if strings.Join(calls, ",") != "a,b" {
		t.Errorf("Expected calls a,b, got %v", calls)
	}

	out := decodeFormResponse(t, res)
	if out.Payloads["b"] != "second" {
		t.Errorf("Expected payload of b to be returned, got %v", out.Payloads)
	}

	if _, ok := out.Payloads["a"]; ok {
		t.Errorf("Expected nil payload of a to be omitted")
	}
}

func TestCreateFormHandler_ValidationErrors(t *testing.T) {
	// given
	called := false
	handler := common.CreateFormHandler(common.FormHandlerConfig{
		Arguments: map[string]common.FormArgument{
			"flag": {
				Handle: func(req *http.Request) (common.Payload, error) {
					called = true
					return nil, nil
				},
				Validate: func(req *http.Request) error {
					return errors.New("not a flag")
				},
			},
		},
	})

	// when
	res := postForm(handler, url.Values{"flag": {"x"}, "unknown": {"1"}})

	// then
	if res.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", res.Code)
	}

	if called {
		t.Errorf("Expected handler not to be called on validation failure")
	}

	out := decodeFormResponse(t, res)
	if len(out.ArgumentErrors) != 2 {
		t.Errorf("Expected 2 argument errors, got %v", out.ArgumentErrors)
	}
}

func TestCreateFormHandler_NoArguments(t *testing.T) {
	// given
	handler := common.CreateFormHandler(common.FormHandlerConfig{})

	// when
	res := postForm(handler, url.Values{})

	// then
	if res.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", res.Code)
	}
}

func TestCreateFormHandler_ShouldHandleAndStatusForError(t *testing.T) {
	// given
	handler := common.CreateFormHandler(common.FormHandlerConfig{
		Arguments: map[string]common.FormArgument{
			"skipped": {
				Handle: func(req *http.Request) (common.Payload, error) {
					t.Errorf("Expected skipped handler not to be called")
					return nil, nil
				},
				ShouldHandle: func(req *http.Request) bool {
					return false
				},
			},
			"failing": {
				Handle: func(req *http.Request) (common.Payload, error) {
					return nil, errMissing
				},
			},
		},
		StatusForError: func(err error) int {
			if errors.Is(err, errMissing) {
				return http.StatusNotFound
			}

			return http.StatusInternalServerError
		},
	})

	// when
	res := postForm(handler, url.Values{"skipped": {"1"}, "failing": {"1"}})

	// then
	if res.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", res.Code)
	}

	out := decodeFormResponse(t, res)
	if out.GeneralError != errMissing.Error() {
		t.Errorf("Expected general error %s, got %s", errMissing, out.GeneralError)
	}
}

func TestCreateFormHandler_ExclusiveArgumentsRejectedTogether(t *testing.T) {
	// given
	calls := 0
	countingHandler := func(req *http.Request) (common.Payload, error) {
		calls++
		return nil, nil
	}
	handler := common.CreateFormHandler(common.FormHandlerConfig{
		Arguments: map[string]common.FormArgument{
			"first":  {Exclusive: true, Handle: countingHandler},
			"second": {Exclusive: true, Handle: countingHandler},
			"flag":   {Handle: countingHandler},
		},
	})

	// when
	res := postForm(handler, url.Values{"first": {"1"}, "second": {"1"}, "flag": {"1"}})

	// then
	if res.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", res.Code)
	}

	if calls != 0 {
		t.Errorf("Expected no handler to be called, got %d calls", calls)
	}

	out := decodeFormResponse(t, res)
	if !strings.Contains(out.GeneralError, "first, second") {
		t.Errorf("Expected general error to name combined arguments, got %s", out.GeneralError)
	}

	// when
	res = postForm(handler, url.Values{"first": {"1"}, "flag": {"1"}})

	// then
	if res.Code != http.StatusOK || calls != 2 {
		t.Errorf("Expected exclusive argument with a regular one to be handled, got status %d and %d calls", res.Code, calls)
	}
}

func TestPathHandler(t *testing.T) {
	// given
	handler := common.PathHandler(common.PathHandlerConfig{
		AllowCORS: true,
		MethodHandlers: common.MethodHandlers{
			http.MethodGet: func(res http.ResponseWriter, req *http.Request) {
				res.WriteHeader(http.StatusTeapot)
			},
		},
	})

	cases := []struct {
		method string
		status int
	}{
		{http.MethodGet, http.StatusTeapot},
		{http.MethodHead, http.StatusOK},
		{http.MethodOptions, http.StatusOK},
		{http.MethodPost, http.StatusMethodNotAllowed},
	}

	for _, c := range cases {
		// when
		res := httptest.NewRecorder()
		handler(res, httptest.NewRequest(c.method, "/", nil))

		// then
		if res.Code != c.status {
			t.Errorf("Expected %s to return %d, got %d", c.method, c.status, res.Code)
		}

		if res.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("Expected CORS header for %s", c.method)
		}
	}
}
