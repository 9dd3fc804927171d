package rulesapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/requestid"
	"github.com/dmitrymomot/formrules/pkg/rulesapi"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestListPatterns(t *testing.T) {
	t.Parallel()

	rec := do(t, rulesapi.Router(nil), http.MethodGet, "/patterns")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	var got []rulesapi.PatternView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, len(validator.Names()))

	for i, name := range validator.Names() {
		assert.Equal(t, name, got[i].Name)
		p := validator.MustLookup(name)
		assert.Equal(t, p.Message, got[i].Message)
		assert.Equal(t, p.TranslationKey, got[i].TranslationKey)

		// The exported source must compile to the same behaviour.
		re, err := regexp.Compile(got[i].Pattern)
		require.NoError(t, err)
		for _, c := range []string{"", "Jo", "ab_12", "Abcdefg1", "-John"} {
			assert.Equal(t, p.Matches(c), re.MatchString(c), "%s %q", name, c)
		}
	}
}

func TestGetPattern(t *testing.T) {
	t.Parallel()
	h := rulesapi.Router(nil)

	t.Run("known", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/patterns/"+validator.PatternUsernameLength)
		require.Equal(t, http.StatusOK, rec.Code)

		var got rulesapi.PatternView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, validator.PatternUsernameLength, got.Name)
		assert.Equal(t, "Username must have at least 8 characters", got.Message)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/patterns/nope")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"unknown validation pattern"}`, rec.Body.String())
	})
}

func TestRouter_Misc(t *testing.T) {
	t.Parallel()
	h := rulesapi.Router(nil)

	rec := do(t, h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/patterns")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_AccessLogCarriesRequestID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	h := rulesapi.Router(log)

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set(requestid.Header, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "rulesapi", entry["component"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "/patterns", entry["path"])
}

func TestRouter_AccessLogRecordsNotFound(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := rulesapi.Router(logger.New(logger.WithOutput(buf)))

	rec := do(t, h, http.MethodGet, "/patterns/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, float64(rec.Body.Len()), entry["bytes"])
}

func TestRouter_OverLiveServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(rulesapi.Router(nil))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/patterns")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))
}
