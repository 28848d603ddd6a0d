package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"book-summarizer/backend/internal/agent"
	"book-summarizer/backend/internal/agent/deps"
	"book-summarizer/backend/internal/agent/failure"
	"book-summarizer/backend/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryJSON = `{"title":"Atomic Habits","author":"James Clear","foreword":"Tiny changes, remarkable results.",` +
	`"whoIsItFor":["Anyone building habits"],"keyTakeaways":[{"title":"The 1% Rule","description":"Small gains compound."}],` +
	`"actionableSteps":["Start with a two-minute habit"],"coreConcepts":["You fall to the level of your systems"]}`

// fakeLLM answers summary prompts with summaryJSON and chat prompts with chatReply
type fakeLLM struct {
	summaryErr error
	chatReply  string
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	if strings.Contains(prompt, "The user is asking:") {
		return f.chatReply, nil
	}
	if f.summaryErr != nil {
		return "", f.summaryErr
	}
	return "```json\n" + summaryJSON + "\n```", nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, llm deps.LLMClient) *gin.Engine {
	t.Helper()

	tmpl, err := view.New()
	require.NoError(t, err)

	s := agent.NewSummarizer(llm, agent.NewInMemoryTranscriptRepository(time.Hour), agent.Options{Timeout: time.Second})
	h := New(s, nil, nil)

	r := gin.New()
	r.UseRawPath = true
	r.SetHTMLTemplate(tmpl)
	h.RegisterHealth(r)
	h.RegisterPages(r)
	h.RegisterAPI(r.Group("/api"))
	r.NoRoute(h.HandleNoRoute)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error, body.Code
}

func TestSummarizeAPI(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	w := doJSON(r, http.MethodPost, "/api/summary", `{"title":"Atomic Habits","author":"James Clear"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Atomic Habits", got["title"])
	assert.Len(t, got["keyTakeaways"], 1)
}

func TestSummarizeAPIMarkdown(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/summary", strings.NewReader(`{"title":"Atomic Habits"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/markdown")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.True(t, strings.HasPrefix(w.Body.String(), "# Atomic Habits\n"))
}

func TestSummarizeAPIErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{name: "missing title", body: `{"author":"X"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "blank title", body: `{"title":"   "}`, wantStatus: http.StatusBadRequest, wantCode: "TITLE_REQUIRED", wantMsg: msgTitleRequired},
		{name: "auth", body: `{"title":"X"}`, err: failure.New(failure.Auth, "401"), wantStatus: http.StatusBadGateway, wantCode: "AUTH_ERROR",
			wantMsg: "Invalid API key. Please check your Gemini API key."},
		{name: "rate limit", body: `{"title":"X"}`, err: failure.New(failure.RateLimit, "429"), wantStatus: http.StatusTooManyRequests, wantCode: "RATE_LIMITED",
			wantMsg: "API quota exceeded. Please try again later."},
		{name: "unavailable", body: `{"title":"X"}`, err: failure.New(failure.ServiceUnavailable, "503"), wantStatus: http.StatusServiceUnavailable,
			wantCode: "SERVICE_UNAVAILABLE", wantMsg: "The AI service is temporarily unavailable. Please try again in a moment."},
		{name: "parse", body: `{"title":"X"}`, err: failure.New(failure.Parse, "no JSON object found"), wantStatus: http.StatusBadGateway, wantCode: "PARSE_ERROR",
			wantMsg: "Failed to parse the summary. Please try again."},
		{name: "request", body: `{"title":"X"}`, err: failure.New(failure.Request, "boom"), wantStatus: http.StatusInternalServerError, wantCode: "REQUEST_ERROR",
			wantMsg: "Failed to generate summary. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &fakeLLM{summaryErr: tt.err})

			w := doJSON(r, http.MethodPost, "/api/summary", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			msg, code := decodeError(t, w)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}

func TestWithoutCredential(t *testing.T) {
	client, err := agent.NewGeminiLLMClient(context.Background(), agent.GeminiConfig{})
	require.NoError(t, err)
	r := newTestRouter(t, client)

	w := doJSON(r, http.MethodPost, "/api/summary", `{"title":"Deep Work"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	msg, code := decodeError(t, w)
	assert.Equal(t, "CONFIG_ERROR", code)
	assert.Equal(t, "API key not configured. Please add GEMINI_API_KEY to your environment.", msg)

	w = doGet(r, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doGet(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "unconfigured", health.Generator)
}

func TestHealthReady(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	assert.Equal(t, http.StatusOK, doGet(r, "/ready").Code)

	w := doGet(r, "/health")
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 0, health.OpenChats)
}

func TestChatAPI(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{chatReply: "Start with something that takes two minutes."})

	w := doJSON(r, http.MethodPost, "/api/chat", `{"summary":`+summaryJSON+`}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var opened ChatResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	require.NotEmpty(t, opened.SessionID)
	require.Len(t, opened.Messages, 1)
	assert.Contains(t, opened.Messages[0].Content, `explore "Atomic Habits" by James Clear`)

	messagesPath := "/api/chat/" + opened.SessionID + "/messages"

	w = doJSON(r, http.MethodPost, messagesPath, `{"message":"How do I start?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var got ChatResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "Start with something that takes two minutes.", got.Messages[2].Content)

	w = doJSON(r, http.MethodPost, messagesPath, `{"message":"`+strings.Repeat("a", MaxMessageLength+1)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, code := decodeError(t, w)
	assert.Equal(t, "MESSAGE_TOO_LONG", code)

	w = doJSON(r, http.MethodPost, messagesPath, `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/chat/"+opened.SessionID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodPost, messagesPath, `{"message":"Still there?"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	_, code = decodeError(t, w)
	assert.Equal(t, "SESSION_NOT_FOUND", code)

	w = doJSON(r, http.MethodDelete, "/api/chat/"+opened.SessionID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatAPIRejectsBadSummary(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	w := doJSON(r, http.MethodPost, "/api/chat", `{"summary":{"title":"X","author":"Y"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, code := decodeError(t, w)
	assert.Equal(t, "INVALID_SUMMARY", code)

	w = doJSON(r, http.MethodPost, "/api/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLandingAndSearchPages(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	w := doGet(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Get the insights from any book in minutes, not hours")

	w = doGet(r, "/summary/?title=Deep+Work")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/summary/Deep%20Work", w.Header().Get("Location"))

	w = doGet(r, "/summary/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Get Book Summary")

	w = doGet(r, "/summary/Deep%20Work")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Deep Work"`)

	w = doGet(r, "/summary/AC%2FDC")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="AC/DC"`)
}

func TestSummaryForm(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	w := doForm(r, "/summary", url.Values{"title": {"Atomic Habits"}, "author": {""}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Start with a two-minute habit")
	assert.Contains(t, body, `action="/summary/chat"`)

	w = doForm(r, "/summary", url.Values{"title": {"  "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgTitleRequired)
}

func TestSummaryFormShowsMappedError(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{summaryErr: failure.New(failure.RateLimit, "429")})

	w := doForm(r, "/summary", url.Values{"title": {"Atomic Habits"}})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "API quota exceeded. Please try again later.")
	assert.Contains(t, w.Body.String(), `value="Atomic Habits"`)
}

func TestChatOverlayFlow(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{chatReply: "Use **habit stacking**."})

	w := doForm(r, "/summary/chat", url.Values{"summary": {summaryJSON}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	chatPath := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(chatPath, "/chat/"))

	w = doGet(r, chatPath)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ask me anything about the book")

	w = doForm(r, chatPath, url.Values{"message": {"How do I keep going?"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, chatPath, w.Header().Get("Location"))

	w = doGet(r, chatPath)
	body := w.Body.String()
	assert.Contains(t, body, "How do I keep going?")
	assert.Contains(t, body, "<strong>habit stacking</strong>")

	w = doForm(r, chatPath, url.Values{"message": {""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgQuestionRequired)

	w = doForm(r, chatPath+"/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Who This Book Is For")

	w = doGet(r, chatPath)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doForm(r, chatPath, url.Values{"message": {"Hello?"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatFormRejectsLongMessage(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{chatReply: "Keep going."})

	w := doForm(r, "/summary/chat", url.Values{"summary": {summaryJSON}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	chatPath := w.Header().Get("Location")

	long := strings.Repeat("é", MaxMessageLength+1)
	w = doForm(r, chatPath, url.Values{"message": {long}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgMessageTooLong)

	w = doForm(r, chatPath, url.Values{"message": {strings.Repeat("é", MaxMessageLength)}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = doGet(r, chatPath)
	assert.NotContains(t, w.Body.String(), long)
}

func TestChatOverlayKeepsPostedSummary(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{chatReply: "Sure."})
	posted := strings.Replace(summaryJSON, `"Anyone building habits"`, `"Developers who write __init__ methods"`, 1)

	w := doForm(r, "/summary/chat", url.Values{"summary": {posted}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = doForm(r, w.Header().Get("Location")+"/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<li>Developers who write __init__ methods</li>")
}

func TestOpenChatFormRejectsTamperedSummary(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	w := doForm(r, "/summary/chat", url.Values{"summary": {`{"title":"X"}`}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{})

	w := doGet(r, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	_, code := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", code)

	w = doGet(r, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), msgPageNotFound)
}
