package draft_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/auth"
	"github.com/saulo-duarte/exam-portal/internal/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	drafts []draft.Draft
	err    error
	user   string
}

func (f *fakeProvider) SendPrompt(_ context.Context, _, user string) ([]draft.Draft, error) {
	f.user = user
	return f.drafts, f.err
}

func TestParseDrafts(t *testing.T) {
	t.Run("Fenced", func(t *testing.T) {
		raw := "```json\n[{\"text\":\"2+2?\",\"options\":[\"3\",\"4\"],\"correctIndex\":1,\"marks\":2}]\n```"
		drafts, err := draft.ParseDrafts(raw)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, "2+2?", drafts[0].Text)
		assert.Equal(t, 1, drafts[0].CorrectIndex)
	})

	t.Run("Bare", func(t *testing.T) {
		drafts, err := draft.ParseDrafts(` [{"text":"q","options":["a"],"correctIndex":0}] `)
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := draft.ParseDrafts("  ")
		assert.ErrorIs(t, err, draft.ErrEmptyReply)
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, err := draft.ParseDrafts("sorry, I can't help with that")
		assert.Error(t, err)
	})
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 3, draft.ClampCount(0))
	assert.Equal(t, 3, draft.ClampCount(-4))
	assert.Equal(t, 7, draft.ClampCount(7))
	assert.Equal(t, 10, draft.ClampCount(50))
}

func TestGenerateDrafts(t *testing.T) {
	ctx := context.Background()

	t.Run("Unavailable", func(t *testing.T) {
		_, err := draft.NewService(nil).GenerateDrafts(ctx, draft.DraftRequest{Topic: "optics"})
		assert.ErrorIs(t, err, draft.ErrUnavailable)
	})

	t.Run("FiltersAndDefaults", func(t *testing.T) {
		p := &fakeProvider{drafts: []draft.Draft{
			{Text: "good", Options: []string{"a", "b"}, CorrectIndex: 1},
			{Text: "bad index", Options: []string{"a", "b"}, CorrectIndex: 2},
			{Text: "negative", Options: []string{"a"}, CorrectIndex: -1},
			{Text: "  ", Options: []string{"a"}, CorrectIndex: 0},
			{Text: "heavy", Options: []string{"a", "b", "c"}, CorrectIndex: 0, Marks: 4},
			{Text: "over the count", Options: []string{"a"}, CorrectIndex: 0},
		}}

		drafts, err := draft.NewService(p).GenerateDrafts(ctx, draft.DraftRequest{Topic: "optics", Count: 2})
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		assert.Equal(t, "good", drafts[0].Text)
		assert.Equal(t, 1, drafts[0].Marks)
		assert.Equal(t, "heavy", drafts[1].Text)
		assert.Equal(t, 4, drafts[1].Marks)

		assert.Contains(t, p.user, "Write 2 multiple-choice questions about \"optics\" with medium difficulty")
	})

	t.Run("ProviderError", func(t *testing.T) {
		boom := errors.New("quota")
		_, err := draft.NewService(&fakeProvider{err: boom}).GenerateDrafts(ctx, draft.DraftRequest{Topic: "optics"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestHandler(t *testing.T) {
	p := &fakeProvider{drafts: []draft.Draft{{Text: "q", Options: []string{"a", "b"}, CorrectIndex: 0}}}
	h := draft.NewHandler(draft.NewService(p))

	call := func(role, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		req = req.WithContext(auth.WithUserClaims(req.Context(), &auth.UserClaims{UserID: "u1", Role: role}))
		rec := httptest.NewRecorder()
		h.GenerateDrafts(rec, req)
		return rec
	}

	t.Run("StudentForbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call("Student", `{"topic":"optics"}`).Code)
	})

	t.Run("TeacherAllowed", func(t *testing.T) {
		rec := call("Teacher", `{"topic":"optics"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), `"correctIndex":0`))
	})

	t.Run("MissingTopic", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, call("Admin", `{}`).Code)
	})

	t.Run("Unconfigured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"topic":"optics"}`))
		req = req.WithContext(auth.WithUserClaims(req.Context(), &auth.UserClaims{UserID: "u1", Role: "Teacher"}))
		rec := httptest.NewRecorder()
		draft.NewHandler(draft.NewService(nil)).GenerateDrafts(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
