package eventlog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/eventlog"
	"github.com/saulo-duarte/exam-portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t, &eventlog.Event{})
	repo := eventlog.NewRepository(db)

	require.NoError(t, repo.Append(ctx, eventlog.ExamCreated, "exam-1", map[string]interface{}{"title": "Algebra"}))
	require.NoError(t, repo.Append(ctx, eventlog.ExamUpdated, "exam-1", map[string]interface{}{"title": "Algebra II"}))
	require.NoError(t, repo.Append(ctx, eventlog.ExamCreated, "exam-2", nil))

	events, err := repo.ListByKey(ctx, "exam-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, eventlog.ExamCreated, events[0].Type)
	assert.Equal(t, eventlog.ExamUpdated, events[1].Type)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(events[1].Data, &payload))
	assert.Equal(t, "Algebra II", payload["title"])
}

func TestAppendRollsBackWithTx(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t, &eventlog.Event{})
	repo := eventlog.NewRepository(db)

	boom := errors.New("boom")
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).Append(ctx, eventlog.ExamDeleted, "exam-1", nil); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	events, err := repo.ListByKey(ctx, "exam-1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAppendRejectsUnencodable(t *testing.T) {
	db := testutil.NewDB(t, &eventlog.Event{})
	err := eventlog.NewRepository(db).Append(context.Background(), eventlog.ExamCreated, "k", make(chan int))
	assert.Error(t, err)
}
