package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"deadparty-backend/internal/domains/comment/model"
	usermodel "deadparty-backend/internal/domains/user/model"
)

func TestCommentToResponse(t *testing.T) {
	t.Parallel()

	comment := model.Comment{
		ID:        uuid.New(),
		ArticleID: uuid.New(),
		UserID:    uuid.New(),
		Content:   "sick set",
		Approved:  true,
		User:      &usermodel.Summary{ID: uuid.New(), Username: "fan1"},
		CreatedAt: time.Now(),
	}

	resp := comment.ToResponse()
	require.Equal(t, comment.ID, resp.ID)
	require.Equal(t, comment.ArticleID, resp.ArticleID)
	require.Equal(t, comment.Content, resp.Content)
	require.True(t, resp.Approved)
	require.Equal(t, comment.User, resp.User)

	// The wire shape carries the embedded user summary, not the raw user_id
	// column.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.NotContains(t, fields, "user_id")
	require.Contains(t, fields, "user")
}
