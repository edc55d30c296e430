package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/storage"
)

func TestStore_CreateUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := &domain.User{
		ID:           "mm_user1",
		AgentName:    "Agent 7",
		EmailAddress: "agent7@moltmail.clawtism.com",
		Token:        "token_abc",
	}

	t.Run("首次创建成功", func(t *testing.T) {
		require.NoError(t, store.CreateUser(ctx, user))
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("同一地址再次创建冲突", func(t *testing.T) {
		dup := &domain.User{
			ID:           "mm_user2",
			AgentName:    "agent-7",
			EmailAddress: "agent7@moltmail.clawtism.com",
			Token:        "token_def",
		}
		err := store.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, storage.ErrEmailAddressTaken)
	})
}

func TestStore_UserLookups(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := &domain.User{
		ID:           "mm_user1",
		AgentName:    "Neo",
		EmailAddress: "neo@moltmail.clawtism.com",
		Token:        "token_neo",
	}
	require.NoError(t, store.CreateUser(ctx, user))

	t.Run("按令牌命中", func(t *testing.T) {
		got, err := store.GetUserByToken(ctx, "token_neo")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "mm_user1", got.ID)
	})

	t.Run("未知令牌返回nil", func(t *testing.T) {
		got, err := store.GetUserByToken(ctx, "token_unknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("按地址命中", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "neo@moltmail.clawtism.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Neo", got.AgentName)
	})

	t.Run("EmailExists", func(t *testing.T) {
		ok, err := store.EmailExists(ctx, "neo@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.EmailExists(ctx, "nobody@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("UpdateLastActive", func(t *testing.T) {
		require.NoError(t, store.UpdateLastActive(ctx, "mm_user1"))
		got, err := store.GetUserByToken(ctx, "token_neo")
		require.NoError(t, err)
		require.NotNil(t, got.LastActive)
	})
}

func TestStore_Emails(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"mm_e1", "mm_e2", "mm_e3"} {
		email := &domain.Email{
			ID:             id,
			SenderEmail:    "neo@moltmail.clawtism.com",
			SenderName:     "Neo",
			RecipientEmail: "trinity@moltmail.clawtism.com",
			Subject:        "hi",
			Body:           "there",
			SentAt:         base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.SaveEmail(ctx, email))
	}

	t.Run("收件箱按发送时间降序", func(t *testing.T) {
		emails, err := store.GetEmailsForUser(ctx, "trinity@moltmail.clawtism.com")
		require.NoError(t, err)
		require.Len(t, emails, 3)
		assert.Equal(t, "mm_e3", emails[0].ID)
		assert.Equal(t, "mm_e1", emails[2].ID)
		for _, e := range emails {
			assert.False(t, e.IsRead)
		}
	})

	t.Run("发件箱按发件人过滤", func(t *testing.T) {
		emails, err := store.GetSentEmails(ctx, "neo@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.Len(t, emails, 3)

		emails, err = store.GetSentEmails(ctx, "trinity@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.Empty(t, emails)
	})

	t.Run("未读计数与标记已读", func(t *testing.T) {
		count, err := store.GetUnreadCount(ctx, "trinity@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		require.NoError(t, store.MarkEmailAsRead(ctx, "mm_e2"))
		count, err = store.GetUnreadCount(ctx, "trinity@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("标记已读是幂等的", func(t *testing.T) {
		require.NoError(t, store.MarkEmailAsRead(ctx, "mm_e2"))
		count, err := store.GetUnreadCount(ctx, "trinity@moltmail.clawtism.com")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("标记不存在的邮件静默成功", func(t *testing.T) {
		assert.NoError(t, store.MarkEmailAsRead(ctx, "mm_missing"))
	})
}
