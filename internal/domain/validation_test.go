package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgentName(t *testing.T) {
	t.Run("合法名称返回去除空白后的形式", func(t *testing.T) {
		name, err := ValidateAgentName("  Agent 7!  ")
		require.NoError(t, err)
		assert.Equal(t, "Agent 7!", name)
	})

	t.Run("空名称被拒绝", func(t *testing.T) {
		_, err := ValidateAgentName("   ")
		assert.ErrorIs(t, err, ErrAgentNameRequired)
	})

	t.Run("1字符被拒绝", func(t *testing.T) {
		_, err := ValidateAgentName("a")
		assert.ErrorIs(t, err, ErrAgentNameTooShort)
	})

	t.Run("2字符被接受", func(t *testing.T) {
		name, err := ValidateAgentName("ab")
		require.NoError(t, err)
		assert.Equal(t, "ab", name)
	})

	t.Run("50字符被接受", func(t *testing.T) {
		name, err := ValidateAgentName(strings.Repeat("x", 50))
		require.NoError(t, err)
		assert.Len(t, name, 50)
	})

	t.Run("51字符被拒绝", func(t *testing.T) {
		_, err := ValidateAgentName(strings.Repeat("x", 51))
		assert.ErrorIs(t, err, ErrAgentNameTooLong)
	})

	t.Run("长度按字符而非字节计算", func(t *testing.T) {
		// 单个 CJK 字符占 3 字节，但仍只算 1 个字符
		_, err := ValidateAgentName("中")
		assert.ErrorIs(t, err, ErrAgentNameTooShort)

		name, err := ValidateAgentName(strings.Repeat("中", 50))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("中", 50), name)

		_, err = ValidateAgentName(strings.Repeat("中", 51))
		assert.ErrorIs(t, err, ErrAgentNameTooLong)
	})
}

func TestDeriveAddress(t *testing.T) {
	t.Run("小写化并剔除非字母数字字符", func(t *testing.T) {
		addr := DeriveAddress("Agent 7!", "moltmail.clawtism.com")
		assert.Equal(t, "agent7@moltmail.clawtism.com", addr)
	})

	t.Run("派生是确定性的", func(t *testing.T) {
		a := DeriveAddress("Neo Cortex", "moltmail.clawtism.com")
		b := DeriveAddress("Neo Cortex", "moltmail.clawtism.com")
		assert.Equal(t, a, b)
		assert.Equal(t, "neocortex@moltmail.clawtism.com", a)
	})

	t.Run("归一化后可能冲突的名称得到同一地址", func(t *testing.T) {
		a := DeriveAddress("agent-7", "moltmail.clawtism.com")
		b := DeriveAddress("Agent 7", "moltmail.clawtism.com")
		assert.Equal(t, a, b)
	})
}

func TestValidateMessage(t *testing.T) {
	t.Run("完整字段通过", func(t *testing.T) {
		err := ValidateMessage("x@moltmail.clawtism.com", "hello", "body")
		assert.NoError(t, err)
	})

	t.Run("缺失字段被拒绝", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMessage("", "s", "b"), ErrMissingMailFields)
		assert.ErrorIs(t, ValidateMessage("t", "", "b"), ErrMissingMailFields)
		assert.ErrorIs(t, ValidateMessage("t", "s", ""), ErrMissingMailFields)
	})

	t.Run("subject恰好200字符通过", func(t *testing.T) {
		assert.NoError(t, ValidateMessage("t", strings.Repeat("s", 200), "b"))
	})

	t.Run("subject201字符被拒绝", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMessage("t", strings.Repeat("s", 201), "b"), ErrSubjectTooLong)
	})

	t.Run("body恰好10000字符通过", func(t *testing.T) {
		assert.NoError(t, ValidateMessage("t", "s", strings.Repeat("b", 10000)))
	})

	t.Run("body10001字符被拒绝", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMessage("t", "s", strings.Repeat("b", 10001)), ErrBodyTooLong)
	})

	t.Run("subject与body长度按字符而非字节计算", func(t *testing.T) {
		assert.NoError(t, ValidateMessage("t", strings.Repeat("中", 200), "b"))
		assert.ErrorIs(t, ValidateMessage("t", strings.Repeat("中", 201), "b"), ErrSubjectTooLong)

		assert.NoError(t, ValidateMessage("t", "s", strings.Repeat("中", 10000)))
		assert.ErrorIs(t, ValidateMessage("t", "s", strings.Repeat("中", 10001)), ErrBodyTooLong)
	})
}
