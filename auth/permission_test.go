package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePermission(t *testing.T) {
	blob := []byte(`a:2:{s:8:"ban_post";s:1:"1";s:18:"manage_topic_state";s:1:"0";}`)

	perm := ParsePermission(blob)
	assert.True(t, perm.BanPost)
	assert.False(t, perm.ManageTopicState)
	assert.False(t, perm.ManageUser)
}

func TestParsePermission_IntValues(t *testing.T) {
	blob := []byte(`a:2:{s:8:"ban_post";i:1;s:18:"manage_topic_state";i:0;}`)

	perm := ParsePermission(blob)
	assert.True(t, perm.BanPost)
	assert.False(t, perm.ManageTopicState)
}

func TestParsePermission_FailsOpenToEmpty(t *testing.T) {
	assert.Equal(t, Permission{}, ParsePermission(nil))
	assert.Equal(t, Permission{}, ParsePermission([]byte{}))
	assert.Equal(t, Permission{}, ParsePermission([]byte("not php serialized")))
}
