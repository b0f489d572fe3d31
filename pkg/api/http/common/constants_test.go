package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "/api/v1/jobs/abc/status", Path(API_STATUS, "abc"))
	assert.Equal(t, "/api/v1/users/tech%2F42/role", Path(API_USER_ROLE, "tech/42"))
	assert.Equal(t, "/api/v1/jobs/abc/audit", JobLogPath("abc", "audit"))
}
