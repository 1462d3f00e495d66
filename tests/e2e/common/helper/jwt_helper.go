//go:build e2e

package helper

import (
	"testing"
	"time"

	"talent-services/internal/pkg/config"
	"talent-services/internal/pkg/jwt"
	"talent-services/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens the way the upstream identity service would.
// There is no login endpoint in this subsystem; tokens arrive pre-issued.
type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

// CreateAdminWithToken inserts an admin user row and returns its ID with a
// valid bearer token for it.
func (h *JWTTestHelper) CreateAdminWithToken(t *testing.T, db dbtest.DBLike, email string) (uuid.UUID, string) {
	t.Helper()
	adminID := dbtest.CreateTestAdmin(t, db, email)
	return adminID, h.GenerateToken(t, adminID, jwt.RoleAdmin)
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
