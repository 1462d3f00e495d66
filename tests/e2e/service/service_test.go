//go:build e2e

package service_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"talent-services/internal/events"
	"talent-services/internal/handler/dto/response"
	"talent-services/internal/infra/uow"
	"talent-services/internal/pkg/clock"
	"talent-services/internal/pkg/jwt"
	"talent-services/internal/scheduler"
	"talent-services/tests/common/dbtest"
	"talent-services/tests/common/httptest"
	"talent-services/tests/e2e"
	"talent-services/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	baseURL      = "/api/admin/services"
	providerKey  = "DUOLINGO"
	proctored    = "DUOLINGO_TEST_PROCTORED"
	offeringPath = baseURL + "/" + providerKey + "/" + proctored
)

type ServiceSuite struct {
	e2e.SharedSuite
	auth *helper.JWTTestHelper
}

func (s *ServiceSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func TestServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) seedAdminAndCandidate(t *testing.T) (uuid.UUID, uuid.UUID, string) {
	t.Helper()
	adminID, token := s.auth.CreateAdminWithToken(t, s.DB, "admin@example.com")
	candidateID := dbtest.CreateTestCandidate(t, s.DB, "candidate@example.com")
	return adminID, candidateID, token
}

func assignURL(candidateID uuid.UUID) string {
	return offeringPath + "/assign/candidate/" + candidateID.String()
}

// =============================================================================
// TestImportInventory - vendor CSV import round-trip
// =============================================================================

func (s *ServiceSuite) TestImportInventory() {
	url := offeringPath + "/import"

	s.Run("Normal case: imported coupons become available", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)

		csv := strings.Join([]string{
			"Coupon Code,Expiration Date,Date Sent,Coupon Status",
			"ACC100001,2030/12/31 23:59:59,,AVAILABLE",
			"ACC100002,2030/12/31 23:59:59,,AVAILABLE",
			"ACCNONPROC100003,2030/12/31 23:59:59,,AVAILABLE",
		}, "\n")

		w := httptest.PerformUpload(t, s.Router, http.MethodPost, url, "coupons.csv", strings.NewReader(csv), token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// The proctored offering sees only its own two coupons
		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, offeringPath+"/available/count", nil, token)
		var count response.AvailableCountResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &count)
		require.Equal(t, int64(2), count.Available)
	})

	s.Run("Error case: a single bad row rejects the whole file", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)

		csv := strings.Join([]string{
			"Coupon Code,Expiration Date,Date Sent,Coupon Status",
			"ACC200001,2030/12/31 23:59:59,,AVAILABLE",
			"ACC200002,not-a-date,,AVAILABLE",
		}, "\n")

		w := httptest.PerformUpload(t, s.Router, http.MethodPost, url, "coupons.csv", strings.NewReader(csv), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, offeringPath+"/available/count", nil, token)
		var count response.AvailableCountResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &count)
		require.Equal(t, int64(0), count.Available, "nothing may land from a rejected file")
	})
}

// =============================================================================
// TestAssignToCandidate - single assignment flow
// =============================================================================

func (s *ServiceSuite) TestAssignToCandidate() {
	s.Run("Normal case: assignment reserves a coupon and creates the claim task", func() {
		t := s.T()
		adminID, candidateID, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC300001", "AVAILABLE", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)

		var created response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		expected := &response.AssignmentResponse{
			Provider:    providerKey,
			ServiceCode: proctored,
			CandidateID: candidateID,
			ActorID:     adminID,
			Status:      "ASSIGNED",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.AssignmentResponse{}, "ID", "ResourceID", "AssignedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("assignment response mismatch (-want +got):\n%s", diff)
		}

		// The reserved coupon is handed out immediately
		var resourceStatus string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM service_resources WHERE id = $1", created.ResourceID).Scan(&resourceStatus)
		require.NoError(t, err)
		require.Equal(t, "SENT", resourceStatus)

		// Post-commit event produced the follow-up claim task
		var taskCount int
		err = s.DB.QueryRow(context.Background(), `
			SELECT COUNT(*) FROM task_jobs j
			JOIN task_catalog c ON c.id = j.template_id
			WHERE c.name = 'claimCouponButton' AND j.candidate_id = $1 AND j.context = $2`,
			candidateID, created.ID.String()).Scan(&taskCount)
		require.NoError(t, err)
		require.Equal(t, 1, taskCount)
	})

	s.Run("Normal case: reassignment supersedes the previous active assignment", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC300001", "AVAILABLE", nil)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC300002", "AVAILABLE", nil)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		var first response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w1, http.StatusCreated, &first)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		var second response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w2, http.StatusCreated, &second)
		require.NotEqual(t, first.ID, second.ID)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			baseURL+"/assignments/candidate/"+candidateID.String(), nil, token)
		var views []response.AssignmentViewResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &views)
		require.Len(t, views, 2)

		statusByID := map[uuid.UUID]string{}
		for _, v := range views {
			statusByID[v.ID] = v.Status
		}
		require.Equal(t, "REASSIGNED", statusByID[first.ID])
		require.Equal(t, "ASSIGNED", statusByID[second.ID])
	})

	s.Run("Error case: exhausted inventory returns 409", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No available resources")
	})

	s.Run("Error case: unknown candidate returns 404", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC300001", "AVAILABLE", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(uuid.New()), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Concurrency: one coupon, two candidates, exactly one wins", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC300001", "AVAILABLE", nil)

		candidates := []uuid.UUID{
			dbtest.CreateTestCandidate(t, s.DB, "race-a@example.com"),
			dbtest.CreateTestCandidate(t, s.DB, "race-b@example.com"),
		}

		codes := make([]int, len(candidates))
		var wg sync.WaitGroup
		for i, candidateID := range candidates {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		wins, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				wins++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, wins, "exactly one request may claim the last coupon, got codes %v", codes)
		require.Equal(t, 1, conflicts)
	})
}

// =============================================================================
// TestAssignToList - bulk assignment
// =============================================================================

func (s *ServiceSuite) TestAssignToList() {
	url := offeringPath + "/assign/list"

	s.Run("Normal case: every listed candidate gets a coupon, holders are skipped", func() {
		t := s.T()
		_, holderID, token := s.seedAdminAndCandidate(t)
		newcomerID := dbtest.CreateTestCandidate(t, s.DB, "newcomer@example.com")

		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC400001", "AVAILABLE", nil)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC400002", "AVAILABLE", nil)

		// The holder already has an active assignment
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(holderID), nil, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"candidate_ids": []uuid.UUID{holderID, newcomerID}}, token)

		var created []response.AssignmentResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusCreated, &created)
		require.Len(t, created, 1, "only the newcomer should receive a coupon")
		require.Equal(t, newcomerID, created[0].CandidateID)

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, offeringPath+"/available/count", nil, token)
		var count response.AvailableCountResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &count)
		require.Equal(t, int64(0), count.Available)
	})

	s.Run("Error case: pool smaller than the list assigns nothing", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)
		otherID := dbtest.CreateTestCandidate(t, s.DB, "other@example.com")
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC400001", "AVAILABLE", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"candidate_ids": []uuid.UUID{candidateID, otherID}}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No available resources")

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, offeringPath+"/available/count", nil, token)
		var count response.AvailableCountResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &count)
		require.Equal(t, int64(1), count.Available, "all-or-nothing: the single coupon stays untouched")
	})
}

// =============================================================================
// TestRedeem - redemption flow
// =============================================================================

func (s *ServiceSuite) TestRedeem() {
	s.Run("Normal case: redeeming closes the assignment and the coupon", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC500001", "AVAILABLE", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		var created response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			baseURL+"/assignments/"+created.ID.String()+"/redeem", nil, token)
		var redeemed response.AssignmentResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &redeemed)
		require.Equal(t, "REDEEMED", redeemed.Status)

		var resourceStatus string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM service_resources WHERE id = $1", created.ResourceID).Scan(&resourceStatus)
		require.NoError(t, err)
		require.Equal(t, "REDEEMED", resourceStatus)
	})

	s.Run("Error case: redeeming twice returns 409", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC500001", "AVAILABLE", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		var created response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		redeemURL := baseURL + "/assignments/" + created.ID.String() + "/redeem"
		rw1 := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, nil, token)
		require.Equal(t, http.StatusOK, rw1.Code, rw1.Body.String())

		rw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, nil, token)
		httptest.AssertErrorResponse(t, rw2, http.StatusConflict, "Invalid state transition")
	})

	s.Run("Error case: unknown assignment returns 404", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			baseURL+"/assignments/"+uuid.New().String()+"/redeem", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})
}

// =============================================================================
// TestUpdateResourceStatus - manual lifecycle moves
// =============================================================================

func (s *ServiceSuite) TestUpdateResourceStatus() {
	url := baseURL + "/" + providerKey + "/resource/ACC600001/status"

	s.Run("Normal case: an available coupon can be disabled", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC600001", "AVAILABLE", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			map[string]any{"status": "DISABLED"}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, offeringPath+"/available/count", nil, token)
		var count response.AvailableCountResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &count)
		require.Equal(t, int64(0), count.Available)
	})

	s.Run("Error case: backward transition returns 409", func() {
		t := s.T()
		_, _, token := s.seedAdminAndCandidate(t)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC600001", "SENT", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			map[string]any{"status": "AVAILABLE"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid state transition")
	})
}

// =============================================================================
// TestAuth - token handling on the admin surface
// =============================================================================

func (s *ServiceSuite) TestAuth() {
	url := offeringPath + "/available/count"

	s.Run("Error case: missing token returns 401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token returns 401", func() {
		t := s.T()
		adminID, _, _ := s.seedAdminAndCandidate(t)
		expired := s.auth.CreateExpiredToken(t, adminID, jwt.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: non-admin role returns 403", func() {
		t := s.T()
		adminID, _, _ := s.seedAdminAndCandidate(t)
		viewerToken := s.auth.GenerateToken(t, adminID, "viewer")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, viewerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestExpirySweep - daily sweep against a real database
// =============================================================================

func (s *ServiceSuite) TestExpirySweep() {
	s.Run("Normal case: overdue coupons expire together with their assignments", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)

		past := time.Now().UTC().Add(-24 * time.Hour)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC700001", "AVAILABLE", &past)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		var created response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		require.NoError(t, s.runSweep())

		var resourceStatus, assignmentStatus string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM service_resources WHERE id = $1", created.ResourceID).Scan(&resourceStatus)
		require.NoError(t, err)
		require.Equal(t, "EXPIRED", resourceStatus)

		err = s.DB.QueryRow(context.Background(),
			"SELECT status FROM service_assignments WHERE id = $1", created.ID).Scan(&assignmentStatus)
		require.NoError(t, err)
		require.Equal(t, "EXPIRED", assignmentStatus)
	})

	s.Run("Normal case: redeemed coupons are left alone", func() {
		t := s.T()
		_, candidateID, token := s.seedAdminAndCandidate(t)

		past := time.Now().UTC().Add(-24 * time.Hour)
		dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC700001", "AVAILABLE", &past)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, assignURL(candidateID), nil, token)
		var created response.AssignmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			baseURL+"/assignments/"+created.ID.String()+"/redeem", nil, token)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		require.NoError(t, s.runSweep())

		var resourceStatus string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM service_resources WHERE id = $1", created.ResourceID).Scan(&resourceStatus)
		require.NoError(t, err)
		require.Equal(t, "REDEEMED", resourceStatus)
	})

	s.Run("Lease: a held lease blocks a second sweeper", func() {
		t := s.T()

		future := time.Now().UTC().Add(time.Hour)
		_, err := s.DB.Exec(context.Background(), `
			INSERT INTO scheduler_leases (name, holder, acquired_at, expires_at)
			VALUES ('service_resources_expire', 'other-host', now(), $1)`, future)
		require.NoError(t, err)

		past := time.Now().UTC().Add(-24 * time.Hour)
		resourceID := dbtest.SeedResource(t, s.DB, providerKey, proctored, "ACC700001", "SENT", &past)

		require.NoError(t, s.runSweep())

		var resourceStatus string
		err = s.DB.QueryRow(context.Background(),
			"SELECT status FROM service_resources WHERE id = $1", resourceID).Scan(&resourceStatus)
		require.NoError(t, err)
		require.Equal(t, "SENT", resourceStatus, "nothing may expire while another holder owns the lease")
	})
}

// runSweep drives one sweep directly, the way the scheduled loop would.
func (s *ServiceSuite) runSweep() error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := events.NewDispatcher(logger)
	unitOfWork := uow.NewPostgresUoW(s.DB, dispatcher)
	sweeper := scheduler.NewExpirySweeper(unitOfWork, clock.NewRealClock(), 23*time.Hour, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return sweeper.Sweep(ctx)
}
