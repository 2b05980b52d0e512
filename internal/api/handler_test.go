package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/zafesys/suite/internal/api"
	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/internal/mocks"
	"github.com/zafesys/suite/internal/service"
	"github.com/zafesys/suite/pkg/config"
)

type Tester struct {
	url        string
	repoMock   *mocks.MockRepository
	eventsMock *mocks.MockPublisher
	authMock   *mocks.MockAuthService
}

func NewClientAPI(t *testing.T) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRepository(ctrl)
	eventsMock := mocks.NewMockPublisher(ctrl)
	mailerMock := mocks.NewMockMailer(ctrl)
	authServiceMock := mocks.NewMockAuthService(ctrl)

	cfg := config.Config{
		JWT:     config.JWT{Secret: "test-secret", AccessTTL: time.Hour, TechnicianTTL: time.Hour},
		Storage: config.Storage{UploadURLTTL: time.Hour},
	}

	s := service.New(cfg, repoMock, eventsMock, nil, mailerMock, nil)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authServiceMock)

	router := api.NewRouter(handler, mw)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return Tester{
		url:        server.URL,
		repoMock:   repoMock,
		eventsMock: eventsMock,
		authMock:   authServiceMock,
	}
}

func (c Tester) asAdmin(role entity.UserRole) {
	c.authMock.EXPECT().ParseAdminToken(gomock.Any(), "dev").Return(entity.UserClaims{UserID: 1, Role: role}, nil)
}

func (c Tester) asTechnician(id int64) {
	c.authMock.EXPECT().ParseTechnicianToken(gomock.Any(), "dev").Return(entity.TechnicianClaims{TechnicianID: id}, nil)
}

func (c Tester) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var r io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)

		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.url+path, r)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer dev")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp, err := http.Get(c.url + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", decodeBody[api.HealthResponse](t, resp).Status)
}

func TestHandler_AdminAuth(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)

		resp, err := http.Get(c.url + "/api/v1/leads")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("technician token on admin route", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.authMock.EXPECT().ParseAdminToken(gomock.Any(), "dev").Return(entity.UserClaims{}, entity.ErrInvalidToken)

		resp := c.do(t, http.MethodGet, "/api/v1/leads", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin token on technician route", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.authMock.EXPECT().ParseTechnicianToken(gomock.Any(), "dev").Return(entity.TechnicianClaims{}, entity.ErrInvalidToken)

		resp := c.do(t, http.MethodGet, "/api/v1/tech/profile", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("only admins delete products", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)

		resp := c.do(t, http.MethodDelete, "/api/v1/products/3", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin deletes product", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)
		c.repoMock.EXPECT().DeleteProduct(gomock.Any(), int64(3)).Return(nil)

		resp := c.do(t, http.MethodDelete, "/api/v1/products/3", nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestHandler_AdminAuthReloadsUser(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := entity.User{
		ID:             7,
		Email:          "ventas@zafesys.co",
		HashedPassword: string(hashed),
		Role:           entity.RoleSales,
		IsActive:       true,
	}

	tests := []struct {
		name     string
		stored   func(*mocks.MockRepositoryUserCall)
		wantCode int
	}{
		{
			name: "active user",
			stored: func(c *mocks.MockRepositoryUserCall) {
				c.Return(user, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "deactivated user",
			stored: func(c *mocks.MockRepositoryUserCall) {
				inactive := user
				inactive.IsActive = false
				c.Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "deleted user",
			stored: func(c *mocks.MockRepositoryUserCall) {
				c.Return(entity.User{}, entity.ErrNotFound)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repoMock := mocks.NewMockRepository(ctrl)

			s := service.New(config.Config{
				JWT: config.JWT{Secret: "test-secret", AccessTTL: time.Hour, Issuer: "zafesys-suite"},
			}, repoMock, mocks.NewMockPublisher(ctrl), nil, mocks.NewMockMailer(ctrl), nil)

			server := httptest.NewServer(api.NewRouter(api.NewHandler(s), api.NewMiddleware(s)))
			t.Cleanup(server.Close)

			repoMock.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)

			token, err := s.Login(context.Background(), user.Email, "s3cret-pass")
			require.NoError(t, err)

			tt.stored(repoMock.EXPECT().User(gomock.Any(), int64(7)))

			if tt.wantCode == http.StatusOK {
				repoMock.EXPECT().Leads(gomock.Any(), gomock.Any()).Return([]entity.Lead{}, nil)
			}

			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/api/v1/leads", nil)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+token.AccessToken)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestHandler_Leads(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.asAdmin(entity.RoleSales)

	leads := []entity.Lead{
		{ID: 1, Name: "Ana", Phone: "+573001112233", Status: entity.LeadStatusPotential, Source: entity.LeadSourceWebsite},
	}

	c.repoMock.EXPECT().Leads(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.LeadFilter) ([]entity.Lead, error) {
			require.Equal(t, entity.LeadStatusPotential, *f.Status)
			require.Equal(t, uint64(10), f.Page.Limit)
			return leads, nil
		})

	resp := c.do(t, http.MethodGet, "/api/v1/leads?status=potencial&limit=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[[]entity.Lead](t, resp)
	require.Len(t, got, 1)
	require.Equal(t, "Ana", got[0].Name)
}

func TestHandler_CreateLead(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)

		c.repoMock.EXPECT().LeadByPhone(gomock.Any(), "+573001112233").Return(entity.Lead{}, entity.ErrNotFound)
		c.repoMock.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			Return(entity.Lead{ID: 5, Name: "Ana", Phone: "+573001112233", Status: entity.LeadStatusNew}, nil)
		c.eventsMock.EXPECT().Publish(gomock.Any(), entity.EventLeadCreated, "lead-5", gomock.Any())

		resp := c.do(t, http.MethodPost, "/api/v1/leads", entity.LeadCreate{Name: "Ana", Phone: "+573001112233"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, int64(5), decodeBody[entity.Lead](t, resp).ID)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)
		c.repoMock.EXPECT().LeadByPhone(gomock.Any(), "+573001112233").Return(entity.Lead{ID: 2}, nil)

		resp := c.do(t, http.MethodPost, "/api/v1/leads", entity.LeadCreate{Name: "Ana", Phone: "+573001112233"})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("bad json", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)

		resp := c.do(t, http.MethodPost, "/api/v1/leads", "not an object")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_MoveLead(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.asAdmin(entity.RoleSales)

	leads := []entity.Lead{{ID: 1, Name: "Ana", Phone: "+573001112233", Status: entity.LeadStatusNew}}

	c.repoMock.EXPECT().Lead(gomock.Any(), int64(1)).Return(leads[0], nil)
	c.repoMock.EXPECT().KanbanLeads(gomock.Any()).Return(leads, nil).Times(2)
	c.repoMock.EXPECT().UpdateLeadStatus(gomock.Any(), int64(1), entity.LeadStatusWon, gomock.Any()).
		Return(entity.Lead{}, errors.New("connection reset"))

	resp := c.do(t, http.MethodPost, "/api/v1/leads/kanban/move", api.KanbanMoveRequest{
		LeadID: 1,
		Status: entity.LeadStatusWon,
	})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	got := decodeBody[api.KanbanMoveFailure](t, resp)
	require.Equal(t, "No se pudo mover el lead", got.Message)
	require.Len(t, got.Board[entity.LeadStatusNew], 1)
	require.Empty(t, got.Board[entity.LeadStatusWon])
}

func TestHandler_Customers(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.asAdmin(entity.RoleAdmin)
	c.repoMock.EXPECT().Customers(gomock.Any(), gomock.Any()).Return([]entity.Customer{}, nil)

	resp := c.do(t, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "private, no-cache", resp.Header.Get("Cache-Control"))
}

func TestHandler_SearchProducts(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.asAdmin(entity.RoleWarehouse)

	resp := c.do(t, http.MethodGet, "/api/v1/products/search?q=o", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Installation(t *testing.T) {
	t.Parallel()

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)

		resp := c.do(t, http.MethodGet, "/api/v1/installations/abc", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)
		c.repoMock.EXPECT().Installation(gomock.Any(), int64(9)).Return(entity.Installation{}, entity.ErrNotFound)

		resp := c.do(t, http.MethodGet, "/api/v1/installations/9", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("create with unknown lead", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)
		c.repoMock.EXPECT().Lead(gomock.Any(), int64(404)).Return(entity.Lead{}, entity.ErrNotFound)

		resp := c.do(t, http.MethodPost, "/api/v1/installations", entity.InstallationCreate{
			LeadID:    404,
			ProductID: 2,
			Quantity:  1,
			Address:   "Calle 80 # 12-30",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Datos inválidos", decodeBody[api.ErrorResponse](t, resp).Message)
	})

	t.Run("stop timer that never started", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)
		c.repoMock.EXPECT().Installation(gomock.Any(), int64(9)).Return(entity.Installation{ID: 9}, nil)

		resp := c.do(t, http.MethodPost, "/api/v1/installations/9/timer/stop", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("media storage not configured", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)

		resp := c.do(t, http.MethodPost, "/api/v1/installations/9/media/upload-url",
			entity.MediaUploadRequest{FileType: entity.MediaPhotoAfter})
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestHandler_TechnicianApp(t *testing.T) {
	t.Parallel()

	other := int64(4)

	t.Run("installation of another technician", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asTechnician(3)
		c.repoMock.EXPECT().Installation(gomock.Any(), int64(9)).Return(entity.Installation{ID: 9, TechnicianID: &other}, nil)

		resp := c.do(t, http.MethodGet, "/api/v1/tech/installations/9", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("cancel is not allowed", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asTechnician(3)

		resp := c.do(t, http.MethodPatch, "/api/v1/tech/installations/9/status",
			api.InstallationStatusRequest{Status: entity.InstallationCancelled})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("profile", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asTechnician(3)
		c.repoMock.EXPECT().Technician(gomock.Any(), int64(3)).
			Return(entity.Technician{ID: 3, FullName: "Juan Pérez", IsActive: true}, nil)

		resp := c.do(t, http.MethodGet, "/api/v1/tech/profile", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Juan Pérez", decodeBody[entity.Technician](t, resp).FullName)
	})
}

func TestHandler_VoiceWebhookStatus(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp, err := http.Get(c.url + "/api/v1/webhooks/voice-agent/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[entity.WebhookStatus](t, resp)
	require.False(t, got.SecretConfigured)
	require.Equal(t, service.VoiceWebhookPath, got.WebhookURL)
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()

	t.Run("sales cannot list users", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)

		resp := c.do(t, http.MethodGet, "/api/v1/users", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin filters by role", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)

		role := entity.RoleWarehouse
		active := true

		c.repoMock.EXPECT().Users(gomock.Any(), entity.UserFilter{Role: &role, IsActive: &active}).
			Return([]entity.User{{ID: 12, Email: "bodega@zafesys.co", Role: role, IsActive: true}}, nil)

		resp := c.do(t, http.MethodGet, "/api/v1/users?role=warehouse&is_active=true", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		users := decodeBody[[]entity.User](t, resp)
		require.Len(t, users, 1)
		require.Equal(t, int64(12), users[0].ID)
	})

	t.Run("admin cannot delete own user", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleAdmin)

		resp := c.do(t, http.MethodDelete, "/api/v1/users/1", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_Warehouse(t *testing.T) {
	t.Parallel()

	t.Run("sales cannot see orders", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleSales)

		resp := c.do(t, http.MethodGet, "/api/v1/warehouse/orders", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("warehouse lists orders of a range", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleWarehouse)

		c.repoMock.EXPECT().WarehouseOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entity.WarehouseOrderFilter) ([]entity.WarehouseOrder, error) {
				require.Equal(t, "2024-06-03", f.From.String())
				require.Equal(t, "2024-06-07", f.To.String())
				return []entity.WarehouseOrder{{InstallationID: 40, WarehouseStatus: entity.WarehousePending}}, nil
			})

		resp := c.do(t, http.MethodGet, "/api/v1/warehouse/orders?start_date=2024-06-03&end_date=2024-06-07", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "private, no-cache", resp.Header.Get("Cache-Control"))

		orders := decodeBody[[]entity.WarehouseOrder](t, resp)
		require.Len(t, orders, 1)
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleWarehouse)

		resp := c.do(t, http.MethodGet, "/api/v1/warehouse/orders?start_date=03-06-2024", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("deliver before prepare", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleWarehouse)

		c.repoMock.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).
			Return(entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehousePending}, nil)

		resp := c.do(t, http.MethodPatch, "/api/v1/warehouse/orders/40/deliver", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Estado no permitido", decodeBody[api.ErrorResponse](t, resp).Message)
	})

	t.Run("prepare", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.asAdmin(entity.RoleWarehouse)

		pending := entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehousePending}
		prepared := pending
		prepared.WarehouseStatus = entity.WarehousePrepared

		gomock.InOrder(
			c.repoMock.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).Return(pending, nil),
			c.repoMock.EXPECT().SetWarehouseStatus(gomock.Any(), int64(40), entity.WarehousePrepared, int64(1), gomock.Any()).Return(nil),
			c.repoMock.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).Return(prepared, nil),
		)
		c.eventsMock.EXPECT().Publish(gomock.Any(), entity.EventWarehouseStatus, "installation-40", gomock.Any())

		resp := c.do(t, http.MethodPatch, "/api/v1/warehouse/orders/40/prepare", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, entity.WarehousePrepared, decodeBody[entity.WarehouseOrder](t, resp).WarehouseStatus)
	})
}
