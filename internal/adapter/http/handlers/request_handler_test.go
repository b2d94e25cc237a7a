package handlers

import (
	"net/http"
	"testing"

	"dossier_service/internal/adapter/http/handlers/mocks"
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRequestRouter(t *testing.T) (*mocks.MockIRequestUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRequestUseCase(ctrl)
	h := NewRequestHandler(uc)

	r := newTestRouter()
	v1 := r.Group("/v1", authed())
	v1.POST("/requests/:kind", h.Submit)
	v1.GET("/requests", h.ListMine)
	v1.GET("/requests/:kind/:id", h.GetMine)
	v1.GET("/admin/requests/:kind", h.AdminList)
	v1.PATCH("/admin/requests/:kind/:id/status", h.AdminUpdateStatus)
	v1.PATCH("/admin/requests/:kind/:id/price", h.AdminUpdatePrice)
	return uc, r
}

func TestRequestHandler_Submit(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		_, r := newRequestRouter(t)
		w := do(r, http.MethodPost, "/v1/requests/company", `{}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, r := newRequestRouter(t)
		w := do(r, http.MethodPost, "/v1/requests/company", `{"contact_name":"Awa"}`, bearer(t, clientActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), clientActor, entities.RequestKindCompany, usecase.SubmitRequestInput{
			ContactName: "Awa", ContactPhone: "+2250709670000", CompanyName: "Akwaba SARL",
		}).Return(entities.Request{ID: "r1", Kind: entities.RequestKindCompany, TrackingNumber: "ENT-20260301-ABC123"}, nil)

		w := do(r, http.MethodPost, "/v1/requests/Company", `{"contact_name":"Awa","contact_phone":"+2250709670000","company_name":"Akwaba SARL"}`, bearer(t, clientActor))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), entities.RequestKind("estimate"), gomock.Any()).Return(entities.Request{}, usecase.ErrInvalidRequestKind)

		w := do(r, http.MethodPost, "/v1/requests/estimate", `{"contact_name":"Awa","contact_phone":"+2250709670000"}`, bearer(t, clientActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRequestHandler_Reads(t *testing.T) {
	t.Run("list mine", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().ListForOwner(gomock.Any(), clientActor).Return([]entities.Request{{ID: "a"}, {ID: "b"}}, nil)

		w := do(r, http.MethodGet, "/v1/requests", "", bearer(t, clientActor))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get mine not found", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().GetForOwner(gomock.Any(), clientActor, entities.RequestKindService, "r1").Return(entities.Request{}, usecase.ErrRequestNotFound)

		w := do(r, http.MethodGet, "/v1/requests/service/r1", "", bearer(t, clientActor))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRequestHandler_Admin(t *testing.T) {
	t.Run("client forbidden", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().ListAll(gomock.Any(), clientActor, entities.RequestKindCompany).Return(nil, usecase.ErrForbidden)

		w := do(r, http.MethodGet, "/v1/admin/requests/company", "", bearer(t, clientActor))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("update status", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().UpdateLifecycleStatus(gomock.Any(), staffActor, entities.RequestKindCompany, "r1", entities.LifecycleStatusInProgress).
			Return(entities.Request{ID: "r1", Status: entities.LifecycleStatusInProgress}, nil)

		w := do(r, http.MethodPatch, "/v1/admin/requests/company/r1/status", `{"status":"in_progress"}`, bearer(t, staffActor))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().UpdateLifecycleStatus(gomock.Any(), staffActor, entities.RequestKindCompany, "r1", entities.LifecycleStatus("archived")).
			Return(entities.Request{}, usecase.ErrInvalidLifecycleStatus)

		w := do(r, http.MethodPatch, "/v1/admin/requests/company/r1/status", `{"status":"archived"}`, bearer(t, staffActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("price required", func(t *testing.T) {
		_, r := newRequestRouter(t)
		w := do(r, http.MethodPatch, "/v1/admin/requests/service/r1/price", `{}`, bearer(t, staffActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update price", func(t *testing.T) {
		uc, r := newRequestRouter(t)
		uc.EXPECT().UpdateEstimatedPrice(gomock.Any(), staffActor, entities.RequestKindService, "r1", 0.0).
			Return(entities.Request{ID: "r1"}, nil)

		w := do(r, http.MethodPatch, "/v1/admin/requests/service/r1/price", `{"estimated_price":0}`, bearer(t, staffActor))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
