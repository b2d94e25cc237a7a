package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dossier_service/internal/adapter/http/dto/response"
	"dossier_service/internal/adapter/http/handlers/mocks"
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"
	"dossier_service/pkg"

	"go.uber.org/mock/gomock"
)

func TestTrackingHandler_Lookup(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockITrackingUseCase, func(body string) (int, []byte)) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "XOF")
		r := newTestRouter()
		r.POST("/v1/tracking/lookup", h.Lookup)
		return uc, func(body string) (int, []byte) {
			w := do(r, http.MethodPost, "/v1/tracking/lookup", body, "")
			return w.Code, w.Body.Bytes()
		}
	}

	t.Run("missing phone", func(t *testing.T) {
		_, call := setup(t)
		code, _ := call(`{}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, call := setup(t)
		uc.EXPECT().LookupByPhone(gomock.Any(), gomock.Any(), "+2250709670000").Return(usecase.TrackingResult{
			Found: true,
			Requests: []usecase.TrackedRequest{
				{ID: "c-1", Kind: entities.RequestKindCompany, EstimatedPrice: 150000, View: entities.NormalizeStatus("pending", "", 150000)},
				{ID: "s-1", Kind: entities.RequestKindService, View: entities.NormalizeStatus("completed", "completed", 50000)},
			},
		}, nil)

		code, body := call(`{"phone":" +2250709670000 "}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var out response.TrackingLookupResponse
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.State != response.TrackingStateFound || len(out.Requests) != 2 {
			t.Fatalf("unexpected response: %+v", out)
		}
		if !out.Requests[0].View.RequiresPaymentAction || !out.Requests[1].View.IsPaid {
			t.Fatalf("unexpected views: %+v", out.Requests)
		}
	})

	t.Run("not found is 200", func(t *testing.T) {
		uc, call := setup(t)
		uc.EXPECT().LookupByPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TrackingResult{Requests: []usecase.TrackedRequest{}}, nil)

		code, body := call(`{"phone":"0709670000"}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var out response.TrackingLookupResponse
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.State != response.TrackingStateNotFound || out.Message != response.MessageTrackingNotFound {
			t.Fatalf("unexpected response: %+v", out)
		}
	})

	t.Run("error messages are distinct", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{err: usecase.ErrInvalidPhone, code: http.StatusBadRequest},
			{err: usecase.ErrTrackingRateLimited, code: http.StatusTooManyRequests},
			{err: fmt.Errorf("%w: timeout", usecase.ErrTrackingUnavailable), code: http.StatusServiceUnavailable},
			{err: errors.New("boom"), code: http.StatusInternalServerError},
		}
		messages := map[string]bool{response.MessageTrackingNotFound: true}
		for _, tc := range cases {
			uc, call := setup(t)
			uc.EXPECT().LookupByPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TrackingResult{}, tc.err)

			code, body := call(`{"phone":"+2250709670000"}`)
			if code != tc.code {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
			}
			var out pkg.HTTPError
			if err := json.Unmarshal(body, &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if tc.code == http.StatusInternalServerError {
				if out.Message != MessageGenericRetry {
					t.Fatalf("expected generic message, got %q", out.Message)
				}
				continue
			}
			if messages[out.Message] {
				t.Fatalf("message %q is not distinct", out.Message)
			}
			messages[out.Message] = true
		}
		if !messages[MessageTrackingRateLimited] || !messages[MessageGenericRetry] {
			t.Fatalf("unexpected messages: %v", messages)
		}
	})
}
