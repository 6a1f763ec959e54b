package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"

	"go.uber.org/zap"
)

type fakeUserService struct {
	resolveRoleRequest func(email string, approve bool) (*response.UpdateResponse, error)
	requestRole        func(email, requestedRole string) (*response.UpdateResponse, error)
}

func (f *fakeUserService) Upsert(context.Context, *request.UpsertUserRequest) (*response.UpsertUserResponse, error) {
	return &response.UpsertUserResponse{Created: true}, nil
}

func (f *fakeUserService) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserService) List(context.Context) ([]*entity.User, error) { return nil, nil }

func (f *fakeUserService) ListAdmin(context.Context, repository.UserQuery, int, int) (*response.PaginatedResponse[*entity.User], error) {
	return nil, nil
}

func (f *fakeUserService) ListGuides(context.Context, int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserService) GetByID(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserService) UpdateProfile(context.Context, string, *request.UpdateUserRequest) (*response.UpdateResponse, error) {
	return &response.UpdateResponse{ModifiedCount: 1}, nil
}

func (f *fakeUserService) GetRole(context.Context, string) (string, error) { return "", nil }

func (f *fakeUserService) ApproveGuide(context.Context, string) (*response.ApprovalResponse, error) {
	return nil, nil
}

func (f *fakeUserService) RejectGuide(context.Context, string) (*response.ApprovalResponse, error) {
	return nil, nil
}

func (f *fakeUserService) RequestRole(_ context.Context, email, requestedRole string) (*response.UpdateResponse, error) {
	if f.requestRole != nil {
		return f.requestRole(email, requestedRole)
	}
	return &response.UpdateResponse{ModifiedCount: 1}, nil
}

func (f *fakeUserService) ResolveRoleRequest(_ context.Context, email string, approve bool) (*response.UpdateResponse, error) {
	if f.resolveRoleRequest != nil {
		return f.resolveRoleRequest(email, approve)
	}
	return &response.UpdateResponse{ModifiedCount: 1}, nil
}

func TestApproveRoleNoPendingRequestIs404(t *testing.T) {
	svc := &fakeUserService{
		resolveRoleRequest: func(email string, _ bool) (*response.UpdateResponse, error) {
			return nil, fmt.Errorf("pending role request for %s not found", email)
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/users/approve-role?email=a@example.com",
		strings.NewReader(`{"approve":true}`))
	rec := httptest.NewRecorder()
	h.ApproveRole(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestApproveRoleRequiresEmailQuery(t *testing.T) {
	h := NewUserHandler(&fakeUserService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/users/approve-role",
		strings.NewReader(`{"approve":false}`))
	rec := httptest.NewRecorder()
	h.ApproveRole(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRequestRoleUnknownUserIs404(t *testing.T) {
	svc := &fakeUserService{
		requestRole: func(email, _ string) (*response.UpdateResponse, error) {
			return nil, fmt.Errorf("user %s not found", email)
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/users/request-role?email=ghost@example.com",
		strings.NewReader(`{"requestedRole":"guide"}`))
	rec := httptest.NewRecorder()
	h.RequestRole(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
