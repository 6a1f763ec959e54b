package usecase

import (
	"context"
	"strings"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeUserRepo implements repository.UserRepository with overridable
// funcs; unset funcs return zero values.
type fakeUserRepo struct {
	findByEmail        func(email string) (*entity.User, error)
	findByID           func(id primitive.ObjectID) (*entity.User, error)
	insert             func(user *entity.User) (primitive.ObjectID, error)
	promoteToGuide     func(id primitive.ObjectID) (*repository.UpdateResult, error)
	clearRoleRequest   func(id primitive.ObjectID) (*repository.UpdateResult, error)
	setRoleRequest     func(email, requestedRole string) (*repository.UpdateResult, error)
	resolveRoleRequest func(email string, approve bool, requestedRole string) (*repository.UpdateResult, error)
	touchedLastLogin   []string
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.findByEmail != nil {
		return f.findByEmail(email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	if f.findByID != nil {
		return f.findByID(id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(context.Context) ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) Search(context.Context, repository.UserQuery, int, int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(context.Context, repository.UserQuery) (int64, error) { return 0, nil }

func (f *fakeUserRepo) CountByRole(context.Context, entity.UserRole) (int64, error) { return 0, nil }

func (f *fakeUserRepo) FindByRole(context.Context, entity.UserRole) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) SampleByRole(context.Context, entity.UserRole, int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *entity.User) (primitive.ObjectID, error) {
	if f.insert != nil {
		return f.insert(user)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, email string) error {
	f.touchedLastLogin = append(f.touchedLastLogin, email)
	return nil
}

func (f *fakeUserRepo) UpdateProfile(context.Context, string, string, string) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeUserRepo) PromoteToGuide(_ context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	if f.promoteToGuide != nil {
		return f.promoteToGuide(id)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeUserRepo) ClearRoleRequest(_ context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	if f.clearRoleRequest != nil {
		return f.clearRoleRequest(id)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeUserRepo) SetRoleRequest(_ context.Context, email, requestedRole string) (*repository.UpdateResult, error) {
	if f.setRoleRequest != nil {
		return f.setRoleRequest(email, requestedRole)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeUserRepo) ResolveRoleRequest(_ context.Context, email string, approve bool, requestedRole string) (*repository.UpdateResult, error) {
	if f.resolveRoleRequest != nil {
		return f.resolveRoleRequest(email, approve, requestedRole)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

type fakeApplicationRepo struct {
	findByEmail func(email string) (*entity.GuideApplication, error)
	markByEmail func(email string, from, to entity.ApplicationStatus) (*repository.UpdateResult, error)
}

func (f *fakeApplicationRepo) FindByEmail(_ context.Context, email string) (*entity.GuideApplication, error) {
	if f.findByEmail != nil {
		return f.findByEmail(email)
	}
	return nil, nil
}

func (f *fakeApplicationRepo) Insert(_ context.Context, _ *entity.GuideApplication) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (f *fakeApplicationRepo) MarkByEmail(_ context.Context, email string, from, to entity.ApplicationStatus) (*repository.UpdateResult, error) {
	if f.markByEmail != nil {
		return f.markByEmail(email, from, to)
	}
	return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func newUserService(users *fakeUserRepo, apps *fakeApplicationRepo) UserService {
	repo := &repository.Repository{
		User:             users,
		GuideApplication: apps,
	}
	return NewUserService(repo, zap.NewNop())
}

func TestUpsertRegisteringDuplicateIsConflict(t *testing.T) {
	users := &fakeUserRepo{
		findByEmail: func(email string) (*entity.User, error) {
			return &entity.User{Email: email, Role: entity.RoleTourist}, nil
		},
	}
	svc := newUserService(users, &fakeApplicationRepo{})

	_, err := svc.Upsert(context.Background(), &request.UpsertUserRequest{
		Email:         "dana@example.com",
		IsRegistering: true,
	})
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("error %q should mention already registered", err)
	}
	if len(users.touchedLastLogin) != 0 {
		t.Error("duplicate registration must not touch lastLoginAt")
	}
}

func TestUpsertExistingLoginTouchesLastLogin(t *testing.T) {
	users := &fakeUserRepo{
		findByEmail: func(email string) (*entity.User, error) {
			return &entity.User{Email: email, Role: entity.RoleTourist}, nil
		},
	}
	svc := newUserService(users, &fakeApplicationRepo{})

	result, err := svc.Upsert(context.Background(), &request.UpsertUserRequest{
		Email: "dana@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created {
		t.Error("existing user must not be reported as created")
	}
	if len(users.touchedLastLogin) != 1 || users.touchedLastLogin[0] != "dana@example.com" {
		t.Errorf("expected lastLoginAt touch for dana@example.com, got %v", users.touchedLastLogin)
	}
}

func TestUpsertNewUserDefaultsToTourist(t *testing.T) {
	var inserted *entity.User
	users := &fakeUserRepo{
		insert: func(user *entity.User) (primitive.ObjectID, error) {
			inserted = user
			return primitive.NewObjectID(), nil
		},
	}
	svc := newUserService(users, &fakeApplicationRepo{})

	result, err := svc.Upsert(context.Background(), &request.UpsertUserRequest{
		Email:         "new@example.com",
		Name:          "New User",
		IsRegistering: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Created || result.InsertedID == "" {
		t.Errorf("expected created result with id, got %+v", result)
	}
	if inserted.Role != entity.RoleTourist {
		t.Errorf("new user role = %s, want tourist", inserted.Role)
	}
	if inserted.CreatedAt.IsZero() || inserted.LastLoginAt.IsZero() {
		t.Error("createdAt and lastLoginAt must be stamped on insert")
	}
}

func TestApproveGuidePromotesThenMarksApplication(t *testing.T) {
	id := primitive.NewObjectID()
	var promoted bool
	var marked struct {
		email    string
		from, to entity.ApplicationStatus
	}

	users := &fakeUserRepo{
		promoteToGuide: func(got primitive.ObjectID) (*repository.UpdateResult, error) {
			if got != id {
				t.Errorf("promote called with %s, want %s", got.Hex(), id.Hex())
			}
			promoted = true
			return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
		},
		findByID: func(primitive.ObjectID) (*entity.User, error) {
			return &entity.User{ID: id, Email: "guide@example.com", Role: entity.RoleGuide}, nil
		},
	}
	apps := &fakeApplicationRepo{
		markByEmail: func(email string, from, to entity.ApplicationStatus) (*repository.UpdateResult, error) {
			marked.email, marked.from, marked.to = email, from, to
			return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
		},
	}

	svc := newUserService(users, apps)
	result, err := svc.ApproveGuide(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !promoted {
		t.Error("user promotion did not run")
	}
	if marked.email != "guide@example.com" || marked.from != entity.ApplicationPending || marked.to != entity.ApplicationApproved {
		t.Errorf("application marked %+v, want pending->approved for guide@example.com", marked)
	}
	if result.UserUpdate.Modified != 1 || result.AppUpdate.Modified != 1 {
		t.Errorf("result = %+v, want both counters at 1", result)
	}
}

func TestApproveGuideSurfacesPartialApplicationMiss(t *testing.T) {
	// The user update lands but no pending application matches. That is
	// not an error: the caller sees the mismatch in the counters.
	id := primitive.NewObjectID()
	users := &fakeUserRepo{
		findByID: func(primitive.ObjectID) (*entity.User, error) {
			return &entity.User{ID: id, Email: "guide@example.com"}, nil
		},
	}
	apps := &fakeApplicationRepo{
		markByEmail: func(string, entity.ApplicationStatus, entity.ApplicationStatus) (*repository.UpdateResult, error) {
			return &repository.UpdateResult{Matched: 0, Modified: 0}, nil
		},
	}

	svc := newUserService(users, apps)
	result, err := svc.ApproveGuide(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("partial miss must not be an error, got: %v", err)
	}
	if result.UserUpdate.Modified != 1 {
		t.Errorf("user update modified = %d, want 1", result.UserUpdate.Modified)
	}
	if result.AppUpdate.Matched != 0 {
		t.Errorf("app update matched = %d, want 0", result.AppUpdate.Matched)
	}
}

func TestRejectGuideDoesNotPromote(t *testing.T) {
	id := primitive.NewObjectID()
	users := &fakeUserRepo{
		promoteToGuide: func(primitive.ObjectID) (*repository.UpdateResult, error) {
			t.Fatal("reject must not promote the user")
			return nil, nil
		},
		clearRoleRequest: func(primitive.ObjectID) (*repository.UpdateResult, error) {
			return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
		},
		findByID: func(primitive.ObjectID) (*entity.User, error) {
			return &entity.User{ID: id, Email: "tourist@example.com", Role: entity.RoleTourist}, nil
		},
	}
	var to entity.ApplicationStatus
	apps := &fakeApplicationRepo{
		markByEmail: func(_ string, _, got entity.ApplicationStatus) (*repository.UpdateResult, error) {
			to = got
			return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
		},
	}

	svc := newUserService(users, apps)
	if _, err := svc.RejectGuide(context.Background(), id.Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if to != entity.ApplicationRejected {
		t.Errorf("application marked %s, want rejected", to)
	}
}

func TestApproveGuideVanishedUserIsNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	users := &fakeUserRepo{
		findByID: func(primitive.ObjectID) (*entity.User, error) {
			return nil, nil
		},
	}

	svc := newUserService(users, &fakeApplicationRepo{})
	_, err := svc.ApproveGuide(context.Background(), id.Hex())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error for vanished user, got %v", err)
	}
}

func TestApproveGuideRejectsMalformedID(t *testing.T) {
	svc := newUserService(&fakeUserRepo{}, &fakeApplicationRepo{})
	_, err := svc.ApproveGuide(context.Background(), "not-an-object-id")
	if err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Errorf("expected invalid id error, got %v", err)
	}
}

func TestRequestRoleOverwritesPreviousRequest(t *testing.T) {
	var gotRole string
	users := &fakeUserRepo{
		setRoleRequest: func(email, requestedRole string) (*repository.UpdateResult, error) {
			gotRole = requestedRole
			return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
		},
	}

	svc := newUserService(users, &fakeApplicationRepo{})
	result, err := svc.RequestRole(context.Background(), "dana@example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRole != "admin" {
		t.Errorf("requested role = %q, want admin", gotRole)
	}
	if result.ModifiedCount != 1 {
		t.Errorf("modified = %d, want 1", result.ModifiedCount)
	}
}

func TestRequestRoleUnknownUserIsNotFound(t *testing.T) {
	users := &fakeUserRepo{
		setRoleRequest: func(string, string) (*repository.UpdateResult, error) {
			return &repository.UpdateResult{Matched: 0, Modified: 0}, nil
		},
	}

	svc := newUserService(users, &fakeApplicationRepo{})
	_, err := svc.RequestRole(context.Background(), "ghost@example.com", "guide")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestResolveRoleRequestRequiresPendingRequest(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
	}{
		{"no user", nil},
		{"no request", &entity.User{Email: "a@example.com", Role: entity.RoleTourist}},
		{"already resolved", &entity.User{
			Email:         "a@example.com",
			RequestedRole: "guide",
			RequestStatus: entity.RequestApproved,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserRepo{
				findByEmail: func(string) (*entity.User, error) { return tt.user, nil },
			}
			svc := newUserService(users, &fakeApplicationRepo{})

			_, err := svc.ResolveRoleRequest(context.Background(), "a@example.com", true)
			if err == nil || !strings.Contains(err.Error(), "not found") {
				t.Errorf("expected not-found error, got %v", err)
			}
		})
	}
}

func TestResolveRoleRequestApprovePassesRequestedRole(t *testing.T) {
	var got struct {
		approve bool
		role    string
	}
	users := &fakeUserRepo{
		findByEmail: func(string) (*entity.User, error) {
			return &entity.User{
				Email:         "a@example.com",
				RequestedRole: "guide",
				RequestStatus: entity.RequestPending,
			}, nil
		},
		resolveRoleRequest: func(_ string, approve bool, requestedRole string) (*repository.UpdateResult, error) {
			got.approve, got.role = approve, requestedRole
			return &repository.UpdateResult{Matched: 1, Modified: 1}, nil
		},
	}

	svc := newUserService(users, &fakeApplicationRepo{})
	if _, err := svc.ResolveRoleRequest(context.Background(), "a@example.com", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.approve || got.role != "guide" {
		t.Errorf("resolve called with approve=%v role=%q, want approve=true role=guide", got.approve, got.role)
	}
}
