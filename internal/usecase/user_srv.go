package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService interface {
	Upsert(ctx context.Context, req *request.UpsertUserRequest) (*response.UpsertUserResponse, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListAdmin(ctx context.Context, q repository.UserQuery, page, limit int) (*response.PaginatedResponse[*entity.User], error)
	ListGuides(ctx context.Context, sampleSize int) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, email string, req *request.UpdateUserRequest) (*response.UpdateResponse, error)
	GetRole(ctx context.Context, email string) (string, error)

	// Guide-application approval workflow (cross-collection, no
	// transaction)
	ApproveGuide(ctx context.Context, id string) (*response.ApprovalResponse, error)
	RejectGuide(ctx context.Context, id string) (*response.ApprovalResponse, error)

	// Role self-request workflow
	RequestRole(ctx context.Context, email, requestedRole string) (*response.UpdateResponse, error)
	ResolveRoleRequest(ctx context.Context, email string, approve bool) (*response.UpdateResponse, error)
}

type userService struct {
	repo *repository.Repository // approval workflow spans users and applications
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Upsert(ctx context.Context, req *request.UpsertUserRequest) (*response.UpsertUserResponse, error) {
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	if existing != nil {
		if req.IsRegistering {
			return nil, fmt.Errorf("email %s already registered, please login", req.Email)
		}

		if err := s.repo.User.TouchLastLogin(ctx, req.Email); err != nil {
			return nil, fmt.Errorf("upsert user: %w", err)
		}

		return &response.UpsertUserResponse{Created: false}, nil
	}

	now := time.Now().UTC()
	user := &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		Image:       req.Image,
		Role:        entity.RoleTourist,
		AuthMethod:  req.AuthMethod,
		CreatedAt:   now,
		LastLoginAt: now,
	}

	id, err := s.repo.User.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	s.log.Info("User created",
		zap.String("email", req.Email),
		zap.String("auth_method", req.AuthMethod),
	)

	return &response.UpsertUserResponse{Created: true, InsertedID: id.Hex()}, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", email)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*entity.User, error) {
	return s.repo.User.FindAll(ctx)
}

func (s *userService) ListAdmin(ctx context.Context, q repository.UserQuery, page, limit int) (*response.PaginatedResponse[*entity.User], error) {
	skip := utils.CalculateOffset(page, limit)

	users, err := s.repo.User.Search(ctx, q, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return response.NewPaginatedResponse(users, total, limit), nil
}

func (s *userService) ListGuides(ctx context.Context, sampleSize int) ([]*entity.User, error) {
	if sampleSize > 0 {
		return s.repo.User.SampleByRole(ctx, entity.RoleGuide, sampleSize)
	}
	return s.repo.User.FindByRole(ctx, entity.RoleGuide)
}

func (s *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID %s", id)
	}

	user, err := s.repo.User.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, email string, req *request.UpdateUserRequest) (*response.UpdateResponse, error) {
	if req.Name == "" && req.Image == "" {
		return nil, fmt.Errorf("invalid update: nothing to update")
	}

	result, err := s.repo.User.UpdateProfile(ctx, email, req.Name, req.Image)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if result.Matched == 0 {
		return nil, fmt.Errorf("user %s not found", email)
	}

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}

func (s *userService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get role: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("user %s not found", email)
	}
	return string(user.Role), nil
}

// ApproveGuide runs the two-step approval: promote the user, then mark
// that email's pending application approved. The steps are separate
// store round-trips; when the second one matches nothing the first is
// NOT rolled back, and both results go back to the caller.
func (s *userService) ApproveGuide(ctx context.Context, id string) (*response.ApprovalResponse, error) {
	return s.resolveGuide(ctx, id, true)
}

// RejectGuide clears the request sub-state without touching the role
// and marks the pending application rejected.
func (s *userService) RejectGuide(ctx context.Context, id string) (*response.ApprovalResponse, error) {
	return s.resolveGuide(ctx, id, false)
}

func (s *userService) resolveGuide(ctx context.Context, id string, approve bool) (*response.ApprovalResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID %s", id)
	}

	var userUpdate *repository.UpdateResult
	if approve {
		userUpdate, err = s.repo.User.PromoteToGuide(ctx, oid)
	} else {
		userUpdate, err = s.repo.User.ClearRoleRequest(ctx, oid)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve guide: %w", err)
	}

	// The email for the application lookup comes from a re-fetch. The
	// user update keys on _id and email is immutable, so the value is
	// the same one the document had before the mutation.
	user, err := s.repo.User.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("resolve guide: %w", err)
	}
	if user == nil {
		s.log.Warn("User vanished between update and lookup",
			zap.String("user_id", id),
			zap.Bool("approve", approve),
		)
		return nil, fmt.Errorf("user %s not found", id)
	}

	to := entity.ApplicationRejected
	if approve {
		to = entity.ApplicationApproved
	}

	appUpdate, err := s.repo.GuideApplication.MarkByEmail(ctx, user.Email, entity.ApplicationPending, to)
	if err != nil {
		return nil, fmt.Errorf("resolve guide: %w", err)
	}

	if appUpdate.Matched == 0 {
		s.log.Warn("No pending application for resolved user",
			zap.String("user_id", id),
			zap.String("email", user.Email),
			zap.Bool("approve", approve),
		)
	}

	s.log.Info("Guide request resolved",
		zap.String("user_id", id),
		zap.String("email", user.Email),
		zap.Bool("approve", approve),
		zap.Int64("user_modified", userUpdate.Modified),
		zap.Int64("app_modified", appUpdate.Modified),
	)

	return &response.ApprovalResponse{
		UserUpdate: userUpdate,
		AppUpdate:  appUpdate,
	}, nil
}

// RequestRole stamps a pending request unconditionally; a repeat
// request simply overwrites the previous one.
func (s *userService) RequestRole(ctx context.Context, email, requestedRole string) (*response.UpdateResponse, error) {
	result, err := s.repo.User.SetRoleRequest(ctx, email, requestedRole)
	if err != nil {
		return nil, fmt.Errorf("request role: %w", err)
	}
	if result.Matched == 0 {
		return nil, fmt.Errorf("user %s not found", email)
	}

	s.log.Info("Role requested",
		zap.String("email", email),
		zap.String("requested_role", requestedRole),
	)

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}

func (s *userService) ResolveRoleRequest(ctx context.Context, email string, approve bool) (*response.UpdateResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve role request: %w", err)
	}
	if user == nil || !user.HasPendingRequest() {
		return nil, fmt.Errorf("pending role request for %s not found", email)
	}

	result, err := s.repo.User.ResolveRoleRequest(ctx, email, approve, user.RequestedRole)
	if err != nil {
		return nil, fmt.Errorf("resolve role request: %w", err)
	}

	s.log.Info("Role request resolved",
		zap.String("email", email),
		zap.Bool("approve", approve),
		zap.String("requested_role", user.RequestedRole),
	)

	return &response.UpdateResponse{ModifiedCount: result.Modified}, nil
}
