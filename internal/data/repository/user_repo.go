package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// UserQuery carries the admin listing filters. Search is a
// case-insensitive substring match on SearchField (default name);
// Role and RequestStatus are exact matches when non-empty.
type UserQuery struct {
	Search        string
	SearchField   string
	Role          string
	RequestStatus string
}

func (q UserQuery) filter() bson.M {
	field := q.SearchField
	if field == "" {
		field = "name"
	}

	filter := bson.M{
		field: bson.M{"$regex": q.Search, "$options": "i"},
	}
	if q.Role != "" {
		filter["role"] = q.Role
	}
	if q.RequestStatus != "" {
		filter["requestStatus"] = q.RequestStatus
	}
	return filter
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Search(ctx context.Context, q UserQuery, skip, limit int) ([]*entity.User, error)
	Count(ctx context.Context, q UserQuery) (int64, error)
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)
	FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error)
	SampleByRole(ctx context.Context, role entity.UserRole, size int) ([]*entity.User, error)
	Insert(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	TouchLastLogin(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, email, name, image string) (*UpdateResult, error)

	// Role workflow mutations
	PromoteToGuide(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)
	ClearRoleRequest(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)
	SetRoleRequest(ctx context.Context, email, requestedRole string) (*UpdateResult, error)
	ResolveRoleRequest(ctx context.Context, email string, approve bool, requestedRole string) (*UpdateResult, error)
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(db *database.Mongo, log *zap.Logger) UserRepository {
	return &userRepository{
		col: db.Collection("users"),
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.Hex(), err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Search(ctx context.Context, q UserQuery, skip, limit int) ([]*entity.User, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, q.filter(), opts)
	if err != nil {
		r.log.Error("Failed to search users",
			zap.Error(err),
			zap.String("search", q.Search),
			zap.String("field", q.SearchField),
		)
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Count(ctx context.Context, q UserQuery) (int64, error) {
	total, err := r.col.CountDocuments(ctx, q.filter())
	if err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		r.log.Error("Failed to count users by role",
			zap.Error(err),
			zap.String("role", string(role)),
		)
		return 0, fmt.Errorf("count users by role %s: %w", role, err)
	}
	return total, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{"role": role})
	if err != nil {
		r.log.Error("Failed to find users by role",
			zap.Error(err),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("find users by role %s: %w", role, err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) SampleByRole(ctx context.Context, role entity.UserRole, size int) ([]*entity.User, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": role}}},
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Error("Failed to sample users by role",
			zap.Error(err),
			zap.String("role", string(role)),
			zap.Int("size", size),
		)
		return nil, fmt.Errorf("sample users by role %s: %w", role, err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, user)
	if err != nil {
		r.log.Error("Failed to insert user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return primitive.NilObjectID, fmt.Errorf("insert user %s: %w", user.Email, err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, email string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"lastLoginAt": time.Now().UTC()}},
	)
	if err != nil {
		r.log.Error("Failed to update last login",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("touch last login %s: %w", email, err)
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, email, name, image string) (*UpdateResult, error) {
	fields := bson.M{}
	if name != "" {
		fields["name"] = name
	}
	if image != "" {
		fields["image"] = image
	}

	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
	)
	if err != nil {
		r.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("update user %s: %w", email, err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

// PromoteToGuide forces role=guide and drops the request sub-state in
// one update, regardless of what the fields held before.
func (r *userRepository) PromoteToGuide(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"role": entity.RoleGuide},
			"$unset": bson.M{"requestStatus": "", "requestedRole": ""},
		},
	)
	if err != nil {
		r.log.Error("Failed to promote user to guide",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return nil, fmt.Errorf("promote user %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

// ClearRoleRequest drops the request sub-state without touching role.
func (r *userRepository) ClearRoleRequest(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$unset": bson.M{"requestStatus": "", "requestedRole": ""}},
	)
	if err != nil {
		r.log.Error("Failed to clear role request",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return nil, fmt.Errorf("clear role request %s: %w", id.Hex(), err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

// SetRoleRequest overwrites any existing request; only the latest one
// is retained.
func (r *userRepository) SetRoleRequest(ctx context.Context, email, requestedRole string) (*UpdateResult, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"requestedRole": requestedRole,
			"requestStatus": entity.RequestPending,
		}},
	)
	if err != nil {
		r.log.Error("Failed to set role request",
			zap.Error(err),
			zap.String("email", email),
			zap.String("requested_role", requestedRole),
		)
		return nil, fmt.Errorf("set role request %s: %w", email, err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

// ResolveRoleRequest terminates a pending request. Approval copies the
// requested role into role; rejection leaves role alone. Either way
// requestedRole is nulled out.
func (r *userRepository) ResolveRoleRequest(ctx context.Context, email string, approve bool, requestedRole string) (*UpdateResult, error) {
	var fields bson.M
	if approve {
		fields = bson.M{
			"role":          requestedRole,
			"requestStatus": entity.RequestApproved,
			"requestedRole": nil,
		}
	} else {
		fields = bson.M{
			"requestStatus": entity.RequestRejected,
			"requestedRole": nil,
		}
	}

	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
	)
	if err != nil {
		r.log.Error("Failed to resolve role request",
			zap.Error(err),
			zap.String("email", email),
			zap.Bool("approve", approve),
		)
		return nil, fmt.Errorf("resolve role request %s: %w", email, err)
	}

	return &UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}
