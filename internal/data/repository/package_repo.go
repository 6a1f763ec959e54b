package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Catalog sort modes accepted by the listing endpoint. Anything else
// falls through to natural order.
const (
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
	SortRecent    = "recent"
)

type PackageQuery struct {
	Search   string
	Category string
	Sort     string
}

func (q PackageQuery) filter() bson.M {
	filter := bson.M{}
	if q.Search != "" {
		filter["tripTitle"] = bson.M{"$regex": q.Search, "$options": "i"}
	}
	if q.Category != "" {
		filter["tourType"] = q.Category
	}
	return filter
}

func (q PackageQuery) sort() bson.D {
	switch q.Sort {
	case SortPriceLow:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}}
	case SortRecent:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return nil
}

type PackageRepository interface {
	Insert(ctx context.Context, pkg *entity.Package) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error)
	Find(ctx context.Context, q PackageQuery, skip, limit int) ([]*entity.Package, error)
	Count(ctx context.Context, q PackageQuery) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	Sample(ctx context.Context, size int) ([]*entity.Package, error)
}

type packageRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewPackageRepository(db *database.Mongo, log *zap.Logger) PackageRepository {
	return &packageRepository{
		col: db.Collection("packages"),
		log: log.With(zap.String("repository", "package")),
	}
}

func (r *packageRepository) Insert(ctx context.Context, pkg *entity.Package) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, pkg)
	if err != nil {
		r.log.Error("Failed to insert package",
			zap.Error(err),
			zap.String("trip_title", pkg.TripTitle),
		)
		return primitive.NilObjectID, fmt.Errorf("insert package: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error) {
	var pkg entity.Package
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.Hex()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.Hex(), err)
	}

	return &pkg, nil
}

func (r *packageRepository) Find(ctx context.Context, q PackageQuery, skip, limit int) ([]*entity.Package, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	if sort := q.sort(); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.col.Find(ctx, q.filter(), opts)
	if err != nil {
		r.log.Error("Failed to find packages",
			zap.Error(err),
			zap.String("search", q.Search),
			zap.String("category", q.Category),
		)
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []*entity.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}

	return packages, nil
}

func (r *packageRepository) Count(ctx context.Context, q PackageQuery) (int64, error) {
	total, err := r.col.CountDocuments(ctx, q.filter())
	if err != nil {
		r.log.Error("Failed to count packages", zap.Error(err))
		return 0, fmt.Errorf("count packages: %w", err)
	}
	return total, nil
}

func (r *packageRepository) EstimatedCount(ctx context.Context) (int64, error) {
	total, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		r.log.Error("Failed to estimate package count", zap.Error(err))
		return 0, fmt.Errorf("estimate package count: %w", err)
	}
	return total, nil
}

func (r *packageRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.col.Distinct(ctx, "tourType", bson.M{})
	if err != nil {
		r.log.Error("Failed to fetch categories", zap.Error(err))
		return nil, fmt.Errorf("distinct tour types: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}

	return categories, nil
}

func (r *packageRepository) Sample(ctx context.Context, size int) ([]*entity.Package, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Error("Failed to sample packages",
			zap.Error(err),
			zap.Int("size", size),
		)
		return nil, fmt.Errorf("sample packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []*entity.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}

	return packages, nil
}
