package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

const collectionSellers = "sellers"

type SellerRepository struct {
	col *mongo.Collection
}

func NewSellerRepository(db *mongo.Database) *SellerRepository {
	return &SellerRepository{col: db.Collection(collectionSellers)}
}

type mongoSeller struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Active    bool               `bson:"active"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *SellerRepository) Create(ctx context.Context, s *domain.Seller) (*domain.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSeller{
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Unix(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSellerExists
		}
		return nil, fmt.Errorf("insert seller: %w", err)
	}

	out := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *SellerRepository) FindByID(ctx context.Context, id string) (*domain.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSellerNotFound
	}

	var ms mongoSeller
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("find seller: %w", err)
	}
	return toDomainSeller(&ms), nil
}

func (r *SellerRepository) List(ctx context.Context) ([]*domain.Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoSeller
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}

	sellers := make([]*domain.Seller, 0, len(docs))
	for i := range docs {
		sellers = append(sellers, toDomainSeller(&docs[i]))
	}
	return sellers, nil
}

func toDomainSeller(ms *mongoSeller) *domain.Seller {
	return &domain.Seller{
		ID:        ms.ID.Hex(),
		Name:      ms.Name,
		Email:     ms.Email,
		Phone:     ms.Phone,
		Active:    ms.Active,
		CreatedAt: unixToTime(ms.CreatedAt),
	}
}
