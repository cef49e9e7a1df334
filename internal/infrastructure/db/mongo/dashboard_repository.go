package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

const layoutsCollection = "dashboard_layouts"

// MongoDashboardRepository stores one layout document per user, keyed by
// user_id. Saves replace the whole document; there is no versioning, so
// concurrent saves overwrite in write order.
type MongoDashboardRepository struct {
	coll *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *MongoDashboardRepository {
	return &MongoDashboardRepository{coll: db.Collection(layoutsCollection)}
}

// Upsert replaces the record for layout.UserID in full, creating it on first save.
func (r *MongoDashboardRepository) Upsert(ctx context.Context, layout *domain.DashboardLayout) error {
	filter := bson.M{"user_id": layout.UserID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, layout, opts); err != nil {
		return &domain.StorageError{
			Op:      "write",
			Message: err.Error(),
			Detail:  writeErrorDetail(err),
			Err:     err,
		}
	}
	return nil
}

// FindByUserID returns the stored layout. Absence surfaces as
// domain.ErrLayoutNotFound, distinct from any other driver error.
func (r *MongoDashboardRepository) FindByUserID(ctx context.Context, userID string) (*domain.DashboardLayout, error) {
	var layout domain.DashboardLayout
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&layout); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLayoutNotFound
		}
		return nil, &domain.StorageError{Op: "read", Message: err.Error(), Err: err}
	}
	return &layout, nil
}

// writeErrorDetail extracts the server-side detail from a mongo write error,
// when one is present.
func writeErrorDetail(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 {
		return we.WriteErrors[0].Message
	}
	return ""
}
