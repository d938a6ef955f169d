package repository

import (
	"context"
	"regexp"
	"time"

	"inventory/internal/inventory/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Items  *mongo.Collection
	Client *mongo.Client
}

func NewMongoRepository(db *mongo.Database, itemsCollectionName string) *MongoRepository {
	repo := &MongoRepository{
		Items:  db.Collection(itemsCollectionName),
		Client: db.Client(),
	}
	return repo
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// Unique name among live items only, so a deleted name can be reused.
	idxUniqueName := mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_live_item_name").
			SetPartialFilterExpression(bson.M{
				"deleted_at": nil,
			}),
	}

	// Listing is ordered by created_at
	idxCreatedAt := mongo.IndexModel{
		Keys: bson.D{
			{Key: "created_at", Value: 1},
		},
		Options: options.Index().SetName("idx_item_created_at"),
	}

	_, err := r.Items.Indexes().CreateMany(ctx, []mongo.IndexModel{idxUniqueName, idxCreatedAt})
	return err
}

func (r *MongoRepository) CreateItem(ctx context.Context, item *model.Item) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	if item.Status == "" {
		item.Status = model.StatusActive
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	item.DeletedAt = nil

	_, err := r.Items.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetItemByName(ctx context.Context, name string) (*model.Item, error) {
	filter := bson.M{
		"name":       name,
		"deleted_at": nil,
	}

	var item model.Item
	err := r.Items.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MongoRepository) FindItems(ctx context.Context, filter model.ItemFilter) ([]*model.Item, error) {
	query := bson.M{
		"deleted_at": nil,
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.NamePrefix != "" {
		query["name"] = bson.M{"$regex": "^" + regexp.QuoteMeta(filter.NamePrefix)}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "name", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		opts.SetSkip(filter.Offset)
	}

	cursor, err := r.Items.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*model.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) UpdateItem(ctx context.Context, name string, update model.ItemUpdate) (*model.Item, error) {
	filter := bson.M{
		"name":       name,
		"deleted_at": nil,
	}

	set := bson.M{
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
		"updated_by": update.UpdatedBy,
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item model.Item
	err := r.Items.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &item, nil
}

func (r *MongoRepository) SoftDeleteItem(ctx context.Context, name, deletedBy string) error {
	filter := bson.M{
		"name":       name,
		"deleted_at": nil,
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$set": bson.M{
			"deleted_at": now,
			"deleted_by": deletedBy,
			"updated_at": now,
			"updated_by": deletedBy,
		},
	}

	res, err := r.Items.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
