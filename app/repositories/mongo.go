package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Owen-Rose/chefs-suite/app/models"
	"github.com/Owen-Rose/chefs-suite/framework/config"
)

// Connect opens a MongoDB client and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}

// ── Recipes ──────────────────────────────────────────────────────────────────

type MongoRecipeRepository struct {
	coll *mongo.Collection
}

func NewMongoRecipeRepository(db *mongo.Database) *MongoRecipeRepository {
	return &MongoRecipeRepository{coll: db.Collection("recipes")}
}

func (r *MongoRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	_, err := r.coll.InsertOne(ctx, recipe)
	return err
}

func (r *MongoRecipeRepository) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *MongoRecipeRepository) FindAll(ctx context.Context) ([]*models.Recipe, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recipes []*models.Recipe
	if err := cur.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *MongoRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRecipeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Users ────────────────────────────────────────────────────────────────────

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Invitations ──────────────────────────────────────────────────────────────

type MongoInvitationRepository struct {
	coll *mongo.Collection
}

func NewMongoInvitationRepository(db *mongo.Database) *MongoInvitationRepository {
	return &MongoInvitationRepository{coll: db.Collection("invitations")}
}

func (r *MongoInvitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	_, err := r.coll.InsertOne(ctx, inv)
	return err
}

func (r *MongoInvitationRepository) FindByToken(ctx context.Context, token string) (*models.Invitation, error) {
	return r.findOne(ctx, bson.M{"token": token})
}

func (r *MongoInvitationRepository) FindByEmail(ctx context.Context, email string) (*models.Invitation, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoInvitationRepository) findOne(ctx context.Context, filter bson.M) (*models.Invitation, error) {
	var inv models.Invitation
	err := r.coll.FindOne(ctx, filter).Decode(&inv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *MongoInvitationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
