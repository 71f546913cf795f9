package mongodb

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"credvault/internal/model"
	"credvault/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestDocumentMongo_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewDocumentMongo[model.Country](mt.Coll)

		err := repo.Insert(ctx, &model.Country{ID: "country01", Name: "Hong Kong"})
		assert.NoError(mt, err)
	})

	mt.Run("duplicate id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))
		repo := NewDocumentMongo[model.Country](mt.Coll)

		err := repo.Insert(ctx, &model.Country{ID: "country01", Name: "Hong Kong"})
		assert.ErrorIs(mt, err, repository.ErrDuplicateID)
	})
}

func TestDocumentMongo_FindOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "mbox01"},
			{Key: "address", Value: "bob.smith@proton.me"},
			{Key: "description", Value: "Marketing"},
		}))
		repo := NewDocumentMongo[model.Mailbox](mt.Coll)

		got, err := repo.FindOne(ctx, repository.Filter{Field: "address", Value: "bob.smith@proton.me"})
		require.NoError(mt, err)
		assert.Equal(mt, &model.Mailbox{ID: "mbox01", Address: "bob.smith@proton.me", Description: "Marketing"}, got)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := NewDocumentMongo[model.Mailbox](mt.Coll)

		got, err := repo.FindOne(ctx, repository.Filter{Field: model.IDField, Value: "missing"})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
		assert.Nil(mt, got)
	})

	mt.Run("decodes credential maps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "cred01"},
			{Key: "username", Value: "lettuce"},
			{Key: "personal_details", Value: bson.D{{Key: "Location", Value: "Oslo, Norway"}}},
			{Key: "security_questions", Value: bson.D{}},
		}))
		repo := NewDocumentMongo[model.Credential](mt.Coll)

		got, err := repo.FindOne(ctx, repository.Filter{Field: model.IDField, Value: "cred01"})
		require.NoError(mt, err)
		assert.Equal(mt, "lettuce", got.Username)
		assert.Equal(mt, map[string]string{"Location": "Oslo, Norway"}, got.PersonalDetails)
		assert.Empty(mt, got.SecurityQuestions)
	})
}

func TestDocumentMongo_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("returns documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "a1"}, {Key: "name", Value: "Banking"}, {Key: "description", Value: "Banks"}},
			bson.D{{Key: "_id", Value: "a2"}, {Key: "name", Value: "Email"}, {Key: "description", Value: "Mail"}},
		))
		repo := NewDocumentMongo[model.Area](mt.Coll)

		items, err := repo.List(ctx, 100)
		require.NoError(mt, err)
		assert.Len(mt, items, 2)
		assert.Equal(mt, "a2", items[1].ID)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := NewDocumentMongo[model.Area](mt.Coll)

		items, err := repo.List(ctx, 100)
		require.NoError(mt, err)
		assert.NotNil(mt, items)
		assert.Empty(mt, items)
	})
}

func TestDocumentMongo_SetFields(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("matched but unchanged", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 0}})
		repo := NewDocumentMongo[model.Country](mt.Coll)

		matched, err := repo.SetFields(ctx, "country01", map[string]any{"name": "HK"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), matched)
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})
		repo := NewDocumentMongo[model.Country](mt.Coll)

		matched, err := repo.SetFields(ctx, "missing", map[string]any{"name": "HK"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), matched)
	})
}

func TestDocumentMongo_AppendToList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("appends server side", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})
		repo := NewDocumentMongo[model.JobHuntCredential](mt.Coll)

		matched, err := repo.AppendToList(ctx, "jh1", "application_details", "job_hunt/jh1/a.pdf")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), matched)

		cmd := mt.GetStartedEvent().Command.String()
		assert.Contains(mt, cmd, "$concatArrays")
		assert.Contains(mt, cmd, "$ifNull")
		assert.Contains(mt, cmd, "job_hunt/jh1/a.pdf")
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})
		repo := NewDocumentMongo[model.JobHuntCredential](mt.Coll)

		matched, err := repo.AppendToList(ctx, "gone", "application_details", "x.pdf")
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), matched)
	})
}

func TestDocumentMongo_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		repo := NewDocumentMongo[model.Country](mt.Coll)

		n, err := repo.Delete(ctx, "country01")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))
		repo := NewDocumentMongo[model.Country](mt.Coll)

		n, err := repo.Delete(ctx, "country01")
		assert.Error(mt, err)
		assert.Equal(mt, int64(0), n)
	})
}
