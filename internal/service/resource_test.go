package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"credvault/internal/model"
	"credvault/internal/repository"
	repoMocks "credvault/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[V any](v V) *V { return &v }

func idFilter(id string) repository.Filter {
	return repository.Filter{Field: model.IDField, Value: id}
}

func TestResource_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates id when absent", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Country])
		svc := NewCountryService(repo)

		var inserted *model.Country
		repo.On("Insert", ctx, mock.AnythingOfType("*model.Country")).
			Run(func(args mock.Arguments) { inserted = args.Get(1).(*model.Country) }).
			Return(nil).Once()
		repo.On("FindOne", ctx, mock.MatchedBy(func(f repository.Filter) bool {
			return inserted != nil && f.Field == model.IDField && f.Value == inserted.ID
		})).Return(&model.Country{ID: "stored", Name: "Hong Kong"}, nil).Once()

		got, err := svc.Create(ctx, &model.Country{Name: "Hong Kong"})
		require.NoError(t, err)
		require.NotNil(t, inserted)
		_, parseErr := uuid.Parse(inserted.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "Hong Kong", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("keeps client supplied id", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Country])
		svc := NewCountryService(repo)

		in := &model.Country{ID: "country01", Name: "Hong Kong"}
		repo.On("Insert", ctx, in).Return(nil).Once()
		repo.On("FindOne", ctx, idFilter("country01")).Return(&model.Country{ID: "country01", Name: "Hong Kong"}, nil).Once()

		got, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "country01", got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Country])
		svc := NewCountryService(repo)

		repo.On("Insert", ctx, mock.Anything).Return(repository.ErrDuplicateID).Once()

		got, err := svc.Create(ctx, &model.Country{ID: "country01", Name: "Hong Kong"})
		assert.ErrorIs(t, err, repository.ErrDuplicateID)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})

	t.Run("read back missing", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Country])
		svc := NewCountryService(repo)

		repo.On("Insert", ctx, mock.Anything).Return(nil).Once()
		repo.On("FindOne", ctx, idFilter("country01")).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Create(ctx, &model.Country{ID: "country01", Name: "Hong Kong"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResource_List(t *testing.T) {
	ctx := context.Background()

	t.Run("uses fixed cap", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("List", ctx, ListLimit).Return([]model.Area{{ID: "a1"}}, nil).Once()

		items, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		repo.AssertExpectations(t)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("List", ctx, ListLimit).Return([]model.Area(nil), nil).Once()

		items, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("List", ctx, ListLimit).Return(nil, errors.New("conn refused")).Once()

		_, err := svc.List(ctx)
		assert.EqualError(t, err, "conn refused")
	})
}

func TestResource_Find(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		key        string
		setupMocks func(repo *repoMocks.MockDocumentRepository[model.Mailbox])
		wantID     string
		wantErrMsg string
	}{
		{
			name: "by id",
			key:  "mbox01",
			setupMocks: func(repo *repoMocks.MockDocumentRepository[model.Mailbox]) {
				repo.On("FindOne", ctx, idFilter("mbox01")).Return(&model.Mailbox{ID: "mbox01"}, nil).Once()
			},
			wantID: "mbox01",
		},
		{
			name: "falls back to alternate key",
			key:  "bob.smith@proton.me",
			setupMocks: func(repo *repoMocks.MockDocumentRepository[model.Mailbox]) {
				repo.On("FindOne", ctx, idFilter("bob.smith@proton.me")).Return(nil, repository.ErrNotFound).Once()
				repo.On("FindOne", ctx, repository.Filter{Field: "address", Value: "bob.smith@proton.me"}).
					Return(&model.Mailbox{ID: "mbox01", Address: "bob.smith@proton.me"}, nil).Once()
			},
			wantID: "mbox01",
		},
		{
			name: "neither matches",
			key:  "nobody",
			setupMocks: func(repo *repoMocks.MockDocumentRepository[model.Mailbox]) {
				repo.On("FindOne", ctx, mock.Anything).Return(nil, repository.ErrNotFound).Twice()
			},
			wantErrMsg: "Mailbox with ID/name nobody not found",
		},
		{
			name: "store error stops the chain",
			key:  "mbox01",
			setupMocks: func(repo *repoMocks.MockDocumentRepository[model.Mailbox]) {
				repo.On("FindOne", ctx, idFilter("mbox01")).Return(nil, errors.New("timeout")).Once()
			},
			wantErrMsg: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockDocumentRepository[model.Mailbox])
			svc := NewMailboxService(repo)
			tt.setupMocks(repo)

			got, err := svc.Find(ctx, tt.key)
			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestResource_FindCredentialByIDOnly(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockDocumentRepository[model.Credential])
	svc := NewCredentialService(repo)

	repo.On("FindOne", ctx, idFilter("bob")).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Find(ctx, "bob")
	assert.EqualError(t, err, "Credential with ID bob not found")
	repo.AssertNumberOfCalls(t, "FindOne", 1)
}

func TestResource_FindCountryMessage(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockDocumentRepository[model.Country])
	svc := NewCountryService(repo)

	repo.On("FindOne", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := svc.Find(ctx, "abc")
	assert.EqualError(t, err, "Country with ID/name abc not found")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResource_FindPersonalDetailTypeMessage(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockDocumentRepository[model.PersonalDetailType])
	svc := NewPersonalDetailTypeService(repo)

	repo.On("FindOne", ctx, idFilter("Shoe size")).Return(nil, repository.ErrNotFound).Once()
	repo.On("FindOne", ctx, repository.Filter{Field: "detail", Value: "Shoe size"}).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Find(ctx, "Shoe size")
	assert.EqualError(t, err, "Personal detail type with ID/name Shoe size not found")
	repo.AssertExpectations(t)
}

func TestResource_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only supplied fields", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("SetFields", ctx, "area01", map[string]any{"name": "Finance"}).Return(int64(1), nil).Once()
		repo.On("FindOne", ctx, idFilter("area01")).
			Return(&model.Area{ID: "area01", Name: "Finance", Description: "Banks"}, nil).Once()

		got, err := svc.Update(ctx, "area01", model.AreaUpdate{Name: ptr("Finance")})
		require.NoError(t, err)
		assert.Equal(t, "Finance", got.Name)
		assert.Equal(t, "Banks", got.Description)
		repo.AssertExpectations(t)
	})

	t.Run("explicit empty value is written", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("SetFields", ctx, "area01", map[string]any{"description": ""}).Return(int64(1), nil).Once()
		repo.On("FindOne", ctx, idFilter("area01")).Return(&model.Area{ID: "area01", Name: "Banking"}, nil).Once()

		_, err := svc.Update(ctx, "area01", model.AreaUpdate{Description: ptr("")})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty patch skips write", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("FindOne", ctx, idFilter("area01")).Return(&model.Area{ID: "area01", Name: "Banking"}, nil).Once()

		got, err := svc.Update(ctx, "area01", model.AreaUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Banking", got.Name)
		repo.AssertNotCalled(t, "SetFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty patch on missing id", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Area])
		svc := NewAreaService(repo)

		repo.On("FindOne", ctx, idFilter("missing")).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Update(ctx, "missing", model.AreaUpdate{})
		assert.EqualError(t, err, "Area with ID missing not found")
	})

	t.Run("no document matched", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Mailbox])
		svc := NewMailboxService(repo)

		repo.On("SetFields", ctx, "nonexistent-id", map[string]any{"address": "a@b.com"}).Return(int64(0), nil).Once()

		_, err := svc.Update(ctx, "nonexistent-id", model.MailboxUpdate{Address: ptr("a@b.com")})
		assert.EqualError(t, err, "Mailbox with ID nonexistent-id not found")
		repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})

	t.Run("deleted between write and read back", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Country])
		svc := NewCountryService(repo)

		repo.On("SetFields", ctx, "country01", map[string]any{"name": "HK"}).Return(int64(1), nil).Once()
		repo.On("FindOne", ctx, idFilter("country01")).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Update(ctx, "country01", model.CountryUpdate{Name: ptr("HK")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(repoMocks.MockDocumentRepository[model.Country])
		svc := NewCountryService(repo)

		repo.On("SetFields", ctx, "country01", mock.Anything).Return(int64(0), errors.New("write failed")).Once()

		_, err := svc.Update(ctx, "country01", model.CountryUpdate{Name: ptr("HK")})
		assert.EqualError(t, err, "write failed")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestResource_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		deleted int64
		repoErr error
		wantErr error
	}{
		{name: "deleted", deleted: 1},
		{name: "missing", deleted: 0, wantErr: ErrNotFound},
		{name: "store error", repoErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockDocumentRepository[model.PersonalDetailType])
			svc := NewPersonalDetailTypeService(repo)
			repo.On("Delete", ctx, "pd1").Return(tt.deleted, tt.repoErr).Once()

			err := svc.Delete(ctx, "pd1")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, "Personal detail type with ID pd1 not found")
			case tt.repoErr != nil:
				assert.ErrorIs(t, err, tt.repoErr)
			default:
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCredentialUpdate_Fields(t *testing.T) {
	u := model.CredentialUpdate{
		Password:        ptr("new"),
		LoginOverride:   ptr(""),
		PersonalDetails: ptr(map[string]string(nil)),
	}
	assert.Equal(t, map[string]any{
		"password":         "new",
		"login_override":   "",
		"personal_details": map[string]string{},
	}, u.Fields())
}

func TestJobHuntCredentialUpdate_Fields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "salary range",
			body: `{"expected_salary":[40000,55000]}`,
			want: map[string]any{"expected_salary": model.SalaryRange{40000, 55000}},
		},
		{
			name: "null salary is left out",
			body: `{"expected_salary":null}`,
			want: map[string]any{},
		},
		{
			name: "empty file list overwrites",
			body: `{"application_details":[]}`,
			want: map[string]any{"application_details": []string{}},
		},
		{
			name: "null file list is left out",
			body: `{"application_details":null}`,
			want: map[string]any{},
		},
		{
			name: "file list",
			body: `{"application_details":["job_hunt/jh1/cv.pdf"]}`,
			want: map[string]any{"application_details": []string{"job_hunt/jh1/cv.pdf"}},
		},
		{
			name: "credential and job hunt fields together",
			body: `{"password":"new","status":"OFFERED","follow_ups":{}}`,
			want: map[string]any{"password": "new", "status": "OFFERED", "follow_ups": map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u model.JobHuntCredentialUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			assert.Equal(t, tt.want, u.Fields())
		})
	}
}

func TestJobHuntCredentialUpdate_FieldsNilSliceBecomesEmpty(t *testing.T) {
	u := model.JobHuntCredentialUpdate{ApplicationDetails: ptr([]string(nil))}
	assert.Equal(t, map[string]any{"application_details": []string{}}, u.Fields())
}
