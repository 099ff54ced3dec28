package usecase

import (
	"context"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/model"
	"mediavault/internal/domain/repository/database"
	"mediavault/internal/domain/repository/transport"
)

type fakeUserStore struct {
	users  map[string]*model.User
	writes int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, database.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (s *fakeUserStore) Write(_ context.Context, user *model.User) error {
	if _, ok := s.users[user.Email]; ok {
		return domainerr.New(domainerr.KindDuplicate, "email already registered")
	}

	copied := *user
	s.users[user.Email] = &copied
	s.writes++

	return nil
}

type fakeMediaWriter struct {
	records  []model.Media
	writeErr error
}

func (w *fakeMediaWriter) Write(_ context.Context, media *model.Media) error {
	if w.writeErr != nil {
		return w.writeErr
	}

	for _, existing := range w.records {
		if existing.Title == media.Title || existing.MediaURL == media.MediaURL ||
			existing.ThumbnailURL == media.ThumbnailURL {
			return domainerr.New(domainerr.KindDuplicate,
				"a record with the same title, media URL or thumbnail URL already exists")
		}
	}

	w.records = append(w.records, *media)

	return nil
}

type fakePublisher struct {
	messages []string
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, message string) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, message)

	return nil
}

type fakeAuthSource struct {
	auth  entity.UploadAuthorization
	err   error
	calls int
}

func (s *fakeAuthSource) FetchUploadAuthorization(_ context.Context) (entity.UploadAuthorization, error) {
	s.calls++
	if s.err != nil {
		return entity.UploadAuthorization{}, s.err
	}

	return s.auth, nil
}

type fakeTransport struct {
	descriptor entity.UploadedAssetDescriptor
	err        error
	progress   []int
	called     bool
	gotAuth    entity.UploadAuthorization
}

func (t *fakeTransport) Upload(_ context.Context, _ entity.AcceptedFile, auth entity.UploadAuthorization,
	onProgress transport.ProgressFunc,
) (entity.UploadedAssetDescriptor, error) {
	t.called = true
	t.gotAuth = auth
	for _, p := range t.progress {
		if onProgress != nil {
			onProgress(p)
		}
	}
	if t.err != nil {
		return entity.UploadedAssetDescriptor{}, t.err
	}

	return t.descriptor, nil
}
