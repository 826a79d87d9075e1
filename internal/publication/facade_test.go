package publication

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"listpub/internal/artefact"
	"listpub/internal/listtype"
	"listpub/internal/registry"
	"listpub/internal/render"
)

const civilPayload = `{
	"document": {"publicationDate": "2026-02-13T18:00:00Z"},
	"venue": {"venueName": "County Court"},
	"courtLists": [{
		"courtHouse": {
			"courtHouseName": "CENTRAL LONDON",
			"courtRoom": [{
				"courtRoomName": "Court 1",
				"session": [{
					"sittings": [{
						"sittingStart": "2026-02-14T10:00:00Z",
						"hearing": [{
							"hearingType": "Small claims",
							"case": [{"caseNumber": "C2026001", "caseName": "A v B"}]
						}]
					}]
				}]
			}]
		}
	}]
}`

var errMissing = errors.New("not found")

// memorySource is an in-memory MetadataSource.
type memorySource struct {
	metas    map[uuid.UUID]artefact.Metadata
	payloads map[uuid.UUID][]byte
}

func newMemorySource() *memorySource {
	return &memorySource{
		metas:    make(map[uuid.UUID]artefact.Metadata),
		payloads: make(map[uuid.UUID][]byte),
	}
}

func (s *memorySource) add(meta artefact.Metadata, raw []byte) {
	s.metas[meta.ID] = meta
	s.payloads[meta.ID] = raw
}

func (s *memorySource) Get(_ context.Context, id uuid.UUID) (artefact.Metadata, error) {
	meta, ok := s.metas[id]
	if !ok {
		return artefact.Metadata{}, errMissing
	}
	return meta, nil
}

func (s *memorySource) Payload(_ context.Context, id uuid.UUID) ([]byte, error) {
	raw, ok := s.payloads[id]
	if !ok {
		return nil, errMissing
	}
	return raw, nil
}

// memoryStorage is an in-memory Storage.
type memoryStorage struct {
	blobs map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{blobs: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(_ context.Context, name string, data []byte) error {
	s.blobs[name] = append([]byte(nil), data...)
	return nil
}

func (s *memoryStorage) Download(_ context.Context, name string) ([]byte, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, errMissing
	}
	return data, nil
}

func (s *memoryStorage) Size(_ context.Context, name string) (int64, error) {
	data, ok := s.blobs[name]
	if !ok {
		return 0, errMissing
	}
	return int64(len(data)), nil
}

// recordingNotifier captures the publication-ready events.
type recordingNotifier struct {
	calls int
	files []string
	fail  bool
}

func (n *recordingNotifier) NotifyPublicationReady(_ context.Context, _ artefact.Metadata, _ string, files []string) error {
	n.calls++
	n.files = files
	if n.fail {
		return errors.New("notifier down")
	}
	return nil
}

type allowAll struct{}

func (allowAll) CanView(context.Context, UserContext, artefact.Metadata) (bool, error) {
	return true, nil
}

func newTestService(source *memorySource, storage *memoryStorage, authorizer Authorizer, notifier Notifier) *Service {
	orchestrator := render.NewOrchestrator(registry.New(), render.NewPlainRenderer(), nil)
	return NewService(source, storage, orchestrator, authorizer, notifier, nil)
}

func testMetadata(lt listtype.ListType, sensitivity artefact.Sensitivity) artefact.Metadata {
	return artefact.Metadata{
		ID:          uuid.New(),
		ListType:    lt,
		Language:    artefact.LanguageEnglish,
		Sensitivity: sensitivity,
		ContentDate: time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestPublishStoresUnderNamingConvention(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()
	notifier := &recordingNotifier{}
	service := newTestService(source, storage, denyAll{}, notifier)

	meta := testMetadata(listtype.CivilDailyCauseList, artefact.SensitivityPublic)
	source.add(meta, []byte(civilPayload))

	receipt, err := service.Publish(context.Background(), meta.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if receipt.Skipped {
		t.Fatal("publish skipped a supported list type")
	}

	id := meta.ID.String()
	if _, ok := storage.blobs[id+".pdf"]; !ok {
		t.Errorf("primary document not stored under %s.pdf", id)
	}
	if _, ok := storage.blobs[id+".xlsx"]; !ok {
		t.Errorf("tabular export not stored under %s.xlsx", id)
	}
	if _, ok := storage.blobs[id+"_cy.pdf"]; ok {
		t.Error("non-Welsh list type must not store a Welsh document")
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls = %d, want 1", notifier.calls)
	}
	if receipt.Summary == "" {
		t.Error("receipt summary is empty")
	}
}

func TestPublishWelshDocument(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()
	service := newTestService(source, storage, denyAll{}, &recordingNotifier{})

	meta := testMetadata(listtype.FamilyDailyCauseList, artefact.SensitivityPublic)
	meta.Language = artefact.LanguageBilingual
	source.add(meta, []byte(civilPayload))

	receipt, err := service.Publish(context.Background(), meta.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if _, ok := storage.blobs[meta.ID.String()+"_cy.pdf"]; !ok {
		t.Errorf("Welsh document not stored; files = %v", receipt.Files)
	}
}

func TestPublishSkipsUnsupportedListType(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()
	notifier := &recordingNotifier{}
	service := newTestService(source, storage, denyAll{}, notifier)

	meta := testMetadata(listtype.ListType("FUTURE_LIST"), artefact.SensitivityPublic)
	source.add(meta, []byte(civilPayload))

	receipt, err := service.Publish(context.Background(), meta.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !receipt.Skipped {
		t.Error("expected a skipped receipt")
	}
	if len(storage.blobs) != 0 {
		t.Error("skipped publish must store nothing")
	}
	if notifier.calls != 0 {
		t.Error("skipped publish must not notify")
	}
}

func TestPublishNotifierFailureIsNotFatal(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()
	service := newTestService(source, storage, denyAll{}, &recordingNotifier{fail: true})

	meta := testMetadata(listtype.CivilDailyCauseList, artefact.SensitivityPublic)
	source.add(meta, []byte(civilPayload))

	receipt, err := service.Publish(context.Background(), meta.ID)
	if err != nil {
		t.Fatalf("Publish should tolerate a notifier failure, got %v", err)
	}
	if len(receipt.Files) == 0 {
		t.Error("files should still be stored")
	}
}

func TestRetrievePublicNeedsNoAuthorization(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()
	service := newTestService(source, storage, denyAll{}, &recordingNotifier{})

	meta := testMetadata(listtype.CivilDailyCauseList, artefact.SensitivityPublic)
	source.add(meta, []byte(civilPayload))
	if _, err := service.Publish(context.Background(), meta.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	file, err := service.Retrieve(context.Background(), meta.ID, FilePrimary, RetrieveOptions{})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if file.Name != meta.ID.String()+".pdf" {
		t.Errorf("file name = %q", file.Name)
	}
	decoded, err := base64.StdEncoding.DecodeString(file.ContentBase64)
	if err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if int64(len(decoded)) != file.SizeBytes {
		t.Errorf("SizeBytes = %d, decoded length = %d", file.SizeBytes, len(decoded))
	}
}

func TestRetrievePrivateGates(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()

	meta := testMetadata(listtype.CivilDailyCauseList, artefact.SensitivityPrivate)
	source.add(meta, []byte(civilPayload))

	denied := newTestService(source, storage, denyAll{}, &recordingNotifier{})
	if _, err := denied.Publish(context.Background(), meta.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// Unauthorised user is rejected with the typed error.
	_, err := denied.Retrieve(context.Background(), meta.ID, FilePrimary, RetrieveOptions{User: UserContext{UserID: "u1"}})
	var notAuthorised *NotAuthorisedError
	if !errors.As(err, &notAuthorised) {
		t.Fatalf("err = %v, want NotAuthorisedError", err)
	}
	if notAuthorised.ArtefactID != meta.ID {
		t.Errorf("error artefact id = %s", notAuthorised.ArtefactID)
	}

	// System caller bypasses the check even against a deny-all authorizer.
	if _, err := denied.Retrieve(context.Background(), meta.ID, FilePrimary, RetrieveOptions{User: UserContext{System: true}}); err != nil {
		t.Errorf("system retrieve failed: %v", err)
	}

	// Authorised user passes.
	allowed := newTestService(source, storage, allowAll{}, &recordingNotifier{})
	if _, err := allowed.Retrieve(context.Background(), meta.ID, FilePrimary, RetrieveOptions{User: UserContext{UserID: "u1"}}); err != nil {
		t.Errorf("authorised retrieve failed: %v", err)
	}
}

func TestRetrieveSizeLimit(t *testing.T) {
	source := newMemorySource()
	storage := newMemoryStorage()
	service := newTestService(source, storage, denyAll{}, &recordingNotifier{})

	meta := testMetadata(listtype.CivilDailyCauseList, artefact.SensitivityPublic)
	source.add(meta, []byte(civilPayload))
	if _, err := service.Publish(context.Background(), meta.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	_, err := service.Retrieve(context.Background(), meta.ID, FilePrimary, RetrieveOptions{MaxBytes: 1})
	var sizeErr *SizeLimitError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want SizeLimitError", err)
	}
	if sizeErr.Limit != 1 || sizeErr.Actual <= 1 {
		t.Errorf("size error = %+v", sizeErr)
	}

	// A generous limit passes.
	if _, err := service.Retrieve(context.Background(), meta.ID, FilePrimary, RetrieveOptions{MaxBytes: 10 << 20}); err != nil {
		t.Errorf("retrieve with generous limit failed: %v", err)
	}
}

func TestRetrieveUnknownArtefact(t *testing.T) {
	service := newTestService(newMemorySource(), newMemoryStorage(), denyAll{}, &recordingNotifier{})
	if _, err := service.Retrieve(context.Background(), uuid.New(), FilePrimary, RetrieveOptions{}); err == nil {
		t.Error("expected an error for an unknown artefact")
	}
}
