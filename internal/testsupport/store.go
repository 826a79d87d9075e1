package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"listpub/internal/artefact"
	"listpub/internal/artefactstore"
	"listpub/internal/config"
	"listpub/internal/listtype"
)

// MustOpenStore opens an artefact store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *artefactstore.Store {
	t.Helper()

	store, err := artefactstore.Open(cfg)
	if err != nil {
		t.Fatalf("artefactstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewMetadata builds a public English artefact record for tests.
func NewMetadata(lt listtype.ListType) artefact.Metadata {
	return artefact.Metadata{
		ID:          uuid.New(),
		ListType:    lt,
		Language:    artefact.LanguageEnglish,
		Sensitivity: artefact.SensitivityPublic,
		Provenance:  "MANUAL_UPLOAD",
		ContentDate: time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
	}
}

// SaveArtefact stores metadata and payload, failing the test on error.
func SaveArtefact(t testing.TB, store *artefactstore.Store, meta artefact.Metadata, raw []byte) {
	t.Helper()

	if err := store.Save(context.Background(), meta, raw); err != nil {
		t.Fatalf("store.Save: %v", err)
	}
}
