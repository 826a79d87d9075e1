package publication

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"listpub/internal/artefact"
	"listpub/internal/render"
)

// MetadataSource supplies artefact records and raw payloads. The SQLite
// artefact store satisfies it.
type MetadataSource interface {
	Get(ctx context.Context, id uuid.UUID) (artefact.Metadata, error)
	Payload(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// Storage is the blob collaborator holding rendered files.
type Storage interface {
	Upload(ctx context.Context, name string, data []byte) error
	Download(ctx context.Context, name string) ([]byte, error)
	Size(ctx context.Context, name string) (int64, error)
}

// Notifier receives the publication-ready event after files are stored.
type Notifier interface {
	NotifyPublicationReady(ctx context.Context, meta artefact.Metadata, summaryText string, files []string) error
}

// Service orchestrates generation, storage and gated retrieval for
// publications.
type Service struct {
	source       MetadataSource
	storage      Storage
	orchestrator *render.Orchestrator
	authorizer   Authorizer
	notifier     Notifier
	logger       *slog.Logger
}

// NewService wires the facade's collaborators.
func NewService(source MetadataSource, storage Storage, orchestrator *render.Orchestrator, authorizer Authorizer, notifier Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:       source,
		storage:      storage,
		orchestrator: orchestrator,
		authorizer:   authorizer,
		notifier:     notifier,
		logger:       logger,
	}
}

// Receipt reports what Publish produced and stored.
type Receipt struct {
	ArtefactID uuid.UUID
	Files      []string
	Summary    string
	Skipped    bool
}

// Publish generates an artefact's outputs and stores every non-empty one
// under the fixed naming convention, then notifies subscribers. Artefacts
// whose list type has no registered strategy are skipped without error.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	meta, err := s.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	raw, err := s.source.Payload(ctx, id)
	if err != nil {
		return nil, err
	}

	outputs, err := s.orchestrator.Generate(ctx, meta, raw)
	if err != nil {
		return nil, err
	}
	if outputs == nil {
		s.logger.Info("no strategy for list type, nothing published",
			slog.String("artefact_id", id.String()),
			slog.String("list_type", string(meta.ListType)))
		return &Receipt{ArtefactID: id, Skipped: true}, nil
	}

	summaryText, err := s.orchestrator.Summary(ctx, meta, raw)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{ArtefactID: id, Summary: summaryText}
	stored := []struct {
		kind FileKind
		data []byte
	}{
		{FilePrimary, outputs.Primary},
		{FileWelsh, outputs.Welsh},
		{FileTabular, outputs.Tabular},
	}
	for _, file := range stored {
		if len(file.data) == 0 {
			continue
		}
		name := file.kind.Filename(id)
		if err := s.storage.Upload(ctx, name, file.data); err != nil {
			return nil, fmt.Errorf("store %s for artefact %s: %w", file.kind, id, err)
		}
		receipt.Files = append(receipt.Files, name)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPublicationReady(ctx, meta, summaryText, receipt.Files); err != nil {
			// Stored artefacts stay valid even when the fan-out call fails;
			// the subscription service reconciles on its own schedule.
			s.logger.Warn("publication notification failed",
				slog.String("artefact_id", id.String()),
				slog.Any("error", err))
		}
	}

	s.logger.Info("publication stored",
		slog.String("artefact_id", id.String()),
		slog.String("list_type", string(meta.ListType)),
		slog.Int("files", len(receipt.Files)))
	return receipt, nil
}

// RetrieveOptions carries the caller identity and the optional size cap.
type RetrieveOptions struct {
	User UserContext
	// MaxBytes rejects files larger than this size; zero means no limit.
	MaxBytes int64
}

// File is a retrieved publication file, base64-encoded for transport.
type File struct {
	Name          string
	SizeBytes     int64
	ContentBase64 string
}

// Retrieve returns one stored file for an artefact, enforcing the
// sensitivity gate before any bytes are read and the caller's size limit
// before the download.
func (s *Service) Retrieve(ctx context.Context, id uuid.UUID, kind FileKind, opts RetrieveOptions) (*File, error) {
	meta, err := s.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !meta.Sensitivity.Public() && !opts.User.System {
		allowed, err := s.authorizer.CanView(ctx, opts.User, meta)
		if err != nil {
			return nil, fmt.Errorf("authorization check for artefact %s: %w", id, err)
		}
		if !allowed {
			return nil, &NotAuthorisedError{ArtefactID: id}
		}
	}

	name := kind.Filename(id)
	size, err := s.storage.Size(ctx, name)
	if err != nil {
		return nil, err
	}
	if opts.MaxBytes > 0 && size > opts.MaxBytes {
		return nil, &SizeLimitError{Limit: opts.MaxBytes, Actual: size}
	}

	data, err := s.storage.Download(ctx, name)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:          name,
		SizeBytes:     int64(len(data)),
		ContentBase64: base64.StdEncoding.EncodeToString(data),
	}, nil
}
